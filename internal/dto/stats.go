package dto

// SystemStats is the dashboard headline count set.
type SystemStats struct {
	Students int `json:"students"`
	Teachers int `json:"teachers"`
	Admins   int `json:"admins"`
	Campuses int `json:"campuses"`
}

// GradeEnrollment counts students of one grade level by gender.
type GradeEnrollment struct {
	Grade  string `json:"grade"`
	Male   int    `json:"male"`
	Female int    `json:"female"`
	Total  int    `json:"total"`
}

// QualificationCount is one bar of the faculty qualification histogram.
type QualificationCount struct {
	Qualification string `json:"qualification"`
	Count         int    `json:"count"`
}

// EnrollmentReport aggregates enrolment and staffing figures.
type EnrollmentReport struct {
	ByGrade          []GradeEnrollment    `json:"byGrade"`
	TVETCandidates   int                  `json:"tvetCandidates"`
	Grade12Graduates int                  `json:"grade12Graduates"`
	Qualifications   []QualificationCount `json:"qualifications"`
	TotalStudents    int                  `json:"totalStudents"`
	TotalTeachers    int                  `json:"totalTeachers"`
}
