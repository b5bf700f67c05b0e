package models

// Semester selects one half of a school year.
type Semester string

const (
	Sem1 Semester = "sem1"
	Sem2 Semester = "sem2"
)

// SemesterScores holds the two semester marks of a subject. Nil means not
// recorded yet.
type SemesterScores struct {
	Sem1 *int `json:"sem1,omitempty"`
	Sem2 *int `json:"sem2,omitempty"`
}

// Set stores score in the given semester.
func (s *SemesterScores) Set(sem Semester, score int) {
	v := score
	if sem == Sem2 {
		s.Sem2 = &v
		return
	}
	s.Sem1 = &v
}

// SubjectScores maps subject names to their semester marks.
type SubjectScores map[string]SemesterScores

// StudentAcademicRecord is the consolidated history of one student. Subjects
// holds the current grade; PreviousGrades is keyed by grade number.
type StudentAcademicRecord struct {
	StudentID      string                `json:"studentId"`
	StudentName    string                `json:"studentName"`
	Subjects       SubjectScores         `json:"subjects"`
	PreviousGrades map[int]SubjectScores `json:"previousGrades"`
}

// NewAcademicRecord returns an empty record for a student.
func NewAcademicRecord(studentID, name string) StudentAcademicRecord {
	return StudentAcademicRecord{
		StudentID:      studentID,
		StudentName:    name,
		Subjects:       SubjectScores{},
		PreviousGrades: map[int]SubjectScores{},
	}
}
