package models

// CourseModule is one ordered unit of a course curriculum.
type CourseModule struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []string `json:"lessons"`
}

// Course is a subject offering tied to a grade or TVET level.
type Course struct {
	ID          string         `json:"id"`
	Title       string         `json:"title" validate:"required"`
	Instructor  string         `json:"instructor" validate:"required"`
	Category    string         `json:"category"`
	Duration    GradeLevel     `json:"duration" validate:"required"`
	Description string         `json:"description,omitempty"`
	Image       string         `json:"image,omitempty"`
	Objectives  []string       `json:"objectives,omitempty"`
	Curriculum  []CourseModule `json:"curriculum"`
	CampusID    string         `json:"campusId,omitempty"`
	Students    int            `json:"students"`
	Progress    int            `json:"progress"`
}
