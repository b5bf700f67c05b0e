package models

// ExamStatus tracks where an exam sits in its schedule.
type ExamStatus string

const (
	ExamUpcoming  ExamStatus = "Upcoming"
	ExamOngoing   ExamStatus = "Ongoing"
	ExamCompleted ExamStatus = "Completed"
)

// DefaultPassingScore applies when an exam does not set one.
const DefaultPassingScore = 50

// Question is a multiple-choice item; CorrectAnswer indexes Options.
type Question struct {
	Text          string   `json:"text" validate:"required"`
	Options       []string `json:"options" validate:"min=2"`
	CorrectAnswer int      `json:"correctAnswer" validate:"gte=0"`
}

// Exam is an assessment loosely attached to a course by title.
type Exam struct {
	ID             string     `json:"id"`
	Title          string     `json:"title" validate:"required"`
	CourseTitle    string     `json:"courseTitle" validate:"required"`
	CourseID       string     `json:"courseId,omitempty"`
	TeacherID      string     `json:"teacherId,omitempty"`
	Date           string     `json:"date" validate:"required"`
	Duration       string     `json:"duration,omitempty"`
	TotalQuestions int        `json:"totalQuestions" validate:"gte=0"`
	PassingScore   *int       `json:"passingScore,omitempty" validate:"omitempty,gte=0,lte=100"`
	Status         ExamStatus `json:"status,omitempty"`
	Questions      []Question `json:"questions,omitempty" validate:"dive"`
}

// EffectivePassingScore returns the exam's passing score, or the default when unset.
func (e Exam) EffectivePassingScore() int {
	if e.PassingScore == nil {
		return DefaultPassingScore
	}
	return *e.PassingScore
}
