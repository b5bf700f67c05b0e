package dto

// TranscriptCell is one subject score at one grade level.
type TranscriptCell struct {
	Sem1    *int `json:"sem1"`
	Sem2    *int `json:"sem2"`
	Average *int `json:"average"`
	Taken   bool `json:"taken"`
}

// TranscriptRow holds a subject across grades 9 to 12, keyed by grade number.
type TranscriptRow struct {
	Subject string                 `json:"subject"`
	Grades  map[int]TranscriptCell `json:"grades"`
}

// Transcript is the consolidated record of a student across all grades.
type Transcript struct {
	StudentID      string          `json:"studentId"`
	StudentName    string          `json:"studentName"`
	NationalID     string          `json:"nationalId,omitempty"`
	Gender         string          `json:"gender,omitempty"`
	Stream         string          `json:"stream"`
	CurrentGrade   string          `json:"currentGrade"`
	Rows           []TranscriptRow `json:"rows"`
	YearlyAverages map[int]*int    `json:"yearlyAverages"`
	LetterGrades   map[int]string  `json:"letterGrades"`
	FinalStatus    map[int]string  `json:"finalStatus"`
}

// GradebookEntry is one row of a class grade sheet.
type GradebookEntry struct {
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
	Sem1        *int   `json:"sem1"`
	Sem2        *int   `json:"sem2"`
	Average     *int   `json:"average"`
}

// Gradebook is a class sheet for one grade level and subject.
type Gradebook struct {
	Grade   string           `json:"grade"`
	Subject string           `json:"subject"`
	Entries []GradebookEntry `json:"entries"`
}

// GradebookScore is one score to record from a grade sheet.
type GradebookScore struct {
	StudentID string `json:"studentId" validate:"required"`
	Semester  string `json:"semester" validate:"required,oneof=sem1 sem2"`
	Score     int    `json:"score"`
}

// GradebookUpdate records a batch of scores for one subject.
type GradebookUpdate struct {
	Subject string           `json:"subject" validate:"required"`
	Scores  []GradebookScore `json:"scores" validate:"required,min=1,dive"`
}

// Certificate describes the completion document a student is eligible for.
type Certificate struct {
	StudentID    string `json:"studentId"`
	StudentName  string `json:"studentName"`
	Kind         string `json:"kind"`
	Title        string `json:"title"`
	Grade        string `json:"grade"`
	Department   string `json:"department"`
	SchoolName   string `json:"schoolName"`
	AcademicYear string `json:"academicYear"`
}

// ExamSubmission carries the chosen option index per question.
type ExamSubmission struct {
	Answers []int `json:"answers" validate:"required"`
}

// ExamResult is the scored outcome of a submission.
type ExamResult struct {
	ExamID       string `json:"examId"`
	Correct      int    `json:"correct"`
	Total        int    `json:"total"`
	Score        int    `json:"score"`
	PassingScore int    `json:"passingScore"`
	Status       string `json:"status"`
}
