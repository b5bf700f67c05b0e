package models

// MaterialType classifies a learning resource.
type MaterialType string

const (
	MaterialDocument MaterialType = "Document"
	MaterialVideo    MaterialType = "Video"
	MaterialLink     MaterialType = "Link"
	MaterialNote     MaterialType = "Note"
)

// Material is a learning resource uploaded for a course.
type Material struct {
	ID          string       `json:"id"`
	Title       string       `json:"title" validate:"required"`
	Type        MaterialType `json:"type" validate:"required,oneof=Document Video Link Note"`
	CourseTitle string       `json:"courseTitle"`
	Author      string       `json:"author"`
	UploadDate  string       `json:"uploadDate"`
	Size        string       `json:"size,omitempty"`
}
