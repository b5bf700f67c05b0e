package models

// NewsCategory groups institutional posts.
type NewsCategory string

const (
	NewsUpdate        NewsCategory = "Update"
	NewsEvent         NewsCategory = "Event"
	NewsInstitutional NewsCategory = "Institutional"
	NewsRecruitment   NewsCategory = "Recruitment"
	NewsHR            NewsCategory = "HR"
)

// NewsPost is a public post; posts with registration track sign-ups.
type NewsPost struct {
	ID                string       `json:"id"`
	Title             string       `json:"title" validate:"required"`
	Content           string       `json:"content" validate:"required"`
	Date              string       `json:"date"`
	Author            string       `json:"author"`
	Image             string       `json:"image,omitempty"`
	Category          NewsCategory `json:"category" validate:"omitempty,oneof=Update Event Institutional Recruitment HR"`
	HasRegistration   bool         `json:"hasRegistration"`
	RegistrationCount *int         `json:"registrationCount,omitempty" validate:"omitempty,gte=0"`
	Attachment        string       `json:"attachment,omitempty"`
}

// AnnouncementPriority ranks announcements on the board.
type AnnouncementPriority string

const (
	PriorityLow    AnnouncementPriority = "Low"
	PriorityMedium AnnouncementPriority = "Medium"
	PriorityHigh   AnnouncementPriority = "High"
)

// Announcement is a short notice shown on the dashboard.
type Announcement struct {
	ID       string               `json:"id"`
	Title    string               `json:"title" validate:"required"`
	Content  string               `json:"content"`
	Date     string               `json:"date"`
	Category string               `json:"category,omitempty"`
	Priority AnnouncementPriority `json:"priority" validate:"omitempty,oneof=Low Medium High"`
}
