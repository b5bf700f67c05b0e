package models

// SchoolType classifies a campus.
type SchoolType string

const (
	SchoolCentral    SchoolType = "Central"
	SchoolBranch     SchoolType = "Branch"
	SchoolHub        SchoolType = "Hub"
	SchoolOnline     SchoolType = "Online"
	SchoolVocational SchoolType = "Vocational"
)

// School is a campus of the institution.
type School struct {
	ID          string     `json:"id"`
	Name        string     `json:"name" validate:"required"`
	Location    string     `json:"location"`
	Type        SchoolType `json:"type" validate:"required,oneof=Central Branch Hub Online Vocational"`
	Students    int        `json:"students" validate:"gte=0"`
	Programs    []string   `json:"programs"`
	Phone       string     `json:"phone,omitempty"`
	Web         string     `json:"web,omitempty"`
	Principal   string     `json:"principal,omitempty"`
	Established string     `json:"established,omitempty"`
	Image       string     `json:"image,omitempty"`
}
