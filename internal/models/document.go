package models

// SchemaVersion tags the persisted document shape. Documents carrying another
// version are discarded in favour of the seed dataset.
const SchemaVersion = 1

// Document is the single serialized root holding every entity collection.
type Document struct {
	SchemaVersion   int                     `json:"schemaVersion"`
	Users           Users                   `json:"users"`
	Courses         []Course                `json:"courses"`
	Schools         []School                `json:"schools"`
	Exams           []Exam                  `json:"exams"`
	Materials       []Material              `json:"materials"`
	News            []NewsPost              `json:"news"`
	Announcements   []Announcement          `json:"announcements"`
	Payments        []PaymentTransaction    `json:"payments"`
	AcademicRecords []StudentAcademicRecord `json:"academicRecords"`
	Branding        *InstitutionalBranding  `json:"branding,omitempty"`
}
