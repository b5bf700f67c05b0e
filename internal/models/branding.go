package models

// InstitutionalBranding carries the names printed on official documents.
type InstitutionalBranding struct {
	BureauName      string `json:"bureauName" validate:"required"`
	BureauNameLocal string `json:"bureauNameLocal"`
	ZoneName        string `json:"zoneName"`
	WoredaName      string `json:"woredaName"`
	SchoolName      string `json:"schoolName" validate:"required"`
	SchoolNameLocal string `json:"schoolNameLocal"`
	AcademicYear    string `json:"academicYear"`
}

// DefaultBranding is used whenever the stored document has none.
func DefaultBranding() InstitutionalBranding {
	return InstitutionalBranding{
		BureauName:      "Oromia Education Bureau",
		BureauNameLocal: "Biiroo Barnoota Oromiyaa",
		ZoneName:        "East Shewa Zone",
		WoredaName:      "Adama Woreda",
		SchoolName:      "IFTU Secondary & Preparatory School",
		SchoolNameLocal: "Mana Barumsaa Sadarkaa 2ffaa IFTU",
		AcademicYear:    "2024/25",
	}
}
