package dto

// Balance reports the outstanding amount owed.
type Balance struct {
	StudentID   string  `json:"studentId,omitempty"`
	Debits      float64 `json:"debits"`
	Credits     float64 `json:"credits"`
	Outstanding float64 `json:"outstanding"`
	Raw         float64 `json:"raw"`
}

// PaymentRequest records a payment made through a mobile or bank channel.
type PaymentRequest struct {
	StudentID   string  `json:"studentId"`
	Amount      float64 `json:"amount" validate:"gt=0"`
	Method      string  `json:"method" validate:"required,oneof=Telebirr CBE"`
	Description string  `json:"description"`
}
