package models

// PaymentMethod is the channel a transaction went through.
type PaymentMethod string

const (
	MethodTelebirr PaymentMethod = "Telebirr"
	MethodCBE      PaymentMethod = "CBE"
	MethodSystem   PaymentMethod = "System"
)

// TransactionType distinguishes charges from payments.
type TransactionType string

const (
	TransactionCredit TransactionType = "Credit"
	TransactionDebit  TransactionType = "Debit"
)

// PaymentStatus tracks settlement.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "Completed"
	PaymentPending   PaymentStatus = "Pending"
)

// TuitionTransactionPrefix prefixes the tuition debit created for a new student.
const TuitionTransactionPrefix = "tuition-"

// PaymentTransaction is one ledger entry.
type PaymentTransaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount" validate:"gt=0"`
	Method      PaymentMethod   `json:"method" validate:"required,oneof=Telebirr CBE System"`
	Type        TransactionType `json:"type" validate:"required,oneof=Credit Debit"`
	Status      PaymentStatus   `json:"status" validate:"required,oneof=Completed Pending"`
	StudentID   string          `json:"studentId,omitempty"`
}

// BelongsTo reports whether the transaction is attributed to studentID,
// either explicitly or through the tuition record id.
func (t PaymentTransaction) BelongsTo(studentID string) bool {
	return t.StudentID == studentID || t.ID == TuitionTransactionPrefix+studentID
}
