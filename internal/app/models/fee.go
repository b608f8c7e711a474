package models

// Fee defines a fee record in the 'fee' collection. transaction_id
// and payment_date are set only by the pay action.
type Fee struct {
	StudentID string  `bson:"student_id" json:"student_id" binding:"required"`
	Amount    float64 `bson:"amount" json:"amount" binding:"required"`
	DueDate   string  `bson:"due_date" json:"due_date" binding:"required,datetime=2006-01-02"`
	Status    string  `bson:"status" json:"status" binding:"omitempty,oneof=paid unpaid"`
}
