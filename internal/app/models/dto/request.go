package dto

// PayFeeRequest is the body of the fee pay action.
type PayFeeRequest struct {
	TransactionID string `json:"transaction_id,omitempty"`
}

// LeaveStatusRequest is the body of the leave status action. The
// transition is a direct overwrite; no legality check is applied.
type LeaveStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// ComplaintUpdateRequest is the body of the complaint update action.
type ComplaintUpdateRequest struct {
	Message string `json:"message" binding:"required"`
}
