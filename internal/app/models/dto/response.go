package dto

import "time"

// APIResponse is the standard success envelope.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// IDResponse is returned by every create operation.
type IDResponse struct {
	ID string `json:"id" example:"64b7f3a2e13f4c0001a2b3c4"`
}

// UpdatedResponse acknowledges an in-place update.
type UpdatedResponse struct {
	Updated bool `json:"updated" example:"true"`
}

// DeletedResponse acknowledges a deletion.
type DeletedResponse struct {
	Deleted bool `json:"deleted" example:"true"`
}

// PaidResponse acknowledges a fee payment.
type PaidResponse struct {
	Paid bool `json:"paid" example:"true"`
}
