package models

import "strings"

// Role defines the closed set of user privilege levels.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleWarden  Role = "warden"
	RoleStaff   Role = "staff"
	RoleStudent Role = "student"
)

// ParseRole normalizes and validates a role string. Anything outside
// the closed set is rejected rather than compared as a raw string.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleWarden:
		return RoleWarden, true
	case RoleStaff:
		return RoleStaff, true
	case RoleStudent:
		return RoleStudent, true
	}
	return "", false
}

// FeeStatus values
const (
	FeeStatusUnpaid = "unpaid"
	FeeStatusPaid   = "paid"
)

// AttendanceStatus values
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLeave   = "leave"
)

// LeaveStatus values
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// ComplaintStatus values
const (
	ComplaintStatusOpen       = "open"
	ComplaintStatusInProgress = "in_progress"
	ComplaintStatusResolved   = "resolved"
	ComplaintStatusClosed     = "closed"
)

// NotificationStatus values
const (
	NotificationUnread = "unread"
	NotificationRead   = "read"
)
