package models

import "time"

// Attendance defines a daily attendance record in the 'attendance'
// collection. One record per (student, date) is intended but nothing
// enforces it.
type Attendance struct {
	StudentID string `bson:"student_id" json:"student_id" binding:"required"`
	Date      string `bson:"date" json:"date" binding:"required,datetime=2006-01-02"`
	Status    string `bson:"status" json:"status" binding:"required,oneof=present absent leave"`
}

// LateEntry defines an append-only late entry record in the
// 'lateentry' collection.
type LateEntry struct {
	StudentID string    `bson:"student_id" json:"student_id" binding:"required"`
	DateTime  time.Time `bson:"date_time" json:"date_time" binding:"required"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
}

// LeaveRequest defines a leave request in the 'leaverequest'
// collection. Status moves only through the dedicated status action.
type LeaveRequest struct {
	StudentID string `bson:"student_id" json:"student_id" binding:"required"`
	FromDate  string `bson:"from_date" json:"from_date" binding:"required,datetime=2006-01-02"`
	ToDate    string `bson:"to_date" json:"to_date" binding:"required,datetime=2006-01-02"`
	Reason    string `bson:"reason,omitempty" json:"reason,omitempty"`
	Status    string `bson:"status" json:"status" binding:"omitempty,oneof=pending approved rejected"`
}
