package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	appauth "github.com/hostelhub/hostelhub/internal/app/auth"
	"github.com/hostelhub/hostelhub/internal/app/models"
	"github.com/hostelhub/hostelhub/internal/app/models/dto"
	"github.com/hostelhub/hostelhub/internal/pkg/apperrors"
	"github.com/hostelhub/hostelhub/internal/store"
)

// AttendanceService defines the interface for attendance, late entry
// and leave operations
type AttendanceService interface {
	Mark(ctx context.Context, att *models.Attendance) (string, error)
	RecordLateEntry(ctx context.Context, entry *models.LateEntry) (string, error)
	RequestLeave(ctx context.Context, identity appauth.Identity, req *models.LeaveRequest) (string, error)
	SetLeaveStatus(ctx context.Context, id string, req *dto.LeaveStatusRequest) error
}

type attendanceServiceImpl struct {
	store store.Store
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(st store.Store) AttendanceService {
	return &attendanceServiceImpl{store: st}
}

// Mark records daily attendance. One record per (student, date) is
// the intent, but duplicates are not detected.
func (s *attendanceServiceImpl) Mark(ctx context.Context, att *models.Attendance) (string, error) {
	doc := bson.M{
		"student_id": att.StudentID,
		"date":       att.Date,
		"status":     att.Status,
	}
	return s.store.Insert(ctx, store.CollectionAttendance, doc)
}

func (s *attendanceServiceImpl) RecordLateEntry(ctx context.Context, entry *models.LateEntry) (string, error) {
	doc := bson.M{
		"student_id": entry.StudentID,
		"date_time":  entry.DateTime,
	}
	if entry.Reason != "" {
		doc["reason"] = entry.Reason
	}
	return s.store.Insert(ctx, store.CollectionLateEntry, doc)
}

// RequestLeave creates a leave request. Staff roles may file for any
// student; a student identity may only file for their own id.
func (s *attendanceServiceImpl) RequestLeave(ctx context.Context, identity appauth.Identity, req *models.LeaveRequest) (string, error) {
	if err := appauth.RequireSelfOrRole(identity, req.StudentID, appauth.StaffRoles...); err != nil {
		return "", err
	}

	status := req.Status
	if status == "" {
		status = models.LeaveStatusPending
	}

	doc := bson.M{
		"student_id": req.StudentID,
		"from_date":  req.FromDate,
		"to_date":    req.ToDate,
		"status":     status,
	}
	if req.Reason != "" {
		doc["reason"] = req.Reason
	}
	return s.store.Insert(ctx, store.CollectionLeaveRequest, doc)
}

// SetLeaveStatus overwrites the status directly. No transition rule
// is applied: approved back to pending is accepted.
func (s *attendanceServiceImpl) SetLeaveStatus(ctx context.Context, id string, req *dto.LeaveStatusRequest) error {
	oid, err := store.ParseID(id)
	if err != nil {
		return err
	}

	matched, err := s.store.UpdateOne(ctx, store.CollectionLeaveRequest, bson.M{"_id": oid}, bson.M{"status": req.Status})
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.ErrLeaveNotFound
	}
	return nil
}
