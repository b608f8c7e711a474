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

// ComplaintService defines the interface for complaint operations
type ComplaintService interface {
	Create(ctx context.Context, identity appauth.Identity, complaint *models.Complaint) (string, error)
	AddUpdate(ctx context.Context, identity appauth.Identity, complaintID string, req *dto.ComplaintUpdateRequest) (string, error)
}

type complaintServiceImpl struct {
	store store.Store
}

// NewComplaintService creates a new complaint service instance
func NewComplaintService(st store.Store) ComplaintService {
	return &complaintServiceImpl{store: st}
}

// Create files a complaint. Staff roles may file for any student; a
// student identity may only file for their own id.
func (s *complaintServiceImpl) Create(ctx context.Context, identity appauth.Identity, complaint *models.Complaint) (string, error) {
	if err := appauth.RequireSelfOrRole(identity, complaint.StudentID, appauth.StaffRoles...); err != nil {
		return "", err
	}

	status := complaint.Status
	if status == "" {
		status = models.ComplaintStatusOpen
	}

	doc := bson.M{
		"student_id":  complaint.StudentID,
		"category":    complaint.Category,
		"description": complaint.Description,
		"status":      status,
	}
	return s.store.Insert(ctx, store.CollectionComplaint, doc)
}

// AddUpdate appends a staff note to an existing complaint, then
// forces the parent status to in_progress. The transition is
// unconditional: a resolved or closed complaint is reopened.
func (s *complaintServiceImpl) AddUpdate(ctx context.Context, identity appauth.Identity, complaintID string, req *dto.ComplaintUpdateRequest) (string, error) {
	oid, err := store.ParseID(complaintID)
	if err != nil {
		return "", err
	}

	if _, err := s.store.FindOne(ctx, store.CollectionComplaint, bson.M{"_id": oid}); err != nil {
		return "", apperrors.ErrComplaintNotFound
	}

	doc := bson.M{
		"complaint_id": complaintID,
		"message":      req.Message,
		"updated_by":   identity.ID,
	}
	id, err := s.store.Insert(ctx, store.CollectionComplaintUpdate, doc)
	if err != nil {
		return "", err
	}

	if _, err := s.store.UpdateOne(ctx, store.CollectionComplaint, bson.M{"_id": oid}, bson.M{"status": models.ComplaintStatusInProgress}); err != nil {
		return "", err
	}

	return id, nil
}
