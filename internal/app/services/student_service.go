package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	appauth "github.com/hostelhub/hostelhub/internal/app/auth"
	"github.com/hostelhub/hostelhub/internal/app/models"
	"github.com/hostelhub/hostelhub/internal/pkg/apperrors"
	"github.com/hostelhub/hostelhub/internal/store"
)

// StudentService defines the interface for student profile operations
type StudentService interface {
	Create(ctx context.Context, student *models.Student) (string, error)
	Get(ctx context.Context, identity appauth.Identity, id string) (bson.M, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type studentServiceImpl struct {
	store store.Store
}

// NewStudentService creates a new student service instance
func NewStudentService(st store.Store) StudentService {
	return &studentServiceImpl{store: st}
}

func (s *studentServiceImpl) Create(ctx context.Context, student *models.Student) (string, error) {
	doc := bson.M{
		"user_id": student.UserID,
	}
	if student.DOB != "" {
		doc["dob"] = student.DOB
	}
	if student.Phone != "" {
		doc["phone"] = student.Phone
	}
	if student.Address != "" {
		doc["address"] = student.Address
	}
	if student.GuardianInfo != nil {
		doc["guardian_info"] = bson.M{
			"name":     student.GuardianInfo.Name,
			"phone":    student.GuardianInfo.Phone,
			"relation": student.GuardianInfo.Relation,
		}
	}
	if student.AdditionalDetails != nil {
		doc["additional_details"] = student.AdditionalDetails
	}
	if student.Documents != nil {
		doc["documents"] = student.Documents
	}

	return s.store.Insert(ctx, store.CollectionStudent, doc)
}

// Get fetches a profile by id. A student identity may only read the
// profile whose user_id matches their own id; absence is reported
// before ownership is evaluated.
func (s *studentServiceImpl) Get(ctx context.Context, identity appauth.Identity, id string) (bson.M, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}

	doc, err := s.store.FindOne(ctx, store.CollectionStudent, bson.M{"_id": oid})
	if err != nil {
		return nil, apperrors.ErrStudentNotFound
	}

	owner, _ := doc["user_id"].(string)
	if err := appauth.RequireSelfOrRole(identity, owner, appauth.StaffRoles...); err != nil {
		return nil, err
	}

	return store.Public(doc), nil
}

// Update applies an open patch object via $set. Server-managed
// fields are stripped first.
func (s *studentServiceImpl) Update(ctx context.Context, id string, patch map[string]interface{}) error {
	oid, err := store.ParseID(id)
	if err != nil {
		return err
	}

	set := bson.M{}
	for k, v := range patch {
		switch k {
		case "_id", "id", "created_at", "updated_at":
			continue
		}
		set[k] = v
	}
	if len(set) == 0 {
		return fmt.Errorf("%w: empty update", apperrors.ErrValidationFailed)
	}

	matched, err := s.store.UpdateOne(ctx, store.CollectionStudent, bson.M{"_id": oid}, set)
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

func (s *studentServiceImpl) Delete(ctx context.Context, id string) error {
	oid, err := store.ParseID(id)
	if err != nil {
		return err
	}

	deleted, err := s.store.DeleteOne(ctx, store.CollectionStudent, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
