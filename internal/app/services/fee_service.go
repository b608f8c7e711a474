package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/hostelhub/hostelhub/internal/app/models"
	"github.com/hostelhub/hostelhub/internal/app/models/dto"
	"github.com/hostelhub/hostelhub/internal/pkg/apperrors"
	"github.com/hostelhub/hostelhub/internal/store"
)

// FeeService defines the interface for fee operations
type FeeService interface {
	Create(ctx context.Context, fee *models.Fee) (string, error)
	Pay(ctx context.Context, id string, req *dto.PayFeeRequest) error
}

type feeServiceImpl struct {
	store store.Store
}

// NewFeeService creates a new fee service instance
func NewFeeService(st store.Store) FeeService {
	return &feeServiceImpl{store: st}
}

func (s *feeServiceImpl) Create(ctx context.Context, fee *models.Fee) (string, error) {
	status := fee.Status
	if status == "" {
		status = models.FeeStatusUnpaid
	}

	doc := bson.M{
		"student_id": fee.StudentID,
		"amount":     fee.Amount,
		"due_date":   fee.DueDate,
		"status":     status,
	}
	return s.store.Insert(ctx, store.CollectionFee, doc)
}

// Pay marks a fee paid and stamps the transaction id and payment
// date. There is no reversal operation.
func (s *feeServiceImpl) Pay(ctx context.Context, id string, req *dto.PayFeeRequest) error {
	oid, err := store.ParseID(id)
	if err != nil {
		return err
	}

	set := bson.M{
		"status":         models.FeeStatusPaid,
		"transaction_id": req.TransactionID,
		"payment_date":   time.Now().UTC(),
	}

	matched, err := s.store.UpdateOne(ctx, store.CollectionFee, bson.M{"_id": oid}, set)
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.ErrFeeNotFound
	}
	return nil
}
