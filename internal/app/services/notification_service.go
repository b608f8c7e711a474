package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/hostelhub/hostelhub/internal/app/models"
	"github.com/hostelhub/hostelhub/internal/store"
)

// NotificationService defines the interface for notification
// operations
type NotificationService interface {
	Create(ctx context.Context, n *models.Notification) (string, error)
}

type notificationServiceImpl struct {
	store store.Store
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(st store.Store) NotificationService {
	return &notificationServiceImpl{store: st}
}

func (s *notificationServiceImpl) Create(ctx context.Context, n *models.Notification) (string, error) {
	typ := n.Type
	if typ == "" {
		typ = "info"
	}
	status := n.Status
	if status == "" {
		status = models.NotificationUnread
	}

	doc := bson.M{
		"user_id": n.UserID,
		"type":    typ,
		"message": n.Message,
		"status":  status,
	}
	return s.store.Insert(ctx, store.CollectionNotification, doc)
}
