package models

// Notification defines a user-targeted notification in the
// 'notification' collection.
type Notification struct {
	UserID  string `bson:"user_id" json:"user_id" binding:"required"`
	Type    string `bson:"type,omitempty" json:"type,omitempty"`
	Message string `bson:"message" json:"message" binding:"required"`
	Status  string `bson:"status" json:"status" binding:"omitempty,oneof=unread read"`
}
