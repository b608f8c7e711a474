package models

// Complaint defines a complaint in the 'complaint' collection.
type Complaint struct {
	StudentID   string `bson:"student_id" json:"student_id" binding:"required"`
	Category    string `bson:"category" json:"category" binding:"required"`
	Description string `bson:"description" json:"description" binding:"required"`
	Status      string `bson:"status" json:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
}

// ComplaintUpdate defines an append-only staff note in the
// 'complaintupdate' collection.
type ComplaintUpdate struct {
	ComplaintID string `bson:"complaint_id" json:"complaint_id"`
	Message     string `bson:"message" json:"message" binding:"required"`
	UpdatedBy   string `bson:"updated_by" json:"updated_by"`
}
