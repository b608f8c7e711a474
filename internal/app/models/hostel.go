package models

// Hostel defines a hostel building in the 'hostel' collection.
type Hostel struct {
	Name     string `bson:"name" json:"name" binding:"required"`
	Location string `bson:"location,omitempty" json:"location,omitempty"`
	WardenID string `bson:"warden_id,omitempty" json:"warden_id,omitempty"`
}

// Room defines a room in the 'room' collection. A room is available
// while current_occupancy < capacity. The counter is only ever moved
// by the allocation side effect, never by a client patch.
type Room struct {
	HostelID         string `bson:"hostel_id" json:"hostel_id" binding:"required"`
	RoomNo           string `bson:"room_no" json:"room_no" binding:"required"`
	Capacity         int    `bson:"capacity" json:"capacity" binding:"required,min=1"`
	CurrentOccupancy int    `bson:"current_occupancy" json:"current_occupancy"`
	Type             string `bson:"type,omitempty" json:"type,omitempty"`
	Floor            int    `bson:"floor,omitempty" json:"floor,omitempty"`
}

// RoomAllocation links a student to a room in the 'roomallocation'
// collection.
type RoomAllocation struct {
	StudentID      string `bson:"student_id" json:"student_id" binding:"required"`
	RoomID         string `bson:"room_id" json:"room_id" binding:"required"`
	AllocationDate string `bson:"allocation_date" json:"allocation_date" binding:"required,datetime=2006-01-02"`
	ExitDate       string `bson:"exit_date,omitempty" json:"exit_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}
