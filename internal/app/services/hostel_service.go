package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/hostelhub/hostelhub/internal/app/models"
	"github.com/hostelhub/hostelhub/internal/pkg/logger"
	"github.com/hostelhub/hostelhub/internal/store"
)

// HostelService defines the interface for hostel and room operations
type HostelService interface {
	CreateHostel(ctx context.Context, hostel *models.Hostel) (string, error)
	CreateRoom(ctx context.Context, room *models.Room) (string, error)
	AvailableRooms(ctx context.Context) ([]bson.M, error)
	AllocateRoom(ctx context.Context, alloc *models.RoomAllocation) (string, error)
}

type hostelServiceImpl struct {
	store store.Store
}

// NewHostelService creates a new hostel service instance
func NewHostelService(st store.Store) HostelService {
	return &hostelServiceImpl{store: st}
}

func (s *hostelServiceImpl) CreateHostel(ctx context.Context, hostel *models.Hostel) (string, error) {
	doc := bson.M{
		"name": hostel.Name,
	}
	if hostel.Location != "" {
		doc["location"] = hostel.Location
	}
	if hostel.WardenID != "" {
		doc["warden_id"] = hostel.WardenID
	}
	return s.store.Insert(ctx, store.CollectionHostel, doc)
}

// CreateRoom stores a room with occupancy forced to zero. The counter
// only ever moves through the allocation side effect.
func (s *hostelServiceImpl) CreateRoom(ctx context.Context, room *models.Room) (string, error) {
	doc := bson.M{
		"hostel_id":         room.HostelID,
		"room_no":           room.RoomNo,
		"capacity":          room.Capacity,
		"current_occupancy": 0,
	}
	if room.Type != "" {
		doc["type"] = room.Type
	}
	if room.Floor != 0 {
		doc["floor"] = room.Floor
	}
	return s.store.Insert(ctx, store.CollectionRoom, doc)
}

// AvailableRooms lists rooms with current_occupancy < capacity.
func (s *hostelServiceImpl) AvailableRooms(ctx context.Context) ([]bson.M, error) {
	docs, err := s.store.FindAll(ctx, store.CollectionRoom, bson.M{
		"$expr": bson.M{"$lt": []interface{}{"$current_occupancy", "$capacity"}},
	})
	if err != nil {
		return nil, err
	}

	rooms := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		rooms = append(rooms, store.Public(doc))
	}
	return rooms, nil
}

// AllocateRoom creates the allocation record, then bumps the room's
// occupancy counter. The two writes are not atomic with each other
// and no capacity check guards them: allocating past capacity
// succeeds and the counter overshoots. The allocation id is returned
// once the create succeeds, regardless of the increment outcome.
func (s *hostelServiceImpl) AllocateRoom(ctx context.Context, alloc *models.RoomAllocation) (string, error) {
	roomID, err := store.ParseID(alloc.RoomID)
	if err != nil {
		return "", err
	}

	doc := bson.M{
		"student_id":      alloc.StudentID,
		"room_id":         alloc.RoomID,
		"allocation_date": alloc.AllocationDate,
	}
	if alloc.ExitDate != "" {
		doc["exit_date"] = alloc.ExitDate
	}

	id, err := s.store.Insert(ctx, store.CollectionRoomAllocation, doc)
	if err != nil {
		return "", err
	}

	if err := s.store.IncrementField(ctx, store.CollectionRoom, bson.M{"_id": roomID}, "current_occupancy", 1); err != nil {
		logger.Error().Err(err).Str("roomId", alloc.RoomID).Msg("Occupancy increment failed after allocation create")
	}

	return id, nil
}
