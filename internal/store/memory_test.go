package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/hostelhub/hostelhub/internal/pkg/apperrors"
)

func TestParseID(t *testing.T) {
	if _, err := ParseID("64b7f3a2e13f4c0001a2b3c4"); err != nil {
		t.Errorf("valid id rejected: %v", err)
	}
	for _, bad := range []string{"", "xyz", "s1", "64b7f3a2e13f4c0001a2b3c"} {
		if _, err := ParseID(bad); !errors.Is(err, apperrors.ErrInvalidID) {
			t.Errorf("ParseID(%q) err = %v, want ErrInvalidID", bad, err)
		}
	}
}

func TestInsertAndFindOne(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	id, err := m.Insert(ctx, CollectionFee, bson.M{"student_id": "s1", "amount": 500.0, "status": "unpaid"})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	oid, err := ParseID(id)
	if err != nil {
		t.Fatalf("returned id not a valid ObjectID: %v", err)
	}

	doc, err := m.FindOne(ctx, CollectionFee, bson.M{"_id": oid})
	if err != nil {
		t.Fatalf("FindOne: %v", err)
	}
	if doc["student_id"] != "s1" || doc["amount"] != 500.0 {
		t.Errorf("submitted fields changed: %v", doc)
	}

	created, ok := doc["created_at"].(time.Time)
	if !ok {
		t.Fatalf("created_at missing")
	}
	updated, ok := doc["updated_at"].(time.Time)
	if !ok {
		t.Fatalf("updated_at missing")
	}
	if !created.Equal(updated) {
		t.Errorf("created_at %v != updated_at %v on insert", created, updated)
	}
}

func TestFindOneAbsent(t *testing.T) {
	m := NewMemory()
	if _, err := m.FindOne(context.Background(), CollectionUser, bson.M{"email": "nobody@hostel.edu"}); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("err = %v, want ErrResourceNotFound", err)
	}
}

func TestUpdateOne(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	id, _ := m.Insert(ctx, CollectionLeaveRequest, bson.M{"student_id": "s1", "status": "pending", "reason": "family visit"})
	oid, _ := ParseID(id)

	before, _ := m.FindOne(ctx, CollectionLeaveRequest, bson.M{"_id": oid})
	created := before["created_at"].(time.Time)

	time.Sleep(5 * time.Millisecond)

	matched, err := m.UpdateOne(ctx, CollectionLeaveRequest, bson.M{"_id": oid}, bson.M{"status": "approved"})
	if err != nil || !matched {
		t.Fatalf("UpdateOne matched=%v err=%v", matched, err)
	}

	after, _ := m.FindOne(ctx, CollectionLeaveRequest, bson.M{"_id": oid})
	if after["status"] != "approved" {
		t.Errorf("status = %v", after["status"])
	}
	if after["reason"] != "family visit" {
		t.Errorf("unpatched field changed: %v", after["reason"])
	}
	if !after["created_at"].(time.Time).Equal(created) {
		t.Errorf("created_at moved on update")
	}
	if !after["updated_at"].(time.Time).After(created) {
		t.Errorf("updated_at did not advance")
	}

	matched, err = m.UpdateOne(ctx, CollectionLeaveRequest, bson.M{"status": "no-such"}, bson.M{"status": "x"})
	if err != nil || matched {
		t.Errorf("update of absent doc matched=%v err=%v", matched, err)
	}
}

func TestDeleteOne(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	id, _ := m.Insert(ctx, CollectionStudent, bson.M{"user_id": "u1"})
	oid, _ := ParseID(id)

	deleted, err := m.DeleteOne(ctx, CollectionStudent, bson.M{"_id": oid})
	if err != nil || !deleted {
		t.Fatalf("DeleteOne deleted=%v err=%v", deleted, err)
	}
	if _, err := m.FindOne(ctx, CollectionStudent, bson.M{"_id": oid}); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("doc still present after delete")
	}

	deleted, err = m.DeleteOne(ctx, CollectionStudent, bson.M{"_id": oid})
	if err != nil || deleted {
		t.Errorf("second delete deleted=%v err=%v", deleted, err)
	}
}

func TestIncrementField(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	id, _ := m.Insert(ctx, CollectionRoom, bson.M{"room_no": "A101", "capacity": 2, "current_occupancy": 0})
	oid, _ := ParseID(id)

	for i := 0; i < 3; i++ {
		if err := m.IncrementField(ctx, CollectionRoom, bson.M{"_id": oid}, "current_occupancy", 1); err != nil {
			t.Fatalf("IncrementField: %v", err)
		}
	}

	doc, _ := m.FindOne(ctx, CollectionRoom, bson.M{"_id": oid})
	if got, _ := toInt64(doc["current_occupancy"]); got != 3 {
		t.Errorf("current_occupancy = %d, want 3", got)
	}
}

func TestAvailabilityFilter(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	fullID, _ := m.Insert(ctx, CollectionRoom, bson.M{"room_no": "A101", "capacity": 1, "current_occupancy": 0})
	_, _ = m.Insert(ctx, CollectionRoom, bson.M{"room_no": "A102", "capacity": 3, "current_occupancy": 1})

	oid, _ := ParseID(fullID)
	_ = m.IncrementField(ctx, CollectionRoom, bson.M{"_id": oid}, "current_occupancy", 1)

	available, err := m.FindAll(ctx, CollectionRoom, bson.M{
		"$expr": bson.M{"$lt": []interface{}{"$current_occupancy", "$capacity"}},
	})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(available) != 1 || available[0]["room_no"] != "A102" {
		t.Errorf("available = %v, want only A102", available)
	}
}

func TestPublic(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	id, _ := m.Insert(ctx, CollectionHostel, bson.M{"name": "North Block"})
	oid, _ := ParseID(id)

	doc, _ := m.FindOne(ctx, CollectionHostel, bson.M{"_id": oid})
	pub := Public(doc)

	if pub["id"] != id {
		t.Errorf("id = %v, want %v", pub["id"], id)
	}
	if _, exists := pub["_id"]; exists {
		t.Errorf("_id leaked into public doc")
	}
	if doc["_id"] == nil {
		t.Errorf("input doc mutated")
	}
}
