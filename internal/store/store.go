package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hostelhub/hostelhub/internal/pkg/apperrors"
)

// Collection names, one per entity. The store itself is schemaless;
// these are the only names the services write to.
const (
	CollectionUser            = "user"
	CollectionStudent         = "student"
	CollectionHostel          = "hostel"
	CollectionRoom            = "room"
	CollectionRoomAllocation  = "roomallocation"
	CollectionFee             = "fee"
	CollectionAttendance      = "attendance"
	CollectionLateEntry       = "lateentry"
	CollectionLeaveRequest    = "leaverequest"
	CollectionComplaint       = "complaint"
	CollectionComplaintUpdate = "complaintupdate"
	CollectionInventory       = "inventory"
	CollectionMaintenance     = "maintenance"
	CollectionNotification    = "notification"
)

// Store is the document store contract. Every persisted record gets a
// store-assigned ObjectID plus created_at/updated_at timestamps; the
// caller never supplies either. Implementations provide per-document
// atomicity and nothing more.
type Store interface {
	// Insert stamps created_at = updated_at = now, inserts the
	// document and returns the new id as a hex string.
	Insert(ctx context.Context, collection string, doc bson.M) (string, error)

	// FindOne returns the first match or apperrors.ErrResourceNotFound.
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error)

	// FindAll returns all matches with no ordering guarantee.
	FindAll(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)

	// UpdateOne applies the patch via $set together with a fresh
	// updated_at and reports whether a document matched. Never upserts.
	UpdateOne(ctx context.Context, collection string, filter, set bson.M) (bool, error)

	// DeleteOne removes the first match and reports whether one existed.
	DeleteOne(ctx context.Context, collection string, filter bson.M) (bool, error)

	// IncrementField atomically bumps a numeric field by delta and
	// refreshes updated_at.
	IncrementField(ctx context.Context, collection string, filter bson.M, field string, delta int) error

	// CollectionNames lists the collections present, for diagnostics.
	CollectionNames(ctx context.Context) ([]string, error)

	// Ping probes store connectivity.
	Ping(ctx context.Context) error
}

// ParseID converts a caller-supplied id string into an ObjectID.
// Malformed input fails with apperrors.ErrInvalidID before any store
// round trip happens.
func ParseID(s string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", apperrors.ErrInvalidID, s)
	}
	return oid, nil
}

// Public rewrites a stored document for API output: the internal _id
// becomes a string id field. The input map is not modified.
func Public(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		if k == "_id" {
			if oid, ok := v.(primitive.ObjectID); ok {
				out["id"] = oid.Hex()
				continue
			}
			out["id"] = fmt.Sprintf("%v", v)
			continue
		}
		out[k] = v
	}
	return out
}
