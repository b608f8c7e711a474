package store

import (
	"context"
	"reflect"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hostelhub/hostelhub/internal/pkg/apperrors"
)

// Memory is an in-process Store used by tests. It honors the same
// contract as Mongo: server-assigned ObjectIDs, created_at/updated_at
// stamping, equality filters, and the $expr/$lt two-field comparison
// the room availability query relies on.
type Memory struct {
	mu          sync.Mutex
	collections map[string]map[primitive.ObjectID]bson.M
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string]map[primitive.ObjectID]bson.M)}
}

func (m *Memory) coll(name string) map[primitive.ObjectID]bson.M {
	c, ok := m.collections[name]
	if !ok {
		c = make(map[primitive.ObjectID]bson.M)
		m.collections[name] = c
	}
	return c
}

func cloneDoc(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	}
	return 0, false
}

// matches evaluates a filter against a document. Supported: field
// equality and {"$expr": {"$lt": ["$a", "$b"]}}.
func matches(doc, filter bson.M) bool {
	for key, want := range filter {
		if key == "$expr" {
			expr, ok := want.(bson.M)
			if !ok {
				return false
			}
			lt, ok := expr["$lt"].([]interface{})
			if !ok || len(lt) != 2 {
				return false
			}
			a, aok := fieldRef(doc, lt[0])
			b, bok := fieldRef(doc, lt[1])
			if !aok || !bok || a >= b {
				return false
			}
			continue
		}
		got, ok := doc[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func fieldRef(doc bson.M, ref interface{}) (int64, bool) {
	name, ok := ref.(string)
	if !ok || len(name) < 2 || name[0] != '$' {
		return 0, false
	}
	return toInt64(doc[name[1:]])
}

func (m *Memory) Insert(_ context.Context, collection string, doc bson.M) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	stored := cloneDoc(doc)
	id := primitive.NewObjectID()
	stored["_id"] = id
	stored["created_at"] = now
	stored["updated_at"] = now

	m.coll(collection)[id] = stored
	return id.Hex(), nil
}

func (m *Memory) FindOne(_ context.Context, collection string, filter bson.M) (bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.coll(collection) {
		if matches(doc, filter) {
			return cloneDoc(doc), nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (m *Memory) FindAll(_ context.Context, collection string, filter bson.M) ([]bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs := []bson.M{}
	for _, doc := range m.coll(collection) {
		if matches(doc, filter) {
			docs = append(docs, cloneDoc(doc))
		}
	}
	return docs, nil
}

func (m *Memory) UpdateOne(_ context.Context, collection string, filter, set bson.M) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.coll(collection) {
		if matches(doc, filter) {
			for k, v := range set {
				doc[k] = v
			}
			doc["updated_at"] = time.Now().UTC()
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) DeleteOne(_ context.Context, collection string, filter bson.M) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, doc := range m.coll(collection) {
		if matches(doc, filter) {
			delete(m.coll(collection), id)
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) IncrementField(_ context.Context, collection string, filter bson.M, field string, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.coll(collection) {
		if matches(doc, filter) {
			cur, _ := toInt64(doc[field])
			doc[field] = cur + int64(delta)
			doc["updated_at"] = time.Now().UTC()
			return nil
		}
	}
	return nil
}

func (m *Memory) CollectionNames(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Memory) Ping(_ context.Context) error {
	return nil
}
