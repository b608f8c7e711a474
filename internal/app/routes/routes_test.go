package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hostelhub/hostelhub/internal/bootstrap"
	"github.com/hostelhub/hostelhub/internal/config"
	pkgauth "github.com/hostelhub/hostelhub/internal/pkg/auth"
	"github.com/hostelhub/hostelhub/internal/store"
)

const testSecret = "test-secret"

type testEnv struct {
	router *gin.Engine
	store  *store.Memory

	adminID   string
	wardenID  string
	staffID   string
	studentID string

	adminToken   string
	wardenToken  string
	staffToken   string
	studentToken string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Mode = "production"
	cfg.JWT.Secret = testSecret
	cfg.JWT.ExpiresMin = 60
	cfg.JWT.Issuer = "hostelhub-test"

	st := store.NewMemory()
	deps := bootstrap.BuildDependencies(cfg, st, "hostelhub-test")
	router := bootstrap.SetupRouter(cfg, deps)

	env := &testEnv{router: router, store: st}

	ctx := context.Background()
	env.adminID = seedUser(t, st, ctx, "Admin", "admin@hostel.edu", "admin")
	env.wardenID = seedUser(t, st, ctx, "Warden", "warden@hostel.edu", "warden")
	env.staffID = seedUser(t, st, ctx, "Staff", "staff@hostel.edu", "staff")
	env.studentID = seedUser(t, st, ctx, "Student", "student@hostel.edu", "student")

	env.adminToken = env.login(t, "admin@hostel.edu")
	env.wardenToken = env.login(t, "warden@hostel.edu")
	env.staffToken = env.login(t, "staff@hostel.edu")
	env.studentToken = env.login(t, "student@hostel.edu")

	return env
}

func seedUser(t *testing.T, st *store.Memory, ctx context.Context, name, email, role string) string {
	t.Helper()
	id, err := st.Insert(ctx, store.CollectionUser, bson.M{
		"name":     name,
		"email":    email,
		"password": "pass-" + strings.SplitN(email, "@", 2)[0],
		"role":     role,
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return id
}

func (e *testEnv) login(t *testing.T, email string) string {
	t.Helper()
	local := strings.SplitN(email, "@", 2)[0]
	w := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "pass-" + local,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", email, w.Code, w.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.AccessToken == "" {
		t.Fatalf("login %s: bad body %s", email, w.Body.String())
	}
	return resp.AccessToken
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.ID == "" {
		t.Fatalf("expected id response, got %s", w.Body.String())
	}
	return resp.ID
}

func (e *testEnv) findByID(t *testing.T, collection, id string) bson.M {
	t.Helper()
	oid, err := store.ParseID(id)
	if err != nil {
		t.Fatalf("bad id %q: %v", id, err)
	}
	doc, err := e.store.FindOne(context.Background(), collection, bson.M{"_id": oid})
	if err != nil {
		t.Fatalf("doc %s/%s not found: %v", collection, id, err)
	}
	return doc
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "warden@hostel.edu", "password": "pass-warden",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.TokenType != "bearer" || resp.ExpiresIn != 3600 {
		t.Errorf("token_type=%q expires_in=%d", resp.TokenType, resp.ExpiresIn)
	}

	// The issued token carries the stored role.
	me := env.do(t, http.MethodGet, "/api/auth/me", resp.AccessToken, nil)
	if me.Code != http.StatusOK {
		t.Fatalf("me status = %d", me.Code)
	}
	var identity struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := json.Unmarshal(me.Body.Bytes(), &identity); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if identity.Role != "warden" || identity.Email != "warden@hostel.edu" || identity.ID != env.wardenID {
		t.Errorf("identity = %+v", identity)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []map[string]string{
		{"email": "warden@hostel.edu", "password": "wrong"},
		{"email": "nobody@hostel.edu", "password": "pass-warden"},
	} {
		w := env.do(t, http.MethodPost, "/api/auth/login", "", body)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("login %v: status = %d, want 401", body, w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("access_token")) {
			t.Errorf("token issued on failed login")
		}
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	if w := env.do(t, http.MethodGet, "/api/auth/me", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("missing token: status = %d", w.Code)
	}
	if w := env.do(t, http.MethodGet, "/api/auth/me", "garbage", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d", w.Code)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	env := newTestEnv(t)

	expired := pkgauth.NewJWTService(pkgauth.JWTConfig{Secret: testSecret, TokenTTL: -time.Minute, Issuer: "hostelhub-test"})
	token, _, err := expired.Generate(env.adminID, "Admin", "admin@hostel.edu", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if w := env.do(t, http.MethodGet, "/api/auth/me", token, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("expired token: status = %d, want 401", w.Code)
	}
}

func TestRevocationByUserDeletion(t *testing.T) {
	env := newTestEnv(t)

	oid, _ := store.ParseID(env.staffID)
	if _, err := env.store.DeleteOne(context.Background(), store.CollectionUser, bson.M{"_id": oid}); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	if w := env.do(t, http.MethodGet, "/api/auth/me", env.staffToken, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("deleted user token: status = %d, want 401", w.Code)
	}
}

func TestStudentLifecycle(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/students", env.staffToken, map[string]interface{}{
		"user_id": env.studentID,
		"dob":     "2004-06-15",
		"phone":   "555-0101",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: status %d body %s", w.Code, w.Body.String())
	}
	studentID := decodeID(t, w)

	// Round trip: submitted fields come back unchanged plus the id.
	w = env.do(t, http.MethodGet, "/api/students/"+studentID, env.staffToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: status %d", w.Code)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc["id"] != studentID || doc["user_id"] != env.studentID || doc["dob"] != "2004-06-15" || doc["phone"] != "555-0101" {
		t.Errorf("round trip mismatch: %v", doc)
	}

	stored := env.findByID(t, store.CollectionStudent, studentID)
	created := stored["created_at"].(time.Time)
	if !created.Equal(stored["updated_at"].(time.Time)) {
		t.Errorf("timestamps differ on create")
	}

	time.Sleep(5 * time.Millisecond)

	// Patch changes only the named field and advances updated_at.
	w = env.do(t, http.MethodPut, "/api/students/"+studentID, env.staffToken, map[string]interface{}{
		"phone": "555-0202",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: status %d", w.Code)
	}
	stored = env.findByID(t, store.CollectionStudent, studentID)
	if stored["phone"] != "555-0202" || stored["dob"] != "2004-06-15" {
		t.Errorf("patch applied wrong: %v", stored)
	}
	if !stored["created_at"].(time.Time).Equal(created) {
		t.Errorf("created_at moved")
	}
	if !stored["updated_at"].(time.Time).After(created) {
		t.Errorf("updated_at did not advance")
	}

	// Deletion is warden/admin only.
	if w := env.do(t, http.MethodDelete, "/api/students/"+studentID, env.staffToken, nil); w.Code != http.StatusForbidden {
		t.Errorf("staff delete: status %d, want 403", w.Code)
	}
	if w := env.do(t, http.MethodDelete, "/api/students/"+studentID, env.wardenToken, nil); w.Code != http.StatusOK {
		t.Errorf("warden delete: status %d", w.Code)
	}
	if w := env.do(t, http.MethodDelete, "/api/students/"+studentID, env.wardenToken, nil); w.Code != http.StatusNotFound {
		t.Errorf("second delete: status %d, want 404", w.Code)
	}
}

func TestStudentSelfOnlyRead(t *testing.T) {
	env := newTestEnv(t)

	otherUserID := seedUser(t, env.store, context.Background(), "Other", "other@hostel.edu", "student")
	otherToken := env.login(t, "other@hostel.edu")

	w := env.do(t, http.MethodPost, "/api/students", env.staffToken, map[string]interface{}{
		"user_id": env.studentID,
	})
	profileID := decodeID(t, w)

	// Owner reads their own profile.
	if w := env.do(t, http.MethodGet, "/api/students/"+profileID, env.studentToken, nil); w.Code != http.StatusOK {
		t.Errorf("owner read: status %d", w.Code)
	}
	// A different student is always forbidden.
	if w := env.do(t, http.MethodGet, "/api/students/"+profileID, otherToken, nil); w.Code != http.StatusForbidden {
		t.Errorf("other student read: status %d, want 403", w.Code)
	}
	// Students cannot create profiles at all.
	if w := env.do(t, http.MethodPost, "/api/students", otherToken, map[string]interface{}{"user_id": otherUserID}); w.Code != http.StatusForbidden {
		t.Errorf("student create: status %d, want 403", w.Code)
	}

	// Absence is reported before ownership.
	absent := primitive.NewObjectID().Hex()
	if w := env.do(t, http.MethodGet, "/api/students/"+absent, otherToken, nil); w.Code != http.StatusNotFound {
		t.Errorf("absent read: status %d, want 404", w.Code)
	}
	if w := env.do(t, http.MethodGet, "/api/students/not-an-id", env.staffToken, nil); w.Code != http.StatusBadRequest {
		t.Errorf("malformed id: status %d, want 400", w.Code)
	}
}

func TestRoomAllocationOvershootsCapacity(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/hostels", env.wardenToken, map[string]interface{}{
		"name": "North Block",
	})
	hostelID := decodeID(t, w)

	w = env.do(t, http.MethodPost, "/api/rooms", env.wardenToken, map[string]interface{}{
		"hostel_id": hostelID,
		"room_no":   "A101",
		"capacity":  2,
	})
	roomID := decodeID(t, w)

	// Room creation is warden/admin only.
	if w := env.do(t, http.MethodPost, "/api/rooms", env.staffToken, map[string]interface{}{
		"hostel_id": hostelID, "room_no": "A102", "capacity": 1,
	}); w.Code != http.StatusForbidden {
		t.Errorf("staff create room: status %d, want 403", w.Code)
	}

	// Three allocations against capacity 2: no guard, the counter
	// overshoots.
	for i := 0; i < 3; i++ {
		w = env.do(t, http.MethodPost, "/api/rooms/allocate", env.staffToken, map[string]interface{}{
			"student_id":      env.studentID,
			"room_id":         roomID,
			"allocation_date": "2024-01-10",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("allocate %d: status %d body %s", i, w.Code, w.Body.String())
		}
	}

	room := env.findByID(t, store.CollectionRoom, roomID)
	if occ, ok := room["current_occupancy"].(int64); !ok || occ != 3 {
		t.Errorf("current_occupancy = %v, want 3", room["current_occupancy"])
	}

	// The overfull room is no longer listed as available.
	w = env.do(t, http.MethodGet, "/api/rooms/available", env.studentToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("available: status %d", w.Code)
	}
	var rooms []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &rooms); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, r := range rooms {
		if r["id"] == roomID {
			t.Errorf("overfull room listed as available")
		}
	}

	if w := env.do(t, http.MethodPost, "/api/rooms/allocate", env.studentToken, map[string]interface{}{
		"student_id": env.studentID, "room_id": roomID, "allocation_date": "2024-01-10",
	}); w.Code != http.StatusForbidden {
		t.Errorf("student allocate: status %d, want 403", w.Code)
	}
}

func TestFeeLifecycle(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/fees", env.staffToken, map[string]interface{}{
		"student_id": "s1",
		"amount":     500,
		"due_date":   "2024-01-01",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create fee: status %d body %s", w.Code, w.Body.String())
	}
	feeID := decodeID(t, w)

	fee := env.findByID(t, store.CollectionFee, feeID)
	if fee["status"] != "unpaid" {
		t.Errorf("initial status = %v, want unpaid", fee["status"])
	}

	w = env.do(t, http.MethodPost, "/api/fees/"+feeID+"/pay", env.staffToken, map[string]interface{}{
		"transaction_id": "tx1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("pay: status %d body %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"paid":true`)) {
		t.Errorf("pay body = %s", w.Body.String())
	}

	fee = env.findByID(t, store.CollectionFee, feeID)
	if fee["status"] != "paid" || fee["transaction_id"] != "tx1" {
		t.Errorf("fee after pay = %v", fee)
	}
	if _, ok := fee["payment_date"].(time.Time); !ok {
		t.Errorf("payment_date not set")
	}

	absent := primitive.NewObjectID().Hex()
	if w := env.do(t, http.MethodPost, "/api/fees/"+absent+"/pay", env.staffToken, map[string]interface{}{}); w.Code != http.StatusNotFound {
		t.Errorf("pay absent: status %d, want 404", w.Code)
	}
	if w := env.do(t, http.MethodPost, "/api/fees/nope/pay", env.staffToken, map[string]interface{}{}); w.Code != http.StatusBadRequest {
		t.Errorf("pay malformed id: status %d, want 400", w.Code)
	}
	if w := env.do(t, http.MethodPost, "/api/fees", env.studentToken, map[string]interface{}{
		"student_id": "s1", "amount": 1, "due_date": "2024-01-01",
	}); w.Code != http.StatusForbidden {
		t.Errorf("student create fee: status %d, want 403", w.Code)
	}
}

func TestAttendanceAndLateEntry(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/attendance", env.staffToken, map[string]interface{}{
		"student_id": "s1",
		"date":       "2024-02-01",
		"status":     "present",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("mark: status %d body %s", w.Code, w.Body.String())
	}
	attID := decodeID(t, w)
	att := env.findByID(t, store.CollectionAttendance, attID)
	if att["status"] != "present" || att["date"] != "2024-02-01" {
		t.Errorf("attendance doc = %v", att)
	}

	w = env.do(t, http.MethodPost, "/api/attendance/late", env.staffToken, map[string]interface{}{
		"student_id": "s1",
		"date_time":  "2024-02-01T23:45:00Z",
		"reason":     "bus delay",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("late entry: status %d body %s", w.Code, w.Body.String())
	}

	if w := env.do(t, http.MethodPost, "/api/attendance", env.studentToken, map[string]interface{}{
		"student_id": "s1", "date": "2024-02-01", "status": "present",
	}); w.Code != http.StatusForbidden {
		t.Errorf("student mark: status %d, want 403", w.Code)
	}

	// Unknown attendance status is rejected at the boundary.
	if w := env.do(t, http.MethodPost, "/api/attendance", env.staffToken, map[string]interface{}{
		"student_id": "s1", "date": "2024-02-01", "status": "vanished",
	}); w.Code != http.StatusBadRequest {
		t.Errorf("bad status: status %d, want 400", w.Code)
	}
}

func TestLeaveFlow(t *testing.T) {
	env := newTestEnv(t)

	// A student may only file for their own id.
	w := env.do(t, http.MethodPost, "/api/attendance/leave", env.studentToken, map[string]interface{}{
		"student_id": "someone-else",
		"from_date":  "2024-03-01",
		"to_date":    "2024-03-03",
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("student leave for other: status %d, want 403", w.Code)
	}

	w = env.do(t, http.MethodPost, "/api/attendance/leave", env.studentToken, map[string]interface{}{
		"student_id": env.studentID,
		"from_date":  "2024-03-01",
		"to_date":    "2024-03-03",
		"reason":     "festival",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("student leave: status %d body %s", w.Code, w.Body.String())
	}
	leaveID := decodeID(t, w)

	leave := env.findByID(t, store.CollectionLeaveRequest, leaveID)
	if leave["status"] != "pending" {
		t.Errorf("initial leave status = %v", leave["status"])
	}

	// Status overwrite is unguarded: approved, then straight back to
	// pending.
	for _, status := range []string{"approved", "pending"} {
		w = env.do(t, http.MethodPost, "/api/attendance/leave/"+leaveID+"/status", env.wardenToken, map[string]interface{}{
			"status": status,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("set status %s: status %d", status, w.Code)
		}
		leave = env.findByID(t, store.CollectionLeaveRequest, leaveID)
		if leave["status"] != status {
			t.Errorf("leave status = %v, want %s", leave["status"], status)
		}
	}

	if w := env.do(t, http.MethodPost, "/api/attendance/leave/"+leaveID+"/status", env.studentToken, map[string]interface{}{
		"status": "approved",
	}); w.Code != http.StatusForbidden {
		t.Errorf("student set status: status %d, want 403", w.Code)
	}

	absent := primitive.NewObjectID().Hex()
	if w := env.do(t, http.MethodPost, "/api/attendance/leave/"+absent+"/status", env.staffToken, map[string]interface{}{
		"status": "approved",
	}); w.Code != http.StatusNotFound {
		t.Errorf("absent leave: status %d, want 404", w.Code)
	}
}

func TestComplaintUpdateForcesInProgress(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/complaints", env.studentToken, map[string]interface{}{
		"student_id":  env.studentID,
		"category":    "plumbing",
		"description": "leaking tap",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create complaint: status %d body %s", w.Code, w.Body.String())
	}
	complaintID := decodeID(t, w)

	if w := env.do(t, http.MethodPost, "/api/complaints", env.studentToken, map[string]interface{}{
		"student_id": "someone-else", "category": "noise", "description": "loud",
	}); w.Code != http.StatusForbidden {
		t.Errorf("student complaint for other: status %d, want 403", w.Code)
	}

	// Mark it resolved out of band, then add an update: the status is
	// forced back to in_progress unconditionally.
	oid, _ := store.ParseID(complaintID)
	if _, err := env.store.UpdateOne(context.Background(), store.CollectionComplaint, bson.M{"_id": oid}, bson.M{"status": "resolved"}); err != nil {
		t.Fatalf("force resolve: %v", err)
	}

	w = env.do(t, http.MethodPost, "/api/complaints/"+complaintID+"/updates", env.staffToken, map[string]interface{}{
		"message": "plumber scheduled",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("add update: status %d body %s", w.Code, w.Body.String())
	}
	updateID := decodeID(t, w)

	complaint := env.findByID(t, store.CollectionComplaint, complaintID)
	if complaint["status"] != "in_progress" {
		t.Errorf("complaint status = %v, want in_progress", complaint["status"])
	}

	update := env.findByID(t, store.CollectionComplaintUpdate, updateID)
	if update["complaint_id"] != complaintID || update["updated_by"] != env.staffID || update["message"] != "plumber scheduled" {
		t.Errorf("update doc = %v", update)
	}

	if w := env.do(t, http.MethodPost, "/api/complaints/"+complaintID+"/updates", env.studentToken, map[string]interface{}{
		"message": "hello",
	}); w.Code != http.StatusForbidden {
		t.Errorf("student add update: status %d, want 403", w.Code)
	}

	absent := primitive.NewObjectID().Hex()
	if w := env.do(t, http.MethodPost, "/api/complaints/"+absent+"/updates", env.staffToken, map[string]interface{}{
		"message": "hello",
	}); w.Code != http.StatusNotFound {
		t.Errorf("absent complaint: status %d, want 404", w.Code)
	}
}

func TestNotificationCreate(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/notifications", env.adminToken, map[string]interface{}{
		"user_id": env.studentID,
		"message": "fees due Friday",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: status %d body %s", w.Code, w.Body.String())
	}
	id := decodeID(t, w)

	doc := env.findByID(t, store.CollectionNotification, id)
	if doc["status"] != "unread" || doc["type"] != "info" || doc["message"] != "fees due Friday" {
		t.Errorf("notification doc = %v", doc)
	}

	if w := env.do(t, http.MethodPost, "/api/notifications", env.studentToken, map[string]interface{}{
		"user_id": env.studentID, "message": "hi",
	}); w.Code != http.StatusForbidden {
		t.Errorf("student create notification: status %d, want 403", w.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	if w := env.do(t, http.MethodGet, "/", "", nil); w.Code != http.StatusOK {
		t.Errorf("root: status %d", w.Code)
	}
	w := env.do(t, http.MethodGet, "/test", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("status endpoint: status %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("connected")) {
		t.Errorf("status body = %s", w.Body.String())
	}
}
