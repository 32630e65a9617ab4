package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lakesidedc/club-server/internal/domain/entity"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeSessions struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{tokens: make(map[string]string)}
}

func (f *fakeSessions) Set(_ context.Context, token, userID string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[token] = userID
	return nil
}

func (f *fakeSessions) Get(_ context.Context, token string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokens[token], nil
}

func (f *fakeSessions) Delete(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, token)
	return nil
}

func createAccount(t *testing.T, db *gorm.DB, email, password string, isAdmin bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		FirstName:    "Alex",
		LastName:     "Moor",
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
		JoinedAt:     time.Now(),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func login(t *testing.T, server *Server, email, password string) string {
	t.Helper()
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp.Body, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestLoginAndLogout(t *testing.T) {
	sessions := newFakeSessions()
	server, db := newTestServerWithSessions(t, t.TempDir(), sessions)
	user := createAccount(t, db, "member@example.com", "squirtle", false)

	token := login(t, server, user.Email, "squirtle")

	stored, err := sessions.Get(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, user.ID, stored)

	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	req.Header.Set(sessionHeader, token)
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 204, resp.StatusCode)

	stored, err = sessions.Get(context.Background(), token)
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	server, db := newTestServerWithSessions(t, t.TempDir(), newFakeSessions())
	user := createAccount(t, db, "member@example.com", "squirtle", false)

	body, err := json.Marshal(map[string]string{"email": user.Email, "password": "wartortle"})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 401, resp.StatusCode)
}

func TestLoginWithoutSessionStore(t *testing.T) {
	server, db := newTestServerWithSessions(t, t.TempDir(), nil)
	user := createAccount(t, db, "member@example.com", "squirtle", false)

	body, err := json.Marshal(map[string]string{"email": user.Email, "password": "squirtle"})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 503, resp.StatusCode)
}

func TestEventCreateRequiresAdmin(t *testing.T) {
	server, db := newTestServerWithSessions(t, t.TempDir(), newFakeSessions())
	admin := createAccount(t, db, "admin@example.com", "deepend", true)
	member := createAccount(t, db, "member@example.com", "shallow", false)

	payload := map[string]interface{}{
		"title":         "Open Water Intro",
		"location":      "Lakeside",
		"start_time":    time.Now().Add(96 * time.Hour).Format(time.RFC3339),
		"end_time":      time.Now().Add(99 * time.Hour).Format(time.RFC3339),
		"max_attendees": 8,
		"cost":          500,
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	// No token at all.
	req := httptest.NewRequest("POST", "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 401, resp.StatusCode)

	// A member token is not enough.
	memberToken := login(t, server, member.Email, "shallow")
	req = httptest.NewRequest("POST", "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(sessionHeader, memberToken)
	resp, err = server.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 403, resp.StatusCode)

	adminToken := login(t, server, admin.Email, "deepend")
	req = httptest.NewRequest("POST", "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(sessionHeader, adminToken)
	resp, err = server.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var created struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	decodeBody(t, resp.Body, &created)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Open Water Intro", created.Title)

	var count int64
	require.NoError(t, db.Model(&entity.Event{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestEventCreateValidatesInput(t *testing.T) {
	server, db := newTestServerWithSessions(t, t.TempDir(), newFakeSessions())
	admin := createAccount(t, db, "admin@example.com", "deepend", true)
	token := login(t, server, admin.Email, "deepend")

	// End before start.
	payload := map[string]interface{}{
		"title":      "Backwards Session",
		"start_time": time.Now().Add(50 * time.Hour).Format(time.RFC3339),
		"end_time":   time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(sessionHeader, token)
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 400, resp.StatusCode)
}

func TestRecordSwimAndTransaction(t *testing.T) {
	server, db := newTestServerWithSessions(t, t.TempDir(), newFakeSessions())
	admin := createAccount(t, db, "admin@example.com", "deepend", true)
	member := createAccount(t, db, "member@example.com", "shallow", false)
	token := login(t, server, admin.Email, "deepend")

	body, err := json.Marshal(map[string]int{"lengths": 16, "lengths_underwater": 3})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/api/members/"+member.ID+"/swim-history", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(sessionHeader, token)
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var record entity.SwimHistory
	require.NoError(t, db.Where("user_id = ?", member.ID).First(&record).Error)
	require.Equal(t, 16, record.Lengths)
	require.Equal(t, admin.ID, record.RecordedByID)

	// Underwater lengths beyond the total are rejected.
	body, err = json.Marshal(map[string]int{"lengths": 4, "lengths_underwater": 9})
	require.NoError(t, err)
	req = httptest.NewRequest("POST", "/api/members/"+member.ID+"/swim-history", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(sessionHeader, token)
	resp, err = server.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 400, resp.StatusCode)

	body, err = json.Marshal(map[string]interface{}{"amount": -350, "description": "Session fee"})
	require.NoError(t, err)
	req = httptest.NewRequest("POST", "/api/members/"+member.ID+"/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(sessionHeader, token)
	resp, err = server.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var transaction entity.Transaction
	require.NoError(t, db.Where("user_id = ?", member.ID).First(&transaction).Error)
	require.Equal(t, -350, transaction.Amount)

	// Unknown member.
	req = httptest.NewRequest("POST", "/api/members/"+uuid.NewString()+"/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(sessionHeader, token)
	resp, err = server.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 404, resp.StatusCode)
}
