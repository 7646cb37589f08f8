package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/shift-cycles/models"
	"github.com/blogem/shift-cycles/userctx"
)

// recordingAuditRepo collects audit entries in memory
type recordingAuditRepo struct {
	mu      sync.Mutex
	entries []models.AuditLogEntry
	created chan struct{}
}

func newRecordingAuditRepo() *recordingAuditRepo {
	return &recordingAuditRepo{created: make(chan struct{}, 10)}
}

func (r *recordingAuditRepo) Create(_ context.Context, entry *models.AuditLogEntry) error {
	r.mu.Lock()
	r.entries = append(r.entries, *entry)
	r.mu.Unlock()
	r.created <- struct{}{}
	return nil
}

func (r *recordingAuditRepo) GetRecent(_ context.Context, _ int) ([]models.AuditLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.AuditLogEntry(nil), r.entries...), nil
}

func TestForwardedUser(t *testing.T) {
	var seen string
	handler := ForwardedUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = userctx.GetUserEmail(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/schedules", nil)
	req.Header.Set(ForwardedEmailHeader, " planner@example.com ")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "planner@example.com", seen)

	req = httptest.NewRequest(http.MethodGet, "/api/schedules", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, userctx.Anonymous, seen)
}

func TestAuditLogger_RecordsMutationsAndRestoresBody(t *testing.T) {
	repo := newRecordingAuditRepo()

	var handlerBody string
	handler := chimiddleware.RequestID(ForwardedUser(AuditLogger(repo, zerolog.Nop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, _ := io.ReadAll(r.Body)
			handlerBody = string(data)
		}),
	)))

	req := httptest.NewRequest(http.MethodPost, "/api/patterns", strings.NewReader(`{"name":"Night"}`))
	req.Header.Set(ForwardedEmailHeader, "planner@example.com")
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	select {
	case <-repo.created:
	case <-time.After(2 * time.Second):
		t.Fatal("audit entry was not created")
	}

	assert.Equal(t, `{"name":"Night"}`, handlerBody, "handler must still see the body")

	entries, err := repo.GetRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "planner@example.com", entries[0].UserEmail)
	assert.Equal(t, "/api/patterns", entries[0].Path)
	assert.Equal(t, `{"name":"Night"}`, entries[0].Payload)
	assert.Equal(t, "10.0.0.1", entries[0].IPAddress)
	assert.NotEmpty(t, entries[0].RequestID)
}

func TestAuditLogger_SkipsReads(t *testing.T) {
	repo := newRecordingAuditRepo()
	handler := AuditLogger(repo, zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/schedules", nil))

	entries, err := repo.GetRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetIPAddress(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:53211"
	assert.Equal(t, "192.168.1.5", getIPAddress(req))

	req.Header.Set("X-Real-IP", "172.16.0.9")
	assert.Equal(t, "172.16.0.9", getIPAddress(req))
}
