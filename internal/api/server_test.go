package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/pbaille/meetbook/internal/logic"
	"github.com/pbaille/meetbook/internal/model"
	"github.com/pbaille/meetbook/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type nopClipboard struct{}

func (nopClipboard) WriteAll(string) error { return nil }

func newServer(t *testing.T) *Server {
	t.Helper()
	s := store.NewJSON(filepath.Join(t.TempDir(), "addressbook.json"))
	m := model.New(model.SampleAddressBook(), model.WithClipboard(nopClipboard{}))
	log := zaptest.NewLogger(t)
	return New(logic.New(m, s, log), "127.0.0.1:0", log)
}

func do(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newServer(t).Handler(), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestListPersons(t *testing.T) {
	rec := do(t, newServer(t).Handler(), http.MethodGet, "/persons", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Persons []PersonView `json:"persons"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Persons, 6)
	assert.Equal(t, "Alex Yeoh", body.Persons[0].Name)
	assert.Equal(t, []string{"friends"}, body.Persons[0].Tags)
}

func TestListMeetings(t *testing.T) {
	h := newServer(t).Handler()

	rec := do(t, h, http.MethodGet, "/meetings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all struct {
		Meetings []MeetingView `json:"meetings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all.Meetings, 3)
	assert.Equal(t, "Project Sync", all.Meetings[0].Title)
	assert.Equal(t, all.Meetings[0].StartTime.Add(time.Duration(all.Meetings[0].Duration)*time.Minute), all.Meetings[0].EndTime)

	rec = do(t, h, http.MethodGet, "/meetings?q=tutorial", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var found struct {
		Meetings []MeetingView `json:"meetings"`
		Query    string        `json:"query"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	require.Len(t, found.Meetings, 1)
	assert.Equal(t, "CS2101 Tutorial", found.Meetings[0].Title)
	assert.Equal(t, "tutorial", found.Query)
}

func TestRunCommand(t *testing.T) {
	h := newServer(t).Handler()

	rec := do(t, h, http.MethodPost, "/commands", CommandRequest{Input: "delete 1", Mode: "meetings"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp CommandResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Feedback, "Deleted Meeting: Project Sync")
	assert.Equal(t, "meetings", resp.Mode)

	rec = do(t, h, http.MethodGet, "/meetings", nil)
	var after struct {
		Meetings []MeetingView `json:"meetings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &after))
	assert.Len(t, after.Meetings, 2)
}

func TestRunCommandErrors(t *testing.T) {
	h := newServer(t).Handler()

	tests := []struct {
		name   string
		body   interface{}
		status int
	}{
		{"empty input", CommandRequest{Input: "  "}, http.StatusBadRequest},
		{"bad mode", CommandRequest{Input: "list", Mode: "tasks"}, http.StatusBadRequest},
		{"unknown command", CommandRequest{Input: "frobnicate"}, http.StatusUnprocessableEntity},
		{"index out of range", CommandRequest{Input: "delete 99"}, http.StatusUnprocessableEntity},
		{"not json", "oops", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/commands", tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestPreflight(t *testing.T) {
	rec := do(t, newServer(t).Handler(), http.MethodOptions, "/commands", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestRunStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	s := newServer(t)
	s.addr = addr

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	http.DefaultClient.CloseIdleConnections()
}
