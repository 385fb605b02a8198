package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pbaille/meetbook/internal/command"
	"github.com/pbaille/meetbook/internal/domain"
	"github.com/pbaille/meetbook/internal/logic"
	"github.com/pbaille/meetbook/internal/parser"
)

// Server exposes the address book over HTTP.
type Server struct {
	logic *logic.Logic
	addr  string
	log   *zap.Logger
}

// New creates a new API server
func New(l *logic.Logic, addr string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{logic: l, addr: addr, log: log}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /persons", s.listPersons)
	mux.HandleFunc("GET /meetings", s.listMeetings)
	mux.HandleFunc("POST /commands", s.runCommand)

	// Health check
	mux.HandleFunc("GET /health", s.health)

	return withCORS(mux)
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info("api listening", zap.String("addr", s.addr))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// withCORS adds CORS headers for browser clients
func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		h.ServeHTTP(w, r)
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// PersonView is the API form of a person.
type PersonView struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Address string   `json:"address"`
	Tags    []string `json:"tags"`
}

// MeetingView is the API form of a meeting.
type MeetingView struct {
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Duration  int       `json:"duration_minutes"`
	Tags      []string  `json:"tags"`
}

func tagNames(tags []domain.Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}

func personView(p domain.Person) PersonView {
	return PersonView{
		Name:    string(p.Name),
		Phone:   string(p.Phone),
		Email:   string(p.Email),
		Address: string(p.Address),
		Tags:    tagNames(p.Tags),
	}
}

func meetingView(m domain.Meeting) MeetingView {
	return MeetingView{
		Title:     string(m.Title),
		Link:      string(m.Link),
		StartTime: m.StartTime.Time,
		EndTime:   m.EndTime(),
		Duration:  int(m.Duration),
		Tags:      tagNames(m.Tags),
	}
}

func (s *Server) listPersons(w http.ResponseWriter, r *http.Request) {
	persons := s.logic.FilteredPersons()
	views := make([]PersonView, 0, len(persons))
	for _, p := range persons {
		views = append(views, personView(p))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"persons": views,
	})
}

func (s *Server) listMeetings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var meetings []domain.Meeting
	if strings.TrimSpace(query) == "" {
		meetings = s.logic.Meetings()
	} else {
		meetings = s.logic.SearchMeetings(query)
	}

	views := make([]MeetingView, 0, len(meetings))
	for _, m := range meetings {
		views = append(views, meetingView(m))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"meetings": views,
		"query":    query,
	})
}

// CommandRequest is the request body for running a command line.
type CommandRequest struct {
	Input string `json:"input"`
	Mode  string `json:"mode,omitempty"`
}

// CommandResponse is the response for a command that ran.
type CommandResponse struct {
	Feedback string `json:"feedback"`
	Mode     string `json:"mode"`
	Exit     bool   `json:"exit,omitempty"`
}

func (s *Server) runCommand(w http.ResponseWriter, r *http.Request) {
	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Input) == "" {
		writeError(w, http.StatusBadRequest, "input is required")
		return
	}

	var (
		res command.Result
		err error
	)
	if req.Mode == "" {
		res, err = s.logic.Execute(req.Input)
	} else {
		mode, perr := command.ParseMode(req.Mode)
		if perr != nil {
			writeError(w, http.StatusBadRequest, perr.Error())
			return
		}
		res, err = s.logic.ExecuteIn(mode, req.Input)
	}

	switch {
	case err == nil:
	case parser.IsParseError(err), command.IsUserError(err):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	default:
		s.log.Error("api command failed", zap.String("input", req.Input), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, CommandResponse{
		Feedback: res.Feedback,
		Mode:     s.logic.Mode().String(),
		Exit:     res.Exit,
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
