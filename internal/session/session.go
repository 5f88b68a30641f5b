// Package session holds the per-visitor application context: the backend
// auth token, the active navigation section, every course viewer state and
// the job screens' filters. It lives in a Store keyed by a random id that
// travels in a signed cookie, is created on the first request and is removed
// on logout.
package session

import (
	"context"
	"errors"
	"time"

	"lmscl/internal/models"
	"lmscl/internal/viewer"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
	Close() error
}

type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

type Flash struct {
	Kind    FlashKind `json:"kind"`
	Message string    `json:"message"`
}

// JobsState is the off-campus job search: current filters and page.
type JobsState struct {
	Filters models.JobFilters `json:"filters"`
	Page    int               `json:"page"`
}

// JobBoardState is the HR job board search box and type tab.
type JobBoardState struct {
	Search string `json:"search"`
	Tab    string `json:"tab"`
}

type Session struct {
	ID            string                   `json:"id"`
	AuthToken     string                   `json:"auth_token,omitempty"`
	ActiveSection string                   `json:"active_section"`
	Viewers       map[string]*viewer.State `json:"viewers"`
	Jobs          JobsState                `json:"jobs"`
	JobBoard      JobBoardState            `json:"job_board"`
	Flash         *Flash                   `json:"flash,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
}

const DefaultSection = "dashboard"

func New() *Session {
	return &Session{
		ID:            uuid.NewString(),
		ActiveSection: DefaultSection,
		Viewers:       map[string]*viewer.State{},
		Jobs:          JobsState{Page: 1},
		JobBoard:      JobBoardState{Tab: "all"},
		CreatedAt:     time.Now().UTC(),
	}
}

func (s *Session) Viewer(courseID string) (*viewer.State, bool) {
	if s.Viewers == nil {
		return nil, false
	}
	st, ok := s.Viewers[courseID]
	return st, ok && st != nil
}

func (s *Session) SetViewer(st *viewer.State) {
	if s.Viewers == nil {
		s.Viewers = map[string]*viewer.State{}
	}
	s.Viewers[st.CourseID] = st
}

func (s *Session) AddFlash(kind FlashKind, msg string) {
	s.Flash = &Flash{Kind: kind, Message: msg}
}

// PopFlash returns the pending flash message once.
func (s *Session) PopFlash() *Flash {
	f := s.Flash
	s.Flash = nil
	return f
}

// Clear drops everything the visitor accumulated, keeping only the id.
func (s *Session) Clear() {
	id := s.ID
	*s = *New()
	s.ID = id
}

type ctxKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}
