package services

import (
	"context"
	"errors"
	"strings"

	"lmscl/internal/logger"
	"lmscl/internal/session"
	"lmscl/internal/viewer"

	"go.uber.org/zap"
)

var (
	ErrUnknownChapter = errors.New("unknown chapter")
	ErrUnknownTab     = errors.New("unknown tab")
)

type CourseFetcher interface {
	GetCourse(ctx context.Context, courseID string) (*viewer.Course, error)
}

// CourseViewerService drives the course player. Viewer state is kept in the
// visitor's session; the course document is fetched once per mount.
type CourseViewerService struct {
	api           CourseFetcher
	defaultCourse string
	webSearchURL  string
}

func NewCourseViewerService(api CourseFetcher, defaultCourse, webSearchURL string) *CourseViewerService {
	return &CourseViewerService{
		api:           api,
		defaultCourse: defaultCourse,
		webSearchURL:  webSearchURL,
	}
}

func (s *CourseViewerService) DefaultCourse() string {
	return s.defaultCourse
}

func (s *CourseViewerService) courseID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return s.defaultCourse
	}
	return id
}

// Mount returns the viewer state of the course, fetching the course the first
// time this session opens it. Fetch failures are logged and returned so the
// page can show an inline error with a retry.
func (s *CourseViewerService) Mount(ctx context.Context, sess *session.Session, courseID string) (*viewer.State, error) {
	courseID = s.courseID(courseID)
	if st, ok := sess.Viewer(courseID); ok {
		return st, nil
	}
	return s.Reload(ctx, sess, courseID)
}

// Reload refetches the course and starts a fresh viewer state.
func (s *CourseViewerService) Reload(ctx context.Context, sess *session.Session, courseID string) (*viewer.State, error) {
	courseID = s.courseID(courseID)
	log := logger.WithCtx(ctx).With(zap.String("course_id", courseID))

	course, err := s.api.GetCourse(ctx, courseID)
	if err != nil {
		log.Error("viewer: failed to fetch course", zap.Error(err))
		return nil, err
	}

	st := viewer.New(courseID, course)
	sess.SetViewer(st)
	log.Info("viewer: course mounted",
		zap.String("title", course.Title),
		zap.Int("chapters", len(course.Chapters)),
	)
	return st, nil
}

func (s *CourseViewerService) ToggleChapter(ctx context.Context, sess *session.Session, courseID, chapterID string) (*viewer.State, error) {
	st, err := s.Mount(ctx, sess, courseID)
	if err != nil {
		return nil, err
	}
	if _, ok := st.Course.Chapter(chapterID); !ok {
		return st, ErrUnknownChapter
	}
	st.ToggleChapterExpansion(chapterID)
	return st, nil
}

func (s *CourseViewerService) MarkRead(ctx context.Context, sess *session.Session, courseID, chapterID string) (*viewer.State, error) {
	st, err := s.Mount(ctx, sess, courseID)
	if err != nil {
		return nil, err
	}
	if _, ok := st.Course.Chapter(chapterID); !ok {
		return st, ErrUnknownChapter
	}
	st.MarkChapterAsRead(chapterID)
	logger.WithCtx(ctx).Debug("viewer: completion toggled",
		zap.String("chapter_id", chapterID),
		zap.Bool("completed", st.IsCompleted(chapterID)),
		zap.Int("progress", st.CalculateProgress()),
	)
	return st, nil
}

func (s *CourseViewerService) SetTab(ctx context.Context, sess *session.Session, courseID, tab string) (*viewer.State, error) {
	st, err := s.Mount(ctx, sess, courseID)
	if err != nil {
		return nil, err
	}
	t, ok := viewer.ParseTab(tab)
	if !ok {
		return st, ErrUnknownTab
	}
	st.SetActiveTab(t)
	return st, nil
}

func (s *CourseViewerService) ToggleSidebar(ctx context.Context, sess *session.Session, courseID string) (*viewer.State, error) {
	st, err := s.Mount(ctx, sess, courseID)
	if err != nil {
		return nil, err
	}
	st.ToggleSidebar()
	return st, nil
}

func (s *CourseViewerService) Search(ctx context.Context, sess *session.Session, courseID, term string) (*viewer.State, error) {
	st, err := s.Mount(ctx, sess, courseID)
	if err != nil {
		return nil, err
	}
	st.SearchTerm = strings.TrimSpace(term)
	return st, nil
}

// WebSearch records the term and returns the external search link. ok is
// false for an empty term, in which case nothing should happen.
func (s *CourseViewerService) WebSearch(ctx context.Context, sess *session.Session, courseID, term string) (string, bool, error) {
	st, err := s.Mount(ctx, sess, courseID)
	if err != nil {
		return "", false, err
	}
	st.WebSearchTerm = term
	st.SetActiveTab(viewer.TabWeb)
	link, ok := st.WebSearchURL(s.webSearchURL)
	return link, ok, nil
}

func (s *CourseViewerService) SaveNotes(ctx context.Context, sess *session.Session, courseID, notes string) (*viewer.State, error) {
	st, err := s.Mount(ctx, sess, courseID)
	if err != nil {
		return nil, err
	}
	st.Notes = notes
	st.SetActiveTab(viewer.TabNotes)
	return st, nil
}

func (s *CourseViewerService) ClearNotes(ctx context.Context, sess *session.Session, courseID string) (*viewer.State, error) {
	st, err := s.Mount(ctx, sess, courseID)
	if err != nil {
		return nil, err
	}
	st.ClearNotes()
	return st, nil
}
