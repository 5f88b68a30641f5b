package services

import (
	"context"
	"errors"
	"strconv"

	"lmscl/internal/listing"
	"lmscl/internal/logger"
	"lmscl/internal/models"

	"go.uber.org/zap"
)

var ErrNotFound = errors.New("not found")

type PeopleAPI interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
	AddStudent(ctx context.Context, form models.StudentForm) error
	UpdateStudent(ctx context.Context, id string, form models.StudentForm) error
	ArchiveStudent(ctx context.Context, id string) error

	ListTeachers(ctx context.Context) ([]models.Teacher, error)
	AddTeacher(ctx context.Context, form models.TeacherForm) error
	UpdateTeacher(ctx context.Context, id string, form models.TeacherForm) error
	ArchiveTeacher(ctx context.Context, id string) error

	ListHRs(ctx context.Context) ([]models.HR, error)
	AddHR(ctx context.Context, form models.HRForm) error
	UpdateHR(ctx context.Context, id string, patch any) error
	ArchiveHR(ctx context.Context, id string) error
}

// PeopleService backs the student, teacher and HR admin screens. Forms are
// validated before anything is sent to the backend.
type PeopleService struct {
	api PeopleAPI
}

func NewPeopleService(api PeopleAPI) *PeopleService {
	return &PeopleService{api: api}
}

// withID adds the numeric id to the searchable fields; records without one
// never match on it.
func withID(fields []string, id int) []string {
	if id == 0 {
		return fields
	}
	return append(fields, strconv.Itoa(id))
}

func studentFields(s models.Student) []string {
	return withID([]string{s.Username, s.Email, s.FirstName, s.LastName}, s.ID)
}

func teacherFields(t models.Teacher) []string {
	return []string{t.Username, t.Email, t.FirstName, t.LastName}
}

func hrFields(h models.HR) []string {
	return withID([]string{h.HRName, h.Email, h.FirstName, h.LastName}, h.ID)
}

// --- students ---

func (s *PeopleService) Students(ctx context.Context, term string) ([]models.Student, error) {
	list, err := s.api.ListStudents(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("people: failed to load students", zap.Error(err))
		return nil, err
	}
	return listing.Filter(list, term, studentFields), nil
}

func (s *PeopleService) Student(ctx context.Context, id string) (*models.Student, error) {
	list, err := s.api.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].MongoID == id {
			return &list[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *PeopleService) AddStudent(ctx context.Context, form models.StudentForm) error {
	if err := validateForm(form); err != nil {
		return err
	}
	if err := s.api.AddStudent(ctx, form); err != nil {
		logger.WithCtx(ctx).Error("people: failed to add student", zap.String("username", form.Username), zap.Error(err))
		return err
	}
	logger.WithCtx(ctx).Info("people: student added", zap.String("username", form.Username))
	return nil
}

func (s *PeopleService) UpdateStudent(ctx context.Context, id string, form models.StudentForm) error {
	if err := validateForm(form); err != nil {
		return err
	}
	if err := s.api.UpdateStudent(ctx, id, form); err != nil {
		logger.WithCtx(ctx).Error("people: failed to update student", zap.String("id", id), zap.Error(err))
		return err
	}
	logger.WithCtx(ctx).Info("people: student updated", zap.String("id", id))
	return nil
}

func (s *PeopleService) ArchiveStudent(ctx context.Context, id string) error {
	if err := s.api.ArchiveStudent(ctx, id); err != nil {
		logger.WithCtx(ctx).Error("people: failed to archive student", zap.String("id", id), zap.Error(err))
		return err
	}
	logger.WithCtx(ctx).Info("people: student archived", zap.String("id", id))
	return nil
}

// --- teachers ---

func (s *PeopleService) Teachers(ctx context.Context, term string) ([]models.Teacher, error) {
	list, err := s.api.ListTeachers(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("people: failed to load teachers", zap.Error(err))
		return nil, err
	}
	return listing.Filter(list, term, teacherFields), nil
}

func (s *PeopleService) Teacher(ctx context.Context, id string) (*models.Teacher, error) {
	list, err := s.api.ListTeachers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].MongoID == id {
			return &list[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *PeopleService) AddTeacher(ctx context.Context, form models.TeacherForm) error {
	if err := validateForm(form); err != nil {
		return err
	}
	if err := s.api.AddTeacher(ctx, form); err != nil {
		logger.WithCtx(ctx).Error("people: failed to add teacher", zap.String("username", form.Username), zap.Error(err))
		return err
	}
	logger.WithCtx(ctx).Info("people: teacher added", zap.String("username", form.Username))
	return nil
}

func (s *PeopleService) UpdateTeacher(ctx context.Context, id string, form models.TeacherForm) error {
	if err := validateForm(form); err != nil {
		return err
	}
	if err := s.api.UpdateTeacher(ctx, id, form); err != nil {
		logger.WithCtx(ctx).Error("people: failed to update teacher", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *PeopleService) ArchiveTeacher(ctx context.Context, id string) error {
	if err := s.api.ArchiveTeacher(ctx, id); err != nil {
		logger.WithCtx(ctx).Error("people: failed to archive teacher", zap.String("id", id), zap.Error(err))
		return err
	}
	logger.WithCtx(ctx).Info("people: teacher archived", zap.String("id", id))
	return nil
}

// --- HRs ---

func (s *PeopleService) HRs(ctx context.Context, term string) ([]models.HR, error) {
	list, err := s.api.ListHRs(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("people: failed to load HRs", zap.Error(err))
		return nil, err
	}
	return listing.Filter(list, term, hrFields), nil
}

func (s *PeopleService) HR(ctx context.Context, id string) (*models.HR, error) {
	list, err := s.api.ListHRs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].MongoID == id {
			return &list[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *PeopleService) AddHR(ctx context.Context, form models.HRForm) error {
	if err := validateForm(form); err != nil {
		return err
	}
	if err := s.api.AddHR(ctx, form); err != nil {
		logger.WithCtx(ctx).Error("people: failed to add HR", zap.String("hrname", form.HRName), zap.Error(err))
		return err
	}
	logger.WithCtx(ctx).Info("people: HR added", zap.String("hrname", form.HRName))
	return nil
}

func (s *PeopleService) UpdateHR(ctx context.Context, id string, form models.HRForm) error {
	if err := validateForm(form); err != nil {
		return err
	}
	if err := s.api.UpdateHR(ctx, id, form); err != nil {
		logger.WithCtx(ctx).Error("people: failed to update HR", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *PeopleService) ArchiveHR(ctx context.Context, id string) error {
	if err := s.api.ArchiveHR(ctx, id); err != nil {
		logger.WithCtx(ctx).Error("people: failed to archive HR", zap.String("id", id), zap.Error(err))
		return err
	}
	logger.WithCtx(ctx).Info("people: HR archived", zap.String("id", id))
	return nil
}

// ToggleHRActive flips is_active. Only the flag is sent, and the returned
// record carries the new value once the backend accepted it.
func (s *PeopleService) ToggleHRActive(ctx context.Context, id string) (*models.HR, error) {
	hr, err := s.HR(ctx, id)
	if err != nil {
		return nil, err
	}
	next := !hr.IsActive
	if err := s.api.UpdateHR(ctx, id, map[string]bool{"is_active": next}); err != nil {
		logger.WithCtx(ctx).Error("people: failed to toggle HR", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	hr.IsActive = next
	logger.WithCtx(ctx).Info("people: HR status changed", zap.String("id", id), zap.Bool("active", next))
	return hr, nil
}
