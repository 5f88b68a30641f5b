package services

import (
	"context"
	"encoding/json"
	"strings"

	"lmscl/internal/gateway"
	"lmscl/internal/logger"

	"go.uber.org/zap"
)

type AssessmentAPI interface {
	Skills(ctx context.Context) (json.RawMessage, error)
	GenerateQuestions(ctx context.Context, prompt string) (json.RawMessage, error)
	StoreAssessment(ctx context.Context, assessment json.RawMessage) (json.RawMessage, error)
	TeacherAssessments(ctx context.Context, teacherID string) (json.RawMessage, error)
	AssessmentDetails(ctx context.Context, assessmentID string) (json.RawMessage, error)
	AssignAssessment(ctx context.Context, assessmentID string) (json.RawMessage, error)
	DeleteAssessment(ctx context.Context, assessmentID string) (json.RawMessage, error)
	StudentTests(ctx context.Context, studentID string) (json.RawMessage, error)
	FetchTest(ctx context.Context, testID string) (json.RawMessage, error)
	SubmitTest(ctx context.Context, sub gateway.TestSubmission) (json.RawMessage, error)
	CompletedTests(ctx context.Context, studentID string) (json.RawMessage, error)
	TestResults(ctx context.Context, testID, studentID string) (json.RawMessage, error)
	GetTest(ctx context.Context, testID string) (json.RawMessage, error)
	UpdateTest(ctx context.Context, testID string, test json.RawMessage) (json.RawMessage, error)
}

// AssessmentService relays the assessment and test endpoints. Payloads are
// opaque to this module.
type AssessmentService struct {
	api AssessmentAPI
}

func NewAssessmentService(api AssessmentAPI) *AssessmentService {
	return &AssessmentService{api: api}
}

func (s *AssessmentService) logged(ctx context.Context, op string, out json.RawMessage, err error) (json.RawMessage, error) {
	if err != nil {
		logger.WithCtx(ctx).Error("assessments: request failed", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	if len(out) == 0 {
		out = json.RawMessage("null")
	}
	return out, nil
}

func (s *AssessmentService) Skills(ctx context.Context) (json.RawMessage, error) {
	out, err := s.api.Skills(ctx)
	return s.logged(ctx, "skills", out, err)
}

func (s *AssessmentService) GenerateQuestions(ctx context.Context, prompt string) (json.RawMessage, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, &ValidationError{Fields: map[string]string{"prompt": "prompt is a required field"}}
	}
	out, err := s.api.GenerateQuestions(ctx, prompt)
	return s.logged(ctx, "generate_questions", out, err)
}

func (s *AssessmentService) Store(ctx context.Context, assessment json.RawMessage) (json.RawMessage, error) {
	out, err := s.api.StoreAssessment(ctx, assessment)
	return s.logged(ctx, "store", out, err)
}

func (s *AssessmentService) ForTeacher(ctx context.Context, teacherID string) (json.RawMessage, error) {
	out, err := s.api.TeacherAssessments(ctx, teacherID)
	return s.logged(ctx, "teacher_assessments", out, err)
}

func (s *AssessmentService) Details(ctx context.Context, id string) (json.RawMessage, error) {
	out, err := s.api.AssessmentDetails(ctx, id)
	return s.logged(ctx, "details", out, err)
}

func (s *AssessmentService) Assign(ctx context.Context, id string) (json.RawMessage, error) {
	out, err := s.api.AssignAssessment(ctx, id)
	return s.logged(ctx, "assign", out, err)
}

func (s *AssessmentService) Delete(ctx context.Context, id string) (json.RawMessage, error) {
	out, err := s.api.DeleteAssessment(ctx, id)
	return s.logged(ctx, "delete", out, err)
}

func (s *AssessmentService) StudentTests(ctx context.Context, studentID string) (json.RawMessage, error) {
	out, err := s.api.StudentTests(ctx, studentID)
	return s.logged(ctx, "student_tests", out, err)
}

func (s *AssessmentService) FetchTest(ctx context.Context, testID string) (json.RawMessage, error) {
	out, err := s.api.FetchTest(ctx, testID)
	return s.logged(ctx, "fetch_test", out, err)
}

func (s *AssessmentService) Submit(ctx context.Context, sub gateway.TestSubmission) (json.RawMessage, error) {
	if sub.TestID == "" || sub.StudentID == "" {
		return nil, &ValidationError{Fields: map[string]string{"testId": "testId and studentId are required"}}
	}
	if sub.Answers == nil {
		sub.Answers = map[string]string{}
	}
	out, err := s.api.SubmitTest(ctx, sub)
	return s.logged(ctx, "submit", out, err)
}

func (s *AssessmentService) Completed(ctx context.Context, studentID string) (json.RawMessage, error) {
	out, err := s.api.CompletedTests(ctx, studentID)
	return s.logged(ctx, "completed", out, err)
}

func (s *AssessmentService) Results(ctx context.Context, testID, studentID string) (json.RawMessage, error) {
	out, err := s.api.TestResults(ctx, testID, studentID)
	return s.logged(ctx, "results", out, err)
}

func (s *AssessmentService) GetTest(ctx context.Context, testID string) (json.RawMessage, error) {
	out, err := s.api.GetTest(ctx, testID)
	return s.logged(ctx, "get_test", out, err)
}

func (s *AssessmentService) UpdateTest(ctx context.Context, testID string, test json.RawMessage) (json.RawMessage, error) {
	out, err := s.api.UpdateTest(ctx, testID, test)
	return s.logged(ctx, "update_test", out, err)
}
