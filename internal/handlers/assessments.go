package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"lmscl/internal/gateway"
	"lmscl/internal/services"
	helpers "lmscl/internal/utils/helpres"

	"github.com/gorilla/mux"
)

// AssessmentHandler relays the assessment and test screens to the backend.
type AssessmentHandler struct {
	svc *services.AssessmentService
}

func NewAssessmentHandler(svc *services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{svc: svc}
}

func relay(w http.ResponseWriter, out json.RawMessage, err error, fallback string) {
	if err != nil {
		backendError(w, err, fallback)
		return
	}
	helpers.JSON(w, http.StatusOK, out)
}

func rawBody(w http.ResponseWriter, r *http.Request) (json.RawMessage, bool) {
	var body json.RawMessage
	if err := helpers.DecodeJSON(r, &body); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return body, true
}

func byID(call func(context.Context, string) (json.RawMessage, error), fallback string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := call(r.Context(), mux.Vars(r)["id"])
		relay(w, out, err, fallback)
	}
}

// Skills godoc
// @Summary Skills offered for assessments
// @Tags assessments
// @Produce json
// @Success 200 {object} helpers.Response
// @Failure 502 {object} helpers.Response
// @Router /api/skills [get]
func (h *AssessmentHandler) Skills(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Skills(r.Context())
	relay(w, out, err, "Failed to load skills")
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

// Generate godoc
// @Summary Generate questions from a prompt
// @Tags assessments
// @Accept json
// @Produce json
// @Param input body generateRequest true "Prompt"
// @Success 200 {object} helpers.Response
// @Failure 400 {object} helpers.Response
// @Router /api/assessments/generate [post]
func (h *AssessmentHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.svc.GenerateQuestions(r.Context(), req.Prompt)
	relay(w, out, err, "Failed to generate questions")
}

// Store godoc
// @Summary Store an assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Success 200 {object} helpers.Response
// @Router /api/assessments [post]
func (h *AssessmentHandler) Store(w http.ResponseWriter, r *http.Request) {
	body, ok := rawBody(w, r)
	if !ok {
		return
	}
	out, err := h.svc.Store(r.Context(), body)
	relay(w, out, err, "Failed to store assessment")
}

// ForTeacher godoc
// @Summary Assessments created by a teacher
// @Tags assessments
// @Produce json
// @Param id path string true "Teacher id"
// @Success 200 {object} helpers.Response
// @Router /api/teachers/{id}/assessments [get]
func (h *AssessmentHandler) ForTeacher(w http.ResponseWriter, r *http.Request) {
	byID(h.svc.ForTeacher, "Failed to load assessments")(w, r)
}

// Details godoc
// @Summary Assessment details
// @Tags assessments
// @Produce json
// @Param id path string true "Assessment id"
// @Success 200 {object} helpers.Response
// @Router /api/assessments/{id} [get]
func (h *AssessmentHandler) Details(w http.ResponseWriter, r *http.Request) {
	byID(h.svc.Details, "Failed to load assessment")(w, r)
}

// Assign godoc
// @Summary Assign an assessment to its students
// @Tags assessments
// @Produce json
// @Param id path string true "Assessment id"
// @Success 200 {object} helpers.Response
// @Router /api/assessments/{id}/assign [post]
func (h *AssessmentHandler) Assign(w http.ResponseWriter, r *http.Request) {
	byID(h.svc.Assign, "Failed to assign assessment")(w, r)
}

// Delete godoc
// @Summary Delete an assessment
// @Tags assessments
// @Produce json
// @Param id path string true "Assessment id"
// @Success 200 {object} helpers.Response
// @Router /api/assessments/{id} [delete]
func (h *AssessmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	byID(h.svc.Delete, "Failed to delete assessment")(w, r)
}

// StudentTests godoc
// @Summary Tests assigned to a student
// @Tags tests
// @Produce json
// @Param id path string true "Student id"
// @Success 200 {object} helpers.Response
// @Router /api/students/{id}/tests [get]
func (h *AssessmentHandler) StudentTests(w http.ResponseWriter, r *http.Request) {
	byID(h.svc.StudentTests, "Failed to load tests")(w, r)
}

// Completed godoc
// @Summary Tests a student has completed
// @Tags tests
// @Produce json
// @Param id path string true "Student id"
// @Success 200 {object} helpers.Response
// @Router /api/students/{id}/tests/completed [get]
func (h *AssessmentHandler) Completed(w http.ResponseWriter, r *http.Request) {
	byID(h.svc.Completed, "Failed to load completed tests")(w, r)
}

// FetchTest godoc
// @Summary Test questions for taking the test
// @Tags tests
// @Produce json
// @Param id path string true "Test id"
// @Success 200 {object} helpers.Response
// @Router /api/tests/{id} [get]
func (h *AssessmentHandler) FetchTest(w http.ResponseWriter, r *http.Request) {
	byID(h.svc.FetchTest, "Failed to load test")(w, r)
}

// GetTest godoc
// @Summary Test document for editing
// @Tags tests
// @Produce json
// @Param id path string true "Test id"
// @Success 200 {object} helpers.Response
// @Router /api/tests/{id}/edit [get]
func (h *AssessmentHandler) GetTest(w http.ResponseWriter, r *http.Request) {
	byID(h.svc.GetTest, "Failed to load test")(w, r)
}

// UpdateTest godoc
// @Summary Update a test
// @Tags tests
// @Accept json
// @Produce json
// @Param id path string true "Test id"
// @Success 200 {object} helpers.Response
// @Router /api/tests/{id} [put]
func (h *AssessmentHandler) UpdateTest(w http.ResponseWriter, r *http.Request) {
	body, ok := rawBody(w, r)
	if !ok {
		return
	}
	out, err := h.svc.UpdateTest(r.Context(), mux.Vars(r)["id"], body)
	relay(w, out, err, "Failed to update test")
}

type submitRequest struct {
	StudentID string            `json:"studentId"`
	Answers   map[string]string `json:"answers"`
	TimeSpent int               `json:"timeSpent"`
}

// Submit godoc
// @Summary Submit a student's answers
// @Tags tests
// @Accept json
// @Produce json
// @Param id path string true "Test id"
// @Param input body submitRequest true "Answers"
// @Success 200 {object} helpers.Response
// @Failure 400 {object} helpers.Response
// @Router /api/tests/{id}/submit [post]
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.svc.Submit(r.Context(), gateway.TestSubmission{
		TestID:    mux.Vars(r)["id"],
		StudentID: req.StudentID,
		Answers:   req.Answers,
		TimeSpent: req.TimeSpent,
	})
	relay(w, out, err, "Failed to submit test")
}

// Results godoc
// @Summary Result of a student's test
// @Tags tests
// @Produce json
// @Param id path string true "Test id"
// @Param studentId path string true "Student id"
// @Success 200 {object} helpers.Response
// @Router /api/tests/{id}/results/{studentId} [get]
func (h *AssessmentHandler) Results(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	out, err := h.svc.Results(r.Context(), vars["id"], vars["studentId"])
	relay(w, out, err, "Failed to load results")
}
