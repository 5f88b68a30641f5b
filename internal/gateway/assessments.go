package gateway

import (
	"context"
	"encoding/json"
	"net/url"
)

// Assessment and test payloads are passed through untouched; nothing in this
// module interprets them beyond the identifiers used to address them.

func (c *Client) Skills(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.get(ctx, "/lmsai/api/skills/", nil, &out)
	return out, err
}

func (c *Client) GenerateQuestions(ctx context.Context, prompt string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.post(ctx, "/lmsai/api/generate-questions/", map[string]string{"prompt": prompt}, &out)
	return out, err
}

func (c *Client) StoreAssessment(ctx context.Context, assessment json.RawMessage) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.post(ctx, "/lmsai/api/store_questions/", assessment, &out)
	return out, err
}

func (c *Client) TeacherAssessments(ctx context.Context, teacherID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.post(ctx, "/api/getting_assesment_id/", map[string]string{"teacher_id": teacherID}, &out)
	return out, err
}

func (c *Client) AssessmentDetails(ctx context.Context, assessmentID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.get(ctx, "/api/assessment_details/"+url.PathEscape(assessmentID)+"/", nil, &out)
	return out, err
}

func (c *Client) AssignAssessment(ctx context.Context, assessmentID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.post(ctx, "/lmsai/api/assign/", map[string]string{"assessment_id": assessmentID}, &out)
	return out, err
}

func (c *Client) DeleteAssessment(ctx context.Context, assessmentID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.post(ctx, "/api/delete-assessment", map[string]string{"assessment_id": assessmentID}, &out)
	return out, err
}

// StudentTests lists the tests assigned to a student; an empty id asks for all.
func (c *Client) StudentTests(ctx context.Context, studentID string) (json.RawMessage, error) {
	body := map[string]any{"student_id": nil}
	if studentID != "" {
		body["student_id"] = studentID
	}
	var out json.RawMessage
	err := c.post(ctx, "/api/test/", body, &out)
	return out, err
}

func (c *Client) FetchTest(ctx context.Context, testID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.post(ctx, "/api/tests/get", map[string]string{"testId": testID}, &out)
	return out, err
}

type TestSubmission struct {
	TestID    string            `json:"testId"`
	StudentID string            `json:"studentId"`
	Answers   map[string]string `json:"answers"`
	TimeSpent int               `json:"timeSpent"`
}

func (c *Client) SubmitTest(ctx context.Context, sub TestSubmission) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.post(ctx, "/api/tests/submit", sub, &out)
	return out, err
}

func (c *Client) CompletedTests(ctx context.Context, studentID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.post(ctx, "/api/tests/completed", map[string]string{"student_id": studentID}, &out)
	return out, err
}

func (c *Client) TestResults(ctx context.Context, testID, studentID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.post(ctx, "/api/tests/results", map[string]string{"test_id": testID, "student_id": studentID}, &out)
	return out, err
}

func (c *Client) GetTest(ctx context.Context, testID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.get(ctx, "/api/tests/"+url.PathEscape(testID)+"/", nil, &out)
	return out, err
}

func (c *Client) UpdateTest(ctx context.Context, testID string, test json.RawMessage) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.put(ctx, "/api/updatetest/"+url.PathEscape(testID)+"/", test, &out)
	return out, err
}
