package models

// CourseCard is a course (or blog) as shown in the catalogue grids.
// Optional fields are filled by gateway normalisation.
type CourseCard struct {
	ID               string   `json:"_id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Image            string   `json:"image"`
	Tags             []string `json:"tags"`
	Instructor       string   `json:"instructor"`
	TeacherName      string   `json:"teacher_name,omitempty"`
	TeacherID        string   `json:"teacher_id,omitempty"`
	Progress         int      `json:"progress"`
	TotalChapters    int      `json:"total_chapters"`
	CompletedLessons int      `json:"completed_lessons"`
	EstimatedHours   int      `json:"estimated_hours"`
	CreatedAt        string   `json:"created_at,omitempty"`
	UpdatedAt        string   `json:"updated_at,omitempty"`
}

func (c CourseCard) Started() bool {
	return c.Progress > 0
}
