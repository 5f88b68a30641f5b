package models

type Experience struct {
	ID               string `json:"_id,omitempty"`
	CompanyName      string `json:"company_name"`
	JobTitle         string `json:"job_title"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	CurrentlyWorking bool   `json:"currently_working"`
	Description      string `json:"description"`
}

type Project struct {
	ID               string  `json:"_id,omitempty"`
	Title            string  `json:"title"`
	StartDate        string  `json:"start_date"`
	EndDate          *string `json:"end_date"`
	CurrentlyOngoing bool    `json:"currently_ongoing"`
	Description      string  `json:"description"`
	Link             string  `json:"link"`
}

type Student struct {
	MongoID              string       `json:"_id"`
	ID                   int          `json:"id"`
	Username             string       `json:"username"`
	Email                string       `json:"email"`
	FirstName            string       `json:"first_name"`
	LastName             string       `json:"last_name"`
	Role                 string       `json:"role"`
	IsActive             bool         `json:"is_active"`
	DateJoined           *string      `json:"date_joined,omitempty"`
	LastLogin            *string      `json:"last_login,omitempty"`
	TenthBoard           string       `json:"10th_board"`
	TwelfthBoard         string       `json:"12th_board"`
	TenthSchool          string       `json:"10th_school"`
	TwelfthSchool        string       `json:"12th_school"`
	TenthPercentage      string       `json:"10th_Percentage"`
	TwelfthPercentage    string       `json:"12th_Percentage"`
	TenthPassoutYear     string       `json:"10th_passout_year"`
	TwelfthPassoutYear   string       `json:"12th_passout_year"`
	GraduationPercentage string       `json:"Graduation_Percentage"`
	PassoutYear          string       `json:"Passout_Year"`
	Branch               string       `json:"branch"`
	UGCollege            string       `json:"ug_college"`
	FatherName           string       `json:"father_name"`
	Location             string       `json:"location"`
	Mobile               string       `json:"mobile"`
	Skills               []string     `json:"skills"`
	ProfilePicture       string       `json:"profile_picture"`
	Experiences          []Experience `json:"experiences"`
	Projects             []Project    `json:"projects"`
}

type Teacher struct {
	MongoID   string `json:"_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsActive  bool   `json:"is_active"`
	Role      string `json:"role"`
}

type HR struct {
	MongoID            string  `json:"_id"`
	ID                 int     `json:"id"`
	HRName             string  `json:"hrname"`
	Email              string  `json:"email"`
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	IsActive           bool    `json:"is_active"`
	Mobile             string  `json:"mobile"`
	CompanyName        string  `json:"company_name"`
	CompanyDescription string  `json:"company_description"`
	Position           string  `json:"position"`
	LinkedIn           string  `json:"linkedin"`
	DateJoined         *string `json:"date_joined,omitempty"`
	LastLogin          *string `json:"last_login,omitempty"`
	IsArchived         bool    `json:"is_archived,omitempty"`
}

// StudentForm is what the add/edit dialogs submit. Empty fields are omitted
// so that an edit only touches what the admin changed.
type StudentForm struct {
	Username             string   `json:"username,omitempty" validate:"required,min=3"`
	Email                string   `json:"email,omitempty" validate:"required,email"`
	FirstName            string   `json:"first_name,omitempty"`
	LastName             string   `json:"last_name,omitempty"`
	Password             string   `json:"password,omitempty" validate:"omitempty,min=6"`
	IsActive             *bool    `json:"is_active,omitempty"`
	Mobile               string   `json:"mobile,omitempty" validate:"omitempty,max=20"`
	Location             string   `json:"location,omitempty"`
	FatherName           string   `json:"father_name,omitempty"`
	TenthBoard           string   `json:"10th_board,omitempty"`
	TwelfthBoard         string   `json:"12th_board,omitempty"`
	TenthSchool          string   `json:"10th_school,omitempty"`
	TwelfthSchool        string   `json:"12th_school,omitempty"`
	TenthPercentage      string   `json:"10th_Percentage,omitempty"`
	TwelfthPercentage    string   `json:"12th_Percentage,omitempty"`
	TenthPassoutYear     string   `json:"10th_passout_year,omitempty"`
	TwelfthPassoutYear   string   `json:"12th_passout_year,omitempty"`
	GraduationPercentage string   `json:"Graduation_Percentage,omitempty"`
	PassoutYear          string   `json:"Passout_Year,omitempty"`
	Branch               string   `json:"branch,omitempty"`
	UGCollege            string   `json:"ug_college,omitempty"`
	Skills               []string `json:"skills,omitempty"`
}

type TeacherForm struct {
	Username  string `json:"username,omitempty" validate:"required,min=3"`
	Email     string `json:"email,omitempty" validate:"required,email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Password  string `json:"password,omitempty" validate:"omitempty,min=6"`
	IsActive  *bool  `json:"is_active,omitempty"`
}

type HRForm struct {
	HRName             string `json:"hrname,omitempty" validate:"required,min=3"`
	Email              string `json:"email,omitempty" validate:"required,email"`
	FirstName          string `json:"first_name,omitempty"`
	LastName           string `json:"last_name,omitempty"`
	Password           string `json:"password,omitempty" validate:"omitempty,min=6"`
	IsActive           *bool  `json:"is_active,omitempty"`
	Mobile             string `json:"mobile,omitempty" validate:"omitempty,max=20"`
	CompanyName        string `json:"company_name,omitempty"`
	CompanyDescription string `json:"company_description,omitempty"`
	Position           string `json:"position,omitempty"`
	LinkedIn           string `json:"linkedin,omitempty" validate:"omitempty,url"`
}
