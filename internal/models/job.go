package models

import "time"

// Job is an off-campus listing returned by the backend job search.
type Job struct {
	ID                string `json:"_id"`
	JobTitle          string `json:"job_title"`
	EmployerName      string `json:"employer_name"`
	EmployerLogo      string `json:"employer_logo"`
	FormattedLocation string `json:"formatted_location"`
	JobIsRemote       bool   `json:"job_is_remote"`
	FormattedSalary   string `json:"formatted_salary"`
	DaysAgo           int    `json:"days_ago"`
	JobDescription    string `json:"job_description"`
	JobApplyLink      string `json:"job_apply_link"`
}

type JobFilters struct {
	Country string `json:"country"`
	Remote  bool   `json:"remote"`
	Search  string `json:"search"`
}

// JobPosting is an entry of the HR job board.
type JobPosting struct {
	ID           int       `yaml:"id" json:"id"`
	Title        string    `yaml:"title" json:"title"`
	Company      string    `yaml:"company" json:"company"`
	Location     string    `yaml:"location" json:"location"`
	Type         string    `yaml:"type" json:"type"`
	Salary       string    `yaml:"salary" json:"salary"`
	PostedDate   time.Time `yaml:"posted_date" json:"posted_date"`
	Description  string    `yaml:"description" json:"description"`
	Requirements []string  `yaml:"requirements" json:"requirements"`
	Logo         string    `yaml:"logo" json:"logo"`
}
