package models

type MonthProgress struct {
	Name     string `yaml:"name" json:"name"`
	Progress int    `yaml:"progress" json:"progress"`
}

type LeaderboardEntry struct {
	Rank   int    `yaml:"rank" json:"rank"`
	Name   string `yaml:"name" json:"name"`
	Score  int    `yaml:"score" json:"score"`
	Avatar string `yaml:"avatar" json:"avatar"`
}

type SessionProgress struct {
	Name     string `yaml:"name" json:"name"`
	Progress int    `yaml:"progress" json:"progress"`
}

type StatCard struct {
	Title string `yaml:"title" json:"title"`
	Value string `yaml:"value" json:"value"`
	Note  string `yaml:"note" json:"note"`
}

type Dashboard struct {
	Greeting        string             `yaml:"greeting" json:"greeting"`
	Stats           []StatCard         `yaml:"stats" json:"stats"`
	MonthlyProgress []MonthProgress    `yaml:"monthly_progress" json:"monthly_progress"`
	Streak          [][]int            `yaml:"streak" json:"streak"`
	CurrentStreak   int                `yaml:"current_streak" json:"current_streak"`
	LongestStreak   int                `yaml:"longest_streak" json:"longest_streak"`
	Leaderboard     []LeaderboardEntry `yaml:"leaderboard" json:"leaderboard"`
	Sessions        []SessionProgress  `yaml:"sessions" json:"sessions"`
}

type Skill struct {
	Name  string `yaml:"name" json:"name"`
	Level string `yaml:"level" json:"level"`
}

type Education struct {
	Degree      string `yaml:"degree" json:"degree"`
	Institution string `yaml:"institution" json:"institution"`
	Duration    string `yaml:"duration" json:"duration"`
	Description string `yaml:"description" json:"description"`
	GPA         string `yaml:"gpa" json:"gpa"`
}

type Achievement struct {
	Title       string `yaml:"title" json:"title"`
	Date        string `yaml:"date" json:"date"`
	Description string `yaml:"description" json:"description"`
}

type Profile struct {
	Name         string            `yaml:"name" json:"name"`
	Email        string            `yaml:"email" json:"email"`
	Phone        string            `yaml:"phone" json:"phone"`
	Location     string            `yaml:"location" json:"location"`
	Role         string            `yaml:"role" json:"role"`
	Institution  string            `yaml:"institution" json:"institution"`
	JoinDate     string            `yaml:"join_date" json:"join_date"`
	Bio          string            `yaml:"bio" json:"bio"`
	Avatar       string            `yaml:"avatar" json:"avatar"`
	Skills       []Skill           `yaml:"skills" json:"skills"`
	Education    []Education       `yaml:"education" json:"education"`
	Achievements []Achievement     `yaml:"achievements" json:"achievements"`
	Courses      []SessionProgress `yaml:"courses" json:"courses"`
}

// ViewerProfile is the mock student shown in the course viewer sidebar.
type ViewerProfile struct {
	Name           string `yaml:"name" json:"name"`
	Email          string `yaml:"email" json:"email"`
	EnrollmentDate string `yaml:"enrollment_date" json:"enrollment_date"`
	AssignedBy     string `yaml:"assigned_by" json:"assigned_by"`
}
