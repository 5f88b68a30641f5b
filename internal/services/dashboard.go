package services

import (
	"embed"
	"fmt"

	"lmscl/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/*.yaml
var fixtures embed.FS

type profileFixture struct {
	Profile       models.Profile       `yaml:"profile"`
	ViewerStudent models.ViewerProfile `yaml:"viewer_student"`
}

// DashboardService serves the static analytics and profile screens. The
// data is mock content decoded once at startup.
type DashboardService struct {
	dashboard models.Dashboard
	profile   profileFixture
}

func NewDashboardService() (*DashboardService, error) {
	s := &DashboardService{}
	if err := loadFixture("fixtures/dashboard.yaml", &s.dashboard); err != nil {
		return nil, err
	}
	if err := loadFixture("fixtures/profile.yaml", &s.profile); err != nil {
		return nil, err
	}
	return s, nil
}

func loadFixture(name string, out any) error {
	raw, err := fixtures.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}

func (s *DashboardService) Dashboard() models.Dashboard {
	return s.dashboard
}

func (s *DashboardService) Profile() models.Profile {
	return s.profile.Profile
}

// ViewerStudent is the student card shown in the course viewer's info tab.
func (s *DashboardService) ViewerStudent() models.ViewerProfile {
	return s.profile.ViewerStudent
}

var weekDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func WeekDays() []string {
	return weekDays
}
