package memory

import "github.com/onnovanbreemen/skills-getting-started-with-github-copilot/internal/domain"

// SeedActivities returns the initial Mergington High registry loaded
// at startup.
func SeedActivities() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Basketball",
			Description:     "Team sport focusing on basketball skills and competition",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"alex@mergington.edu"},
		},
		{
			Name:            "Tennis Club",
			Description:     "Learn tennis techniques and participate in friendly matches",
			Schedule:        "Saturdays, 10:00 AM - 12:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"lucas@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Perform in theatrical productions and develop acting skills",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"isabella@mergington.edu", "noah@mergington.edu"},
		},
	}
}
