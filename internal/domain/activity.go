package domain

// Activity represents an extracurricular offering students can join.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	// Participants holds signed-up student emails in signup order,
	// with no duplicates.
	Participants []string
}

// HasParticipant reports whether email is already signed up.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
