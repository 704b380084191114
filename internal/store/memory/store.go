package memory

import (
	"context"
	"sync"

	"github.com/onnovanbreemen/skills-getting-started-with-github-copilot/internal/domain"
)

// Store is the process-wide activity registry. A single mutex
// serializes every operation so the check-then-mutate sequences in
// SignUp/Unregister cannot interleave.
type Store struct {
	mu         sync.Mutex
	activities map[string]*domain.Activity
}

// NewStore builds a registry holding the given activities. Later
// mutations do not touch the caller's slice.
func NewStore(seed []domain.Activity) *Store {
	s := &Store{activities: make(map[string]*domain.Activity, len(seed))}
	for _, activity := range seed {
		a := activity
		a.Participants = append([]string(nil), activity.Participants...)
		s.activities[a.Name] = &a
	}
	return s
}

// List returns a snapshot of the full registry. Participant slices
// are copied so callers never alias live state.
func (s *Store) List(ctx context.Context) (map[string]domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]domain.Activity, len(s.activities))
	for name, activity := range s.activities {
		a := *activity
		a.Participants = append([]string(nil), activity.Participants...)
		out[name] = a
	}
	return out, nil
}

// SignUp appends email to the activity's participant list, preserving
// signup order.
func (s *Store) SignUp(ctx context.Context, activityName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		return domain.ErrAlreadySignedUp
	}
	activity.Participants = append(activity.Participants, email)
	return nil
}

// Unregister removes email from the activity's participant list.
func (s *Store) Unregister(ctx context.Context, activityName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotRegistered
}
