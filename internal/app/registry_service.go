package app

import (
	"context"
	"fmt"

	"github.com/onnovanbreemen/skills-getting-started-with-github-copilot/internal/domain"
)

// ActivityStore is the registry access the service needs. The store
// owns all consistency checks; it must reject duplicate signups and
// unknown activities atomically.
type ActivityStore interface {
	List(ctx context.Context) (map[string]domain.Activity, error)
	SignUp(ctx context.Context, activityName, email string) error
	Unregister(ctx context.Context, activityName, email string) error
}

type RegistryService struct {
	store ActivityStore
}

func NewRegistryService(store ActivityStore) *RegistryService {
	return &RegistryService{store: store}
}

// ListActivities returns every activity keyed by name.
func (s *RegistryService) ListActivities(ctx context.Context) (map[string]domain.Activity, error) {
	return s.store.List(ctx)
}

// SignUp registers email for the named activity and returns the
// confirmation message shown to the student.
func (s *RegistryService) SignUp(ctx context.Context, activityName, email string) (string, error) {
	if email == "" {
		return "", domain.ErrEmailRequired
	}
	if err := s.store.SignUp(ctx, activityName, email); err != nil {
		return "", err
	}
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Unregister removes email from the named activity and returns the
// confirmation message.
func (s *RegistryService) Unregister(ctx context.Context, activityName, email string) (string, error) {
	if email == "" {
		return "", domain.ErrEmailRequired
	}
	if err := s.store.Unregister(ctx, activityName, email); err != nil {
		return "", err
	}
	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}
