package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/onnovanbreemen/skills-getting-started-with-github-copilot/internal/domain"
)

// ActivityLister is the minimal interface needed to list activities.
type ActivityLister interface {
	ListActivities(ctx context.Context) (map[string]domain.Activity, error)
}

// ActivityRegistrar is the minimal interface needed for signup and
// unregister endpoints.
type ActivityRegistrar interface {
	SignUp(ctx context.Context, activityName, email string) (string, error)
	Unregister(ctx context.Context, activityName, email string) (string, error)
}

// HandleListActivities returns an HTTP handler for GET /activities.
func HandleListActivities(svc ActivityLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		activities, err := svc.ListActivities(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		resp := make(map[string]activityResponse, len(activities))
		for name, activity := range activities {
			participants := activity.Participants
			if participants == nil {
				participants = []string{}
			}
			resp[name] = activityResponse{
				Description:     activity.Description,
				Schedule:        activity.Schedule,
				MaxParticipants: activity.MaxParticipants,
				Participants:    participants,
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleActivityAction returns an HTTP handler for
// POST /activities/{name}/signup and POST /activities/{name}/unregister.
// The email is passed as a query parameter.
func HandleActivityAction(svc ActivityRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activityName, action, ok := parseActivityActionPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		email := r.URL.Query().Get("email")

		var (
			msg string
			err error
		)
		switch action {
		case "signup":
			msg, err = svc.SignUp(r.Context(), activityName, email)
		case "unregister":
			msg, err = svc.Unregister(r.Context(), activityName, email)
		}
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrActivityNotFound):
				writeError(w, http.StatusNotFound, err.Error())
			case errors.Is(err, domain.ErrAlreadySignedUp),
				errors.Is(err, domain.ErrNotRegistered),
				errors.Is(err, domain.ErrEmailRequired):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{Message: msg})
	}
}

type activityResponse struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// parseActivityActionPath matches /activities/{name}/{signup|unregister}.
// net/http hands us the already-decoded path, so activity names with
// spaces ("Tennis Club") arrive as-is.
func parseActivityActionPath(path string) (name, action string, ok bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 {
		return "", "", false
	}
	if parts[0] != "activities" || parts[1] == "" {
		return "", "", false
	}
	if parts[2] != "signup" && parts[2] != "unregister" {
		return "", "", false
	}
	return parts[1], parts[2], true
}
