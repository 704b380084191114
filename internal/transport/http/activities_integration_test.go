package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/onnovanbreemen/skills-getting-started-with-github-copilot/internal/app"
	"github.com/onnovanbreemen/skills-getting-started-with-github-copilot/internal/store/memory"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	store := memory.NewStore(memory.SeedActivities())
	svc := app.NewRegistryService(store)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", HealthHandler)
	mux.Handle("/activities", HandleListActivities(svc))
	mux.Handle("/activities/", HandleActivityAction(svc))
	mux.Handle("/", NotFoundHandler())
	return mux
}

func getParticipants(t *testing.T, mux *http.ServeMux, activity string) []string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("list activities: expected status 200, got %d", rec.Code)
	}
	var resp map[string]activityResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode activities: %v", err)
	}
	a, ok := resp[activity]
	if !ok {
		t.Fatalf("activity %q missing from listing", activity)
	}
	return a.Participants
}

func TestSignupAndUnregisterWorkflow(t *testing.T) {
	mux := newTestMux(t)
	email := "workflow@mergington.edu"

	req := httptest.NewRequest(http.MethodPost, "/activities/Basketball/signup?email="+email, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("signup: expected status 200, got %d (body %s)", rec.Code, rec.Body.String())
	}

	var signupResp messageResponse
	if err := json.NewDecoder(rec.Body).Decode(&signupResp); err != nil {
		t.Fatalf("decode signup response: %v", err)
	}
	if signupResp.Message == "" {
		t.Fatalf("expected confirmation message")
	}

	participants := getParticipants(t, mux, "Basketball")
	if !contains(participants, email) {
		t.Fatalf("expected %s in participants after signup, got %v", email, participants)
	}

	req = httptest.NewRequest(http.MethodPost, "/activities/Basketball/unregister?email="+email, nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("unregister: expected status 200, got %d (body %s)", rec.Code, rec.Body.String())
	}

	participants = getParticipants(t, mux, "Basketball")
	if contains(participants, email) {
		t.Fatalf("expected %s removed after unregister, got %v", email, participants)
	}
	if !contains(participants, "alex@mergington.edu") {
		t.Fatalf("seeded participant must survive the workflow, got %v", participants)
	}
}

func TestSignupExample_PreservesInsertionOrder(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/activities/Basketball/signup?email=new@x.edu", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("signup: expected status 200, got %d", rec.Code)
	}

	participants := getParticipants(t, mux, "Basketball")
	want := []string{"alex@mergington.edu", "new@x.edu"}
	if len(participants) != len(want) || participants[0] != want[0] || participants[1] != want[1] {
		t.Fatalf("expected participants %v, got %v", want, participants)
	}

	req = httptest.NewRequest(http.MethodPost, "/activities/Basketball/unregister?email=alex@mergington.edu", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("unregister: expected status 200, got %d", rec.Code)
	}

	participants = getParticipants(t, mux, "Basketball")
	if len(participants) != 1 || participants[0] != "new@x.edu" {
		t.Fatalf("expected participants [new@x.edu], got %v", participants)
	}
}

func TestDuplicateSignup_LeavesRegistryUnchanged(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/activities/Basketball/signup?email=alex@mergington.edu", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	var resp detailResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Detail != "Student is already signed up for this activity" {
		t.Fatalf("unexpected detail: %q", resp.Detail)
	}

	participants := getParticipants(t, mux, "Basketball")
	if len(participants) != 1 {
		t.Fatalf("duplicate signup must not change participants, got %v", participants)
	}
}

func TestUnknownActivity_Returns404AndMutatesNothing(t *testing.T) {
	mux := newTestMux(t)

	for _, action := range []string{"signup", "unregister"} {
		req := httptest.NewRequest(http.MethodPost, "/activities/Quidditch/"+action+"?email=s@mergington.edu", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected status 404, got %d", action, rec.Code)
		}
		var resp detailResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Detail != "Activity not found" {
			t.Fatalf("%s: unexpected detail %q", action, resp.Detail)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	var resp map[string]activityResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode activities: %v", err)
	}
	if len(resp) != 3 {
		t.Fatalf("failed actions must not create activities, got %d", len(resp))
	}
}

func TestUnregisterAbsentEmail_Returns400(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/activities/Basketball/unregister?email=ghost@mergington.edu", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	var resp detailResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Detail != "Student is not registered for this activity" {
		t.Fatalf("unexpected detail: %q", resp.Detail)
	}
}

func contains(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
