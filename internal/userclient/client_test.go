package userclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"subject-quiz/internal/clock"
	"subject-quiz/internal/httpapi"
	"subject-quiz/internal/quiz"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newQuizServer(t *testing.T) *httptest.Server {
	t.Helper()

	bank := quiz.NewBank(quiz.Subject{Name: "DBMS", Questions: []quiz.Question{
		{ID: "dbms-1", Prompt: "I in ACID?", Options: []string{"Integrity", "Isolation"}, CorrectIndex: 1, Explanation: "Isolation."},
	}})
	controller := quiz.NewController(bank, quiz.WithClock(clock.NewManual()))
	t.Cleanup(controller.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)

	server := httptest.NewServer(httpapi.NewRouter(controller, bank, httpapi.RouterOptions{Logger: log}))
	t.Cleanup(server.Close)
	return server
}

func TestDoJSONReturnsServiceUnavailable(t *testing.T) {
	client := NewHTTPClient("http://example.test", &http.Client{
		Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("dial error")
		}),
	})

	_, err := client.Health(context.Background())
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable wrapper, got %v", err)
	}
}

func TestDoJSONReturnsAPIErrorMessageFromBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "bad request payload"})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, server.Client())
	err := client.doJSON(context.Background(), http.MethodGet, "/anything", nil, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T (%v)", err, err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "bad request payload" {
		t.Fatalf("unexpected API error: %+v", apiErr)
	}
}

func TestClientPlaysSessionAgainstService(t *testing.T) {
	server := newQuizServer(t)
	client := NewHTTPClient(server.URL+"/", server.Client())
	ctx := context.Background()

	health, err := client.Health(ctx)
	if err != nil || health.Status != "ok" || health.SessionID == "" {
		t.Fatalf("Health = (%+v, %v)", health, err)
	}

	subjects, err := client.Subjects(ctx)
	if err != nil || len(subjects) != 1 || subjects[0].Name != "DBMS" {
		t.Fatalf("Subjects = (%+v, %v)", subjects, err)
	}

	if _, err := client.Review(ctx); err == nil {
		t.Fatalf("expected review to fail before the run finishes")
	} else {
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusConflict {
			t.Fatalf("Review error = %v, want 409 APIError", err)
		}
	}

	for _, action := range []quiz.Action{quiz.ChooseSubject("DBMS"), quiz.Start(), quiz.SelectLetter("b")} {
		if _, err := client.Dispatch(ctx, action); err != nil {
			t.Fatalf("Dispatch %s failed: %v", action.Type, err)
		}
	}
	state, err := client.State(ctx)
	if err != nil {
		t.Fatalf("State failed: %v", err)
	}
	if state.Status != quiz.StatusActive || state.AnsweredCount != 1 || state.Current == nil || state.Current.CorrectIndex != nil {
		t.Fatalf("unexpected active state: %+v", state)
	}

	state, err = client.Dispatch(ctx, quiz.Finish())
	if err != nil || state.Score == nil || *state.Score != 1 {
		t.Fatalf("Finish = (%+v, %v)", state, err)
	}

	review, err := client.Review(ctx)
	if err != nil || review.Score != 1 || len(review.Items) != 1 || !review.Items[0].Correct {
		t.Fatalf("Review = (%+v, %v)", review, err)
	}
}

func TestBaseURLForAddr(t *testing.T) {
	cases := map[string]string{
		":8080":                "http://127.0.0.1:8080",
		"0.0.0.0:9000":         "http://0.0.0.0:9000",
		"http://quiz.internal": "http://quiz.internal",
	}
	for addr, want := range cases {
		if got := BaseURLForAddr(addr); got != want {
			t.Fatalf("BaseURLForAddr(%q) = %q, want %q", addr, got, want)
		}
	}
}
