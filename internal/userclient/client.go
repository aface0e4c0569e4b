// Package userclient talks to a running quiz-service over HTTP.
package userclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"subject-quiz/internal/quiz"
)

var ErrServiceUnavailable = errors.New("quiz service unavailable")

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

type Health struct {
	Status    string `json:"status"`
	SessionID string `json:"session_id"`
}

type SubjectInfo struct {
	Name          string `json:"name"`
	QuestionCount int    `json:"question_count"`
}

type Option struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

type QuestionView struct {
	Number       int      `json:"number"`
	QuestionID   string   `json:"question_id"`
	Question     string   `json:"question"`
	Options      []Option `json:"options"`
	CorrectIndex *int     `json:"correct_index,omitempty"`
	Explanation  string   `json:"explanation,omitempty"`
}

// StateView is the session projection served by GET /state and POST /actions.
type StateView struct {
	SessionID     string         `json:"session_id"`
	Subject       *string        `json:"subject"`
	Status        quiz.Status    `json:"status"`
	Index         int            `json:"index"`
	Budget        int            `json:"budget"`
	TimeLeft      int            `json:"time_left"`
	LowTime       bool           `json:"low_time"`
	QuestionCount int            `json:"question_count"`
	AnsweredCount int            `json:"answered_count"`
	Answers       []quiz.Answer  `json:"answers"`
	Current       *QuestionView  `json:"current,omitempty"`
	Questions     []QuestionView `json:"questions"`
	Score         *int           `json:"score,omitempty"`
}

type Review struct {
	SessionID string            `json:"session_id"`
	Subject   string            `json:"subject"`
	Score     int               `json:"score"`
	Total     int               `json:"total"`
	Items     []quiz.ReviewItem `json:"items"`
}

type actionRequest struct {
	Type    quiz.ActionType `json:"type"`
	Subject string          `json:"subject,omitempty"`
	Option  *int            `json:"option,omitempty"`
	Letter  string          `json:"letter,omitempty"`
}

type subjectsResponse struct {
	Subjects []SubjectInfo `json:"subjects"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	baseURL = strings.TrimSpace(baseURL)
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8080"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// BaseURLForAddr turns a listen address such as ":8080" into a URL that
// reaches it from the same host.
func BaseURLForAddr(addr string) string {
	addr = strings.TrimSpace(addr)
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return addr
	}
	if strings.HasPrefix(addr, ":") {
		addr = "127.0.0.1" + addr
	}
	return "http://" + addr
}

func (c *HTTPClient) Health(ctx context.Context) (Health, error) {
	var payload Health
	err := c.doJSON(ctx, http.MethodGet, "/healthz", nil, &payload)
	return payload, err
}

func (c *HTTPClient) Subjects(ctx context.Context) ([]SubjectInfo, error) {
	var payload subjectsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/subjects", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Subjects, nil
}

func (c *HTTPClient) State(ctx context.Context) (StateView, error) {
	var payload StateView
	err := c.doJSON(ctx, http.MethodGet, "/state", nil, &payload)
	return payload, err
}

// Dispatch posts action and returns the state it produced.
func (c *HTTPClient) Dispatch(ctx context.Context, action quiz.Action) (StateView, error) {
	request := actionRequest{Type: action.Type, Subject: action.Subject}
	if action.Type == quiz.ActionSelect {
		if action.Letter != "" {
			request.Letter = action.Letter
		} else {
			option := action.Option
			request.Option = &option
		}
	}

	var payload StateView
	err := c.doJSON(ctx, http.MethodPost, "/actions", request, &payload)
	return payload, err
}

func (c *HTTPClient) Review(ctx context.Context) (Review, error) {
	var payload Review
	err := c.doJSON(ctx, http.MethodGet, "/review", nil, &payload)
	return payload, err
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, requestBody any, responseBody any) error {
	fullURL := c.baseURL + path

	var body io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return err
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		apiErr := APIError{StatusCode: response.StatusCode}
		var payload errorResponse
		if err := json.NewDecoder(response.Body).Decode(&payload); err == nil && strings.TrimSpace(payload.Error) != "" {
			apiErr.Message = payload.Error
		}
		if apiErr.Message == "" {
			apiErr.Message = response.Status
		}
		return &apiErr
	}

	if responseBody == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(responseBody)
}
