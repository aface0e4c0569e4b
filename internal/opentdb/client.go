package opentdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	apiURL        = "https://opentdb.com/api.php"
	defaultAmount = 10
)

// ErrUnexpectedResponse wraps non-200 statuses and non-zero response codes.
var ErrUnexpectedResponse = errors.New("unexpected opentdb response")

// RawQuestion mirrors the OpenTriviaDB question payload.
type RawQuestion struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type apiResponse struct {
	ResponseCode int           `json:"response_code"`
	Results      []RawQuestion `json:"results"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, baseURL: apiURL}
}

// FetchQuestions pulls amount multiple-choice questions. A positive category
// restricts them to that OpenTDB category ID.
func (c *Client) FetchQuestions(ctx context.Context, amount, category int) ([]RawQuestion, error) {
	if amount <= 0 {
		amount = defaultAmount
	}

	query := url.Values{}
	query.Set("amount", strconv.Itoa(amount))
	query.Set("type", "multiple")
	if category > 0 {
		query.Set("category", strconv.Itoa(category))
	}

	endpoint := c.baseURL + "?" + query.Encode()
	results, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch %d opentdb questions: %w", amount, err)
	}
	return results, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]RawQuestion, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: http %s", ErrUnexpectedResponse, resp.Status)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if payload.ResponseCode != 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedResponse, responseCodeText(payload.ResponseCode))
	}
	return payload.Results, nil
}

// responseCodeText names the documented non-zero response_code values.
func responseCodeText(code int) string {
	switch code {
	case 1:
		return "not enough questions for the query"
	case 2:
		return "invalid parameter"
	case 3, 4:
		return "session token missing or exhausted"
	case 5:
		return "rate limited"
	}
	return "response_code " + strconv.Itoa(code)
}
