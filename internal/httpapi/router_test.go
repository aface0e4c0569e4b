package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusRecorderWriteTracksAndTruncates(t *testing.T) {
	base := httptest.NewRecorder()
	recorder := &statusRecorder{
		ResponseWriter: base,
		statusCode:     http.StatusOK,
		maxLogBytes:    10,
	}

	payload := []byte("abcdefghijklmnopqrstuvwxyz")
	written, err := recorder.Write(payload)
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if written != len(payload) {
		t.Fatalf("written bytes = %d, want %d", written, len(payload))
	}
	if recorder.bytesWritten != len(payload) {
		t.Fatalf("bytesWritten = %d, want %d", recorder.bytesWritten, len(payload))
	}
	if recorder.logBody.Len() != 10 {
		t.Fatalf("log body length = %d, want 10", recorder.logBody.Len())
	}
	if !recorder.truncated {
		t.Fatalf("expected truncated flag to be true")
	}
}

func TestStatusRecorderKeepsShortBodies(t *testing.T) {
	recorder := &statusRecorder{
		ResponseWriter: httptest.NewRecorder(),
		statusCode:     http.StatusOK,
		maxLogBytes:    64,
	}
	recorder.WriteHeader(http.StatusConflict)
	if _, err := recorder.Write([]byte(`{"error":"x"}`)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if recorder.statusCode != http.StatusConflict {
		t.Fatalf("statusCode = %d, want %d", recorder.statusCode, http.StatusConflict)
	}
	if recorder.truncated || recorder.logBody.String() != `{"error":"x"}` {
		t.Fatalf("unexpected log body %q (truncated=%v)", recorder.logBody.String(), recorder.truncated)
	}
}

func TestRouterSetsRequestIDAndCORS(t *testing.T) {
	server := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/healthz", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("allow origin = %q", got)
	}
}

func TestRouterRejectsWrongMethod(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/state", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /state: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusMethodNotAllowed)
	}
}
