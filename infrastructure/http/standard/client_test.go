package standard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNewStandardHTTPClient(t *testing.T) {
	timeout := 10 * time.Second
	client := NewStandardHTTPClient(timeout)

	if client == nil {
		t.Fatal("NewStandardHTTPClient returned nil")
	}

	if client.client.Timeout != timeout {
		t.Errorf("Client timeout = %v, want %v", client.client.Timeout, timeout)
	}
}

func TestStandardHTTPClient_Get_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET request, got %s", r.Method)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"title":"Item 1"}]`))
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10 * time.Second)

	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d", resp.StatusCode(), http.StatusOK)
	}
	if resp.Header("content-type") != "application/json" {
		t.Errorf("Header(content-type) = %s, want application/json", resp.Header("content-type"))
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	if string(body) != `[{"title":"Item 1"}]` {
		t.Errorf("Body = %s", string(body))
	}
}

func TestStandardHTTPClient_Get_Headers(t *testing.T) {
	var userAgent, accept string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		accept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10 * time.Second)

	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	resp.Body().Close()

	if !strings.Contains(userAgent, "ItemsAPI") {
		t.Errorf("User-Agent = %s, should contain 'ItemsAPI'", userAgent)
	}
	if accept != "application/json" {
		t.Errorf("Accept = %s, want application/json", accept)
	}
}

func TestStandardHTTPClient_Get_SingleAttempt(t *testing.T) {
	var mu sync.Mutex
	attempts := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		mu.Unlock()
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10 * time.Second)

	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	resp.Body().Close()

	if resp.StatusCode() != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d, want %d", resp.StatusCode(), http.StatusServiceUnavailable)
	}

	mu.Lock()
	defer mu.Unlock()
	if attempts != 1 {
		t.Errorf("Attempts = %d, want 1", attempts)
	}
}

func TestStandardHTTPClient_Get_ContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	resp, err := client.Get(ctx, server.URL)
	if err == nil {
		resp.Body().Close()
		t.Fatal("Get should return error for context timeout")
	}
	if !strings.Contains(err.Error(), "context deadline exceeded") {
		t.Errorf("Error should mention context deadline, got: %v", err)
	}
}

func TestStandardHTTPClient_Get_InvalidURL(t *testing.T) {
	client := NewStandardHTTPClient(10 * time.Second)

	resp, err := client.Get(context.Background(), "not a valid url")
	if err == nil {
		resp.Body().Close()
		t.Error("Get should return error for invalid URL")
	}
}

type recordingLogger struct {
	mu       sync.Mutex
	messages []string
	fields   []map[string]interface{}
}

func (l *recordingLogger) record(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
	l.fields = append(l.fields, fields)
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.record(msg, fields) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.record(msg, fields) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.record(msg, fields) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.record(msg, fields) }

func TestLoggingHTTPClient_LogsRequestAndResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := NewLoggingHTTPClient(5*time.Second, logger)

	resp, err := client.Get(context.Background(), server.URL+"/items.json")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	resp.Body().Close()

	logger.mu.Lock()
	defer logger.mu.Unlock()

	if len(logger.messages) != 2 {
		t.Fatalf("logged %d messages, want 2: %v", len(logger.messages), logger.messages)
	}
	if logger.messages[0] != "Outgoing HTTP request" || logger.messages[1] != "Outgoing HTTP response" {
		t.Errorf("unexpected messages: %v", logger.messages)
	}
	if logger.fields[1]["status"] != http.StatusTeapot {
		t.Errorf("status field = %v, want %d", logger.fields[1]["status"], http.StatusTeapot)
	}
	if logger.fields[0]["request_id"] != logger.fields[1]["request_id"] {
		t.Error("request and response logs should share a request id")
	}
	if !strings.HasSuffix(logger.fields[0]["url"].(string), "/items.json") {
		t.Errorf("url field = %v", logger.fields[0]["url"])
	}
}

func TestLoggingRoundTripper_LogsFailure(t *testing.T) {
	logger := &recordingLogger{}
	client := NewLoggingHTTPClient(5*time.Second, logger)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := client.Get(context.Background(), url)
	if err == nil {
		t.Fatal("Get against a closed server should fail")
	}

	logger.mu.Lock()
	defer logger.mu.Unlock()

	last := logger.messages[len(logger.messages)-1]
	if last != "Outgoing HTTP request failed" {
		t.Errorf("last message = %q, want failure log", last)
	}
	if _, ok := logger.fields[len(logger.fields)-1]["error"]; !ok {
		t.Error("failure log should carry the error field")
	}
}

func TestHTTPResponse_Header(t *testing.T) {
	resp := &httpResponse{
		headers: http.Header{
			"Content-Type": []string{"application/json"},
		},
	}

	if resp.Header("Content-Type") != "application/json" {
		t.Errorf("Header(Content-Type) = %s, want application/json", resp.Header("Content-Type"))
	}
	if resp.Header("Non-Existent") != "" {
		t.Errorf("Header(Non-Existent) = %s, want empty string", resp.Header("Non-Existent"))
	}
}
