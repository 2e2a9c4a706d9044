package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

type testServer struct {
	server   *httptest.Server
	requests []recordedRequest
}

func newTestServer(t *testing.T, responses map[string]string) *testServer {
	t.Helper()
	ts := &testServer{}

	ts.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body bytes.Buffer
		body.ReadFrom(r.Body)

		ts.requests = append(ts.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.RequestURI(),
			Body:   body.String(),
		})

		key := r.Method + " " + r.URL.Path
		if resp, ok := responses[key]; ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(resp))
			return
		}

		w.WriteHeader(404)
		w.Write([]byte(`{"error":{"message":"not found","type":"not_found"}}`))
	}))

	t.Cleanup(ts.server.Close)
	return ts
}

func (ts *testServer) client() *apiClient {
	return &apiClient{
		baseURL:    ts.server.URL,
		httpClient: ts.server.Client(),
	}
}

var ctx = context.Background()

func TestAskRoundTrip(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"POST /api/chat": `{"user":{"id":"1","role":"user","text":"hi"},"assistant":{"id":"2","role":"assistant","text":"hello back"}}`,
	})

	client := ts.client()
	resp, err := client.post(ctx, "/api/chat", map[string]any{"message": "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result struct {
		Assistant struct {
			Text string `json:"text"`
		} `json:"assistant"`
	}
	if err := decodeJSON(resp, &result); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if result.Assistant.Text != "hello back" {
		t.Errorf("assistant text = %q", result.Assistant.Text)
	}

	if len(ts.requests) != 1 {
		t.Fatalf("got %d requests, want 1", len(ts.requests))
	}
	if !strings.Contains(ts.requests[0].Body, `"message":"hi"`) {
		t.Errorf("request body = %s", ts.requests[0].Body)
	}
}

func TestDecodeJSON_ErrorStatus(t *testing.T) {
	ts := newTestServer(t, nil)

	client := ts.client()
	resp, err := client.get(ctx, "/api/profile")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var v any
	err = decodeJSON(resp, &v)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error = %v, want status in message", err)
	}
}

func TestReloadRoundTrip(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"POST /api/reload": `{"name":"Jash Kothari"}`,
	})

	client := ts.client()
	resp, err := client.post(ctx, "/api/reload", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var p struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(resp, &p); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if p.Name != "Jash Kothari" {
		t.Errorf("name = %q", p.Name)
	}
	if ts.requests[0].Body != "" {
		t.Errorf("reload sent a body: %s", ts.requests[0].Body)
	}
}
