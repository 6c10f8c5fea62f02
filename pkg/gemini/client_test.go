package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart-todo-backend/pkg/gemini"
)

func newMockServer(t *testing.T, reply func(req gemini.GenerateRequest) (int, string)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		code, body := reply(req)
		w.WriteHeader(code)
		w.Write([]byte(body))
	}))
}

func candidateBody(text string) string {
	b, _ := json.Marshal(gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: text}}}},
		},
	})
	return string(b)
}

func TestClient_GenerateContent(t *testing.T) {
	ts := newMockServer(t, func(req gemini.GenerateRequest) (int, string) {
		if req.Contents[0].Parts[0].Text == "cause_500" {
			return http.StatusInternalServerError, ""
		}
		return http.StatusOK, candidateBody("mocked response string")
	})
	defer ts.Close()

	client := gemini.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "Hello world"}}},
			},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Candidates) != 1 {
			t.Fatalf("expected 1 candidate")
		}
		if resp.Candidates[0].Content.Parts[0].Text != "mocked response string" {
			t.Errorf("unexpected content response: %s", resp.Candidates[0].Content.Parts[0].Text)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		}

		if _, err := client.GenerateContent(context.Background(), req); err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})
}

func TestClient_GenerateObject(t *testing.T) {
	schema := &gemini.Schema{
		Type: "object",
		Properties: map[string]*gemini.Schema{
			"title": {Type: "string"},
		},
		Required: []string{"title"},
	}

	t.Run("Plain JSON", func(t *testing.T) {
		ts := newMockServer(t, func(req gemini.GenerateRequest) (int, string) {
			if req.GenerationConfig == nil || req.GenerationConfig.ResponseMIMEType != "application/json" {
				return http.StatusBadRequest, ""
			}
			if req.GenerationConfig.ResponseSchema == nil {
				return http.StatusBadRequest, ""
			}
			return http.StatusOK, candidateBody(`{"title":"buy milk"}`)
		})
		defer ts.Close()

		client := gemini.NewClient("test-api-key")
		client.SetAPIURL(ts.URL)

		var out struct {
			Title string `json:"title"`
		}
		if err := client.GenerateObject(context.Background(), "prompt", schema, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Title != "buy milk" {
			t.Errorf("expected title %q, got %q", "buy milk", out.Title)
		}
	})

	t.Run("Fenced JSON", func(t *testing.T) {
		ts := newMockServer(t, func(req gemini.GenerateRequest) (int, string) {
			return http.StatusOK, candidateBody("```json\n{\"title\":\"fenced\"}\n```")
		})
		defer ts.Close()

		client := gemini.NewClient("test-api-key")
		client.SetAPIURL(ts.URL)

		var out struct {
			Title string `json:"title"`
		}
		if err := client.GenerateObject(context.Background(), "prompt", schema, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Title != "fenced" {
			t.Errorf("expected fenced title, got %q", out.Title)
		}
	})

	t.Run("JSON With Prose", func(t *testing.T) {
		ts := newMockServer(t, func(req gemini.GenerateRequest) (int, string) {
			return http.StatusOK, candidateBody(`Here is the result: {"title":"prose"} hope it helps`)
		})
		defer ts.Close()

		client := gemini.NewClient("test-api-key")
		client.SetAPIURL(ts.URL)

		var out struct {
			Title string `json:"title"`
		}
		if err := client.GenerateObject(context.Background(), "prompt", schema, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Title != "prose" {
			t.Errorf("expected prose title, got %q", out.Title)
		}
	})

	t.Run("Empty Candidates", func(t *testing.T) {
		ts := newMockServer(t, func(req gemini.GenerateRequest) (int, string) {
			return http.StatusOK, `{"candidates":[]}`
		})
		defer ts.Close()

		client := gemini.NewClient("test-api-key")
		client.SetAPIURL(ts.URL)

		var out struct{}
		err := client.GenerateObject(context.Background(), "prompt", schema, &out)
		if !errors.Is(err, gemini.ErrEmptyResponse) {
			t.Fatalf("expected ErrEmptyResponse, got %v", err)
		}
	})
}

func TestIsQuotaError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"status 429", errors.New("gemini API error 429: too many requests"), true},
		{"quota message", errors.New("quota exceeded for model"), true},
		{"rate limit message", errors.New("rate limit hit"), true},
		{"resource exhausted", errors.New("RESOURCE_EXHAUSTED"), true},
		{"other failure", errors.New("gemini API error 500: boom"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := gemini.IsQuotaError(tc.err); got != tc.want {
				t.Errorf("IsQuotaError(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
