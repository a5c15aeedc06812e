package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestS3ResultStoreSave(t *testing.T) {
	var gotPath, gotType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		body, _ := io.ReadAll(r.Body)
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("AWS_ENDPOINT", srv.URL)
	t.Setenv("AWS_ACCESS_KEY", "test")
	t.Setenv("AWS_SECRET_KEY", "test")

	client, err := NewS3Client(context.Background())
	if err != nil {
		t.Fatalf("NewS3Client() error = %v", err)
	}

	key, err := NewS3ResultStore(client, "results").Save(context.Background(), "doc-1", []byte(`{"id":"g"}`))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if key != "graphs/doc-1.json" {
		t.Fatalf("Save() key = %q", key)
	}
	if gotPath != "/results/graphs/doc-1.json" {
		t.Fatalf("server saw path %q", gotPath)
	}
	if gotType != "application/json" {
		t.Fatalf("server saw content type %q", gotType)
	}
	if !strings.Contains(gotBody, `{"id":"g"}`) {
		t.Fatalf("server saw body %q", gotBody)
	}
}
