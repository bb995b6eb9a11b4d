package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestGetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("default header not applied, Accept = %q", got)
		}
		w.Write([]byte(`{"name":"pocket"}`))
	}))
	defer server.Close()

	c := NewClient(map[string]string{"Accept": "application/json"})

	var out struct {
		Name string `json:"name"`
	}
	if err := c.GetJSON(context.Background(), server.URL, &out); err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if out.Name != "pocket" {
		t.Errorf("decoded name = %q, want pocket", out.Name)
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"not found", http.StatusNotFound, ErrNotFound},
		{"server error", http.StatusInternalServerError, ErrTransport},
		{"forbidden", http.StatusForbidden, ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			c := NewClient(nil)
			var v any
			err := c.GetJSON(context.Background(), server.URL, &v)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDownload(t *testing.T) {
	payload := []byte("binary archive contents")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/octet-stream" {
			t.Errorf("request header not applied, Accept = %q", got)
		}
		w.Write(payload)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "core.zip")
	c := NewClient(nil)
	err := c.Download(context.Background(), server.URL, map[string]string{"Accept": "application/octet-stream"}, dest)
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read downloaded file: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("downloaded content mismatch: %q", got)
	}
}

func TestDownloadRemovesPartialFileOnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "core.zip")
	c := NewClient(nil)
	if err := c.Download(context.Background(), server.URL, nil, dest); err == nil {
		t.Fatal("expected error for 502 response")
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Error("partial file should not exist after failed download")
	}
}
