package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHFSummarizer_Success(t *testing.T) {
	var gotAuth string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"summary_text":"  a short summary  "}]`))
	}))
	defer srv.Close()

	s := NewHFSummarizer(srv.URL, "test-key", 5*time.Second)
	summary, err := s.Summarize(context.Background(), "long project details")
	require.NoError(t, err)
	require.Equal(t, "a short summary", summary)
	require.Equal(t, "Bearer test-key", gotAuth)
	require.Equal(t, "long project details", gotBody["inputs"])
}

func TestHFSummarizer_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := NewHFSummarizer(srv.URL, "", 5*time.Second)
	_, err := s.Summarize(context.Background(), "text")
	require.Error(t, err)
	require.Contains(t, err.Error(), "503")
}

func TestHFSummarizer_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	s := NewHFSummarizer(srv.URL, "", 5*time.Second)
	_, err := s.Summarize(context.Background(), "text")
	require.Error(t, err)
}
