package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Summarizer condenses a text blob into a short summary. Failure handling
// is the caller's decision; implementations just report the error.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// HFSummarizer calls a HuggingFace-style inference endpoint
// (request {"inputs": text}, response [{"summary_text": ...}]).
type HFSummarizer struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHFSummarizer(baseURL, apiKey string, timeout time.Duration) *HFSummarizer {
	return &HFSummarizer{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *HFSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	payload, _ := json.Marshal(map[string]string{"inputs": text})

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("summarize call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		data, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("summarize status %d: %s", resp.StatusCode, data)
	}

	var result []struct {
		SummaryText string `json:"summary_text"`
	}
	data, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(result) == 0 || result[0].SummaryText == "" {
		return "", fmt.Errorf("empty summary")
	}
	return strings.TrimSpace(result[0].SummaryText), nil
}
