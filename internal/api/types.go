package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dreamware/strandsearch/internal/bench"
)

// ErrStatus is returned by the client helpers for non-2xx responses
var ErrStatus = errors.New("unexpected http status")

type SearchRequest struct {
	Pattern string `json:"pattern"`
	Threads int    `json:"threads"`
	// MaxOffsets caps the offsets returned; 0 returns all of them
	MaxOffsets int `json:"max_offsets,omitempty"`
}

type SearchResponse struct {
	Threads       int   `json:"threads"`
	ElapsedMillis int64 `json:"elapsed_ms"`
	Matches       int   `json:"matches"`
	Offsets       []int `json:"offsets"`
	Truncated     bool  `json:"truncated,omitempty"`
}

type BenchmarkRequest struct {
	Pattern    string `json:"pattern"`
	Start      int    `json:"start"`
	Max        int    `json:"max"`
	Iterations int    `json:"iterations"`
}

type BenchmarkResponse struct {
	Timings []bench.Timing `json:"timings"`
}

type RunSummary struct {
	At            time.Time `json:"at"`
	Pattern       string    `json:"pattern"`
	Threads       int       `json:"threads"`
	ElapsedMillis int64     `json:"elapsed_ms"`
	Matches       int       `json:"matches"`
}

type RunsResponse struct {
	TextBytes int          `json:"text_bytes"`
	Runs      []RunSummary `json:"runs"`
}

var httpClient = &http.Client{Timeout: 5 * time.Minute}

func PostJSON(ctx context.Context, url string, body any, out any) error {
	reqBody, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s: %d", ErrStatus, url, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func GetJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s: %d", ErrStatus, url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
