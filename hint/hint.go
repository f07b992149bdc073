// Package hint calls an optional remote advisory service that comments on
// the player's current tray word. The verdict is encouragement only: it
// never gates the equality-based win check, and every failure is downgraded
// to a fixed fallback so the game keeps running without the service.
package hint

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Verdict is the advisory service's structured answer.
type Verdict struct {
	Valid      bool   `json:"valid"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
	Suggestion string `json:"suggestion"`
}

// Fallback is the verdict substituted for any transport error, bad status or
// malformed body.
func Fallback() Verdict {
	return Verdict{
		Valid:      false,
		Suggestion: "Keep going! Try sounding the word out one letter at a time.",
	}
}

type request struct {
	TrayWord    string `json:"tray_word"`
	PoolLetters string `json:"pool_letters"`
	// Snapshot is an optional base64 PNG of the play area.
	Snapshot string `json:"snapshot,omitempty"`
}

// Client talks to the advisory service. The zero value is not usable; use
// New.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Check asks the service about the current tray word. It must not be called
// from the per-frame pipeline; callers run it on their own goroutine. The
// returned error reports what went wrong for logging, but the verdict is
// always usable: on any failure it is the fallback.
func (c *Client) Check(ctx context.Context, snapshot []byte, trayWord string, poolLetters string) (Verdict, error) {
	body, err := json.Marshal(request{
		TrayWord:    trayWord,
		PoolLetters: poolLetters,
		Snapshot:    base64.StdEncoding.EncodeToString(snapshot),
	})
	if err != nil {
		return Fallback(), fmt.Errorf("hint: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/check", bytes.NewReader(body))
	if err != nil {
		return Fallback(), fmt.Errorf("hint: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Fallback(), fmt.Errorf("hint: call service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Fallback(), fmt.Errorf("hint: service returned %s", resp.Status)
	}

	var v Verdict
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return Fallback(), fmt.Errorf("hint: decode response: %w", err)
	}
	return v, nil
}
