// Package network talks to the leaderboard server.
package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/splitsecond/splitsecond/shared/score"
)

type BoardState int

const (
	StateIdle BoardState = iota
	StateSubmitting
	StateFetching
	StateDone
	StateError
)

func (s BoardState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateFetching:
		return "fetching"
	case StateDone:
		return "done"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("BoardState(%d)", int(s))
}

// Client is a plain HTTP client for the score endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *Client) levelURL(levelID, rest string) string {
	return c.baseURL + "/level/" + url.PathEscape(levelID) + "/" + rest
}

// Submit posts a finished run for levelID.
func (c *Client) Submit(ctx context.Context, levelID string, req *score.CreateRequest) (*score.Score, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.levelURL(levelID, ""), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("submit score: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("score server returned status %d", resp.StatusCode)
	}

	var created score.Score
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decode score: %w", err)
	}
	return &created, nil
}

// Top fetches the fastest limit scores for levelID, sorted ascending by time.
func (c *Client) Top(ctx context.Context, levelID string, limit int) ([]score.Score, error) {
	u := c.levelURL(levelID, fmt.Sprintf("scores?limit=%d", limit))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetch scores: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("score server returned status %d", resp.StatusCode)
	}

	var scores []score.Score
	if err := json.NewDecoder(resp.Body).Decode(&scores); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Time < scores[j].Time })
	if len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

// Board runs one submit-then-fetch exchange in the background. Its state is
// read from the game loop with Result.
// All fields are protected by mu.
type Board struct {
	mu     sync.Mutex
	state  BoardState
	scores []score.Score
	err    error
}

// Post submits req (skipped when nil) and then fetches the top limit scores
// for levelID. A failed submit is logged and the fetch still runs.
func (c *Client) Post(levelID string, req *score.CreateRequest, limit int) *Board {
	b := &Board{state: StateSubmitting}
	if req == nil {
		b.state = StateFetching
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if req != nil {
			if _, err := c.Submit(ctx, levelID, req); err != nil {
				log.Printf("[leaderboard] submit for %s failed: %v", levelID, err)
			}
			b.setState(StateFetching)
		}

		scores, err := c.Top(ctx, levelID, limit)
		b.mu.Lock()
		defer b.mu.Unlock()
		if err != nil {
			log.Printf("[leaderboard] %v", err)
			b.state, b.err = StateError, err
			return
		}
		b.state, b.scores = StateDone, scores
	}()
	return b
}

func (b *Board) setState(s BoardState) {
	b.mu.Lock()
	b.state = s
	b.mu.Unlock()
}

// Result returns the current state, and the scores or error once finished.
func (b *Board) Result() (BoardState, []score.Score, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state, b.scores, b.err
}
