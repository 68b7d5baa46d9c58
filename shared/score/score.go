// Package score holds the leaderboard payloads shared by the game client and
// the score server.
package score

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxUsernameLength is counted in runes.
const MaxUsernameLength = 32

// ErrInvalidScore is wrapped by every validation failure.
var ErrInvalidScore = errors.New("invalid score")

// Score is one leaderboard entry. Time is in milliseconds.
type Score struct {
	Username string    `json:"username"`
	Time     int64     `json:"time"`
	Date     time.Time `json:"date"`
}

func (s *Score) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// Duration is Time as a time.Duration.
func (s *Score) Duration() time.Duration {
	return time.Duration(s.Time) * time.Millisecond
}

// CreateRequest is the body of a score submission.
type CreateRequest struct {
	Username string `json:"username"`
	Time     int64  `json:"time"`
}

// NewCreateRequest builds a submission for a finished run.
func NewCreateRequest(username string, elapsed time.Duration) *CreateRequest {
	return &CreateRequest{Username: username, Time: elapsed.Milliseconds()}
}

// Bind normalizes and validates the request after decoding.
func (c *CreateRequest) Bind(r *http.Request) error {
	c.Username = strings.TrimSpace(c.Username)
	return c.Validate()
}

func (c *CreateRequest) Validate() error {
	switch {
	case strings.TrimSpace(c.Username) == "":
		return fmt.Errorf("%w: username is required", ErrInvalidScore)
	case utf8.RuneCountInString(c.Username) > MaxUsernameLength:
		return fmt.Errorf("%w: username longer than %d characters", ErrInvalidScore, MaxUsernameLength)
	case c.Time <= 0:
		return fmt.Errorf("%w: time must be positive", ErrInvalidScore)
	}
	return nil
}

// FormatTime renders a run time as MM:SS:mmm.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	return fmt.Sprintf("%02d:%02d:%03d", ms/60000, ms/1000%60, ms%1000)
}
