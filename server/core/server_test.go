package core

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/splitsecond/splitsecond/shared/score"
)

func newTestServer(t *testing.T, levels ...string) *httptest.Server {
	t.Helper()
	store, err := OpenStore(":memory:")
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	srv := httptest.NewServer(NewServer(store, levels).Handler())
	t.Cleanup(func() {
		srv.Close()
		store.Close()
	})
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, srv *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeScores(t *testing.T, resp *http.Response) []score.Score {
	t.Helper()
	var scores []score.Score
	if err := json.NewDecoder(resp.Body).Decode(&scores); err != nil {
		t.Fatalf("decode scores: %v", err)
	}
	return scores
}

func TestCreateAndListScores(t *testing.T) {
	srv := newTestServer(t)

	resp := post(t, srv, "/level/1/", `{"username":"  ada  ","time":15250}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	var created score.Score
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Username != "ada" || created.Time != 15250 || created.Date.IsZero() {
		t.Errorf("created = %+v", created)
	}

	post(t, srv, "/level/1/", `{"username":"bob","time":9000}`)
	post(t, srv, "/level/1/", `{"username":"cy","time":20000}`)
	post(t, srv, "/level/2/", `{"username":"dee","time":1000}`)

	resp = get(t, srv, "/level/1/scores?limit=2")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	scores := decodeScores(t, resp)
	if len(scores) != 2 || scores[0].Username != "bob" || scores[1].Username != "ada" {
		t.Errorf("scores = %+v, want bob then ada", scores)
	}
	if !scores[1].Date.Equal(created.Date) {
		t.Errorf("date = %v, want %v", scores[1].Date, created.Date)
	}
}

func TestListScoresEmptyLevel(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv, "/level/nothing/scores")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if scores := decodeScores(t, resp); len(scores) != 0 {
		t.Errorf("scores = %+v, want none", scores)
	}
}

func TestLongRunKeepsExactTime(t *testing.T) {
	srv := newTestServer(t)
	post(t, srv, "/level/1/", `{"username":"slow","time":12345678}`)

	scores := decodeScores(t, get(t, srv, "/level/1/scores"))
	if len(scores) != 1 || scores[0].Time != 12345678 {
		t.Fatalf("scores = %+v", scores)
	}
	if got := scores[0].Duration(); got != 12345678*time.Millisecond {
		t.Errorf("duration = %v", got)
	}
}

func TestDefaultLimit(t *testing.T) {
	srv := newTestServer(t)
	for i := 0; i < defaultLimit+5; i++ {
		post(t, srv, "/level/1/", `{"username":"x","time":1000}`)
	}
	if scores := decodeScores(t, get(t, srv, "/level/1/scores")); len(scores) != defaultLimit {
		t.Errorf("len = %d, want %d", len(scores), defaultLimit)
	}
}

func TestCreateScoreRejected(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{"empty username", "application/json", `{"username":"   ","time":100}`},
		{"long username", "application/json", `{"username":"` + strings.Repeat("n", score.MaxUsernameLength+1) + `","time":100}`},
		{"zero time", "application/json", `{"username":"ada","time":0}`},
		{"negative time", "application/json", `{"username":"ada","time":-5}`},
		{"bad json", "application/json", `{"username":`},
		{"unknown content type", "text/csv", `ada,100`},
		{"oversized body", "application/json", `{"username":"` + strings.Repeat("a", maxRequestBody) + `","time":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			resp, err := http.Post(srv.URL+"/level/1/", tt.contentType, strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("POST: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
			var e ErrResponse
			if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if e.ErrorText == "" {
				t.Error("error text is empty")
			}

			if scores := decodeScores(t, get(t, srv, "/level/1/scores")); len(scores) != 0 {
				t.Errorf("rejected score was stored: %+v", scores)
			}
		})
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"", defaultLimit, false},
		{"3", 3, false},
		{"100", 100, false},
		{"5000", maxLimit, false},
		{"0", 0, true},
		{"-2", 0, true},
		{"three", 0, true},
	}
	for _, tt := range tests {
		got, err := parseLimit(tt.raw)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseLimit(%q) = %d, %v", tt.raw, got, err)
		}
	}

	srv := newTestServer(t)
	if resp := get(t, srv, "/level/1/scores?limit=zero"); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad limit status = %d, want 400", resp.StatusCode)
	}
}

func TestKnownLevels(t *testing.T) {
	srv := newTestServer(t, "01_warmup", "02_gap")

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"list known", http.MethodGet, "/level/01_warmup/scores", http.StatusOK},
		{"create known", http.MethodPost, "/level/02_gap/", http.StatusCreated},
		{"list unknown", http.MethodGet, "/level/99_nope/scores", http.StatusNotFound},
		{"create unknown", http.MethodPost, "/level/99_nope/", http.StatusNotFound},
		{"overlong id", http.MethodGet, "/level/" + strings.Repeat("x", maxLevelIDLength+1) + "/scores", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp *http.Response
			if tt.method == http.MethodPost {
				resp = post(t, srv, tt.path, `{"username":"ada","time":100}`)
			} else {
				resp = get(t, srv, tt.path)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv, "/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow origin = %q", got)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body["status"] != "ok" {
		t.Errorf("body = %v, err %v", body, err)
	}
}
