package network

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/splitsecond/splitsecond/server/core"
	"github.com/splitsecond/splitsecond/shared/score"
)

func waitBoard(t *testing.T, b *Board) (BoardState, []score.Score, error) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		state, scores, err := b.Result()
		if state == StateDone || state == StateError {
			return state, scores, err
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("board did not finish")
	return StateIdle, nil, nil
}

func newScoreServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := core.OpenStore(":memory:")
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	srv := httptest.NewServer(core.NewServer(store, nil).Handler())
	t.Cleanup(func() {
		srv.Close()
		store.Close()
	})
	return srv
}

func TestSubmitAndTop(t *testing.T) {
	srv := newScoreServer(t)
	c := NewClient(srv.URL + "/")
	ctx := context.Background()

	for _, run := range []struct {
		name string
		ms   int64
	}{{"ada", 4200}, {"bob", 3100}, {"cy", 5000}, {"dee", 3900}} {
		created, err := c.Submit(ctx, "01_warmup", &score.CreateRequest{Username: run.name, Time: run.ms})
		if err != nil {
			t.Fatalf("Submit %s: %v", run.name, err)
		}
		if created.Username != run.name || created.Time != run.ms {
			t.Errorf("created = %+v", created)
		}
	}

	top, err := c.Top(ctx, "01_warmup", 3)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	want := []string{"bob", "dee", "ada"}
	if len(top) != len(want) {
		t.Fatalf("top = %+v", top)
	}
	for i, name := range want {
		if top[i].Username != name {
			t.Errorf("top[%d] = %s, want %s", i, top[i].Username, name)
		}
	}

	if other, err := c.Top(ctx, "02_gap", 3); err != nil || len(other) != 0 {
		t.Errorf("other level = %+v, %v", other, err)
	}
}

func TestSubmitValidatesLocally(t *testing.T) {
	var mu sync.Mutex
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Submit(context.Background(), "1", &score.CreateRequest{Username: "", Time: 10})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	mu.Lock()
	defer mu.Unlock()
	if hits != 0 {
		t.Errorf("server was hit %d times", hits)
	}
}

func TestTopSortsAndTrims(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/level/a b/scores" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "2" {
			t.Errorf("limit = %q", got)
		}
		_ = json.NewEncoder(w).Encode([]score.Score{
			{Username: "slow", Time: 900},
			{Username: "fast", Time: 100},
			{Username: "mid", Time: 500},
		})
	}))
	defer srv.Close()

	top, err := NewClient(srv.URL).Top(context.Background(), "a b", 2)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 2 || top[0].Username != "fast" || top[1].Username != "mid" {
		t.Errorf("top = %+v", top)
	}
}

func TestErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	c := NewClient(srv.URL)

	if _, err := c.Top(context.Background(), "1", 3); err == nil {
		t.Error("Top: expected an error")
	}
	if _, err := c.Submit(context.Background(), "1", &score.CreateRequest{Username: "ada", Time: 1}); err == nil {
		t.Error("Submit: expected an error")
	}
}

func TestBoardPost(t *testing.T) {
	srv := newScoreServer(t)
	c := NewClient(srv.URL)

	state, scores, err := waitBoard(t, c.Post("1", &score.CreateRequest{Username: "ada", Time: 1500}, 3))
	if state != StateDone || err != nil {
		t.Fatalf("state = %v, err %v", state, err)
	}
	if len(scores) != 1 || scores[0].Username != "ada" {
		t.Errorf("scores = %+v", scores)
	}

	// A rejected submit still fetches.
	state, scores, err = waitBoard(t, c.Post("1", &score.CreateRequest{Username: "bob", Time: 0}, 3))
	if state != StateDone || err != nil || len(scores) != 1 {
		t.Errorf("after rejected submit: %v %+v %v", state, scores, err)
	}

	// Fetch only.
	if state, _, _ := waitBoard(t, c.Post("1", nil, 3)); state != StateDone {
		t.Errorf("fetch only state = %v", state)
	}
}

func TestBoardUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	state, _, err := waitBoard(t, NewClient(url).Post("1", nil, 3))
	if state != StateError || err == nil {
		t.Errorf("state = %v, err %v", state, err)
	}
}
