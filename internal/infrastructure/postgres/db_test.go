package postgres

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestConnector_DialsOnce(t *testing.T) {
	var dials atomic.Int32
	c := &Connector{
		databaseURL: "postgres://unused",
		dial: func(_ context.Context, _ string) (*pgxpool.Pool, error) {
			dials.Add(1)
			return nil, nil
		},
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Pool(context.Background()); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := dials.Load(); got != 1 {
		t.Fatalf("dial called %d times, want 1", got)
	}
}

func TestConnector_CachesError(t *testing.T) {
	dialErr := errors.New("connection refused")
	var dials atomic.Int32
	c := &Connector{
		databaseURL: "postgres://unused",
		dial: func(_ context.Context, _ string) (*pgxpool.Pool, error) {
			dials.Add(1)
			return nil, dialErr
		},
	}

	for i := 0; i < 3; i++ {
		if _, err := c.Pool(context.Background()); !errors.Is(err, dialErr) {
			t.Fatalf("want dial error, got %v", err)
		}
	}
	if got := dials.Load(); got != 1 {
		t.Fatalf("dial called %d times, want 1", got)
	}
}
