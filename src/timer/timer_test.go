package timer

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestIntervalWaits(t *testing.T) {
	p := NewInterval(20 * time.Millisecond)
	for range 3 {
		start := time.Now()
		if err := p.Wait(context.Background()); err != nil {
			t.Fatal(err)
		}
		if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
			t.Errorf("Wait returned after %v", elapsed)
		}
	}
}

func TestIntervalCancelled(t *testing.T) {
	p := NewInterval(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := p.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
}

func TestNone(t *testing.T) {
	if err := None().Wait(context.Background()); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := None().Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected canceled, got %v", err)
	}
}
