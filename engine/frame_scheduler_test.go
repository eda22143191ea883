package engine

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestFrameSchedulerRunsFrames(t *testing.T) {
	var frames atomic.Int32
	fs := NewFrameScheduler(time.Millisecond, func() {
		frames.Add(1)
	})
	fs.Start()

	deadline := time.After(2 * time.Second)
	for frames.Load() < 5 {
		select {
		case <-deadline:
			fs.Stop()
			t.Fatalf("only %d frames ran", frames.Load())
		default:
			time.Sleep(time.Millisecond)
		}
	}

	fs.Stop()

	if fs.Ticks() < 5 {
		t.Errorf("Ticks = %d, want >= 5", fs.Ticks())
	}

	select {
	case <-fs.Done():
	default:
		t.Error("Done not closed after Stop")
	}
}

func TestFrameSchedulerPostOrderAndOwnership(t *testing.T) {
	// Frame and posted closures share state without locks
	var seen []int
	frameCount := 0

	fs := NewFrameScheduler(time.Hour, func() {
		frameCount++
	})
	fs.Start()

	var wg sync.WaitGroup
	wg.Add(1)
	for i := 0; i < 10; i++ {
		n := i
		if !fs.Post(func() { seen = append(seen, n) }) {
			t.Fatalf("Post %d rejected", i)
		}
	}
	fs.Post(wg.Done)
	wg.Wait()

	fs.Stop()

	if len(seen) != 10 {
		t.Fatalf("ran %d closures, want 10", len(seen))
	}
	for i, n := range seen {
		if n != i {
			t.Errorf("closure %d ran at position %d", n, i)
		}
	}
	if frameCount != 0 {
		t.Errorf("frames ran = %d with 1h interval", frameCount)
	}
}

func TestFrameSchedulerStopIdempotent(t *testing.T) {
	fs := NewFrameScheduler(time.Millisecond, func() {})
	fs.Start()
	fs.Start()

	fs.Stop()
	fs.Stop()
	fs.RequestStop()

	if fs.Post(func() {}) {
		t.Error("Post accepted after Stop")
	}
}

func TestFrameSchedulerRequestStopFromLoop(t *testing.T) {
	var fs *FrameScheduler
	fs = NewFrameScheduler(time.Hour, func() {})
	fs.Start()

	fs.Post(fs.RequestStop)

	select {
	case <-fs.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not exit after RequestStop from posted closure")
	}
}
