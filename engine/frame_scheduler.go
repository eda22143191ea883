package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/orrery/core"
)

// inboxSize bounds pending mutations between two frames
const inboxSize = 256

// FrameScheduler is the "next frame" primitive
// One goroutine owns all simulation state: it runs the frame callback at a
// fixed interval and, between frames, runs closures posted by other
// goroutines (input polling) in arrival order
type FrameScheduler struct {
	interval time.Duration
	frame    func()

	inbox chan func()

	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewFrameScheduler creates a scheduler calling frame every interval
func NewFrameScheduler(interval time.Duration, frame func()) *FrameScheduler {
	return &FrameScheduler{
		interval: interval,
		frame:    frame,
		inbox:    make(chan func(), inboxSize),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins the frame loop, subsequent calls are no-ops
func (fs *FrameScheduler) Start() {
	if fs.running.CompareAndSwap(false, true) {
		fs.wg.Add(1)
		core.Go(fs.loop)
	}
}

// Post queues fn to run on the scheduler goroutine before the next frame
// Returns false once the scheduler is stopping
func (fs *FrameScheduler) Post(fn func()) bool {
	select {
	case <-fs.stopChan:
		return false
	default:
	}

	select {
	case fs.inbox <- fn:
		return true
	case <-fs.stopChan:
		return false
	}
}

// RequestStop asks the loop to exit without waiting
// Safe to call from a posted closure or the frame callback
func (fs *FrameScheduler) RequestStop() {
	fs.stopOnce.Do(func() {
		close(fs.stopChan)
	})
}

// Stop halts the loop and waits for it to exit
// Must not be called from the scheduler goroutine
func (fs *FrameScheduler) Stop() {
	fs.RequestStop()
	fs.wg.Wait()
}

// Done is closed when the loop has exited
func (fs *FrameScheduler) Done() <-chan struct{} {
	return fs.done
}

// Ticks returns the number of frames run
func (fs *FrameScheduler) Ticks() uint64 {
	return fs.tickCount.Load()
}

func (fs *FrameScheduler) loop() {
	defer fs.wg.Done()
	defer close(fs.done)

	ticker := time.NewTicker(fs.interval)
	defer ticker.Stop()

	for {
		// Stop wins over pending work
		select {
		case <-fs.stopChan:
			return
		default:
		}

		select {
		case <-fs.stopChan:
			return

		case fn := <-fs.inbox:
			fn()

		case <-ticker.C:
			fs.frame()
			fs.tickCount.Add(1)
		}
	}
}
