package stream

import (
	"sync"
	"time"
)

// Heartbeat calls beat every interval until Stop. It is started right before a
// slow upstream call and stopped as soon as that call returns.
type Heartbeat struct {
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// StartHeartbeat begins ticking. beat receives the 1-based tick count and the
// elapsed time since start rounded to whole intervals.
func StartHeartbeat(interval time.Duration, beat func(count int, elapsed time.Duration)) *Heartbeat {
	h := &Heartbeat{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	if interval <= 0 {
		close(h.done)
		return h
	}

	go func() {
		defer close(h.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		count := 0
		for {
			select {
			case <-h.stop:
				return
			case <-ticker.C:
				// Stop 과 tick 이 동시에 준비되면 stop 을 우선
				select {
				case <-h.stop:
					return
				default:
				}
				count++
				beat(count, time.Duration(count)*interval)
			}
		}
	}()
	return h
}

// Stop halts the heartbeat and waits until no beat is running. Safe to call more than once.
func (h *Heartbeat) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
	<-h.done
}
