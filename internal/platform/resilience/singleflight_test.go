package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_SharesConcurrentResult(t *testing.T) {
	var g SingleFlight
	var calls atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		val, _, _ := g.Do("key", func() (any, error) {
			calls.Add(1)
			close(entered)
			<-release
			return 42, nil
		})
		if val != 42 {
			t.Errorf("unexpected value %v", val)
		}
	}()

	<-entered

	sharedCount := atomic.Int32{}
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			val, _, shared := g.Do("key", func() (any, error) {
				calls.Add(1)
				return 42, nil
			})
			if shared {
				sharedCount.Add(1)
			}
			if val != 42 {
				t.Errorf("unexpected value %v", val)
			}
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected one underlying call, got %d", got)
	}
	if got := sharedCount.Load(); got != 3 {
		t.Fatalf("expected 3 shared results, got %d", got)
	}
}

func TestSingleFlight_SequentialCallsRunIndependently(t *testing.T) {
	var g SingleFlight
	var calls int

	for i := 0; i < 2; i++ {
		if _, err, shared := g.Do("key", func() (any, error) {
			calls++
			return nil, nil
		}); err != nil || shared {
			t.Fatalf("unexpected result: err=%v shared=%t", err, shared)
		}
	}

	if calls != 2 {
		t.Fatalf("expected both sequential calls to run, got %d", calls)
	}
}
