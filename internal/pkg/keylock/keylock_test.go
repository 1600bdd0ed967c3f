package keylock_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"orderbot/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
)

func TestLocker_SerializesSameKey(t *testing.T) {
	locks := keylock.New()

	var (
		inside  atomic.Int32
		maxSeen atomic.Int32
		wg      sync.WaitGroup
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("42")
			defer unlock()

			n := inside.Add(1)
			if n > maxSeen.Load() {
				maxSeen.Store(n)
			}
			time.Sleep(time.Millisecond)
			inside.Add(-1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen.Load())
	assert.Equal(t, 0, locks.Len())
}

func TestLocker_DifferentKeysRunInParallel(t *testing.T) {
	locks := keylock.New()
	unlockA := locks.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := locks.Lock("b")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on another key blocked")
	}
}

func TestLocker_UnlockIsIdempotent(t *testing.T) {
	var locks keylock.Locker

	unlock := locks.Lock("a")
	unlock()
	unlock()

	assert.Equal(t, 0, locks.Len())

	relock := locks.Lock("a")
	relock()
}
