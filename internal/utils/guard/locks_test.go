package guard

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockSingleAccount(t *testing.T) {
	locks := NewAccountLocks()

	unlock := locks.Lock("acc-1")
	unlock()

	// Relocking after release must not block.
	unlock = locks.Lock("acc-1")
	unlock()
}

func TestLockDeduplicatesIDs(t *testing.T) {
	locks := NewAccountLocks()

	// The same id passed twice must be acquired once, otherwise this
	// deadlocks on the second acquisition.
	unlock := locks.Lock("acc-1", "acc-1")
	unlock()
}

func TestLockOppositeOrderPairsDoNotDeadlock(t *testing.T) {
	locks := NewAccountLocks()

	const rounds = 200
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			unlock := locks.Lock("acc-a", "acc-b")
			unlock()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			unlock := locks.Lock("acc-b", "acc-a")
			unlock()
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("opposite-order lock pairs deadlocked")
	}
}

func TestLockSerializesConflictingWriters(t *testing.T) {
	locks := NewAccountLocks()

	const writers = 50
	counter := 0
	var wg sync.WaitGroup
	wg.Add(writers)

	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			unlock := locks.Lock("acc-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, writers, counter)
}
