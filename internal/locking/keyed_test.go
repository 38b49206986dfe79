package locking

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockSerializesSameKey(t *testing.T) {
	k := New()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k.Lock("session-a")
			counter++
			k.Unlock("session-a")
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestDifferentKeysDoNotBlockEachOther(t *testing.T) {
	k := New()

	k.Lock("session-a")

	done := make(chan struct{})
	go func() {
		k.Lock("session-b")
		k.Unlock("session-b")
		close(done)
	}()

	// Must complete while session-a is still held
	<-done
	k.Unlock("session-a")
}

func TestEntriesAreReleased(t *testing.T) {
	k := New()

	k.Lock("session-a")
	k.Unlock("session-a")

	k.mu.Lock()
	defer k.mu.Unlock()
	assert.Empty(t, k.entries)
}

func TestUnlockOfUnheldKeyPanics(t *testing.T) {
	k := New()
	assert.Panics(t, func() { k.Unlock("nope") })
}
