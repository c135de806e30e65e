package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := newKeyedMutex()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("ch-1")
			counter++
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestKeyedMutex_DifferentKeysDoNotBlock(t *testing.T) {
	km := newKeyedMutex()

	unlockA := km.Lock("ch-a")

	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("ch-b")
		unlockB()
		close(done)
	}()

	<-done
	unlockA()
}

func TestKeyedMutex_EntriesReleasedWhenIdle(t *testing.T) {
	km := newKeyedMutex()

	unlock := km.Lock("ch-1")
	km.mu.Lock()
	assert.Len(t, km.locks, 1)
	km.mu.Unlock()

	unlock()

	km.mu.Lock()
	assert.Empty(t, km.locks)
	km.mu.Unlock()
}
