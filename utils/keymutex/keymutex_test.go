package keymutex

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_RoundsToPowerOfTwo(t *testing.T) {
	assert.Len(t, New(1).shards, 1)
	assert.Len(t, New(3).shards, 4)
	assert.Len(t, New(1000).shards, 1024)
	assert.Len(t, New(0).shards, DefaultShards)
	assert.Len(t, New(-5).shards, DefaultShards)
}

func TestKeyMutex_SerializesSameKey(t *testing.T) {
	km := New(16)

	const goroutines = 50
	const increments = 100

	// Unsynchronized counter; the keyed mutex is the only protection.
	counter := 0

	var wg sync.WaitGroup
	for range goroutines {
		wg.Go(func() {
			for range increments {
				km.Lock(7, 42)
				counter++
				km.Unlock(7, 42)
			}
		})
	}
	wg.Wait()

	assert.Equal(t, goroutines*increments, counter)
}

func TestKeyMutex_IndependentKeysDoNotBlock(t *testing.T) {
	// Keys that hash onto different shards must not block each other.
	km := New(1024)

	var other uint64 = 2
	for km.shard(1, 1) == km.shard(other, other) {
		other++
	}

	km.Lock(1, 1)
	done := make(chan struct{})
	go func() {
		km.Lock(other, other)
		km.Unlock(other, other)
		close(done)
	}()
	<-done
	km.Unlock(1, 1)
}
