package keymutex

import (
	"encoding/binary"
	"sync"

	"github.com/twmb/murmur3"
)

// DefaultShards is the shard count used by New when given a non-positive value.
const DefaultShards = 1024

// KeyMutex provides mutual exclusion keyed by a (guild, user) pair.
// Keys are hashed onto a fixed set of mutex shards, so operations on the
// same key always serialize while operations on different keys only
// contend when they collide on a shard. There is no global lock.
type KeyMutex struct {
	shards []sync.Mutex
	mask   uint32
}

// New creates a KeyMutex with the given number of shards, rounded up to
// the next power of two. A larger shard count lowers the collision
// probability between unrelated keys at the cost of memory.
func New(shards int) *KeyMutex {
	if shards <= 0 {
		shards = DefaultShards
	}
	n := 1
	for n < shards {
		n <<= 1
	}
	return &KeyMutex{
		shards: make([]sync.Mutex, n),
		mask:   uint32(n - 1),
	}
}

// Lock acquires the shard owning the (guildID, userID) key, blocking
// until it is available.
func (k *KeyMutex) Lock(guildID, userID uint64) {
	k.shards[k.shard(guildID, userID)].Lock()
}

// Unlock releases the shard owning the (guildID, userID) key.
// It must be called with the same key that was passed to Lock.
func (k *KeyMutex) Unlock(guildID, userID uint64) {
	k.shards[k.shard(guildID, userID)].Unlock()
}

func (k *KeyMutex) shard(guildID, userID uint64) uint32 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], guildID)
	binary.LittleEndian.PutUint64(buf[8:], userID)
	return murmur3.Sum32(buf[:]) & k.mask
}
