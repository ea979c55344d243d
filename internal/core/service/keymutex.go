package service

import (
	"hash/fnv"
	"sync"
)

const defaultLockShards = 8

// keyMutex serializes operations per key using a fixed set of sharded
// mutexes, consistent-hashed on the key. Two operations on the same account
// always contend on the same shard, making read-merge-write sequences
// atomic per account.
type keyMutex struct {
	shards []sync.Mutex
}

// newKeyMutex creates a keyMutex with n shards. If n <= 0, defaultLockShards
// is used.
func newKeyMutex(n int) *keyMutex {
	if n <= 0 {
		n = defaultLockShards
	}
	return &keyMutex{shards: make([]sync.Mutex, n)}
}

// Lock acquires the shard owning key and returns its unlock function.
func (m *keyMutex) Lock(key string) func() {
	i := m.shardIndex(key)
	m.shards[i].Lock()
	return m.shards[i].Unlock
}

// shardIndex maps a key deterministically to a shard index.
func (m *keyMutex) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(m.shards)))
}
