package service

import (
	"sync"
	"testing"
)

func TestKeyMutex_SameKeySameShard(t *testing.T) {
	m := newKeyMutex(8)
	if m.shardIndex("acc-1") != m.shardIndex("acc-1") {
		t.Fatalf("shard index not deterministic")
	}
}

func TestKeyMutex_SerializesCriticalSection(t *testing.T) {
	m := newKeyMutex(4)

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := m.Lock("acc-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Fatalf("critical section raced: counter = %d", counter)
	}
}

func TestKeyMutex_DefaultShards(t *testing.T) {
	m := newKeyMutex(0)
	if len(m.shards) != defaultLockShards {
		t.Fatalf("expected %d shards, got %d", defaultLockShards, len(m.shards))
	}
}
