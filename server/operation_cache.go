/**
 * Copyright (c) 2019, The Chirp Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package server

import (
	"errors"
	"sync"

	"github.com/botobag/artemis/graphql/executor"

	"github.com/willf/bitset"
)

// operationCache is a fixed-capacity LRU cache for prepared operations, keyed by query text and
// operation name. Entries live in a preallocated slab; a bitset tracks the free slots and an
// intrusive doubly-linked list (indexes into the slab, -1 terminated) maintains eviction order
// with the most recently used entry at the head.
type operationCache struct {
	mu sync.Mutex

	index   map[string]int
	entries []cacheEntry
	free    bitset.BitSet

	head int
	tail int
}

type cacheEntry struct {
	key       string
	operation *executor.PreparedOperation

	prev int
	next int
}

var errZeroCacheCapacity = errors.New("chirp/server: operation cache capacity must be positive")

func newOperationCache(capacity uint) (*operationCache, error) {
	if capacity == 0 {
		return nil, errZeroCacheCapacity
	}
	cache := &operationCache{
		index:   make(map[string]int, capacity),
		entries: make([]cacheEntry, capacity),
		head:    -1,
		tail:    -1,
	}
	for i := uint(0); i < capacity; i++ {
		cache.free.Set(i)
	}
	return cache, nil
}

// Get looks up the prepared operation for the given key, marking it most recently used.
func (cache *operationCache) Get(key string) (*executor.PreparedOperation, bool) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	slot, ok := cache.index[key]
	if !ok {
		return nil, false
	}
	cache.moveToFront(slot)
	return cache.entries[slot].operation, true
}

// Add stores the prepared operation for the given key, evicting the least recently used entry
// when the slab is full.
func (cache *operationCache) Add(key string, operation *executor.PreparedOperation) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if slot, ok := cache.index[key]; ok {
		cache.entries[slot].operation = operation
		cache.moveToFront(slot)
		return
	}

	var slot int
	if i, found := cache.free.NextSet(0); found {
		slot = int(i)
		cache.free.Clear(i)
	} else {
		// Reclaim the entry at the tail.
		slot = cache.tail
		delete(cache.index, cache.entries[slot].key)
		cache.unlink(slot)
	}

	entry := &cache.entries[slot]
	entry.key = key
	entry.operation = operation
	cache.index[key] = slot
	cache.pushFront(slot)
}

func (cache *operationCache) pushFront(slot int) {
	entry := &cache.entries[slot]
	entry.prev = -1
	entry.next = cache.head
	if cache.head != -1 {
		cache.entries[cache.head].prev = slot
	}
	cache.head = slot
	if cache.tail == -1 {
		cache.tail = slot
	}
}

func (cache *operationCache) unlink(slot int) {
	entry := &cache.entries[slot]
	if entry.prev != -1 {
		cache.entries[entry.prev].next = entry.next
	} else {
		cache.head = entry.next
	}
	if entry.next != -1 {
		cache.entries[entry.next].prev = entry.prev
	} else {
		cache.tail = entry.prev
	}
}

func (cache *operationCache) moveToFront(slot int) {
	if cache.head == slot {
		return
	}
	cache.unlink(slot)
	cache.pushFront(slot)
}
