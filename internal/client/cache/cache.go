// Package cache implements the response cache for idempotent read endpoints:
// bounded per-partition LRU with lazy TTL expiry. Кэш — строго оптимизация:
// любой сбой здесь эквивалентен промаху, не ошибке.
package cache

import (
	"container/list"
	"sync"
	"time"
)

const (
	// DefaultTTL — срок жизни закэшированного ответа
	DefaultTTL = 12 * time.Hour
	// PartitionCapacity — максимум записей в одной партиции
	PartitionCapacity = 50
	// GlobalCapacity — потолок для непартиционированного кэша
	GlobalCapacity = 100
)

// entry хранит закэшированный ответ вместе с моментом записи
type entry struct {
	storedAt time.Time
	key      string
	value    []byte
}

// partition — один bounded LRU: map для O(1) доступа, list для порядка
// использования (front = most recently used)
type partition struct {
	elements map[string]*list.Element
	order    *list.List
	capacity int
}

func newPartition(capacity int) *partition {
	return &partition{
		elements: make(map[string]*list.Element),
		order:    list.New(),
		capacity: capacity,
	}
}

// ResponseCache is a partitioned LRU cache of raw response payloads keyed by
// request signature.
type ResponseCache struct {
	now        func() time.Time
	partitions map[string]*partition
	mu         sync.Mutex
	ttl        time.Duration
}

// Option настраивает ResponseCache
type Option func(*ResponseCache)

// WithTTL overrides the default entry TTL
func WithTTL(ttl time.Duration) Option {
	return func(c *ResponseCache) { c.ttl = ttl }
}

// WithClock injects a clock, используется в тестах
func WithClock(now func() time.Time) Option {
	return func(c *ResponseCache) { c.now = now }
}

// New creates an empty response cache
func New(opts ...Option) *ResponseCache {
	c := &ResponseCache{
		partitions: make(map[string]*partition),
		ttl:        DefaultTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached payload for the signature, or false on miss.
// Просроченная запись удаляется на месте (lazy expiry) и считается промахом.
// Успешное чтение обновляет recency записи.
func (c *ResponseCache) Get(part, signature string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.partitions[part]
	if !ok {
		return nil, false
	}

	elem, ok := p.elements[signature]
	if !ok {
		return nil, false
	}

	ent := elem.Value.(*entry)
	if c.now().Sub(ent.storedAt) > c.ttl {
		// Запись логически отсутствует — физически удаляем
		p.order.Remove(elem)
		delete(p.elements, signature)
		return nil, false
	}

	p.order.MoveToFront(elem)
	return ent.value, true
}

// Set stores a payload under the signature, evicting the least recently used
// entry of the partition when at capacity.
func (c *ResponseCache) Set(part, signature string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.partitions[part]
	if !ok {
		capacity := PartitionCapacity
		if part == PartitionDefault {
			capacity = GlobalCapacity
		}
		p = newPartition(capacity)
		c.partitions[part] = p
	}

	if elem, ok := p.elements[signature]; ok {
		// Обновление существующей записи тоже считается использованием
		ent := elem.Value.(*entry)
		ent.value = value
		ent.storedAt = c.now()
		p.order.MoveToFront(elem)
		return
	}

	if p.order.Len() >= p.capacity {
		// Вытесняем least recently used
		back := p.order.Back()
		if back != nil {
			p.order.Remove(back)
			delete(p.elements, back.Value.(*entry).key)
		}
	}

	elem := p.order.PushFront(&entry{
		key:      signature,
		value:    value,
		storedAt: c.now(),
	})
	p.elements[signature] = elem
}

// Delete removes a single entry
func (c *ResponseCache) Delete(part, signature string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.partitions[part]
	if !ok {
		return
	}

	if elem, ok := p.elements[signature]; ok {
		p.order.Remove(elem)
		delete(p.elements, signature)
	}
}

// Clear drops all entries in all partitions
func (c *ResponseCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.partitions = make(map[string]*partition)
}

// Len returns the total number of entries across partitions, включая
// просроченные, но еще не вытесненные лениво
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, p := range c.partitions {
		total += p.order.Len()
	}
	return total
}
