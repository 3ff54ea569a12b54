package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/dealer_backoffice/internal/ports"
	"github.com/Gunvolt24/dealer_backoffice/pkg/metrics"
)

var _ ports.ScopedCache = (*ScopedCache)(nil)

type scopedEntry struct {
	key       string
	value     any
	expiresAt time.Time
}

// ScopedCache — эфемерный процесс-локальный кэш с абсолютным TTL на запись
// и ограничением по числу записей. При превышении лимита с хвоста
// вытесняется ~10% самых старых записей — оппортунистически, на записи.
// Порядок списка — порядок вставки (front = новые).
type ScopedCache struct {
	name       string
	maxEntries int

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// NewScopedCache — конструктор. name используется в метриках.
func NewScopedCache(name string, maxEntries int) *ScopedCache {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	return &ScopedCache{
		name:       name,
		maxEntries: maxEntries,
		ll:         list.New(),
		index:      make(map[string]*list.Element),
	}
}

// Get — значение по ключу; промах и истечение TTL неразличимы для вызывающего.
func (c *ScopedCache) Get(_ context.Context, key string) (any, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		metrics.CacheOps.WithLabelValues(c.name, "miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*scopedEntry)
	if now.After(ent.expiresAt) {
		c.removeElement(elem)
		metrics.CacheOps.WithLabelValues(c.name, "expired").Inc()
		metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.index)))
		return nil, false
	}

	metrics.CacheOps.WithLabelValues(c.name, "hit").Inc()
	return ent.value, true
}

// Set — сохранить значение с абсолютным сроком жизни от текущего момента.
func (c *ScopedCache) Set(_ context.Context, key string, value any, ttl time.Duration) {
	if key == "" || ttl <= 0 {
		return
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*scopedEntry)
		ent.value = value
		ent.expiresAt = now.Add(ttl)
		c.ll.MoveToFront(elem)
		return
	}

	elem := c.ll.PushFront(&scopedEntry{key: key, value: value, expiresAt: now.Add(ttl)})
	c.index[key] = elem

	if c.ll.Len() > c.maxEntries {
		c.evictOldest()
	}
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.index)))
}

// Delete — удалить значение по ключу.
func (c *ScopedCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		c.removeElement(elem)
		metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.index)))
	}
}

// Len — текущее число записей.
func (c *ScopedCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}

// Sweep — удалить все записи с истекшим TTL.
func (c *ScopedCache) Sweep() {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for elem := c.ll.Back(); elem != nil; {
		prev := elem.Prev()
		ent := elem.Value.(*scopedEntry)
		if now.After(ent.expiresAt) {
			c.removeElement(elem)
			metrics.CacheOps.WithLabelValues(c.name, "expired").Inc()
		}
		elem = prev
	}
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.index)))
}

// Run — периодическая чистка до отмены контекста.
func (c *ScopedCache) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Sweep()
		}
	}
}

// ------вспомогательные функции------

// evictOldest — вытеснить с хвоста ~10% записей (не меньше одной).
func (c *ScopedCache) evictOldest() {
	n := c.maxEntries / 10
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		back := c.ll.Back()
		if back == nil {
			return
		}
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues(c.name, "evicted").Inc()
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *ScopedCache) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*scopedEntry); ok {
		delete(c.index, ent.key)
	}
	c.ll.Remove(elem)
}
