// Package regexcache memoizes compiled regular expressions so that rule
// evaluation does not recompile the same pattern string on every call.
package regexcache

import (
	"regexp"
	"sync"
)

// Cache is a bounded LRU cache from pattern string to compiled regex.
// Compile errors are returned to the caller and never cached.
type Cache struct {
	mu      sync.Mutex
	items   map[string]*listItem
	lru     *list // most recently used at front
	maxSize int
}

// listItem is an item in the doubly-linked list.
type listItem struct {
	pattern string
	re      *regexp.Regexp
	prev    *listItem
	next    *listItem
}

// list is a doubly-linked list ordered by recency of use.
type list struct {
	head *listItem
	tail *listItem
	len  int
}

func (l *list) moveToFront(item *listItem) {
	if item == l.head {
		return
	}

	if item.prev != nil {
		item.prev.next = item.next
	}
	if item.next != nil {
		item.next.prev = item.prev
	}
	if item == l.tail {
		l.tail = item.prev
	}

	item.prev = nil
	item.next = l.head
	if l.head != nil {
		l.head.prev = item
	}
	l.head = item

	if l.tail == nil {
		l.tail = item
	}
}

func (l *list) pushFront(item *listItem) {
	item.next = l.head
	item.prev = nil
	if l.head != nil {
		l.head.prev = item
	}
	l.head = item
	if l.tail == nil {
		l.tail = item
	}
	l.len++
}

func (l *list) removeBack() *listItem {
	if l.tail == nil {
		return nil
	}

	item := l.tail
	l.tail = item.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	l.len--
	return item
}

// Options configures the cache.
type Options struct {
	// MaxSize is the maximum number of compiled patterns to retain.
	// 0 means unlimited.
	MaxSize int
}

// New creates a new regex cache.
func New(opts Options) *Cache {
	return &Cache{
		items:   make(map[string]*listItem),
		lru:     &list{},
		maxSize: opts.MaxSize,
	}
}

// Get returns the compiled regex for pattern if it is cached.
func (c *Cache) Get(pattern string) (*regexp.Regexp, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, found := c.items[pattern]
	if !found {
		return nil, false
	}
	c.lru.moveToFront(item)
	return item.re, true
}

// GetOrCompile returns the compiled regex for pattern, compiling and
// caching it on first use.
func (c *Cache) GetOrCompile(pattern string) (*regexp.Regexp, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item, found := c.items[pattern]; found {
		c.lru.moveToFront(item)
		return item.re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	item := &listItem{pattern: pattern, re: re}
	c.items[pattern] = item
	c.lru.pushFront(item)

	if c.maxSize > 0 && c.lru.len > c.maxSize {
		if evicted := c.lru.removeBack(); evicted != nil {
			delete(c.items, evicted.pattern)
		}
	}

	return re, nil
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.len
}

// Clear removes all cached patterns.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*listItem)
	c.lru = &list{}
}
