package db

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryRedisClient is an in-process RedisClient with TTL expiry.
type MemoryRedisClient struct {
	data    map[string]memoryEntry
	mu      sync.RWMutex
	clock   clock.Clock
	context context.Context
}

// NewMemoryRedisClient initializes a new MemoryRedisClient. A nil clock uses wall time.
func NewMemoryRedisClient(ctx context.Context, clk clock.Clock) *MemoryRedisClient {
	if clk == nil {
		clk = clock.NewClock()
	}
	return &MemoryRedisClient{
		data:    make(map[string]memoryEntry),
		clock:   clk,
		context: ctx,
	}
}

func (m *MemoryRedisClient) Set(key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictExpired()
	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expiresAt = m.clock.Now().Add(ttl)
	}
	m.data[key] = e
	return nil
}

func (m *MemoryRedisClient) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if m.expired(e) {
		delete(m.data, key)
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return e.value, nil
}

func (m *MemoryRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Keys returns live keys matching a Redis glob pattern, sorted. Unlike
// path.Match, '*' also matches '/'.
func (m *MemoryRedisClient) Keys(pattern string) ([]string, error) {
	re, err := globToRegexp(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictExpired()
	keys := []string{}
	for k := range m.data {
		if re.MatchString(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryRedisClient) Ping() error {
	return nil
}

func (m *MemoryRedisClient) GetContext() context.Context {
	return m.context
}

// evictExpired must be called with mu held for writing.
func (m *MemoryRedisClient) evictExpired() {
	for k, e := range m.data {
		if m.expired(e) {
			delete(m.data, k)
		}
	}
}

func (m *MemoryRedisClient) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && !m.clock.Now().Before(e.expiresAt)
}

// globToRegexp translates the MATCH syntax of SCAN/KEYS: '*', '?', '[...]'
// with '^' negation, and '\' escapes.
func globToRegexp(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			b.WriteString("(?s:.*)")
		case '?':
			b.WriteString("(?s:.)")
		case '\\':
			if i+1 < len(pattern) {
				i++
			}
			b.WriteString(regexp.QuoteMeta(pattern[i : i+1]))
		case '[':
			end := strings.IndexByte(pattern[i+1:], ']')
			if end < 0 {
				return nil, fmt.Errorf("unterminated character class")
			}
			class := pattern[i+1 : i+1+end]
			b.WriteString("[")
			if strings.HasPrefix(class, "^") {
				b.WriteString("^")
				class = class[1:]
			}
			b.WriteString(strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`).Replace(class))
			b.WriteString("]")
			i += end + 1
		default:
			b.WriteString(regexp.QuoteMeta(pattern[i : i+1]))
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}
