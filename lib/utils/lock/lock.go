package lock

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	sem  chan struct{}
	refs int
}

var (
	mu      sync.Mutex
	entries = map[string]*entry{}
)

func acquireEntry(key string) *entry {
	mu.Lock()
	defer mu.Unlock()
	e, ok := entries[key]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		entries[key] = e
	}
	e.refs++
	return e
}

func releaseEntry(key string, e *entry) {
	mu.Lock()
	defer mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(entries, key)
	}
}

// WithDelay выполняет safeCode под блокировкой по ключу, ожидая ее не дольше wait.
// success false, если блокировку получить не удалось; ошибка контекста возвращается как есть.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	e := acquireEntry(key)
	defer releaseEntry(key, e)

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case e.sem <- struct{}{}:
	case <-timer.C:
		return false, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
	defer func() { <-e.sem }()
	return true, safeCode()
}

// held число ключей, по которым есть владелец или ожидающие
func held() int {
	mu.Lock()
	defer mu.Unlock()
	return len(entries)
}
