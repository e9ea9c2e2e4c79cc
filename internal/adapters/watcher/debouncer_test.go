package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/serv/internal/adapters/watcher"
)

func TestDebouncer_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			mu.Lock()
			defer mu.Unlock()
			callCount++
			receivedPaths = paths
		})

		d.Add("/site/src/main.js")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		require.Equal(t, 1, callCount)
		assert.Equal(t, []string{"/site/src/main.js"}, receivedPaths)
	})
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			mu.Lock()
			defer mu.Unlock()
			callCount++
			receivedPaths = paths
		})

		d.Add("/site/a.js")
		d.Add("/site/b.js")
		d.Add("/site/a.js")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		require.Equal(t, 1, callCount)
		assert.ElementsMatch(t, []string{"/site/a.js", "/site/b.js"}, receivedPaths)
	})
}

func TestDebouncer_WindowRestartsOnAdd(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var callCount int

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			mu.Lock()
			defer mu.Unlock()
			callCount++
		})

		d.Add("/site/a.js")
		time.Sleep(60 * time.Millisecond)
		d.Add("/site/b.js")
		time.Sleep(60 * time.Millisecond)

		mu.Lock()
		assert.Equal(t, 0, callCount)
		mu.Unlock()

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 1, callCount)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	var mu sync.Mutex
	var receivedPaths []string

	d := watcher.NewDebouncer(time.Hour, func(paths []string) {
		mu.Lock()
		defer mu.Unlock()
		receivedPaths = paths
	})

	d.Add("/site/pending.js")
	d.Flush()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"/site/pending.js"}, receivedPaths)
}

func TestDebouncer_FlushWithoutPending(t *testing.T) {
	called := false
	d := watcher.NewDebouncer(time.Hour, func([]string) {
		called = true
	})

	d.Flush()

	assert.False(t, called)
}
