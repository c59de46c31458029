package bloom

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadedFilterLifecycle(t *testing.T) {
	l := NewLoadedFilter(nil)
	require.False(t, l.IsLoaded())
	require.Nil(t, l.Current())

	f, err := NewFilter(10, 0, 0.01, UpdateNone)
	require.NoError(t, err)

	l.Reload(f)
	require.True(t, l.IsLoaded())
	require.Same(t, f, l.Current())

	l.Unload()
	require.False(t, l.IsLoaded())
	require.Nil(t, l.Current())
}

func TestLoadedFilterConcurrentAccess(t *testing.T) {
	f, err := NewFilter(10, 0, 0.01, UpdateNone)
	require.NoError(t, err)
	l := NewLoadedFilter(f)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = l.Current()
		}()
		go func() {
			defer wg.Done()
			l.Reload(f.Clone())
		}()
	}
	wg.Wait()

	require.True(t, l.IsLoaded())
}
