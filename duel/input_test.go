package duel

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDashDetector(t *testing.T) {
	d := NewDashDetector(0)
	require.Equal(t, DefaultDashWindow, d.Window)

	tests := []struct {
		frame       int
		left, right bool
		want        int
	}{
		{frame: 0, left: true, want: 0},
		{frame: 10, left: true, want: -1},
		{frame: 12, left: true, want: 0},
		{frame: 40, left: true, want: 0},
		{frame: 50, right: true, want: 0},
		{frame: 65, right: true, want: 1},
		{frame: 70, right: true, want: 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, d.Observe(tt.frame, tt.left, tt.right), "frame %d", tt.frame)
	}

	var nilDetector *DashDetector
	require.Zero(t, nilDetector.Observe(1, true, true))
}

func TestPouch(t *testing.T) {
	p := NewPouch(1, 4)

	require.True(t, p.TryConsumeHeal())
	require.False(t, p.TryConsumeHeal())

	require.False(t, p.TryConsumeTools(5))
	require.False(t, p.TryConsumeTools(0))
	require.True(t, p.TryConsumeTools(3))
	require.False(t, p.TryConsumeTools(3))
	require.True(t, p.TryConsumeTools(1))

	gourds, emblems := p.Counts()
	require.Zero(t, gourds)
	require.Zero(t, emblems)

	neg := NewPouch(-2, -1)
	gourds, emblems = neg.Counts()
	require.Zero(t, gourds)
	require.Zero(t, emblems)
}

func TestPouchConcurrentUse(t *testing.T) {
	p := NewPouch(50, 0)
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		got int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if p.TryConsumeHeal() {
				mu.Lock()
				got++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 50, got)
}

func TestNewRandIsSeeded(t *testing.T) {
	a, b := NewRand(0), NewRand(1)
	for i := 0; i < 5; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}
}
