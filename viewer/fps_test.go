package viewer

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFPSCounter(t *testing.T) {
	var titles []string
	c := NewFPSCounter("splitview", 0, func(s string) { titles = append(titles, s) })

	for i := 1; i <= 59; i++ {
		require.False(t, c.Tick(float64(i)/60))
	}
	require.Empty(t, titles)
	require.Zero(t, c.FPS())

	require.True(t, c.Tick(1.0))
	require.InDelta(t, 59.0, c.FPS(), 1e-9)
	require.Equal(t, []string{"splitview [59.00 fps]"}, titles)

	// The next window starts at the closing tick.
	require.False(t, c.Tick(1.5))
	require.True(t, c.Tick(3.0))
	require.InDelta(t, 0.5, c.FPS(), 1e-9)
	require.Len(t, titles, 2)
}

func TestTimer(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0), step: 250 * time.Millisecond}
	timer := NewTimer(clock.now)

	seconds, dt := timer.Tick()
	require.InDelta(t, 0.25, seconds, 1e-9)
	require.InDelta(t, 0.25, dt, 1e-9)

	seconds, dt = timer.Tick()
	require.InDelta(t, 0.5, seconds, 1e-9)
	require.InDelta(t, 0.25, dt, 1e-9)
	require.InDelta(t, 0.5, timer.Seconds(), 1e-9)
}

func TestAdminHandler(t *testing.T) {
	srv := httptest.NewServer(AdminHandler())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
}
