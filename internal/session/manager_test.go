package session

import (
	"sync"
	"testing"
	"time"
	"wadboard/internal/structures"
	"wadboard/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testConfig() *structures.Config {
	return &structures.Config{Auth: structures.AuthConfig{
		Password:   "wadboard",
		SessionTTL: time.Hour,
		CookieName: "wadboard_session",
	}}
}

func newTestManager() (*Manager, *fakeClock, *testutil.MockMetrics) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	metrics := &testutil.MockMetrics{}
	m := NewManager(testConfig(), metrics)
	m.now = clock.Now
	return m, clock, metrics
}

func TestManager_CreateReturnsHexToken(t *testing.T) {
	m, _, metrics := newTestManager()

	token, err := m.Create()
	require.NoError(t, err)
	assert.Len(t, token, 64)
	assert.Regexp(t, `^[0-9a-f]{64}$`, token)

	other, err := m.Create()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
	assert.Equal(t, 2, m.Count())
	assert.Equal(t, 2, metrics.ActiveSessions())
}

func TestManager_ValidateExpiryBoundary(t *testing.T) {
	m, clock, _ := newTestManager()
	token, err := m.Create()
	require.NoError(t, err)

	clock.Advance(time.Hour - time.Nanosecond)
	sess, ok := m.Validate(token)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), sess.CreatedAt)

	clock.Advance(time.Nanosecond)
	_, ok = m.Validate(token)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Count())
}

func TestManager_ValidateDoesNotRenew(t *testing.T) {
	m, clock, _ := newTestManager()
	token, _ := m.Create()

	for i := 0; i < 5; i++ {
		clock.Advance(10 * time.Minute)
		_, ok := m.Validate(token)
		require.True(t, ok)
	}
	clock.Advance(10 * time.Minute)
	_, ok := m.Validate(token)
	assert.False(t, ok)
}

func TestManager_ValidateUnknownToken(t *testing.T) {
	m, _, _ := newTestManager()

	_, ok := m.Validate("")
	assert.False(t, ok)
	_, ok = m.Validate("deadbeef")
	assert.False(t, ok)
}

func TestManager_Invalidate(t *testing.T) {
	m, _, metrics := newTestManager()
	token, _ := m.Create()

	m.Invalidate(token)
	_, ok := m.Validate(token)
	assert.False(t, ok)
	assert.Equal(t, 0, metrics.ActiveSessions())

	m.Invalidate("missing")
	assert.Equal(t, 0, m.Count())
}

func TestManager_Cleanup(t *testing.T) {
	m, clock, metrics := newTestManager()
	_, _ = m.Create()
	_, _ = m.Create()
	clock.Advance(30 * time.Minute)
	fresh, _ := m.Create()
	clock.Advance(45 * time.Minute)

	assert.Equal(t, 2, m.Cleanup())
	assert.Equal(t, 1, m.Count())
	assert.Equal(t, 1, metrics.ActiveSessions())
	_, ok := m.Validate(fresh)
	assert.True(t, ok)
}

func TestManager_CheckPassword(t *testing.T) {
	m, _, _ := newTestManager()

	assert.True(t, m.CheckPassword("wadboard"))
	assert.False(t, m.CheckPassword("wadboar"))
	assert.False(t, m.CheckPassword("Wadboard"))
	assert.False(t, m.CheckPassword(""))
}
