package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormManager_CreateAndGet tests session allocation and lookup.
func TestFormManager_CreateAndGet(t *testing.T) {
	m := NewFormManager(time.Minute)
	defer m.Stop()

	form := m.Create()
	assert.NotEmpty(t, form.ID())
	assert.Equal(t, 1, m.Len())

	got, err := m.Get(form.ID())
	require.NoError(t, err)
	assert.Same(t, form, got)
}

// TestFormManager_GetUnknown tests lookup of an unknown session.
func TestFormManager_GetUnknown(t *testing.T) {
	m := NewFormManager(time.Minute)
	defer m.Stop()

	_, err := m.Get("nope")
	assert.ErrorIs(t, err, ErrFormNotFound)
}

// TestFormManager_Delete tests explicit session removal.
func TestFormManager_Delete(t *testing.T) {
	m := NewFormManager(time.Minute)
	defer m.Stop()

	form := m.Create()
	m.Delete(form.ID())

	assert.Equal(t, 0, m.Len())
	_, err := m.Get(form.ID())
	assert.ErrorIs(t, err, ErrFormNotFound)
}

// TestFormManager_CleanupEvictsIdleSessions tests TTL-based eviction.
func TestFormManager_CleanupEvictsIdleSessions(t *testing.T) {
	m := NewFormManager(10 * time.Millisecond)
	defer m.Stop()

	stale := m.Create()
	time.Sleep(25 * time.Millisecond)
	fresh := m.Create()

	m.cleanup()

	assert.Equal(t, 1, m.Len())
	_, err := m.Get(stale.ID())
	assert.ErrorIs(t, err, ErrFormNotFound)
	_, err = m.Get(fresh.ID())
	assert.NoError(t, err)
}

// TestFormManager_CleanupKeepsTouchedSessions verifies access refreshes the TTL.
func TestFormManager_CleanupKeepsTouchedSessions(t *testing.T) {
	m := NewFormManager(20 * time.Millisecond)
	defer m.Stop()

	form := m.Create()
	time.Sleep(15 * time.Millisecond)
	form.SetParentName("山田太郎")
	time.Sleep(10 * time.Millisecond)

	m.cleanup()

	assert.Equal(t, 1, m.Len())
}
