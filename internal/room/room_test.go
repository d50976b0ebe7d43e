// internal/room/room_test.go
package room

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinAndMembers(t *testing.T) {
	host := uuid.New()
	r := newRoom("ABC123", host, "alice")

	guest := uuid.New()
	require.NoError(t, r.Join(guest, "bob"))
	assert.ErrorIs(t, r.Join(guest, "bob"), ErrAlreadyJoined)

	members := r.Members()
	require.Len(t, members, 2)
	assert.True(t, members[0].IsHost)
	assert.Equal(t, "alice", members[0].Name)
	assert.False(t, members[1].IsHost)
	assert.Equal(t, 2, r.Size())
	assert.True(t, r.HasMember(guest))
	assert.False(t, r.HasMember(uuid.New()))
}

func TestJoinRejectedWhilePlaying(t *testing.T) {
	r := newRoom("ABC123", uuid.New(), "alice")
	r.SetStatus(StatusPlaying)
	assert.ErrorIs(t, r.Join(uuid.New(), "bob"), ErrInProgress)
}

func TestLeaveMigratesHost(t *testing.T) {
	host := uuid.New()
	r := newRoom("ABC123", host, "alice")
	guest := uuid.New()
	require.NoError(t, r.Join(guest, "bob"))

	empty, hostChanged := r.Leave(host)
	assert.False(t, empty)
	assert.True(t, hostChanged)
	assert.True(t, r.IsHost(guest))
	require.Len(t, r.Members(), 1)
	assert.True(t, r.Members()[0].IsHost)

	empty, hostChanged = r.Leave(guest)
	assert.True(t, empty)
	assert.False(t, hostChanged)
}

func TestLeaveNonHostKeepsHost(t *testing.T) {
	host := uuid.New()
	r := newRoom("ABC123", host, "alice")
	guest := uuid.New()
	require.NoError(t, r.Join(guest, "bob"))

	empty, hostChanged := r.Leave(guest)
	assert.False(t, empty)
	assert.False(t, hostChanged)
	assert.True(t, r.IsHost(host))
}

func TestSeatsPreserveJoinOrder(t *testing.T) {
	host := uuid.New()
	r := newRoom("ABC123", host, "alice")
	guest := uuid.New()
	require.NoError(t, r.Join(guest, "bob"))

	seats := r.Seats()
	require.Len(t, seats, 2)
	assert.Equal(t, host, seats[0].ID)
	assert.Equal(t, "alice", seats[0].Name)
	assert.Equal(t, guest, seats[1].ID)
}

func TestStoreCreateAndLookup(t *testing.T) {
	s := NewStore()
	r := s.Create(uuid.New(), "alice")

	assert.Len(t, r.Code, codeLength)
	for _, ch := range r.Code {
		assert.Contains(t, codeCharset, string(ch))
	}
	assert.Equal(t, StatusWaiting, r.Status())

	got, ok := s.Get(r.Code)
	require.True(t, ok)
	assert.Equal(t, r, got)

	// Lookup is case-insensitive; codes are stored uppercased.
	got, ok = s.Get(strings.ToLower(r.Code))
	require.True(t, ok)
	assert.Equal(t, r, got)

	s.Remove(r.Code)
	_, ok = s.Get(r.Code)
	assert.False(t, ok)
}

func TestStoreCodesAreUnique(t *testing.T) {
	s := NewStore()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		r := s.Create(uuid.New(), "p")
		assert.False(t, seen[r.Code], "duplicate code %s", r.Code)
		seen[r.Code] = true
	}
}
