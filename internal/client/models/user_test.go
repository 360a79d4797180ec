package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Valid(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want bool
	}{
		{name: "nil", user: nil, want: false},
		{name: "zero id", user: &User{Username: "alice"}, want: false},
		{name: "empty username", user: &User{ID: 1}, want: false},
		{name: "ok", user: &User{ID: 1, Username: "alice"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.Valid())
		})
	}
}

func TestPhotoRef(t *testing.T) {
	assert.True(t, PhotoRef{}.IsZero())
	assert.True(t, ConfirmedPhoto("").IsZero())

	c := ConfirmedPhoto("http://example.com/p.png")
	assert.Equal(t, PhotoConfirmed, c.State)
	assert.False(t, c.IsZero())

	p := PendingPhoto("/tmp/cache/abc.png")
	assert.Equal(t, PhotoPending, p.State)
	assert.False(t, p.IsZero())
}

func TestUser_JSONRoundTrip(t *testing.T) {
	u := User{
		ID:           7,
		Username:     "alice",
		Email:        "alice@example.com",
		ProfilePhoto: ConfirmedPhoto("http://example.com/p.png"),
		IsSuperuser:  true,
		Level:        3,
		Experience:   120,
	}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	var got User
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, u, got)
}
