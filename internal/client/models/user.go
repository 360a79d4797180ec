// Package models defines the record types the client works with: the
// authenticated user, courses, and achievements. Shapes coming off the wire
// are normalized into these types at the transport boundary.
package models

// PhotoState tells whether a profile photo reference points at the server's
// canonical URL or at a client-local preview that has not been confirmed by
// a profile refresh yet.
type PhotoState string

const (
	// PhotoConfirmed is a URL returned by the server.
	PhotoConfirmed PhotoState = "confirmed"
	// PhotoPending is a client-generated local copy of a freshly uploaded
	// photo. It is replaced by the confirmed server URL on the next profile
	// fetch.
	PhotoPending PhotoState = "pending"
)

// PhotoRef is a two-phase reference to a profile photo. The zero value means
// "no photo".
type PhotoRef struct {
	URL   string     `json:"url"`
	State PhotoState `json:"state"`
}

// IsZero reports whether the reference points at nothing.
func (p PhotoRef) IsZero() bool {
	return p.URL == ""
}

// ConfirmedPhoto builds a reference to a server-stored photo URL.
// An empty url yields the zero reference.
func ConfirmedPhoto(url string) PhotoRef {
	if url == "" {
		return PhotoRef{}
	}
	return PhotoRef{URL: url, State: PhotoConfirmed}
}

// PendingPhoto builds a reference to a client-local preview copy.
func PendingPhoto(path string) PhotoRef {
	return PhotoRef{URL: path, State: PhotoPending}
}

// User is the current authenticated user as held by the session store.
// ID and IsSuperuser never change client-side; Username, Email and
// ProfilePhoto are the only fields the profile-edit workflow may touch.
type User struct {
	ID           int64    `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	ProfilePhoto PhotoRef `json:"profile_photo"`
	IsSuperuser  bool     `json:"is_superuser"`
	Level        int      `json:"level"`
	Experience   int      `json:"experience"`
}

// Valid reports whether u looks like a real user record. A persisted payload
// failing this check is treated as an absent session, not an error.
func (u *User) Valid() bool {
	return u != nil && u.ID > 0 && u.Username != ""
}
