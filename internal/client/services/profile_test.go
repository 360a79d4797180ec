package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dkalinin/eduhub/internal/client/api"
	"github.com/dkalinin/eduhub/internal/client/models"
	"github.com/dkalinin/eduhub/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, make([]byte, 32)...)

func newProfileFixture(t *testing.T, fc *fakeClient) (ProfileService, session.Store, string) {
	t.Helper()
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), testUser()))
	cacheDir := t.TempDir()
	svc := NewProfileService(fc, store, cacheDir, discardLogger())
	return svc, store, cacheDir
}

func TestProfileView_AbsentSession(t *testing.T) {
	svc := NewProfileService(&fakeClient{}, session.NewMemoryStore(), t.TempDir(), discardLogger())

	_, err := svc.View(context.Background())
	require.ErrorIs(t, err, api.ErrUnauthenticated)
}

func TestNewEditor_SeedsDraftFromCurrentUser(t *testing.T) {
	svc, _, _ := newProfileFixture(t, &fakeClient{})

	ed, err := svc.NewEditor(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateEditing, ed.State())
	assert.Equal(t, Draft{Username: "alice", Email: "alice@example.com"}, ed.Draft())
	assert.Equal(t, *testUser(), ed.User())
}

func TestEditorSave_MergesAndPersists(t *testing.T) {
	fc := &fakeClient{}
	svc, store, _ := newProfileFixture(t, fc)

	ed, err := svc.NewEditor(context.Background())
	require.NoError(t, err)

	ed.SetUsername("alice2")
	ed.SetEmail("a2@x.com")
	require.NoError(t, ed.Save(context.Background()))

	assert.Equal(t, StateViewing, ed.State())
	assert.Equal(t, api.EditProfileRequest{Username: "alice2", Email: "a2@x.com"}, fc.LastEdit)

	persisted, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice2", persisted.Username)
	assert.Equal(t, "a2@x.com", persisted.Email)
	// No new photo chosen: the reference is untouched.
	assert.Equal(t, testUser().ProfilePhoto, persisted.ProfilePhoto)
	// Immutable fields survive the merge.
	assert.Equal(t, testUser().ID, persisted.ID)
	assert.Equal(t, testUser().IsSuperuser, persisted.IsSuperuser)
}

func TestEditorSave_FailureLeavesSessionUntouched(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "business failure", err: &api.Error{Status: 200, Message: "username already taken"}},
		{name: "transport failure", err: api.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeClient{EditProfileErr: tt.err}
			svc, store, _ := newProfileFixture(t, fc)

			ed, err := svc.NewEditor(context.Background())
			require.NoError(t, err)

			ed.SetUsername("alice2")
			err = ed.Save(context.Background())
			require.Error(t, err)

			assert.Equal(t, StateEditing, ed.State())

			persisted, loadErr := store.Load(context.Background())
			require.NoError(t, loadErr)
			assert.Equal(t, testUser(), persisted)
		})
	}
}

func TestEditorCancel_NoNetworkCall(t *testing.T) {
	fc := &fakeClient{}
	svc, store, _ := newProfileFixture(t, fc)

	ed, err := svc.NewEditor(context.Background())
	require.NoError(t, err)

	ed.SetUsername("scratch")
	ed.Cancel()

	assert.Equal(t, StateViewing, ed.State())
	assert.Equal(t, Draft{Username: "alice", Email: "alice@example.com"}, ed.Draft())
	assert.Equal(t, 0, fc.EditProfileCalls)

	persisted, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testUser(), persisted)
}

func TestEditorSave_NewPhotoBecomesPendingReference(t *testing.T) {
	photoPath := filepath.Join(t.TempDir(), "new.png")
	require.NoError(t, os.WriteFile(photoPath, pngBytes, 0o600))

	fc := &fakeClient{}
	svc, store, cacheDir := newProfileFixture(t, fc)

	ed, err := svc.NewEditor(context.Background())
	require.NoError(t, err)

	ed.SetPhotoPath(photoPath)
	require.NoError(t, ed.Save(context.Background()))

	assert.Equal(t, photoPath, fc.LastEdit.PhotoPath)

	persisted, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.PhotoPending, persisted.ProfilePhoto.State)
	assert.True(t, strings.HasPrefix(persisted.ProfilePhoto.URL, cacheDir))

	// The preview copy actually exists.
	_, err = os.Stat(persisted.ProfilePhoto.URL)
	require.NoError(t, err)

	// The draft no longer carries the uploaded file.
	assert.Empty(t, ed.Draft().PhotoPath)
}

func TestEditorSave_OnlyWhileEditing(t *testing.T) {
	svc, _, _ := newProfileFixture(t, &fakeClient{})

	ed, err := svc.NewEditor(context.Background())
	require.NoError(t, err)

	require.NoError(t, ed.Save(context.Background()))
	assert.Equal(t, StateViewing, ed.State())

	// A second save without re-entering Editing is rejected.
	err = ed.Save(context.Background())
	assert.Error(t, err)
}

func TestEditorSave_PendingReplacedByNextProfileFetch(t *testing.T) {
	photoPath := filepath.Join(t.TempDir(), "new.png")
	require.NoError(t, os.WriteFile(photoPath, pngBytes, 0o600))

	confirmed := testUser()
	confirmed.ProfilePhoto = models.ConfirmedPhoto("http://example.com/media/new.png")
	fc := &fakeClient{LoginRet: 7, FetchProfileRet: confirmed}

	svc, store, _ := newProfileFixture(t, fc)

	ed, err := svc.NewEditor(context.Background())
	require.NoError(t, err)
	ed.SetPhotoPath(photoPath)
	require.NoError(t, ed.Save(context.Background()))

	persisted, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.PhotoPending, persisted.ProfilePhoto.State)

	// The next login overwrites the pending preview with the server URL.
	auth := NewAuthService(fc, store, discardLogger())
	_, err = auth.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)

	persisted, err = store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.PhotoConfirmed, persisted.ProfilePhoto.State)
	assert.Equal(t, "http://example.com/media/new.png", persisted.ProfilePhoto.URL)
}
