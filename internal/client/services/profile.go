package services

import (
	"context"
	"fmt"

	"github.com/dkalinin/eduhub/internal/client/api"
	"github.com/dkalinin/eduhub/internal/client/models"
	"github.com/dkalinin/eduhub/internal/client/session"
	"github.com/dkalinin/eduhub/internal/filex"
	"github.com/dkalinin/eduhub/internal/logging"
	"github.com/google/uuid"
)

// EditorState is the profile editor's position in its
// Viewing -> Editing -> Saving cycle.
type EditorState string

const (
	StateViewing EditorState = "viewing"
	StateEditing EditorState = "editing"
	StateSaving  EditorState = "saving"
)

// Draft holds the three mutable profile fields while they are being edited.
// It is independent of the session store until a save succeeds; PhotoPath is
// empty unless the user picked a new photo file.
type Draft struct {
	Username  string
	Email     string
	PhotoPath string
}

// ProfileService reads the current profile and opens editors over it.
type ProfileService interface {
	// View returns the current user, or api.ErrUnauthenticated when there is
	// no session.
	View(ctx context.Context) (*models.User, error)

	// NewEditor seeds an editor's draft from the current user and puts it in
	// the Editing state.
	NewEditor(ctx context.Context) (*Editor, error)
}

type profileService struct {
	client        api.Client
	store         session.Store
	photoCacheDir string
	log           logging.Logger
}

// NewProfileService constructs a ProfileService. photoCacheDir is where
// pending photo previews are copied.
func NewProfileService(client api.Client, store session.Store, photoCacheDir string, log logging.Logger) ProfileService {
	return &profileService{
		client:        client,
		store:         store,
		photoCacheDir: photoCacheDir,
		log:           log.With("component", "profile"),
	}
}

func (s *profileService) View(ctx context.Context) (*models.User, error) {
	user, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if user == nil {
		return nil, api.ErrUnauthenticated
	}
	return user, nil
}

func (s *profileService) NewEditor(ctx context.Context) (*Editor, error) {
	user, err := s.View(ctx)
	if err != nil {
		return nil, err
	}

	return &Editor{
		svc:   s,
		user:  *user,
		draft: Draft{Username: user.Username, Email: user.Email},
		state: StateEditing,
	}, nil
}

// cachePendingPhoto copies the selected photo into the cache directory under
// a fresh name and returns the pending reference to it. The copy is the
// client-local preview shown until the next profile fetch replaces it with
// the server's canonical URL.
func (s *profileService) cachePendingPhoto(src string) (models.PhotoRef, error) {
	dir, err := filex.EnsureDir(s.photoCacheDir)
	if err != nil {
		return models.PhotoRef{}, err
	}
	dst, err := filex.CopyToDir(src, dir, uuid.NewString())
	if err != nil {
		return models.PhotoRef{}, err
	}
	return models.PendingPhoto(dst), nil
}

// Editor drives one profile-edit session. It is not safe for concurrent use;
// a view owns its editor for the duration of the edit.
type Editor struct {
	svc   *profileService
	user  models.User
	draft Draft
	state EditorState
}

// User returns the profile snapshot the editor was seeded from, updated
// after every successful save.
func (e *Editor) User() models.User { return e.user }

func (e *Editor) State() EditorState { return e.state }

func (e *Editor) Draft() Draft { return e.draft }

func (e *Editor) SetUsername(username string) { e.draft.Username = username }

func (e *Editor) SetEmail(email string) { e.draft.Email = email }

// SetPhotoPath marks a new photo file to upload on the next save. An empty
// path keeps the existing photo.
func (e *Editor) SetPhotoPath(path string) { e.draft.PhotoPath = path }

// Cancel discards the draft and returns to Viewing without any network call.
func (e *Editor) Cancel() {
	e.draft = Draft{Username: e.user.Username, Email: e.user.Email}
	e.state = StateViewing
}

// Save pushes the draft to the server and, only on success, merges the
// mutable fields into a fresh user record and persists it. The server call
// always happens before the session write; any failure leaves the session
// store untouched and drops the editor back to Editing.
func (e *Editor) Save(ctx context.Context) error {
	if e.state != StateEditing {
		return fmt.Errorf("profile editor is in state %q, not %q", e.state, StateEditing)
	}
	e.state = StateSaving

	req := api.EditProfileRequest{
		Username:  e.draft.Username,
		Email:     e.draft.Email,
		PhotoPath: e.draft.PhotoPath,
	}
	if err := e.svc.client.EditProfile(ctx, e.user.ID, req); err != nil {
		e.state = StateEditing
		return fmt.Errorf("edit profile: %w", err)
	}

	updated := e.user
	updated.Username = e.draft.Username
	updated.Email = e.draft.Email

	if e.draft.PhotoPath != "" {
		ref, err := e.svc.cachePendingPhoto(e.draft.PhotoPath)
		if err != nil {
			// The server accepted the upload; keep the previous reference
			// rather than fail the save over a local cache problem.
			e.svc.log.Warn(ctx, "could not cache photo preview", "error", err)
		} else {
			updated.ProfilePhoto = ref
		}
	}

	if err := e.svc.store.Save(ctx, &updated); err != nil {
		e.state = StateEditing
		return fmt.Errorf("save session: %w", err)
	}

	e.svc.log.Info(ctx, "profile updated", "user_id", updated.ID)
	e.user = updated
	e.draft.PhotoPath = ""
	e.state = StateViewing
	return nil
}
