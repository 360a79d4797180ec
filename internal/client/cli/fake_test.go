package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/dkalinin/eduhub/internal/client/api"
	"github.com/dkalinin/eduhub/internal/client/config"
	"github.com/dkalinin/eduhub/internal/client/models"
	"github.com/dkalinin/eduhub/internal/client/services"
	"github.com/dkalinin/eduhub/internal/client/session"
	"github.com/dkalinin/eduhub/internal/logging"
	"github.com/stretchr/testify/require"
)

// fakeAPI implements api.Client so handler tests can run the real services
// against canned backend behavior.
type fakeAPI struct {
	RegisterRet string
	RegisterErr error

	LoginRet int64
	LoginErr error

	FetchProfileRet *models.User
	FetchProfileErr error

	ListCoursesRet []models.Course
	ListCoursesErr error

	GetCourseRet *models.Course
	GetCourseErr error

	CreateCourseRet   string
	CreateCourseErr   error
	CreateCourseCalls int

	EnrollRet   string
	EnrollErr   error
	EnrollCalls int

	ListEnrolledRet []models.CourseRef
	ListEnrolledErr error

	EditProfileErr   error
	EditProfileCalls int

	ListAchievementsRet   []models.Achievement
	ListAchievementsErr   error
	ListAchievementsCalls int
}

func (f *fakeAPI) Register(ctx context.Context, req api.RegisterRequest) (string, error) {
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (int64, error) {
	return f.LoginRet, f.LoginErr
}

func (f *fakeAPI) FetchProfile(ctx context.Context, userID int64) (*models.User, error) {
	if f.FetchProfileRet == nil {
		return nil, f.FetchProfileErr
	}
	u := *f.FetchProfileRet
	return &u, f.FetchProfileErr
}

func (f *fakeAPI) ListCourses(ctx context.Context) ([]models.Course, error) {
	return f.ListCoursesRet, f.ListCoursesErr
}

func (f *fakeAPI) GetCourse(ctx context.Context, courseID int64) (*models.Course, error) {
	if f.GetCourseRet == nil {
		return nil, f.GetCourseErr
	}
	c := *f.GetCourseRet
	return &c, f.GetCourseErr
}

func (f *fakeAPI) CreateCourse(ctx context.Context, req api.CreateCourseRequest) (string, error) {
	f.CreateCourseCalls++
	return f.CreateCourseRet, f.CreateCourseErr
}

func (f *fakeAPI) Enroll(ctx context.Context, courseID, userID int64) (string, error) {
	f.EnrollCalls++
	return f.EnrollRet, f.EnrollErr
}

func (f *fakeAPI) ListEnrolledCourses(ctx context.Context, userID int64) ([]models.CourseRef, error) {
	return f.ListEnrolledRet, f.ListEnrolledErr
}

func (f *fakeAPI) EditProfile(ctx context.Context, userID int64, req api.EditProfileRequest) error {
	f.EditProfileCalls++
	return f.EditProfileErr
}

func (f *fakeAPI) ListAchievements(ctx context.Context, userID int64) ([]models.Achievement, error) {
	f.ListAchievementsCalls++
	return f.ListAchievementsRet, f.ListAchievementsErr
}

func testUser() *models.User {
	return &models.User{
		ID:       7,
		Username: "alice",
		Email:    "alice@example.com",
		Level:    2,
	}
}

// newTestApp builds an App over the real services, a fake backend, and an
// in-memory session store.
func newTestApp(t *testing.T, fc *fakeAPI, store session.Store) *App {
	t.Helper()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	cfg := &config.Config{PhotoCacheDir: t.TempDir()}

	return &App{
		config:       cfg,
		log:          log,
		auth:         services.NewAuthService(fc, store, log),
		catalog:      services.NewCatalogService(fc, store, log),
		enrollment:   services.NewEnrollmentService(fc, store, log),
		profile:      services.NewProfileService(fc, store, cfg.PhotoCacheDir, log),
		achievements: services.NewAchievementsService(fc, store, log),
	}
}

// stubInputs replaces the interactive input seams with canned answers,
// consumed in order. Text prompts and password prompts draw from the same
// sequence.
func stubInputs(t *testing.T, answers ...string) {
	t.Helper()

	pos := 0
	next := func() string {
		require.Less(t, pos, len(answers), "ran out of stubbed answers")
		a := answers[pos]
		pos++
		return a
	}

	origText := getSimpleText
	origPassword := getPassword
	origMultiline := getMultiline
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next(), nil }
	getPassword = func(_ string, _ io.Writer) (string, error) { return next(), nil }
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next(), nil }
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPassword
		getMultiline = origMultiline
	})
}
