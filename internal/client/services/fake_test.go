package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/dkalinin/eduhub/internal/client/api"
	"github.com/dkalinin/eduhub/internal/client/models"
	"github.com/dkalinin/eduhub/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeClient implements api.Client for service tests: canned results and
// errors per method, call counters, and captured arguments. Enroll can be
// made to block via the Started/Release channels for concurrency tests.
type fakeClient struct {
	mu sync.Mutex

	RegisterRet   string
	RegisterErr   error
	RegisterCalls int
	LastRegister  api.RegisterRequest

	LoginRet   int64
	LoginErr   error
	LoginCalls int

	FetchProfileRet   *models.User
	FetchProfileErr   error
	FetchProfileCalls int

	ListCoursesRet []models.Course
	ListCoursesErr error

	GetCourseRet *models.Course
	GetCourseErr error

	CreateCourseRet   string
	CreateCourseErr   error
	CreateCourseCalls int

	EnrollRet       string
	EnrollErr       error
	EnrollCalls     int
	LastEnrollCourse int64
	LastEnrollUser   int64
	EnrollStarted   chan struct{}
	EnrollRelease   chan struct{}

	ListEnrolledRet   []models.CourseRef
	ListEnrolledErr   error
	ListEnrolledCalls int

	EditProfileErr   error
	EditProfileCalls int
	LastEdit         api.EditProfileRequest

	ListAchievementsRet   []models.Achievement
	ListAchievementsErr   error
	ListAchievementsCalls int
}

func (f *fakeClient) Register(ctx context.Context, req api.RegisterRequest) (string, error) {
	f.mu.Lock()
	f.RegisterCalls++
	f.LastRegister = req
	f.mu.Unlock()
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (int64, error) {
	f.mu.Lock()
	f.LoginCalls++
	f.mu.Unlock()
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) FetchProfile(ctx context.Context, userID int64) (*models.User, error) {
	f.mu.Lock()
	f.FetchProfileCalls++
	f.mu.Unlock()
	if f.FetchProfileRet == nil {
		return nil, f.FetchProfileErr
	}
	u := *f.FetchProfileRet
	return &u, f.FetchProfileErr
}

func (f *fakeClient) ListCourses(ctx context.Context) ([]models.Course, error) {
	return f.ListCoursesRet, f.ListCoursesErr
}

func (f *fakeClient) GetCourse(ctx context.Context, courseID int64) (*models.Course, error) {
	if f.GetCourseRet == nil {
		return nil, f.GetCourseErr
	}
	c := *f.GetCourseRet
	return &c, f.GetCourseErr
}

func (f *fakeClient) CreateCourse(ctx context.Context, req api.CreateCourseRequest) (string, error) {
	f.mu.Lock()
	f.CreateCourseCalls++
	f.mu.Unlock()
	return f.CreateCourseRet, f.CreateCourseErr
}

func (f *fakeClient) Enroll(ctx context.Context, courseID, userID int64) (string, error) {
	f.mu.Lock()
	f.EnrollCalls++
	f.LastEnrollCourse = courseID
	f.LastEnrollUser = userID
	started := f.EnrollStarted
	release := f.EnrollRelease
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if release != nil {
		<-release
	}
	return f.EnrollRet, f.EnrollErr
}

func (f *fakeClient) ListEnrolledCourses(ctx context.Context, userID int64) ([]models.CourseRef, error) {
	f.mu.Lock()
	f.ListEnrolledCalls++
	f.mu.Unlock()
	return f.ListEnrolledRet, f.ListEnrolledErr
}

func (f *fakeClient) EditProfile(ctx context.Context, userID int64, req api.EditProfileRequest) error {
	f.mu.Lock()
	f.EditProfileCalls++
	f.LastEdit = req
	f.mu.Unlock()
	return f.EditProfileErr
}

func (f *fakeClient) ListAchievements(ctx context.Context, userID int64) ([]models.Achievement, error) {
	f.mu.Lock()
	f.ListAchievementsCalls++
	f.mu.Unlock()
	return f.ListAchievementsRet, f.ListAchievementsErr
}

func testUser() *models.User {
	return &models.User{
		ID:           7,
		Username:     "alice",
		Email:        "alice@example.com",
		ProfilePhoto: models.ConfirmedPhoto("http://example.com/media/p.png"),
		Level:        2,
		Experience:   40,
	}
}
