// Package api is the client's view of the education platform backend. It
// defines the transport-agnostic Client interface, the HTTP implementation,
// and the error taxonomy every workflow relies on: sentinel errors for
// transport and authentication conditions, *Error for business failures.
package api

import (
	"context"

	"github.com/dkalinin/eduhub/internal/client/models"
)

// RegisterRequest carries the fields of the registration form. PhotoPath
// points at the profile photo file; the backend requires one.
type RegisterRequest struct {
	Username  string
	Email     string
	Password  string
	Password2 string
	PhotoPath string
}

// EditProfileRequest carries the mutable profile fields. PhotoPath is empty
// when the user kept the existing photo; only a non-empty path puts the
// photo binary on the wire.
type EditProfileRequest struct {
	Username  string
	Email     string
	PhotoPath string
}

// CreateCourseRequest carries a new course. Superuser-only server-side.
type CreateCourseRequest struct {
	Title       string
	Description string
	Tags        string
	Content     string
}

// Client is the operation surface of the backend. One method per endpoint;
// every method takes a context and maps failures onto the package's error
// taxonomy.
type Client interface {
	Register(ctx context.Context, req RegisterRequest) (message string, err error)
	Login(ctx context.Context, username, password string) (userID int64, err error)
	FetchProfile(ctx context.Context, userID int64) (*models.User, error)

	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, courseID int64) (*models.Course, error)
	CreateCourse(ctx context.Context, req CreateCourseRequest) (message string, err error)
	Enroll(ctx context.Context, courseID, userID int64) (message string, err error)
	ListEnrolledCourses(ctx context.Context, userID int64) ([]models.CourseRef, error)

	EditProfile(ctx context.Context, userID int64, req EditProfileRequest) error
	ListAchievements(ctx context.Context, userID int64) ([]models.Achievement, error)
}
