package services

import (
	"context"
	"fmt"

	"github.com/dkalinin/eduhub/internal/client/api"
	"github.com/dkalinin/eduhub/internal/client/models"
	"github.com/dkalinin/eduhub/internal/client/session"
	"github.com/dkalinin/eduhub/internal/logging"
)

// CourseDetail is one course plus the affordances the current session grants
// on it. CanManage mirrors is_superuser; the UI only offers course
// management actions when it is set.
type CourseDetail struct {
	Course    models.Course
	CanManage bool
}

// CatalogService serves the course catalog. Listings and detail are public;
// MyCourses and Create need a session, and Create is superuser-only.
type CatalogService interface {
	List(ctx context.Context) ([]models.Course, error)
	Get(ctx context.Context, courseID int64) (*CourseDetail, error)
	MyCourses(ctx context.Context) ([]models.CourseRef, error)
	Create(ctx context.Context, req api.CreateCourseRequest) (message string, err error)
}

type catalogService struct {
	client api.Client
	store  session.Store
	log    logging.Logger
}

func NewCatalogService(client api.Client, store session.Store, log logging.Logger) CatalogService {
	return &catalogService{client: client, store: store, log: log.With("component", "catalog")}
}

func (s *catalogService) List(ctx context.Context) ([]models.Course, error) {
	courses, err := s.client.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// Get fetches one course and derives the role-gated affordances from the
// session. An absent session is fine here: the detail stays readable, only
// the management actions disappear.
func (s *catalogService) Get(ctx context.Context, courseID int64) (*CourseDetail, error) {
	course, err := s.client.GetCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}

	user, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	return &CourseDetail{
		Course:    *course,
		CanManage: user != nil && user.IsSuperuser,
	}, nil
}

func (s *catalogService) MyCourses(ctx context.Context) ([]models.CourseRef, error) {
	user, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if user == nil {
		return nil, api.ErrUnauthenticated
	}

	courses, err := s.client.ListEnrolledCourses(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list enrolled courses: %w", err)
	}
	return courses, nil
}

// Create is gated twice: the UI hides the action from non-superusers, and
// the workflow re-checks so a direct call cannot bypass the gate.
func (s *catalogService) Create(ctx context.Context, req api.CreateCourseRequest) (string, error) {
	user, err := s.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if user == nil {
		return "", api.ErrUnauthenticated
	}
	if !user.IsSuperuser {
		return "", api.ErrForbidden
	}

	msg, err := s.client.CreateCourse(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create course: %w", err)
	}

	s.log.Info(ctx, "course created", "title", req.Title)
	return msg, nil
}
