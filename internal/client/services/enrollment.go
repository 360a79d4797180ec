package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dkalinin/eduhub/internal/client/api"
	"github.com/dkalinin/eduhub/internal/client/session"
	"github.com/dkalinin/eduhub/internal/logging"
)

// ErrEnrollmentPending is returned when an enrollment request for the same
// course is already in flight; the duplicate attempt makes no network call.
var ErrEnrollmentPending = errors.New("enrollment already in progress")

// EnrollmentService enrolls the current user in courses.
type EnrollmentService interface {
	// Enroll requests enrollment in the given course and returns the
	// server's confirmation message verbatim.
	//
	// With no current session it returns api.ErrUnauthenticated without
	// touching the network. Success never mutates the session store; the
	// client keeps no record of which courses the user is enrolled in.
	Enroll(ctx context.Context, courseID int64) (message string, err error)
}

type enrollmentService struct {
	client api.Client
	store  session.Store
	log    logging.Logger

	mu       sync.Mutex
	inflight map[int64]struct{}
}

func NewEnrollmentService(client api.Client, store session.Store, log logging.Logger) EnrollmentService {
	return &enrollmentService{
		client:   client,
		store:    store,
		log:      log.With("component", "enrollment"),
		inflight: make(map[int64]struct{}),
	}
}

func (s *enrollmentService) Enroll(ctx context.Context, courseID int64) (string, error) {
	user, err := s.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if user == nil {
		return "", api.ErrUnauthenticated
	}

	if !s.begin(courseID) {
		return "", ErrEnrollmentPending
	}
	defer s.end(courseID)

	msg, err := s.client.Enroll(ctx, courseID, user.ID)
	if err != nil {
		return "", fmt.Errorf("enroll: %w", err)
	}

	s.log.Info(ctx, "enrolled", "course_id", courseID, "user_id", user.ID)
	return msg, nil
}

func (s *enrollmentService) begin(courseID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inflight[courseID]; ok {
		return false
	}
	s.inflight[courseID] = struct{}{}
	return true
}

func (s *enrollmentService) end(courseID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, courseID)
}
