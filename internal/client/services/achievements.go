package services

import (
	"context"
	"fmt"

	"github.com/dkalinin/eduhub/internal/client/api"
	"github.com/dkalinin/eduhub/internal/client/models"
	"github.com/dkalinin/eduhub/internal/client/session"
	"github.com/dkalinin/eduhub/internal/logging"
)

// AchievementsService lists the current user's achievements.
type AchievementsService interface {
	// List returns the user's achievements, possibly empty: "no achievements
	// yet" is a valid state, distinct from a fetch failure. With no current
	// session it returns api.ErrUnauthenticated without touching the network.
	List(ctx context.Context) ([]models.Achievement, error)
}

type achievementsService struct {
	client api.Client
	store  session.Store
	log    logging.Logger
}

func NewAchievementsService(client api.Client, store session.Store, log logging.Logger) AchievementsService {
	return &achievementsService{client: client, store: store, log: log.With("component", "achievements")}
}

func (s *achievementsService) List(ctx context.Context) ([]models.Achievement, error) {
	user, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if user == nil {
		return nil, api.ErrUnauthenticated
	}

	achievements, err := s.client.ListAchievements(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	return achievements, nil
}
