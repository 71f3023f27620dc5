package services

import (
	"context"

	"shelfwise/internal/api"
	"shelfwise/internal/domain"
)

type ProfileService struct {
	API *api.Client
}

func NewProfileService(c *api.Client) *ProfileService { return &ProfileService{API: c} }

// Get returns nil without error when the user has no profile yet.
func (s *ProfileService) Get(ctx context.Context, token string) (*domain.Profile, error) {
	p, err := s.API.Profile.Get(ctx, token)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Save upserts. There is deliberately no create-after-failed-update fallback.
func (s *ProfileService) Save(ctx context.Context, token string, p domain.Profile) (domain.Profile, error) {
	return s.API.Profile.Save(ctx, token, p)
}

// Create is used by onboarding, when the profile is known not to exist.
func (s *ProfileService) Create(ctx context.Context, token string, p domain.Profile) (domain.Profile, error) {
	return s.API.Profile.Create(ctx, token, p)
}

func (s *ProfileService) Me(ctx context.Context, token string) (domain.User, error) {
	return s.API.Users.Me(ctx, token)
}

func (s *ProfileService) SelectRole(ctx context.Context, token string, r domain.Role) (domain.User, error) {
	return s.API.Users.SelectRole(ctx, token, r)
}
