package agency

import (
	"context"
	"fmt"

	"agency-articles/internal/domain/entity"
	"agency-articles/internal/repository"
)

// Service provides system agency queries.
type Service struct {
	Repo repository.SystemAgencyRepository
}

// List retrieves all system agencies ordered by id.
func (s *Service) List(ctx context.Context) ([]*entity.SystemAgency, error) {
	agencies, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list system agencies: %w", err)
	}
	if agencies == nil {
		agencies = []*entity.SystemAgency{}
	}
	return agencies, nil
}

// Get retrieves a single system agency.
// Returns ErrInvalidAgencyID if the ID is not positive and
// ErrAgencyNotFound if no row matches.
func (s *Service) Get(ctx context.Context, id int64) (*entity.SystemAgency, error) {
	if id <= 0 {
		return nil, ErrInvalidAgencyID
	}

	agency, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get system agency: %w", err)
	}
	if agency == nil {
		return nil, ErrAgencyNotFound
	}
	return agency, nil
}
