package repository

import (
	"context"

	"agency-articles/internal/domain/entity"
)

type SystemAgencyRepository interface {
	List(ctx context.Context) ([]*entity.SystemAgency, error)
	// Get returns (nil, nil) when no row has the given id.
	Get(ctx context.Context, id int64) (*entity.SystemAgency, error)
}
