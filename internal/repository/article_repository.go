package repository

import (
	"context"

	"agency-articles/internal/domain/entity"
)

// ArticleRepository is the persistence port for the article table.
// Only create and read exist; articles are never updated or deleted through the API.
type ArticleRepository interface {
	List(ctx context.Context) ([]*entity.Article, error)
	// Get returns (nil, nil) when no row has the given id.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// Create inserts the article with an id drawn from the database sequence
	// and returns that id.
	Create(ctx context.Context, article *entity.Article) (int64, error)
}
