package article

import (
	"context"
	"fmt"
	"strings"

	"agency-articles/internal/domain/entity"
	"agency-articles/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Name            string
	Description     string
	PublicationDate string
	Author          string
	SystemAgencyID  int64
}

// Service provides article use cases.
// It delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// List retrieves all articles ordered by id.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	if articles == nil {
		articles = []*entity.Article{}
	}
	return articles, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Create inserts a new article and returns its generated id.
// Every field is required; a ValidationError names the first one missing.
// The publication date format is left to the database.
func (s *Service) Create(ctx context.Context, in CreateInput) (int64, error) {
	required := []struct {
		field string
		value string
	}{
		{"name", in.Name},
		{"description", in.Description},
		{"publication_date", in.PublicationDate},
		{"author", in.Author},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return 0, &entity.ValidationError{Field: r.field, Message: "is required"}
		}
	}
	if in.SystemAgencyID <= 0 {
		return 0, &entity.ValidationError{Field: "system_agency_id", Message: "must be a positive integer"}
	}

	art := &entity.Article{
		Name:            in.Name,
		Description:     in.Description,
		PublicationDate: strings.TrimSpace(in.PublicationDate),
		Author:          in.Author,
		SystemAgencyID:  in.SystemAgencyID,
	}

	id, err := s.Repo.Create(ctx, art)
	if err != nil {
		return 0, fmt.Errorf("create article: %w", err)
	}
	return id, nil
}
