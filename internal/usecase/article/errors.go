// Package article provides use cases for creating and reading articles.
// Validation is limited to presence checks; the database enforces the rest.
package article

import "agency-articles/internal/domain/entity"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that no article has the requested id.
	ErrArticleNotFound error = &entity.NotFoundError{Resource: "article"}

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID error = &entity.ValidationError{Field: "id_article", Message: "must be a positive integer"}
)
