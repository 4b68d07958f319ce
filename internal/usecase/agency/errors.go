// Package agency provides read use cases for system agencies, the
// organisations that own articles.
package agency

import "agency-articles/internal/domain/entity"

// Sentinel errors for system agency use case operations.
var (
	// ErrAgencyNotFound indicates that no system agency has the requested id.
	ErrAgencyNotFound error = &entity.NotFoundError{Resource: "system agency"}

	// ErrInvalidAgencyID indicates that the id is not a positive integer.
	ErrInvalidAgencyID error = &entity.ValidationError{Field: "id_system_agency", Message: "must be a positive integer"}
)
