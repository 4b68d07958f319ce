// Package agency provides HTTP handlers for the read-only system agency endpoints.
package agency

import "agency-articles/internal/domain/entity"

// DTO represents the JSON structure for system agency data transfer.
type DTO struct {
	IDSystemAgency int64  `json:"id_system_agency" example:"1"`
	Name           string `json:"name" example:"Ministry of Health"`
}

func toDTO(a *entity.SystemAgency) DTO {
	return DTO{IDSystemAgency: a.ID, Name: a.Name}
}
