// Package article provides HTTP handlers for article-related endpoints.
// It includes handlers for inserting, listing and fetching articles by id.
package article

import "agency-articles/internal/domain/entity"

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	IDArticle       int64  `json:"id_article" example:"1"`
	Name            string `json:"name" example:"Dengue bulletin"`
	Description     string `json:"description" example:"Weekly epidemiological bulletin"`
	PublicationDate string `json:"publication_date" example:"2024-01-15"`
	Author          string `json:"author" example:"Surveillance team"`
	SystemAgencyID  int64  `json:"system_agency_id" example:"1"`
}

// InsertRequest is the body of POST /insert_article.
// Pointer fields tell a missing key apart from a zero value.
type InsertRequest struct {
	Name            *string `json:"name" example:"Dengue bulletin"`
	Description     *string `json:"description" example:"Weekly epidemiological bulletin"`
	PublicationDate *string `json:"publication_date" example:"2024-01-15"`
	Author          *string `json:"author" example:"Surveillance team"`
	SystemAgencyID  *int64  `json:"system_agency_id" example:"1"`
}

// InsertResponse acknowledges an insert.
type InsertResponse struct {
	Status    string `json:"status" example:"inserted"`
	IDArticle int64  `json:"id_article" example:"42"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		IDArticle:       a.ID,
		Name:            a.Name,
		Description:     a.Description,
		PublicationDate: a.PublicationDate,
		Author:          a.Author,
		SystemAgencyID:  a.SystemAgencyID,
	}
}
