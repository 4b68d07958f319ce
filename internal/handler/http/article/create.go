package article

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"agency-articles/internal/domain/entity"
	"agency-articles/internal/handler/http/respond"
	artUC "agency-articles/internal/usecase/article"
)

type CreateHandler struct {
	Svc       artUC.Service
	Responder respond.Responder
}

// ServeHTTP inserts an article
// @Summary      Insert article
// @Description  Inserts a new article. The id is taken from the article_id_seq sequence.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article body InsertRequest true "Article fields, all required"
// @Success      200 {object} InsertResponse
// @Failure      400 {object} respond.ErrorResponse "Missing field or malformed body"
// @Failure      409 {object} respond.ErrorResponse "system_agency_id does not exist"
// @Failure      429 {object} respond.ErrorResponse "Too many requests"
// @Failure      500 {object} respond.ErrorResponse "Internal error"
// @Failure      503 {object} respond.ErrorResponse "Database unavailable"
// @Router       /insert_article [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req InsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Responder.Fail(w, r, decodeError(err))
		return
	}
	if err := req.missing(); err != nil {
		h.Responder.Fail(w, r, err)
		return
	}

	id, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Name:            *req.Name,
		Description:     *req.Description,
		PublicationDate: *req.PublicationDate,
		Author:          *req.Author,
		SystemAgencyID:  *req.SystemAgencyID,
	})
	if err != nil {
		h.Responder.Fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, InsertResponse{Status: "inserted", IDArticle: id})
}

// missing reports the first absent field in column order.
func (req InsertRequest) missing() error {
	switch {
	case req.Name == nil:
		return required("name")
	case req.Description == nil:
		return required("description")
	case req.PublicationDate == nil:
		return required("publication_date")
	case req.Author == nil:
		return required("author")
	case req.SystemAgencyID == nil:
		return required("system_agency_id")
	}
	return nil
}

func required(field string) error {
	return &entity.ValidationError{Field: field, Message: "is required"}
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return &entity.ValidationError{Field: typeErr.Field, Message: "has the wrong type"}
	case errors.Is(err, io.EOF):
		return &entity.ValidationError{Field: "body", Message: "is required"}
	default:
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return &entity.ValidationError{Field: "body", Message: "is too large"}
		}
		return &entity.ValidationError{Field: "body", Message: "must be a JSON object"}
	}
}
