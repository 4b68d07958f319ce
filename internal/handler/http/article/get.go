package article

import (
	"net/http"

	"agency-articles/internal/handler/http/pathutil"
	"agency-articles/internal/handler/http/respond"
	artUC "agency-articles/internal/usecase/article"
)

// IDParam is the query parameter carrying the article id.
const IDParam = "id_article"

type GetHandler struct {
	Svc       artUC.Service
	Responder respond.Responder
}

// ServeHTTP fetches one article
// @Summary      Get article by id
// @Description  Returns the article with the given id.
// @Tags         articles
// @Produce      json
// @Param        id_article query int true "Article id" minimum(1)
// @Success      200 {object} DTO
// @Failure      400 {object} respond.ErrorResponse "Missing or non-numeric id"
// @Failure      404 {object} respond.ErrorResponse "article not found"
// @Failure      500 {object} respond.ErrorResponse "Internal error"
// @Failure      503 {object} respond.ErrorResponse "Database unavailable"
// @Router       /get_article_by_id [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.QueryID(r, IDParam)
	if err != nil {
		h.Responder.Fail(w, r, err)
		return
	}

	a, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		h.Responder.Fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(a))
}
