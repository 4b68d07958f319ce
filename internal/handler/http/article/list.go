package article

import (
	"net/http"

	"agency-articles/internal/handler/http/respond"
	artUC "agency-articles/internal/usecase/article"
)

type ListHandler struct {
	Svc       artUC.Service
	Responder respond.Responder
}

// ServeHTTP lists articles
// @Summary      List articles
// @Description  Returns every article ordered by id. An empty table yields [].
// @Tags         articles
// @Produce      json
// @Success      200 {array}  DTO
// @Failure      500 {object} respond.ErrorResponse "Internal error"
// @Failure      503 {object} respond.ErrorResponse "Database unavailable"
// @Router       /list_articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		h.Responder.Fail(w, r, err)
		return
	}

	out := make([]DTO, 0, len(list))
	for _, a := range list {
		out = append(out, toDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}
