package agency

import (
	"net/http"

	"agency-articles/internal/handler/http/respond"
	agencyUC "agency-articles/internal/usecase/agency"
)

type ListHandler struct {
	Svc       agencyUC.Service
	Responder respond.Responder
}

// ServeHTTP lists system agencies
// @Summary      List system agencies
// @Description  Returns every system agency ordered by id. An empty table yields [].
// @Tags         system_agencies
// @Produce      json
// @Success      200 {array}  DTO
// @Failure      500 {object} respond.ErrorResponse "Internal error"
// @Failure      503 {object} respond.ErrorResponse "Database unavailable"
// @Router       /list_system_agencies [get]
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
