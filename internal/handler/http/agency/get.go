package agency

import (
	"net/http"

	"agency-articles/internal/handler/http/pathutil"
	"agency-articles/internal/handler/http/respond"
	agencyUC "agency-articles/internal/usecase/agency"
)

// IDParam is the query parameter carrying the system agency id.
const IDParam = "id_system_agency"

type GetHandler struct {
	Svc       agencyUC.Service
	Responder respond.Responder
}

// ServeHTTP fetches one system agency
// @Summary      Get system agency by id
// @Description  Returns the system agency with the given id.
// @Tags         system_agencies
// @Produce      json
// @Param        id_system_agency query int true "System agency id" minimum(1)
// @Success      200 {object} DTO
// @Failure      400 {object} respond.ErrorResponse "Missing or non-numeric id"
// @Failure      404 {object} respond.ErrorResponse "system agency not found"
// @Failure      500 {object} respond.ErrorResponse "Internal error"
// @Failure      503 {object} respond.ErrorResponse "Database unavailable"
// @Router       /get_system_agency_by_id [get]
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
