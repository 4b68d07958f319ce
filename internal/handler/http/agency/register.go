package agency

import (
	"net/http"

	"agency-articles/internal/handler/http/respond"
	agencyUC "agency-articles/internal/usecase/agency"
)

// Register registers the system agency handlers with the given mux.
func Register(mux *http.ServeMux, svc agencyUC.Service, rs respond.Responder) {
	mux.Handle("GET /list_system_agencies", ListHandler{Svc: svc, Responder: rs})
	mux.Handle("GET /get_system_agency_by_id", GetHandler{Svc: svc, Responder: rs})
}
