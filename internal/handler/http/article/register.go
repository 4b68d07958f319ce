package article

import (
	"net/http"

	"agency-articles/internal/handler/http/respond"
	artUC "agency-articles/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc artUC.Service, rs respond.Responder) {
	mux.Handle("POST /insert_article", CreateHandler{Svc: svc, Responder: rs})
	mux.Handle("GET /list_articles", ListHandler{Svc: svc, Responder: rs})
	mux.Handle("GET /get_article_by_id", GetHandler{Svc: svc, Responder: rs})
}
