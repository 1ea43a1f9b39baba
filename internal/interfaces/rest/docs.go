package rest

import (
	"net/http"

	_ "github.com/DanielPopoola/ticketing-engine/internal/docs"
	"github.com/swaggo/swag"
)

// RegisterDocsRoutes exposes both API documents: the OpenAPI 3 file used for
// request validation and the swagger 2 document generated from handler
// annotations.
func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /openapi.yaml", ServeOpenAPI)
	mux.HandleFunc("GET /swagger/doc.json", serveSwagger)
}

func serveSwagger(w http.ResponseWriter, _ *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(doc))
}
