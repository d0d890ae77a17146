package http

import (
	"embed"
	"io/fs"
	"net/http"

	commonhttp "github.com/AlibekovAA/exercise-tracker/backend/internal/common/http"
)

//go:embed views/index.html
var landingPage []byte

//go:embed public
var publicFiles embed.FS

func staticHandler() http.Handler {
	sub, err := fs.Sub(publicFiles, "public")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/public/", http.FileServerFS(sub))
}

// landing serves the index page on "/" and answers every other unmatched path
// with a JSON 404.
func (h *Handler) landing(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		commonhttp.WriteErrorEnvelope(w, http.StatusNotFound, commonhttp.CodeNotFound, "not found", nil, commonhttp.TraceIDFromContext(r.Context()))
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "method not allowed", nil, commonhttp.TraceIDFromContext(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = w.Write(landingPage)
	}
}
