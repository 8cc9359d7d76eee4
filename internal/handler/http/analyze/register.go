package analyze

import (
	"net/http"

	anaUC "textstats/internal/usecase/analyze"
)

// Register registers the analysis endpoint with the given mux.
// Other methods on /analyze get 405 from the mux.
func Register(mux *http.ServeMux, svc anaUC.Service) {
	mux.Handle("POST /analyze", Handler{Svc: svc})
}
