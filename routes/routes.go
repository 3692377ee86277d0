package routes

import (
	"net/http"
	"strings"

	"aerozone/handlers"
	"aerozone/logger"
)

type Handlers struct {
	Upload *handlers.UploadHandler
	Views  *handlers.ViewHandler
	Report *handlers.ReportHandler
	Health *handlers.HealthHandler
}

// CORS middleware. allowed is a comma separated origin list, "*" for any.
func withCORS(allowed string, next http.Handler) http.Handler {
	origins := map[string]bool{}
	anyOrigin := false
	for _, o := range strings.Split(allowed, ",") {
		o = strings.TrimSpace(o)
		if o == "*" {
			anyOrigin = true
		}
		if o != "" {
			origins[o] = true
		}
	}
	if len(origins) == 0 {
		anyOrigin = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if anyOrigin {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else if origin := r.Header.Get("Origin"); origins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, Content-Disposition")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SetupRoutes registers every endpoint, and its legacy alias, on a new mux
// wrapped in the middleware chain.
func SetupRoutes(h Handlers, allowedOrigins string, log *logger.Logger) http.Handler {
	mux := http.NewServeMux()

	handle := func(method string, fn http.HandlerFunc, paths ...string) {
		for _, p := range paths {
			mux.Handle(method+" "+p, fn)
		}
	}

	// Ingestion
	handle(http.MethodPost, h.Upload.Upload, "/upload", "/api/data/upload-excel")

	// Views
	handle(http.MethodGet, h.Views.Orders, "/orders")
	handle(http.MethodGet, h.Views.Indent, "/indent", "/api/data/get-indent")
	handle(http.MethodGet, h.Views.Merged, "/merged", "/api/data/get-data")
	handle(http.MethodGet, h.Views.Rollup, "/rollup", "/api/data/prism")
	handle(http.MethodGet, h.Views.GeoExport, "/geo-export", "/api/data/orbit")
	handle(http.MethodGet, h.Views.RateExport, "/rate-export", "/api/data/analysis")
	handle(http.MethodGet, h.Views.RateWorkbook, "/rate-export.xlsx")

	// Reports
	if h.Report != nil {
		handle(http.MethodGet, h.Report.RollupPDF, "/rollup/report.pdf")
	}

	if h.Health != nil {
		handle(http.MethodGet, h.Health.Health, "/healthz")
	}

	var handler http.Handler = mux
	handler = handlers.RecoverWrapper(log, handler)
	handler = withCORS(allowedOrigins, handler)
	handler = handlers.AccessLog(log, handler)
	handler = handlers.RequestID(handler)
	return handler
}
