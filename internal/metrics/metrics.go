package metrics

import (
	"fmt"
	"net/http"
	"time"

	vm "github.com/VictoriaMetrics/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

var (
	ConnectAttempts = vm.NewCounter("todoapp_db_connect_attempts_total")
	ConnectFailures = vm.NewCounter("todoapp_db_connect_failures_total")
)

var knownMethods = map[string]bool{
	http.MethodGet: true, http.MethodHead: true, http.MethodPost: true,
	http.MethodPut: true, http.MethodPatch: true, http.MethodDelete: true,
	http.MethodConnect: true, http.MethodOptions: true, http.MethodTrace: true,
}

// methodLabel maps non-standard method tokens to "other".
func methodLabel(m string) string {
	if knownMethods[m] {
		return m
	}
	return "other"
}

// Middleware counts requests and observes their duration, labelled by the
// chi route pattern so that ids in the path do not blow up cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		method := methodLabel(r.Method)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		vm.GetOrCreateCounter(fmt.Sprintf(`todoapp_http_requests_total{method=%q,route=%q,code="%d"}`,
			method, route, status)).Inc()
		vm.GetOrCreateHistogram(fmt.Sprintf(`todoapp_http_request_duration_seconds{method=%q,route=%q}`,
			method, route)).UpdateDuration(start)
	})
}

// Handler exposes all registered metrics in Prometheus text format.
func Handler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	vm.WritePrometheus(w, true)
}
