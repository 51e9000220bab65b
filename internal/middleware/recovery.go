package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/2beens/fitbitdash/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery answers a panicking view with a 500 and counts it.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				log.WithFields(log.Fields{
					"route":  routeName(req),
					"method": req.Method,
					"query":  req.URL.RawQuery,
				}).Errorf("view panicked: %v\n%s", r, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				http.Error(
					respWriter,
					fmt.Sprintf("internal server error while serving %s", req.URL.Path),
					http.StatusInternalServerError,
				)
			}()

			next.ServeHTTP(respWriter, req)
		})
	}
}
