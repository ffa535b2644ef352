package httpx

import "net/http"

var healthBody = []byte(`{"status":"ok"}`)

// healthHandler answers liveness and readiness probes. It reports nothing
// about downstream dependencies; the process being up is the signal.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	_, _ = w.Write(healthBody)
}
