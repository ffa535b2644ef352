package httpx

import (
	"net/http"

	"github.com/stockworks/stockworks-api/internal/service"
)

// OrderWorksHandlers provides HTTP handlers for the synchronized OrderWorks job feed.
type OrderWorksHandlers struct {
	Svc *service.OrderWorksService
}

// Jobs handles HTTP requests to list OrderWorks jobs. An optional ?query=
// parameter applies a JMESPath projection over the job list; the projected
// result replaces the jobs array in the response.
func (h *OrderWorksHandlers) Jobs(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Svc.GetJobs(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}
