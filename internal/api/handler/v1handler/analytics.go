package v1handler

import (
	"net/http"

	"qcscargo/pkg/domain"
)

// MyAnalytics returns the dashboard figures of the caller since ?since.
func (h Handler) MyAnalytics(w http.ResponseWriter, r *http.Request) {
	h.analytics(w, r, nil)
}

// CustomerAnalytics returns the dashboard figures of any customer. Only
// admins may use it; the service enforces the role.
func (h Handler) CustomerAnalytics(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.CustomerID](r, "customerID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.analytics(w, r, &id)
}

func (h Handler) analytics(w http.ResponseWriter, r *http.Request, customerID *domain.CustomerID) {
	since, err := queryTime(r, "since")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	a, err := h.deps.Analytics.Customer(r.Context(), mustPrincipal(r.Context()), customerID, since)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, a)
}
