package v1handler

import (
	"net/http"

	"qcscargo/internal/intake"
	"qcscargo/pkg/domain"
)

// ReceivePackageRequest is the body of POST /admin/packages.
type ReceivePackageRequest struct {
	MailboxNumber  string `json:"mailboxNumber"`
	TrackingNumber string `json:"trackingNumber"`
	// Carrier overrides the carrier detected from the tracking number.
	Carrier     domain.Carrier `json:"carrier"`
	Description string         `json:"description"`
	WeightKg    float64        `json:"weightKg"`
	LengthCm    float64        `json:"lengthCm"`
	WidthCm     float64        `json:"widthCm"`
	HeightCm    float64        `json:"heightCm"`
	Notes       string         `json:"notes"`
}

// PackageStatusRequest is the body of PATCH /admin/packages/{id}/status.
type PackageStatusRequest struct {
	Status domain.PackageStatus `json:"status"`
	Notes  *string              `json:"notes"`
}

// ReceivePackage records a package arriving at the warehouse.
func (h Handler) ReceivePackage(w http.ResponseWriter, r *http.Request) {
	var req ReceivePackageRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	p, err := h.deps.Intake.Receive(r.Context(), mustPrincipal(r.Context()), intake.ReceiveRequest{
		MailboxNumber:  req.MailboxNumber,
		TrackingNumber: req.TrackingNumber,
		Carrier:        req.Carrier,
		Description:    req.Description,
		WeightKg:       req.WeightKg,
		LengthCm:       req.LengthCm,
		WidthCm:        req.WidthCm,
		HeightCm:       req.HeightCm,
		Notes:          req.Notes,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusCreated, p)
}

// UpdatePackageStatus moves a package through its lifecycle.
func (h Handler) UpdatePackageStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.PackageID](r, "packageID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req PackageStatusRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	p, err := h.deps.Intake.UpdateStatus(r.Context(), id, intake.StatusRequest{Status: req.Status, Notes: req.Notes})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, p)
}

// GetPackage returns a package by ID.
func (h Handler) GetPackage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.PackageID](r, "packageID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	p, err := h.deps.Intake.Get(r.Context(), mustPrincipal(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, p)
}

// ListPackages pages through packages. Customers only see their own; staff
// may filter by ?customerId.
func (h Handler) ListPackages(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	customerID, err := queryID[domain.CustomerID](r, "customerId")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	packages, next, err := h.deps.Intake.List(r.Context(), mustPrincipal(r.Context()), intake.ListFilter{
		CustomerID: customerID,
		Status:     domain.PackageStatus(r.URL.Query().Get("status")),
		Cursor:     r.URL.Query().Get("cursor"),
		Limit:      limit,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, newList(packages, next))
}
