package v1handler

import (
	"net/http"
	"strconv"

	"qcscargo/internal/quote"
	"qcscargo/pkg/domain"
)

// QuoteRequest is the body of POST /quotes.
type QuoteRequest struct {
	Name               string              `json:"name"`
	Email              string              `json:"email"`
	Destination        string              `json:"destination"`
	ServiceLevel       domain.ServiceLevel `json:"serviceLevel"`
	Pieces             []domain.Piece      `json:"pieces"`
	DeclaredValueCents int64               `json:"declaredValueCents"`
	Insured            bool                `json:"insured"`
}

// CreateQuote prices a shipment. Anonymous callers must give a name and an
// e-mail address; signed-in customers default to their profile.
func (h Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	q, err := h.deps.Quotes.Create(r.Context(), principalOrNil(r.Context()), quote.Request{
		Name:               req.Name,
		Email:              req.Email,
		Destination:        req.Destination,
		ServiceLevel:       req.ServiceLevel,
		Pieces:             req.Pieces,
		DeclaredValueCents: req.DeclaredValueCents,
		Insured:            req.Insured,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusCreated, q)
}

// GetQuote returns a quote by ID.
func (h Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.QuoteID](r, "quoteID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	q, err := h.deps.Quotes.Get(r.Context(), principalOrNil(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, q)
}

// GetQuotePDF downloads the PDF of a quote.
func (h Handler) GetQuotePDF(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.QuoteID](r, "quoteID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	pdf, err := h.deps.Quotes.PDF(r.Context(), principalOrNil(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.Header().Set("Content-Disposition", attachment(quote.PDFFileName(domain.Quote{ID: id})))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// AcceptQuote accepts an issued quote.
func (h Handler) AcceptQuote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.QuoteID](r, "quoteID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	q, err := h.deps.Quotes.Accept(r.Context(), mustPrincipal(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, q)
}

// ListRates returns the published tariff.
func (h Handler) ListRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.deps.Quotes.Rates(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, newList(rates, ""))
}

// UpsertRate creates or replaces the rate of a destination and service level.
func (h Handler) UpsertRate(w http.ResponseWriter, r *http.Request) {
	var rate domain.ShippingRate
	if err := h.decodeJSON(w, r, &rate); err != nil {
		h.writeError(w, r, err)

		return
	}

	saved, err := h.deps.Quotes.UpsertRate(r.Context(), rate)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, saved)
}
