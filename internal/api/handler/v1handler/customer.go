package v1handler

import (
	"net/http"

	"qcscargo/internal/customer"
	"qcscargo/pkg/domain"
)

// RegisterRequest is the body of POST /customers.
type RegisterRequest struct {
	Name             string         `json:"name"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone"`
	PreferredChannel domain.Channel `json:"preferredChannel"`
	Destination      string         `json:"destination"`
}

// UpdateMeRequest is the body of PATCH /me. Omitted fields are unchanged.
type UpdateMeRequest struct {
	Name             *string         `json:"name"`
	Phone            *string         `json:"phone"`
	PreferredChannel *domain.Channel `json:"preferredChannel"`
	Destination      *string         `json:"destination"`
}

// VehicleRequest is the body of the fleet endpoints.
type VehicleRequest struct {
	Name         string   `json:"name"`
	CapacityKg   float64  `json:"capacityKg"`
	CapacityM3   float64  `json:"capacityM3"`
	ServiceAreas []string `json:"serviceAreas"`
	Active       *bool    `json:"active"`
}

func (v VehicleRequest) toDomain(id domain.VehicleID) domain.Vehicle {
	active := true
	if v.Active != nil {
		active = *v.Active
	}

	return domain.Vehicle{
		ID:           id,
		Name:         v.Name,
		CapacityKg:   v.CapacityKg,
		CapacityM3:   v.CapacityM3,
		ServiceAreas: v.ServiceAreas,
		Active:       active,
	}
}

// Register creates the profile of the caller.
func (h Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	c, err := h.deps.Customers.Register(r.Context(), mustPrincipal(r.Context()), customer.RegisterRequest{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		PreferredChannel: req.PreferredChannel,
		Destination:      req.Destination,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusCreated, c)
}

// Me returns the profile of the caller.
func (h Handler) Me(w http.ResponseWriter, r *http.Request) {
	c, err := h.deps.Customers.Me(r.Context(), mustPrincipal(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, c)
}

// UpdateMe changes the profile of the caller.
func (h Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req UpdateMeRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	c, err := h.deps.Customers.UpdateMe(r.Context(), mustPrincipal(r.Context()), customer.UpdateRequest{
		Name:             req.Name,
		Phone:            req.Phone,
		PreferredChannel: req.PreferredChannel,
		Destination:      req.Destination,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, c)
}

// ListCustomers pages through all customers.
func (h Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	customers, next, err := h.deps.Customers.List(r.Context(), r.URL.Query().Get("cursor"), limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, newList(customers, next))
}

// GetCustomer returns a customer by ID.
func (h Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.CustomerID](r, "customerID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	c, err := h.deps.Customers.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, c)
}

// ListVehicles lists the fleet. ?active=true hides retired vehicles.
func (h Handler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.deps.Customers.Vehicles(r.Context(), r.URL.Query().Get("active") == "true")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, newList(vehicles, ""))
}

// CreateVehicle adds a vehicle to the fleet.
func (h Handler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req VehicleRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	v, err := h.deps.Customers.CreateVehicle(r.Context(), req.toDomain(domain.VehicleID{}))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusCreated, v)
}

// UpdateVehicle replaces a vehicle.
func (h Handler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.VehicleID](r, "vehicleID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req VehicleRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	v, err := h.deps.Customers.UpdateVehicle(r.Context(), req.toDomain(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, v)
}
