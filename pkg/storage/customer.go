package storage

import (
	"context"
	"time"

	"qcscargo/pkg/domain"
)

// CustomerUpdates lists the profile fields that can be changed. Nil fields are
// left untouched.
type CustomerUpdates struct {
	Name             *string
	Phone            *string
	PreferredChannel *domain.Channel
	Destination      *string
}

// CustomerStorage persists customer profiles.
type CustomerStorage interface {
	// CreateCustomer inserts a profile. The mailbox number is assigned by the
	// backend. A second profile for the same user fails with ErrDuplicate.
	CreateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)
	// UpdateCustomer applies updates and returns the updated row, or nil when
	// no customer has the given ID.
	UpdateCustomer(ctx context.Context, ID domain.CustomerID, updates CustomerUpdates) (*domain.Customer, error)
	CustomerByID(ctx context.Context, ID domain.CustomerID) (*domain.Customer, error)
	CustomerByUserID(ctx context.Context, userID domain.UserID) (*domain.Customer, error)
	// CustomerByMailbox looks a customer up by the mailbox number written on
	// inbound packages.
	CustomerByMailbox(ctx context.Context, mailbox string) (*domain.Customer, error)
	// Customers returns customers created before cursor, newest first.
	Customers(ctx context.Context, cursor time.Time, limit uint) (Page[domain.Customer], error)
}
