package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// parseID parses the canonical text form of an identifier.
func parseID(kind string, text []byte) (uuid.UUID, error) {
	id, err := uuid.ParseBytes(text)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s id %q: %w", kind, text, err)
	}

	return id, nil
}

// ParseUserID parses s as a UserID.
func ParseUserID(s string) (UserID, error) {
	id, err := parseID("user", []byte(s))

	return UserID(id), err
}

func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *UserID) UnmarshalText(text []byte) error {
	v, err := parseID("user", text)
	*id = UserID(v)

	return err
}

func (id CustomerID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *CustomerID) UnmarshalText(text []byte) error {
	v, err := parseID("customer", text)
	*id = CustomerID(v)

	return err
}

func (id VehicleID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *VehicleID) UnmarshalText(text []byte) error {
	v, err := parseID("vehicle", text)
	*id = VehicleID(v)

	return err
}

func (id BookingID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *BookingID) UnmarshalText(text []byte) error {
	v, err := parseID("booking", text)
	*id = BookingID(v)

	return err
}

func (id QuoteID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *QuoteID) UnmarshalText(text []byte) error {
	v, err := parseID("quote", text)
	*id = QuoteID(v)

	return err
}

func (id PackageID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *PackageID) UnmarshalText(text []byte) error {
	v, err := parseID("package", text)
	*id = PackageID(v)

	return err
}

func (id DocumentID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *DocumentID) UnmarshalText(text []byte) error {
	v, err := parseID("document", text)
	*id = DocumentID(v)

	return err
}

func (id PostID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *PostID) UnmarshalText(text []byte) error {
	v, err := parseID("post", text)
	*id = PostID(v)

	return err
}
