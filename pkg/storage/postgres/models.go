package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"qcscargo/pkg/domain"
	"qcscargo/pkg/storage"

	"github.com/google/uuid"
)

// model is implemented by the row types of this package.
type model[T any, M any] interface {
	*M
	ToDomain() (*T, error)
	cursor() time.Time
}

func toDomain[T any, M any, PM model[T, M]](rows []M) ([]T, error) {
	out := make([]T, 0, len(rows))
	for i := range rows {
		d, err := PM(&rows[i]).ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

// paginate converts rows fetched with limit+1 into a page, deriving the next
// cursor from the last row kept.
func paginate[T any, M any, PM model[T, M]](rows []M, limit uint) (storage.Page[T], error) {
	var nextCursor *time.Time
	if limit > 0 && uint(len(rows)) > limit {
		rows = rows[:limit]
		c := PM(&rows[len(rows)-1]).cursor()
		nextCursor = &c
	}

	items, err := toDomain[T, M, PM](rows)
	if err != nil {
		return storage.Page[T]{}, err
	}

	return storage.Page[T]{Items: items, NextCursor: nextCursor}, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil || t.IsZero() {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}

	return &t.Time
}

func marshalJSON(v any, what string) (json.RawMessage, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("could not marshal %s: %w", what, err)
	}

	return b, nil
}

func unmarshalJSON(b json.RawMessage, v any, what string) error {
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("could not unmarshal %s: %w", what, err)
	}

	return nil
}

type PgCustomer struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Name             string         `db:"name"`
	Email            string         `db:"email"`
	Phone            sql.NullString `db:"phone"`
	MailboxNumber    string         `db:"mailbox_number"    goqu:"skipinsert"`
	PreferredChannel string         `db:"preferred_channel"`
	Destination      sql.NullString `db:"destination"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgCustomer) ToDomain() (*domain.Customer, error) {
	return &domain.Customer{
		ID:               domain.CustomerID(p.ID),
		UserID:           domain.UserID(p.UserID),
		Name:             p.Name,
		Email:            p.Email,
		Phone:            p.Phone.String,
		MailboxNumber:    p.MailboxNumber,
		PreferredChannel: domain.Channel(p.PreferredChannel),
		Destination:      p.Destination.String,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}, nil
}

func (p *PgCustomer) cursor() time.Time { return p.CreatedAt }

func (p *PgCustomer) FromDomain(c domain.Customer) {
	*p = PgCustomer{
		ID:               uuid.UUID(c.ID),
		UserID:           uuid.UUID(c.UserID),
		Name:             c.Name,
		Email:            c.Email,
		Phone:            nullString(c.Phone),
		PreferredChannel: string(c.PreferredChannel),
		Destination:      nullString(c.Destination),
	}
}

type PgVehicle struct {
	ID   uuid.UUID `db:"id"   goqu:"skipinsert"`
	Name string    `db:"name"`

	CapacityKg   float64         `db:"capacity_kg"`
	CapacityM3   float64         `db:"capacity_m3"`
	ServiceAreas json.RawMessage `db:"service_areas"`
	Active       bool            `db:"active"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgVehicle) ToDomain() (*domain.Vehicle, error) {
	areas := []string{}
	if err := unmarshalJSON(p.ServiceAreas, &areas, "service areas"); err != nil {
		return nil, err
	}

	return &domain.Vehicle{
		ID:           domain.VehicleID(p.ID),
		Name:         p.Name,
		CapacityKg:   p.CapacityKg,
		CapacityM3:   p.CapacityM3,
		ServiceAreas: areas,
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
	}, nil
}

func (p *PgVehicle) cursor() time.Time { return p.CreatedAt }

func (p *PgVehicle) FromDomain(v domain.Vehicle) error {
	areas := v.ServiceAreas
	if areas == nil {
		areas = []string{}
	}
	b, err := marshalJSON(areas, "service areas")
	if err != nil {
		return err
	}

	*p = PgVehicle{
		ID:           uuid.UUID(v.ID),
		Name:         v.Name,
		CapacityKg:   v.CapacityKg,
		CapacityM3:   v.CapacityM3,
		ServiceAreas: b,
		Active:       v.Active,
	}

	return nil
}

type PgBooking struct {
	ID         uuid.UUID `db:"id"          goqu:"skipinsert"`
	CustomerID uuid.UUID `db:"customer_id"`
	VehicleID  uuid.UUID `db:"vehicle_id"`

	Reference      string `db:"reference"`
	IdempotencyKey string `db:"idempotency_key"`
	Fingerprint    string `db:"fingerprint"`

	WindowStart time.Time       `db:"window_start"`
	WindowEnd   time.Time       `db:"window_end"`
	Pickup      json.RawMessage `db:"pickup"`
	PostalCode  string          `db:"postal_code"`
	WeightKg    float64         `db:"weight_kg"`
	VolumeM3    float64         `db:"volume_m3"`
	Pieces      int             `db:"pieces"`
	Notes       sql.NullString  `db:"notes"`
	Status      string          `db:"status"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgBooking) ToDomain() (*domain.Booking, error) {
	var pickup domain.Address
	if err := unmarshalJSON(p.Pickup, &pickup, "pickup address"); err != nil {
		return nil, err
	}

	return &domain.Booking{
		ID:             domain.BookingID(p.ID),
		CustomerID:     domain.CustomerID(p.CustomerID),
		VehicleID:      domain.VehicleID(p.VehicleID),
		Reference:      p.Reference,
		IdempotencyKey: p.IdempotencyKey,
		Fingerprint:    p.Fingerprint,
		Window:         domain.TimeWindow{Start: p.WindowStart, End: p.WindowEnd},
		Pickup:         pickup,
		WeightKg:       p.WeightKg,
		VolumeM3:       p.VolumeM3,
		Pieces:         p.Pieces,
		Notes:          p.Notes.String,
		Status:         domain.BookingStatus(p.Status),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}, nil
}

func (p *PgBooking) cursor() time.Time { return p.CreatedAt }

func (p *PgBooking) FromDomain(b domain.Booking) error {
	pickup, err := marshalJSON(b.Pickup, "pickup address")
	if err != nil {
		return err
	}

	*p = PgBooking{
		ID:             uuid.UUID(b.ID),
		CustomerID:     uuid.UUID(b.CustomerID),
		VehicleID:      uuid.UUID(b.VehicleID),
		Reference:      b.Reference,
		IdempotencyKey: b.IdempotencyKey,
		Fingerprint:    b.Fingerprint,
		WindowStart:    b.Window.Start,
		WindowEnd:      b.Window.End,
		Pickup:         pickup,
		PostalCode:     b.Pickup.PostalCode,
		WeightKg:       b.WeightKg,
		VolumeM3:       b.VolumeM3,
		Pieces:         b.Pieces,
		Notes:          nullString(b.Notes),
		Status:         string(b.Status),
	}

	return nil
}

type PgShippingRate struct {
	Destination    string    `db:"destination"`
	ServiceLevel   string    `db:"service_level"`
	RatePerKgCents int64     `db:"rate_per_kg_cents"`
	MinimumCents   int64     `db:"minimum_cents"`
	TransitDaysMin int       `db:"transit_days_min"`
	TransitDaysMax int       `db:"transit_days_max"`
	UpdatedAt      time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgShippingRate) ToDomain() (*domain.ShippingRate, error) {
	return &domain.ShippingRate{
		Destination:    p.Destination,
		ServiceLevel:   domain.ServiceLevel(p.ServiceLevel),
		RatePerKgCents: p.RatePerKgCents,
		MinimumCents:   p.MinimumCents,
		TransitDaysMin: p.TransitDaysMin,
		TransitDaysMax: p.TransitDaysMax,
		UpdatedAt:      p.UpdatedAt,
	}, nil
}

func (p *PgShippingRate) cursor() time.Time { return p.UpdatedAt }

func (p *PgShippingRate) FromDomain(r domain.ShippingRate) {
	*p = PgShippingRate{
		Destination:    r.Destination,
		ServiceLevel:   string(r.ServiceLevel),
		RatePerKgCents: r.RatePerKgCents,
		MinimumCents:   r.MinimumCents,
		TransitDaysMin: r.TransitDaysMin,
		TransitDaysMax: r.TransitDaysMax,
	}
}

type PgQuote struct {
	ID         uuid.UUID     `db:"id"          goqu:"skipinsert"`
	CustomerID uuid.NullUUID `db:"customer_id"`

	Name         string          `db:"name"`
	Email        string          `db:"email"`
	Origin       string          `db:"origin"`
	Destination  string          `db:"destination"`
	ServiceLevel string          `db:"service_level"`
	Pieces       json.RawMessage `db:"pieces"`

	DeclaredValueCents int64 `db:"declared_value_cents"`
	Insured            bool  `db:"insured"`

	ActualWeightKg     float64         `db:"actual_weight_kg"`
	VolumetricWeightKg float64         `db:"volumetric_weight_kg"`
	ChargeableWeightKg float64         `db:"chargeable_weight_kg"`
	Lines              json.RawMessage `db:"lines"`
	TotalCents         int64           `db:"total_cents"`
	Currency           string          `db:"currency"`
	TransitDaysMin     int             `db:"transit_days_min"`
	TransitDaysMax     int             `db:"transit_days_max"`

	Status    string    `db:"status"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgQuote) ToDomain() (*domain.Quote, error) {
	var pieces []domain.Piece
	if err := unmarshalJSON(p.Pieces, &pieces, "quote pieces"); err != nil {
		return nil, err
	}
	var lines []domain.QuoteLine
	if err := unmarshalJSON(p.Lines, &lines, "quote lines"); err != nil {
		return nil, err
	}

	var customerID *domain.CustomerID
	if p.CustomerID.Valid {
		id := domain.CustomerID(p.CustomerID.UUID)
		customerID = &id
	}

	return &domain.Quote{
		ID:                 domain.QuoteID(p.ID),
		CustomerID:         customerID,
		Name:               p.Name,
		Email:              p.Email,
		Origin:             p.Origin,
		Destination:        p.Destination,
		ServiceLevel:       domain.ServiceLevel(p.ServiceLevel),
		Pieces:             pieces,
		DeclaredValueCents: p.DeclaredValueCents,
		Insured:            p.Insured,
		ActualWeightKg:     p.ActualWeightKg,
		VolumetricWeightKg: p.VolumetricWeightKg,
		ChargeableWeightKg: p.ChargeableWeightKg,
		Lines:              lines,
		TotalCents:         p.TotalCents,
		Currency:           p.Currency,
		TransitDaysMin:     p.TransitDaysMin,
		TransitDaysMax:     p.TransitDaysMax,
		Status:             domain.QuoteStatus(p.Status),
		ExpiresAt:          p.ExpiresAt,
		CreatedAt:          p.CreatedAt,
	}, nil
}

func (p *PgQuote) cursor() time.Time { return p.CreatedAt }

func (p *PgQuote) FromDomain(q domain.Quote) error {
	pieces, err := marshalJSON(q.Pieces, "quote pieces")
	if err != nil {
		return err
	}
	lines, err := marshalJSON(q.Lines, "quote lines")
	if err != nil {
		return err
	}

	var customerID uuid.NullUUID
	if q.CustomerID != nil {
		customerID = uuid.NullUUID{UUID: uuid.UUID(*q.CustomerID), Valid: true}
	}

	*p = PgQuote{
		ID:                 uuid.UUID(q.ID),
		CustomerID:         customerID,
		Name:               q.Name,
		Email:              q.Email,
		Origin:             q.Origin,
		Destination:        q.Destination,
		ServiceLevel:       string(q.ServiceLevel),
		Pieces:             pieces,
		DeclaredValueCents: q.DeclaredValueCents,
		Insured:            q.Insured,
		ActualWeightKg:     q.ActualWeightKg,
		VolumetricWeightKg: q.VolumetricWeightKg,
		ChargeableWeightKg: q.ChargeableWeightKg,
		Lines:              lines,
		TotalCents:         q.TotalCents,
		Currency:           q.Currency,
		TransitDaysMin:     q.TransitDaysMin,
		TransitDaysMax:     q.TransitDaysMax,
		Status:             string(q.Status),
		ExpiresAt:          q.ExpiresAt,
	}

	return nil
}

type PgPackage struct {
	ID         uuid.UUID `db:"id"          goqu:"skipinsert"`
	CustomerID uuid.UUID `db:"customer_id"`

	TrackingNumber string         `db:"tracking_number"`
	Carrier        string         `db:"carrier"`
	Description    sql.NullString `db:"description"`
	WeightKg       float64        `db:"weight_kg"`
	LengthCm       float64        `db:"length_cm"`
	WidthCm        float64        `db:"width_cm"`
	HeightCm       float64        `db:"height_cm"`
	Status         string         `db:"status"`
	Notes          sql.NullString `db:"notes"`

	ReceivedBy uuid.UUID `db:"received_by"`
	ReceivedAt time.Time `db:"received_at" goqu:"skipinsert"`
	UpdatedAt  time.Time `db:"updated_at"  goqu:"skipinsert"`
}

func (p *PgPackage) ToDomain() (*domain.Package, error) {
	return &domain.Package{
		ID:             domain.PackageID(p.ID),
		CustomerID:     domain.CustomerID(p.CustomerID),
		TrackingNumber: p.TrackingNumber,
		Carrier:        domain.Carrier(p.Carrier),
		Description:    p.Description.String,
		WeightKg:       p.WeightKg,
		LengthCm:       p.LengthCm,
		WidthCm:        p.WidthCm,
		HeightCm:       p.HeightCm,
		Status:         domain.PackageStatus(p.Status),
		Notes:          p.Notes.String,
		ReceivedBy:     domain.UserID(p.ReceivedBy),
		ReceivedAt:     p.ReceivedAt,
		UpdatedAt:      p.UpdatedAt,
	}, nil
}

func (p *PgPackage) cursor() time.Time { return p.ReceivedAt }

func (p *PgPackage) FromDomain(pkg domain.Package) {
	*p = PgPackage{
		ID:             uuid.UUID(pkg.ID),
		CustomerID:     uuid.UUID(pkg.CustomerID),
		TrackingNumber: pkg.TrackingNumber,
		Carrier:        string(pkg.Carrier),
		Description:    nullString(pkg.Description),
		WeightKg:       pkg.WeightKg,
		LengthCm:       pkg.LengthCm,
		WidthCm:        pkg.WidthCm,
		HeightCm:       pkg.HeightCm,
		Status:         string(pkg.Status),
		Notes:          nullString(pkg.Notes),
		ReceivedBy:     uuid.UUID(pkg.ReceivedBy),
	}
}

type PgDocument struct {
	ID         uuid.UUID     `db:"id"          goqu:"skipinsert"`
	CustomerID uuid.UUID     `db:"customer_id"`
	PackageID  uuid.NullUUID `db:"package_id"`
	Kind       string        `db:"kind"`

	FileName    string `db:"file_name"`
	ContentType string `db:"content_type"`
	SizeBytes   int64  `db:"size_bytes"`
	ObjectKey   string `db:"object_key"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgDocument) ToDomain() (*domain.Document, error) {
	var packageID *domain.PackageID
	if p.PackageID.Valid {
		id := domain.PackageID(p.PackageID.UUID)
		packageID = &id
	}

	return &domain.Document{
		ID:          domain.DocumentID(p.ID),
		CustomerID:  domain.CustomerID(p.CustomerID),
		PackageID:   packageID,
		Kind:        domain.DocumentKind(p.Kind),
		FileName:    p.FileName,
		ContentType: p.ContentType,
		SizeBytes:   p.SizeBytes,
		ObjectKey:   p.ObjectKey,
		CreatedAt:   p.CreatedAt,
	}, nil
}

func (p *PgDocument) cursor() time.Time { return p.CreatedAt }

func (p *PgDocument) FromDomain(d domain.Document) {
	var packageID uuid.NullUUID
	if d.PackageID != nil {
		packageID = uuid.NullUUID{UUID: uuid.UUID(*d.PackageID), Valid: true}
	}

	*p = PgDocument{
		ID:          uuid.UUID(d.ID),
		CustomerID:  uuid.UUID(d.CustomerID),
		PackageID:   packageID,
		Kind:        string(d.Kind),
		FileName:    d.FileName,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		ObjectKey:   d.ObjectKey,
	}
}

type PgPost struct {
	ID       uuid.UUID `db:"id"        goqu:"skipinsert"`
	AuthorID uuid.UUID `db:"author_id"`

	Slug            string          `db:"slug"`
	Title           string          `db:"title"`
	Excerpt         sql.NullString  `db:"excerpt"`
	MetaDescription sql.NullString  `db:"meta_description"`
	FocusKeyword    sql.NullString  `db:"focus_keyword"`
	Tags            json.RawMessage `db:"tags"`
	CoverImageURL   sql.NullString  `db:"cover_image_url"`

	Markdown string `db:"markdown"`
	HTML     string `db:"html"`
	SEOScore int    `db:"seo_score"`

	Status      string       `db:"status"`
	PublishedAt sql.NullTime `db:"published_at"`
	CreatedAt   time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt   time.Time    `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgPost) ToDomain() (*domain.Post, error) {
	tags := []string{}
	if err := unmarshalJSON(p.Tags, &tags, "post tags"); err != nil {
		return nil, err
	}

	return &domain.Post{
		ID:              domain.PostID(p.ID),
		AuthorID:        domain.UserID(p.AuthorID),
		Slug:            p.Slug,
		Title:           p.Title,
		Excerpt:         p.Excerpt.String,
		MetaDescription: p.MetaDescription.String,
		FocusKeyword:    p.FocusKeyword.String,
		Tags:            tags,
		CoverImageURL:   p.CoverImageURL.String,
		Markdown:        p.Markdown,
		HTML:            p.HTML,
		SEOScore:        p.SEOScore,
		Status:          domain.PostStatus(p.Status),
		PublishedAt:     timePtr(p.PublishedAt),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}, nil
}

func (p *PgPost) cursor() time.Time { return p.CreatedAt }

func (p *PgPost) FromDomain(post domain.Post) error {
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}
	b, err := marshalJSON(tags, "post tags")
	if err != nil {
		return err
	}

	*p = PgPost{
		ID:              uuid.UUID(post.ID),
		AuthorID:        uuid.UUID(post.AuthorID),
		Slug:            post.Slug,
		Title:           post.Title,
		Excerpt:         nullString(post.Excerpt),
		MetaDescription: nullString(post.MetaDescription),
		FocusKeyword:    nullString(post.FocusKeyword),
		Tags:            b,
		CoverImageURL:   nullString(post.CoverImageURL),
		Markdown:        post.Markdown,
		HTML:            post.HTML,
		SEOScore:        post.SEOScore,
		Status:          string(post.Status),
		PublishedAt:     nullTime(post.PublishedAt),
	}

	return nil
}
