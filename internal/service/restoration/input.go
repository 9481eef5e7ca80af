package restoration

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/restoration-backend/internal/domain"
)

// CreateInput holds the parameters for opening a restoration case.
type CreateInput struct {
	OrderRef      string
	SKU           string
	CustomerEmail *string
	Notes         *string
	LocalPickup   bool
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	orderRef := strings.TrimSpace(i.OrderRef)
	if orderRef == "" {
		errs = append(errs, domain.FieldError{Field: "order_ref", Message: "required"})
	}
	if len(orderRef) > domain.MaxOrderRefLen {
		errs = append(errs, domain.FieldError{Field: "order_ref", Message: "max 64 characters"})
	}

	sku := strings.TrimSpace(i.SKU)
	if sku == "" {
		errs = append(errs, domain.FieldError{Field: "sku", Message: "required"})
	}
	if len(sku) > domain.MaxSKULen {
		errs = append(errs, domain.FieldError{Field: "sku", Message: "max 64 characters"})
	}

	if i.CustomerEmail != nil {
		email := strings.TrimSpace(*i.CustomerEmail)
		if len(email) > domain.MaxCustomerEmailLen {
			errs = append(errs, domain.FieldError{Field: "customer_email", Message: "max 254 characters"})
		} else if email != "" && !strings.Contains(email, "@") {
			errs = append(errs, domain.FieldError{Field: "customer_email", Message: "invalid email"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput is a PATCH-style mutation of one item. Transition carries at
// most one status move; every other pointer field is left untouched when nil.
type UpdateInput struct {
	ID         uuid.UUID
	Transition domain.Transition // nil = fields only

	DamageReason       *domain.DamageReason
	TagNumbers         *[]string
	MagnetNumber       *string // legacy single tag; ignored when TagNumbers is set
	Notes              *string // ptr("") = clear
	CancellationReason *string // ptr("") = clear
	Photos             *[]string
	ResolvedAt         *time.Time // zero time = clear
	LocalPickup        *bool
}

// hasFields reports whether the input carries any non-status field.
func (i UpdateInput) hasFields() bool {
	return i.DamageReason != nil || i.TagNumbers != nil || i.MagnetNumber != nil ||
		i.Notes != nil || i.CancellationReason != nil || i.Photos != nil ||
		i.ResolvedAt != nil || i.LocalPickup != nil
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	switch t := i.Transition.(type) {
	case nil:
		if !i.hasFields() {
			errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
		}
	case domain.StatusChange:
		if !t.To.IsValid() {
			errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
		}
	case domain.DamageAction:
		if !t.IsValid() {
			errs = append(errs, domain.FieldError{Field: "action", Message: "unknown action"})
		}
	}

	if i.DamageReason != nil && !i.DamageReason.IsValid() {
		errs = append(errs, domain.FieldError{Field: "damage_reason", Message: "unknown damage reason"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds board listing parameters.
type ListInput struct {
	Statuses        []string
	IncludeArchived bool
	Limit           int
	Offset          int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	for _, s := range i.Statuses {
		if !domain.RestorationStatus(s).IsValid() {
			errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status: " + s})
		}
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PhotoUploadInput requests a presigned upload slot for one photo.
type PhotoUploadInput struct {
	ID          uuid.UUID
	ContentType string
}

var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/heic": ".heic",
}

// Validate checks all fields and collects all errors.
func (i PhotoUploadInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if _, ok := photoExtensions[i.ContentType]; !ok {
		errs = append(errs, domain.FieldError{Field: "content_type", Message: "must be one of image/jpeg, image/png, image/webp, image/heic"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
