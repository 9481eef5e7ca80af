package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RestorationItem is one return/repair case moving through the pipeline.
type RestorationItem struct {
	ID            uuid.UUID
	Status        RestorationStatus
	OrderRef      string
	SKU           string
	CustomerEmail *string

	TagNumbers   []string
	MagnetNumber *string

	InitiatedAt            *time.Time
	LabelSentAt            *time.Time
	CustomerShippedAt      *time.Time
	DeliveredToWarehouseAt *time.Time
	ReceivedAt             *time.Time
	SentToRestorationAt    *time.Time
	BackFromRestorationAt  *time.Time
	ShippedAt              *time.Time
	DeliveredAt            *time.Time
	CancelledAt            *time.Time
	DamagedAt              *time.Time
	PendingTrashAt         *time.Time
	TrashedAt              *time.Time

	DamageReason       *DamageReason
	WasDamaged         bool
	ResolvedAt         *time.Time
	LocalPickup        bool
	Notes              *string
	CancellationReason *string
	Photos             []string

	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Timestamp returns the value of the named timestamp column.
func (r *RestorationItem) Timestamp(f TimestampField) *time.Time {
	if p := r.timestampPtr(f); p != nil {
		return *p
	}
	return nil
}

// SetTimestamp assigns the named timestamp column. Unknown fields are ignored.
func (r *RestorationItem) SetTimestamp(f TimestampField, v *time.Time) {
	if p := r.timestampPtr(f); p != nil {
		*p = v
	}
}

func (r *RestorationItem) timestampPtr(f TimestampField) **time.Time {
	switch f {
	case FieldInitiatedAt:
		return &r.InitiatedAt
	case FieldLabelSentAt:
		return &r.LabelSentAt
	case FieldCustomerShippedAt:
		return &r.CustomerShippedAt
	case FieldDeliveredToWarehouseAt:
		return &r.DeliveredToWarehouseAt
	case FieldReceivedAt:
		return &r.ReceivedAt
	case FieldSentToRestorationAt:
		return &r.SentToRestorationAt
	case FieldBackFromRestorationAt:
		return &r.BackFromRestorationAt
	case FieldShippedAt:
		return &r.ShippedAt
	case FieldDeliveredAt:
		return &r.DeliveredAt
	case FieldCancelledAt:
		return &r.CancelledAt
	case FieldDamagedAt:
		return &r.DamagedAt
	case FieldPendingTrashAt:
		return &r.PendingTrashAt
	case FieldTrashedAt:
		return &r.TrashedAt
	case FieldResolvedAt:
		return &r.ResolvedAt
	case FieldArchivedAt:
		return &r.ArchivedAt
	}
	return nil
}

// RestorationEvent is an append-only audit row for a restoration item.
type RestorationEvent struct {
	ID             uuid.UUID
	RestorationID  uuid.UUID
	EventType      EventType
	EventTimestamp time.Time
	EventData      json.RawMessage
	Source         string
	Actor          string
}

// Transition is the closed set of status moves a mutation may request:
// StatusChange or DamageAction. A nil Transition means a fields-only update.
type Transition interface {
	isTransition()
}

// StatusChange requests a plain move to a target status.
type StatusChange struct {
	To RestorationStatus
}

func (StatusChange) isTransition() {}

// RestorationUpdate is a field delta for a conditional write. Nil pointers are
// left untouched. A Times entry with a nil value clears that column.
type RestorationUpdate struct {
	Status             *RestorationStatus
	Times              map[TimestampField]*time.Time
	DamageReason       *DamageReason
	WasDamaged         *bool
	TagNumbers         *[]string
	Notes              *string
	CancellationReason *string
	Photos             *[]string
	LocalPickup        *bool
}

// SetTime stamps a timestamp column.
func (u *RestorationUpdate) SetTime(f TimestampField, t time.Time) {
	if u.Times == nil {
		u.Times = make(map[TimestampField]*time.Time)
	}
	u.Times[f] = &t
}

// ClearTime nulls a timestamp column.
func (u *RestorationUpdate) ClearTime(f TimestampField) {
	if u.Times == nil {
		u.Times = make(map[TimestampField]*time.Time)
	}
	u.Times[f] = nil
}

// IsEmpty reports whether the update would change nothing besides updated_at.
func (u *RestorationUpdate) IsEmpty() bool {
	return u.Status == nil && len(u.Times) == 0 && u.DamageReason == nil && u.WasDamaged == nil &&
		u.TagNumbers == nil && u.Notes == nil && u.CancellationReason == nil &&
		u.Photos == nil && u.LocalPickup == nil
}

// Apply returns a copy of item with the update applied. MagnetNumber follows
// the first tag.
func (u *RestorationUpdate) Apply(item RestorationItem) RestorationItem {
	out := item
	if u.Status != nil {
		out.Status = *u.Status
	}
	for f, v := range u.Times {
		out.SetTimestamp(f, v)
	}
	if u.DamageReason != nil {
		out.DamageReason = u.DamageReason
	}
	if u.WasDamaged != nil {
		out.WasDamaged = *u.WasDamaged
	}
	if u.TagNumbers != nil {
		out.TagNumbers = *u.TagNumbers
		out.MagnetNumber = MagnetFromTags(*u.TagNumbers)
	}
	if u.Notes != nil {
		out.Notes = u.Notes
	}
	if u.CancellationReason != nil {
		out.CancellationReason = u.CancellationReason
	}
	if u.Photos != nil {
		out.Photos = *u.Photos
	}
	if u.LocalPickup != nil {
		out.LocalPickup = *u.LocalPickup
	}
	return out
}

// RestorationFilter contains listing parameters for the board view.
type RestorationFilter struct {
	Statuses        []RestorationStatus
	IncludeArchived bool
	Limit           int
	Offset          int
}
