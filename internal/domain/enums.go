package domain

// RestorationStatus is the position of a restoration item in the return/repair
// pipeline.
type RestorationStatus string

const (
	StatusPendingLabel       RestorationStatus = "pending_label"
	StatusLabelSent          RestorationStatus = "label_sent"
	StatusInTransitInbound   RestorationStatus = "in_transit_inbound"
	StatusDeliveredWarehouse RestorationStatus = "delivered_warehouse"
	StatusReceived           RestorationStatus = "received"
	StatusAtRestoration      RestorationStatus = "at_restoration"
	StatusReadyToShip        RestorationStatus = "ready_to_ship"
	StatusShipped            RestorationStatus = "shipped"
	StatusDelivered          RestorationStatus = "delivered"

	StatusCancelled    RestorationStatus = "cancelled"
	StatusDamaged      RestorationStatus = "damaged"
	StatusPendingTrash RestorationStatus = "pending_trash"
	StatusTrashed      RestorationStatus = "trashed"
)

func (s RestorationStatus) String() string { return string(s) }

func (s RestorationStatus) IsValid() bool {
	switch s {
	case StatusPendingLabel, StatusLabelSent, StatusInTransitInbound, StatusDeliveredWarehouse,
		StatusReceived, StatusAtRestoration, StatusReadyToShip, StatusShipped, StatusDelivered,
		StatusCancelled, StatusDamaged, StatusPendingTrash, StatusTrashed:
		return true
	}
	return false
}

// DamageReason explains why an item entered the damaged branch.
type DamageReason string

const (
	DamageReasonDamagedInbound  DamageReason = "damaged_inbound"
	DamageReasonDamagedOutbound DamageReason = "damaged_outbound"
	DamageReasonLost            DamageReason = "lost"
	DamageReasonUnrepairable    DamageReason = "unrepairable"
	DamageReasonOther           DamageReason = "other"
)

func (r DamageReason) String() string { return string(r) }

func (r DamageReason) IsValid() bool {
	switch r {
	case DamageReasonDamagedInbound, DamageReasonDamagedOutbound, DamageReasonLost,
		DamageReasonUnrepairable, DamageReasonOther:
		return true
	}
	return false
}

// DamageAction is a named move out of the damaged branch. It is one of the two
// Transition variants.
type DamageAction string

const (
	ActionContinueRepair DamageAction = "continue_repair"
	ActionMarkForTrash   DamageAction = "mark_for_trash"
	ActionReturnAsIs     DamageAction = "return_as_is"
	ActionConfirmTrashed DamageAction = "confirm_trashed"
)

func (a DamageAction) String() string { return string(a) }

func (a DamageAction) IsValid() bool {
	switch a {
	case ActionContinueRepair, ActionMarkForTrash, ActionReturnAsIs, ActionConfirmTrashed:
		return true
	}
	return false
}

func (DamageAction) isTransition() {}

// EventType labels a restoration audit event.
type EventType string

const (
	EventCreated                 EventType = "created"
	EventStatusChanged           EventType = "status_changed"
	EventStatusRollback          EventType = "status_rollback"
	EventMarkedDamaged           EventType = "marked_damaged"
	EventCheckedIn               EventType = "checked_in"
	EventSentToRestoration       EventType = "sent_to_restoration"
	EventReturnedFromRestoration EventType = "returned_from_restoration"
	EventCancelled               EventType = "cancelled"
	EventDamageContinueRepair    EventType = "damage_continue_repair"
	EventDamageMarkForTrash      EventType = "damage_mark_for_trash"
	EventDamageReturnAsIs        EventType = "damage_return_as_is"
	EventTrashConfirmed          EventType = "trash_confirmed"
	EventArchived                EventType = "archived"
	EventUnarchived              EventType = "unarchived"
	EventStatusRepaired          EventType = "status_repaired"
)

func (e EventType) String() string { return string(e) }

// TimestampField names a nullable timestamp column on a restoration item.
// The value is the column name and is only ever taken from this closed set.
type TimestampField string

const (
	FieldInitiatedAt            TimestampField = "initiated_at"
	FieldLabelSentAt            TimestampField = "label_sent_at"
	FieldCustomerShippedAt      TimestampField = "customer_shipped_at"
	FieldDeliveredToWarehouseAt TimestampField = "delivered_to_warehouse_at"
	FieldReceivedAt             TimestampField = "received_at"
	FieldSentToRestorationAt    TimestampField = "sent_to_restoration_at"
	FieldBackFromRestorationAt  TimestampField = "back_from_restoration_at"
	FieldShippedAt              TimestampField = "shipped_at"
	FieldDeliveredAt            TimestampField = "delivered_at"
	FieldCancelledAt            TimestampField = "cancelled_at"
	FieldDamagedAt              TimestampField = "damaged_at"
	FieldPendingTrashAt         TimestampField = "pending_trash_at"
	FieldTrashedAt              TimestampField = "trashed_at"
	FieldResolvedAt             TimestampField = "resolved_at"
	FieldArchivedAt             TimestampField = "archived_at"
)

// TimestampFields lists every timestamp column in storage order.
var TimestampFields = []TimestampField{
	FieldInitiatedAt, FieldLabelSentAt, FieldCustomerShippedAt, FieldDeliveredToWarehouseAt,
	FieldReceivedAt, FieldSentToRestorationAt, FieldBackFromRestorationAt, FieldShippedAt,
	FieldDeliveredAt, FieldCancelledAt, FieldDamagedAt, FieldPendingTrashAt, FieldTrashedAt,
	FieldResolvedAt, FieldArchivedAt,
}

func (f TimestampField) String() string { return string(f) }

// UserRole represents the authorization level of an operator.
type UserRole string

const (
	UserRoleOperator UserRole = "operator"
	UserRoleAdmin    UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleOperator, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
