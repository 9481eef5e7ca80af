// Package lifecycle holds the restoration status graph and the pure rules that
// decide how an item may move through it.
package lifecycle

import (
	"slices"

	"github.com/heartmarshall/restoration-backend/internal/domain"
)

// ordered is the main pipeline, in order.
var ordered = []domain.RestorationStatus{
	domain.StatusPendingLabel,
	domain.StatusLabelSent,
	domain.StatusInTransitInbound,
	domain.StatusDeliveredWarehouse,
	domain.StatusReceived,
	domain.StatusAtRestoration,
	domain.StatusReadyToShip,
	domain.StatusShipped,
	domain.StatusDelivered,
}

// Inbound statuses (index <= lastInboundIndex) may skip ahead up to
// receivedIndex, since a carrier scan can be missed.
const (
	lastInboundIndex = 2
	receivedIndex    = 4
)

var timestampFields = map[domain.RestorationStatus]domain.TimestampField{
	domain.StatusPendingLabel:       domain.FieldInitiatedAt,
	domain.StatusLabelSent:          domain.FieldLabelSentAt,
	domain.StatusInTransitInbound:   domain.FieldCustomerShippedAt,
	domain.StatusDeliveredWarehouse: domain.FieldDeliveredToWarehouseAt,
	domain.StatusReceived:           domain.FieldReceivedAt,
	domain.StatusAtRestoration:      domain.FieldSentToRestorationAt,
	domain.StatusReadyToShip:        domain.FieldBackFromRestorationAt,
	domain.StatusShipped:            domain.FieldShippedAt,
	domain.StatusDelivered:          domain.FieldDeliveredAt,
	domain.StatusCancelled:          domain.FieldCancelledAt,
	domain.StatusDamaged:            domain.FieldDamagedAt,
	domain.StatusPendingTrash:       domain.FieldPendingTrashAt,
	domain.StatusTrashed:            domain.FieldTrashedAt,
}

var (
	index       = buildIndex()
	transitions = buildTransitions()
)

func buildIndex() map[domain.RestorationStatus]int {
	m := make(map[domain.RestorationStatus]int, len(ordered))
	for i, s := range ordered {
		m[s] = i
	}
	return m
}

func buildTransitions() map[domain.RestorationStatus][]domain.RestorationStatus {
	m := make(map[domain.RestorationStatus][]domain.RestorationStatus)

	last := len(ordered) - 1
	for i, s := range ordered[:last] {
		next := make([]domain.RestorationStatus, 0, len(ordered)+2)
		next = append(next, ordered[:i]...)
		upTo := i + 1
		if i <= lastInboundIndex {
			upTo = receivedIndex
		}
		next = append(next, ordered[i+1:upTo+1]...)
		next = append(next, domain.StatusCancelled, domain.StatusDamaged)
		m[s] = next
	}

	m[domain.StatusDamaged] = []domain.RestorationStatus{
		domain.StatusDeliveredWarehouse,
		domain.StatusReadyToShip,
		domain.StatusPendingTrash,
		domain.StatusCancelled,
	}
	m[domain.StatusPendingTrash] = []domain.RestorationStatus{
		domain.StatusTrashed,
		domain.StatusDamaged,
		domain.StatusCancelled,
	}

	for _, s := range []domain.RestorationStatus{domain.StatusDelivered, domain.StatusCancelled, domain.StatusTrashed} {
		m[s] = []domain.RestorationStatus{}
	}
	return m
}

// Allowed returns the statuses reachable from s in one move. Terminal statuses
// yield an empty, non-nil slice; unknown statuses yield nil.
func Allowed(s domain.RestorationStatus) []domain.RestorationStatus {
	next, ok := transitions[s]
	if !ok {
		return nil
	}
	return slices.Clone(next)
}

// CanTransition reports whether to is reachable from from in one move.
func CanTransition(from, to domain.RestorationStatus) bool {
	return slices.Contains(transitions[from], to)
}

// Index returns the pipeline position of s. Branch statuses report false.
func Index(s domain.RestorationStatus) (int, bool) {
	i, ok := index[s]
	return i, ok
}

// IsTerminal reports whether s has no outgoing transitions.
func IsTerminal(s domain.RestorationStatus) bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// TimestampField returns the column stamped when an item enters s.
func TimestampField(s domain.RestorationStatus) (domain.TimestampField, bool) {
	f, ok := timestampFields[s]
	return f, ok
}

// OrderedStatuses returns the main pipeline in order.
func OrderedStatuses() []domain.RestorationStatus {
	return slices.Clone(ordered)
}

// Statuses returns every known status: the pipeline followed by the branches.
func Statuses() []domain.RestorationStatus {
	return append(OrderedStatuses(),
		domain.StatusCancelled, domain.StatusDamaged, domain.StatusPendingTrash, domain.StatusTrashed)
}
