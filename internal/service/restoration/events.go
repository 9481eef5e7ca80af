package restoration

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/restoration-backend/internal/domain"
	"github.com/heartmarshall/restoration-backend/internal/service/restoration/lifecycle"
	"github.com/heartmarshall/restoration-backend/pkg/ctxutil"
)

var actionEvents = map[domain.DamageAction]domain.EventType{
	domain.ActionContinueRepair: domain.EventDamageContinueRepair,
	domain.ActionMarkForTrash:   domain.EventDamageMarkForTrash,
	domain.ActionReturnAsIs:     domain.EventDamageReturnAsIs,
	domain.ActionConfirmTrashed: domain.EventTrashConfirmed,
}

var destinationEvents = map[domain.RestorationStatus]domain.EventType{
	domain.StatusDamaged:       domain.EventMarkedDamaged,
	domain.StatusReceived:      domain.EventCheckedIn,
	domain.StatusAtRestoration: domain.EventSentToRestoration,
	domain.StatusReadyToShip:   domain.EventReturnedFromRestoration,
	domain.StatusCancelled:     domain.EventCancelled,
}

// classify picks the single event type for a resolved plan. An explicit
// action wins, then a well-known forward destination, then rollback.
func classify(plan lifecycle.Plan) domain.EventType {
	if plan.Action != "" {
		return actionEvents[plan.Action]
	}
	if plan.Backward {
		return domain.EventStatusRollback
	}
	if et, ok := destinationEvents[plan.To]; ok {
		return et
	}
	return domain.EventStatusChanged
}

// mutationPayload builds the event data for an applied mutation: the status
// pair plus every field the request carried, as written.
func mutationPayload(plan lifecycle.Plan, input UpdateInput, written domain.RestorationUpdate) map[string]any {
	data := map[string]any{
		"previous_status": plan.From,
		"new_status":      plan.To,
	}
	if plan.Action != "" {
		data["action"] = plan.Action
	}
	if plan.Backward {
		data["rollback_from"] = plan.From
		data["rollback_to"] = plan.To
	}

	if written.TagNumbers != nil {
		data["tag_numbers"] = *written.TagNumbers
	}
	if written.Notes != nil {
		data["notes"] = *written.Notes
	}
	if written.CancellationReason != nil {
		data["cancellation_reason"] = *written.CancellationReason
	}
	if input.DamageReason != nil || (plan.To == domain.StatusDamaged && written.DamageReason != nil) {
		data["damage_reason"] = written.DamageReason
	}
	if input.ResolvedAt != nil {
		var resolved any
		if v := written.Times[domain.FieldResolvedAt]; v != nil {
			resolved = *v
		}
		data["resolved_at"] = resolved
	}
	if written.LocalPickup != nil {
		data["local_pickup"] = *written.LocalPickup
	}
	return data
}

// recordEvent appends an audit event for id. Failures are logged and
// counted, never returned: the item write has already happened.
func (s *Service) recordEvent(ctx context.Context, id uuid.UUID, eventType domain.EventType, data map[string]any, at time.Time) {
	event, err := newEvent(ctx, id, eventType, data, at)
	if err == nil {
		_, err = s.events.Create(context.WithoutCancel(ctx), event)
	}
	if err != nil {
		s.metrics.eventFailures.Add(ctx, 1)
		s.log.ErrorContext(ctx, "record restoration event",
			slog.String("restoration_id", id.String()),
			slog.String("event_type", eventType.String()),
			slog.String("error", err.Error()),
		)
	}
}

func newEvent(ctx context.Context, id uuid.UUID, eventType domain.EventType, data map[string]any, at time.Time) (domain.RestorationEvent, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return domain.RestorationEvent{}, err
	}
	return domain.RestorationEvent{
		ID:             uuid.New(),
		RestorationID:  id,
		EventType:      eventType,
		EventTimestamp: at,
		EventData:      raw,
		Source:         sourceFromCtx(ctx),
		Actor:          actorFromCtx(ctx),
	}, nil
}

func sourceFromCtx(ctx context.Context) string {
	if s := ctxutil.SourceFromCtx(ctx); s != "" {
		return s
	}
	return SourceDashboard
}

func actorFromCtx(ctx context.Context) string {
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		return id.String()
	}
	return ActorSystem
}
