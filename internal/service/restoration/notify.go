package restoration

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/restoration-backend/internal/domain"
)

// notifyAsync tells the notification channel about a status move. It never
// blocks the caller: delivery runs detached from the request context with its
// own timeout, and a failure is only logged.
func (s *Service) notifyAsync(ctx context.Context, item *domain.RestorationItem, eventType domain.EventType, from domain.RestorationStatus) {
	if s.notifier == nil {
		return
	}
	text := fmt.Sprintf("Restoration %s (%s): %s -> %s [%s]", item.OrderRef, item.SKU, from, item.Status, eventType)
	id := item.ID

	detached := context.WithoutCancel(ctx)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		nctx, cancel := context.WithTimeout(detached, s.cfg.NotifyTimeout)
		defer cancel()

		if err := s.notifier.Notify(nctx, id, text); err != nil {
			s.metrics.notifyFailures.Add(nctx, 1)
			s.log.WarnContext(nctx, "notify restoration change",
				slog.String("restoration_id", id.String()),
				slog.String("error", err.Error()),
			)
		}
	}()
}
