package restoration

import (
	"strings"

	"github.com/heartmarshall/restoration-backend/internal/domain"
)

// columns is the select list shared by every query; scanItem reads it in
// this order.
var columns = []string{
	"id", "status", "order_ref", "sku", "customer_email",
	"tag_numbers", "magnet_number",
	"initiated_at", "label_sent_at", "customer_shipped_at", "delivered_to_warehouse_at",
	"received_at", "sent_to_restoration_at", "back_from_restoration_at", "shipped_at",
	"delivered_at", "cancelled_at", "damaged_at", "pending_trash_at", "trashed_at",
	"damage_reason", "was_damaged", "resolved_at", "local_pickup", "notes",
	"cancellation_reason", "photos",
	"archived_at", "created_at", "updated_at",
}

var columnList = strings.Join(columns, ", ")

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (domain.RestorationItem, error) {
	var (
		item         domain.RestorationItem
		status       string
		damageReason *string
	)

	err := row.Scan(
		&item.ID, &status, &item.OrderRef, &item.SKU, &item.CustomerEmail,
		&item.TagNumbers, &item.MagnetNumber,
		&item.InitiatedAt, &item.LabelSentAt, &item.CustomerShippedAt, &item.DeliveredToWarehouseAt,
		&item.ReceivedAt, &item.SentToRestorationAt, &item.BackFromRestorationAt, &item.ShippedAt,
		&item.DeliveredAt, &item.CancelledAt, &item.DamagedAt, &item.PendingTrashAt, &item.TrashedAt,
		&damageReason, &item.WasDamaged, &item.ResolvedAt, &item.LocalPickup, &item.Notes,
		&item.CancellationReason, &item.Photos,
		&item.ArchivedAt, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return domain.RestorationItem{}, err
	}

	// The stored status is passed through unchecked; the lifecycle rules
	// report unknown values as data-integrity errors.
	item.Status = domain.RestorationStatus(status)
	if damageReason != nil {
		r := domain.DamageReason(*damageReason)
		item.DamageReason = &r
	}
	return item, nil
}
