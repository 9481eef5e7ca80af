package rest

import (
	"encoding/json"
	"time"

	"github.com/heartmarshall/restoration-backend/internal/domain"
	"github.com/heartmarshall/restoration-backend/internal/service/restoration"
)

type createRequest struct {
	OrderRef      string  `json:"order_ref"`
	SKU           string  `json:"sku"`
	CustomerEmail *string `json:"customer_email"`
	Notes         *string `json:"notes"`
	LocalPickup   bool    `json:"local_pickup"`
}

// updateRequest is the PATCH body. photos and resolved_at stay raw so an
// explicit null can be told apart from an absent key.
type updateRequest struct {
	Status         *string `json:"status"`
	ContinueRepair bool    `json:"continue_repair"`
	MarkForTrash   bool    `json:"mark_for_trash"`
	ReturnAsIs     bool    `json:"return_as_is"`
	ConfirmTrashed bool    `json:"confirm_trashed"`

	DamageReason       *string         `json:"damage_reason"`
	TagNumbers         *[]string       `json:"tag_numbers"`
	MagnetNumber       *string         `json:"magnet_number"`
	Notes              *string         `json:"notes"`
	CancellationReason *string         `json:"cancellation_reason"`
	Photos             json.RawMessage `json:"photos"`
	ResolvedAt         json.RawMessage `json:"resolved_at"`
	LocalPickup        *bool           `json:"local_pickup"`
}

type photoUploadRequest struct {
	ContentType string `json:"content_type"`
}

type itemResponse struct {
	ID            string   `json:"id"`
	Status        string   `json:"status"`
	OrderRef      string   `json:"order_ref"`
	SKU           string   `json:"sku"`
	CustomerEmail *string  `json:"customer_email"`
	TagNumbers    []string `json:"tag_numbers"`
	MagnetNumber  *string  `json:"magnet_number"`

	Timestamps map[string]*time.Time `json:"timestamps"`

	DamageReason       *string  `json:"damage_reason"`
	WasDamaged         bool     `json:"was_damaged"`
	LocalPickup        bool     `json:"local_pickup"`
	Notes              *string  `json:"notes"`
	CancellationReason *string  `json:"cancellation_reason"`
	Photos             []string `json:"photos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type eventResponse struct {
	ID             string          `json:"id"`
	EventType      string          `json:"event_type"`
	EventTimestamp time.Time       `json:"event_timestamp"`
	EventData      json.RawMessage `json:"event_data"`
	Source         string          `json:"source"`
	Actor          string          `json:"actor"`
}

type detailResponse struct {
	Item   itemResponse    `json:"item"`
	Events []eventResponse `json:"events"`
}

type listResponse struct {
	Items []itemResponse `json:"items"`
	Total int            `json:"total"`
}

type photoUploadResponse struct {
	UploadURL   string    `json:"upload_url"`
	PublicURL   string    `json:"public_url"`
	ContentType string    `json:"content_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func toItemResponse(item domain.RestorationItem) itemResponse {
	ts := make(map[string]*time.Time, len(domain.TimestampFields))
	for _, f := range domain.TimestampFields {
		ts[f.String()] = item.Timestamp(f)
	}

	var reason *string
	if item.DamageReason != nil {
		r := item.DamageReason.String()
		reason = &r
	}

	tags := item.TagNumbers
	if tags == nil {
		tags = []string{}
	}
	photos := item.Photos
	if photos == nil {
		photos = []string{}
	}

	return itemResponse{
		ID:                 item.ID.String(),
		Status:             item.Status.String(),
		OrderRef:           item.OrderRef,
		SKU:                item.SKU,
		CustomerEmail:      item.CustomerEmail,
		TagNumbers:         tags,
		MagnetNumber:       item.MagnetNumber,
		Timestamps:         ts,
		DamageReason:       reason,
		WasDamaged:         item.WasDamaged,
		LocalPickup:        item.LocalPickup,
		Notes:              item.Notes,
		CancellationReason: item.CancellationReason,
		Photos:             photos,
		CreatedAt:          item.CreatedAt,
		UpdatedAt:          item.UpdatedAt,
	}
}

func toEventResponse(ev domain.RestorationEvent) eventResponse {
	data := ev.EventData
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}
	return eventResponse{
		ID:             ev.ID.String(),
		EventType:      ev.EventType.String(),
		EventTimestamp: ev.EventTimestamp,
		EventData:      data,
		Source:         ev.Source,
		Actor:          ev.Actor,
	}
}

func toDetailResponse(d *restoration.Detail) detailResponse {
	events := make([]eventResponse, len(d.Events))
	for i, ev := range d.Events {
		events[i] = toEventResponse(ev)
	}
	return detailResponse{Item: toItemResponse(d.Item), Events: events}
}

func toListResponse(res *restoration.ListResult) listResponse {
	items := make([]itemResponse, len(res.Items))
	for i, it := range res.Items {
		items[i] = toItemResponse(it)
	}
	return listResponse{Items: items, Total: res.Total}
}
