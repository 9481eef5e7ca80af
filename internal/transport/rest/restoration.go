package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/restoration-backend/internal/domain"
	"github.com/heartmarshall/restoration-backend/internal/service/restoration"
)

//go:generate moq -out restoration_service_mock_test.go -pkg rest . restorationService

type restorationService interface {
	GetDetail(ctx context.Context, id uuid.UUID) (*restoration.Detail, error)
	List(ctx context.Context, input restoration.ListInput) (*restoration.ListResult, error)
	Create(ctx context.Context, input restoration.CreateInput) (*domain.RestorationItem, error)
	Update(ctx context.Context, input restoration.UpdateInput) (*domain.RestorationItem, error)
	Archive(ctx context.Context, id uuid.UUID) (*domain.RestorationItem, error)
	Unarchive(ctx context.Context, id uuid.UUID) (*domain.RestorationItem, error)
	PhotoUploadURL(ctx context.Context, input restoration.PhotoUploadInput) (*restoration.PhotoUpload, error)
}

// RestorationHandler serves the restoration board REST endpoints.
type RestorationHandler struct {
	svc restorationService
	log *slog.Logger
}

// NewRestorationHandler creates a RestorationHandler.
func NewRestorationHandler(svc restorationService, logger *slog.Logger) *RestorationHandler {
	return &RestorationHandler{svc: svc, log: logger.With("handler", "restoration")}
}

// List handles GET /api/restorations.
func (h *RestorationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := restoration.ListInput{Statuses: q["status"]}

	var errs []domain.FieldError
	if v := q.Get("include_archived"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "include_archived", Message: "must be a boolean"})
		}
		input.IncludeArchived = b
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		}
		input.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be an integer"})
		}
		input.Offset = n
	}
	if len(errs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	res, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(res))
}

// Get handles GET /api/restorations/{id}.
func (h *RestorationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	detail, err := h.svc.GetDetail(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDetailResponse(detail))
}

// Create handles POST /api/restorations.
func (h *RestorationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.Create(r.Context(), restoration.CreateInput{
		OrderRef:      req.OrderRef,
		SKU:           req.SKU,
		CustomerEmail: req.CustomerEmail,
		Notes:         req.Notes,
		LocalPickup:   req.LocalPickup,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemResponse(*item))
}

// Update handles PATCH /api/restorations/{id}.
func (h *RestorationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.toInput(id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	item, err := h.svc.Update(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(*item))
}

// Archive handles POST /api/restorations/{id}/archive.
func (h *RestorationHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.archive(w, r, h.svc.Archive)
}

// Unarchive handles DELETE /api/restorations/{id}/archive.
func (h *RestorationHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	h.archive(w, r, h.svc.Unarchive)
}

func (h *RestorationHandler) archive(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.RestorationItem, error)) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	item, err := op(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(*item))
}

// PhotoUploadURL handles POST /api/restorations/{id}/photos/upload-url.
func (h *RestorationHandler) PhotoUploadURL(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req photoUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	upload, err := h.svc.PhotoUploadURL(r.Context(), restoration.PhotoUploadInput{
		ID:          id,
		ContentType: req.ContentType,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, photoUploadResponse{
		UploadURL:   upload.UploadURL,
		PublicURL:   upload.PublicURL,
		ContentType: upload.ContentType,
		ExpiresAt:   upload.ExpiresAt,
	})
}

func (h *RestorationHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid restoration id")
		return uuid.Nil, false
	}
	return id, true
}

var jsonNull = []byte("null")

// toInput converts the PATCH body. A status and an action flag, or two
// action flags, in one request are rejected.
func (req updateRequest) toInput(id uuid.UUID) (restoration.UpdateInput, error) {
	input := restoration.UpdateInput{
		ID:                 id,
		TagNumbers:         req.TagNumbers,
		MagnetNumber:       req.MagnetNumber,
		Notes:              req.Notes,
		CancellationReason: req.CancellationReason,
		LocalPickup:        req.LocalPickup,
	}
	var errs []domain.FieldError

	var actions []domain.DamageAction
	for action, set := range map[domain.DamageAction]bool{
		domain.ActionContinueRepair: req.ContinueRepair,
		domain.ActionMarkForTrash:   req.MarkForTrash,
		domain.ActionReturnAsIs:     req.ReturnAsIs,
		domain.ActionConfirmTrashed: req.ConfirmTrashed,
	} {
		if set {
			actions = append(actions, action)
		}
	}

	switch {
	case len(actions) > 1:
		errs = append(errs, domain.FieldError{Field: "action", Message: "at most one action may be requested"})
	case len(actions) == 1 && req.Status != nil:
		errs = append(errs, domain.FieldError{Field: "action", Message: "status and action are mutually exclusive"})
	case len(actions) == 1:
		input.Transition = actions[0]
	case req.Status != nil:
		input.Transition = domain.StatusChange{To: domain.RestorationStatus(*req.Status)}
	}

	if req.DamageReason != nil {
		reason := domain.DamageReason(*req.DamageReason)
		input.DamageReason = &reason
	}

	if len(req.Photos) > 0 {
		photos := []string{}
		if !bytes.Equal(req.Photos, jsonNull) {
			if err := json.Unmarshal(req.Photos, &photos); err != nil {
				errs = append(errs, domain.FieldError{Field: "photos", Message: "must be an array of URLs"})
			}
		}
		input.Photos = &photos
	}

	if len(req.ResolvedAt) > 0 {
		var resolved time.Time
		if !bytes.Equal(req.ResolvedAt, jsonNull) {
			if err := json.Unmarshal(req.ResolvedAt, &resolved); err != nil {
				errs = append(errs, domain.FieldError{Field: "resolved_at", Message: "must be an RFC 3339 timestamp or null"})
			}
		}
		input.ResolvedAt = &resolved
	}

	if len(errs) > 0 {
		return restoration.UpdateInput{}, domain.NewValidationErrors(errs)
	}
	return input, nil
}
