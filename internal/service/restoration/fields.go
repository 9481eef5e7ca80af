package restoration

import (
	"strings"

	"github.com/heartmarshall/restoration-backend/internal/domain"
)

// fieldUpdate normalizes the non-status fields of input into an update for
// current. Invalid tags and disallowed photo URLs are dropped, not rejected.
func (s *Service) fieldUpdate(current *domain.RestorationItem, input UpdateInput) domain.RestorationUpdate {
	var u domain.RestorationUpdate

	switch {
	case input.TagNumbers != nil:
		tags := domain.NormalizeTagNumbers(*input.TagNumbers)
		u.TagNumbers = &tags
	case input.MagnetNumber != nil:
		if tags, ok := legacyTags(current.TagNumbers, *input.MagnetNumber); ok {
			u.TagNumbers = &tags
		}
	}

	if input.Notes != nil {
		notes := domain.Truncate(strings.TrimSpace(*input.Notes), domain.MaxNotesLen)
		u.Notes = &notes
	}
	if input.CancellationReason != nil {
		reason := domain.Truncate(strings.TrimSpace(*input.CancellationReason), domain.MaxCancellationLen)
		u.CancellationReason = &reason
	}
	if input.Photos != nil {
		photos := domain.FilterPhotoURLs(s.cfg.Photos, *input.Photos)
		u.Photos = &photos
	}
	if input.ResolvedAt != nil {
		if input.ResolvedAt.IsZero() {
			u.ClearTime(domain.FieldResolvedAt)
		} else {
			u.SetTime(domain.FieldResolvedAt, input.ResolvedAt.UTC())
		}
	}
	if input.LocalPickup != nil {
		v := *input.LocalPickup
		u.LocalPickup = &v
	}

	return u
}

// legacyTags applies a legacy single-tag write: an empty value clears every
// tag, a valid value replaces the first tag, an invalid value is ignored.
func legacyTags(existing []string, raw string) ([]string, bool) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, true
	}
	tag, ok := domain.NormalizeTagNumber(raw)
	if !ok {
		return nil, false
	}
	tags := []string{tag}
	if len(existing) > 1 {
		tags = append(tags, existing[1:]...)
	}
	return domain.NormalizeTagNumbers(tags), true
}

// merge overlays the status-driven delta onto the field delta. Status-driven
// timestamps win over a resolved_at supplied in the same request.
func merge(fields, status domain.RestorationUpdate) domain.RestorationUpdate {
	out := fields
	out.Status = status.Status
	if status.DamageReason != nil {
		out.DamageReason = status.DamageReason
	}
	if status.WasDamaged != nil {
		out.WasDamaged = status.WasDamaged
	}
	for f, v := range status.Times {
		if v == nil {
			out.ClearTime(f)
		} else {
			out.SetTime(f, *v)
		}
	}
	return out
}

func sameReason(a, b *domain.DamageReason) bool {
	return a != nil && b != nil && *a == *b
}

// isDamageBranch reports whether s keeps a damage reason meaningful.
func isDamageBranch(s domain.RestorationStatus) bool {
	return s == domain.StatusDamaged || s == domain.StatusPendingTrash
}
