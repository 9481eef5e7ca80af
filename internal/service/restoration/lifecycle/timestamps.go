package lifecycle

import (
	"time"

	"github.com/heartmarshall/restoration-backend/internal/domain"
)

// IsBackward reports whether moving from -> to goes back along the pipeline.
// Branch statuses never count as backward.
func IsBackward(from, to domain.RestorationStatus) bool {
	fi, ok := Index(from)
	if !ok {
		return false
	}
	ti, ok := Index(to)
	if !ok {
		return false
	}
	return ti < fi
}

// Reconcile adds the timestamp changes for a move from -> to onto u.
//
// A backward move clears every pipeline timestamp from the target through the
// source inclusive and then stamps the target, so the target's field always
// holds the latest entry. A forward move only stamps the target.
func Reconcile(from, to domain.RestorationStatus, now time.Time, u *domain.RestorationUpdate) (backward bool) {
	if IsBackward(from, to) {
		ti, _ := Index(to)
		fi, _ := Index(from)
		for _, s := range ordered[ti : fi+1] {
			u.ClearTime(timestampFields[s])
		}
		backward = true
	}
	if f, ok := TimestampField(to); ok {
		u.SetTime(f, now)
	}
	return backward
}
