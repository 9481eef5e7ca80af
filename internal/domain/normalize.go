package domain

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MaxTagNumbers       = 10
	MaxTagNumberLen     = 20
	MaxNotesLen         = 2000
	MaxCancellationLen  = 500
	MaxPhotos           = 3
	MaxOrderRefLen      = 64
	MaxSKULen           = 64
	MaxCustomerEmailLen = 254
)

var tagNumberRe = regexp.MustCompile(`^[A-Z0-9]([A-Z0-9-]*[A-Z0-9])?$`)

// NormalizeText prepares free text for storage:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeTagNumber trims and upper-cases a tag number. ok is false when the
// result is not a valid tag.
func NormalizeTagNumber(raw string) (tag string, ok bool) {
	tag = strings.ToUpper(strings.TrimSpace(raw))
	if tag == "" || len(tag) > MaxTagNumberLen || !tagNumberRe.MatchString(tag) {
		return "", false
	}
	return tag, true
}

// NormalizeTagNumbers keeps the valid tags in their original order, dropping
// invalid entries, and retains at most MaxTagNumbers.
func NormalizeTagNumbers(raw []string) []string {
	out := make([]string, 0, min(len(raw), MaxTagNumbers))
	for _, r := range raw {
		tag, ok := NormalizeTagNumber(r)
		if !ok {
			continue
		}
		out = append(out, tag)
		if len(out) == MaxTagNumbers {
			break
		}
	}
	return out
}

// MagnetFromTags returns the legacy single-tag value mirroring tags[0].
func MagnetFromTags(tags []string) *string {
	if len(tags) == 0 {
		return nil
	}
	m := tags[0]
	return &m
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// PhotoPolicy describes where photo URLs may point.
type PhotoPolicy struct {
	Origin     string // scheme://host[:port]
	PathPrefix string
}

// Allows reports whether raw is an absolute URL on the approved origin under
// the approved path prefix.
func (p PhotoPolicy) Allows(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	if u.User != nil || u.RawQuery != "" || u.Fragment != "" {
		return false
	}
	if !strings.EqualFold(u.Scheme+"://"+u.Host, strings.TrimRight(p.Origin, "/")) {
		return false
	}
	if strings.Contains(u.Path, "..") {
		return false
	}
	return strings.HasPrefix(u.Path, p.PathPrefix)
}

// FilterPhotoURLs drops URLs the policy does not allow and keeps the first
// MaxPhotos of the rest.
func FilterPhotoURLs(p PhotoPolicy, raw []string) []string {
	out := make([]string, 0, min(len(raw), MaxPhotos))
	for _, r := range raw {
		if !p.Allows(r) {
			continue
		}
		out = append(out, strings.TrimSpace(r))
		if len(out) == MaxPhotos {
			break
		}
	}
	return out
}
