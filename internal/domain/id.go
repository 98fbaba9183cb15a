package domain

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a fresh record identifier.
// UUIDv7 is time-ordered, so lexical key order matches creation order.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ValidateID checks that id is a record identifier in canonical form:
// lower-case, hyphenated, no braces or urn prefix. Other spellings of a
// valid UUID would never match a stored key.
func ValidateID(id string) error {
	if id == "" {
		return InvalidArgument("identifier is required")
	}
	u, err := uuid.Parse(id)
	if err != nil || u.String() != id {
		return InvalidArgument("malformed identifier %q", id)
	}
	return nil
}

// ValidateIDs checks every identifier in ids.
func ValidateIDs(ids []string) error {
	for _, id := range ids {
		if err := ValidateID(id); err != nil {
			return err
		}
	}
	return nil
}

// NormalizeTags trims tag names, drops empties and removes duplicates, keeping first-seen order.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
