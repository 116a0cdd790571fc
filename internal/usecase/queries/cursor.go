package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

// Grouping happens over the full record set, so listing cursors address positions in the
// grouped item list rather than database rows.
func EncodeOffsetCursor(offset int) string {
	return base64.URLEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%d", CursorVersionV1, offset)))
}

func DecodeOffsetCursor(cursor string) (int, error) {
	if cursor == "" {
		return 0, fmt.Errorf("cursor cannot be empty")
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("invalid cursor encoding: %w", err)
	}

	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return 0, fmt.Errorf("unsupported cursor version")
	}

	offset, err := strconv.Atoi(payload)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid cursor offset: %q", payload)
	}
	return offset, nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

// Page selects a window of a grouped listing.
type Page struct {
	After string
	Limit int
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
