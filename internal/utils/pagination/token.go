package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	timeFormat = time.RFC3339Nano

	DefaultLimit = 50
	MaxLimit     = 500
)

// Cursor is a keyset position: rows strictly after (At, ID) in descending order.
type Cursor struct {
	At time.Time
	ID int64
}

// EncodeCursor creates a base64 encoded token from a row date and its sequence id.
func EncodeCursor(at time.Time, id int64) string {
	tokenStr := fmt.Sprintf("%s|%d", at.Format(timeFormat), id)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCursor parses a token produced by EncodeCursor. An empty token yields nil.
func DecodeCursor(token string) (*Cursor, error) {
	if token == "" {
		return nil, nil
	}
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid pagination token format (split)")
	}

	at, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (id parse): %w", err)
	}

	return &Cursor{At: at, ID: id}, nil
}

// NormalizeLimit applies the default page size and caps it at MaxLimit.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return min(limit, MaxLimit)
}
