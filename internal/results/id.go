package results

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// NewResultID mints a shareable identifier: 48 random bits (hex) plus the
// current unix-millisecond timestamp in base36. Both components are
// lowercase alphanumerics, so the ID is usable in a URL path as-is.
func NewResultID() (string, error) {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b) + strconv.FormatInt(time.Now().UnixMilli(), 36), nil
}
