package checkout

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	orderNumberPrefix = "TIP"
	orderNumberDigits = 9
)

// base36Space is 36^9, the number of distinct order number suffixes.
const base36Space = 101_559_956_668_416

// NewOrderNumber returns "TIP" followed by nine upper-case base-36 characters.
func NewOrderNumber() string {
	id := uuid.New()
	n := binary.BigEndian.Uint64(id[:8]) % base36Space

	suffix := strings.ToUpper(strconv.FormatUint(n, 36))
	return orderNumberPrefix + strings.Repeat("0", orderNumberDigits-len(suffix)) + suffix
}
