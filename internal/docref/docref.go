// Package docref derives short human readable document references
// (booking references, invoice and ticket numbers) from a record id and its creation time.
//
// Format: PREFIX-YYMMDD-NNN, where NNN = (first 6 hex chars of the id as base16) % 999 + 1.
// The result is deterministic but not unique: there are only 999 suffixes per day and prefix.
package docref

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind document kind, selects the literal prefix
type Kind string

const (
	KindBooking Kind = "DLX"
	KindInvoice Kind = "INV"
	KindTicket  Kind = "TKT"
)

const (
	hexPrefixLength = 6
	suffixModulo    = 999
	dateLayout      = "060102"
)

// ErrInvalidIdentifier the id does not start with a hex digit
var ErrInvalidIdentifier = errors.New("docref: identifier has no leading hex digits")

// Prefix returns the literal prefix of the kind
func (k Kind) Prefix() string {
	return string(k)
}

// Derive builds the reference for the given kind, opaque id and creation time.
// The date part is taken in UTC
func Derive(kind Kind, id string, createdAt time.Time) (string, error) {
	suffix, err := Suffix(id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%03d", kind.Prefix(), createdAt.UTC().Format(dateLayout), suffix), nil
}

// Suffix computes the numeric suffix in [1, 999].
// Only the leading hex digits of the 6-char window are used; parsing stops at the first non-hex char
func Suffix(id string) (int, error) {
	compact := strings.ReplaceAll(id, "-", "")
	if len(compact) > hexPrefixLength {
		compact = compact[:hexPrefixLength]
	}

	end := 0
	for end < len(compact) && isHexDigit(compact[end]) {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}

	n, err := strconv.ParseUint(compact[:end], 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidIdentifier, err)
	}

	return int(n%suffixModulo) + 1, nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
