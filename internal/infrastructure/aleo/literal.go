package aleo

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/zkontract/zkbounty/internal/domain"
)

// Typed literal suffixes understood by the on-chain function dispatcher.
const (
	SuffixU64        = "u64"
	SuffixU8         = "u8"
	SuffixPublic     = ".public"
	SuffixPrivate    = ".private"
	SuffixU64Private = SuffixU64 + SuffixPrivate
)

// MicrocreditsPerCredit is the fixed credit to microcredit conversion factor.
const MicrocreditsPerCredit = 1_000_000

var leadingDigits = regexp.MustCompile(`^(\d+)`)

// U64 renders "<n>u64".
func U64(n uint64) string {
	return strconv.FormatUint(n, 10) + SuffixU64
}

// U64Private renders "<n>u64.private".
func U64Private(n uint64) string {
	return U64(n) + SuffixPrivate
}

// Public renders "<v>.public".
func Public(v string) string {
	return v + SuffixPublic
}

// Private renders "<v>.private".
func Private(v string) string {
	return v + SuffixPrivate
}

// PrivateUint renders "<n>.private" for untyped numeric inputs.
func PrivateUint(n uint64) string {
	return Private(strconv.FormatUint(n, 10))
}

// MaxCredits is the largest whole-credit amount whose microcredit value fits in u64.
const MaxCredits = math.MaxUint64 / MicrocreditsPerCredit

// CreditsToMicrocredits converts a whole-credit amount, failing with
// domain.ErrAmountOutOfRange instead of wrapping.
func CreditsToMicrocredits(credits uint64) (uint64, error) {
	if credits > MaxCredits {
		return 0, errors.Wrapf(domain.ErrAmountOutOfRange, "%d credits", credits)
	}
	return credits * MicrocreditsPerCredit, nil
}

// LeadingUint parses the leading decimal digits of a typed literal, so
// "15u64", "15u64.private" and "15" all yield 15.
func LeadingUint(literal string) (uint64, bool) {
	m := leadingDigits.FindStringSubmatch(strings.TrimSpace(literal))
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsPrivateU64 reports whether a literal carries the u64.private suffix.
func IsPrivateU64(literal string) bool {
	return strings.HasSuffix(literal, SuffixU64Private)
}
