// Package lookup holds the fixed enumerations of the match/odds dataset and
// the validation helpers that guard every odds and status operation.
package lookup

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/irfndi/oddsframe/internal/utils"
)

var countrySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		set[NormalizeName(c)] = struct{}{}
	}
	return set
}()

// Countries returns a copy of the country values found in the dataset.
func Countries() []string {
	return clone(countries)
}

// IsCountry reports whether name is one of the known country values.
// Country filtering does not consult this; it is informational.
func IsCountry(name string) bool {
	_, ok := countrySet[NormalizeName(name)]
	return ok
}

// NormalizeName trims surrounding space and applies Unicode NFC so that
// composed and decomposed spellings compare equal.
func NormalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// ValidateBookmakers fails on the first token outside the bookmaker enumeration.
func ValidateBookmakers(names []string) error {
	for _, n := range names {
		if !IsBookmaker(n) {
			return utils.NewInvalidValueError("bookmaker", n, bookmakers)
		}
	}
	return nil
}

// ValidateMarkets fails on the first code outside the market enumeration.
func ValidateMarkets(codes []string) error {
	for _, c := range codes {
		if !IsMarket(c) {
			return utils.NewInvalidValueError("market", c, markets)
		}
	}
	return nil
}

// ValidateOddsTimes fails on the first tag other than "open" or "closed".
func ValidateOddsTimes(tags []string) error {
	for _, t := range tags {
		if !IsOddsTime(t) {
			return utils.NewInvalidValueError("open/closed", t, oddsTimes)
		}
	}
	return nil
}

// ValidateStatusCodes fails on the first code outside the recognized statuses.
func ValidateStatusCodes(codes []int) error {
	for _, c := range codes {
		if !StatusCode(c).IsValid() {
			return utils.NewInvalidValueError("status", strconv.Itoa(c), statusCodeStrings())
		}
	}
	return nil
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func clone(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
