package amount

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	numberRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
	spentRe  = regexp.MustCompile(`(?i)spent\s+(-?\d+(?:\.\d+)?)\s+euros?\b`)
	spaceRe  = regexp.MustCompile(`\s+`)
)

// Parse extracts the first signed-or-unsigned decimal number found anywhere
// in text. Absence of a match is a valid, silent zero; Parse never fails.
func Parse(text string) float64 {
	m := numberRe.FindString(text)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}

// Summary is the merchant/amount pair extracted from one transaction line.
type Summary struct {
	Name   string
	Amount float64
}

// ParseSummaryLine extracts the merchant and amount from a line following the
// "spent <amount> euro(s) in <merchant> on <date>" convention, with keywords
// matched case-insensitively. The merchant is everything after the first
// " in " and before the last " on " of the remainder. That first-in/last-on
// rule is deliberate: it keeps merchant names that themselves contain "in" or
// "on" as words intact ("... in Paytrail Oyj DNA Oyj Mobiilipa on Tue Dec 09"
// yields the full merchant, not a truncation at the first "on"). When " on "
// never occurs the whole remainder is the merchant. Lines that do not match
// report ok=false and are excluded from every grouping.
func ParseSummaryLine(line string) (Summary, bool) {
	m := spentRe.FindStringSubmatch(line)
	if m == nil {
		return Summary{}, false
	}
	amt, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Summary{}, false
	}

	in := strings.Index(strings.ToLower(line), " in ")
	if in < 0 {
		return Summary{}, false
	}
	rest := line[in+4:]
	if on := strings.LastIndex(strings.ToLower(rest), " on "); on >= 0 {
		rest = rest[:on]
	}
	name := strings.TrimSpace(rest)
	if name == "" {
		return Summary{}, false
	}

	return Summary{Name: name, Amount: amt}, true
}

// Normalize collapses consecutive whitespace in a merchant name and trims it,
// so the same merchant spelled with ragged spacing groups together.
func Normalize(name string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(name, " "))
}
