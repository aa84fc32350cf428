package reports

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// Display formatting for the row transformer. All null-coalescing lives
// here, never in the query builders.

const naPlaceholder = "N/A"

const (
	displayDateLayout     = "Jan 02, 2006"
	displayDateTimeLayout = "Jan 02, 2006 3:04 PM"
)

// na renders a nullable scalar; a missing or blank value becomes "N/A".
func na(p *string) string {
	if p == nil || strings.TrimSpace(*p) == "" {
		return naPlaceholder
	}
	return *p
}

func naIfBlank(s string) string {
	if strings.TrimSpace(s) == "" {
		return naPlaceholder
	}
	return s
}

// blank renders a nullable free-text field (remarks); missing stays empty.
func blank(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func formatDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

func formatDatePtr(t *time.Time) string {
	if t == nil || t.IsZero() {
		return naPlaceholder
	}
	return t.Format(displayDateLayout)
}

func formatDateTime(t time.Time) string {
	return t.Format(displayDateTimeLayout)
}

// formatMoney renders with exactly two decimal places and thousands separators.
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	var b strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	out := b.String() + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

func formatQuantity(d decimal.Decimal) string {
	return d.String()
}

// capitalizeFirst uppercases the first letter only; enumerated status values
// get no other case transformation.
func capitalizeFirst(s string) string {
	if s == "" {
		return naPlaceholder
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// urgencyLabel buckets days-until-expiry: ≤30 Critical, ≤60 Warning, else OK.
func urgencyLabel(daysRemaining int) string {
	switch {
	case daysRemaining <= 30:
		return "Critical"
	case daysRemaining <= 60:
		return "Warning"
	default:
		return "OK"
	}
}
