// Package labels renders skill, group and policy names for people.
//
// Messages are registered with golang.org/x/text/message per language; the
// printer falls back to English for unsupported locales.
package labels

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys for composed lines.
const (
	HintGroupKey = "hint.group"
	CostKey      = "line.cost"
	SumCheckKey  = "line.sum_check"
	BalanceKey   = "line.balance"
)

var supportedTags = []language.Tag{
	language.English,
	language.Russian,
}

var tagMatcher = language.NewMatcher(supportedTags)

var emoji = map[string]string{
	"hit":    "⚔️",
	"energy": "🛡️",
	"regen":  "🛡️",
	"cw":     "💨",
	"ccw":    "💨",
}

// Labels formats names and lines for one language.
type Labels struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns Labels for the closest supported language to locale.
func New(locale string) *Labels {
	tag := Resolve(locale)
	return &Labels{tag: tag, printer: message.NewPrinter(tag)}
}

// Resolve maps a locale string to a supported language tag.
func Resolve(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return supportedTags[0]
	}
	_, index, confidence := tagMatcher.Match(language.Make(locale))
	if confidence == language.No {
		return supportedTags[0]
	}
	return supportedTags[index]
}

// Tag returns the resolved language.
func (l *Labels) Tag() language.Tag {
	return l.tag
}

// Attribute returns the display name of an attribute key.
func (l *Labels) Attribute(key string) string {
	return l.lookup("attribute."+key, key)
}

// Emoji returns the icon shown next to an attribute, or "" when none is set.
func (l *Labels) Emoji(key string) string {
	return emoji[key]
}

// Group returns the display name of a group key.
func (l *Labels) Group(key string) string {
	return l.lookup("group."+key, key)
}

// Policy returns the display name of a policy key.
func (l *Labels) Policy(key string) string {
	return l.lookup("policy."+key, key)
}

// Points renders an amount of points with locale digit grouping.
func (l *Labels) Points(points int) string {
	return l.printer.Sprintf("%d", points)
}

// Cost renders the price line of a policy.
func (l *Labels) Cost(points int) string {
	return l.printer.Sprintf(CostKey, l.Points(points))
}

// Balance renders a point balance line.
func (l *Labels) Balance(points int) string {
	return l.printer.Sprintf(BalanceKey, l.Points(points))
}

// GroupHint renders the guaranteed share of a biased selection.
func (l *Labels) GroupHint(groupKey string, minimum, remaining int) string {
	return l.printer.Sprintf(HintGroupKey, l.Group(groupKey), FormatUnits(minimum), FormatUnits(remaining))
}

// SumCheck renders the total of a distribution.
func (l *Labels) SumCheck(units int) string {
	return l.printer.Sprintf(SumCheckKey, FormatUnits(units))
}

// FormatUnits renders units as a percentage with one decimal, without the
// percent sign: 234 becomes "23.4".
func FormatUnits(units int) string {
	sign := ""
	if units < 0 {
		sign = "-"
		units = -units
	}
	return sign + strconv.Itoa(units/10) + "." + strconv.Itoa(units%10)
}

func (l *Labels) lookup(messageKey, fallback string) string {
	got := l.printer.Sprintf(messageKey)
	if got == messageKey {
		return fallback
	}
	return got
}
