// Package recurrence interprets RRULE recurrence expressions. Everything in
// here is pure: no I/O, no clock reads, identical inputs always produce
// identical output, so expansion is safe to call inside a transaction.
package recurrence

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// WindowPolicy bounds how far a series is expanded when the client supplies
// no end date. Yearly rules get a wider window because their occurrences are
// sparse; a one-year default would yield a single occurrence.
type WindowPolicy struct {
	YearlyYears  int
	DefaultYears int
}

const (
	defaultYearlyYears = 5
	defaultOtherYears  = 1
)

func (p WindowPolicy) normalized() WindowPolicy {
	if p.YearlyYears <= 0 {
		p.YearlyYears = defaultYearlyYears
	}
	if p.DefaultYears <= 0 {
		p.DefaultYears = defaultOtherYears
	}
	return p
}

// Expand returns every occurrence date d of the rule with start <= d <= end,
// ascending and duplicate-free. Both bounds are inclusive: an occurrence
// falling exactly on end is part of the result.
//
// A malformed rule fails closed: the returned slice holds only start, and the
// parse error is handed back so the caller can log it. It is never guessed
// around and never expands unbounded.
func Expand(rule string, start, end time.Time) ([]time.Time, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("recurrence: end %s precedes start %s", end, start)
	}

	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return []time.Time{start}, fmt.Errorf("recurrence: parse rule %q: %w", rule, err)
	}

	opt.Dtstart = start
	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return []time.Time{start}, fmt.Errorf("recurrence: build rule %q: %w", rule, err)
	}

	return r.Between(start, end, true), nil
}

// ResolveDefaultEnd picks the expansion bound for a series. A client-supplied
// end date is used verbatim; otherwise the policy window is added to start.
// An unparseable rule falls into the non-yearly default; the parse failure
// itself surfaces later through Expand.
func ResolveDefaultEnd(rule string, start time.Time, clientEnd *time.Time, policy WindowPolicy) time.Time {
	if clientEnd != nil {
		return *clientEnd
	}

	policy = policy.normalized()
	years := policy.DefaultYears
	if opt, err := rrule.StrToROption(rule); err == nil && opt.Freq == rrule.YEARLY {
		years = policy.YearlyYears
	}
	return start.AddDate(years, 0, 0)
}

// RewriteUntil re-serializes the rule with its upper bound set (or replaced)
// to until. A COUNT bound, being mutually exclusive with UNTIL, is dropped.
func RewriteUntil(rule string, until time.Time) (string, error) {
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return "", fmt.Errorf("recurrence: parse rule %q: %w", rule, err)
	}

	opt.Until = until
	opt.Count = 0
	return opt.RRuleString(), nil
}
