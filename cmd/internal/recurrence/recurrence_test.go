package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandWeekly(t *testing.T) {
	dates, err := Expand("FREQ=WEEKLY;INTERVAL=1", date(2025, time.January, 6), date(2025, time.March, 10))
	require.NoError(t, err)
	require.Len(t, dates, 10)

	assert.Equal(t, date(2025, time.January, 6), dates[0])
	assert.Equal(t, date(2025, time.March, 10), dates[9])
	for i := 1; i < len(dates); i++ {
		assert.Equal(t, dates[i-1].AddDate(0, 0, 7), dates[i])
	}
}

func TestExpandMonthlyDay31SkipsShortMonths(t *testing.T) {
	// February and April have no 31st: those months are skipped outright,
	// never rolled over to the 1st of the next month.
	dates, err := Expand("FREQ=MONTHLY;INTERVAL=1", date(2025, time.January, 31), date(2025, time.April, 30))
	require.NoError(t, err)

	require.Len(t, dates, 2)
	assert.Equal(t, date(2025, time.January, 31), dates[0])
	assert.Equal(t, date(2025, time.March, 31), dates[1])
}

func TestExpandEndEqualToOccurrenceIsIncluded(t *testing.T) {
	dates, err := Expand("FREQ=WEEKLY;INTERVAL=1", date(2025, time.January, 6), date(2025, time.January, 13))
	require.NoError(t, err)

	require.Len(t, dates, 2)
	assert.Equal(t, date(2025, time.January, 13), dates[1])
}

func TestExpandSingleDayWindow(t *testing.T) {
	start := date(2025, time.January, 6)
	dates, err := Expand("FREQ=DAILY;INTERVAL=1", start, start)
	require.NoError(t, err)

	require.Len(t, dates, 1)
	assert.Equal(t, start, dates[0])
}

func TestExpandMalformedRuleFailsClosed(t *testing.T) {
	start := date(2025, time.January, 6)
	dates, err := Expand("FREQ=SOMETIMES", start, date(2026, time.January, 6))

	require.Error(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, start, dates[0])
}

func TestExpandEndBeforeStart(t *testing.T) {
	_, err := Expand("FREQ=DAILY", date(2025, time.January, 6), date(2025, time.January, 5))
	require.Error(t, err)
}

func TestExpandIsDeterministic(t *testing.T) {
	start, end := date(2025, time.January, 1), date(2025, time.June, 1)
	first, err := Expand("FREQ=DAILY;INTERVAL=3", start, end)
	require.NoError(t, err)
	second, err := Expand("FREQ=DAILY;INTERVAL=3", start, end)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolveDefaultEndClientWins(t *testing.T) {
	clientEnd := date(2025, time.February, 1)
	end := ResolveDefaultEnd("FREQ=DAILY", date(2025, time.January, 1), &clientEnd, WindowPolicy{})
	assert.Equal(t, clientEnd, end)
}

func TestResolveDefaultEndByFrequency(t *testing.T) {
	start := date(2025, time.January, 1)

	assert.Equal(t, start.AddDate(5, 0, 0), ResolveDefaultEnd("FREQ=YEARLY", start, nil, WindowPolicy{}))
	assert.Equal(t, start.AddDate(1, 0, 0), ResolveDefaultEnd("FREQ=DAILY", start, nil, WindowPolicy{}))
	assert.Equal(t, start.AddDate(1, 0, 0), ResolveDefaultEnd("FREQ=MONTHLY;INTERVAL=3", start, nil, WindowPolicy{}))
	// Unparseable rules fall into the non-yearly default; Expand reports
	// the parse failure itself.
	assert.Equal(t, start.AddDate(1, 0, 0), ResolveDefaultEnd("garbage", start, nil, WindowPolicy{}))
}

func TestResolveDefaultEndPolicyOverride(t *testing.T) {
	start := date(2025, time.January, 1)
	policy := WindowPolicy{YearlyYears: 10, DefaultYears: 2}

	assert.Equal(t, start.AddDate(10, 0, 0), ResolveDefaultEnd("FREQ=YEARLY", start, nil, policy))
	assert.Equal(t, start.AddDate(2, 0, 0), ResolveDefaultEnd("FREQ=WEEKLY", start, nil, policy))
}

func TestRewriteUntil(t *testing.T) {
	rule, err := RewriteUntil("FREQ=WEEKLY;INTERVAL=1", date(2025, time.February, 9))
	require.NoError(t, err)

	assert.Contains(t, rule, "FREQ=WEEKLY")
	assert.Contains(t, rule, "UNTIL=20250209T000000Z")

	// The rewritten rule must stop generating dates past the bound.
	dates, err := Expand(rule, date(2025, time.January, 6), date(2025, time.December, 31))
	require.NoError(t, err)
	require.NotEmpty(t, dates)
	assert.Equal(t, date(2025, time.February, 3), dates[len(dates)-1])
}

func TestRewriteUntilReplacesExistingBound(t *testing.T) {
	rule, err := RewriteUntil("FREQ=DAILY;UNTIL=20251231T000000Z", date(2025, time.March, 1))
	require.NoError(t, err)

	assert.Contains(t, rule, "UNTIL=20250301T000000Z")
	assert.NotContains(t, rule, "20251231")
}

func TestRewriteUntilDropsCount(t *testing.T) {
	rule, err := RewriteUntil("FREQ=DAILY;COUNT=100", date(2025, time.March, 1))
	require.NoError(t, err)

	assert.NotContains(t, rule, "COUNT")
	assert.Contains(t, rule, "UNTIL=20250301T000000Z")
}

func TestRewriteUntilMalformedRule(t *testing.T) {
	_, err := RewriteUntil("no rule at all", date(2025, time.March, 1))
	require.Error(t, err)
}
