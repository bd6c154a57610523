package analytics

import "time"

// Window is a half-open date interval [From, To).
type Window struct {
	From time.Time
	To   time.Time
}

// Contains reports whether d falls inside the window. A zero From or To
// leaves that side unbounded.
func (w Window) Contains(d time.Time) bool {
	if !w.From.IsZero() && d.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && !d.Before(w.To) {
		return false
	}
	return true
}

// Periods defines the reference windows the KPIs compare against.
type Periods struct {
	// Baseline covers the pre-pandemic days (everything before the first
	// emergency declaration).
	Baseline Window
	// PandemicStart bounds the "highest ridership day" search.
	PandemicStart time.Time
	// Lockdown is the initial lockdown window; PostLockdown is everything
	// after it.
	Lockdown     Window
	PostLockdown Window
	// Current and FirstPostPandemic are matching early-October sample
	// windows used for recovery and the comparison table.
	Current           Window
	FirstPostPandemic Window
	// PreviousOctober and CurrentOctober are the full months compared for
	// year-on-year growth.
	PreviousOctober Window
	CurrentOctober  Window
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DefaultPeriods returns the reference windows of the MTA dataset.
func DefaultPeriods() Periods {
	return Periods{
		Baseline:          Window{To: day(2020, time.March, 11)},
		PandemicStart:     day(2020, time.March, 1),
		Lockdown:          Window{From: day(2020, time.March, 11), To: day(2020, time.June, 9)},
		PostLockdown:      Window{From: day(2020, time.June, 9)},
		Current:           Window{From: day(2024, time.October, 1), To: day(2024, time.October, 11)},
		FirstPostPandemic: Window{From: day(2021, time.October, 1), To: day(2021, time.October, 11)},
		PreviousOctober:   Window{From: day(2023, time.October, 1), To: day(2023, time.November, 1)},
		CurrentOctober:    Window{From: day(2024, time.October, 1), To: day(2024, time.November, 1)},
	}
}
