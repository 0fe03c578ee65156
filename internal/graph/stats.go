package graph

import "github.com/fchimpan/gh-kusa-graph/internal/calendar"

// MonthStats summarises one month of activity.
type MonthStats struct {
	Month      int
	Total      int
	ActiveDays int
	BusiestDay int // 0 when the month had no activity
	BusiestMax int
}

// Stats returns per-month summaries, January first.
func (v *YearView) Stats() [12]MonthStats {
	var out [12]MonthStats
	for m := range out {
		st := MonthStats{Month: m}
		n, _ := calendar.DaysInMonth(v.year, m)
		for d := 1; d <= n; d++ {
			c, err := v.Count(m, d)
			if err != nil || c <= 0 {
				continue
			}
			st.Total += c
			st.ActiveDays++
			if c > st.BusiestMax {
				st.BusiestMax = c
				st.BusiestDay = d
			}
		}
		out[m] = st
	}
	return out
}
