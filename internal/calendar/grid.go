package calendar

// Cell is a single grid slot. The zero value is an empty padding slot;
// any other value is a day of month.
type Cell int

// Empty reports whether the cell is padding.
func (c Cell) Empty() bool { return c <= 0 }

// Week holds 7 cells, except the last week of a month which is kept short
// rather than padded.
type Week []Cell

// MonthGrid is the weekday-aligned layout of one month.
type MonthGrid struct {
	Year  int
	Month int // 0=January
	Weeks []Week
}

// BuildMonth lays out month (0=January) of year as weeks starting on Sunday.
// The first week begins with one empty cell per weekday before the 1st.
func BuildMonth(year, month int) (MonthGrid, error) {
	first, err := FirstWeekday(year, month)
	if err != nil {
		return MonthGrid{}, err
	}
	n := daysIn(year, month)
	offset := int(first)

	weeks := make([]Week, 0, (offset+n+6)/7)
	cur := make(Week, offset, 7)
	for day := 1; day <= n; day++ {
		cur = append(cur, Cell(day))
		if len(cur) == 7 {
			weeks = append(weeks, cur)
			cur = make(Week, 0, 7)
		}
	}
	if len(cur) > 0 {
		weeks = append(weeks, cur)
	}

	return MonthGrid{Year: year, Month: month, Weeks: weeks}, nil
}

// Days returns the non-empty cells in order.
func (g MonthGrid) Days() []int {
	var out []int
	for _, w := range g.Weeks {
		for _, c := range w {
			if !c.Empty() {
				out = append(out, int(c))
			}
		}
	}
	return out
}

// Cell returns the cell at (week, slot). ok is false when the position lies
// outside the grid, including past a short final week.
func (g MonthGrid) Cell(week, slot int) (c Cell, ok bool) {
	if week < 0 || week >= len(g.Weeks) {
		return 0, false
	}
	w := g.Weeks[week]
	if slot < 0 || slot >= len(w) {
		return 0, false
	}
	return w[slot], true
}
