package dataset

// renameTable maps the raw MTA export headers to the short display names used
// everywhere downstream. The mapping is exact and case-sensitive; columns not
// listed here pass through unchanged.
var renameTable = []struct {
	raw   string
	short string
}{
	{"Subways: Total Estimated Ridership", "Subways"},
	{"Subways: % of Comparable Pre-Pandemic Day", "Subways: % of Pre-Pandemic"},
	{"Buses: Total Estimated Ridership", "Buses"},
	{"Buses: % of Comparable Pre-Pandemic Day", "Buses: % of Pre-Pandemic"},
	{"LIRR: Total Estimated Ridership", "LIRR"},
	{"LIRR: % of Comparable Pre-Pandemic Day", "LIRR: % of Pre-Pandemic"},
	{"Metro-North: Total Estimated Ridership", "Metro-North"},
	{"Metro-North: % of Comparable Pre-Pandemic Day", "Metro-North: % of Pre-Pandemic"},
	{"Access-A-Ride: Total Scheduled Trips", "Access-A-Ride"},
	{"Access-A-Ride: % of Comparable Pre-Pandemic Day", "Access-A-Ride: % of Pre-Pandemic"},
	{"Bridges and Tunnels: Total Traffic", "Bridges and Tunnels"},
	{"Bridges and Tunnels: % of Comparable Pre-Pandemic Day", "Bridges and Tunnels: % of Pre-Pandemic"},
	{"Staten Island Railway: Total Estimated Ridership", "Staten Island Railway"},
	{"Staten Island Railway: % of Comparable Pre-Pandemic Day", "Staten Island Railway: % of Pre-Pandemic"},
}

// Normalize renames the raw export columns to their short display names.
// Row count and date ordering are unchanged.
func Normalize(t *Table) *Table {
	df := t.df
	for _, m := range renameTable {
		if !hasColumn(df, m.raw) {
			continue
		}
		df = df.Rename(m.short, m.raw)
	}
	return &Table{df: df, dates: t.dates}
}
