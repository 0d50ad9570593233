package model

const EntityName = "stats"

// PeopleRangeEstimates maps a private reservation people range to the headcount
// it counts for in the daily stats.
var PeopleRangeEstimates = map[string]int{
	"under10": 5,
	"10to30":  20,
	"30to50":  40,
	"over50":  60,
}

// Totals is one kind's aggregate for a day. Headcount only covers accepted records.
type Totals struct {
	Count     int `db:"count"`
	Accepted  int `db:"accepted"`
	Headcount int `db:"headcount"`
}

type PeopleRangeCount struct {
	PeopleRange string `db:"people_range"`
	Count       int    `db:"count"`
}

// EstimateHeadcount sums the representative headcount of every range. Unknown ranges
// count as zero.
func EstimateHeadcount(ranges []PeopleRangeCount) int {
	total := 0

	for _, r := range ranges {
		total += PeopleRangeEstimates[r.PeopleRange] * r.Count
	}

	return total
}
