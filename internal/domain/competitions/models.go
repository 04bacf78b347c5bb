package competitions

import "sort"

// Competition is one competition/season pair available in the open dataset.
type Competition struct {
	CompetitionID            int    `json:"competition_id"`
	SeasonID                 int    `json:"season_id"`
	CountryName              string `json:"country_name"`
	CompetitionName          string `json:"competition_name"`
	CompetitionGender        string `json:"competition_gender"`
	CompetitionYouth         bool   `json:"competition_youth"`
	CompetitionInternational bool   `json:"competition_international"`
	SeasonName               string `json:"season_name"`
	MatchUpdated             string `json:"match_updated,omitempty"`
	MatchAvailable           string `json:"match_available,omitempty"`
}

// Code maps a short client-facing competition code (e.g. "PL") to its dataset id.
type Code struct {
	Code    string `json:"code" yaml:"code"`
	ID      int    `json:"id" yaml:"id"`
	Country string `json:"country,omitempty" yaml:"country"`
}

// SeasonIDs returns the distinct season ids for a competition, newest (highest id) first.
func SeasonIDs(items []Competition, competitionID int) []int {
	seen := make(map[int]struct{})
	out := make([]int, 0)
	for _, c := range items {
		if c.CompetitionID != competitionID {
			continue
		}
		if _, ok := seen[c.SeasonID]; ok {
			continue
		}
		seen[c.SeasonID] = struct{}{}
		out = append(out, c.SeasonID)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// Contains reports whether the catalog lists the competition id.
func Contains(items []Competition, competitionID int) bool {
	for _, c := range items {
		if c.CompetitionID == competitionID {
			return true
		}
	}
	return false
}
