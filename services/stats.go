package services

import (
	"strings"
	"time"

	"concert-log-system/models"

	"github.com/gosimple/unidecode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultCountry is assumed when a venue has no country set.
const DefaultCountry = "USA"

// UserStats is the derived snapshot the criteria evaluator runs against.
// It is recomputed from the full log history on every check and never stored.
type UserStats struct {
	ShowCount       int            `json:"show_count"`
	UniqueVenues    int            `json:"unique_venues"`
	UniqueCities    int            `json:"unique_cities"`
	UniqueStates    int            `json:"unique_states"`
	UniqueCountries int            `json:"unique_countries"`
	MaxArtistCount  int            `json:"max_artist_count"`
	MaxVenueCount   int            `json:"max_venue_count"`
	MaxMonthCount   int            `json:"max_month_count"`
	MaxConsecutive  int            `json:"max_consecutive_months"`
	GenreCounts     map[string]int `json:"genre_counts"`
}

// genreBuckets maps raw genre strings onto canonical buckets by substring,
// checked top to bottom — order matters, ambiguous strings resolve to the
// first match ("indie rock" → rock, "rap rock" → rock).
var genreBuckets = []struct {
	bucket   string
	keywords []string
}{
	{"rock", []string{"rock"}},
	{"pop", []string{"pop"}},
	{"hip-hop", []string{"hip", "rap"}},
	{"electronic", []string{"electro", "edm", "house", "techno"}},
	{"country", []string{"country"}},
	{"r&b", []string{"r&b", "soul"}},
	{"jazz", []string{"jazz"}},
	{"classical", []string{"classical"}},
	{"metal", []string{"metal"}},
	{"punk", []string{"punk"}},
}

// NormalizeGenre folds a raw genre string into its canonical bucket.
// Unmatched genres keep their lowercased form rather than being dropped.
func NormalizeGenre(raw string) string {
	g := strings.ToLower(strings.TrimSpace(unidecode.Unidecode(raw)))
	for _, b := range genreBuckets {
		for _, kw := range b.keywords {
			if strings.Contains(g, kw) {
				return b.bucket
			}
		}
	}
	return g
}

var genreTitler = cases.Title(language.English)

// GenreDisplayName renders a bucket for user-facing payloads.
func GenreDisplayName(bucket string) string {
	if bucket == "r&b" {
		return "R&B"
	}
	return genreTitler.String(bucket)
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// monthIndex flattens a "YYYY-MM" key into a count of months so calendar
// adjacency is a difference of exactly 1 (handles year rollover).
func monthIndex(key string) int {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return -1
	}
	return t.Year()*12 + int(t.Month()) - 1
}

// ComputeUserStats aggregates a user's full log history into one snapshot.
// Logs must already be ordered by event date ascending; the consecutive-month
// walk below depends on it.
func ComputeUserStats(logs []models.EventLog) *UserStats {
	stats := &UserStats{
		ShowCount:   len(logs),
		GenreCounts: make(map[string]int),
	}

	venues := make(map[string]struct{})
	cities := make(map[string]struct{})
	states := make(map[string]struct{})
	countries := make(map[string]struct{})
	artistFreq := make(map[string]int)
	venueFreq := make(map[string]int)
	monthFreq := make(map[string]int)
	var months []string // distinct, ascending (insertion order follows log order)

	for _, entry := range logs {
		venue := entry.Event.Venue
		venues[venue.ID] = struct{}{}
		cities[venue.City] = struct{}{}
		if venue.State != "" {
			states[venue.State] = struct{}{}
		}
		country := venue.Country
		if country == "" {
			country = DefaultCountry
		}
		countries[country] = struct{}{}

		artistFreq[entry.Event.ArtistID]++
		venueFreq[venue.ID]++

		mk := monthKey(entry.Event.Date)
		if monthFreq[mk] == 0 {
			months = append(months, mk)
		}
		monthFreq[mk]++

		for _, raw := range entry.Event.Artist.Genres {
			stats.GenreCounts[NormalizeGenre(raw)]++
		}
	}

	stats.UniqueVenues = len(venues)
	stats.UniqueCities = len(cities)
	stats.UniqueStates = len(states)
	stats.UniqueCountries = len(countries)
	stats.MaxArtistCount = maxCount(artistFreq)
	stats.MaxVenueCount = maxCount(venueFreq)
	stats.MaxMonthCount = maxCount(monthFreq)
	stats.MaxConsecutive = longestMonthRun(months)

	return stats
}

func maxCount(freq map[string]int) int {
	max := 0
	for _, n := range freq {
		if n > max {
			max = n
		}
	}
	return max
}

// longestMonthRun walks ascending distinct months; a run continues only when
// the month is exactly one calendar month after the previous one.
func longestMonthRun(months []string) int {
	if len(months) == 0 {
		return 0
	}
	longest, run := 1, 1
	prev := monthIndex(months[0])
	for _, mk := range months[1:] {
		idx := monthIndex(mk)
		if idx == prev+1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = idx
	}
	return longest
}
