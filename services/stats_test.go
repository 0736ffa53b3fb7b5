package services

import (
	"testing"
	"time"

	"concert-log-system/models"

	"github.com/stretchr/testify/require"
)

func logOn(t *testing.T, date, artistID, venueID, city, state, country string, genres ...string) models.EventLog {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	return models.EventLog{
		ExternalUserID: "user-1",
		Event: models.Event{
			ArtistID: artistID,
			Artist:   models.Artist{ID: artistID, Genres: genres},
			VenueID:  venueID,
			Venue:    models.Venue{ID: venueID, City: city, State: state, Country: country},
			Date:     d,
		},
	}
}

func TestComputeUserStatsEmptyHistory(t *testing.T) {
	stats := ComputeUserStats(nil)
	require.Equal(t, 0, stats.ShowCount)
	require.Equal(t, 0, stats.UniqueVenues)
	require.Equal(t, 0, stats.UniqueCountries)
	require.Equal(t, 0, stats.MaxArtistCount)
	require.Equal(t, 0, stats.MaxVenueCount)
	require.Equal(t, 0, stats.MaxMonthCount)
	require.Equal(t, 0, stats.MaxConsecutive)
	require.Empty(t, stats.GenreCounts)
}

func TestConsecutiveMonthStreak(t *testing.T) {
	logs := []models.EventLog{
		logOn(t, "2024-01-10", "a1", "v1", "Austin", "TX", ""),
		logOn(t, "2024-02-14", "a2", "v2", "Austin", "TX", ""),
		logOn(t, "2024-04-01", "a3", "v3", "Austin", "TX", ""),
		logOn(t, "2024-05-20", "a4", "v4", "Austin", "TX", ""),
		logOn(t, "2024-06-30", "a5", "v5", "Austin", "TX", ""),
	}
	stats := ComputeUserStats(logs)
	require.Equal(t, 3, stats.MaxConsecutive, "Apr–Jun is the longest run")
	require.Equal(t, 1, stats.MaxMonthCount)
	require.Equal(t, 5, stats.ShowCount)
}

func TestConsecutiveMonthStreakYearRollover(t *testing.T) {
	logs := []models.EventLog{
		logOn(t, "2023-11-01", "a1", "v1", "Austin", "TX", ""),
		logOn(t, "2023-12-15", "a1", "v1", "Austin", "TX", ""),
		logOn(t, "2024-01-02", "a1", "v1", "Austin", "TX", ""),
	}
	require.Equal(t, 3, ComputeUserStats(logs).MaxConsecutive)
}

func TestSingleMonthStreakIsOne(t *testing.T) {
	logs := []models.EventLog{
		logOn(t, "2024-03-01", "a1", "v1", "Austin", "TX", ""),
		logOn(t, "2024-03-22", "a2", "v1", "Austin", "TX", ""),
	}
	stats := ComputeUserStats(logs)
	require.Equal(t, 1, stats.MaxConsecutive)
	require.Equal(t, 2, stats.MaxMonthCount)
}

func TestGenreBucketsMultiGenreArtist(t *testing.T) {
	// Same artist logged twice; each log contributes to every bucket its
	// artist's genres map to.
	logs := []models.EventLog{
		logOn(t, "2024-01-10", "a1", "v1", "Austin", "TX", "", "Alt-Rock", "Indie Pop"),
		logOn(t, "2024-02-10", "a1", "v2", "Austin", "TX", "", "Alt-Rock", "Indie Pop"),
	}
	stats := ComputeUserStats(logs)
	require.Equal(t, 2, stats.GenreCounts["rock"])
	require.Equal(t, 2, stats.GenreCounts["pop"])
}

func TestNormalizeGenrePriorityOrder(t *testing.T) {
	cases := map[string]string{
		"Indie Rock":  "rock",
		"Punk Rock":   "rock", // rock wins over punk: first match in the chain
		"Pop Punk":    "pop",
		"Hip Hop":     "hip-hop",
		"Trap Rap":    "hip-hop",
		"Deep House":  "electronic",
		"EDM":         "electronic",
		"Techno":      "electronic",
		"Électro":     "electronic", // accents fold before matching
		"Country":     "country",
		"Neo-Soul":    "r&b",
		"R&B":         "r&b",
		"Smooth Jazz": "jazz",
		"Classical":   "classical",
		"Death Metal": "metal",
		"Punk":        "punk",
		"Shoegaze":    "shoegaze", // unmatched keeps its lowercased form
	}
	for raw, want := range cases {
		require.Equal(t, want, NormalizeGenre(raw), "raw genre %q", raw)
	}
}

func TestCountryFallbackAndStateSkip(t *testing.T) {
	logs := []models.EventLog{
		logOn(t, "2024-01-10", "a1", "v1", "Austin", "TX", ""),    // country defaults to USA
		logOn(t, "2024-02-10", "a2", "v2", "Dallas", "TX", "USA"), // explicit USA, same country
		logOn(t, "2024-03-10", "a3", "v3", "London", "", "UK"),    // empty state is not counted
	}
	stats := ComputeUserStats(logs)
	require.Equal(t, 2, stats.UniqueCountries)
	require.Equal(t, 1, stats.UniqueStates)
	require.Equal(t, 3, stats.UniqueCities)
}

func TestMaxFrequencyCounts(t *testing.T) {
	logs := []models.EventLog{
		logOn(t, "2024-01-01", "a1", "v1", "Austin", "TX", ""),
		logOn(t, "2024-01-05", "a1", "v2", "Austin", "TX", ""),
		logOn(t, "2024-01-09", "a1", "v2", "Austin", "TX", ""),
		logOn(t, "2024-02-01", "a2", "v2", "Austin", "TX", ""),
	}
	stats := ComputeUserStats(logs)
	require.Equal(t, 3, stats.MaxArtistCount, "a1 seen three times")
	require.Equal(t, 3, stats.MaxVenueCount, "v2 visited three times")
	require.Equal(t, 3, stats.MaxMonthCount, "three shows in 2024-01")
	require.Equal(t, 2, stats.UniqueVenues)
}

func TestGenreDisplayName(t *testing.T) {
	require.Equal(t, "Hip-Hop", GenreDisplayName("hip-hop"))
	require.Equal(t, "R&B", GenreDisplayName("r&b"))
	require.Equal(t, "Rock", GenreDisplayName("rock"))
}
