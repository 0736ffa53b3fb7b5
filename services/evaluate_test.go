package services

import (
	"testing"

	"concert-log-system/models"

	"github.com/stretchr/testify/require"
)

// richStats has every derived value distinct so a criterion wired to the wrong
// field fails loudly.
func richStats() *UserStats {
	return &UserStats{
		ShowCount:       7,
		UniqueVenues:    8,
		UniqueCities:    9,
		UniqueStates:    2,
		UniqueCountries: 1,
		MaxArtistCount:  5,
		MaxVenueCount:   6,
		MaxMonthCount:   4,
		MaxConsecutive:  3,
		GenreCounts:     map[string]int{"rock": 11, "jazz": 2},
	}
}

func TestShowCountBoundary(t *testing.T) {
	res := EvaluateCriterion(models.Criterion{Type: models.CriterionShowCount, Count: 5}, &UserStats{ShowCount: 5})
	require.True(t, res.Earned)
	require.Equal(t, 5, res.Current)
	require.Equal(t, 5, res.Target)

	res = EvaluateCriterion(models.Criterion{Type: models.CriterionShowCount, Count: 5}, &UserStats{ShowCount: 4})
	require.False(t, res.Earned)
	require.Equal(t, 4, res.Current)
	require.Equal(t, 5, res.Target)
}

func TestFirstShow(t *testing.T) {
	res := EvaluateCriterion(models.Criterion{Type: models.CriterionFirstShow}, &UserStats{})
	require.False(t, res.Earned)
	require.Equal(t, 1, res.Target)

	res = EvaluateCriterion(models.Criterion{Type: models.CriterionFirstShow}, &UserStats{ShowCount: 1})
	require.True(t, res.Earned)
}

func TestCriterionFieldWiring(t *testing.T) {
	stats := richStats()
	cases := []struct {
		criterion models.Criterion
		current   int
	}{
		{models.Criterion{Type: models.CriterionShowCount, Count: 100}, 7},
		{models.Criterion{Type: models.CriterionShowsInMonth, Count: 100}, 4},
		{models.Criterion{Type: models.CriterionConsecutiveMonths, Count: 100}, 3},
		{models.Criterion{Type: models.CriterionSameArtist, Count: 100}, 5},
		{models.Criterion{Type: models.CriterionSameVenue, Count: 100}, 6},
		{models.Criterion{Type: models.CriterionUniqueVenues, Count: 100}, 8},
		{models.Criterion{Type: models.CriterionUniqueCities, Count: 100}, 9},
		{models.Criterion{Type: models.CriterionUniqueStates, Count: 100}, 2},
		{models.Criterion{Type: models.CriterionUniqueCountries, Count: 100}, 1},
		{models.Criterion{Type: models.CriterionGenreShows, Genre: "rock", Count: 100}, 11},
	}
	for _, tc := range cases {
		res := EvaluateCriterion(tc.criterion, stats)
		require.Equal(t, tc.current, res.Current, "criterion %s", tc.criterion.Type)
		require.Equal(t, 100, res.Target, "criterion %s", tc.criterion.Type)
		require.False(t, res.Earned, "criterion %s", tc.criterion.Type)
	}
}

func TestGenreShowsMissingBucket(t *testing.T) {
	res := EvaluateCriterion(models.Criterion{Type: models.CriterionGenreShows, Genre: "metal", Count: 10}, richStats())
	require.False(t, res.Earned)
	require.Equal(t, 0, res.Current)
	require.Equal(t, 10, res.Target)
}

func TestPlaceholderCriteriaNeverEarn(t *testing.T) {
	stats := richStats()

	res := EvaluateCriterion(models.Criterion{Type: models.CriterionFestival}, stats)
	require.False(t, res.Earned)
	require.Equal(t, 0, res.Current)
	require.Equal(t, 1, res.Target)

	res = EvaluateCriterion(models.Criterion{Type: models.CriterionDistanceTraveled, Miles: 500}, stats)
	require.False(t, res.Earned)
	require.Equal(t, 0, res.Current)
	require.Equal(t, 500, res.Target)
}

func TestEvaluateDoesNotMutateSnapshot(t *testing.T) {
	stats := richStats()
	for _, def := range models.BadgeCatalog {
		EvaluateCriterion(def.Criterion, stats)
	}
	require.Equal(t, richStats(), stats)
}

func TestProgressPercentage(t *testing.T) {
	require.Equal(t, 0, ProgressPercentage(0, 0))
	require.Equal(t, 0, ProgressPercentage(5, 0), "zero target always reads 0")
	require.Equal(t, 30, ProgressPercentage(3, 10))
	require.Equal(t, 33, ProgressPercentage(1, 3))
	require.Equal(t, 67, ProgressPercentage(2, 3))
	require.Equal(t, 100, ProgressPercentage(7, 3), "capped at 100")
	require.Equal(t, 0, ProgressPercentage(0, 10))
}
