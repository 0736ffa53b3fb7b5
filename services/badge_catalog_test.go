package services

import (
	"testing"

	"concert-log-system/models"

	"github.com/stretchr/testify/require"
)

var knownCriterionTypes = map[models.CriterionType]bool{
	models.CriterionFirstShow:         true,
	models.CriterionShowCount:         true,
	models.CriterionShowsInMonth:      true,
	models.CriterionConsecutiveMonths: true,
	models.CriterionSameArtist:        true,
	models.CriterionSameVenue:         true,
	models.CriterionUniqueVenues:      true,
	models.CriterionUniqueCities:      true,
	models.CriterionUniqueStates:      true,
	models.CriterionUniqueCountries:   true,
	models.CriterionGenreShows:        true,
	models.CriterionFestival:          true,
	models.CriterionDistanceTraveled:  true,
}

var validCategories = map[string]bool{
	models.BadgeCategoryMilestone: true,
	models.BadgeCategoryStreak:    true,
	models.BadgeCategoryLoyalty:   true,
	models.BadgeCategoryExplorer:  true,
	models.BadgeCategoryTraveler:  true,
	models.BadgeCategoryGenre:     true,
	models.BadgeCategoryVenue:     true,
	models.BadgeCategorySpecial:   true,
}

var validRarities = map[string]bool{
	models.RarityCommon:    true,
	models.RarityUncommon:  true,
	models.RarityRare:      true,
	models.RarityEpic:      true,
	models.RarityLegendary: true,
}

func TestCatalogKeysAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range models.BadgeCatalog {
		require.NotEmpty(t, def.Key)
		require.False(t, seen[def.Key], "duplicate badge key %s", def.Key)
		seen[def.Key] = true
	}
}

func TestCatalogEntriesAreWellFormed(t *testing.T) {
	for _, def := range models.BadgeCatalog {
		require.NotEmpty(t, def.Name, "badge %s", def.Key)
		require.True(t, validCategories[def.Category], "badge %s has unknown category %q", def.Key, def.Category)
		require.True(t, validRarities[def.Rarity], "badge %s has unknown rarity %q", def.Key, def.Rarity)
		require.GreaterOrEqual(t, def.Points, 0, "badge %s", def.Key)
		require.True(t, knownCriterionTypes[def.Criterion.Type],
			"badge %s has criterion type %q the evaluator does not handle", def.Key, def.Criterion.Type)
	}
}

// Every catalog entry must evaluate to a positive target, otherwise its
// progress percentage is pinned to zero forever.
func TestCatalogCriteriaAreEvaluable(t *testing.T) {
	stats := &UserStats{GenreCounts: map[string]int{}}
	for _, def := range models.BadgeCatalog {
		res := EvaluateCriterion(def.Criterion, stats)
		require.Positive(t, res.Target, "badge %s evaluates with no target", def.Key)
	}
}

// Genre criteria must name canonical buckets, or no log could ever count
// toward them.
func TestCatalogGenreCriteriaUseCanonicalBuckets(t *testing.T) {
	for _, def := range models.BadgeCatalog {
		if def.Criterion.Type != models.CriterionGenreShows {
			continue
		}
		require.NotEmpty(t, def.Criterion.Genre, "badge %s", def.Key)
		require.Equal(t, def.Criterion.Genre, NormalizeGenre(def.Criterion.Genre),
			"badge %s genre %q is not a canonical bucket", def.Key, def.Criterion.Genre)
	}
}

func TestFreshUserEarnsNothing(t *testing.T) {
	stats := ComputeUserStats(nil)
	for _, def := range models.BadgeCatalog {
		res := EvaluateCriterion(def.Criterion, stats)
		require.False(t, res.Earned, "badge %s earned with empty history", def.Key)
		pct := ProgressPercentage(res.Current, res.Target)
		require.GreaterOrEqual(t, pct, 0)
		require.LessOrEqual(t, pct, 100)
	}
}
