package services

import (
	"math"

	"concert-log-system/models"
)

// CriterionResult is the outcome of checking one criterion against a snapshot.
type CriterionResult struct {
	Earned  bool
	Current int
	Target  int
}

// EvaluateCriterion is a pure dispatch over every models.CriterionType.
// Counting criteria are all "current >= target"; the festival and
// distance_traveled cases are stated incompleteness, never earned until the
// data behind them exists. Adding a CriterionType constant without a case here
// makes the new criterion silently unearnable — badge_catalog_test keeps the
// two in lockstep.
func EvaluateCriterion(c models.Criterion, stats *UserStats) CriterionResult {
	switch c.Type {
	case models.CriterionFirstShow:
		return thresholdResult(stats.ShowCount, 1)
	case models.CriterionShowCount:
		return thresholdResult(stats.ShowCount, c.Count)
	case models.CriterionShowsInMonth:
		return thresholdResult(stats.MaxMonthCount, c.Count)
	case models.CriterionConsecutiveMonths:
		return thresholdResult(stats.MaxConsecutive, c.Count)
	case models.CriterionSameArtist:
		return thresholdResult(stats.MaxArtistCount, c.Count)
	case models.CriterionSameVenue:
		return thresholdResult(stats.MaxVenueCount, c.Count)
	case models.CriterionUniqueVenues:
		return thresholdResult(stats.UniqueVenues, c.Count)
	case models.CriterionUniqueCities:
		return thresholdResult(stats.UniqueCities, c.Count)
	case models.CriterionUniqueStates:
		return thresholdResult(stats.UniqueStates, c.Count)
	case models.CriterionUniqueCountries:
		return thresholdResult(stats.UniqueCountries, c.Count)
	case models.CriterionGenreShows:
		return thresholdResult(stats.GenreCounts[c.Genre], c.Count)
	case models.CriterionFestival:
		// Event rows have no festival flag yet.
		return CriterionResult{Earned: false, Current: 0, Target: 1}
	case models.CriterionDistanceTraveled:
		// Needs user home location + venue coordinates, neither exists yet.
		return CriterionResult{Earned: false, Current: 0, Target: c.Miles}
	default:
		return CriterionResult{}
	}
}

func thresholdResult(current, target int) CriterionResult {
	return CriterionResult{
		Earned:  current >= target,
		Current: current,
		Target:  target,
	}
}

// ProgressPercentage clamps progress into 0..100; a zero target always reads 0.
func ProgressPercentage(current, target int) int {
	if target <= 0 {
		return 0
	}
	pct := 100 * float64(current) / float64(target)
	if pct > 100 {
		pct = 100
	}
	return int(math.Round(pct))
}
