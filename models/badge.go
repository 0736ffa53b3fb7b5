package models

import (
	"time"
)

// CriterionType discriminates how a badge criterion is evaluated.
// services.EvaluateCriterion must handle every constant declared here.
type CriterionType string

const (
	CriterionFirstShow         CriterionType = "first_show"
	CriterionShowCount         CriterionType = "show_count"
	CriterionShowsInMonth      CriterionType = "shows_in_month"
	CriterionConsecutiveMonths CriterionType = "consecutive_months"
	CriterionSameArtist        CriterionType = "same_artist"
	CriterionSameVenue         CriterionType = "same_venue"
	CriterionUniqueVenues      CriterionType = "unique_venues"
	CriterionUniqueCities      CriterionType = "unique_cities"
	CriterionUniqueStates      CriterionType = "unique_states"
	CriterionUniqueCountries   CriterionType = "unique_countries"
	CriterionGenreShows        CriterionType = "genre_shows"
	CriterionFestival          CriterionType = "festival"          // placeholder: event rows carry no festival flag yet
	CriterionDistanceTraveled  CriterionType = "distance_traveled" // placeholder: no home location / venue coords yet
)

// Criterion is the single evaluation rule attached to a badge definition.
// Count is the threshold for every counting criterion; Genre is only set for
// genre_shows; Miles only for distance_traveled.
type Criterion struct {
	Type  CriterionType `json:"type"`
	Count int           `json:"count,omitempty"`
	Genre string        `json:"genre,omitempty"`
	Miles int           `json:"miles,omitempty"`
}

const (
	BadgeCategoryMilestone = "milestone"
	BadgeCategoryStreak    = "streak"
	BadgeCategoryLoyalty   = "loyalty"
	BadgeCategoryExplorer  = "explorer"
	BadgeCategoryTraveler  = "traveler"
	BadgeCategoryGenre     = "genre"
	BadgeCategoryVenue     = "venue"
	BadgeCategorySpecial   = "special"
)

const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// BadgeDefinition is an in-process catalog entry. Key is stable and never
// reused; the durable badges table is overwritten to match on every sync.
type BadgeDefinition struct {
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Rarity      string    `json:"rarity"`
	Icon        string    `json:"icon"`
	Points      int       `json:"points"`
	Criterion   Criterion `json:"criterion"`
}

// Badge is the durable mirror of a BadgeDefinition (source of truth is
// BadgeCatalog below; rows exist so awards have an id to attach to).
type Badge struct {
	ID             string        `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Key            string        `gorm:"uniqueIndex;not null" json:"key"`
	Name           string        `gorm:"not null" json:"name"`
	Description    string        `json:"description"`
	Category       string        `gorm:"type:varchar(16)" json:"category"`
	Rarity         string        `gorm:"type:varchar(16);default:'common'" json:"rarity"`
	IconURL        string        `gorm:"type:text" json:"icon_url"`
	Points         int           `gorm:"default:0" json:"points"`
	CriterionType  CriterionType `gorm:"type:varchar(32);not null" json:"criterion_type"`
	CriterionCount int           `json:"criterion_count"`
	CriterionGenre string        `json:"criterion_genre"`
	CriterionMiles int           `json:"criterion_miles"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

// UserBadge records one earned badge. The composite unique index is what makes
// concurrent award attempts for the same pair collapse to a single row.
type UserBadge struct {
	ID             string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ExternalUserID string    `gorm:"not null;uniqueIndex:idx_user_badge_once" json:"external_user_id"`
	BadgeID        string    `gorm:"not null;uniqueIndex:idx_user_badge_once" json:"badge_id"`
	EventID        *string   `json:"event_id,omitempty"` // show that tipped the badge over, if known
	AwardedAt      time.Time `gorm:"autoCreateTime" json:"awarded_at"`
}

// BadgeProgress reports how close a user is to an unearned badge.
type BadgeProgress struct {
	Badge      BadgeDefinition `json:"badge"`
	Current    int             `json:"current"`
	Target     int             `json:"target"`
	Percentage int             `json:"percentage"`
	IsEarned   bool            `json:"is_earned"`
}

// EarnedBadge is one awarded badge joined back to its catalog definition.
type EarnedBadge struct {
	ID       string          `json:"id"`
	Badge    BadgeDefinition `json:"badge"`
	EarnedAt time.Time       `json:"earned_at"`
	EventID  *string         `json:"event_id,omitempty"`
}

// BadgeCatalog is the full badge set. Keys are append-only: retire a badge by
// removing it here, never by reassigning its key.
var BadgeCatalog = []BadgeDefinition{
	// Milestones
	{Key: "FIRST_SHOW", Name: "First Show", Description: "Logged your first show", Category: BadgeCategoryMilestone, Rarity: RarityCommon, Icon: "🎤", Points: 10,
		Criterion: Criterion{Type: CriterionFirstShow}},
	{Key: "SHOWS_5", Name: "Getting Started", Description: "Logged 5 shows", Category: BadgeCategoryMilestone, Rarity: RarityCommon, Icon: "🎸", Points: 25,
		Criterion: Criterion{Type: CriterionShowCount, Count: 5}},
	{Key: "SHOWS_10", Name: "Regular", Description: "Logged 10 shows", Category: BadgeCategoryMilestone, Rarity: RarityUncommon, Icon: "🎶", Points: 50,
		Criterion: Criterion{Type: CriterionShowCount, Count: 10}},
	{Key: "SHOWS_25", Name: "Dedicated", Description: "Logged 25 shows", Category: BadgeCategoryMilestone, Rarity: RarityRare, Icon: "🎟️", Points: 100,
		Criterion: Criterion{Type: CriterionShowCount, Count: 25}},
	{Key: "SHOWS_50", Name: "Devoted", Description: "Logged 50 shows", Category: BadgeCategoryMilestone, Rarity: RarityEpic, Icon: "🏟️", Points: 250,
		Criterion: Criterion{Type: CriterionShowCount, Count: 50}},
	{Key: "SHOWS_100", Name: "Century Club", Description: "Logged 100 shows", Category: BadgeCategoryMilestone, Rarity: RarityLegendary, Icon: "💯", Points: 500,
		Criterion: Criterion{Type: CriterionShowCount, Count: 100}},

	// Streaks
	{Key: "MONTH_4", Name: "Big Month", Description: "4 shows in a single month", Category: BadgeCategoryStreak, Rarity: RarityUncommon, Icon: "📅", Points: 50,
		Criterion: Criterion{Type: CriterionShowsInMonth, Count: 4}},
	{Key: "MONTH_8", Name: "Marathon Month", Description: "8 shows in a single month", Category: BadgeCategoryStreak, Rarity: RarityEpic, Icon: "🔥", Points: 150,
		Criterion: Criterion{Type: CriterionShowsInMonth, Count: 8}},
	{Key: "STREAK_3", Name: "On a Roll", Description: "Shows in 3 consecutive months", Category: BadgeCategoryStreak, Rarity: RarityUncommon, Icon: "📈", Points: 50,
		Criterion: Criterion{Type: CriterionConsecutiveMonths, Count: 3}},
	{Key: "STREAK_6", Name: "Half-Year Habit", Description: "Shows in 6 consecutive months", Category: BadgeCategoryStreak, Rarity: RarityRare, Icon: "🗓️", Points: 125,
		Criterion: Criterion{Type: CriterionConsecutiveMonths, Count: 6}},
	{Key: "STREAK_12", Name: "Full Calendar", Description: "Shows in 12 consecutive months", Category: BadgeCategoryStreak, Rarity: RarityLegendary, Icon: "🌕", Points: 300,
		Criterion: Criterion{Type: CriterionConsecutiveMonths, Count: 12}},

	// Loyalty
	{Key: "ARTIST_3", Name: "Fan", Description: "Saw the same artist 3 times", Category: BadgeCategoryLoyalty, Rarity: RarityUncommon, Icon: "⭐", Points: 50,
		Criterion: Criterion{Type: CriterionSameArtist, Count: 3}},
	{Key: "ARTIST_5", Name: "Superfan", Description: "Saw the same artist 5 times", Category: BadgeCategoryLoyalty, Rarity: RarityRare, Icon: "🌟", Points: 100,
		Criterion: Criterion{Type: CriterionSameArtist, Count: 5}},
	{Key: "ARTIST_10", Name: "Groupie", Description: "Saw the same artist 10 times", Category: BadgeCategoryLoyalty, Rarity: RarityLegendary, Icon: "✨", Points: 250,
		Criterion: Criterion{Type: CriterionSameArtist, Count: 10}},

	// Venues
	{Key: "VENUE_REGULAR", Name: "House Regular", Description: "5 shows at the same venue", Category: BadgeCategoryVenue, Rarity: RarityUncommon, Icon: "🏠", Points: 50,
		Criterion: Criterion{Type: CriterionSameVenue, Count: 5}},
	{Key: "VENUE_FIXTURE", Name: "Part of the Furniture", Description: "10 shows at the same venue", Category: BadgeCategoryVenue, Rarity: RarityEpic, Icon: "🪑", Points: 150,
		Criterion: Criterion{Type: CriterionSameVenue, Count: 10}},

	// Explorer
	{Key: "VENUES_5", Name: "Scene Explorer", Description: "Visited 5 different venues", Category: BadgeCategoryExplorer, Rarity: RarityCommon, Icon: "🧭", Points: 25,
		Criterion: Criterion{Type: CriterionUniqueVenues, Count: 5}},
	{Key: "VENUES_10", Name: "Venue Hopper", Description: "Visited 10 different venues", Category: BadgeCategoryExplorer, Rarity: RarityUncommon, Icon: "🗺️", Points: 75,
		Criterion: Criterion{Type: CriterionUniqueVenues, Count: 10}},
	{Key: "VENUES_25", Name: "Venue Collector", Description: "Visited 25 different venues", Category: BadgeCategoryExplorer, Rarity: RarityEpic, Icon: "🏛️", Points: 200,
		Criterion: Criterion{Type: CriterionUniqueVenues, Count: 25}},

	// Traveler
	{Key: "CITIES_5", Name: "Road Tripper", Description: "Shows in 5 different cities", Category: BadgeCategoryTraveler, Rarity: RarityUncommon, Icon: "🚗", Points: 75,
		Criterion: Criterion{Type: CriterionUniqueCities, Count: 5}},
	{Key: "CITIES_10", Name: "Tour Bus", Description: "Shows in 10 different cities", Category: BadgeCategoryTraveler, Rarity: RarityRare, Icon: "🚌", Points: 150,
		Criterion: Criterion{Type: CriterionUniqueCities, Count: 10}},
	{Key: "STATES_5", Name: "State Lines", Description: "Shows in 5 different states", Category: BadgeCategoryTraveler, Rarity: RarityRare, Icon: "🛣️", Points: 125,
		Criterion: Criterion{Type: CriterionUniqueStates, Count: 5}},
	{Key: "STATES_10", Name: "Interstate", Description: "Shows in 10 different states", Category: BadgeCategoryTraveler, Rarity: RarityEpic, Icon: "🗽", Points: 250,
		Criterion: Criterion{Type: CriterionUniqueStates, Count: 10}},
	{Key: "COUNTRIES_2", Name: "Passport Stamp", Description: "Shows in 2 different countries", Category: BadgeCategoryTraveler, Rarity: RarityRare, Icon: "🛂", Points: 150,
		Criterion: Criterion{Type: CriterionUniqueCountries, Count: 2}},
	{Key: "COUNTRIES_5", Name: "World Tour", Description: "Shows in 5 different countries", Category: BadgeCategoryTraveler, Rarity: RarityLegendary, Icon: "🌍", Points: 400,
		Criterion: Criterion{Type: CriterionUniqueCountries, Count: 5}},

	// Genres
	{Key: "GENRE_ROCK_10", Name: "Rocker", Description: "10 rock shows", Category: BadgeCategoryGenre, Rarity: RarityUncommon, Icon: "🤘", Points: 75,
		Criterion: Criterion{Type: CriterionGenreShows, Genre: "rock", Count: 10}},
	{Key: "GENRE_POP_10", Name: "Pop Star", Description: "10 pop shows", Category: BadgeCategoryGenre, Rarity: RarityUncommon, Icon: "🎙️", Points: 75,
		Criterion: Criterion{Type: CriterionGenreShows, Genre: "pop", Count: 10}},
	{Key: "GENRE_HIPHOP_10", Name: "Head Nodder", Description: "10 hip-hop shows", Category: BadgeCategoryGenre, Rarity: RarityUncommon, Icon: "🎧", Points: 75,
		Criterion: Criterion{Type: CriterionGenreShows, Genre: "hip-hop", Count: 10}},
	{Key: "GENRE_ELECTRONIC_10", Name: "Raver", Description: "10 electronic shows", Category: BadgeCategoryGenre, Rarity: RarityUncommon, Icon: "🎛️", Points: 75,
		Criterion: Criterion{Type: CriterionGenreShows, Genre: "electronic", Count: 10}},
	{Key: "GENRE_COUNTRY_10", Name: "Boot Scooter", Description: "10 country shows", Category: BadgeCategoryGenre, Rarity: RarityUncommon, Icon: "🤠", Points: 75,
		Criterion: Criterion{Type: CriterionGenreShows, Genre: "country", Count: 10}},
	{Key: "GENRE_JAZZ_5", Name: "Night Owl", Description: "5 jazz shows", Category: BadgeCategoryGenre, Rarity: RarityRare, Icon: "🎷", Points: 100,
		Criterion: Criterion{Type: CriterionGenreShows, Genre: "jazz", Count: 5}},
	{Key: "GENRE_METAL_10", Name: "Pit Veteran", Description: "10 metal shows", Category: BadgeCategoryGenre, Rarity: RarityRare, Icon: "⚡", Points: 100,
		Criterion: Criterion{Type: CriterionGenreShows, Genre: "metal", Count: 10}},

	// Special — criteria stay unearned until the data behind them exists (see
	// the CriterionFestival / CriterionDistanceTraveled notes above).
	{Key: "FESTIVAL_FIRST", Name: "Festival Season", Description: "Attended a festival", Category: BadgeCategorySpecial, Rarity: RarityRare, Icon: "⛺", Points: 100,
		Criterion: Criterion{Type: CriterionFestival}},
	{Key: "MILES_500", Name: "Worth the Drive", Description: "Traveled 500 miles for shows", Category: BadgeCategorySpecial, Rarity: RarityEpic, Icon: "🧳", Points: 200,
		Criterion: Criterion{Type: CriterionDistanceTraveled, Miles: 500}},
}
