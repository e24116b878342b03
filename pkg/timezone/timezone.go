package timezone

import "time"

// Category classifies a zone family for the framework.
type Category string

const (
	// CategorySolar marks zones derived purely from geographic position.
	CategorySolar Category = "Solar"
)

// Zone is the capability interface every time zone implementation must
// satisfy.
type Zone interface {
	// OffsetForInstant returns the UTC offset in whole seconds that
	// applies at the given UTC instant.
	OffsetForInstant(t time.Time) int

	// OffsetForLocalInstant returns the UTC offset in whole seconds that
	// applies at the given local instant. For fixed-offset zones this
	// always agrees with OffsetForInstant.
	OffsetForLocalInstant(t time.Time) int

	// ShortName returns the zone's abbreviation at the given instant.
	ShortName(t time.Time) string

	// IsFloating reports whether the zone floats (has no defined offset).
	IsFloating() bool

	// IsUTC reports whether the zone is UTC itself.
	IsUTC() bool

	// IsOlson reports whether the zone comes from the IANA/Olson database.
	IsOlson() bool

	// IsDSTForInstant reports whether daylight saving is in effect at the
	// given instant.
	IsDSTForInstant(t time.Time) bool

	// Category returns the zone's family classification.
	Category() Category
}
