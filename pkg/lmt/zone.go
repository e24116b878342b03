package lmt

import (
	"errors"
	"math"
	"time"

	"github.com/solartime/lmt-go/pkg/offset"
	"github.com/solartime/lmt-go/pkg/timezone"
)

// Zone errors.
var (
	ErrInvalidLongitude = errors.New("longitude out of range [-180, 180]")
)

// Longitude bounds in degrees.
const (
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// halfDaySeconds is the offset at ±180°: 12 hours.
const halfDaySeconds = 43200

// shortName is the abbreviation for every LMT zone.
const shortName = "LMT"

// Config configures a new LMT zone.
type Config struct {
	// Longitude is the geographic longitude in degrees, east positive.
	// Required; must lie within [-180, 180].
	Longitude float64

	// Name is an optional display name for the zone.
	Name string
}

// Validate checks the configuration.
func (c Config) Validate() error {
	return validateLongitude(c.Longitude)
}

func validateLongitude(longitude float64) error {
	// NaN compares false against the bounds, so reject non-finite
	// values explicitly.
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return ErrInvalidLongitude
	}
	if longitude < MinLongitude || longitude > MaxLongitude {
		return ErrInvalidLongitude
	}
	return nil
}

// OffsetAtLongitude returns the Local Mean Time offset for a longitude.
// The mapping is linear, rounded to the nearest whole second:
// offsetSeconds = round(longitude / 180 * 43200).
// Returns ErrInvalidLongitude for values outside [-180, 180].
func OffsetAtLongitude(longitude float64) (offset.Offset, error) {
	if err := validateLongitude(longitude); err != nil {
		return 0, err
	}
	seconds := int(math.Round(longitude / 180 * halfDaySeconds))
	return offset.Offset(seconds), nil
}

// Zone is a Local Mean Time zone for a single longitude.
// The offset is derived from the longitude and recomputed on every
// longitude change; it is never set independently.
type Zone struct {
	longitude float64
	off       offset.Offset
	name      string
}

// New creates an LMT zone from the given configuration.
// Returns ErrInvalidLongitude if the longitude is out of range.
func New(cfg Config) (*Zone, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	off, err := OffsetAtLongitude(cfg.Longitude)
	if err != nil {
		return nil, err
	}

	return &Zone{
		longitude: cfg.Longitude,
		off:       off,
		name:      cfg.Name,
	}, nil
}

// Offset returns the zone's encoded fixed offset.
func (z *Zone) Offset() offset.Offset {
	return z.off
}

// OffsetForInstant returns the fixed offset in whole seconds.
// The instant is ignored; the zone has no history.
func (z *Zone) OffsetForInstant(_ time.Time) int {
	return z.off.Seconds()
}

// OffsetForLocalInstant returns the fixed offset in whole seconds.
// Identical to OffsetForInstant since the offset never varies.
func (z *Zone) OffsetForLocalInstant(_ time.Time) int {
	return z.off.Seconds()
}

// ShortName returns "LMT" for every instant.
func (z *Zone) ShortName(_ time.Time) string {
	return shortName
}

// IsFloating reports false: the zone has a fixed, defined offset.
func (z *Zone) IsFloating() bool {
	return false
}

// IsUTC reports false. Even at longitude 0 an LMT zone is semantically
// distinct from UTC.
func (z *Zone) IsUTC() bool {
	return false
}

// IsOlson reports false: LMT zones are not part of the IANA database.
func (z *Zone) IsOlson() bool {
	return false
}

// IsDSTForInstant reports false for every instant; daylight saving does
// not exist for Local Mean Time.
func (z *Zone) IsDSTForInstant(_ time.Time) bool {
	return false
}

// Category returns the Solar zone family.
func (z *Zone) Category() timezone.Category {
	return timezone.CategorySolar
}

// Name returns the zone's display name, empty if never set.
func (z *Zone) Name() string {
	return z.name
}

// SetName sets the display name and returns it. An empty argument is a
// no-op read: the existing name is kept and returned.
func (z *Zone) SetName(name string) string {
	if name != "" {
		z.name = name
	}
	return z.name
}

// Longitude returns the zone's longitude in degrees.
func (z *Zone) Longitude() float64 {
	return z.longitude
}

// SetLongitude updates the longitude and recomputes the offset,
// returning the resulting longitude. An argument of exactly 0 is a
// no-op read; longitude 0 can only be set through New. On
// ErrInvalidLongitude the previous longitude and offset are kept.
func (z *Zone) SetLongitude(longitude float64) (float64, error) {
	if longitude == 0 {
		return z.longitude, nil
	}

	off, err := OffsetAtLongitude(longitude)
	if err != nil {
		return z.longitude, err
	}

	z.longitude = longitude
	z.off = off
	return z.longitude, nil
}

// MakeAlias registers the zone's current offset under the given alias
// name. An empty alias defaults to "LMT"; a nil registry uses the
// process-wide one. The registered entry is a static snapshot: mutating
// the zone's longitude afterwards does not update it.
func (z *Zone) MakeAlias(reg *timezone.Registry, alias string) error {
	if alias == "" {
		alias = shortName
	}
	if reg == nil {
		reg = timezone.DefaultRegistry()
	}
	return reg.Register(alias, z.off)
}

// Compile-time interface satisfaction check.
var _ timezone.Zone = (*Zone)(nil)
