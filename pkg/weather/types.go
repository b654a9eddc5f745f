package weather

import "slices"

// PrecipitationType names a kind of precipitation a code may represent.
type PrecipitationType string

const (
	TypeDrizzle         PrecipitationType = "drizzle"
	TypeFreezingDrizzle PrecipitationType = "freezing_drizzle"
	TypeRain            PrecipitationType = "rain"
	TypeFreezingRain    PrecipitationType = "freezing_rain"
	TypeSnow            PrecipitationType = "snow"
	TypeSnowGrains      PrecipitationType = "snow_grains"
	TypeIcePrisms       PrecipitationType = "ice_prisms"
	TypeIcePellets      PrecipitationType = "ice_pellets"
	TypeSmallHail       PrecipitationType = "small_hail"
	TypeHail            PrecipitationType = "hail"
)

var precipitationTypes = []PrecipitationType{
	TypeDrizzle,
	TypeFreezingDrizzle,
	TypeRain,
	TypeFreezingRain,
	TypeSnow,
	TypeSnowGrains,
	TypeIcePrisms,
	TypeIcePellets,
	TypeSmallHail,
	TypeHail,
}

// PrecipitationTypes returns every known precipitation type.
func PrecipitationTypes() []PrecipitationType {
	return slices.Clone(precipitationTypes)
}

// Valid reports whether t is a known precipitation type.
func (t PrecipitationType) Valid() bool {
	return slices.Contains(precipitationTypes, t)
}

func (t PrecipitationType) String() string { return string(t) }

// PrecipitationState is the discriminant of the Precipitation union.
type PrecipitationState string

const (
	StateNone            PrecipitationState = "none"
	StateInPrecedingHour PrecipitationState = "in_preceding_hour"
	StateCurrent         PrecipitationState = "current"
)

// Valid reports whether s is one of the three precipitation states.
func (s PrecipitationState) Valid() bool {
	switch s {
	case StateNone, StateInPrecedingHour, StateCurrent:
		return true
	default:
		return false
	}
}

// Precipitation describes whether and how precipitation is occurring. It is a
// closed union: the only implementations are NoPrecipitation,
// PrecipitationInPrecedingHour and CurrentPrecipitation.
type Precipitation interface {
	State() PrecipitationState
	isPrecipitation()
}

// NoPrecipitation means no precipitation at or near the station.
type NoPrecipitation struct{}

func (NoPrecipitation) State() PrecipitationState { return StateNone }
func (NoPrecipitation) isPrecipitation()          {}

// PrecipitationInPrecedingHour means precipitation (or fog, or a thunderstorm)
// ended during the hour before the observation.
type PrecipitationInPrecedingHour struct{}

func (PrecipitationInPrecedingHour) State() PrecipitationState { return StateInPrecedingHour }
func (PrecipitationInPrecedingHour) isPrecipitation()          {}

// CurrentPrecipitation means precipitation is falling at the time of
// observation. Well-formed records have non-empty severity and type lists.
type CurrentPrecipitation struct {
	PossiblePrecipitationSeverities []PrecipitationSeverity `json:"possiblePrecipitationSeverities" validate:"min=1,dive,oneof=slight moderate heavy violent"`
	PossiblePrecipitationTypes      []PrecipitationType     `json:"possiblePrecipitationTypes" validate:"min=1,dive,precipitation_type"`
	PrimaryPrecipitationType        PrecipitationType       `json:"primaryPrecipitationType" validate:"precipitation_type"`
}

func (CurrentPrecipitation) State() PrecipitationState { return StateCurrent }
func (CurrentPrecipitation) isPrecipitation()          {}

// Current builds a CurrentPrecipitation. The first type is the primary one.
func Current(severities []PrecipitationSeverity, types ...PrecipitationType) CurrentPrecipitation {
	c := CurrentPrecipitation{
		PossiblePrecipitationSeverities: severities,
		PossiblePrecipitationTypes:      types,
	}
	if len(types) > 0 {
		c.PrimaryPrecipitationType = types[0]
	}
	return c
}

func (c CurrentPrecipitation) clone() CurrentPrecipitation {
	return CurrentPrecipitation{
		PossiblePrecipitationSeverities: slices.Clone(c.PossiblePrecipitationSeverities),
		PossiblePrecipitationTypes:      slices.Clone(c.PossiblePrecipitationTypes),
		PrimaryPrecipitationType:        c.PrimaryPrecipitationType,
	}
}

// Item is the metadata for one present-weather code of a table whose codes
// have type C.
type Item[C ~int] struct {
	Code        C      `json:"code" validate:"gte=0,lte=99"`
	Key         string `json:"key" validate:"required"`
	Description string `json:"description" validate:"required"`

	// Precipitation is checked by hand in ValidateItem.
	Precipitation Precipitation `json:"precipitation" validate:"-"`

	DustOrSandstorm bool `json:"dustOrSandstorm"`
	FogOrMist       bool `json:"fogOrMist"`
	Thunderstorm    bool `json:"thunderstorm"`
}

// PrecipitationState returns the discriminant of the item's precipitation,
// treating a missing value as StateNone.
func (i Item[C]) PrecipitationState() PrecipitationState {
	if i.Precipitation == nil {
		return StateNone
	}
	if c, ok := i.Precipitation.(*CurrentPrecipitation); ok && c == nil {
		return StateNone
	}
	return i.Precipitation.State()
}

// CurrentPrecipitation returns the current-precipitation details, if any.
func (i Item[C]) CurrentPrecipitation() (CurrentPrecipitation, bool) {
	return currentOf(i.Precipitation)
}

// currentOf unwraps both value and pointer forms of CurrentPrecipitation.
func currentOf(p Precipitation) (CurrentPrecipitation, bool) {
	switch c := p.(type) {
	case CurrentPrecipitation:
		return c, true
	case *CurrentPrecipitation:
		if c == nil {
			return CurrentPrecipitation{}, false
		}
		return *c, true
	default:
		return CurrentPrecipitation{}, false
	}
}

// Clone returns a copy of i that shares no slices with it.
func (i Item[C]) Clone() Item[C] {
	if c, ok := currentOf(i.Precipitation); ok {
		i.Precipitation = c.clone()
	}
	return i
}

// Metadata maps code numbers to their metadata records.
type Metadata[C ~int] map[C]Item[C]

// Codes maps symbolic names to code numbers.
type Codes[C ~int] map[string]C
