package weather

import (
	"encoding/json"
	"fmt"
)

// Record is the flat wire shape of an Item: the precipitation state is a
// string discriminant and the current-precipitation fields sit next to it.
type Record struct {
	Code                            int                     `json:"code" yaml:"code"`
	Key                             string                  `json:"key" yaml:"key"`
	Description                     string                  `json:"description" yaml:"description"`
	Precipitation                   PrecipitationState      `json:"precipitation" yaml:"precipitation"`
	PossiblePrecipitationSeverities []PrecipitationSeverity `json:"possiblePrecipitationSeverities,omitempty" yaml:"possiblePrecipitationSeverities,omitempty"`
	PossiblePrecipitationTypes      []PrecipitationType     `json:"possiblePrecipitationTypes,omitempty" yaml:"possiblePrecipitationTypes,omitempty"`
	PrimaryPrecipitationType        PrecipitationType       `json:"primaryPrecipitationType,omitempty" yaml:"primaryPrecipitationType,omitempty"`
	DustOrSandstorm                 bool                    `json:"dustOrSandstorm" yaml:"dustOrSandstorm"`
	FogOrMist                       bool                    `json:"fogOrMist" yaml:"fogOrMist"`
	Thunderstorm                    bool                    `json:"thunderstorm" yaml:"thunderstorm"`
}

// RecordOf flattens an item into its wire shape.
func RecordOf[C ~int](item Item[C]) Record {
	r := Record{
		Code:            int(item.Code),
		Key:             item.Key,
		Description:     item.Description,
		Precipitation:   item.PrecipitationState(),
		DustOrSandstorm: item.DustOrSandstorm,
		FogOrMist:       item.FogOrMist,
		Thunderstorm:    item.Thunderstorm,
	}
	if c, ok := item.CurrentPrecipitation(); ok {
		c = c.clone()
		r.PossiblePrecipitationSeverities = c.PossiblePrecipitationSeverities
		r.PossiblePrecipitationTypes = c.PossiblePrecipitationTypes
		r.PrimaryPrecipitationType = c.PrimaryPrecipitationType
	}
	return r
}

// ItemFromRecord rebuilds an item from its wire shape. It rejects unknown
// precipitation states and precipitation details on non-current records.
func ItemFromRecord[C ~int](r Record) (Item[C], error) {
	item := Item[C]{
		Code:            C(r.Code),
		Key:             r.Key,
		Description:     r.Description,
		DustOrSandstorm: r.DustOrSandstorm,
		FogOrMist:       r.FogOrMist,
		Thunderstorm:    r.Thunderstorm,
	}

	hasDetails := len(r.PossiblePrecipitationSeverities) > 0 ||
		len(r.PossiblePrecipitationTypes) > 0 ||
		r.PrimaryPrecipitationType != ""

	switch r.Precipitation {
	case StateCurrent:
		item.Precipitation = CurrentPrecipitation{
			PossiblePrecipitationSeverities: r.PossiblePrecipitationSeverities,
			PossiblePrecipitationTypes:      r.PossiblePrecipitationTypes,
			PrimaryPrecipitationType:        r.PrimaryPrecipitationType,
		}.clone()
	case StateNone, StateInPrecedingHour:
		if hasDetails {
			return Item[C]{}, fmt.Errorf("code %d: precipitation details given for state %q", r.Code, r.Precipitation)
		}
		if r.Precipitation == StateNone {
			item.Precipitation = NoPrecipitation{}
		} else {
			item.Precipitation = PrecipitationInPrecedingHour{}
		}
	default:
		return Item[C]{}, fmt.Errorf("code %d: unknown precipitation state %q", r.Code, r.Precipitation)
	}
	return item, nil
}

// MarshalJSON encodes the item in its flat wire shape.
func (i Item[C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(RecordOf(i))
}

// UnmarshalJSON decodes the flat wire shape.
func (i *Item[C]) UnmarshalJSON(data []byte) error {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	item, err := ItemFromRecord[C](r)
	if err != nil {
		return err
	}
	*i = item
	return nil
}
