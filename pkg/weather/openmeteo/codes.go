package openmeteo

import "github.com/couchcryptid/weather-codes/pkg/weather"

// Code is a open-meteo present-weather code number.
type Code int

const (
	ClearSky                     Code = 0
	MainlyClear                  Code = 1
	PartlyCloudy                 Code = 2
	Overcast                     Code = 3
	Fog                          Code = 45
	DepositingRimeFog            Code = 48
	DrizzleLight                 Code = 51
	DrizzleModerate              Code = 53
	DrizzleDense                 Code = 55
	FreezingDrizzleLight         Code = 56
	FreezingDrizzleDense         Code = 57
	RainSlight                   Code = 61
	RainModerate                 Code = 63
	RainHeavy                    Code = 65
	FreezingRainLight            Code = 66
	FreezingRainHeavy            Code = 67
	SnowFallSlight               Code = 71
	SnowFallModerate             Code = 73
	SnowFallHeavy                Code = 75
	SnowGrains                   Code = 77
	RainShowersSlight            Code = 80
	RainShowersModerate          Code = 81
	RainShowersViolent           Code = 82
	SnowShowersSlight            Code = 85
	SnowShowersHeavy             Code = 86
	ThunderstormSlightOrModerate Code = 95
	ThunderstormWithSlightHail   Code = 96
	ThunderstormWithHeavyHail    Code = 99
)

// codes is the hand-maintained key->code mapping. Every entry must resolve
// to a record in metadata whose Key is the same string.
var codes = weather.Codes[Code]{
	"clear_sky":                       ClearSky,
	"mainly_clear":                    MainlyClear,
	"partly_cloudy":                   PartlyCloudy,
	"overcast":                        Overcast,
	"fog":                             Fog,
	"depositing_rime_fog":             DepositingRimeFog,
	"drizzle_light":                   DrizzleLight,
	"drizzle_moderate":                DrizzleModerate,
	"drizzle_dense":                   DrizzleDense,
	"freezing_drizzle_light":          FreezingDrizzleLight,
	"freezing_drizzle_dense":          FreezingDrizzleDense,
	"rain_slight":                     RainSlight,
	"rain_moderate":                   RainModerate,
	"rain_heavy":                      RainHeavy,
	"freezing_rain_light":             FreezingRainLight,
	"freezing_rain_heavy":             FreezingRainHeavy,
	"snow_fall_slight":                SnowFallSlight,
	"snow_fall_moderate":              SnowFallModerate,
	"snow_fall_heavy":                 SnowFallHeavy,
	"snow_grains":                     SnowGrains,
	"rain_showers_slight":             RainShowersSlight,
	"rain_showers_moderate":           RainShowersModerate,
	"rain_showers_violent":            RainShowersViolent,
	"snow_showers_slight":             SnowShowersSlight,
	"snow_showers_heavy":              SnowShowersHeavy,
	"thunderstorm_slight_or_moderate": ThunderstormSlightOrModerate,
	"thunderstorm_with_slight_hail":   ThunderstormWithSlightHail,
	"thunderstorm_with_heavy_hail":    ThunderstormWithHeavyHail,
}
