package openmeteo

import "github.com/couchcryptid/weather-codes/pkg/weather"

var (
	none             = weather.NoPrecipitation{}
	slight           = []weather.PrecipitationSeverity{weather.SeveritySlight}
	moderate         = []weather.PrecipitationSeverity{weather.SeverityModerate}
	heavy            = []weather.PrecipitationSeverity{weather.SeverityHeavy}
	violent          = []weather.PrecipitationSeverity{weather.SeverityViolent}
	slightOrModerate = []weather.PrecipitationSeverity{weather.SeveritySlight, weather.SeverityModerate}
	moderateOrHeavy  = []weather.PrecipitationSeverity{weather.SeverityModerate, weather.SeverityHeavy}
	slightToHeavy    = []weather.PrecipitationSeverity{weather.SeveritySlight, weather.SeverityModerate, weather.SeverityHeavy}
)

// metadata covers the subset of WMO codes that open-meteo reports, with the
// intensity wording open-meteo uses.
var metadata = weather.Metadata[Code]{
	ClearSky: {
		Code:          ClearSky,
		Key:           "clear_sky",
		Description:   "Clear sky",
		Precipitation: none,
	},
	MainlyClear: {
		Code:          MainlyClear,
		Key:           "mainly_clear",
		Description:   "Mainly clear",
		Precipitation: none,
	},
	PartlyCloudy: {
		Code:          PartlyCloudy,
		Key:           "partly_cloudy",
		Description:   "Partly cloudy",
		Precipitation: none,
	},
	Overcast: {
		Code:          Overcast,
		Key:           "overcast",
		Description:   "Overcast",
		Precipitation: none,
	},
	Fog: {
		Code:          Fog,
		Key:           "fog",
		Description:   "Fog",
		Precipitation: none,
		FogOrMist:     true,
	},
	DepositingRimeFog: {
		Code:          DepositingRimeFog,
		Key:           "depositing_rime_fog",
		Description:   "Depositing rime fog",
		Precipitation: none,
		FogOrMist:     true,
	},
	DrizzleLight: {
		Code:          DrizzleLight,
		Key:           "drizzle_light",
		Description:   "Drizzle: light intensity",
		Precipitation: weather.Current(slight, weather.TypeDrizzle),
	},
	DrizzleModerate: {
		Code:          DrizzleModerate,
		Key:           "drizzle_moderate",
		Description:   "Drizzle: moderate intensity",
		Precipitation: weather.Current(moderate, weather.TypeDrizzle),
	},
	DrizzleDense: {
		Code:          DrizzleDense,
		Key:           "drizzle_dense",
		Description:   "Drizzle: dense intensity",
		Precipitation: weather.Current(heavy, weather.TypeDrizzle),
	},
	FreezingDrizzleLight: {
		Code:          FreezingDrizzleLight,
		Key:           "freezing_drizzle_light",
		Description:   "Freezing drizzle: light intensity",
		Precipitation: weather.Current(slight, weather.TypeFreezingDrizzle),
	},
	FreezingDrizzleDense: {
		Code:          FreezingDrizzleDense,
		Key:           "freezing_drizzle_dense",
		Description:   "Freezing drizzle: dense intensity",
		Precipitation: weather.Current(moderateOrHeavy, weather.TypeFreezingDrizzle),
	},
	RainSlight: {
		Code:          RainSlight,
		Key:           "rain_slight",
		Description:   "Rain: slight intensity",
		Precipitation: weather.Current(slight, weather.TypeRain),
	},
	RainModerate: {
		Code:          RainModerate,
		Key:           "rain_moderate",
		Description:   "Rain: moderate intensity",
		Precipitation: weather.Current(moderate, weather.TypeRain),
	},
	RainHeavy: {
		Code:          RainHeavy,
		Key:           "rain_heavy",
		Description:   "Rain: heavy intensity",
		Precipitation: weather.Current(heavy, weather.TypeRain),
	},
	FreezingRainLight: {
		Code:          FreezingRainLight,
		Key:           "freezing_rain_light",
		Description:   "Freezing rain: light intensity",
		Precipitation: weather.Current(slight, weather.TypeFreezingRain),
	},
	FreezingRainHeavy: {
		Code:          FreezingRainHeavy,
		Key:           "freezing_rain_heavy",
		Description:   "Freezing rain: heavy intensity",
		Precipitation: weather.Current(moderateOrHeavy, weather.TypeFreezingRain),
	},
	SnowFallSlight: {
		Code:          SnowFallSlight,
		Key:           "snow_fall_slight",
		Description:   "Snow fall: slight intensity",
		Precipitation: weather.Current(slight, weather.TypeSnow),
	},
	SnowFallModerate: {
		Code:          SnowFallModerate,
		Key:           "snow_fall_moderate",
		Description:   "Snow fall: moderate intensity",
		Precipitation: weather.Current(moderate, weather.TypeSnow),
	},
	SnowFallHeavy: {
		Code:          SnowFallHeavy,
		Key:           "snow_fall_heavy",
		Description:   "Snow fall: heavy intensity",
		Precipitation: weather.Current(heavy, weather.TypeSnow),
	},
	SnowGrains: {
		Code:          SnowGrains,
		Key:           "snow_grains",
		Description:   "Snow grains",
		Precipitation: weather.Current(slightToHeavy, weather.TypeSnowGrains),
	},
	RainShowersSlight: {
		Code:          RainShowersSlight,
		Key:           "rain_showers_slight",
		Description:   "Rain showers: slight",
		Precipitation: weather.Current(slight, weather.TypeRain),
	},
	RainShowersModerate: {
		Code:          RainShowersModerate,
		Key:           "rain_showers_moderate",
		Description:   "Rain showers: moderate",
		Precipitation: weather.Current(moderate, weather.TypeRain),
	},
	RainShowersViolent: {
		Code:          RainShowersViolent,
		Key:           "rain_showers_violent",
		Description:   "Rain showers: violent",
		Precipitation: weather.Current(violent, weather.TypeRain),
	},
	SnowShowersSlight: {
		Code:          SnowShowersSlight,
		Key:           "snow_showers_slight",
		Description:   "Snow showers: slight",
		Precipitation: weather.Current(slight, weather.TypeSnow),
	},
	SnowShowersHeavy: {
		Code:          SnowShowersHeavy,
		Key:           "snow_showers_heavy",
		Description:   "Snow showers: heavy",
		Precipitation: weather.Current(heavy, weather.TypeSnow),
	},
	ThunderstormSlightOrModerate: {
		Code:          ThunderstormSlightOrModerate,
		Key:           "thunderstorm_slight_or_moderate",
		Description:   "Thunderstorm: slight or moderate",
		Precipitation: weather.Current(slightOrModerate, weather.TypeRain),
		Thunderstorm:  true,
	},
	ThunderstormWithSlightHail: {
		Code:          ThunderstormWithSlightHail,
		Key:           "thunderstorm_with_slight_hail",
		Description:   "Thunderstorm with slight hail",
		Precipitation: weather.Current(slight, weather.TypeHail, weather.TypeRain),
		Thunderstorm:  true,
	},
	ThunderstormWithHeavyHail: {
		Code:          ThunderstormWithHeavyHail,
		Key:           "thunderstorm_with_heavy_hail",
		Description:   "Thunderstorm with heavy hail",
		Precipitation: weather.Current(heavy, weather.TypeHail, weather.TypeRain),
		Thunderstorm:  true,
	},
}
