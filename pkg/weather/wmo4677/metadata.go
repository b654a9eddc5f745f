package wmo4677

import "github.com/couchcryptid/weather-codes/pkg/weather"

var (
	none             = weather.NoPrecipitation{}
	precedingHour    = weather.PrecipitationInPrecedingHour{}
	slight           = []weather.PrecipitationSeverity{weather.SeveritySlight}
	moderate         = []weather.PrecipitationSeverity{weather.SeverityModerate}
	heavy            = []weather.PrecipitationSeverity{weather.SeverityHeavy}
	violent          = []weather.PrecipitationSeverity{weather.SeverityViolent}
	slightOrModerate = []weather.PrecipitationSeverity{weather.SeveritySlight, weather.SeverityModerate}
	moderateOrHeavy  = []weather.PrecipitationSeverity{weather.SeverityModerate, weather.SeverityHeavy}
	slightToHeavy    = []weather.PrecipitationSeverity{weather.SeveritySlight, weather.SeverityModerate, weather.SeverityHeavy}
)

// metadata describes all 100 ww codes. Flags describe conditions at the time of
// observation; phenomena that ended during the preceding hour leave them unset.
var metadata = weather.Metadata[Code]{
	CloudDevelopmentNotObserved: {
		Code:          CloudDevelopmentNotObserved,
		Key:           "cloud_development_not_observed",
		Description:   "Cloud development not observed or not observable",
		Precipitation: none,
	},
	CloudsDissolving: {
		Code:          CloudsDissolving,
		Key:           "clouds_dissolving",
		Description:   "Clouds generally dissolving or becoming less developed",
		Precipitation: none,
	},
	SkyUnchanged: {
		Code:          SkyUnchanged,
		Key:           "sky_unchanged",
		Description:   "State of sky on the whole unchanged",
		Precipitation: none,
	},
	CloudsDeveloping: {
		Code:          CloudsDeveloping,
		Key:           "clouds_developing",
		Description:   "Clouds generally forming or developing",
		Precipitation: none,
	},
	SmokeOrVolcanicAsh: {
		Code:          SmokeOrVolcanicAsh,
		Key:           "smoke_or_volcanic_ash",
		Description:   "Visibility reduced by smoke, e.g. veldt or forest fires, industrial smoke or volcanic ashes",
		Precipitation: none,
	},
	Haze: {
		Code:          Haze,
		Key:           "haze",
		Description:   "Haze",
		Precipitation: none,
	},
	WidespreadDust: {
		Code:            WidespreadDust,
		Key:             "widespread_dust",
		Description:     "Widespread dust in suspension in the air, not raised by wind at or near the station at the time of observation",
		Precipitation:   none,
		DustOrSandstorm: true,
	},
	DustOrSandRaisedByWind: {
		Code:            DustOrSandRaisedByWind,
		Key:             "dust_or_sand_raised_by_wind",
		Description:     "Dust or sand raised by wind at or near the station at the time of observation, but no well developed dust or sand whirls, and no duststorm or sandstorm seen",
		Precipitation:   none,
		DustOrSandstorm: true,
	},
	DustOrSandWhirls: {
		Code:            DustOrSandWhirls,
		Key:             "dust_or_sand_whirls",
		Description:     "Well developed dust or sand whirls seen at or near the station during the preceding hour or at the time of observation, but no duststorm or sandstorm",
		Precipitation:   none,
		DustOrSandstorm: true,
	},
	DuststormOrSandstormWithinSight: {
		Code:            DuststormOrSandstormWithinSight,
		Key:             "duststorm_or_sandstorm_within_sight",
		Description:     "Duststorm or sandstorm within sight at the time of observation, or at the station during the preceding hour",
		Precipitation:   none,
		DustOrSandstorm: true,
	},
	Mist: {
		Code:          Mist,
		Key:           "mist",
		Description:   "Mist",
		Precipitation: none,
		FogOrMist:     true,
	},
	PatchesOfShallowFog: {
		Code:          PatchesOfShallowFog,
		Key:           "patches_of_shallow_fog",
		Description:   "Patches of shallow fog or ice fog at the station, not deeper than about 2 metres on land or 10 metres at sea",
		Precipitation: none,
		FogOrMist:     true,
	},
	ContinuousShallowFog: {
		Code:          ContinuousShallowFog,
		Key:           "continuous_shallow_fog",
		Description:   "More or less continuous shallow fog or ice fog at the station, not deeper than about 2 metres on land or 10 metres at sea",
		Precipitation: none,
		FogOrMist:     true,
	},
	LightningNoThunder: {
		Code:          LightningNoThunder,
		Key:           "lightning_no_thunder",
		Description:   "Lightning visible, no thunder heard",
		Precipitation: none,
	},
	PrecipitationNotReachingGround: {
		Code:          PrecipitationNotReachingGround,
		Key:           "precipitation_not_reaching_ground",
		Description:   "Precipitation within sight, not reaching the ground or the surface of the sea",
		Precipitation: none,
	},
	DistantPrecipitation: {
		Code:          DistantPrecipitation,
		Key:           "distant_precipitation",
		Description:   "Precipitation within sight, reaching the ground or the surface of the sea, but distant, i.e. estimated to be more than 5 km from the station",
		Precipitation: none,
	},
	NearbyPrecipitation: {
		Code:          NearbyPrecipitation,
		Key:           "nearby_precipitation",
		Description:   "Precipitation within sight, reaching the ground or the surface of the sea, near to, but not at the station",
		Precipitation: none,
	},
	ThunderstormNoPrecipitation: {
		Code:          ThunderstormNoPrecipitation,
		Key:           "thunderstorm_no_precipitation",
		Description:   "Thunderstorm, but no precipitation at the time of observation",
		Precipitation: none,
		Thunderstorm:  true,
	},
	Squalls: {
		Code:          Squalls,
		Key:           "squalls",
		Description:   "Squalls at or within sight of the station during the preceding hour or at the time of observation",
		Precipitation: none,
	},
	FunnelClouds: {
		Code:          FunnelClouds,
		Key:           "funnel_clouds",
		Description:   "Funnel clouds (tornado or waterspout) at or within sight of the station during the preceding hour or at the time of observation",
		Precipitation: none,
	},
	RecentDrizzleOrSnowGrains: {
		Code:          RecentDrizzleOrSnowGrains,
		Key:           "recent_drizzle_or_snow_grains",
		Description:   "Drizzle (not freezing) or snow grains, not falling as showers, during the preceding hour but not at the time of observation",
		Precipitation: precedingHour,
	},
	RecentRain: {
		Code:          RecentRain,
		Key:           "recent_rain",
		Description:   "Rain (not freezing), not falling as showers, during the preceding hour but not at the time of observation",
		Precipitation: precedingHour,
	},
	RecentSnow: {
		Code:          RecentSnow,
		Key:           "recent_snow",
		Description:   "Snow, not falling as showers, during the preceding hour but not at the time of observation",
		Precipitation: precedingHour,
	},
	RecentRainAndSnowOrIcePellets: {
		Code:          RecentRainAndSnowOrIcePellets,
		Key:           "recent_rain_and_snow_or_ice_pellets",
		Description:   "Rain and snow or ice pellets, not falling as showers, during the preceding hour but not at the time of observation",
		Precipitation: precedingHour,
	},
	RecentFreezingDrizzleOrFreezingRain: {
		Code:          RecentFreezingDrizzleOrFreezingRain,
		Key:           "recent_freezing_drizzle_or_freezing_rain",
		Description:   "Freezing drizzle or freezing rain during the preceding hour but not at the time of observation",
		Precipitation: precedingHour,
	},
	RecentRainShowers: {
		Code:          RecentRainShowers,
		Key:           "recent_rain_showers",
		Description:   "Showers of rain during the preceding hour but not at the time of observation",
		Precipitation: precedingHour,
	},
	RecentSnowShowers: {
		Code:          RecentSnowShowers,
		Key:           "recent_snow_showers",
		Description:   "Showers of snow, or of rain and snow, during the preceding hour but not at the time of observation",
		Precipitation: precedingHour,
	},
	RecentHailShowers: {
		Code:          RecentHailShowers,
		Key:           "recent_hail_showers",
		Description:   "Showers of hail, or of rain and hail, during the preceding hour but not at the time of observation",
		Precipitation: precedingHour,
	},
	RecentFog: {
		Code:          RecentFog,
		Key:           "recent_fog",
		Description:   "Fog or ice fog during the preceding hour but not at the time of observation",
		Precipitation: precedingHour,
	},
	RecentThunderstorm: {
		Code:          RecentThunderstorm,
		Key:           "recent_thunderstorm",
		Description:   "Thunderstorm, with or without precipitation, during the preceding hour but not at the time of observation",
		Precipitation: precedingHour,
	},
	SlightOrModerateDuststormDecreasing: {
		Code:            SlightOrModerateDuststormDecreasing,
		Key:             "slight_or_moderate_duststorm_decreasing",
		Description:     "Slight or moderate duststorm or sandstorm, has decreased during the preceding hour",
		Precipitation:   none,
		DustOrSandstorm: true,
	},
	SlightOrModerateDuststormSteady: {
		Code:            SlightOrModerateDuststormSteady,
		Key:             "slight_or_moderate_duststorm_steady",
		Description:     "Slight or moderate duststorm or sandstorm, no appreciable change during the preceding hour",
		Precipitation:   none,
		DustOrSandstorm: true,
	},
	SlightOrModerateDuststormIncreasing: {
		Code:            SlightOrModerateDuststormIncreasing,
		Key:             "slight_or_moderate_duststorm_increasing",
		Description:     "Slight or moderate duststorm or sandstorm, has begun or has increased during the preceding hour",
		Precipitation:   none,
		DustOrSandstorm: true,
	},
	SevereDuststormDecreasing: {
		Code:            SevereDuststormDecreasing,
		Key:             "severe_duststorm_decreasing",
		Description:     "Severe duststorm or sandstorm, has decreased during the preceding hour",
		Precipitation:   none,
		DustOrSandstorm: true,
	},
	SevereDuststormSteady: {
		Code:            SevereDuststormSteady,
		Key:             "severe_duststorm_steady",
		Description:     "Severe duststorm or sandstorm, no appreciable change during the preceding hour",
		Precipitation:   none,
		DustOrSandstorm: true,
	},
	SevereDuststormIncreasing: {
		Code:            SevereDuststormIncreasing,
		Key:             "severe_duststorm_increasing",
		Description:     "Severe duststorm or sandstorm, has begun or has increased during the preceding hour",
		Precipitation:   none,
		DustOrSandstorm: true,
	},
	SlightOrModerateDriftingSnow: {
		Code:          SlightOrModerateDriftingSnow,
		Key:           "slight_or_moderate_drifting_snow",
		Description:   "Slight or moderate drifting snow, generally low (below eye level)",
		Precipitation: none,
	},
	HeavyDriftingSnow: {
		Code:          HeavyDriftingSnow,
		Key:           "heavy_drifting_snow",
		Description:   "Heavy drifting snow, generally low (below eye level)",
		Precipitation: none,
	},
	SlightOrModerateBlowingSnow: {
		Code:          SlightOrModerateBlowingSnow,
		Key:           "slight_or_moderate_blowing_snow",
		Description:   "Slight or moderate blowing snow, generally high (above eye level)",
		Precipitation: none,
	},
	HeavyBlowingSnow: {
		Code:          HeavyBlowingSnow,
		Key:           "heavy_blowing_snow",
		Description:   "Heavy blowing snow, generally high (above eye level)",
		Precipitation: none,
	},
	DistantFog: {
		Code:          DistantFog,
		Key:           "distant_fog",
		Description:   "Fog or ice fog at a distance at the time of observation, but not at the station during the preceding hour, extending to a level above that of the observer",
		Precipitation: none,
		FogOrMist:     true,
	},
	FogInPatches: {
		Code:          FogInPatches,
		Key:           "fog_in_patches",
		Description:   "Fog or ice fog in patches",
		Precipitation: none,
		FogOrMist:     true,
	},
	FogSkyVisibleThinning: {
		Code:          FogSkyVisibleThinning,
		Key:           "fog_sky_visible_thinning",
		Description:   "Fog or ice fog, sky visible, has become thinner during the preceding hour",
		Precipitation: none,
		FogOrMist:     true,
	},
	FogSkyInvisibleThinning: {
		Code:          FogSkyInvisibleThinning,
		Key:           "fog_sky_invisible_thinning",
		Description:   "Fog or ice fog, sky invisible, has become thinner during the preceding hour",
		Precipitation: none,
		FogOrMist:     true,
	},
	FogSkyVisibleSteady: {
		Code:          FogSkyVisibleSteady,
		Key:           "fog_sky_visible_steady",
		Description:   "Fog or ice fog, sky visible, no appreciable change during the preceding hour",
		Precipitation: none,
		FogOrMist:     true,
	},
	FogSkyInvisibleSteady: {
		Code:          FogSkyInvisibleSteady,
		Key:           "fog_sky_invisible_steady",
		Description:   "Fog or ice fog, sky invisible, no appreciable change during the preceding hour",
		Precipitation: none,
		FogOrMist:     true,
	},
	FogSkyVisibleThickening: {
		Code:          FogSkyVisibleThickening,
		Key:           "fog_sky_visible_thickening",
		Description:   "Fog or ice fog, sky visible, has begun or has become thicker during the preceding hour",
		Precipitation: none,
		FogOrMist:     true,
	},
	FogSkyInvisibleThickening: {
		Code:          FogSkyInvisibleThickening,
		Key:           "fog_sky_invisible_thickening",
		Description:   "Fog or ice fog, sky invisible, has begun or has become thicker during the preceding hour",
		Precipitation: none,
		FogOrMist:     true,
	},
	RimeFogSkyVisible: {
		Code:          RimeFogSkyVisible,
		Key:           "rime_fog_sky_visible",
		Description:   "Fog, depositing rime, sky visible",
		Precipitation: none,
		FogOrMist:     true,
	},
	RimeFogSkyInvisible: {
		Code:          RimeFogSkyInvisible,
		Key:           "rime_fog_sky_invisible",
		Description:   "Fog, depositing rime, sky invisible",
		Precipitation: none,
		FogOrMist:     true,
	},
	DrizzleIntermittentSlight: {
		Code:          DrizzleIntermittentSlight,
		Key:           "drizzle_intermittent_slight",
		Description:   "Drizzle, not freezing, intermittent, slight at time of observation",
		Precipitation: weather.Current(slight, weather.TypeDrizzle),
	},
	DrizzleContinuousSlight: {
		Code:          DrizzleContinuousSlight,
		Key:           "drizzle_continuous_slight",
		Description:   "Drizzle, not freezing, continuous, slight at time of observation",
		Precipitation: weather.Current(slight, weather.TypeDrizzle),
	},
	DrizzleIntermittentModerate: {
		Code:          DrizzleIntermittentModerate,
		Key:           "drizzle_intermittent_moderate",
		Description:   "Drizzle, not freezing, intermittent, moderate at time of observation",
		Precipitation: weather.Current(moderate, weather.TypeDrizzle),
	},
	DrizzleContinuousModerate: {
		Code:          DrizzleContinuousModerate,
		Key:           "drizzle_continuous_moderate",
		Description:   "Drizzle, not freezing, continuous, moderate at time of observation",
		Precipitation: weather.Current(moderate, weather.TypeDrizzle),
	},
	DrizzleIntermittentHeavy: {
		Code:          DrizzleIntermittentHeavy,
		Key:           "drizzle_intermittent_heavy",
		Description:   "Drizzle, not freezing, intermittent, heavy (dense) at time of observation",
		Precipitation: weather.Current(heavy, weather.TypeDrizzle),
	},
	DrizzleContinuousHeavy: {
		Code:          DrizzleContinuousHeavy,
		Key:           "drizzle_continuous_heavy",
		Description:   "Drizzle, not freezing, continuous, heavy (dense) at time of observation",
		Precipitation: weather.Current(heavy, weather.TypeDrizzle),
	},
	FreezingDrizzleSlight: {
		Code:          FreezingDrizzleSlight,
		Key:           "freezing_drizzle_slight",
		Description:   "Drizzle, freezing, slight",
		Precipitation: weather.Current(slight, weather.TypeFreezingDrizzle),
	},
	FreezingDrizzleModerateOrHeavy: {
		Code:          FreezingDrizzleModerateOrHeavy,
		Key:           "freezing_drizzle_moderate_or_heavy",
		Description:   "Drizzle, freezing, moderate or heavy (dense)",
		Precipitation: weather.Current(moderateOrHeavy, weather.TypeFreezingDrizzle),
	},
	DrizzleAndRainSlight: {
		Code:          DrizzleAndRainSlight,
		Key:           "drizzle_and_rain_slight",
		Description:   "Drizzle and rain, slight",
		Precipitation: weather.Current(slight, weather.TypeRain, weather.TypeDrizzle),
	},
	DrizzleAndRainModerateOrHeavy: {
		Code:          DrizzleAndRainModerateOrHeavy,
		Key:           "drizzle_and_rain_moderate_or_heavy",
		Description:   "Drizzle and rain, moderate or heavy",
		Precipitation: weather.Current(moderateOrHeavy, weather.TypeRain, weather.TypeDrizzle),
	},
	RainIntermittentSlight: {
		Code:          RainIntermittentSlight,
		Key:           "rain_intermittent_slight",
		Description:   "Rain, not freezing, intermittent, slight at time of observation",
		Precipitation: weather.Current(slight, weather.TypeRain),
	},
	RainContinuousSlight: {
		Code:          RainContinuousSlight,
		Key:           "rain_continuous_slight",
		Description:   "Rain, not freezing, continuous, slight at time of observation",
		Precipitation: weather.Current(slight, weather.TypeRain),
	},
	RainIntermittentModerate: {
		Code:          RainIntermittentModerate,
		Key:           "rain_intermittent_moderate",
		Description:   "Rain, not freezing, intermittent, moderate at time of observation",
		Precipitation: weather.Current(moderate, weather.TypeRain),
	},
	RainContinuousModerate: {
		Code:          RainContinuousModerate,
		Key:           "rain_continuous_moderate",
		Description:   "Rain, not freezing, continuous, moderate at time of observation",
		Precipitation: weather.Current(moderate, weather.TypeRain),
	},
	RainIntermittentHeavy: {
		Code:          RainIntermittentHeavy,
		Key:           "rain_intermittent_heavy",
		Description:   "Rain, not freezing, intermittent, heavy at time of observation",
		Precipitation: weather.Current(heavy, weather.TypeRain),
	},
	RainContinuousHeavy: {
		Code:          RainContinuousHeavy,
		Key:           "rain_continuous_heavy",
		Description:   "Rain, not freezing, continuous, heavy at time of observation",
		Precipitation: weather.Current(heavy, weather.TypeRain),
	},
	FreezingRainSlight: {
		Code:          FreezingRainSlight,
		Key:           "freezing_rain_slight",
		Description:   "Rain, freezing, slight",
		Precipitation: weather.Current(slight, weather.TypeFreezingRain),
	},
	FreezingRainModerateOrHeavy: {
		Code:          FreezingRainModerateOrHeavy,
		Key:           "freezing_rain_moderate_or_heavy",
		Description:   "Rain, freezing, moderate or heavy",
		Precipitation: weather.Current(moderateOrHeavy, weather.TypeFreezingRain),
	},
	RainOrDrizzleAndSnowSlight: {
		Code:          RainOrDrizzleAndSnowSlight,
		Key:           "rain_or_drizzle_and_snow_slight",
		Description:   "Rain or drizzle and snow, slight",
		Precipitation: weather.Current(slight, weather.TypeRain, weather.TypeDrizzle, weather.TypeSnow),
	},
	RainOrDrizzleAndSnowModerateOrHeavy: {
		Code:          RainOrDrizzleAndSnowModerateOrHeavy,
		Key:           "rain_or_drizzle_and_snow_moderate_or_heavy",
		Description:   "Rain or drizzle and snow, moderate or heavy",
		Precipitation: weather.Current(moderateOrHeavy, weather.TypeRain, weather.TypeDrizzle, weather.TypeSnow),
	},
	SnowIntermittentSlight: {
		Code:          SnowIntermittentSlight,
		Key:           "snow_intermittent_slight",
		Description:   "Intermittent fall of snowflakes, slight at time of observation",
		Precipitation: weather.Current(slight, weather.TypeSnow),
	},
	SnowContinuousSlight: {
		Code:          SnowContinuousSlight,
		Key:           "snow_continuous_slight",
		Description:   "Continuous fall of snowflakes, slight at time of observation",
		Precipitation: weather.Current(slight, weather.TypeSnow),
	},
	SnowIntermittentModerate: {
		Code:          SnowIntermittentModerate,
		Key:           "snow_intermittent_moderate",
		Description:   "Intermittent fall of snowflakes, moderate at time of observation",
		Precipitation: weather.Current(moderate, weather.TypeSnow),
	},
	SnowContinuousModerate: {
		Code:          SnowContinuousModerate,
		Key:           "snow_continuous_moderate",
		Description:   "Continuous fall of snowflakes, moderate at time of observation",
		Precipitation: weather.Current(moderate, weather.TypeSnow),
	},
	SnowIntermittentHeavy: {
		Code:          SnowIntermittentHeavy,
		Key:           "snow_intermittent_heavy",
		Description:   "Intermittent fall of snowflakes, heavy at time of observation",
		Precipitation: weather.Current(heavy, weather.TypeSnow),
	},
	SnowContinuousHeavy: {
		Code:          SnowContinuousHeavy,
		Key:           "snow_continuous_heavy",
		Description:   "Continuous fall of snowflakes, heavy at time of observation",
		Precipitation: weather.Current(heavy, weather.TypeSnow),
	},
	DiamondDust: {
		Code:          DiamondDust,
		Key:           "diamond_dust",
		Description:   "Diamond dust (with or without fog)",
		Precipitation: weather.Current(slight, weather.TypeIcePrisms),
	},
	SnowGrains: {
		Code:          SnowGrains,
		Key:           "snow_grains",
		Description:   "Snow grains (with or without fog)",
		Precipitation: weather.Current(slightToHeavy, weather.TypeSnowGrains),
	},
	IsolatedSnowCrystals: {
		Code:          IsolatedSnowCrystals,
		Key:           "isolated_snow_crystals",
		Description:   "Isolated star-like snow crystals (with or without fog)",
		Precipitation: weather.Current(slight, weather.TypeSnow),
	},
	IcePellets: {
		Code:          IcePellets,
		Key:           "ice_pellets",
		Description:   "Ice pellets",
		Precipitation: weather.Current(slightToHeavy, weather.TypeIcePellets),
	},
	RainShowersSlight: {
		Code:          RainShowersSlight,
		Key:           "rain_showers_slight",
		Description:   "Rain showers, slight",
		Precipitation: weather.Current(slight, weather.TypeRain),
	},
	RainShowersModerateOrHeavy: {
		Code:          RainShowersModerateOrHeavy,
		Key:           "rain_showers_moderate_or_heavy",
		Description:   "Rain showers, moderate or heavy",
		Precipitation: weather.Current(moderateOrHeavy, weather.TypeRain),
	},
	RainShowersViolent: {
		Code:          RainShowersViolent,
		Key:           "rain_showers_violent",
		Description:   "Rain showers, violent",
		Precipitation: weather.Current(violent, weather.TypeRain),
	},
	RainAndSnowShowersSlight: {
		Code:          RainAndSnowShowersSlight,
		Key:           "rain_and_snow_showers_slight",
		Description:   "Showers of rain and snow mixed, slight",
		Precipitation: weather.Current(slight, weather.TypeRain, weather.TypeSnow),
	},
	RainAndSnowShowersModerateOrHeavy: {
		Code:          RainAndSnowShowersModerateOrHeavy,
		Key:           "rain_and_snow_showers_moderate_or_heavy",
		Description:   "Showers of rain and snow mixed, moderate or heavy",
		Precipitation: weather.Current(moderateOrHeavy, weather.TypeRain, weather.TypeSnow),
	},
	SnowShowersSlight: {
		Code:          SnowShowersSlight,
		Key:           "snow_showers_slight",
		Description:   "Snow showers, slight",
		Precipitation: weather.Current(slight, weather.TypeSnow),
	},
	SnowShowersModerateOrHeavy: {
		Code:          SnowShowersModerateOrHeavy,
		Key:           "snow_showers_moderate_or_heavy",
		Description:   "Snow showers, moderate or heavy",
		Precipitation: weather.Current(moderateOrHeavy, weather.TypeSnow),
	},
	SmallHailShowersSlight: {
		Code:          SmallHailShowersSlight,
		Key:           "small_hail_showers_slight",
		Description:   "Showers of snow pellets or small hail, with or without rain or rain and snow mixed, slight",
		Precipitation: weather.Current(slight, weather.TypeSmallHail, weather.TypeRain, weather.TypeSnow),
	},
	SmallHailShowersModerateOrHeavy: {
		Code:          SmallHailShowersModerateOrHeavy,
		Key:           "small_hail_showers_moderate_or_heavy",
		Description:   "Showers of snow pellets or small hail, with or without rain or rain and snow mixed, moderate or heavy",
		Precipitation: weather.Current(moderateOrHeavy, weather.TypeSmallHail, weather.TypeRain, weather.TypeSnow),
	},
	HailShowersSlight: {
		Code:          HailShowersSlight,
		Key:           "hail_showers_slight",
		Description:   "Showers of hail, with or without rain or rain and snow mixed, not associated with thunder, slight",
		Precipitation: weather.Current(slight, weather.TypeHail, weather.TypeRain, weather.TypeSnow),
	},
	HailShowersModerateOrHeavy: {
		Code:          HailShowersModerateOrHeavy,
		Key:           "hail_showers_moderate_or_heavy",
		Description:   "Showers of hail, with or without rain or rain and snow mixed, not associated with thunder, moderate or heavy",
		Precipitation: weather.Current(moderateOrHeavy, weather.TypeHail, weather.TypeRain, weather.TypeSnow),
	},
	SlightRainAfterThunderstorm: {
		Code:          SlightRainAfterThunderstorm,
		Key:           "slight_rain_after_thunderstorm",
		Description:   "Slight rain at time of observation, thunderstorm during the preceding hour but not at time of observation",
		Precipitation: weather.Current(slight, weather.TypeRain),
	},
	ModerateOrHeavyRainAfterThunderstorm: {
		Code:          ModerateOrHeavyRainAfterThunderstorm,
		Key:           "moderate_or_heavy_rain_after_thunderstorm",
		Description:   "Moderate or heavy rain at time of observation, thunderstorm during the preceding hour but not at time of observation",
		Precipitation: weather.Current(moderateOrHeavy, weather.TypeRain),
	},
	SlightSnowOrHailAfterThunderstorm: {
		Code:          SlightSnowOrHailAfterThunderstorm,
		Key:           "slight_snow_or_hail_after_thunderstorm",
		Description:   "Slight snow, or rain and snow mixed, or hail at time of observation, thunderstorm during the preceding hour but not at time of observation",
		Precipitation: weather.Current(slight, weather.TypeSnow, weather.TypeRain, weather.TypeHail, weather.TypeSmallHail),
	},
	ModerateOrHeavySnowOrHailAfterThunderstorm: {
		Code:          ModerateOrHeavySnowOrHailAfterThunderstorm,
		Key:           "moderate_or_heavy_snow_or_hail_after_thunderstorm",
		Description:   "Moderate or heavy snow, or rain and snow mixed, or hail at time of observation, thunderstorm during the preceding hour but not at time of observation",
		Precipitation: weather.Current(moderateOrHeavy, weather.TypeSnow, weather.TypeRain, weather.TypeHail, weather.TypeSmallHail),
	},
	ThunderstormSlightOrModerate: {
		Code:          ThunderstormSlightOrModerate,
		Key:           "thunderstorm_slight_or_moderate",
		Description:   "Thunderstorm, slight or moderate, without hail but with rain and/or snow at time of observation",
		Precipitation: weather.Current(slightOrModerate, weather.TypeRain, weather.TypeSnow),
		Thunderstorm:  true,
	},
	ThunderstormSlightOrModerateWithHail: {
		Code:          ThunderstormSlightOrModerateWithHail,
		Key:           "thunderstorm_slight_or_moderate_with_hail",
		Description:   "Thunderstorm, slight or moderate, with hail at time of observation",
		Precipitation: weather.Current(slightOrModerate, weather.TypeHail, weather.TypeSmallHail, weather.TypeRain, weather.TypeSnow),
		Thunderstorm:  true,
	},
	ThunderstormHeavy: {
		Code:          ThunderstormHeavy,
		Key:           "thunderstorm_heavy",
		Description:   "Thunderstorm, heavy, without hail but with rain and/or snow at time of observation",
		Precipitation: weather.Current(heavy, weather.TypeRain, weather.TypeSnow),
		Thunderstorm:  true,
	},
	ThunderstormWithDuststorm: {
		Code:            ThunderstormWithDuststorm,
		Key:             "thunderstorm_with_duststorm",
		Description:     "Thunderstorm combined with duststorm or sandstorm at time of observation",
		Precipitation:   none,
		DustOrSandstorm: true,
		Thunderstorm:    true,
	},
	ThunderstormHeavyWithHail: {
		Code:          ThunderstormHeavyWithHail,
		Key:           "thunderstorm_heavy_with_hail",
		Description:   "Thunderstorm, heavy, with hail at time of observation",
		Precipitation: weather.Current(heavy, weather.TypeHail, weather.TypeSmallHail, weather.TypeRain, weather.TypeSnow),
		Thunderstorm:  true,
	},
}
