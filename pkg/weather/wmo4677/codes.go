package wmo4677

import "github.com/couchcryptid/weather-codes/pkg/weather"

// Code is a WMO 4677 (ww) present-weather code number.
type Code int

const (
	CloudDevelopmentNotObserved                Code = 0
	CloudsDissolving                           Code = 1
	SkyUnchanged                               Code = 2
	CloudsDeveloping                           Code = 3
	SmokeOrVolcanicAsh                         Code = 4
	Haze                                       Code = 5
	WidespreadDust                             Code = 6
	DustOrSandRaisedByWind                     Code = 7
	DustOrSandWhirls                           Code = 8
	DuststormOrSandstormWithinSight            Code = 9
	Mist                                       Code = 10
	PatchesOfShallowFog                        Code = 11
	ContinuousShallowFog                       Code = 12
	LightningNoThunder                         Code = 13
	PrecipitationNotReachingGround             Code = 14
	DistantPrecipitation                       Code = 15
	NearbyPrecipitation                        Code = 16
	ThunderstormNoPrecipitation                Code = 17
	Squalls                                    Code = 18
	FunnelClouds                               Code = 19
	RecentDrizzleOrSnowGrains                  Code = 20
	RecentRain                                 Code = 21
	RecentSnow                                 Code = 22
	RecentRainAndSnowOrIcePellets              Code = 23
	RecentFreezingDrizzleOrFreezingRain        Code = 24
	RecentRainShowers                          Code = 25
	RecentSnowShowers                          Code = 26
	RecentHailShowers                          Code = 27
	RecentFog                                  Code = 28
	RecentThunderstorm                         Code = 29
	SlightOrModerateDuststormDecreasing        Code = 30
	SlightOrModerateDuststormSteady            Code = 31
	SlightOrModerateDuststormIncreasing        Code = 32
	SevereDuststormDecreasing                  Code = 33
	SevereDuststormSteady                      Code = 34
	SevereDuststormIncreasing                  Code = 35
	SlightOrModerateDriftingSnow               Code = 36
	HeavyDriftingSnow                          Code = 37
	SlightOrModerateBlowingSnow                Code = 38
	HeavyBlowingSnow                           Code = 39
	DistantFog                                 Code = 40
	FogInPatches                               Code = 41
	FogSkyVisibleThinning                      Code = 42
	FogSkyInvisibleThinning                    Code = 43
	FogSkyVisibleSteady                        Code = 44
	FogSkyInvisibleSteady                      Code = 45
	FogSkyVisibleThickening                    Code = 46
	FogSkyInvisibleThickening                  Code = 47
	RimeFogSkyVisible                          Code = 48
	RimeFogSkyInvisible                        Code = 49
	DrizzleIntermittentSlight                  Code = 50
	DrizzleContinuousSlight                    Code = 51
	DrizzleIntermittentModerate                Code = 52
	DrizzleContinuousModerate                  Code = 53
	DrizzleIntermittentHeavy                   Code = 54
	DrizzleContinuousHeavy                     Code = 55
	FreezingDrizzleSlight                      Code = 56
	FreezingDrizzleModerateOrHeavy             Code = 57
	DrizzleAndRainSlight                       Code = 58
	DrizzleAndRainModerateOrHeavy              Code = 59
	RainIntermittentSlight                     Code = 60
	RainContinuousSlight                       Code = 61
	RainIntermittentModerate                   Code = 62
	RainContinuousModerate                     Code = 63
	RainIntermittentHeavy                      Code = 64
	RainContinuousHeavy                        Code = 65
	FreezingRainSlight                         Code = 66
	FreezingRainModerateOrHeavy                Code = 67
	RainOrDrizzleAndSnowSlight                 Code = 68
	RainOrDrizzleAndSnowModerateOrHeavy        Code = 69
	SnowIntermittentSlight                     Code = 70
	SnowContinuousSlight                       Code = 71
	SnowIntermittentModerate                   Code = 72
	SnowContinuousModerate                     Code = 73
	SnowIntermittentHeavy                      Code = 74
	SnowContinuousHeavy                        Code = 75
	DiamondDust                                Code = 76
	SnowGrains                                 Code = 77
	IsolatedSnowCrystals                       Code = 78
	IcePellets                                 Code = 79
	RainShowersSlight                          Code = 80
	RainShowersModerateOrHeavy                 Code = 81
	RainShowersViolent                         Code = 82
	RainAndSnowShowersSlight                   Code = 83
	RainAndSnowShowersModerateOrHeavy          Code = 84
	SnowShowersSlight                          Code = 85
	SnowShowersModerateOrHeavy                 Code = 86
	SmallHailShowersSlight                     Code = 87
	SmallHailShowersModerateOrHeavy            Code = 88
	HailShowersSlight                          Code = 89
	HailShowersModerateOrHeavy                 Code = 90
	SlightRainAfterThunderstorm                Code = 91
	ModerateOrHeavyRainAfterThunderstorm       Code = 92
	SlightSnowOrHailAfterThunderstorm          Code = 93
	ModerateOrHeavySnowOrHailAfterThunderstorm Code = 94
	ThunderstormSlightOrModerate               Code = 95
	ThunderstormSlightOrModerateWithHail       Code = 96
	ThunderstormHeavy                          Code = 97
	ThunderstormWithDuststorm                  Code = 98
	ThunderstormHeavyWithHail                  Code = 99
)

// codes is the hand-maintained key->code mapping. Every entry must resolve
// to a record in metadata whose Key is the same string.
var codes = weather.Codes[Code]{
	"cloud_development_not_observed":                    CloudDevelopmentNotObserved,
	"clouds_dissolving":                                 CloudsDissolving,
	"sky_unchanged":                                     SkyUnchanged,
	"clouds_developing":                                 CloudsDeveloping,
	"smoke_or_volcanic_ash":                             SmokeOrVolcanicAsh,
	"haze":                                              Haze,
	"widespread_dust":                                   WidespreadDust,
	"dust_or_sand_raised_by_wind":                       DustOrSandRaisedByWind,
	"dust_or_sand_whirls":                               DustOrSandWhirls,
	"duststorm_or_sandstorm_within_sight":               DuststormOrSandstormWithinSight,
	"mist":                                              Mist,
	"patches_of_shallow_fog":                            PatchesOfShallowFog,
	"continuous_shallow_fog":                            ContinuousShallowFog,
	"lightning_no_thunder":                              LightningNoThunder,
	"precipitation_not_reaching_ground":                 PrecipitationNotReachingGround,
	"distant_precipitation":                             DistantPrecipitation,
	"nearby_precipitation":                              NearbyPrecipitation,
	"thunderstorm_no_precipitation":                     ThunderstormNoPrecipitation,
	"squalls":                                           Squalls,
	"funnel_clouds":                                     FunnelClouds,
	"recent_drizzle_or_snow_grains":                     RecentDrizzleOrSnowGrains,
	"recent_rain":                                       RecentRain,
	"recent_snow":                                       RecentSnow,
	"recent_rain_and_snow_or_ice_pellets":               RecentRainAndSnowOrIcePellets,
	"recent_freezing_drizzle_or_freezing_rain":          RecentFreezingDrizzleOrFreezingRain,
	"recent_rain_showers":                               RecentRainShowers,
	"recent_snow_showers":                               RecentSnowShowers,
	"recent_hail_showers":                               RecentHailShowers,
	"recent_fog":                                        RecentFog,
	"recent_thunderstorm":                               RecentThunderstorm,
	"slight_or_moderate_duststorm_decreasing":           SlightOrModerateDuststormDecreasing,
	"slight_or_moderate_duststorm_steady":               SlightOrModerateDuststormSteady,
	"slight_or_moderate_duststorm_increasing":           SlightOrModerateDuststormIncreasing,
	"severe_duststorm_decreasing":                       SevereDuststormDecreasing,
	"severe_duststorm_steady":                           SevereDuststormSteady,
	"severe_duststorm_increasing":                       SevereDuststormIncreasing,
	"slight_or_moderate_drifting_snow":                  SlightOrModerateDriftingSnow,
	"heavy_drifting_snow":                               HeavyDriftingSnow,
	"slight_or_moderate_blowing_snow":                   SlightOrModerateBlowingSnow,
	"heavy_blowing_snow":                                HeavyBlowingSnow,
	"distant_fog":                                       DistantFog,
	"fog_in_patches":                                    FogInPatches,
	"fog_sky_visible_thinning":                          FogSkyVisibleThinning,
	"fog_sky_invisible_thinning":                        FogSkyInvisibleThinning,
	"fog_sky_visible_steady":                            FogSkyVisibleSteady,
	"fog_sky_invisible_steady":                          FogSkyInvisibleSteady,
	"fog_sky_visible_thickening":                        FogSkyVisibleThickening,
	"fog_sky_invisible_thickening":                      FogSkyInvisibleThickening,
	"rime_fog_sky_visible":                              RimeFogSkyVisible,
	"rime_fog_sky_invisible":                            RimeFogSkyInvisible,
	"drizzle_intermittent_slight":                       DrizzleIntermittentSlight,
	"drizzle_continuous_slight":                         DrizzleContinuousSlight,
	"drizzle_intermittent_moderate":                     DrizzleIntermittentModerate,
	"drizzle_continuous_moderate":                       DrizzleContinuousModerate,
	"drizzle_intermittent_heavy":                        DrizzleIntermittentHeavy,
	"drizzle_continuous_heavy":                          DrizzleContinuousHeavy,
	"freezing_drizzle_slight":                           FreezingDrizzleSlight,
	"freezing_drizzle_moderate_or_heavy":                FreezingDrizzleModerateOrHeavy,
	"drizzle_and_rain_slight":                           DrizzleAndRainSlight,
	"drizzle_and_rain_moderate_or_heavy":                DrizzleAndRainModerateOrHeavy,
	"rain_intermittent_slight":                          RainIntermittentSlight,
	"rain_continuous_slight":                            RainContinuousSlight,
	"rain_intermittent_moderate":                        RainIntermittentModerate,
	"rain_continuous_moderate":                          RainContinuousModerate,
	"rain_intermittent_heavy":                           RainIntermittentHeavy,
	"rain_continuous_heavy":                             RainContinuousHeavy,
	"freezing_rain_slight":                              FreezingRainSlight,
	"freezing_rain_moderate_or_heavy":                   FreezingRainModerateOrHeavy,
	"rain_or_drizzle_and_snow_slight":                   RainOrDrizzleAndSnowSlight,
	"rain_or_drizzle_and_snow_moderate_or_heavy":        RainOrDrizzleAndSnowModerateOrHeavy,
	"snow_intermittent_slight":                          SnowIntermittentSlight,
	"snow_continuous_slight":                            SnowContinuousSlight,
	"snow_intermittent_moderate":                        SnowIntermittentModerate,
	"snow_continuous_moderate":                          SnowContinuousModerate,
	"snow_intermittent_heavy":                           SnowIntermittentHeavy,
	"snow_continuous_heavy":                             SnowContinuousHeavy,
	"diamond_dust":                                      DiamondDust,
	"snow_grains":                                       SnowGrains,
	"isolated_snow_crystals":                            IsolatedSnowCrystals,
	"ice_pellets":                                       IcePellets,
	"rain_showers_slight":                               RainShowersSlight,
	"rain_showers_moderate_or_heavy":                    RainShowersModerateOrHeavy,
	"rain_showers_violent":                              RainShowersViolent,
	"rain_and_snow_showers_slight":                      RainAndSnowShowersSlight,
	"rain_and_snow_showers_moderate_or_heavy":           RainAndSnowShowersModerateOrHeavy,
	"snow_showers_slight":                               SnowShowersSlight,
	"snow_showers_moderate_or_heavy":                    SnowShowersModerateOrHeavy,
	"small_hail_showers_slight":                         SmallHailShowersSlight,
	"small_hail_showers_moderate_or_heavy":              SmallHailShowersModerateOrHeavy,
	"hail_showers_slight":                               HailShowersSlight,
	"hail_showers_moderate_or_heavy":                    HailShowersModerateOrHeavy,
	"slight_rain_after_thunderstorm":                    SlightRainAfterThunderstorm,
	"moderate_or_heavy_rain_after_thunderstorm":         ModerateOrHeavyRainAfterThunderstorm,
	"slight_snow_or_hail_after_thunderstorm":            SlightSnowOrHailAfterThunderstorm,
	"moderate_or_heavy_snow_or_hail_after_thunderstorm": ModerateOrHeavySnowOrHailAfterThunderstorm,
	"thunderstorm_slight_or_moderate":                   ThunderstormSlightOrModerate,
	"thunderstorm_slight_or_moderate_with_hail":         ThunderstormSlightOrModerateWithHail,
	"thunderstorm_heavy":                                ThunderstormHeavy,
	"thunderstorm_with_duststorm":                       ThunderstormWithDuststorm,
	"thunderstorm_heavy_with_hail":                      ThunderstormHeavyWithHail,
}
