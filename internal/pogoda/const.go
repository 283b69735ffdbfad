package pogoda

const (
	Domain               = "yandex_pogoda"
	DefaultName          = "Yandex Pogoda"
	DefaultUpdatesPerDay = 12
	Attribution          = "Data provided by Yandex Pogoda"
	Manufacturer         = "Yandex"
)

// Provider payload attribute names.
const (
	AttrTemperature = "temperature"
	AttrFeelsLike   = "feelsLike"
	AttrWindSpeed   = "windSpeed"
	AttrWindBearing = "windAngle"
	AttrWindGust    = "windGust"
	AttrDaytime     = "daytime"
	AttrCondition   = "condition"
	AttrIcon        = "icon"
	AttrServerTime  = "serverTime"
	AttrTime        = "time"
	AttrForecast    = "forecast"
)

// Entity attribute names exposed on the mapped weather state.
const (
	AttrWindDirection          = "wind_direction"
	AttrYandexCondition        = "yandex_condition"
	AttrMinForecastTemperature = "min_forecast_temperature"
	AttrForecastIcons          = "forecast_icons"
)

// Units the provider reports in.
const (
	ProviderTemperatureUnit = "°C"
	ProviderWindSpeedUnit   = "m/s"
)
