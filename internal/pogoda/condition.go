package pogoda

import "sort"

// Provider condition codes.
const (
	CodeClear                = "CLEAR"
	CodePartlyCloudy         = "PARTLY_CLOUDY"
	CodeCloudy               = "CLOUDY"
	CodeOvercast             = "OVERCAST"
	CodeLightRain            = "LIGHT_RAIN"
	CodeRain                 = "RAIN"
	CodeHeavyRain            = "HEAVY_RAIN"
	CodeShowers              = "SHOWERS"
	CodeSleet                = "SLEET"
	CodeLightSnow            = "LIGHT_SNOW"
	CodeSnow                 = "SNOW"
	CodeSnowfall             = "SNOWFALL"
	CodeHail                 = "HAIL"
	CodeThunderstorm         = "THUNDERSTORM"
	CodeThunderstormWithRain = "THUNDERSTORM_WITH_RAIN"
	CodeThunderstormWithHail = "THUNDERSTORM_WITH_HAIL"
)

// Platform weather states.
const (
	StateSunny          = "sunny"
	StateClearNight     = "clear-night"
	StatePartlyCloudy   = "partlycloudy"
	StateCloudy         = "cloudy"
	StateRainy          = "rainy"
	StatePouring        = "pouring"
	StateSnowyRainy     = "snowy-rainy"
	StateSnowy          = "snowy"
	StateHail           = "hail"
	StateLightning      = "lightning"
	StateLightningRainy = "lightning-rainy"
)

// Mapping is a table entry: either a single value or a day/night pair.
type Mapping struct {
	day       string
	night     string
	byDaypart bool
}

// Single returns an entry that resolves to v regardless of daytime.
func Single(v string) Mapping {
	return Mapping{day: v, night: v}
}

// ByDaypart returns an entry with distinct day and night values.
func ByDaypart(day, night string) Mapping {
	return Mapping{day: day, night: night, byDaypart: true}
}

// Resolve picks the value for the given daytime.
func (m Mapping) Resolve(isDay bool) string {
	if isDay || !m.byDaypart {
		return m.day
	}
	return m.night
}

// IsByDaypart reports whether the entry has distinct day and night values.
func (m Mapping) IsByDaypart() bool {
	return m.byDaypart
}

// Table is an immutable code lookup. The zero value and nil are empty tables.
type Table struct {
	entries map[string]Mapping
}

// NewTable copies entries into a new read-only table.
func NewTable(entries map[string]Mapping) *Table {
	t := &Table{entries: make(map[string]Mapping, len(entries))}
	for code, m := range entries {
		t.entries[code] = m
	}
	return t
}

// Lookup returns the entry for code.
func (t *Table) Lookup(code string) (Mapping, bool) {
	if t == nil {
		return Mapping{}, false
	}
	m, ok := t.entries[code]
	return m, ok
}

// Codes returns the table's codes in sorted order.
func (t *Table) Codes() []string {
	if t == nil {
		return nil
	}
	codes := make([]string, 0, len(t.entries))
	for code := range t.entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// MapState translates a provider code through table. Codes missing from
// the table are returned unchanged.
func MapState(src string, isDay bool, table *Table) string {
	m, ok := table.Lookup(src)
	if !ok {
		return src
	}
	return m.Resolve(isDay)
}

// WeatherStates maps provider conditions to platform weather states.
var WeatherStates = NewTable(map[string]Mapping{
	CodeClear:                ByDaypart(StateSunny, StateClearNight),
	CodePartlyCloudy:         Single(StatePartlyCloudy),
	CodeCloudy:               Single(StateCloudy),
	CodeOvercast:             Single(StateCloudy),
	CodeLightRain:            Single(StateRainy),
	CodeRain:                 Single(StateRainy),
	CodeHeavyRain:            Single(StatePouring),
	CodeShowers:              Single(StatePouring),
	CodeSleet:                Single(StateSnowyRainy),
	CodeLightSnow:            Single(StateSnowy),
	CodeSnow:                 Single(StateSnowy),
	CodeSnowfall:             Single(StateSnowy),
	CodeHail:                 Single(StateHail),
	CodeThunderstorm:         Single(StateLightning),
	CodeThunderstormWithRain: Single(StateLightningRainy),
	CodeThunderstormWithHail: Single(StateLightningRainy),
})

// ConditionIcons maps provider conditions to state icons.
var ConditionIcons = NewTable(map[string]Mapping{
	CodeClear:                ByDaypart("mdi:weather-sunny", "mdi:weather-night"),
	CodePartlyCloudy:         ByDaypart("mdi:weather-partly-cloudy", "mdi:weather-night-partly-cloudy"),
	CodeCloudy:               Single("mdi:weather-cloudy"),
	CodeOvercast:             Single("mdi:weather-cloudy"),
	CodeLightRain:            Single("mdi:weather-rainy"),
	CodeRain:                 Single("mdi:weather-rainy"),
	CodeHeavyRain:            Single("mdi:weather-pouring"),
	CodeShowers:              Single("mdi:weather-pouring"),
	CodeSleet:                Single("mdi:weather-snowy-rainy"),
	CodeLightSnow:            Single("mdi:weather-snowy"),
	CodeSnow:                 Single("mdi:weather-snowy"),
	CodeSnowfall:             Single("mdi:weather-snowy-heavy"),
	CodeHail:                 Single("mdi:weather-hail"),
	CodeThunderstorm:         Single("mdi:weather-lightning"),
	CodeThunderstormWithRain: Single("mdi:weather-lightning-rainy"),
	CodeThunderstormWithHail: Single("mdi:weather-lightning-rainy"),
})
