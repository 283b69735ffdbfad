package pogoda

import "fmt"

// Converter converts value from one unit to another.
type Converter func(value float64, from, to string) (float64, error)

// ConvertUnitValue runs conv when val is set and both units are non-empty.
// Otherwise it returns nil without calling conv. Units are not validated
// here; whatever conv rejects is returned as its error.
func ConvertUnitValue(conv Converter, val *float64, from, to string) (*float64, error) {
	if val == nil || from == "" || to == "" {
		return nil, nil
	}
	out, err := conv(*val, from, to)
	if err != nil {
		return nil, fmt.Errorf("convert %v %s to %s: %w", *val, from, to, err)
	}
	return &out, nil
}
