package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CoerceInt converts a loosely typed JSON value into an int.
// JSON numbers decode as float64; clients also send numeric strings.
func CoerceInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("value %v is not an integer", v)
		}
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, err
		}
		return int(n), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("value %q is not an integer", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("value of type %T is not an integer", value)
	}
}

// CoerceFloat converts a loosely typed JSON value into a float64.
// NaN and infinities are rejected; no amount field has a use for them.
func CoerceFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return finite(v)
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, err
		}
		return finite(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not a number", v)
		}
		return finite(f)
	default:
		return 0, fmt.Errorf("value of type %T is not a number", value)
	}
}

func finite(f float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("value %v is not a finite number", f)
	}
	return f, nil
}

// CoerceString converts a loosely typed JSON value into a trimmed string
func CoerceString(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("value of type %T is not a string", value)
	}
}
