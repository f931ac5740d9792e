package sanitizer

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/kaleidos/skame/pkg/schema"
)

// ToInt converts strings, json.Number values, integers of any size and
// floats without a fractional part to int. Surrounding whitespace in strings
// is ignored.
func ToInt(v any) (any, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case string:
		return strconv.Atoi(strings.TrimSpace(val))
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return nil, err
		}
		return intFromInt64(val, n)
	case bool, nil:
		return nil, schema.TypeMismatch(v, "int")
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intFromInt64(v, rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return nil, schema.Conversionf(v, "int", "%d overflows int", u)
		}
		return int(u), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || f >= math.MaxInt || f < math.MinInt {
			return nil, schema.Conversionf(v, "int", "%v is not a whole number", f)
		}
		return int(f), nil
	case reflect.String:
		return strconv.Atoi(strings.TrimSpace(rv.String()))
	default:
		return nil, schema.TypeMismatch(v, "int")
	}
}

func intFromInt64(orig any, n int64) (any, error) {
	if n > math.MaxInt || n < math.MinInt {
		return nil, schema.Conversionf(orig, "int", "%d overflows int", n)
	}
	return int(n), nil
}

// ToFloat converts strings, json.Number values and any numeric kind to float64.
func ToFloat(v any) (any, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(val), 64)
	case json.Number:
		return val.Float64()
	case bool, nil:
		return nil, schema.TypeMismatch(v, "float64")
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		return strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
	default:
		return nil, schema.TypeMismatch(v, "float64")
	}
}

// ToBool accepts booleans and the strings understood by strconv.ParseBool
// ("1", "t", "true", "0", "f", "false" in any case). Form checkboxes send
// "on", which is accepted as true.
func ToBool(v any) (any, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		s := strings.TrimSpace(val)
		if strings.EqualFold(s, "on") {
			return true, nil
		}
		return strconv.ParseBool(s)
	default:
		return nil, schema.TypeMismatch(v, "bool")
	}
}

// ToString formats strings, byte slices, numbers, booleans and fmt.Stringer
// values as a string. Any other input is rejected.
func ToString(v any) (any, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case []byte:
		return string(val), nil
	case fmt.Stringer:
		return val.String(), nil
	case bool:
		return strconv.FormatBool(val), nil
	case json.Number:
		return val.String(), nil
	case nil:
		return nil, schema.TypeMismatch(v, "string")
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	case reflect.String:
		return rv.String(), nil
	default:
		return nil, schema.TypeMismatch(v, "string")
	}
}

// ToTime parses strings with layout. time.Time values pass through.
func ToTime(layout string) schema.Step {
	return func(v any) (any, error) {
		switch val := v.(type) {
		case time.Time:
			return val, nil
		case string:
			return time.Parse(layout, strings.TrimSpace(val))
		default:
			return nil, schema.TypeMismatch(v, "time.Time")
		}
	}
}
