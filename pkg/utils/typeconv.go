package utils

import (
	"fmt"
	"strconv"
	"time"
)

// Kind is the storage type inferred for a record-set column.
type Kind int

const (
	KindString Kind = iota
	KindInt64
	KindFloat64
	KindBool
	KindTimestamp
)

func (k Kind) String() string {
	switch k {
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindTimestamp:
		return "timestamp"
	default:
		return "string"
	}
}

// InferKind picks the narrowest kind that fits every non-nil value in a
// column. All-integer columns become int64, mixed numeric columns widen to
// float64, and anything inconsistent falls back to string. A column of only
// nils is stored as string.
func InferKind(values []interface{}) Kind {
	sawValue := false
	allInt, allNumeric, allBool, allTime := true, true, true, true

	for _, v := range values {
		if v == nil {
			continue
		}
		sawValue = true

		switch v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			allBool, allTime = false, false
		case float32, float64:
			allInt = false
			allBool, allTime = false, false
		case bool:
			allInt, allNumeric, allTime = false, false, false
		case time.Time:
			allInt, allNumeric, allBool = false, false, false
		default:
			return KindString
		}
	}

	switch {
	case !sawValue:
		return KindString
	case allBool:
		return KindBool
	case allTime:
		return KindTimestamp
	case allInt:
		return KindInt64
	case allNumeric:
		return KindFloat64
	default:
		return KindString
	}
}

// ToInt64 converts any integer-typed value to int64.
func ToInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("cannot convert %T to int64", v)
	}
}

// ToFloat64 converts any numeric value to float64.
func ToFloat64(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		i, err := ToInt64(v)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %T to float64", v)
		}
		return float64(i), nil
	}
}

func ToBool(v interface{}) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("cannot convert %T to bool", v)
	}
	return b, nil
}

func ToTime(v interface{}) (time.Time, error) {
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("cannot convert %T to time", v)
	}
	return t, nil
}

// ToString renders a value for text output. Nil becomes the empty string,
// timestamps render as RFC 3339, floats keep their shortest representation.
func ToString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case time.Time:
		return s.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'g', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}
