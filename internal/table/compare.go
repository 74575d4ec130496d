package table

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// kind ranks values of different types so that mixed columns still sort
// under a total order: nil < bool < number < string < time < anything else.
type kind int

const (
	kindNil kind = iota
	kindBool
	kindInt
	kindUint
	kindFloat
	kindString
	kindTime
	kindOther
)

// CompareValues orders two sort values. It returns a negative number when a
// sorts before b, zero when they are equal and a positive number otherwise.
func CompareValues(a, b any) int {
	ka, va := classify(a)
	kb, vb := classify(b)

	if isNumeric(ka) && isNumeric(kb) {
		return compareNumbers(ka, va, kb, vb)
	}
	if ka != kb {
		return cmp.Compare(rank(ka), rank(kb))
	}

	switch ka {
	case kindNil:
		return 0
	case kindBool:
		ba, bb := va.Bool(), vb.Bool()
		switch {
		case ba == bb:
			return 0
		case !ba:
			return -1
		default:
			return 1
		}
	case kindString:
		sa, sb := va.String(), vb.String()
		if c := strings.Compare(strings.ToLower(sa), strings.ToLower(sb)); c != 0 {
			return c
		}
		return strings.Compare(sa, sb)
	case kindTime:
		return va.Interface().(time.Time).Compare(vb.Interface().(time.Time))
	default:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

func classify(value any) (kind, reflect.Value) {
	if value == nil {
		return kindNil, reflect.Value{}
	}
	if _, ok := value.(time.Time); ok {
		return kindTime, reflect.ValueOf(value)
	}
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return kindNil, reflect.Value{}
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Bool:
		return kindBool, v
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return kindInt, v
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return kindUint, v
	case reflect.Float32, reflect.Float64:
		return kindFloat, v
	case reflect.String:
		return kindString, v
	}
	if t, ok := v.Interface().(time.Time); ok {
		return kindTime, reflect.ValueOf(t)
	}
	return kindOther, v
}

func isNumeric(k kind) bool {
	return k == kindInt || k == kindUint || k == kindFloat
}

func rank(k kind) int {
	if isNumeric(k) {
		return int(kindInt)
	}
	return int(k)
}

func compareNumbers(ka kind, va reflect.Value, kb kind, vb reflect.Value) int {
	switch {
	case ka == kindInt && kb == kindInt:
		return cmp.Compare(va.Int(), vb.Int())
	case ka == kindUint && kb == kindUint:
		return cmp.Compare(va.Uint(), vb.Uint())
	case ka == kindInt && kb == kindUint:
		if va.Int() < 0 {
			return -1
		}
		return cmp.Compare(uint64(va.Int()), vb.Uint())
	case ka == kindUint && kb == kindInt:
		if vb.Int() < 0 {
			return 1
		}
		return cmp.Compare(va.Uint(), uint64(vb.Int()))
	}
	// cmp.Compare places NaN before every other float.
	return cmp.Compare(toFloat(ka, va), toFloat(kb, vb))
}

func toFloat(k kind, v reflect.Value) float64 {
	switch k {
	case kindInt:
		return float64(v.Int())
	case kindUint:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}
