package lists

import (
	"reflect"
	"strconv"
	"strings"
)

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// BookEndList returns the first and last elements. A single element is
// repeated and an empty input yields an empty slice.
func BookEndList[T Number](numbers []T) []T {
	switch len(numbers) {
	case 0:
		return []T{}
	case 1:
		return []T{numbers[0], numbers[0]}
	}
	return []T{numbers[0], numbers[len(numbers)-1]}
}

func TripleNumbers[T Number](numbers []T) []T {
	tripled := make([]T, len(numbers))
	for i, n := range numbers {
		tripled[i] = n * 3
	}
	return tripled
}

// MakeMath renders the addition of addends, e.g. [1 2 3] as "6=1+2+3".
// Negative addends are written as is, so "1+-2" is a valid output.
func MakeMath[T Number](addends []T) string {
	if len(addends) == 0 {
		return "0=0"
	}

	var sum T
	terms := make([]string, len(addends))
	for i, a := range addends {
		sum += a
		terms[i] = formatNumber(a)
	}
	return formatNumber(sum) + "=" + strings.Join(terms, "+")
}

// InjectPositive copies values and inserts the running sum of positive
// values right after the first negative one, provided every value before it
// is positive. When all values are positive the sum is appended instead.
func InjectPositive[T Number](values []T) []T {
	injected := make([]T, 0, len(values)+1)

	var sum T
	allPositive := true
	for i := 0; i < len(values); i++ {
		v := values[i]
		injected = append(injected, v)

		if v > 0 {
			sum += v
			continue
		}
		if v < 0 && allPositive {
			injected = append(injected, sum)
		}
		allPositive = false
	}

	if allPositive {
		injected = append(injected, sum)
	}
	return injected
}

func formatNumber[T Number](n T) string {
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	default:
		return strconv.FormatUint(v.Uint(), 10)
	}
}
