package maya

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Quote returns s as a double-quoted MEL string literal.
func Quote(s string) string {
	if !strings.ContainsAny(s, "\"\\\n\t") {
		return "\"" + s + "\""
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)
	return "\"" + r.Replace(s) + "\""
}

// FormatFloat formats a float32 with the shortest representation that
// round-trips. Negative zero is written as 0.
func FormatFloat(f float32) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// FormatDouble is FormatFloat for float64 values.
func FormatDouble(f float64) string {
	if f == 0 || math.IsNaN(f) {
		return "0"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// FormatBool returns the MEL boolean literal.
func FormatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// FormatValue formats a setAttr operand. Strings are quoted; use Raw to
// pass a token through untouched.
func FormatValue(v any) string {
	switch x := v.(type) {
	case Raw:
		return string(x)
	case string:
		return Quote(x)
	case float32:
		return FormatFloat(x)
	case float64:
		return FormatDouble(x)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case bool:
		return FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// Raw is an unquoted operand token, e.g. "off" or "f".
type Raw string
