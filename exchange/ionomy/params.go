package ionomy

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

//
// Param is a single query string parameter. A nil Value (or a typed nil pointer) marks the
// parameter as absent: it is dropped by Sanitize and never makes it onto the wire.
//
type Param struct {
	Key   string
	Value interface{}
}

//
// Params is an ordered list of query string parameters. Order matters because the exchange
// recomputes the request signature from the query string exactly as it was sent.
//
type Params []Param

//
// Sanitize returns a copy of the provided parameters without the absent ones. Falsy-but-present
// values such as 0, "" and false are kept verbatim and in their original order.
//
func Sanitize(params Params) Params {
	ret := make(Params, 0, len(params))

	for _, v := range params {
		if absent(v.Value) {
			continue
		}

		ret = append(ret, v)
	}

	return ret
}

//
// Encode renders the parameters as a query string (without the leading "?") in insertion order.
// Absent parameters are skipped.
//
func (o Params) Encode() string {
	var sb strings.Builder

	for _, v := range o {
		if absent(v.Value) {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteByte('&')
		}

		sb.WriteString(url.QueryEscape(v.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(formatValue(v.Value)))
	}

	return sb.String()
}

func absent(value interface{}) bool {
	if value == nil {
		return true
	}

	//
	// Follow pointer chains all the way down: a pointer to a nil pointer is just as absent.
	//
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return true
		}

		rv = rv.Elem()
	}

	return false
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case decimal.Decimal:
		return v.String()
	case fmt.Stringer:
		return v.String()
	}

	//
	// Dereference pointers to any of the above.
	//
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return ""
		}

		return formatValue(rv.Elem().Interface())
	}

	return fmt.Sprint(value)
}
