package pipeline

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/irfndi/oddsframe/internal/dataset"
	"github.com/irfndi/oddsframe/internal/utils"
)

var timeType = reflect.TypeOf(time.Time{})

// decodeParams checks params against the mapstructure fields of target, then
// decodes them into it. A scalar given where a list is declared becomes a
// one-element list. Fields absent from params, or set to null, keep their
// current value.
func decodeParams(operation string, params map[string]interface{}, target interface{}) error {
	fields := fieldTypes(reflect.TypeOf(target).Elem())

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	set := make(map[string]interface{}, len(params))
	for _, key := range keys {
		typ, ok := fields[key]
		if !ok {
			return utils.NewInvalidValueError(operation+" parameter", key, fieldNames(fields))
		}
		if params[key] == nil {
			continue
		}
		if err := checkValue(key, params[key], typ); err != nil {
			return err
		}
		set[key] = params[key]
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToTimeHook,
			scalarToSliceHook,
		),
		ErrorUnused: true,
		Result:      target,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	if err := decoder.Decode(set); err != nil {
		return &utils.TypeError{Field: operation, Expected: "declared parameter types", Got: err.Error()}
	}
	return nil
}

// fieldTypes maps the mapstructure names of a struct, including squashed
// embedded structs, to their types.
func fieldTypes(t reflect.Type) map[string]reflect.Type {
	out := make(map[string]reflect.Type)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, opts, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if f.Anonymous && opts == "squash" && f.Type.Kind() == reflect.Struct {
			for k, v := range fieldTypes(f.Type) {
				out[k] = v
			}
			continue
		}
		if name == "" || name == "-" {
			continue
		}
		out[name] = f.Type
	}
	return out
}

func fieldNames(fields map[string]reflect.Type) []string {
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func checkValue(key string, value interface{}, typ reflect.Type) error {
	if typ.Kind() == reflect.Slice {
		rv := reflect.ValueOf(value)
		if value != nil && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
			for i := 0; i < rv.Len(); i++ {
				if err := checkScalar(key, rv.Index(i).Interface(), typ.Elem()); err != nil {
					return err
				}
			}
			return nil
		}
		return checkScalar(key, value, typ.Elem())
	}
	return checkScalar(key, value, typ)
}

func checkScalar(key string, value interface{}, typ reflect.Type) error {
	mismatch := func(expected string) error {
		return &utils.TypeError{Field: key, Expected: expected, Got: describe(value)}
	}

	if typ == timeType {
		switch v := value.(type) {
		case time.Time:
			return nil
		case string:
			if v == "" {
				return nil
			}
			if _, ok := dataset.ParseTime(v); ok {
				return nil
			}
		}
		return mismatch("timestamp")
	}

	switch typ.Kind() {
	case reflect.String:
		if _, ok := value.(string); !ok {
			return mismatch("string")
		}
	case reflect.Bool:
		if _, ok := value.(bool); !ok {
			return mismatch("bool")
		}
	case reflect.Int, reflect.Int64, reflect.Int32:
		if !isWholeNumber(value) {
			return mismatch("integer")
		}
	}
	return nil
}

func isWholeNumber(value interface{}) bool {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return float64(v) == math.Trunc(float64(v))
	case float64:
		return v == math.Trunc(v) && !math.IsInf(v, 0)
	}
	return false
}

func describe(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("string %q", v)
	case map[string]interface{}:
		return "object"
	}
	return reflect.TypeOf(value).String()
}

func stringToTimeHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != timeType || from.Kind() != reflect.String {
		return data, nil
	}
	s := data.(string)
	if s == "" {
		return time.Time{}, nil
	}
	t, ok := dataset.ParseTime(s)
	if !ok {
		return nil, fmt.Errorf("cannot parse %q as a timestamp", s)
	}
	return t, nil
}

func scalarToSliceHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to.Kind() != reflect.Slice || data == nil {
		return data, nil
	}
	if k := from.Kind(); k == reflect.Slice || k == reflect.Array {
		return data, nil
	}
	return []interface{}{data}, nil
}
