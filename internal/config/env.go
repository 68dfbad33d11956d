package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// envField is a settable config field carrying an env tag. Path is the yaml
// path of the field, used in error messages.
type envField struct {
	Value reflect.Value
	Key   string
	Path  string
}

// collectEnvFields lists every tagged field of the struct v points to,
// descending into nested sections.
func collectEnvFields(v reflect.Value, parent string) []envField {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	var fields []envField
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		path := yamlName(sf)
		if parent != "" {
			path = parent + "." + path
		}

		fv := v.Field(i)
		if fv.Kind() == reflect.Struct {
			fields = append(fields, collectEnvFields(fv, path)...)
			continue
		}
		if key := sf.Tag.Get("env"); key != "" {
			fields = append(fields, envField{Value: fv, Key: key, Path: path})
		}
	}
	return fields
}

func yamlName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("yaml"), ",")
	if name == "" || name == "-" {
		return strings.ToLower(sf.Name)
	}
	return name
}

// applyEnv overrides tagged fields of target with the environment. Every bad
// value is reported, not just the first.
func applyEnv(target interface{}) error {
	var errs []error
	for _, f := range collectEnvFields(reflect.ValueOf(target), "") {
		raw, ok := os.LookupEnv(f.Key)
		if !ok {
			continue
		}
		if err := assignEnv(f.Value, raw); err != nil {
			errs = append(errs, fmt.Errorf("%s (%s): %w", f.Key, f.Path, err))
		}
	}
	return errors.Join(errs...)
}

// assignEnv parses raw into v according to v's type
func assignEnv(v reflect.Value, raw string) error {
	if !v.CanSet() {
		return errors.New("field is not settable")
	}
	trimmed := strings.TrimSpace(raw)

	if v.Type() == durationType {
		d, err := time.ParseDuration(trimmed)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(trimmed)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(trimmed, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Float32, reflect.Float64:
		x, err := strconv.ParseFloat(trimmed, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(x)
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported list type %s", v.Type())
		}
		v.Set(reflect.ValueOf(splitList(raw)))
	default:
		return fmt.Errorf("unsupported type %s", v.Type())
	}
	return nil
}

// splitList reads a comma separated list, dropping blank items
func splitList(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
