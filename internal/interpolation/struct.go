package interpolation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// InterpolateStruct applies environment variable interpolation to fields tagged with `env_interpolation:"yes"`.
// This function modifies the provided struct in place. It handles string fields, string maps, and string slices.
// Interface types will return an error - each concrete type should call this function on itself.
func InterpolateStruct(v any) error {
	if v == nil {
		return nil
	}

	val := reflect.ValueOf(v)

	// Fail fast if passed an interface type
	if val.Kind() == reflect.Interface {
		return fmt.Errorf(
			"InterpolateStruct cannot handle interface types, call from concrete type instead",
		)
	}

	// Handle pointer to struct
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}

	// Must be a struct at this point
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("expected struct or pointer to struct, got %T", v)
	}

	typ := val.Type()
	var errs []error

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		// Skip unexported fields
		if !field.CanSet() {
			continue
		}

		tag := strings.ToLower(fieldType.Tag.Get("env_interpolation"))
		if tag != "yes" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			original := field.String()
			if original == "" {
				continue
			}

			interpolated, err := ExpandEnvVars(original)
			if err != nil {
				errs = append(errs, fmt.Errorf("field %s: %w", fieldType.Name, err))
				continue
			}
			field.SetString(interpolated)

		case reflect.Map:
			// Handle map[string]string fields
			if field.Type().Key().Kind() != reflect.String ||
				field.Type().Elem().Kind() != reflect.String ||
				field.IsNil() {
				continue
			}

			for _, key := range field.MapKeys() {
				value := field.MapIndex(key)
				interpolated, err := ExpandEnvVars(value.String())
				if err != nil {
					errs = append(
						errs,
						fmt.Errorf("field %s[%s]: %w", fieldType.Name, key.String(), err),
					)
					continue
				}
				field.SetMapIndex(key, reflect.ValueOf(interpolated))
			}

		case reflect.Slice:
			// Handle []string fields
			if field.Type().Elem().Kind() != reflect.String || field.IsNil() {
				continue
			}

			for j := 0; j < field.Len(); j++ {
				elem := field.Index(j)
				interpolated, err := ExpandEnvVars(elem.String())
				if err != nil {
					errs = append(
						errs,
						fmt.Errorf("field %s[%d]: %w", fieldType.Name, j, err),
					)
					continue
				}
				elem.SetString(interpolated)
			}

		default:
			// All other field kinds are left untouched
		}
	}

	return errors.Join(errs...)
}
