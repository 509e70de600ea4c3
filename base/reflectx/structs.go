// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// SetFromDefaultTags sets the values of fields in the given struct based on
// `default:` default value field tags. Nested structs without a tag
// are processed recursively. Slices of strings are set from
// comma-separated values.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	ov := reflect.ValueOf(obj)
	if ov.Kind() == reflect.Pointer && ov.IsNil() {
		return nil
	}
	val := NonPointerValue(ov)
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("SetFromDefaultTags: object of type %T is not a struct", obj)
	}
	typ := val.Type()
	var errs []string
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if NonPointerType(f.Type).Kind() == reflect.Struct && (!ok || def == "") {
			if err := SetFromDefaultTags(PointerValue(fv).Interface()); err != nil {
				errs = append(errs, err.Error())
			}
			continue
		}
		if !ok || def == "" {
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, fmt.Sprintf("field %s in %s: %v", f.Name, typ.Name(), err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("SetFromDefaultTags: %s", strings.Join(errs, "; "))
	}
	return nil
}

// SetFromString sets the given settable value from its string
// representation, for the basic kinds used in configuration structs.
func SetFromString(v reflect.Value, str string) error {
	v = NonPointerValue(v)
	if !v.CanSet() {
		return fmt.Errorf("value of type %v is not settable", v.Type())
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(str)
	case reflect.Bool:
		b, err := strconv.ParseBool(str)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(str, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(str, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(str, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %v", v.Type())
		}
		parts := strings.Split(str, ",")
		sl := reflect.MakeSlice(v.Type(), len(parts), len(parts))
		for i, p := range parts {
			sl.Index(i).SetString(strings.TrimSpace(p))
		}
		v.Set(sl)
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}
