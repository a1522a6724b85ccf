package filter

import (
	"reflect"
	"strings"

	"github.com/spotlease/stripe-go/params"
)

// newEnvironment builds the runtime environment for one item: the helper
// functions, the item itself as Item, and each exported field of the item
// under its Go name. Scalar fields are normalised to plain Go types
// (string, int, float64, bool) so expressions can compare them against
// literals. Nil pointers stay nil.
func newEnvironment(item any, helpers map[string]any) map[string]any {
	env := make(map[string]any, len(helpers)+32)
	for name, fn := range helpers {
		env[name] = fn
	}
	env["Item"] = item

	v := reflect.ValueOf(item)
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return env
	}

	var metadata params.Metadata
	addFields(env, v, &metadata)

	env["hasMetadata"] = createHasMetadataFunc(metadata)
	env["metadata"] = createMetadataFunc(metadata)
	return env
}

func addFields(env map[string]any, v reflect.Value, metadata *params.Metadata) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		fv := v.Field(i)
		if sf.Anonymous && reflect.Indirect(fv).Kind() == reflect.Struct {
			addFields(env, reflect.Indirect(fv), metadata)
			continue
		}

		if m, ok := fv.Interface().(params.Metadata); ok {
			*metadata = m
		}
		env[sf.Name] = normalize(fv)
	}
}

func normalize(v reflect.Value) any {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Bool:
		return v.Bool()
	case reflect.Map:
		if m, ok := v.Interface().(params.Metadata); ok {
			return map[string]string(m)
		}
	}
	return v.Interface()
}

func createHasMetadataFunc(metadata params.Metadata) func(string) bool {
	return func(key string) bool {
		_, ok := metadata[key]
		return ok
	}
}

func createMetadataFunc(metadata params.Metadata) func(string) string {
	return func(key string) string {
		return metadata[key]
	}
}

// idOf returns the ID field of a resource, if it has a string one.
func idOf(item any) string {
	v := reflect.Indirect(reflect.ValueOf(item))
	if v.Kind() != reflect.Struct {
		return ""
	}
	field := v.FieldByName("ID")
	switch {
	case !field.IsValid():
		return ""
	case field.Kind() == reflect.String:
		return field.String()
	case field.Kind() == reflect.Pointer && !field.IsNil() && field.Elem().Kind() == reflect.String:
		return field.Elem().String()
	}
	return ""
}

// fieldNames lists the names an expression can refer to for values of the
// given struct type, for help output.
func fieldNames(t reflect.Type) []string {
	if t == nil {
		return nil
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var names []string
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Anonymous {
			names = append(names, fieldNames(sf.Type)...)
			continue
		}
		names = append(names, sf.Name)
	}
	return names
}

// Fields returns the field names available to expressions evaluated
// against values like sample, joined for display.
func Fields(sample any) string {
	return strings.Join(fieldNames(reflect.TypeOf(sample)), ", ")
}
