package rotolog

import (
	"fmt"
	"reflect"
)

// Maximum recursion depth to prevent stack overflow
const maxDumpDepth = 10

// dumpMaxElements caps how many slice/array elements a dump walks.
const maxDumpElements = 10

// Dump logs the contents of v through l at Debug level, one line per
// field or element. Structs walk their exported fields, maps and slices
// their elements, everything else prints its value. The whole walk is
// skipped when l would suppress Debug, so dumping is free on quieter
// thresholds.
func Dump(l Logger, v any) {
	if l == nil || !SeverityDebug.Enabled(l.Level()) {
		return
	}
	if v == nil {
		l.Debug(func() string { return "dump: <nil>" })
		return
	}

	// Track visited pointers to prevent infinite recursion on cycles.
	visited := make(map[uintptr]bool)
	dumpValue(l, v, emptyString, visited, 0)
}

func dumpLine(l Logger, format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	l.Debug(func() string { return line })
}

func dumpValue(l Logger, v any, prefix string, visited map[uintptr]bool, depth int) {
	if depth > maxDumpDepth {
		dumpLine(l, "%s: <max depth reached>", prefix)
		return
	}
	if v == nil {
		dumpLine(l, "%s: <nil>", prefix)
		return
	}

	val := reflect.ValueOf(v)

	// Unwrap interfaces and pointers with cycle detection.
	for {
		switch val.Kind() {
		case reflect.Interface:
			if val.IsNil() {
				dumpLine(l, "%s: <nil>", prefix)
				return
			}
			val = val.Elem()
			continue
		case reflect.Ptr:
			if val.IsNil() {
				dumpLine(l, "%s: <nil>", prefix)
				return
			}
			ptr := val.Pointer()
			if visited[ptr] {
				dumpLine(l, "%s: <circular reference>", prefix)
				return
			}
			visited[ptr] = true
			val = val.Elem()
		default:
		}
		break
	}

	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		if prefix == emptyString {
			dumpLine(l, "struct: %s", typ.Name())
		} else {
			dumpLine(l, "%s: %s {", prefix, typ.Name())
		}

		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			fieldVal := val.Field(i)
			if !fieldVal.CanInterface() {
				continue
			}
			fieldPrefix := field.Name
			if prefix != emptyString {
				fieldPrefix = prefix + "." + field.Name
			}
			dumpValue(l, fieldVal.Interface(), fieldPrefix, visited, depth+1)
		}

		if prefix != emptyString {
			dumpLine(l, "%s: }", prefix)
		}

	case reflect.Map:
		dumpLine(l, "%s: map[%s]%s (len: %d) {", prefix, typ.Key(), typ.Elem(), val.Len())
		iter := val.MapRange()
		for iter.Next() {
			mapPrefix := fmt.Sprintf("%s[%v]", prefix, iter.Key().Interface())
			dumpValue(l, iter.Value().Interface(), mapPrefix, visited, depth+1)
		}
		dumpLine(l, "%s: }", prefix)

	case reflect.Slice, reflect.Array:
		dumpLine(l, "%s: %s (len: %d) {", prefix, typ, val.Len())
		for i := 0; i < val.Len() && i < maxDumpElements; i++ {
			elemPrefix := fmt.Sprintf("%s[%d]", prefix, i)
			elem := val.Index(i)
			if elem.CanInterface() {
				dumpValue(l, elem.Interface(), elemPrefix, visited, depth+1)
			}
		}
		if val.Len() > maxDumpElements {
			dumpLine(l, "%s: ... (%d more elements)", prefix, val.Len()-maxDumpElements)
		}
		dumpLine(l, "%s: }", prefix)

	default:
		if val.IsValid() && val.CanInterface() {
			dumpLine(l, "%s: %v", prefix, val.Interface())
		} else {
			dumpLine(l, "%s: %v", prefix, v)
		}
	}
}
