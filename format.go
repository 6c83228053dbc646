package logcat

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/text/message"
)

const (
	// DefaultTag is used when no tag can be derived from a type identifier
	DefaultTag = "logcat"

	placeholder = "{}"
	prefixSep   = " >> "
	null        = "null"
)

// DeriveTag returns the second segment of a dot-separated type identifier.
//
// e.g. com.example.Foo -> example
//      Foo             -> DefaultTag
func DeriveTag(id string) string {
	segments := strings.Split(id, ".")
	if len(segments) < 2 || segments[1] == "" {
		return DefaultTag
	}
	return segments[1]
}

// SimpleName returns the last segment of a dot-separated type identifier
func SimpleName(id string) string {
	if i := strings.LastIndexByte(id, '.'); i >= 0 {
		return id[i+1:]
	}
	return id
}

// QualifiedName returns the dot-separated identifier of the type of v,
// which is its import path followed by the type name. Pointers are
// dereferenced. v can also be a reflect.Type.
//
// e.g. &store.Order{} -> github.com/acme/shop/store.Order
func QualifiedName(v interface{}) string {
	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// Args is the argument list of a leveled call split at its tail.
//
// The last element is either an ordinary substitution value or a failure.
// Failure is nil in the first case.
type Args struct {
	Values  []interface{}
	Failure error
}

// SplitArgs detaches a trailing non-nil error from args
func SplitArgs(args []interface{}) Args {
	if len(args) == 0 {
		return Args{}
	}
	last := args[len(args)-1]
	if err, ok := last.(error); ok && !isNil(last) {
		return Args{Values: args[:len(args)-1], Failure: err}
	}
	return Args{Values: args}
}

// Format substitutes the `{}` tokens of template with values, left to right,
// and prepends prefix.
//
// Substitution is best effort. Extra values are ignored and unfilled tokens
// are kept verbatim. Inserted text is never scanned for tokens.
func Format(prefix, template string, values ...interface{}) string {
	return formatter{}.format(prefix, template, values)
}

// formatter renders substitution values, optionally through a
// locale-aware printer
type formatter struct {
	printer *message.Printer
}

func (f formatter) format(prefix, template string, values []interface{}) string {
	if len(values) == 0 {
		return prefix + template
	}

	var b strings.Builder
	b.Grow(len(prefix) + len(template) + 8*len(values))
	b.WriteString(prefix)

	rest := template
	for _, v := range values {
		i := strings.Index(rest, placeholder)
		if i < 0 {
			break
		}
		b.WriteString(rest[:i])
		b.WriteString(f.stringify(v))
		rest = rest[i+len(placeholder):]
	}
	b.WriteString(rest)
	return b.String()
}

func (f formatter) stringify(v interface{}) string {
	if isNil(v) {
		return null
	}
	if s, ok := v.(string); ok {
		return s
	}
	if f.printer != nil {
		return f.printer.Sprint(v)
	}
	return fmt.Sprint(v)
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
