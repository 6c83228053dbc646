package logcat

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

type order struct{}

func TestDeriveTag(t *testing.T) {
	tests := []struct {
		id     string
		expect string
	}{
		{id: "a.b.C", expect: "b"},
		{id: "com.example.Foo", expect: "example"},
		{id: "com.oneous.log4android.Logger", expect: "oneous"},
		{id: "C", expect: DefaultTag},
		{id: "", expect: DefaultTag},
		{id: "a..C", expect: DefaultTag},
		{id: "github.com/acme/shop/store.Order", expect: "com/acme/shop/store"},
	}

	for _, test := range tests {
		got := DeriveTag(test.id)
		if test.expect != got {
			t.Errorf("expect tag %q for %q, but got %q", test.expect, test.id, got)
		}
	}
}

func TestSimpleName(t *testing.T) {
	tests := map[string]string{
		"a.b.C": "C",
		"C":     "C",
		"":      "",

		"github.com/acme/shop/store.Order": "Order",
	}
	for id, expect := range tests {
		if got := SimpleName(id); expect != got {
			t.Errorf("expect simple name %q for %q, but got %q", expect, id, got)
		}
	}
}

func TestQualifiedName(t *testing.T) {
	expect := "github.com/deixis/logcat.order"

	if got := QualifiedName(order{}); expect != got {
		t.Errorf("expect %q, but got %q", expect, got)
	}
	if got := QualifiedName(&order{}); expect != got {
		t.Errorf("expect %q for a pointer, but got %q", expect, got)
	}
	if got := QualifiedName(reflect.TypeOf(order{})); expect != got {
		t.Errorf("expect %q for a reflect.Type, but got %q", expect, got)
	}
	if got := QualifiedName(42); got != "int" {
		t.Errorf("expect %q for a builtin type, but got %q", "int", got)
	}
	if got := QualifiedName(nil); got != "" {
		t.Errorf("expect an empty name for nil, but got %q", got)
	}
}

func TestFormat(t *testing.T) {
	var nilPtr *order
	tests := []struct {
		name     string
		prefix   string
		template string
		values   []interface{}
		expect   string
	}{
		{
			name:     "exact",
			template: "request {} took {} ms",
			values:   []interface{}{"/login", 42},
			expect:   "request /login took 42 ms",
		},
		{
			name:     "fewer values",
			template: "{} {} {}",
			values:   []interface{}{1},
			expect:   "1 {} {}",
		},
		{
			name:     "more values",
			template: "a={} b={}",
			values:   []interface{}{1, 2, 3, 4},
			expect:   "a=1 b=2",
		},
		{
			name:     "no placeholders",
			template: "static",
			values:   []interface{}{1},
			expect:   "static",
		},
		{
			name:     "no values",
			template: "x={}",
			expect:   "x={}",
		},
		{
			name:     "nil values",
			template: "{} {} {}",
			values:   []interface{}{nil, nilPtr, []string(nil)},
			expect:   "null null null",
		},
		{
			name:     "prefix",
			prefix:   "a.b.C >> ",
			template: "hello {}",
			values:   []interface{}{"world"},
			expect:   "a.b.C >> hello world",
		},
		{
			name:     "value holding a placeholder",
			template: "{} and {}",
			values:   []interface{}{"{}", "x"},
			expect:   "{} and x",
		},
		{
			name:     "adjacent placeholders",
			template: "{}{}",
			values:   []interface{}{"a", "b"},
			expect:   "ab",
		},
		{
			name:     "stringer",
			template: "failed: {}",
			values:   []interface{}{errors.New("boom")},
			expect:   "failed: boom",
		},
		{
			name:     "empty template",
			prefix:   "p >> ",
			values:   []interface{}{1},
			expect:   "p >> ",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Format(test.prefix, test.template, test.values...)
			if test.expect != got {
				t.Errorf("expect %q, but got %q", test.expect, got)
			}
		})
	}
}

func TestFormat_AllPlaceholdersFilled(t *testing.T) {
	for n := 0; n < 10; n++ {
		template := strings.Repeat("[{}]", n)
		values := make([]interface{}, n)
		var expect strings.Builder
		for i := range values {
			values[i] = i
			expect.WriteString("[")
			expect.WriteString(string(rune('0' + i)))
			expect.WriteString("]")
		}

		got := Format("", template, values...)
		if strings.Contains(got, placeholder) {
			t.Errorf("expect no placeholder left with %d values, but got %q", n, got)
		}
		if expect.String() != got {
			t.Errorf("expect %q, but got %q", expect.String(), got)
		}
	}
}

func TestSplitArgs(t *testing.T) {
	err := errors.New("boom")
	var nilErr *customError

	t.Run("trailing error", func(t *testing.T) {
		a := SplitArgs([]interface{}{"x", "y", err})
		if a.Failure != err {
			t.Errorf("expect failure %v, but got %v", err, a.Failure)
		}
		if len(a.Values) != 2 {
			t.Errorf("expect 2 values, but got %d", len(a.Values))
		}
	})

	t.Run("no error", func(t *testing.T) {
		a := SplitArgs([]interface{}{"x", "y", "z"})
		if a.Failure != nil {
			t.Errorf("expect no failure, but got %v", a.Failure)
		}
		if len(a.Values) != 3 {
			t.Errorf("expect 3 values, but got %d", len(a.Values))
		}
	})

	t.Run("error not last", func(t *testing.T) {
		a := SplitArgs([]interface{}{err, "y"})
		if a.Failure != nil {
			t.Errorf("expect no failure, but got %v", a.Failure)
		}
		if len(a.Values) != 2 {
			t.Errorf("expect 2 values, but got %d", len(a.Values))
		}
	})

	t.Run("nil error", func(t *testing.T) {
		a := SplitArgs([]interface{}{"x", nilErr})
		if a.Failure != nil {
			t.Errorf("expect a typed nil error not to be a failure, but got %v", a.Failure)
		}
		if len(a.Values) != 2 {
			t.Errorf("expect 2 values, but got %d", len(a.Values))
		}
	})

	t.Run("empty", func(t *testing.T) {
		a := SplitArgs(nil)
		if a.Failure != nil || len(a.Values) != 0 {
			t.Errorf("expect empty args, but got %+v", a)
		}
	})
}

type customError struct{}

func (e *customError) Error() string { return "custom" }

func TestRenderFailure(t *testing.T) {
	if got := RenderFailure(nil); got != "" {
		t.Errorf("expect nil to render as an empty string, but got %q", got)
	}
	if got := RenderFailure(&customError{}); got != "custom" {
		t.Errorf("expect %q, but got %q", "custom", got)
	}

	got := RenderFailure(errors.Wrap(errors.New("boom"), "saving order"))
	if !strings.HasPrefix(got, "boom\n") {
		t.Errorf("expect rendering to start with the root cause, but got %q", got)
	}
	if !strings.Contains(got, "TestRenderFailure") {
		t.Errorf("expect rendering to contain the stack trace, but got %q", got)
	}
	if !strings.Contains(got, "saving order") {
		t.Errorf("expect rendering to contain the wrapping message, but got %q", got)
	}
}
