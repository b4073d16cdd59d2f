package loadout

import (
	"errors"
	"reflect"
	"regexp"
	"testing"
)

func TestBoolCoercionTable(t *testing.T) {
	c := coercion{kind: coerceBool}
	for _, raw := range []string{"", "false", "F", "nO", "n", "0"} {
		value, err := c.apply(raw, "DEBUG")
		if err != nil {
			t.Fatalf("%q: unexpected error %v", raw, err)
		}
		if value != false {
			t.Fatalf("%q: expected false, got %v", raw, value)
		}
	}
	for _, raw := range []string{"1", "true", "t", "yes", "Y"} {
		value, err := c.apply(raw, "DEBUG")
		if err != nil {
			t.Fatalf("%q: unexpected error %v", raw, err)
		}
		if value != true {
			t.Fatalf("%q: expected true, got %v", raw, value)
		}
	}
	_, err := c.apply("bad", "DEBUG")
	var invalid *InvalidValueError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidValueError, got %v", err)
	}
	if err.Error() != "invalid value for bool (`bad`) in DEBUG" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestIntCoercion(t *testing.T) {
	c := coercion{kind: coerceInt}
	value, err := c.apply("42", "PORT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != 42 {
		t.Fatalf("expected 42, got %v (%T)", value, value)
	}
	if _, err := c.apply("4x2", "PORT"); err == nil {
		t.Fatal("expected invalid-value failure")
	}
}

func TestFloatCoercion(t *testing.T) {
	c := coercion{kind: coerceFloat}
	value, err := c.apply("3.5", "RATIO")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != 3.5 {
		t.Fatalf("expected 3.5, got %v (%T)", value, value)
	}
	if _, err := c.apply("pi", "RATIO"); err == nil {
		t.Fatal("expected invalid-value failure")
	}
}

func TestListDefaultSeparator(t *testing.T) {
	c := coercion{kind: coerceList}
	cases := map[string][]string{
		"a,b, c":   {"a", "b", "c"},
		"a b   c":  {"a", "b", "c"},
		"a | b:c":  {"a", "b", "c"},
		"1 - 2; 3": {"1", "2", "3"},
	}
	for raw, expected := range cases {
		value, err := c.apply(raw, "ITEMS")
		if err != nil {
			t.Fatalf("%q: unexpected error %v", raw, err)
		}
		if !reflect.DeepEqual(value, expected) {
			t.Fatalf("%q: expected %v, got %v", raw, expected, value)
		}
	}
}

func TestListExplicitSeparatorNoTrimming(t *testing.T) {
	c := coercion{kind: coerceList, sep: "|"}
	value, err := c.apply("a |b| c", "ITEMS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(value, []string{"a ", "b", " c"}) {
		t.Fatalf("expected literal split, got %v", value)
	}
}

func TestListExplicitPattern(t *testing.T) {
	c := coercion{kind: coerceList, pattern: regexp.MustCompile(`;+`)}
	value, err := c.apply("a;;b;c", "ITEMS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(value, []string{"a", "b", "c"}) {
		t.Fatalf("expected pattern split, got %v", value)
	}
}

func TestListEmptyStringIsInvalid(t *testing.T) {
	c := coercion{kind: coerceList}
	_, err := c.apply("", "ITEMS")
	var invalid *InvalidValueError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidValueError, got %v", err)
	}
	if invalid.Kind != "list" {
		t.Fatalf("expected list kind, got %s", invalid.Kind)
	}
}

func TestNoneCoercionVerbatim(t *testing.T) {
	c := coercion{}
	value, err := c.apply("", "EMPTY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "" {
		t.Fatalf("expected empty string verbatim, got %v", value)
	}
}
