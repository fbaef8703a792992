package envutil

import (
	"testing"
	"time"
)

func TestStr(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_STR", "  value  ")
	if got := Str("ENVUTIL_TEST_STR", "def"); got != "value" {
		t.Fatalf("Str = %q", got)
	}
	t.Setenv("ENVUTIL_TEST_STR", "")
	if got := Str("ENVUTIL_TEST_STR", "def"); got != "def" {
		t.Fatalf("Str default = %q", got)
	}
}

func TestInt(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_INT", "42")
	if got := Int("ENVUTIL_TEST_INT", 7); got != 42 {
		t.Fatalf("Int = %d", got)
	}
	t.Setenv("ENVUTIL_TEST_INT", "not a number")
	if got := Int("ENVUTIL_TEST_INT", 7); got != 7 {
		t.Fatalf("Int fallback = %d", got)
	}
}

func TestBool(t *testing.T) {
	cases := map[string]bool{"1": true, "true": true, "YES": true, "on": true, "0": false, "false": false, "off": false}
	for raw, want := range cases {
		t.Setenv("ENVUTIL_TEST_BOOL", raw)
		if got := Bool("ENVUTIL_TEST_BOOL", !want); got != want {
			t.Fatalf("Bool(%q) = %v, want %v", raw, got, want)
		}
	}
	t.Setenv("ENVUTIL_TEST_BOOL", "maybe")
	if got := Bool("ENVUTIL_TEST_BOOL", true); !got {
		t.Fatalf("unparsable value must fall back to default")
	}
}

func TestDuration(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_DUR", "90")
	if got := Duration("ENVUTIL_TEST_DUR", time.Second); got != 90*time.Second {
		t.Fatalf("Duration = %s", got)
	}
	t.Setenv("ENVUTIL_TEST_DUR", "")
	if got := Duration("ENVUTIL_TEST_DUR", 5*time.Second); got != 5*time.Second {
		t.Fatalf("Duration default = %s", got)
	}
}
