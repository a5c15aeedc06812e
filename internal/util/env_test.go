package util

import (
	"reflect"
	"testing"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("LINGRAPH_TEST_STRING", "value")
	t.Setenv("LINGRAPH_TEST_INT", "8")
	t.Setenv("LINGRAPH_TEST_BAD_INT", "eight")
	t.Setenv("LINGRAPH_TEST_BOOL", "true")
	t.Setenv("LINGRAPH_TEST_BAD_BOOL", "yes")
	t.Setenv("LINGRAPH_TEST_LIST", " TOKEN, ,NER ")

	if got := GetEnv("LINGRAPH_TEST_STRING"); got != "value" {
		t.Fatalf("GetEnv = %q", got)
	}
	if got := GetEnv("LINGRAPH_TEST_MISSING"); got != "" {
		t.Fatalf("GetEnv missing = %q", got)
	}
	if got := GetEnvString("LINGRAPH_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("GetEnvString = %q", got)
	}
	if got := GetEnvInt("LINGRAPH_TEST_INT", 1); got != 8 {
		t.Fatalf("GetEnvInt = %d", got)
	}
	if got := GetEnvInt("LINGRAPH_TEST_BAD_INT", 1); got != 1 {
		t.Fatalf("GetEnvInt bad = %d", got)
	}
	if !GetEnvBool("LINGRAPH_TEST_BOOL", false) {
		t.Fatal("GetEnvBool = false")
	}
	if !GetEnvBool("LINGRAPH_TEST_BAD_BOOL", true) {
		t.Fatal("GetEnvBool should fall back on unparsable values")
	}
	if got := GetEnvList("LINGRAPH_TEST_LIST", nil); !reflect.DeepEqual(got, []string{"TOKEN", "NER"}) {
		t.Fatalf("GetEnvList = %v", got)
	}
	if got := GetEnvList("LINGRAPH_TEST_MISSING", []string{"TOKEN"}); !reflect.DeepEqual(got, []string{"TOKEN"}) {
		t.Fatalf("GetEnvList default = %v", got)
	}
}
