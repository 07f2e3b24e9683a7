package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestBoolOrDefault(t *testing.T) {
	v := viper.New()
	v.AutomaticEnv()

	t.Setenv("BOOL_TEST", "")
	assert.True(t, boolOrDefault(v, "BOOL_TEST", true), "default when unset")

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		assert.Equal(t, tc.expected, boolOrDefault(v, "BOOL_TEST", true), "value %q", tc.val)
	}
}

func TestNumericHelpersRejectNonPositive(t *testing.T) {
	v := viper.New()
	v.AutomaticEnv()

	t.Setenv("INT_TEST", "-3")
	assert.Equal(t, 7, intOrDefault(v, "INT_TEST", 7))
	t.Setenv("INT_TEST", "12")
	assert.Equal(t, 12, intOrDefault(v, "INT_TEST", 7))

	t.Setenv("FLOAT_TEST", "abc")
	assert.Equal(t, 1.5, floatOrDefault(v, "FLOAT_TEST", 1.5))
	t.Setenv("FLOAT_TEST", "2.25")
	assert.Equal(t, 2.25, floatOrDefault(v, "FLOAT_TEST", 1.5))
}

func TestListOrDefaultDropsBlanks(t *testing.T) {
	v := viper.New()
	v.AutomaticEnv()

	t.Setenv("LIST_TEST", " a ,, b ")
	assert.Equal(t, []string{"a", "b"}, listOrDefault(v, "LIST_TEST", "x"))

	t.Setenv("LIST_TEST", "")
	assert.Equal(t, []string{"x"}, listOrDefault(v, "LIST_TEST", "x"))
}
