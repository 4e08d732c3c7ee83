package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuestion(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"adds question mark", "does it have stripes", "Does it have stripes?"},
		{"already correct", "Does it fly?", "Does it fly?"},
		{"capitalizes only first rune", "does it have a Long neck?", "Does it have a Long neck?"},
		{"collapses repeated marks", "Does it bark???", "Does it bark?"},
		{"trims whitespace", "  does it swim ?  ", "Does it swim?"},
		{"empty", "   ", ""},
		{"only marks", "???", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeQuestion(tc.in))
		})
	}
}

func TestNormalizeAnimal(t *testing.T) {
	assert.Equal(t, "a jack russell terrier", NormalizeAnimal("  a Jack Russell terrier "))
	assert.Equal(t, "an octopus", NormalizeAnimal("An octopus"))
	assert.Equal(t, "", NormalizeAnimal("   "))
}
