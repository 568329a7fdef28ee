package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Fresh Content, Seamless Control": "fresh-content-seamless-control",
		"Café-Culture & Crème Brûlée":     "cafe-culture-creme-brulee",
		"  leading and trailing  ":        "leading-and-trailing",
		"UPPER lower 123":                 "upper-lower-123",
		"---":                             "",
	}
	for in, want := range cases {
		assert.Equal(t, want, slugify(in), "slugify(%q)", in)
	}
}
