package collation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	assert.Negative(t, Compare("Abacaxi", "abelha"))
	assert.Negative(t, Compare("abelha", "Acerola"))
	assert.Negative(t, Compare("AÇAÍ", "Amora"))
	assert.Positive(t, Compare("Maracujá", "Goiaba"))
	assert.Zero(t, Compare("banana", "BANANA"))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "açaí", Fold("AÇAÍ"))
	assert.Equal(t, Fold("BAnaNa"), Fold("banana"))
}
