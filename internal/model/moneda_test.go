package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCOP(t *testing.T) {
	casos := []struct {
		entrada  int64
		esperado string
	}{
		{0, "$ 0"},
		{500, "$ 500"},
		{1000, "$ 1.000"},
		{38000, "$ 38.000"},
		{1250000, "$ 1.250.000"},
		{-38000, "-$ 38.000"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, FormatCOP(decimal.NewFromInt(c.entrada)))
	}
}

func TestFormatCOPRedondeaDecimales(t *testing.T) {
	assert.Equal(t, "$ 38.001", FormatCOP(decimal.NewFromFloat(38000.6)))
	assert.Equal(t, "$ 38.000", FormatCOP(decimal.NewFromFloat(38000.4)))
}
