package salary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestResolveIncrement_FromNewSalary(t *testing.T) {
	newSalary := dec("5500")
	inc, err := ResolveIncrement(dec("5000"), &newSalary, nil, nil)
	require.NoError(t, err)

	assert.True(t, inc.NewSalary.Equal(dec("5500")))
	assert.True(t, inc.Amount.Equal(dec("500")))
	assert.True(t, inc.Percentage.Equal(dec("10")))
}

func TestResolveIncrement_FromAmount(t *testing.T) {
	amount := dec("250")
	inc, err := ResolveIncrement(dec("5000"), nil, &amount, nil)
	require.NoError(t, err)

	assert.True(t, inc.NewSalary.Equal(dec("5250")))
	assert.True(t, inc.Amount.Equal(dec("250")))
	assert.True(t, inc.Percentage.Equal(dec("5")))
}

func TestResolveIncrement_FromPercentage(t *testing.T) {
	pct := dec("20")
	inc, err := ResolveIncrement(dec("4000"), nil, nil, &pct)
	require.NoError(t, err)

	assert.True(t, inc.NewSalary.Equal(dec("4800")))
	assert.True(t, inc.Amount.Equal(dec("800")))
	assert.True(t, inc.Percentage.Equal(dec("20")))
}

func TestResolveIncrement_ZeroOldSalary(t *testing.T) {
	// Percentage must short-circuit to zero instead of dividing by zero.
	newSalary := dec("3000")
	inc, err := ResolveIncrement(decimal.Zero, &newSalary, nil, nil)
	require.NoError(t, err)

	assert.True(t, inc.NewSalary.Equal(dec("3000")))
	assert.True(t, inc.Amount.Equal(dec("3000")))
	assert.True(t, inc.Percentage.IsZero())
}

func TestResolveIncrement_NegativeOldSalary(t *testing.T) {
	amount := dec("100")
	inc, err := ResolveIncrement(dec("-50"), nil, &amount, nil)
	require.NoError(t, err)
	assert.True(t, inc.Percentage.IsZero())
}

func TestResolveIncrement_NoInput(t *testing.T) {
	_, err := ResolveIncrement(dec("5000"), nil, nil, nil)
	assert.ErrorIs(t, err, ErrNoIncrementInput)
}

func TestResolveIncrement_NegativeResult(t *testing.T) {
	amount := dec("-6000")
	_, err := ResolveIncrement(dec("5000"), nil, &amount, nil)
	assert.ErrorIs(t, err, ErrNegativeSalary)
}

func TestResolveIncrement_Decrease(t *testing.T) {
	newSalary := dec("4500")
	inc, err := ResolveIncrement(dec("5000"), &newSalary, nil, nil)
	require.NoError(t, err)

	assert.True(t, inc.Amount.Equal(dec("-500")))
	assert.True(t, inc.Percentage.Equal(dec("-10")))
}
