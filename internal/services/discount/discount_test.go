package discount_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solid/internal/domain"
	"solid/internal/services/discount"
)

func TestStrategies_Hundred(t *testing.T) {
	hundred := domain.NewAmount(100)

	assert.True(t, discount.D1{}.ApplyDiscount(hundred).Equal(domain.NewAmount(90)))
	assert.True(t, discount.D2{}.ApplyDiscount(hundred).Equal(domain.NewAmount(80)))
}

func TestStrategies_Linear(t *testing.T) {
	for _, in := range []string{"0", "-5", "10", "12.50", "99999999999999999999.99"} {
		x, err := domain.ParseAmount(in)
		require.NoError(t, err)

		assert.True(t, discount.D1{}.ApplyDiscount(x).Equal(x.Sub(domain.NewAmount(10))), "D1(%s)", in)
		assert.True(t, discount.D2{}.ApplyDiscount(x).Equal(x.Sub(domain.NewAmount(20))), "D2(%s)", in)
	}
}

func TestApply_Catalogue(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, discount.Apply(&buf, domain.NewAmount(100), discount.Catalogue()...))

	assert.Equal(t, "90\n80\n", buf.String())
}

func TestApply_Fractional(t *testing.T) {
	amount, err := domain.ParseAmount("12.5")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, discount.Apply(&buf, amount, discount.Catalogue()...))

	assert.Equal(t, "2.5\n-7.5\n", buf.String())
}

// halfOff is defined outside the package to show Apply needs no change
// to accept a new strategy.
type halfOff struct{}

func (halfOff) ApplyDiscount(a domain.Amount) domain.Amount {
	return domain.Amount{Decimal: a.Decimal.Div(domain.NewAmount(2).Decimal)}
}

func TestApply_NewStrategy(t *testing.T) {
	var buf bytes.Buffer
	strategies := append(discount.Catalogue(), halfOff{})
	require.NoError(t, discount.Apply(&buf, domain.NewAmount(100), strategies...))

	assert.Equal(t, "90\n80\n50\n", buf.String())
}
