package discount

import (
	"fmt"
	"io"

	"solid/internal/domain"
)

// D1 takes 10 off.
type D1 struct{}

// ApplyDiscount returns amount - 10.
func (D1) ApplyDiscount(amount domain.Amount) domain.Amount {
	return amount.Sub(domain.NewAmount(10))
}

// D2 takes 20 off.
type D2 struct{}

// ApplyDiscount returns amount - 20.
func (D2) ApplyDiscount(amount domain.Amount) domain.Amount {
	return amount.Sub(domain.NewAmount(20))
}

// Catalogue returns the built-in strategies in reporting order.
func Catalogue() []domain.Discount {
	return []domain.Discount{D1{}, D2{}}
}

// Apply writes each strategy's result for amount to out, one per line.
func Apply(out io.Writer, amount domain.Amount, discounts ...domain.Discount) error {
	for _, d := range discounts {
		if _, err := fmt.Fprintln(out, d.ApplyDiscount(amount)); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ domain.Discount = D1{}
	_ domain.Discount = D2{}
)
