package interfaces

import domaintypes "solid/internal/domain/types"

// Discount transforms an amount into a discounted amount.
type Discount interface {
	ApplyDiscount(amount domaintypes.Amount) domaintypes.Amount
}
