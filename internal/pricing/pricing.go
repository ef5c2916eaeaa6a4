// Package pricing derives per-store buy/sell summaries from an item's raw
// price data.
package pricing

import (
	"github.com/barodex/barodex/internal/domain"
)

// BuyPriceRatio is the fraction of the sell price a merchant pays when
// buying the item from the player.
const BuyPriceRatio = 0.3

// Summary is what one store's row on an item page shows. Sell is nil when
// the store does not sell the item; Buy is always present - merchants buy
// items they refuse to sell.
type Summary struct {
	Buy  int  `json:"buy"`
	Sell *int `json:"sell,omitempty"`
}

// specialistStores sell nothing by default: an item is only sold when a
// store modifier explicitly opts in. General stores fall back to the item's
// own sold flag.
var specialistStores = map[domain.StoreIdentifier]bool{
	domain.MerchantMedical:     true,
	domain.MerchantEngineering: true,
	domain.MerchantArmory:      true,
	domain.MerchantClown:       true,
	domain.MerchantHusk:        true,
}

// IsSpecialist reports whether the store uses opt-in sellability.
func IsSpecialist(store domain.StoreIdentifier) bool {
	return specialistStores[store]
}

// Summarize computes the buy/sell summary for one store. Prices truncate
// to whole marks.
func Summarize(price *domain.Price, store domain.StoreIdentifier) Summary {
	modifier, hasModifier := price.Modifiers[store]

	var sold bool
	if IsSpecialist(store) {
		// No modifier at all means the specialist store ignores the item,
		// whatever its default sold flag says.
		if hasModifier {
			if modifier.Sold != nil {
				sold = *modifier.Sold
			} else {
				sold = price.Sold
			}
		}
	} else {
		sold = price.Sold
		if hasModifier && modifier.Sold != nil {
			sold = *modifier.Sold
		}
	}

	sellPrice := float64(price.BasePrice)
	if hasModifier && modifier.Multiplier != nil {
		sellPrice = *modifier.Multiplier * float64(price.BasePrice)
	}

	summary := Summary{Buy: int(sellPrice * BuyPriceRatio)}
	if sold {
		sell := int(sellPrice)
		summary.Sell = &sell
	}
	return summary
}
