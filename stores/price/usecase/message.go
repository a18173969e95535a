package usecase

import (
	"fmt"
	"strings"

	"github.com/x-xyz/pricebot/domain"
)

const timeLayout = "2006-01-02 15:04:05 MST"

// BuildMessage renders the chat message for one price update
func BuildMessage(u *domain.PriceUpdate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 **%s Price Update**\n", u.Symbol)
	fmt.Fprintf(&b, "💵 Current Price: $%s\n", u.Price)
	if len(u.PriceInIntermediate) > 0 {
		symbol := u.IntermediateSymbol
		if len(symbol) == 0 {
			symbol = "intermediate"
		}
		fmt.Fprintf(&b, "💱 Price in %s: %s\n", symbol, u.PriceInIntermediate)
	}
	fmt.Fprintf(&b, "⏰ Updated: %s\n", u.UpdatedAt.Format(timeLayout))
	fmt.Fprintf(&b, "🔗 Contract: `%s`", u.Token)
	return b.String()
}
