// Package rewards computes the reward earned on a card transaction from the
// card's configured perks. Calculation is pure and recomputed on demand;
// results are never cached or persisted.
package rewards

import (
	"math"

	"pocketledger/internal/models"
)

// Calculate returns the reward amount a transaction earns on the given card.
//
// The perk whose category matches the transaction's category wins; absent a
// match, the card's default perk (nil category) applies; absent both, the
// rate is zero. For points cards the result is amount * rate rounded to the
// nearest whole point; for cashback cards the rate is a percentage and the
// result is rounded to the cent. Rounding is half-away-from-zero.
//
// The function is total: a card with no perks, or with no perk type
// configured (debit cards, or credit cards never set up), earns 0.
func Calculate(card *models.Card, perks []models.CardPerk, tx *models.Transaction) float64 {
	if card == nil || tx == nil || card.PerkType == nil || len(perks) == 0 {
		return 0.0
	}

	basicRate := 0.0
	for _, p := range perks {
		if p.CategoryID == nil {
			basicRate = p.Value
			break
		}
	}

	perkRate := basicRate
	if tx.CategoryID != nil {
		for _, p := range perks {
			if p.CategoryID != nil && *p.CategoryID == *tx.CategoryID {
				perkRate = p.Value
				break
			}
		}
	}

	switch *card.PerkType {
	case models.PerkTypePoints:
		return math.Round(tx.Amount * perkRate)
	case models.PerkTypeCashback:
		return math.Round(tx.Amount*perkRate*0.01*100) / 100
	default:
		return 0.0
	}
}
