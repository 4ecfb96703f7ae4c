package models

// CardType represents the type of card
type CardType string

const (
	CardTypeDebit  CardType = "debit"
	CardTypeCredit CardType = "credit"
)

// Valid reports whether the card type is a known value.
func (t CardType) Valid() bool {
	return t == CardTypeDebit || t == CardTypeCredit
}

// PaymentNetwork represents the network a card is issued on
type PaymentNetwork string

const (
	PaymentNetworkInterac    PaymentNetwork = "interac"
	PaymentNetworkVisa       PaymentNetwork = "visa"
	PaymentNetworkMastercard PaymentNetwork = "mastercard"
	PaymentNetworkAmex       PaymentNetwork = "amex"
)

// Valid reports whether the payment network is a known value.
func (n PaymentNetwork) Valid() bool {
	switch n {
	case PaymentNetworkInterac, PaymentNetworkVisa, PaymentNetworkMastercard, PaymentNetworkAmex:
		return true
	}
	return false
}

// PerkType represents how a credit card earns rewards
type PerkType string

const (
	PerkTypePoints   PerkType = "points"
	PerkTypeCashback PerkType = "cashback"
)

// Valid reports whether the perk type is a known value.
func (t PerkType) Valid() bool {
	return t == PerkTypePoints || t == PerkTypeCashback
}

// Card represents a payment card. PerkType is set iff the card is a credit
// card; perks exist only on credit cards.
type Card struct {
	Base
	Name           string         `gorm:"not null" json:"name"`
	Type           CardType       `gorm:"not null" json:"type"`
	Network        PaymentNetwork `gorm:"not null" json:"network"`
	LastFourDigits string         `gorm:"not null;size:4" json:"last_four_digits"`
	PerkType       *PerkType      `json:"perk_type,omitempty"`

	// Relationships. Transactions are detached (card_id nullified) when the
	// card is deleted; its perks are deleted with it.
	Transactions []Transaction `gorm:"foreignKey:CardID" json:"transactions,omitempty"`
	Perks        []CardPerk    `gorm:"foreignKey:CardID" json:"perks,omitempty"`
}

// IsCredit reports whether the card is a credit card.
func (c *Card) IsCredit() bool {
	return c.Type == CardTypeCredit
}
