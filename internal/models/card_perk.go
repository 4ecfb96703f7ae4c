package models

// CardPerk represents a reward-earning rule on a credit card. A perk with a
// nil CategoryID is the card's default rate, applied to any transaction whose
// category has no dedicated perk. At most one perk may exist per
// (card, category) pair, the default slot included.
type CardPerk struct {
	Base
	CardID     string   `gorm:"type:uuid;not null" json:"card_id"`
	PerkType   PerkType `gorm:"not null" json:"perk_type"`
	Value      float64  `gorm:"not null" json:"value"`
	CategoryID *string  `gorm:"type:uuid" json:"category_id,omitempty"`

	// Relationships
	Card     Card      `gorm:"foreignKey:CardID" json:"card,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
