package services

import (
	"errors"
	"regexp"

	"gorm.io/gorm"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/pagination"
)

var lastFourRegexp = regexp.MustCompile(`^[0-9]{4}$`)

// cardService handles card- and perk-related business logic.
type cardService struct {
	db *gorm.DB
}

// NewCardService creates a new CardServicer.
func NewCardService(db *gorm.DB) CardServicer {
	return &cardService{db: db}
}

func validateCardInput(name string, cardType models.CardType, network models.PaymentNetwork, lastFour string, perkType *models.PerkType) error {
	if name == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "card name is required")
	}
	if !cardType.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid card type")
	}
	if !network.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid payment network")
	}
	if !lastFourRegexp.MatchString(lastFour) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "last four digits must be exactly 4 numeric characters")
	}
	// perkType is set iff the card is a credit card
	if cardType == models.CardTypeCredit {
		if perkType == nil || !perkType.Valid() {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "credit cards require a perk type")
		}
	} else if perkType != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "only credit cards carry a perk type")
	}
	return nil
}

// CreateCard creates a new card.
func (s *cardService) CreateCard(name string, cardType models.CardType, network models.PaymentNetwork, lastFour string, perkType *models.PerkType) (*models.Card, error) {
	if err := validateCardInput(name, cardType, network, lastFour, perkType); err != nil {
		return nil, err
	}

	card := &models.Card{
		Name:           name,
		Type:           cardType,
		Network:        network,
		LastFourDigits: lastFour,
		PerkType:       perkType,
	}

	if err := s.db.Create(card).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return card, nil
}

// GetCardByID retrieves a card by ID.
func (s *cardService) GetCardByID(cardID string) (*models.Card, error) {
	var card models.Card
	if err := s.db.Where("id = ?", cardID).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &card, nil
}

// ListCards retrieves a paginated list of cards.
func (s *cardService) ListCards(page pagination.PageRequest) (*pagination.PageResponse[models.Card], error) {
	page.Defaults()

	base := s.db.Model(&models.Card{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var cards []models.Card
	if err := base.Scopes(pagination.Paginate(page)).Order("name").Find(&cards).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(cards, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateCard applies the full desired state to a card. Two transitions are
// destructive: switching to debit always clears the perk type and deletes
// all perks, and changing the perk type of a credit card that already has
// perks deletes them — the latter only proceeds when the caller confirmed.
func (s *cardService) UpdateCard(cardID string, params UpdateCardParams) (*models.Card, error) {
	card, err := s.GetCardByID(cardID)
	if err != nil {
		return nil, err
	}
	if err := validateCardInput(params.Name, params.CardType, params.Network, params.LastFourDigits, params.PerkType); err != nil {
		return nil, err
	}

	var perkCount int64
	if err := s.db.Model(&models.CardPerk{}).Where("card_id = ?", cardID).Count(&perkCount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	clearPerks := false
	if params.CardType == models.CardTypeDebit {
		clearPerks = perkCount > 0
	} else if card.PerkType != nil && params.PerkType != nil && *card.PerkType != *params.PerkType && perkCount > 0 {
		if !params.ConfirmClearPerks {
			return nil, apperrors.ErrPerksNotConfirmed
		}
		clearPerks = true
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if clearPerks {
			if err := tx.Where("card_id = ?", cardID).Delete(&models.CardPerk{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		card.Name = params.Name
		card.Type = params.CardType
		card.Network = params.Network
		card.LastFourDigits = params.LastFourDigits
		card.PerkType = params.PerkType

		// Save rather than Updates so a nil perk type is written through.
		if err := tx.Save(card).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

// DeleteCard deletes a card. Transactions referencing it are detached
// (card_id nullified) and its perks are deleted with it.
func (s *cardService) DeleteCard(cardID string) error {
	card, err := s.GetCardByID(cardID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Transaction{}).
			Where("card_id = ?", cardID).
			Update("card_id", nil).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Where("card_id = ?", cardID).Delete(&models.CardPerk{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(card).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// AddPerk adds a reward rule to a credit card. A nil categoryID adds the
// card's default rate. The (card, category) slot must be free, the default
// slot included, or the insert is rejected and the perk count is unchanged.
func (s *cardService) AddPerk(cardID string, value float64, categoryID *string) (*models.CardPerk, error) {
	card, err := s.GetCardByID(cardID)
	if err != nil {
		return nil, err
	}
	if !card.IsCredit() || card.PerkType == nil {
		return nil, apperrors.ErrNotCreditCard
	}
	if value < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "perk value must not be negative")
	}

	if categoryID != nil {
		var category models.Category
		if err := s.db.Where("id = ?", *categoryID).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if category.Type != models.CategoryTypeExpense {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "perks apply to expense categories only")
		}
	}

	slot := s.db.Model(&models.CardPerk{}).Where("card_id = ?", cardID)
	if categoryID == nil {
		slot = slot.Where("category_id IS NULL")
	} else {
		slot = slot.Where("category_id = ?", *categoryID)
	}
	var count int64
	if err := slot.Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicatePerk
	}

	perk := &models.CardPerk{
		CardID:     cardID,
		PerkType:   *card.PerkType,
		Value:      value,
		CategoryID: categoryID,
	}

	if err := s.db.Create(perk).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return perk, nil
}

// ListPerks returns a card's perks ordered by value.
func (s *cardService) ListPerks(cardID string) ([]models.CardPerk, error) {
	if _, err := s.GetCardByID(cardID); err != nil {
		return nil, err
	}

	var perks []models.CardPerk
	if err := s.db.Where("card_id = ?", cardID).
		Preload("Category").
		Order("value").
		Find(&perks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return perks, nil
}

// DeletePerk removes a single perk from a card.
func (s *cardService) DeletePerk(cardID, perkID string) error {
	var perk models.CardPerk
	if err := s.db.Where("id = ? AND card_id = ?", perkID, cardID).First(&perk).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPerkNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&perk).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
