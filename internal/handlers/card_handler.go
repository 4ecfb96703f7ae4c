package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/models"
	"pocketledger/internal/notify"
	"pocketledger/internal/pagination"
	"pocketledger/internal/services"
)

// CardHandler handles card- and perk-related requests.
type CardHandler struct {
	cardService services.CardServicer
	notifier    notify.Notifier
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardService services.CardServicer, notifier notify.Notifier) *CardHandler {
	return &CardHandler{cardService: cardService, notifier: notifier}
}

// CreateCardRequest represents the request payload for creating a card.
type CreateCardRequest struct {
	Name           string                `json:"name" binding:"required"`
	Type           models.CardType       `json:"type" binding:"required,card_type"`
	Network        models.PaymentNetwork `json:"network" binding:"required,payment_network"`
	LastFourDigits string                `json:"last_four_digits" binding:"required,last_four"`
	PerkType       *models.PerkType      `json:"perk_type" binding:"omitempty,perk_type"`
}

// UpdateCardRequest represents the request payload for updating a card.
// ConfirmClearPerks must be true when the change destroys existing perks.
type UpdateCardRequest struct {
	Name              string                `json:"name" binding:"required"`
	Type              models.CardType       `json:"type" binding:"required,card_type"`
	Network           models.PaymentNetwork `json:"network" binding:"required,payment_network"`
	LastFourDigits    string                `json:"last_four_digits" binding:"required,last_four"`
	PerkType          *models.PerkType      `json:"perk_type" binding:"omitempty,perk_type"`
	ConfirmClearPerks bool                  `json:"confirm_clear_perks"`
}

// AddPerkRequest represents the request payload for adding a perk to a card.
// A nil category adds the card's default "everything else" rate.
type AddPerkRequest struct {
	Value      *float64 `json:"value" binding:"required,min=0"`
	CategoryID *string  `json:"category_id"`
}

// CreateCard handles the creation of a new card.
func (h *CardHandler) CreateCard(c *gin.Context) {
	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := h.cardService.CreateCard(req.Name, req.Type, req.Network, req.LastFourDigits, req.PerkType)
	if err != nil {
		h.notifier.Notify("Error saving card", notify.SeverityError, notify.DefaultDuration)
		respondWithError(c, err)
		return
	}

	h.notifier.Notify("Card saved successfully", notify.SeveritySuccess, notify.DefaultDuration)
	c.JSON(http.StatusCreated, gin.H{"card": card})
}

// GetCards handles the retrieval of a paginated card list.
func (h *CardHandler) GetCards(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.cardService.ListCards(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCardByID handles the retrieval of a single card.
func (h *CardHandler) GetCardByID(c *gin.Context) {
	card, err := h.cardService.GetCardByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"card": card})
}

// UpdateCard handles card edits, including the destructive perk-clearing
// transitions.
func (h *CardHandler) UpdateCard(c *gin.Context) {
	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := h.cardService.UpdateCard(c.Param("id"), services.UpdateCardParams{
		Name:              req.Name,
		CardType:          req.Type,
		Network:           req.Network,
		LastFourDigits:    req.LastFourDigits,
		PerkType:          req.PerkType,
		ConfirmClearPerks: req.ConfirmClearPerks,
	})
	if err != nil {
		h.notifier.Notify("Error saving card", notify.SeverityError, notify.DefaultDuration)
		respondWithError(c, err)
		return
	}

	h.notifier.Notify("Card saved successfully", notify.SeveritySuccess, notify.DefaultDuration)
	c.JSON(http.StatusOK, gin.H{"card": card})
}

// DeleteCard handles the deletion of a card.
func (h *CardHandler) DeleteCard(c *gin.Context) {
	if err := h.cardService.DeleteCard(c.Param("id")); err != nil {
		h.notifier.Notify("Error deleting card", notify.SeverityError, notify.DefaultDuration)
		respondWithError(c, err)
		return
	}

	h.notifier.Notify("Card deleted", notify.SeveritySuccess, notify.DefaultDuration)
	c.JSON(http.StatusOK, gin.H{"message": "Card deleted"})
}

// AddPerk handles adding a reward rule to a credit card.
func (h *CardHandler) AddPerk(c *gin.Context) {
	var req AddPerkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	perk, err := h.cardService.AddPerk(c.Param("id"), *req.Value, req.CategoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"perk": perk})
}

// GetPerks handles the retrieval of a card's perks.
func (h *CardHandler) GetPerks(c *gin.Context) {
	perks, err := h.cardService.ListPerks(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"perks": perks})
}

// DeletePerk handles the removal of a single perk from a card.
func (h *CardHandler) DeletePerk(c *gin.Context) {
	if err := h.cardService.DeletePerk(c.Param("id"), c.Param("perkId")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Perk deleted"})
}
