package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/format"
	"pocketledger/internal/models"
	"pocketledger/internal/notify"
	"pocketledger/internal/pagination"
	"pocketledger/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	notifier           notify.Notifier
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, notifier notify.Notifier) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, notifier: notifier}
}

// TransactionRequest represents the request payload for creating or updating
// a transaction.
type TransactionRequest struct {
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount      float64                `json:"amount" binding:"required"`
	Date        time.Time              `json:"date"`
	Note        string                 `json:"note"`
	PaymentType *models.PaymentType    `json:"payment_type" binding:"omitempty,payment_type"`
	CategoryID  *string                `json:"category_id" binding:"required"`
	CardID      *string                `json:"card_id"`
}

func (r *TransactionRequest) params() services.TransactionParams {
	return services.TransactionParams{
		Type:        r.Type,
		Amount:      r.Amount,
		Date:        r.Date,
		Note:        r.Note,
		PaymentType: r.PaymentType,
		CategoryID:  r.CategoryID,
		CardID:      r.CardID,
	}
}

// listTransactionsQuery holds the query parameters for listing transactions.
type listTransactionsQuery struct {
	pagination.PageRequest
	From       *time.Time              `form:"from" time_format:"2006-01-02"`
	To         *time.Time              `form:"to" time_format:"2006-01-02"`
	Type       *models.TransactionType `form:"type" binding:"omitempty,transaction_type"`
	CategoryID *string                 `form:"category_id"`
	CardID     *string                 `form:"card_id"`
}

// CreateTransaction handles the creation of a new transaction.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.transactionService.CreateTransaction(req.params())
	if err != nil {
		h.notifier.Notify("Error saving transaction", notify.SeverityError, notify.DefaultDuration)
		respondWithError(c, err)
		return
	}

	h.notifier.Notify("Transaction saved successfully", notify.SeveritySuccess, notify.DefaultDuration)
	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransactions handles the retrieval of a paginated, filtered transaction
// list.
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var query listTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := services.TransactionFilter{
		FromDate:   query.From,
		ToDate:     query.To,
		Type:       query.Type,
		CategoryID: query.CategoryID,
		CardID:     query.CardID,
	}

	result, err := h.transactionService.ListTransactions(query.PageRequest, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransactionByID handles the retrieval of a single transaction.
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	transaction, err := h.transactionService.GetTransactionByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// GetTransactionReward recomputes the reward a transaction earns on its card
// and returns it with a display string ("1.5%" / "2x" style multipliers are
// rendered client-side; the reward itself is a plain amount).
func (h *TransactionHandler) GetTransactionReward(c *gin.Context) {
	reward, perkType, err := h.transactionService.TransactionReward(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := gin.H{"reward": reward}
	if perkType != nil {
		resp["perk_type"] = *perkType
		resp["display"] = format.Decimal(reward, 2)
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateTransaction handles transaction edits.
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(c.Param("id"), req.params())
	if err != nil {
		h.notifier.Notify("Error saving transaction", notify.SeverityError, notify.DefaultDuration)
		respondWithError(c, err)
		return
	}

	h.notifier.Notify("Transaction saved successfully", notify.SeveritySuccess, notify.DefaultDuration)
	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles the deletion of a transaction.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.transactionService.DeleteTransaction(c.Param("id")); err != nil {
		h.notifier.Notify("Error deleting transaction", notify.SeverityError, notify.DefaultDuration)
		respondWithError(c, err)
		return
	}

	h.notifier.Notify("Transaction deleted", notify.SeveritySuccess, notify.DefaultDuration)
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}
