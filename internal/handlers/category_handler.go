package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/models"
	"pocketledger/internal/notify"
	"pocketledger/internal/services"
)

// CategoryHandler handles category-related requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
	notifier        notify.Notifier
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer, notifier notify.Notifier) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, notifier: notifier}
}

// CreateCategoryRequest represents the request payload for creating a category.
type CreateCategoryRequest struct {
	Name string              `json:"name" binding:"required"`
	Type models.CategoryType `json:"type" binding:"required,category_type"`
	Icon string              `json:"icon"`
}

// CreateCategory handles the creation of a new custom category.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categoryService.CreateCategory(req.Name, req.Type, req.Icon)
	if err != nil {
		h.notifier.Notify("Error saving category", notify.SeverityError, notify.DefaultDuration)
		respondWithError(c, err)
		return
	}

	h.notifier.Notify("Category saved successfully", notify.SeveritySuccess, notify.DefaultDuration)
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// GetCategories handles the retrieval of all categories, optionally filtered
// by type.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	var categoryType *models.CategoryType
	if v := c.Query("type"); v != "" {
		t := models.CategoryType(v)
		if !t.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category type"})
			return
		}
		categoryType = &t
	}

	categories, err := h.categoryService.ListCategories(categoryType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategoryByID handles the retrieval of a single category.
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	category, err := h.categoryService.GetCategoryByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory handles the deletion of a custom category.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.DeleteCategory(c.Param("id")); err != nil {
		h.notifier.Notify("Error deleting category", notify.SeverityError, notify.DefaultDuration)
		respondWithError(c, err)
		return
	}

	h.notifier.Notify("Category deleted", notify.SeveritySuccess, notify.DefaultDuration)
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
