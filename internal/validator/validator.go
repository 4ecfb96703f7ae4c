// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var lastFourRegex = regexp.MustCompile(`^[0-9]{4}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("category_type", validateCategoryType)
		_ = v.RegisterValidation("card_type", validateCardType)
		_ = v.RegisterValidation("payment_network", validatePaymentNetwork)
		_ = v.RegisterValidation("perk_type", validatePerkType)
		_ = v.RegisterValidation("payment_type", validatePaymentType)
		_ = v.RegisterValidation("last_four", validateLastFour)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateCategoryType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateCardType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debit", "credit":
		return true
	}
	return false
}

func validatePaymentNetwork(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "interac", "visa", "mastercard", "amex":
		return true
	}
	return false
}

func validatePerkType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "points", "cashback":
		return true
	}
	return false
}

func validatePaymentType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "cash", "debit", "credit":
		return true
	}
	return false
}

func validateLastFour(fl validator.FieldLevel) bool {
	return lastFourRegex.MatchString(fl.Field().String())
}
