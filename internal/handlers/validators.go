package handlers

import (
	"net/http"

	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerCustomValidators adds the datekey rule to gin's binding engine so
// date fields can be declared as `binding:"datekey"` and path params checked
// with the same rule.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("datekey", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseDateKey(fl.Field().String())
			return err == nil
		})
	}
}

// dateParam validates the :date path parameter against the datekey rule and
// writes the 400 response itself on failure.
func dateParam(c *gin.Context) (string, bool) {
	date := c.Param("date")
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.Var(date, "datekey"); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return "", false
		}
	}
	return date, true
}
