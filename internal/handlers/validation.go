package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// validationDetails flattens a binding error into a field -> message
// map for the 400 response body.
func validationDetails(err error) map[string]string {
	details := make(map[string]string)

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fieldError := range fieldErrors {
			details[fieldError.Field()] = "failed on the '" + fieldError.Tag() + "' rule"
		}
		return details
	}

	details["body"] = err.Error()
	return details
}

func validationFailed(ctx *gin.Context, details map[string]string) {
	ctx.JSON(400, gin.H{
		"error":   "Validation Failed",
		"message": "Invalid request data",
		"details": details,
	})
}

func parseID(ctx *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 32)
	if err != nil {
		ctx.JSON(400, gin.H{"error": "Invalid " + param})
		return 0, false
	}
	return uint(id), true
}
