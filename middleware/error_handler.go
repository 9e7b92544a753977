package middleware

import (
	"EmberHouse/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware handles errors pushed onto the gin context globally.
// Pipeline errors are mapped to HTTP statuses here so controllers only need
// to call c.Error.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var customErr *utils.CustomError
		if errors.As(err, &customErr) {
			utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
			return
		}

		var catalogErr *utils.CatalogUnavailableError
		var categoryErr *utils.CategoryUnavailableError
		if errors.As(err, &catalogErr) || errors.As(err, &categoryErr) {
			utils.ErrorResponse(c, http.StatusServiceUnavailable, err.Error())
			return
		}

		var requestErr *utils.RequestError
		var validationErr *utils.ValidationError
		if errors.As(err, &requestErr) || errors.As(err, &validationErr) {
			// a propagated upstream failure, nothing cached to fall back on
			utils.ErrorResponse(c, http.StatusBadGateway, err.Error())
			return
		}

		var configErr *utils.ConfigError
		if errors.As(err, &configErr) {
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
			return
		}

		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
