package response

import (
	"github.com/gin-gonic/gin"

	"github.com/kbukum/fnkit/errors"
	"github.com/kbukum/fnkit/result"
	"github.com/kbukum/fnkit/validation"
)

// BindJSON decodes the request body into T and validates it with its
// struct tags. Malformed bodies yield a Validation error.
func BindJSON[T any](c *gin.Context) result.Result[T, error] {
	var v T
	if err := c.ShouldBindJSON(&v); err != nil {
		return result.Err[T](error(errors.Validation("invalid request body: " + err.Error())))
	}
	return validation.Struct(v)
}
