package response

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/fnkit/caller"
	"github.com/kbukum/fnkit/config"
	"github.com/kbukum/fnkit/errors"
)

// Recovery returns a gin middleware that recovers from panics in later
// handlers, reports them to the configured exception logger and responds
// with an Internal error. A nil settings uses config.Global().
func Recovery(settings *config.Settings) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			err, ok := v.(*errors.PanicError)
			if !ok {
				err = &errors.PanicError{Value: v, Stack: debug.Stack()}
			}
			s := settings
			if s == nil {
				s = config.Global()
			}
			s.LogException(c.Request.Context(), err, caller.Info{
				Member:     c.HandlerName(),
				Expression: c.Request.Method + " " + c.FullPath(),
			})
			Error(c, errors.New(errors.CodeInternal, "Internal server error"))
		}()
		c.Next()
	}
}
