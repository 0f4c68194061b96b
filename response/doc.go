// Package response writes Option and Result values as JSON HTTP responses
// with gin.
//
//	func (h *Handler) Get(c *gin.Context) {
//	    response.Option(c, h.users.Find(c.Param("id")), errors.NotFound("user"))
//	}
//
//	func (h *Handler) Create(c *gin.Context) {
//	    cmd := response.BindJSON[CreateUser](c)
//	    response.Result(c, result.AndThen(cmd, h.users.Create))
//	}
//
// Success bodies use the DataResponse envelope; failures use
// errors.ErrorResponse with an HTTP status derived from the error code.
package response
