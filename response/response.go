package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/fnkit/errors"
	"github.com/kbukum/fnkit/option"
	"github.com/kbukum/fnkit/result"
)

// DataResponse is the standard success envelope.
type DataResponse struct {
	Data any   `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta carries pagination or other response metadata.
type Meta struct {
	Page       int `json:"page,omitempty"`
	PageSize   int `json:"pageSize,omitempty"`
	Total      int `json:"total,omitempty"`
	TotalPages int `json:"totalPages,omitempty"`
}

// detailer is implemented by errors carrying structured details, such as
// *validation.Errors.
type detailer interface {
	Details() any
}

// Error converts err to an errors.Error and writes it with the status mapped
// from its code. Details exposed by err are included in the body.
func Error(c *gin.Context, err error) {
	e := errors.FromError(err)
	body := e.ToResponse()
	var d detailer
	if errors.As(err, &d) {
		body.Error.Details = d.Details()
	}
	c.AbortWithStatusJSON(StatusFor(e.Code), body)
}

// OK sends a 200 response wrapping data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

// OKWithMeta sends a 200 response with data and metadata.
func OKWithMeta(c *gin.Context, data any, meta *Meta) {
	c.JSON(http.StatusOK, DataResponse{Data: data, Meta: meta})
}

// Created sends a 201 response wrapping data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, DataResponse{Data: data})
}

// NoContent sends a 204 with no body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Result writes Ok values with status 200 and Err payloads through Error.
func Result[T any, E error](c *gin.Context, r result.Result[T, E]) {
	ResultWithStatus(c, http.StatusOK, r)
}

// ResultWithStatus is Result with a custom success status, e.g. 201.
func ResultWithStatus[T any, E error](c *gin.Context, status int, r result.Result[T, E]) {
	r.Switch(
		func(v T) { c.JSON(status, DataResponse{Data: v}) },
		func(e E) { Error(c, e) },
	)
}

// Option writes Some values with status 200 and None as notFound.
func Option[T any](c *gin.Context, o option.Option[T], notFound errors.Error) {
	o.Switch(
		func(v T) { OK(c, v) },
		func() { Error(c, notFound) },
	)
}
