// Package response maps use case results and domain errors onto the HTTP
// contract: success responses carry the bare projection body, rejections
// carry a status code and no body.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/src/core/domain"
)

// OK sends a 200 response with the payload as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the created resource as the body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest sends an empty 400 response.
func BadRequest(c *gin.Context) {
	c.Status(http.StatusBadRequest)
}

// NotFound sends an empty 404 response.
func NotFound(c *gin.Context) {
	c.Status(http.StatusNotFound)
}

// InternalError sends an empty 500 response.
func InternalError(c *gin.Context) {
	c.Status(http.StatusInternalServerError)
}

// FromDomainError converts a domain error to the matching HTTP status.
// Validation failures and duplicate ids map to 400, absent resources to
// 404, anything else to 500. Callers are expected to log the reason; the
// body stays empty per the API contract.
func FromDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsNotFound(err):
		NotFound(c)
	case domain.IsValidationError(err), domain.IsAlreadyExists(err):
		BadRequest(c)
	default:
		InternalError(c)
	}
}
