package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vitrinepdv/vitrine/internal/server/http/middleware"
)

const (
	sessionHeader = "X-Session-ID"
	sessionCookie = "vitrine_cart"
)

// CurrentStaffID extracts the authenticated staff identifier from context.
func CurrentStaffID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.StaffIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// SessionID resolves the cart session for the request. A fresh id is
// generated and set as a cookie when the client carries none.
func SessionID(c *gin.Context) string {
	if id := c.GetHeader(sessionHeader); id != "" {
		return id
	}
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	return id
}
