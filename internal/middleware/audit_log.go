// Audit logging utilities for form actions.
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/schoolform/order-service/internal/domain/model"
	"github.com/schoolform/order-service/internal/service"
)

// AuditLog records a form action for audit purposes.
// Used for the actions that change form state: selections, guardian updates,
// submissions, and resets.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      "info",
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		FormID:     c.Param("id"),
		ActionType: actionType,
		Fields:     fields,
	}

	// Store asynchronously to avoid blocking the request.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

// AuditLogError records a failed form action for audit purposes.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      "error",
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		FormID:     c.Param("id"),
		ActionType: actionType,
		Error:      err.Error(),
		Fields:     fields,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
