// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package templates

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
)

// ErrorHandler renders the localized error page.
type ErrorHandler struct {
	base
	tmpl *template.Template
}

func NewErrorHandler(tStore db.TranslationStore) *ErrorHandler {
	return &ErrorHandler{
		base: newBase(tStore),
		tmpl: parsePage("error.html"),
	}
}

// Handle writes the error page for reason with the given status. When no
// translation is available the reason key is shown as is.
func (e *ErrorHandler) Handle(c *gin.Context, status int, reason model.ErrorReason) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "ErrorHandler.Handle")
	defer span.End()
	span.SetAttributes(attribute.String("reason", reason.TranslationKey()))

	l, err := e.locale(ctx, c)
	if err != nil {
		span.RecordError(err)
		e.logger.WarnContext(ctx, "could not determine language", "error", err)
		c.String(status, reason.TranslationKey())
		return
	}
	data := l.pageData(c, "error", "error.title")
	data["reason"] = reason.TranslationKey()
	data["status"] = status
	e.execute(c, status, e.tmpl, "MAIN", l, data)
}
