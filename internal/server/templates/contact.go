// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package templates

import (
	"html/template"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
	"github.com/freroxx/residence-yasmina/internal/parser/form"
)

type ContactHandler struct {
	base
	mStore      db.MessageStore
	tmplSuccess *template.Template
	tmplError   *template.Template
}

func NewContactHandler(tStore db.TranslationStore, mStore db.MessageStore) *ContactHandler {
	return &ContactHandler{
		base:        newBase(tStore),
		mStore:      mStore,
		tmplSuccess: parsePartial("TOAST_SUCCESS", "toast.html"),
		tmplError:   parsePartial("TOAST_ERROR", "toast.html"),
	}
}

var contactFields = map[string]string{
	"name":    "contact.form.name",
	"email":   "contact.form.email",
	"subject": "contact.form.subject",
	"message": "contact.form.message",
}

// Submit stores a message sent through the contact form and answers with
// a toast.
func (h *ContactHandler) Submit(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "ContactHandler.Submit")
	defer span.End()

	l, ok := h.localeOrFail(ctx, c)
	if !ok {
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not parse form", "error", err)
		c.String(http.StatusBadRequest, "could not parse form")
		return
	}

	var msg model.ContactMessage
	if err := form.Unmarshal(c.Request.PostForm, &msg); err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not parse message", "error", err)
		c.String(http.StatusBadRequest, "could not parse message")
		return
	}
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = model.NormalizeEmail(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)
	msg.Language = l.lang

	if err := msg.Validate(); err != nil {
		span.RecordError(err)
		ie := model.IsInputError(err)
		h.execute(c, http.StatusBadRequest, h.tmplError, "wrapper", l, gin.H{
			"Title":    l.translation.Error.Title,
			"Messages": fieldMessages(l.tr, ie, contactFields),
		})
		return
	}

	if _, err := h.mStore.CreateMessage(ctx, &msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.logger.ErrorContext(ctx, "could not store message", "error", err)
		h.execute(c, http.StatusInternalServerError, h.tmplError, "wrapper", l, gin.H{
			"Title":    l.translation.Error.Title,
			"Messages": []string{l.translation.Error.Process},
		})
		return
	}
	h.logger.InfoContext(ctx, "contact message received", "subject", msg.Subject, "lang", msg.Language)

	h.execute(c, http.StatusOK, h.tmplSuccess, "wrapper", l, gin.H{
		"Title":   l.translation.Success.Title,
		"Message": l.translation.Contact.Form.Sent,
	})
}

// fieldMessages renders "label: message" lines for every failed field.
func fieldMessages(tr *translator, ie *model.InputError, labels map[string]string) []string {
	if ie == nil {
		return nil
	}
	fields := make([]string, 0, len(ie.Fields()))
	for f := range ie.Fields() {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var out []string
	for _, f := range fields {
		label := f
		if key, ok := labels[f]; ok {
			label = tr.T(key)
		}
		for _, msg := range ie.Fields()[f] {
			out = append(out, label+": "+tr.T(msg))
		}
	}
	return out
}
