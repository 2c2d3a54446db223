// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package templates

import (
	"errors"
	"html/template"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
	"github.com/freroxx/residence-yasmina/internal/storage"
)

// AdminHandler serves the back office behind basic auth.
type AdminHandler struct {
	base
	rStore   db.ResidenceStore
	uStore   db.UserStore
	mStore   db.MessageStore
	uploader storage.Uploader

	tmplAdmin      *template.Template
	tmplGalleryRow *template.Template
}

func NewAdminHandler(
	tStore db.TranslationStore,
	rStore db.ResidenceStore,
	uStore db.UserStore,
	mStore db.MessageStore,
	uploader storage.Uploader,
) *AdminHandler {
	return &AdminHandler{
		base:           newBase(tStore),
		rStore:         rStore,
		uStore:         uStore,
		mStore:         mStore,
		uploader:       uploader,
		tmplAdmin:      parsePage("admin.html"),
		tmplGalleryRow: parsePartial("ADMIN_GALLERY_ROW", "admin.html"),
	}
}

// TranslationEntry is one editable text of a language.
type TranslationEntry struct {
	Key   string
	Value string
}

func (h *AdminHandler) RenderOverview(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "AdminHandler.RenderOverview")
	defer span.End()

	l, ok := h.localeOrFail(ctx, c)
	if !ok {
		return
	}

	residence, err := h.rStore.GetResidence(ctx)
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not find residence", "error", err)
		c.String(http.StatusInternalServerError, "could not find residence")
		return
	}

	messages, err := h.mStore.ListMessages(ctx)
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not list messages", "error", err)
		c.String(http.StatusInternalServerError, "could not list messages")
		return
	}

	users, err := h.uStore.ListUsers(ctx)
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not list users", "error", err)
		c.String(http.StatusInternalServerError, "could not list users")
		return
	}

	langs, err := h.tStore.ListLanguages(ctx)
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not list languages", "error", err)
		c.String(http.StatusInternalServerError, "could not list languages")
		return
	}
	translations := make(map[string][]TranslationEntry, len(langs))
	for _, lang := range langs {
		translation, err := h.tStore.ByLanguage(ctx, lang)
		if err != nil {
			h.logger.WarnContext(ctx, "could not read translation", "lang", lang, "error", err)
			continue
		}
		flat, err := translation.Flatten()
		if err != nil {
			h.logger.WarnContext(ctx, "could not flatten translation", "lang", lang, "error", err)
			continue
		}
		translations[lang] = sortedEntries(flat)
	}
	span.SetAttributes(
		attribute.Int("messages", len(messages)),
		attribute.Int("users", len(users)),
	)

	data := l.pageData(c, "admin", "admin.title")
	data["residence"] = residence
	data["messages"] = messages
	data["userCount"] = len(users)
	data["translations"] = translations
	data["uploads"] = h.uploader != nil
	h.execute(c, http.StatusOK, h.tmplAdmin, "MAIN", l, data)
}

func sortedEntries(flat map[string]string) []TranslationEntry {
	entries := make([]TranslationEntry, 0, len(flat))
	for k, v := range flat {
		entries = append(entries, TranslationEntry{Key: k, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

func (h *AdminHandler) UploadGalleryImage(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "AdminHandler.UploadGalleryImage")
	defer span.End()

	if h.uploader == nil {
		span.RecordError(storage.ErrDisabled)
		c.String(http.StatusServiceUnavailable, storage.ErrDisabled.Error())
		return
	}

	url, err := uploadImage(c, h.uploader, "image", "gallery")
	if err != nil {
		span.RecordError(err)
		h.logger.WarnContext(ctx, "could not upload gallery image", "error", err)
		c.String(statusFor(err), "could not upload image")
		return
	}

	image := &model.GalleryImage{
		ID:     uuid.New(),
		Src:    url,
		AltKey: strings.TrimSpace(c.PostForm("alt_key")),
	}
	if err := h.rStore.AddGalleryImage(ctx, image); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.logger.ErrorContext(ctx, "unable to update residence", "error", err)
		c.String(http.StatusInternalServerError, "unable to update residence")
		return
	}
	h.logger.InfoContext(ctx, "gallery image added", "id", image.ID.String())

	l, err := h.locale(ctx, c)
	if err != nil {
		h.logger.WarnContext(ctx, "could not determine language", "error", err)
	}
	h.execute(c, http.StatusCreated, h.tmplGalleryRow, "wrapper", l, image)
}

func (h *AdminHandler) DeleteGalleryImage(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "AdminHandler.DeleteGalleryImage")
	defer span.End()

	imageID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "invalid image ID", "error", err)
		c.String(http.StatusBadRequest, "invalid image ID")
		return
	}

	err = h.rStore.RemoveGalleryImage(ctx, imageID)
	if errors.Is(err, db.ErrNotFound) {
		h.logger.WarnContext(ctx, "image not found", "id", imageID.String())
		c.String(http.StatusNotFound, "image not found")
		return
	}
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "unable to update residence", "error", err)
		c.String(http.StatusInternalServerError, "unable to update residence")
		return
	}
	c.Status(http.StatusOK)
}

func (h *AdminHandler) DeleteMessage(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "AdminHandler.DeleteMessage")
	defer span.End()

	messageID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "invalid message ID", "error", err)
		c.String(http.StatusBadRequest, "invalid message ID")
		return
	}
	if err := h.mStore.DeleteMessage(ctx, messageID); err != nil {
		span.RecordError(err)
		if errors.Is(err, db.ErrNotFound) {
			h.logger.WarnContext(ctx, "message not found", "error", err)
		} else {
			h.logger.ErrorContext(ctx, "unable to delete message", "error", err)
		}
		c.String(statusFor(err), "unable to delete message")
		return
	}
	c.Status(http.StatusOK)
}
