// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package templates

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
	"github.com/freroxx/residence-yasmina/internal/parser/form"
)

type TranslationHandler struct {
	tStore db.TranslationStore
}

func NewTranslationHandler(tStore db.TranslationStore) *TranslationHandler {
	return &TranslationHandler{tStore: tStore}
}

// UpdateLanguage applies "<lang>.<section>.<key>" form fields on top of
// the stored translations.
func (t *TranslationHandler) UpdateLanguage(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "TranslationHandler.UpdateLanguages")
	defer span.End()

	if err := c.Request.ParseForm(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	span.AddEvent("Read form entries", trace.WithAttributes(attribute.Int("count", len(c.Request.PostForm))))

	translationFormByLanguage := map[string]url.Values{}
	for key, value := range groupIndexedValues(c.Request.PostForm) {
		language, field, ok := strings.Cut(key, ".")
		if !ok {
			err := fmt.Errorf("%q is not a valid key for updating language translations, expecting <lang>.<field>", key)
			span.RecordError(err)
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		translation, ok := translationFormByLanguage[language]
		if !ok {
			translation = make(url.Values)
		}
		translation[field] = value
		translationFormByLanguage[language] = translation
	}

	translations := map[string]*model.Translation{}
	for language, translationForm := range translationFormByLanguage {
		current, err := t.tStore.ByLanguage(ctx, language)
		if err != nil {
			err := fmt.Errorf("cannot find language %q: %w", language, err)
			span.RecordError(err)
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		if err := form.Unmarshal(translationForm, current); err != nil {
			err := fmt.Errorf("unmarshal translation from form for language %q: %w", language, err)
			span.RecordError(err)
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		translations[language] = current
	}

	if err := t.tStore.UpdateLanguages(ctx, translations); err != nil {
		err := fmt.Errorf("update languages in store: %w", err)
		span.RecordError(err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// groupIndexedValues removes numeric suffixes of keys and collects their
// values into one list ordered by index.
//
// e.g.:
//
//	en.optionX   => d
//	en.optionY.2 => c
//	en.optionY.0 => a
//	en.optionY.1 => b
//
// becomes
//
//	en.optionX => [d]
//	en.optionY => [a, b, c]
func groupIndexedValues(in url.Values) url.Values {
	type indexed struct {
		idx int
		val string
	}
	lists := map[string][]indexed{}
	out := url.Values{}
	for key, value := range in {
		kk := strings.Split(key, ".")
		idx, err := strconv.Atoi(kk[len(kk)-1])
		if len(kk) < 2 || err != nil {
			out[key] = append(out[key], value...)
			continue
		}
		newKey := strings.Join(kk[:len(kk)-1], ".")
		for _, v := range value {
			lists[newKey] = append(lists[newKey], indexed{idx: idx, val: v})
		}
	}
	for key, list := range lists {
		sort.SliceStable(list, func(i, j int) bool { return list[i].idx < list[j].idx })
		for _, v := range list {
			out[key] = append(out[key], v.val)
		}
	}
	return out
}
