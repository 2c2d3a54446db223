// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package templates

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/auth"
	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
	"github.com/freroxx/residence-yasmina/internal/pricing"
)

//go:embed *.html
var templates embed.FS

const langCookie = "lang"

var coreTemplates = []string{"main.html", "nav.html", "footer.html", "toast.html"}

var funcs = template.FuncMap{
	// replaced per request, see translator
	"t":      func(key string) string { return key },
	"amount": func(d decimal.Decimal) string { return pricing.FormatAmount(d) },
	"date":   func(t *time.Time) string { return formatDate(t) },
	"seq": func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i + 1
		}
		return out
	},
	"join": strings.Join,
	"dict": func(kv ...any) (map[string]any, error) {
		if len(kv)%2 != 0 {
			return nil, errors.New("dict expects key value pairs")
		}
		m := make(map[string]any, len(kv)/2)
		for i := 0; i < len(kv); i += 2 {
			key, ok := kv[i].(string)
			if !ok {
				return nil, fmt.Errorf("dict key %v is not a string", kv[i])
			}
			m[key] = kv[i+1]
		}
		return m, nil
	},
}

// parsePage parses the shared layout together with the given page files.
func parsePage(files ...string) *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templates, append(coreTemplates, files...)...))
}

// parsePartial parses files and exposes the block name as entry point.
func parsePartial(name string, files ...string) *template.Template {
	wrapperTemplate := template.Must(template.New("wrapper").Funcs(funcs).Parse(fmt.Sprintf("{{ template %q . }}", name)))
	return template.Must(wrapperTemplate.ParseFS(templates, files...))
}

// translator resolves flattened "section.key" lookups and falls back to
// the key itself.
type translator struct {
	texts map[string]string
}

func newTranslator(tr *model.Translation) *translator {
	texts, err := tr.Flatten()
	if err != nil {
		texts = map[string]string{}
	}
	return &translator{texts: texts}
}

func (t *translator) T(key string) string {
	if v, ok := t.texts[key]; ok && v != "" {
		return v
	}
	return key
}

// base carries what every handler needs to render localized pages.
type base struct {
	tStore db.TranslationStore
	logger *slog.Logger
}

func newBase(tStore db.TranslationStore) base {
	return base{tStore: tStore, logger: slog.Default().WithGroup("http")}
}

type locale struct {
	lang        string
	translation *model.Translation
	tr          *translator
	options     []model.LanguageOption
}

// locale picks the language from ?lang=, then the lang cookie and falls
// back to the default language. An explicit choice is remembered.
func (b *base) locale(ctx context.Context, c *gin.Context) (*locale, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "base.locale")
	defer span.End()

	langs, err := b.tStore.ListLanguages(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	known := func(l string) bool {
		for _, lang := range langs {
			if lang == l {
				return true
			}
		}
		return false
	}

	lang := model.DefaultLanguage
	if q := c.Query("lang"); q != "" && known(q) {
		lang = q
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(langCookie, lang, int((365 * 24 * time.Hour).Seconds()), "/", "", false, false)
	} else if ck, err := c.Cookie(langCookie); err == nil && known(ck) {
		lang = ck
	}

	options := make([]model.LanguageOption, 0, len(langs))
	var current *model.Translation
	for _, l := range langs {
		translation, err := b.tStore.ByLanguage(ctx, l)
		if err != nil {
			b.logger.WarnContext(ctx, "could not read translation", "lang", l, "error", err)
			continue
		}
		options = append(options, model.LanguageOption{
			Lang:       l,
			Name:       translation.LanguageName,
			FlagImgSrc: translation.FlagImgSrc,
		})
		if l == lang {
			current = translation
		}
	}
	if current == nil {
		err := fmt.Errorf("translation %q: %w", lang, db.ErrNotFound)
		span.RecordError(err)
		return nil, err
	}
	return &locale{lang: lang, translation: current, tr: newTranslator(current), options: options}, nil
}

// pageData returns the values the layout needs. titleKey is resolved
// for the document title.
func (l *locale) pageData(c *gin.Context, page, titleKey string) gin.H {
	data := gin.H{
		"lang":        l.lang,
		"languages":   l.options,
		"translation": l.translation,
		"page":        page,
		"title":       l.tr.T(titleKey),
		"path":        c.Request.URL.Path,
		"year":        time.Now().Year(),
	}
	if claims, ok := auth.ClaimsFrom(c); ok {
		data["user"] = claims
	}
	return data
}

// execute runs name of tmpl with the request translator bound to "t".
func (b *base) execute(c *gin.Context, status int, tmpl *template.Template, name string, l *locale, data any) {
	ctx := c.Request.Context()
	t, err := tmpl.Clone()
	if err != nil {
		b.logger.ErrorContext(ctx, "unable to clone template", "error", err)
		c.String(http.StatusInternalServerError, "unable to render page")
		return
	}
	tr := &translator{texts: map[string]string{}}
	if l != nil {
		tr = l.tr
	}
	t.Funcs(template.FuncMap{"t": tr.T})

	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(c.Writer, name, data); err != nil {
		b.logger.ErrorContext(ctx, "unable to execute template", "template", name, "error", err)
	}
}

// localeOrFail renders a plain error when no translation can be loaded.
func (b *base) localeOrFail(ctx context.Context, c *gin.Context) (*locale, bool) {
	l, err := b.locale(ctx, c)
	if err != nil {
		b.logger.ErrorContext(ctx, "could not determine language", "error", err)
		c.String(http.StatusInternalServerError, "could not determine language")
		return nil, false
	}
	return l, true
}

func isHtmx(c *gin.Context) bool {
	return c.Request.Header.Get("Hx-Request") == "true"
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006 15:04")
}

// statusFor maps store errors to http status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case model.IsInputError(err) != nil:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
