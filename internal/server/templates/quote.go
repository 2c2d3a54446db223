// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package templates

import (
	"html/template"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
	"github.com/freroxx/residence-yasmina/internal/parser/form"
	"github.com/freroxx/residence-yasmina/internal/pricing"
)

// QuoteHandler exposes the rate resolver to the calculator and the json
// api.
type QuoteHandler struct {
	base
	resolver  *pricing.Resolver
	tmplQuote *template.Template
}

func NewQuoteHandler(tStore db.TranslationStore, resolver *pricing.Resolver) *QuoteHandler {
	return &QuoteHandler{
		base:      newBase(tStore),
		resolver:  resolver,
		tmplQuote: parsePartial("QUOTE_RESULT", "quote.html"),
	}
}

type quoteForm struct {
	Room     string `form:"room"`
	Persons  string `form:"persons"`
	CheckIn  string `form:"checkin"`
	CheckOut string `form:"checkout"`
}

// ParseStayQuery reads a stay from calculator parameters. Missing values
// stay zero and make the query incomplete, as do fewer than one person.
// Malformed values are reported per field.
func ParseStayQuery(values url.Values) (pricing.StayQuery, error) {
	var in quoteForm
	if err := form.Unmarshal(values, &in); err != nil {
		return pricing.StayQuery{}, err
	}

	var q pricing.StayQuery
	ie := model.NewInputError()
	if room := strings.TrimSpace(in.Room); room != "" {
		category, err := pricing.ParseRoomCategory(room)
		if err != nil {
			ie.Add("room", model.ValidationRoom)
		}
		q.Room = category
	}
	if persons := strings.TrimSpace(in.Persons); persons != "" {
		n, err := strconv.Atoi(persons)
		if err != nil {
			ie.Add("persons", model.ValidationNumber)
		}
		q.Occupants = n
	}
	for _, d := range []struct {
		field string
		raw   string
		dst   *time.Time
	}{
		{field: "checkin", raw: in.CheckIn, dst: &q.CheckIn},
		{field: "checkout", raw: in.CheckOut, dst: &q.CheckOut},
	} {
		raw := strings.TrimSpace(d.raw)
		if raw == "" {
			continue
		}
		t, err := time.Parse(form.DateLayout, raw)
		if err != nil {
			ie.Add(d.field, model.ValidationDate)
			continue
		}
		*d.dst = t
	}
	return q, ie.OrNil()
}

// complete reports whether q names everything a quote needs.
func complete(q pricing.StayQuery) bool {
	return q.Room.Valid() && q.Occupants >= 1 && !q.CheckIn.IsZero() && !q.CheckOut.IsZero() &&
		pricing.Nights(q.CheckIn, q.CheckOut) > 0
}

func (h *QuoteHandler) quote(c *gin.Context, q pricing.StayQuery) (*pricing.PriceQuote, bool) {
	ctx := c.Request.Context()
	res, ok := h.resolver.Quote(q)
	if !ok && complete(q) {
		h.logger.WarnContext(ctx, "no rate for stay",
			"room", string(q.Room),
			"persons", q.Occupants,
			"period", pricing.ResolveSeason(q.CheckIn).String(),
		)
	}
	return res, ok
}

// RenderQuote renders the calculator result block.
func (h *QuoteHandler) RenderQuote(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "QuoteHandler.RenderQuote")
	defer span.End()

	l, ok := h.localeOrFail(ctx, c)
	if !ok {
		return
	}

	data := gin.H{"currency": h.resolver.Rates().Currency()}
	q, err := ParseStayQuery(c.Request.URL.Query())
	if ie := model.IsInputError(err); ie != nil {
		span.RecordError(err)
		data["errors"] = messages(ie)
		h.execute(c, http.StatusOK, h.tmplQuote, "wrapper", l, data)
		return
	} else if err != nil {
		span.RecordError(err)
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	if res, ok := h.quote(c, q); ok {
		span.SetAttributes(attribute.String("period", res.Period.String()), attribute.Int("nights", res.Nights))
		data["quote"] = res
	} else if complete(q) {
		data["unavailable"] = true
	}
	h.execute(c, http.StatusOK, h.tmplQuote, "wrapper", l, data)
}

// QuoteResponse is the json form of a quote.
type QuoteResponse struct {
	Room             string `json:"room"`
	Persons          int    `json:"persons"`
	EffectivePersons int    `json:"effective_persons"`
	Nights           int    `json:"nights"`
	Season           string `json:"season"`
	Period           string `json:"period"`
	PeriodRange      string `json:"period_range"`
	Nightly          string `json:"nightly"`
	Weekly           string `json:"weekly"`
	Total            string `json:"total"`
	Currency         string `json:"currency"`
	CapacityExceeded bool   `json:"capacity_exceeded"`
}

func newQuoteResponse(q *pricing.PriceQuote, currency string) *QuoteResponse {
	return &QuoteResponse{
		Room:             string(q.Room),
		Persons:          q.Occupants,
		EffectivePersons: q.EffectiveOccupants,
		Nights:           q.Nights,
		Season:           string(q.Period.Season),
		Period:           q.Period.Label(),
		PeriodRange:      q.Period.Range(),
		Nightly:          q.Nightly.StringFixed(2),
		Weekly:           q.Weekly.StringFixed(2),
		Total:            q.Total.StringFixed(2),
		Currency:         currency,
		CapacityExceeded: q.CapacityExceeded,
	}
}

// Quote answers GET /api/quote with {"quote": {...}} or {"quote": null}.
func (h *QuoteHandler) Quote(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	_, span = tracer.Start(ctx, "QuoteHandler.Quote")
	defer span.End()

	q, err := ParseStayQuery(c.Request.URL.Query())
	if err != nil {
		span.RecordError(err)
		if ie := model.IsInputError(err); ie != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_INPUT", "errors": ie.Fields()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_INPUT", "message": err.Error()})
		return
	}

	res, ok := h.quote(c, q)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"quote": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote": newQuoteResponse(res, h.resolver.Rates().Currency())})
}

// messages returns the distinct message keys of ie in field order.
func messages(ie *model.InputError) []string {
	fields := make([]string, 0, len(ie.Fields()))
	for f := range ie.Fields() {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	seen := map[string]bool{}
	var out []string
	for _, f := range fields {
		for _, msg := range ie.Fields()[f] {
			if !seen[msg] {
				seen[msg] = true
				out = append(out, msg)
			}
		}
	}
	return out
}
