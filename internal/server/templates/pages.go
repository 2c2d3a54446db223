// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package templates

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
	"github.com/freroxx/residence-yasmina/internal/pricing"
)

// PageHandler renders the public pages of the site.
type PageHandler struct {
	base
	rStore         db.ResidenceStore
	resolver       *pricing.Resolver
	bookingFormURL string

	tmplHome    *template.Template
	tmplRooms   *template.Template
	tmplPrices  *template.Template
	tmplGallery *template.Template
	tmplAbout   *template.Template
	tmplBooking *template.Template
	tmplContact *template.Template
}

// NewPageHandler creates the public page handler. An empty bookingFormURL
// uses the url stored with the residence.
func NewPageHandler(
	tStore db.TranslationStore,
	rStore db.ResidenceStore,
	resolver *pricing.Resolver,
	bookingFormURL string,
) *PageHandler {
	return &PageHandler{
		base:           newBase(tStore),
		rStore:         rStore,
		resolver:       resolver,
		bookingFormURL: bookingFormURL,
		tmplHome:       parsePage("home.html"),
		tmplRooms:      parsePage("rooms.html", "price-table.html"),
		tmplPrices:     parsePage("prices.html", "price-table.html", "quote.html"),
		tmplGallery:    parsePage("gallery.html"),
		tmplAbout:      parsePage("about.html"),
		tmplBooking:    parsePage("booking.html"),
		tmplContact:    parsePage("contact.html"),
	}
}

// RoomView joins a room of the residence with its price list.
type RoomView struct {
	*model.Room
	Capacity int
	Rows     []pricing.RateRow
}

func (p *PageHandler) Home(c *gin.Context) {
	p.render(c, "PageHandler.Home", p.tmplHome, "home", "hero.title", nil)
}

func (p *PageHandler) Rooms(c *gin.Context) {
	p.render(c, "PageHandler.Rooms", p.tmplRooms, "rooms", "rooms.title", nil)
}

func (p *PageHandler) Prices(c *gin.Context) {
	p.render(c, "PageHandler.Prices", p.tmplPrices, "prices", "prices.title", func(data gin.H) {
		data["periods"] = pricing.Periods()
		data["categories"] = pricing.Categories()
		data["maxPersons"] = maxCapacity()
	})
}

func (p *PageHandler) Gallery(c *gin.Context) {
	p.render(c, "PageHandler.Gallery", p.tmplGallery, "gallery", "gallery.title", nil)
}

func (p *PageHandler) About(c *gin.Context) {
	p.render(c, "PageHandler.About", p.tmplAbout, "about", "about.title", nil)
}

func (p *PageHandler) Booking(c *gin.Context) {
	p.render(c, "PageHandler.Booking", p.tmplBooking, "booking", "booking.title", func(data gin.H) {
		formURL := p.bookingFormURL
		if res, ok := data["residence"].(*model.Residence); ok && formURL == "" {
			formURL = res.BookingFormURL
		}
		if formURL == "" {
			formURL = model.DefaultBookingFormURL
		}
		data["bookingFormURL"] = formURL
	})
}

func (p *PageHandler) Contact(c *gin.Context) {
	p.render(c, "PageHandler.Contact", p.tmplContact, "contact", "contact.title", nil)
}

func (p *PageHandler) render(
	c *gin.Context,
	spanName string,
	tmpl *template.Template,
	page, titleKey string,
	extend func(gin.H),
) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, spanName)
	defer span.End()

	l, ok := p.localeOrFail(ctx, c)
	if !ok {
		return
	}

	residence, err := p.rStore.GetResidence(ctx)
	if err != nil {
		span.RecordError(err)
		p.logger.ErrorContext(ctx, "could not find residence", "error", err)
		c.String(http.StatusInternalServerError, "could not find residence")
		return
	}

	data := l.pageData(c, page, titleKey)
	data["residence"] = residence
	data["rooms"] = p.roomViews(residence)
	data["currency"] = p.resolver.Rates().Currency()
	if extend != nil {
		extend(data)
	}
	p.execute(c, http.StatusOK, tmpl, "MAIN", l, data)
}

func (p *PageHandler) roomViews(residence *model.Residence) []RoomView {
	views := make([]RoomView, 0, len(residence.Rooms))
	for _, room := range residence.Rooms {
		category := pricing.RoomCategory(room.Category)
		views = append(views, RoomView{
			Room:     room,
			Capacity: category.Capacity(),
			Rows:     p.resolver.Rates().Rows(category),
		})
	}
	return views
}

func maxCapacity() int {
	largest := 0
	for _, c := range pricing.Categories() {
		if c.Capacity() > largest {
			largest = c.Capacity()
		}
	}
	return largest
}
