// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package server

import (
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/auth"
	"github.com/freroxx/residence-yasmina/internal/captcha"
	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
	"github.com/freroxx/residence-yasmina/internal/pricing"
	"github.com/freroxx/residence-yasmina/internal/server/templates"
	"github.com/freroxx/residence-yasmina/internal/storage"
)

//go:embed all:static
var staticFS embed.FS

// Options are the settings of the web site that are not services.
type Options struct {
	ServiceName      string
	StaticDir        string
	ReadOnly         bool
	BookingFormURL   string
	TurnstileSiteKey string
	AdminUser        string
	AdminPassword    string
	CORSOrigins      []string
}

// NewServer wires every route. turnstile and uploader may be nil to
// disable captcha checks and uploads.
func NewServer(
	opts Options,
	store db.Store,
	resolver *pricing.Resolver,
	tokens *auth.Tokens,
	turnstile *captcha.Turnstile,
	uploader storage.Uploader,
) *Server {
	s := &Server{
		logger:    slog.Default().WithGroup("http"),
		opts:      opts,
		store:     store,
		resolver:  resolver,
		tokens:    tokens,
		turnstile: turnstile,
		uploader:  uploader,
	}
	s.mux = s.routes()
	return s
}

type Server struct {
	logger    *slog.Logger
	opts      Options
	store     db.Store
	resolver  *pricing.Resolver
	tokens    *auth.Tokens
	turnstile *captcha.Turnstile
	uploader  storage.Uploader
	mux       *gin.Engine
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) routes() *gin.Engine {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	mux := gin.New()

	mux.Use(
		sloggin.NewWithConfig(s.logger,
			sloggin.Config{
				DefaultLevel:     slog.LevelInfo,
				ClientErrorLevel: slog.LevelWarn,
				ServerErrorLevel: slog.LevelError,
			},
		),
		gin.Recovery(), otelgin.Middleware(s.opts.ServiceName), slogAddTraceAttributes,
	)

	var staticDir fs.FS
	var err error
	switch {
	case s.opts.StaticDir != "":
		staticDir = os.DirFS(s.opts.StaticDir)
	default:
		staticDir, err = fs.Sub(staticFS, "static")
		if err != nil {
			panic(err)
		}
	}
	mux.StaticFS("/static", http.FS(staticDir))
	mux.GET("/health", health)

	if s.opts.ReadOnly {
		mux.Use(readOnly(s.logger, s.store))
	}
	mux.Use(auth.Session(s.tokens))

	pages := templates.NewPageHandler(s.store, s.store, s.resolver, s.opts.BookingFormURL)
	mux.GET("/", pages.Home)
	mux.GET("/rooms", pages.Rooms)
	mux.GET("/prices", pages.Prices)
	mux.GET("/gallery", pages.Gallery)
	mux.GET("/about", pages.About)
	mux.GET("/booking", pages.Booking)
	mux.GET("/contact", pages.Contact)

	quotes := templates.NewQuoteHandler(s.store, s.resolver)
	mux.GET("/prices/quote", quotes.RenderQuote)

	contact := templates.NewContactHandler(s.store, s.store)
	mux.POST("/contact", contact.Submit)

	accounts := templates.NewAccountHandler(
		s.store,
		auth.NewService(s.store),
		s.tokens,
		s.turnstile,
		s.opts.TurnstileSiteKey,
		s.uploader,
	)
	mux.GET("/auth", accounts.RenderAuth)
	mux.POST("/auth/login", accounts.Login)
	mux.POST("/auth/signup", accounts.Signup)
	mux.POST("/auth/logout", accounts.Logout)

	profile := mux.Group("/profile", auth.RequireSession("/auth"))
	profile.GET("", accounts.RenderProfile)
	profile.POST("", accounts.UpdateProfile)
	profile.POST("/avatar", accounts.UploadAvatar)

	api := mux.Group("/api", cors.New(s.corsConfig()))
	api.GET("/quote", quotes.Quote)

	adminArea := mux.Group("/admin", gin.BasicAuth(gin.Accounts{
		s.opts.AdminUser: s.opts.AdminPassword,
	}))
	admin := templates.NewAdminHandler(s.store, s.store, s.store, s.store, s.uploader)
	adminArea.GET("/", admin.RenderOverview)
	adminArea.POST("/gallery", admin.UploadGalleryImage)
	adminArea.DELETE("/gallery/:uuid", admin.DeleteGalleryImage)
	adminArea.DELETE("/messages/:uuid", admin.DeleteMessage)

	translations := templates.NewTranslationHandler(s.store)
	adminArea.POST("/translations", translations.UpdateLanguage)

	mux.NoRoute(notFound)
	return mux
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if len(s.opts.CORSOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = s.opts.CORSOrigins
	}
	return cfg
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"code": "PAGE_NOT_FOUND", "message": "Page not found"})
}

func slogAddTraceAttributes(c *gin.Context) {
	sloggin.AddCustomAttributes(c,
		slog.String("trace-id", trace.SpanFromContext(c.Request.Context()).SpanContext().TraceID().String()),
	)
	sloggin.AddCustomAttributes(c,
		slog.String("span-id", trace.SpanFromContext(c.Request.Context()).SpanContext().SpanID().String()),
	)
	c.Next()
}

// readOnly rejects every request that could change data. The admin area
// stays writable.
func readOnly(logger *slog.Logger, tStore db.TranslationStore) gin.HandlerFunc {
	errorHandler := templates.NewErrorHandler(tStore)
	return func(c *gin.Context) {
		var span trace.Span
		ctx := c.Request.Context()
		ctx, span = tracer.Start(ctx, "Middleware.readOnly")
		defer span.End()

		method := c.Request.Method
		if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions ||
			strings.HasPrefix(c.Request.URL.Path, "/admin") {
			c.Next()
			return
		}
		err := errors.New("request method not allowed")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.WarnContext(ctx, "readOnly-mode", "error", err, "method", method, "path", c.Request.URL.Path)
		errorHandler.Handle(c, http.StatusMethodNotAllowed, model.ErrorReasonMaintenance)
		c.Abort()
	}
}
