// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package templates

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/auth"
	"github.com/freroxx/residence-yasmina/internal/captcha"
	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
	"github.com/freroxx/residence-yasmina/internal/parser/form"
	"github.com/freroxx/residence-yasmina/internal/storage"
)

const (
	maxAvatarSize = 5 << 20
	captchaField  = "cf-turnstile-response"
)

var accountFields = map[string]string{
	"email":       "auth.email",
	"password":    "auth.password",
	"full_name":   "auth.fullName",
	"description": "profile.description",
	"avatar":      "profile.avatar",
}

// AccountHandler serves sign up, sign in and the profile page.
type AccountHandler struct {
	base
	accounts  *auth.Service
	tokens    *auth.Tokens
	turnstile *captcha.Turnstile
	uploader  storage.Uploader
	siteKey   string

	tmplAuth    *template.Template
	tmplProfile *template.Template
	tmplSuccess *template.Template
	tmplError   *template.Template
}

// NewAccountHandler creates the account handler. A nil turnstile skips
// the captcha check and a nil uploader disables avatar uploads.
func NewAccountHandler(
	tStore db.TranslationStore,
	accounts *auth.Service,
	tokens *auth.Tokens,
	turnstile *captcha.Turnstile,
	siteKey string,
	uploader storage.Uploader,
) *AccountHandler {
	return &AccountHandler{
		base:        newBase(tStore),
		accounts:    accounts,
		tokens:      tokens,
		turnstile:   turnstile,
		uploader:    uploader,
		siteKey:     siteKey,
		tmplAuth:    parsePage("auth.html"),
		tmplProfile: parsePage("profile.html"),
		tmplSuccess: parsePartial("TOAST_SUCCESS", "toast.html"),
		tmplError:   parsePartial("TOAST_ERROR", "toast.html"),
	}
}

type authView struct {
	Mode    string
	Email   string
	Name    string
	Message string
	Errors  []string
}

func (a *AccountHandler) RenderAuth(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "AccountHandler.RenderAuth")
	defer span.End()

	if _, ok := auth.ClaimsFrom(c); ok {
		c.Redirect(http.StatusSeeOther, "/profile")
		return
	}
	l, ok := a.localeOrFail(ctx, c)
	if !ok {
		return
	}
	mode := "login"
	if c.Query("mode") == "signup" {
		mode = "signup"
	}
	a.renderAuth(c, l, http.StatusOK, authView{Mode: mode})
}

func (a *AccountHandler) renderAuth(c *gin.Context, l *locale, status int, view authView) {
	data := l.pageData(c, "auth", "auth."+view.Mode)
	data["auth"] = view
	data["turnstileSiteKey"] = a.siteKey
	a.execute(c, status, a.tmplAuth, "MAIN", l, data)
}

func (a *AccountHandler) Login(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "AccountHandler.Login")
	defer span.End()

	l, ok := a.localeOrFail(ctx, c)
	if !ok {
		return
	}
	email := c.PostForm("email")
	user, err := a.accounts.Login(ctx, email, c.PostForm("password"))
	if err != nil {
		span.RecordError(err)
		a.logger.WarnContext(ctx, "sign in failed", "error", err)
		a.renderAuth(c, l, http.StatusUnauthorized, authView{
			Mode:    "login",
			Email:   email,
			Message: l.translation.Auth.InvalidCredentials,
		})
		return
	}
	a.startSession(c, user)
}

func (a *AccountHandler) Signup(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "AccountHandler.Signup")
	defer span.End()

	l, ok := a.localeOrFail(ctx, c)
	if !ok {
		return
	}
	if err := c.Request.ParseForm(); err != nil {
		span.RecordError(err)
		a.logger.ErrorContext(ctx, "could not parse form", "error", err)
		c.String(http.StatusBadRequest, "could not parse form")
		return
	}

	var in auth.SignupInput
	if err := form.Unmarshal(c.Request.PostForm, &in); err != nil {
		span.RecordError(err)
		a.logger.ErrorContext(ctx, "could not parse sign up", "error", err)
		c.String(http.StatusBadRequest, "could not parse sign up")
		return
	}
	view := authView{Mode: "signup", Email: in.Email, Name: in.FullName}

	valid, err := a.turnstile.Verify(ctx, c.PostForm(captchaField), c.ClientIP())
	if err != nil && !errors.Is(err, captcha.ErrMissingToken) {
		span.RecordError(err)
		a.logger.ErrorContext(ctx, "captcha verification failed", "error", err)
	}
	if !valid {
		view.Message = l.translation.Auth.Captcha
		a.renderAuth(c, l, http.StatusBadRequest, view)
		return
	}

	user, err := a.accounts.Signup(ctx, in)
	switch {
	case errors.Is(err, auth.ErrEmailTaken):
		view.Message = l.translation.Auth.EmailTaken
		a.renderAuth(c, l, http.StatusConflict, view)
		return
	case model.IsInputError(err) != nil:
		view.Errors = fieldMessages(l.tr, model.IsInputError(err), accountFields)
		a.renderAuth(c, l, http.StatusBadRequest, view)
		return
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		a.logger.ErrorContext(ctx, "could not sign up", "error", err)
		view.Message = l.translation.Error.Process
		a.renderAuth(c, l, http.StatusInternalServerError, view)
		return
	}
	a.startSession(c, user)
}

func (a *AccountHandler) startSession(c *gin.Context, user *model.User) {
	ctx := c.Request.Context()
	token, err := a.tokens.Issue(user)
	if err != nil {
		a.logger.ErrorContext(ctx, "could not issue token", "error", err)
		c.String(http.StatusInternalServerError, "could not start session")
		return
	}
	auth.SetCookie(c, token, a.tokens)
	if isHtmx(c) {
		c.Header("HX-Redirect", "/profile")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, "/profile")
}

func (a *AccountHandler) Logout(c *gin.Context) {
	auth.ClearCookie(c)
	if isHtmx(c) {
		c.Header("HX-Redirect", "/")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (a *AccountHandler) RenderProfile(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "AccountHandler.RenderProfile")
	defer span.End()

	claims, _ := auth.ClaimsFrom(c)
	l, ok := a.localeOrFail(ctx, c)
	if !ok {
		return
	}
	profile, err := a.accounts.Profile(ctx, claims.UserID)
	if err != nil {
		span.RecordError(err)
		a.logger.ErrorContext(ctx, "could not read profile", "error", err)
		c.String(statusFor(err), "could not read profile")
		return
	}

	data := l.pageData(c, "profile", "profile.title")
	data["profile"] = profile
	data["email"] = claims.Email
	data["initials"] = profile.Initials(claims.Email)
	data["uploads"] = a.uploader != nil
	a.execute(c, http.StatusOK, a.tmplProfile, "MAIN", l, data)
}

func (a *AccountHandler) UpdateProfile(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "AccountHandler.UpdateProfile")
	defer span.End()

	claims, _ := auth.ClaimsFrom(c)
	l, ok := a.localeOrFail(ctx, c)
	if !ok {
		return
	}
	if err := c.Request.ParseForm(); err != nil {
		span.RecordError(err)
		c.String(http.StatusBadRequest, "could not parse form")
		return
	}

	in := &model.Profile{UserID: claims.UserID}
	if err := form.Unmarshal(c.Request.PostForm, in); err != nil {
		span.RecordError(err)
		a.logger.ErrorContext(ctx, "could not parse profile", "error", err)
		c.String(http.StatusBadRequest, "could not parse profile")
		return
	}
	in.UserID = claims.UserID

	if _, err := a.accounts.UpdateProfile(ctx, in); err != nil {
		span.RecordError(err)
		status := statusFor(err)
		messages := []string{l.translation.Profile.SaveError}
		if ie := model.IsInputError(err); ie != nil {
			messages = fieldMessages(l.tr, ie, accountFields)
		} else {
			a.logger.ErrorContext(ctx, "could not update profile", "error", err)
		}
		a.execute(c, status, a.tmplError, "wrapper", l, gin.H{
			"Title":    l.translation.Error.Title,
			"Messages": messages,
		})
		return
	}

	a.execute(c, http.StatusOK, a.tmplSuccess, "wrapper", l, gin.H{
		"Title":   l.translation.Success.Title,
		"Message": l.translation.Profile.SaveSuccess,
	})
}

func (a *AccountHandler) UploadAvatar(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "AccountHandler.UploadAvatar")
	defer span.End()

	if a.uploader == nil {
		span.RecordError(storage.ErrDisabled)
		c.String(http.StatusServiceUnavailable, storage.ErrDisabled.Error())
		return
	}
	claims, _ := auth.ClaimsFrom(c)
	l, ok := a.localeOrFail(ctx, c)
	if !ok {
		return
	}

	url, err := uploadImage(c, a.uploader, "avatar", "avatars")
	if err != nil {
		span.RecordError(err)
		a.logger.WarnContext(ctx, "could not upload avatar", "error", err)
		status := statusFor(err)
		messages := []string{l.translation.Profile.SaveError}
		if ie := model.IsInputError(err); ie != nil {
			messages = fieldMessages(l.tr, ie, accountFields)
		}
		a.execute(c, status, a.tmplError, "wrapper", l, gin.H{
			"Title":    l.translation.Error.Title,
			"Messages": messages,
		})
		return
	}
	span.SetAttributes(attribute.String("url", url))

	if err := a.accounts.SetAvatar(ctx, claims.UserID, url); err != nil {
		span.RecordError(err)
		a.logger.ErrorContext(ctx, "could not store avatar", "error", err)
		c.String(http.StatusInternalServerError, "could not store avatar")
		return
	}
	if isHtmx(c) {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, "/profile")
}

// uploadImage stores the multipart file of field under prefix and returns
// its public url. Missing files or non image content become input errors.
func uploadImage(c *gin.Context, uploader storage.Uploader, field, prefix string) (string, error) {
	ie := model.NewInputError()
	header, err := c.FormFile(field)
	if err != nil {
		ie.Add(field, model.ValidationRequired)
		return "", ie
	}
	if header.Size > maxAvatarSize {
		ie.Add(field, model.ValidationTooLong)
		return "", ie
	}
	contentType := header.Header.Get("Content-Type")
	if !storage.IsImage(contentType) {
		ie.Add(field, model.ValidationImage)
		return "", ie
	}
	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return uploader.Upload(c.Request.Context(), storage.ObjectKey(prefix, header.Filename), f, contentType)
}
