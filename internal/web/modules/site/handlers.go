package site

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/rjreducation/vsdcentre/internal/contact"
	apperrors "github.com/rjreducation/vsdcentre/internal/web/platform/errors"
	"github.com/rjreducation/vsdcentre/internal/web/platform/flash"
	"github.com/rjreducation/vsdcentre/internal/web/platform/httpx"
	"github.com/rjreducation/vsdcentre/internal/web/platform/webctx"
	"github.com/rjreducation/vsdcentre/internal/web/routepath"
	webtemplates "github.com/rjreducation/vsdcentre/internal/web/templates"
)

type handlers struct {
	gateway ContactGateway
}

// Contact form failures carry the notice key and HTTP status as one typed
// error so rendering stays consistent across the failure arms.
var (
	errMissingFields = apperrors.EK(apperrors.KindInvalidInput, "contact.form.missing_fields", "required fields are missing")
	errInvalidInput  = apperrors.EK(apperrors.KindInvalidInput, "contact.form.invalid", "submission failed validation")
	errSubmitFailed  = apperrors.EK(apperrors.KindUnknown, "contact.form.server_error", "submission could not be stored")
)

func newHandlers(gateway ContactGateway) handlers {
	return handlers{gateway: gateway}
}

func (h handlers) pageContext(r *http.Request) webtemplates.PageContext {
	ctx := httpx.RequestContext(r)
	return webtemplates.PageContext{
		Lang:         webctx.Language(ctx).String(),
		Loc:          webctx.Localizer(ctx),
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
	}
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, status int, title string, description string, body templ.Component) {
	page := h.pageContext(r)
	var buf bytes.Buffer
	if err := webtemplates.Layout(page, title, description, body).Render(httpx.RequestContext(r), &buf); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	_ = httpx.WriteHTML(w, status, buf.String())
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	page := h.pageContext(r)
	h.writePage(w, r, http.StatusOK,
		webtemplates.T(page.Loc, "hero.title"),
		webtemplates.T(page.Loc, "hero.description"),
		webtemplates.HomePage(page))
}

func (h handlers) handleAbout(w http.ResponseWriter, r *http.Request) {
	page := h.pageContext(r)
	h.writePage(w, r, http.StatusOK,
		webtemplates.T(page.Loc, "about.title"),
		webtemplates.T(page.Loc, "about.description1"),
		webtemplates.AboutPage(page))
}

func (h handlers) handleAffiliation(w http.ResponseWriter, r *http.Request) {
	page := h.pageContext(r)
	h.writePage(w, r, http.StatusOK,
		webtemplates.T(page.Loc, "nav.affiliation"),
		webtemplates.T(page.Loc, "about.description3"),
		webtemplates.AffiliationPage(page))
}

func (h handlers) handleCourse(w http.ResponseWriter, r *http.Request) {
	page := h.pageContext(r)
	h.writePage(w, r, http.StatusOK,
		webtemplates.T(page.Loc, "course.title"),
		webtemplates.T(page.Loc, "course.overview"),
		webtemplates.CoursePage(page))
}

func (h handlers) handleContactPage(w http.ResponseWriter, r *http.Request) {
	form := webtemplates.ContactFormView{}
	if notice, ok := flash.ReadAndClear(w, r); ok {
		form.Notice = &webtemplates.ContactNoticeView{Kind: string(notice.Kind), Key: notice.Key}
	}
	h.renderContact(w, r, http.StatusOK, form)
}

func (h handlers) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "malformed form body"))
		return
	}

	input := contact.Input{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Phone:   strings.TrimSpace(r.PostFormValue("phone")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}
	form := webtemplates.ContactFormView{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
	}

	// Presence is checked before the gateway is involved so an empty form
	// never reaches validation or storage.
	missing := missingRequiredFields(input)
	if len(missing) > 0 {
		form.MissingFields = missing
		h.renderContactFailure(w, r, form, errMissingFields)
		return
	}

	outcome := h.gateway.SubmitContact(httpx.RequestContext(r), input)
	switch {
	case outcome.Invalid:
		form.MissingFields = map[string]bool{outcome.InvalidField: true}
		h.renderContactFailure(w, r, form, errInvalidInput)
	case outcome.Failed:
		h.renderContactFailure(w, r, form, errSubmitFailed)
	default:
		flash.Write(w, flash.NoticeSuccess("contact.form.success"))
		http.Redirect(w, r, routepath.Contact, http.StatusSeeOther)
	}
}

func (h handlers) renderContactFailure(w http.ResponseWriter, r *http.Request, form webtemplates.ContactFormView, err error) {
	form.Notice = &webtemplates.ContactNoticeView{Kind: string(flash.KindError), Key: apperrors.LocalizationKey(err)}
	h.renderContact(w, r, apperrors.HTTPStatus(err), form)
}

func (h handlers) renderContact(w http.ResponseWriter, r *http.Request, status int, form webtemplates.ContactFormView) {
	page := h.pageContext(r)
	h.writePage(w, r, status,
		webtemplates.T(page.Loc, "contact.title"),
		webtemplates.T(page.Loc, "contact.description"),
		webtemplates.ContactPage(page, form))
}

func missingRequiredFields(input contact.Input) map[string]bool {
	missing := make(map[string]bool)
	if input.Name == "" {
		missing["name"] = true
	}
	if input.Email == "" {
		missing["email"] = true
	}
	if input.Message == "" {
		missing["message"] = true
	}
	if len(missing) == 0 {
		return nil
	}
	return missing
}
