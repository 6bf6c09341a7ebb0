package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/rjreducation/vsdcentre/internal/web/routepath"
)

// ContactNoticeView carries a one-time form outcome for rendering.
type ContactNoticeView struct {
	Kind string
	Key  string
}

// ContactFormView carries submitted values and field state across re-renders.
type ContactFormView struct {
	Name    string
	Email   string
	Phone   string
	Message string

	MissingFields map[string]bool
	Notice        *ContactNoticeView
}

// ContactPage renders the contact form, centre details and closing call to action.
func ContactPage(page PageContext, form ContactFormView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="contact">`)
		fmt.Fprintf(&b, `<h1>%s</h1>`, templ.EscapeString(T(page.Loc, "contact.title")))
		fmt.Fprintf(&b, `<p>%s</p>`, templ.EscapeString(T(page.Loc, "contact.description")))

		writeContactNotice(&b, page, form.Notice)
		writeContactForm(&b, page, form)
		writeContactInfo(&b, page)

		b.WriteString(`<div class="contact-cta">`)
		fmt.Fprintf(&b, `<h2>%s</h2>`, templ.EscapeString(T(page.Loc, "contact.ready")))
		fmt.Fprintf(&b, `<p>%s</p>`, templ.EscapeString(T(page.Loc, "contact.ready_desc")))
		fmt.Fprintf(&b, `<a class="btn btn-primary" href="#contact-form">%s</a>`, templ.EscapeString(T(page.Loc, "contact.apply")))
		b.WriteString("</div></section>")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeContactNotice(b *strings.Builder, page PageContext, notice *ContactNoticeView) {
	if notice == nil {
		return
	}
	fmt.Fprintf(b, `<div class="notice notice-%s" role="status">%s</div>`,
		templ.EscapeString(notice.Kind),
		templ.EscapeString(T(page.Loc, notice.Key)))
}

func writeContactForm(b *strings.Builder, page PageContext, form ContactFormView) {
	fmt.Fprintf(b, `<h2>%s</h2>`, templ.EscapeString(T(page.Loc, "contact.form_title")))
	fmt.Fprintf(b, `<form id="contact-form" method="post" action=%q>`, routepath.Contact)

	writeFormField(b, page, form, "name", "contact.name", "text", form.Name, true)
	writeFormField(b, page, form, "email", "contact.email", "email", form.Email, true)
	writeFormField(b, page, form, "phone", "contact.phone", "tel", form.Phone, false)

	fieldClass := "form-field"
	if form.MissingFields["message"] {
		fieldClass = "form-field field-error"
	}
	fmt.Fprintf(b, `<div class=%q><label for="message">%s</label>`, fieldClass, templ.EscapeString(T(page.Loc, "contact.message")))
	fmt.Fprintf(b, `<textarea id="message" name="message" required>%s</textarea></div>`, templ.EscapeString(form.Message))

	fmt.Fprintf(b, `<button type="submit" class="btn btn-primary">%s</button>`, templ.EscapeString(T(page.Loc, "contact.send")))
	b.WriteString("</form>")
}

func writeFormField(b *strings.Builder, page PageContext, form ContactFormView, name string, labelKey string, inputType string, value string, required bool) {
	fieldClass := "form-field"
	if form.MissingFields[name] {
		fieldClass = "form-field field-error"
	}
	requiredAttr := ""
	if required {
		requiredAttr = " required"
	}
	fmt.Fprintf(b, `<div class=%q><label for=%q>%s</label>`, fieldClass, name, templ.EscapeString(T(page.Loc, labelKey)))
	fmt.Fprintf(b, `<input type=%q id=%q name=%q value="%s"%s></div>`,
		inputType, name, name, templ.EscapeString(value), requiredAttr)
}

func writeContactInfo(b *strings.Builder, page PageContext) {
	fmt.Fprintf(b, `<h2>%s</h2><ul class="contact-info">`, templ.EscapeString(T(page.Loc, "contact.info")))
	fmt.Fprintf(b, `<li><h3>%s</h3><p>RJR Education VSD Centre<br>Tirunelveli, Tamil Nadu, India</p></li>`,
		templ.EscapeString(T(page.Loc, "contact.address")))
	fmt.Fprintf(b, `<li><h3>%s</h3><p>+91 12345 67890</p></li>`, templ.EscapeString(T(page.Loc, "contact.phone")))
	fmt.Fprintf(b, `<li><h3>%s</h3><p>info@rjreducationvsd.edu</p></li>`, templ.EscapeString(T(page.Loc, "contact.email")))
	b.WriteString("</ul>")
}
