package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

func theorySubjects() []string {
	return []string{
		"Fundamentals of Varma Therapy",
		"Human Anatomy & Physiology",
		"Traditional Medicine Principles",
		"Energy Systems & Chakras",
	}
}

func practicalSubjects() []string {
	return []string{
		"Massage Techniques & Pressure Points",
		"Patient Assessment & Diagnosis",
		"Treatment Planning & Execution",
		"Clinical Internship & Case Studies",
	}
}

// CoursePage renders the diploma overview and curriculum breakdown.
func CoursePage(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="course">`)
		fmt.Fprintf(&b, `<h1>%s</h1>`, templ.EscapeString(T(page.Loc, "course.title")))
		fmt.Fprintf(&b, `<h2>%s</h2>`, templ.EscapeString(T(page.Loc, "course.overview")))

		b.WriteString(`<dl class="course-facts">`)
		facts := []struct {
			labelKey string
			valueKey string
		}{
			{"course.duration", "course.duration_value"},
			{"course.certification", "course.certification_value"},
			{"course.learning", "course.learning_value"},
		}
		for _, fact := range facts {
			fmt.Fprintf(&b, `<dt>%s</dt><dd>%s</dd>`,
				templ.EscapeString(T(page.Loc, fact.labelKey)),
				templ.EscapeString(T(page.Loc, fact.valueKey)))
		}
		b.WriteString("</dl>")

		fmt.Fprintf(&b, `<h2>%s</h2>`, templ.EscapeString(T(page.Loc, "course.curriculum")))
		fmt.Fprintf(&b, `<h3>%s</h3><ul class="syllabus">`, templ.EscapeString(T(page.Loc, "course.core")))
		for _, subject := range theorySubjects() {
			fmt.Fprintf(&b, `<li>%s</li>`, templ.EscapeString(subject))
		}
		b.WriteString("</ul>")
		fmt.Fprintf(&b, `<h3>%s</h3><ul class="syllabus">`, templ.EscapeString(T(page.Loc, "course.practical")))
		for _, subject := range practicalSubjects() {
			fmt.Fprintf(&b, `<li>%s</li>`, templ.EscapeString(subject))
		}
		b.WriteString("</ul></section>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
