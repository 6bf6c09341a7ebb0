package site

import (
	"net/http"

	"github.com/rjreducation/vsdcentre/internal/web/routepath"
	"github.com/rjreducation/vsdcentre/internal/web/static"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" /{$}", h.handleHome)
	mux.Handle(http.MethodGet+" /static/", http.StripPrefix("/static/", static.Handler()))
	mux.HandleFunc(http.MethodGet+" "+routepath.About, h.handleAbout)
	mux.HandleFunc(http.MethodGet+" "+routepath.Affiliation, h.handleAffiliation)
	mux.HandleFunc(http.MethodGet+" "+routepath.Course, h.handleCourse)
	mux.HandleFunc(http.MethodGet+" "+routepath.Contact, h.handleContactPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.Contact, h.handleContactSubmit)
}
