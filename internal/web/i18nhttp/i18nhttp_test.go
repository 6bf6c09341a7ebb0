package i18nhttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rjreducation/vsdcentre/internal/i18n"
	"github.com/rjreducation/vsdcentre/internal/web/platform/webctx"
	"golang.org/x/text/language"
)

func TestResolveTagPrefersQueryParam(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=ta", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})
	req.Header.Set("Accept-Language", "en-US")

	tag, persist := ResolveTag(req)
	if tag != i18n.Tamil {
		t.Fatalf("tag = %v, want %v", tag, i18n.Tamil)
	}
	if !persist {
		t.Fatal("query selection should persist")
	}
}

func TestResolveTagFallsBackToCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "ta"})
	req.Header.Set("Accept-Language", "en-US")

	tag, persist := ResolveTag(req)
	if tag != i18n.Tamil {
		t.Fatalf("tag = %v, want %v", tag, i18n.Tamil)
	}
	if persist {
		t.Fatal("cookie selection should not re-persist")
	}
}

func TestResolveTagIgnoresUnsupportedQueryValue(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "ta"})

	tag, persist := ResolveTag(req)
	if tag != i18n.Tamil {
		t.Fatalf("tag = %v, want cookie fallback %v", tag, i18n.Tamil)
	}
	if persist {
		t.Fatal("unsupported query value should not persist")
	}
}

func TestResolveTagUsesAcceptLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "ta-IN,ta;q=0.9,en;q=0.5")

	tag, _ := ResolveTag(req)
	if tag != i18n.Tamil {
		t.Fatalf("tag = %v, want %v", tag, i18n.Tamil)
	}
}

func TestResolveTagDefaultsToEnglish(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	tag, persist := ResolveTag(req)
	if tag != i18n.English {
		t.Fatalf("tag = %v, want %v", tag, i18n.English)
	}
	if persist {
		t.Fatal("default should not persist")
	}
}

func TestSetLanguageCookie(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	SetLanguageCookie(rec, i18n.Tamil)

	var found *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == LangCookieName {
			found = cookie
		}
	}
	if found == nil {
		t.Fatal("language cookie was not set")
	}
	if found.Value != "ta" {
		t.Fatalf("cookie value = %q", found.Value)
	}
	if found.MaxAge <= 0 {
		t.Fatalf("cookie max age = %d, want persistent", found.MaxAge)
	}
}

func TestMiddlewareInjectsLocalizerAndPersistsSelection(t *testing.T) {
	t.Parallel()

	handler := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc := webctx.Localizer(r.Context())
		if got := loc.Sprintf("nav.home"); got != "முகப்பு" {
			t.Errorf("localized nav.home = %q", got)
		}
		if webctx.Language(r.Context()) != i18n.Tamil {
			t.Errorf("language = %v", webctx.Language(r.Context()))
		}
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?lang=ta", nil))

	persisted := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == LangCookieName && cookie.Value == "ta" {
			persisted = true
		}
	}
	if !persisted {
		t.Fatal("explicit selection was not persisted")
	}
}

func TestBuildLanguageOptionsMarksActive(t *testing.T) {
	t.Parallel()

	options := BuildLanguageOptions(Supported(), "ta", func(tag language.Tag) string {
		return LanguageKeyLabel(tag)
	})
	if len(options) != 2 {
		t.Fatalf("options = %d, want 2", len(options))
	}
	activeCount := 0
	for _, option := range options {
		if option.Active {
			activeCount++
			if option.Tag != "ta" {
				t.Fatalf("active tag = %q", option.Tag)
			}
		}
	}
	if activeCount != 1 {
		t.Fatalf("active count = %d", activeCount)
	}
}

func TestActiveLanguageLabel(t *testing.T) {
	t.Parallel()

	options := []LanguageOption{
		{Tag: "en", Label: "EN"},
		{Tag: "ta", Label: "தமிழ்", Active: true},
	}
	if got := ActiveLanguageLabel(options); got != "தமிழ்" {
		t.Fatalf("ActiveLanguageLabel() = %q", got)
	}
	if got := ActiveLanguageLabel(nil); got != "" {
		t.Fatalf("ActiveLanguageLabel(nil) = %q", got)
	}
}

func TestLanguageURLPreservesQuery(t *testing.T) {
	t.Parallel()

	got := LanguageURL("/contact", "ref=footer", "ta")
	if got != "/contact?lang=ta&ref=footer" {
		t.Fatalf("LanguageURL() = %q", got)
	}
}

func TestLanguageKeyLabel(t *testing.T) {
	t.Parallel()

	if got := LanguageKeyLabel(i18n.English); got != "nav.lang_en" {
		t.Fatalf("LanguageKeyLabel(en) = %q", got)
	}
	if got := LanguageKeyLabel(i18n.Tamil); got != "nav.lang_ta" {
		t.Fatalf("LanguageKeyLabel(ta) = %q", got)
	}
}
