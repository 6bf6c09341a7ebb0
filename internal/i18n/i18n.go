// Package i18n holds the bilingual string dictionary for the site.
//
// Two locales are supported: English ("en") and Tamil ("ta"). Messages are
// registered with x/text so handlers can resolve a printer per request. A key
// missing from the active locale renders as the raw key string, which is the
// visible signal of an incomplete translation.
package i18n

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// English and Tamil are the only locales the site serves.
var (
	English = language.English
	Tamil   = language.Tamil
)

func init() {
	register(English, messagesEN)
	register(Tamil, messagesTA)
}

func register(tag language.Tag, messages map[string]string) {
	keys := make([]string, 0, len(messages))
	for key := range messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		message.SetString(tag, key, messages[key])
	}
}

// SupportedTags returns the list of supported language tags.
func SupportedTags() []language.Tag {
	return []language.Tag{English, Tamil}
}

// DefaultTag returns the default language tag.
func DefaultTag() language.Tag {
	return English
}

// ParseTag parses a locale code, accepting only the supported values.
func ParseTag(value string) (language.Tag, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "en":
		return English, true
	case "ta":
		return Tamil, true
	default:
		return language.Tag{}, false
	}
}

// MatchTags returns the best supported tag for the caller's preferences.
func MatchTags(preferred []language.Tag) language.Tag {
	matcher := language.NewMatcher(SupportedTags())
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return DefaultTag()
	}
	return SupportedTags()[index]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// Keys returns the sorted dictionary keys for a locale.
func Keys(tag language.Tag) []string {
	messages := messagesFor(tag)
	keys := make([]string, 0, len(messages))
	for key := range messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// MissingKeys reports dictionary keys present in one locale but not the other,
// keyed by the locale missing them. An empty result means the dictionaries
// cover the same key set.
func MissingKeys() map[string][]string {
	missing := make(map[string][]string)
	for key := range messagesEN {
		if _, ok := messagesTA[key]; !ok {
			missing[Tamil.String()] = append(missing[Tamil.String()], key)
		}
	}
	for key := range messagesTA {
		if _, ok := messagesEN[key]; !ok {
			missing[English.String()] = append(missing[English.String()], key)
		}
	}
	for locale := range missing {
		sort.Strings(missing[locale])
	}
	return missing
}

func messagesFor(tag language.Tag) map[string]string {
	if tag == Tamil {
		return messagesTA
	}
	return messagesEN
}
