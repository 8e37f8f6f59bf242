// Package translate renders user visible text through a locale aware
// message printer.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("cieasm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage replaces the printer with one for the given BCP 47 tag.
// Unparseable tags fall back to en-US.
func SetLanguage(tag string) {
	lang, err := language.Parse(tag)
	if err != nil {
		log.Printf("cieasm: language %q: %v", tag, err)
		lang = language.AmericanEnglish
	}

	printer = message.NewPrinter(lang)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
