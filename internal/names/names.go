// Package names serves localized display names for Hebrew and Gregorian
// months, weekdays and holidays. Translations live in embedded go-i18n
// message files; lookups for a locale without a translation fall back to
// English.
package names

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/baruchs/hebdate/internal/holidays"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error

	supported []string
)

func loadBundle() {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		bundleErr = fmt.Errorf("reading embedded locales: %w", err)
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if _, err := b.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			bundleErr = fmt.Errorf("loading locale file %s: %w", name, err)
			return
		}
		code := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		supported = append(supported, code)
	}
	bundle = b
}

// SupportedLocales lists the locale codes with an embedded message file.
func SupportedLocales() []string {
	bundleOnce.Do(loadBundle)
	return append([]string(nil), supported...)
}

// Localizer resolves message IDs for one locale.
type Localizer struct {
	loc *i18n.Localizer
}

// New returns a Localizer for the given locale code, such as "en" or
// "he". Unknown locales are accepted and resolve everything through the
// English fallback.
func New(locale string) (*Localizer, error) {
	bundleOnce.Do(loadBundle)
	if bundleErr != nil {
		return nil, bundleErr
	}
	return &Localizer{loc: i18n.NewLocalizer(bundle, locale)}, nil
}

func (l *Localizer) lookup(id string) string {
	// Localize reports a MessageNotFoundError while still returning the
	// default-language text, so the message wins over the error.
	msg, _ := l.loc.Localize(&i18n.LocalizeConfig{MessageID: id})
	return msg
}

// HebrewMonth names a Hebrew month number, 1 Tishrei through 12 Elul
// plus 13 and 14 for Adar I and Adar II.
func (l *Localizer) HebrewMonth(month int) string {
	if month < 1 || month > 14 {
		return ""
	}
	return l.lookup(fmt.Sprintf("hebrew.month.%d", month))
}

// GregorianMonth names a Gregorian month number 1 through 12.
func (l *Localizer) GregorianMonth(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return l.lookup(fmt.Sprintf("gregorian.month.%d", month))
}

// GregorianMonthShort returns the three-letter month abbreviation.
func (l *Localizer) GregorianMonthShort(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return l.lookup(fmt.Sprintf("gregorian.month.short.%d", month))
}

// Weekday names a day of the week, 1 Sunday through 7 Shabbat.
func (l *Localizer) Weekday(day int) string {
	if day < 1 || day > 7 {
		return ""
	}
	return l.lookup(fmt.Sprintf("weekday.%d", day))
}

// WeekdayShort returns the abbreviated weekday name.
func (l *Localizer) WeekdayShort(day int) string {
	if day < 1 || day > 7 {
		return ""
	}
	return l.lookup(fmt.Sprintf("weekday.short.%d", day))
}

// Holiday names a holiday in long or short form. None yields the empty
// string.
func (l *Localizer) Holiday(h holidays.Holiday, short bool) string {
	if h <= holidays.None || h > holidays.YomYerushalayim {
		return ""
	}
	if short {
		return l.lookup(fmt.Sprintf("holiday.short.%d", int(h)))
	}
	return l.lookup(fmt.Sprintf("holiday.%d", int(h)))
}
