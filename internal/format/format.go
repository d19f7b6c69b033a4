// Package format renders money and calendar dates for display, localized
// through golang.org/x/text. Nothing here affects stored values.
package format

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/pkordes/trip-planner/internal/domain"
)

// DefaultLocale is used when no locale is configured or it fails to parse.
const DefaultLocale = "vi-VN"

// Formatter formats values for one locale. It is safe for concurrent use.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Formatter for the BCP 47 locale. An empty or malformed
// locale falls back to DefaultLocale.
func New(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.MustParse(DefaultLocale)
	}
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}
}

// Locale returns the locale tag in use.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Currency formats amount in the ISO 4217 currency code, for example
// "59.760.000 ₫" in vi-VN. Amounts are rounded to the currency's standard
// number of fraction digits. Codes unknown to CLDR are printed as-is with
// two fraction digits.
func (f *Formatter) Currency(amount float64, code string) string {
	code = strings.ToUpper(code)
	unit, err := currency.ParseISO(code)
	if err != nil {
		return f.printer.Sprint(number.Decimal(amount, number.Scale(2))) + " " + code
	}
	scale, _ := currency.Standard.Rounding(unit)
	sym := f.printer.Sprint(currency.Symbol(unit))
	return f.printer.Sprint(number.Decimal(amount, number.Scale(scale))) + " " + sym
}

// Date formats a "2006-01-02" calendar date for display. US English gets
// month-first "Jan 2, 2006"; every other locale gets day-first "02/01/2006".
// Malformed input is returned unchanged.
func (f *Formatter) Date(date string) string {
	t, err := domain.ParseDate(date)
	if err != nil {
		return date
	}
	if region, _ := f.tag.Region(); region.String() == "US" {
		return t.Format("Jan 2, 2006")
	}
	return t.Format("02/01/2006")
}
