package report

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

func Money(value float64) string {
	cents := math.Round(value * 100)
	if cents < 0 {
		return "-$" + printer.Sprintf("%.2f", -cents/100)
	}
	return "$" + printer.Sprintf("%.2f", math.Abs(cents)/100)
}

func Count(value float64) string {
	return printer.Sprintf("%.0f", value)
}
