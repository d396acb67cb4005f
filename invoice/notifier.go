package invoice

import (
	"fmt"
	"net/url"
	"regexp"
)

var nonDigits = regexp.MustCompile(`\D`)

// BuildShareLink prepares a WhatsApp deep link carrying the invoice URL for
// the given contact number. The number is normalized to digits only and must
// keep at least 10 digits. Delivery itself happens in the external chat app;
// no network call is made here.
func BuildShareLink(contact, invoiceURL string) (string, error) {
	digits := nonDigits.ReplaceAllString(contact, "")
	if len(digits) < 10 {
		return "", ErrInvalidPhone
	}

	message := fmt.Sprintf("Hello, please find your invoice here: %s", invoiceURL)
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message)), nil
}
