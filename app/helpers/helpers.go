package helpers

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"github.com/leekchan/accounting"
	"golang.org/x/crypto/bcrypt"
)

// pakistanCountryCode prefixes local numbers when building wa.me links
// and feed contact numbers.
const pakistanCountryCode = "92"

var pkrFormatter = accounting.Accounting{Symbol: "Rs ", Precision: 0, Thousand: ","}

func GenerateSlug(s string) string {
	return slug.Make(s)
}

// FormatPrice renders an integer PKR amount for display, e.g. "Rs 2,500".
func FormatPrice(amount int64) string {
	return pkrFormatter.FormatMoney(amount)
}

// NormalizePhoneE164 strips non-digits and prefixes the Pakistani
// country code, returning "" when no digits remain.
func NormalizePhoneE164(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if d == "" {
		return ""
	}
	if strings.HasPrefix(d, pakistanCountryCode) {
		return "+" + d
	}
	if strings.HasPrefix(d, "0") {
		return "+" + pakistanCountryCode + d[1:]
	}
	return "+" + pakistanCountryCode + d
}

// WhatsAppLink builds a wa.me URL with a pre-filled inquiry message.
// productName may be empty for a general inquiry.
func WhatsAppLink(phone, siteName, productName string) string {
	normalized := strings.TrimPrefix(NormalizePhoneE164(phone), "+")
	if normalized == "" {
		return ""
	}

	var message string
	if productName != "" {
		message = fmt.Sprintf("Hi! I'm interested in %q from %s. Please share more details.", productName, siteName)
	} else {
		message = fmt.Sprintf("Hi! I'm interested in your products at %s. Please share more details.", siteName)
	}

	return "https://wa.me/" + normalized + "?text=" + url.QueryEscape(message)
}

// Truncate shortens text to length runes, appending an ellipsis.
func Truncate(text string, length int) string {
	runes := []rune(text)
	if len(runes) <= length {
		return text
	}
	return strings.TrimSpace(string(runes[:length])) + "..."
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", err.Field())
		case "email":
			errorMessages[field] = fmt.Sprintf("%s must be a valid email address.", err.Field())
		case "url":
			errorMessages[field] = fmt.Sprintf("%s must be a valid URL.", err.Field())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("%s failed %s validation.", err.Field(), err.Tag())
		}
	}
	return errorMessages
}

// JoinValidationErrors flattens a field-error map into one message for
// the JSON error envelope.
func JoinValidationErrors(fields map[string]string) string {
	parts := make([]string, 0, len(fields))
	for _, msg := range fields {
		parts = append(parts, msg)
	}
	return strings.Join(parts, " ")
}

func PasswordCompare(hashPass string, password []byte) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashPass), password)
	if err != nil {
		log.Printf("PasswordCompare: password does not match or error: %v", err)
		return false
	}
	return true
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return ""
	}
	return string(bytes)
}
