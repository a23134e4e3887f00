package configs

import (
	"net/url"
	"os"
	"strconv"
	"strings"
)

const (
	SiteName        = "Ahmad Rafay Handwork"
	SiteDescription = "Traditional hand-embroidered shirts & trousers from Rajanpur. Quality embroidery at honest prices."
	SiteURL         = "https://ahmadrafayhandwork.com"

	defaultCurrency         = "PKR"
	defaultCountry          = "PK"
	defaultReturnWindowDays = 7
	defaultHandlingMinDays  = 1
	defaultHandlingMaxDays  = 2
	defaultTransitMinDays   = 2
	defaultTransitMaxDays   = 5
	defaultColor            = "Multi"
	defaultSize             = "One Size"
	defaultAgeGroup         = "adult"
	defaultGender           = "female"
)

// MerchantConfig collects every merchant-feed default in one struct,
// built once at process start from the GOOGLE_MERCHANT_* environment
// family. A negative or malformed value falls back to the default.
type MerchantConfig struct {
	Brand            string
	Currency         string
	TargetCountry    string
	DefaultColor     string
	DefaultSize      string
	AgeGroup         string
	Gender           string
	ReturnWindowDays int
	// ShippingPrice < 0 means "no shipping block in the feed".
	ShippingPrice    int64
	HandlingMinDays  int
	HandlingMaxDays  int
	TransitMinDays   int
	TransitMaxDays   int
}

func LoadMerchantConfig() MerchantConfig {
	handlingMin := positiveIntEnv("GOOGLE_MERCHANT_HANDLING_MIN_DAYS", defaultHandlingMinDays)
	handlingMax := positiveIntEnv("GOOGLE_MERCHANT_HANDLING_MAX_DAYS", defaultHandlingMaxDays)
	transitMin := positiveIntEnv("GOOGLE_MERCHANT_TRANSIT_MIN_DAYS", defaultTransitMinDays)
	transitMax := positiveIntEnv("GOOGLE_MERCHANT_TRANSIT_MAX_DAYS", defaultTransitMaxDays)

	return MerchantConfig{
		Brand:            stringEnv("GOOGLE_MERCHANT_BRAND", SiteName),
		Currency:         codeEnv("GOOGLE_MERCHANT_CURRENCY", defaultCurrency),
		TargetCountry:    codeEnv("GOOGLE_MERCHANT_TARGET_COUNTRY", defaultCountry),
		DefaultColor:     stringEnv("GOOGLE_MERCHANT_DEFAULT_COLOR", defaultColor),
		DefaultSize:      stringEnv("GOOGLE_MERCHANT_DEFAULT_SIZE", defaultSize),
		AgeGroup:         stringEnv("GOOGLE_MERCHANT_AGE_GROUP", defaultAgeGroup),
		Gender:           stringEnv("GOOGLE_MERCHANT_GENDER", defaultGender),
		ReturnWindowDays: positiveIntEnv("GOOGLE_MERCHANT_RETURN_DAYS", defaultReturnWindowDays),
		ShippingPrice:    nonNegativeInt64Env("GOOGLE_MERCHANT_SHIPPING_PRICE"),
		HandlingMinDays:  min(handlingMin, handlingMax),
		HandlingMaxDays:  max(handlingMin, handlingMax),
		TransitMinDays:   min(transitMin, transitMax),
		TransitMaxDays:   max(transitMin, transitMax),
	}
}

// BaseURL resolves the canonical site URL: APP_URL when it parses as an
// absolute URL, otherwise the hardcoded site URL. Trailing slashes are
// stripped so path joins stay predictable.
func BaseURL() string {
	raw := strings.TrimSpace(LoadENV.AppURL)
	if raw == "" {
		return SiteURL
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return SiteURL
	}
	return strings.TrimRight(parsed.String(), "/")
}

func stringEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func codeEnv(key, fallback string) string {
	v := strings.ToUpper(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return fallback
	}
	return v
}

func positiveIntEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func nonNegativeInt64Env(key string) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return -1
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil || parsed < 0 {
		return -1
	}
	return parsed
}
