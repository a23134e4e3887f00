package services

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/apperrors"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/configs"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/models"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/repositories"
	"github.com/shopspring/decimal"
)

const (
	maxFeedDescriptionLen    = 5000
	maxAdditionalImagesInFeed = 9
)

var googleCategoryBySlug = map[string]string{
	"shirts":   "Apparel & Accessories > Clothing > Shirts & Tops",
	"trousers": "Apparel & Accessories > Clothing > Pants",
}

const fallbackGoogleCategory = "Apparel & Accessories > Clothing"

var (
	xmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

func EscapeXML(value string) string {
	return xmlEscaper.Replace(value)
}

func StripHTML(value string) string {
	stripped := htmlTagPattern.ReplaceAllString(value, " ")
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(stripped, " "))
}

// BuildProductDescription cleans a stored description for the feed,
// falling back to "Name by Brand." and capping at the feed's limit.
func BuildProductDescription(description, productName, brand string) string {
	clean := StripHTML(description)
	if clean == "" {
		clean = fmt.Sprintf("%s by %s.", productName, brand)
	}
	if len(clean) > maxFeedDescriptionLen {
		clean = clean[:maxFeedDescriptionLen]
	}
	return clean
}

// FormatMerchantPrice renders a price the way the feed schema expects,
// e.g. "2500.00 PKR".
func FormatMerchantPrice(amount int64, currency string) string {
	return decimal.NewFromInt(amount).StringFixed(2) + " " + currency
}

// ToAbsoluteURL resolves value against baseURL unless it already is an
// absolute URL.
func ToAbsoluteURL(value, baseURL string) string {
	parsed, err := url.Parse(value)
	if err == nil && parsed.Scheme != "" && parsed.Host != "" {
		return parsed.String()
	}
	if !strings.HasPrefix(value, "/") {
		value = "/" + value
	}
	return strings.TrimRight(baseURL, "/") + value
}

// FeedService derives the merchant product feed and the sitemap from
// catalog reads. Both are recomputed per request; nothing is cached.
type FeedService struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	merchant     configs.MerchantConfig
	baseURL      string
}

func NewFeedService(
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	merchant configs.MerchantConfig,
	baseURL string,
) *FeedService {
	return &FeedService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		merchant:     merchant,
		baseURL:      strings.TrimRight(baseURL, "/"),
	}
}

func (s *FeedService) MerchantFeedXML(ctx context.Context) (string, error) {
	products, err := s.productRepo.ListForFeed(ctx)
	if err != nil {
		return "", apperrors.Store(err)
	}
	return BuildMerchantFeedXML(products, s.merchant, s.baseURL), nil
}

func (s *FeedService) SitemapXML(ctx context.Context) (string, error) {
	products, err := s.productRepo.ListForFeed(ctx)
	if err != nil {
		return "", apperrors.Store(err)
	}
	categories, err := s.categoryRepo.GetAllWithCounts(ctx)
	if err != nil {
		return "", apperrors.Store(err)
	}

	categoryRows := make([]models.Category, len(categories))
	for i, c := range categories {
		categoryRows[i] = c.Category
	}
	return BuildSitemapXML(products, categoryRows, s.baseURL), nil
}

func (s *FeedService) RobotsTxt() string {
	return strings.Join([]string{
		"User-agent: *",
		"Allow: /",
		"Disallow: /admin/",
		"Disallow: /api/",
		"",
		"Sitemap: " + s.baseURL + "/sitemap.xml",
		"",
	}, "\n")
}

// BuildMerchantFeedXML renders the Google Merchant RSS document. A
// product without any image produces no item at all; a feed item with
// no image is invalid for the target schema.
func BuildMerchantFeedXML(products []models.Product, merchant configs.MerchantConfig, baseURL string) string {
	var items []string
	for _, product := range products {
		item := buildProductItemXML(product, merchant, baseURL)
		if item != "" {
			items = append(items, item)
		}
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<rss version="2.0" xmlns:g="http://base.google.com/ns/1.0">` + "\n")
	b.WriteString("<channel>\n")
	b.WriteString("<title>" + EscapeXML(configs.SiteName) + " Product Feed</title>\n")
	b.WriteString("<link>" + EscapeXML(baseURL) + "</link>\n")
	b.WriteString("<description>" + EscapeXML(configs.SiteDescription) + "</description>\n")
	b.WriteString(strings.Join(items, "\n"))
	b.WriteString("\n</channel>\n</rss>\n")
	return b.String()
}

func buildProductItemXML(product models.Product, merchant configs.MerchantConfig, baseURL string) string {
	if len(product.Images) == 0 {
		return ""
	}

	productURL := baseURL + "/product/" + url.PathEscape(product.Slug)
	description := BuildProductDescription(product.Description, product.Name, merchant.Brand)
	availability := "out_of_stock"
	if product.InStock {
		availability = "in_stock"
	}

	primaryImage := ToAbsoluteURL(product.Images[0].URL, baseURL)
	var additionalImages strings.Builder
	for i, image := range product.Images[1:] {
		if i >= maxAdditionalImagesInFeed {
			break
		}
		additionalImages.WriteString("<g:additional_image_link>" + EscapeXML(ToAbsoluteURL(image.URL, baseURL)) + "</g:additional_image_link>")
	}

	shippingBlock := ""
	if merchant.ShippingPrice >= 0 {
		shippingBlock = "<g:shipping><g:country>" + EscapeXML(merchant.TargetCountry) +
			"</g:country><g:service>Standard</g:service><g:price>" +
			EscapeXML(FormatMerchantPrice(merchant.ShippingPrice, merchant.Currency)) +
			"</g:price></g:shipping>"
	}

	googleCategory, ok := googleCategoryBySlug[product.Category.Slug]
	if !ok {
		googleCategory = fallbackGoogleCategory
	}

	var b strings.Builder
	b.WriteString("<item>\n")
	b.WriteString("<g:id>" + EscapeXML(product.ID) + "</g:id>\n")
	b.WriteString("<title>" + EscapeXML(product.Name) + "</title>\n")
	b.WriteString("<description>" + EscapeXML(description) + "</description>\n")
	b.WriteString("<link>" + EscapeXML(productURL) + "</link>\n")
	b.WriteString("<g:image_link>" + EscapeXML(primaryImage) + "</g:image_link>\n")
	b.WriteString(additionalImages.String() + "\n")
	b.WriteString("<g:availability>" + availability + "</g:availability>\n")
	b.WriteString("<g:price>" + EscapeXML(FormatMerchantPrice(product.Price, merchant.Currency)) + "</g:price>\n")
	b.WriteString("<g:condition>new</g:condition>\n")
	b.WriteString("<g:brand>" + EscapeXML(merchant.Brand) + "</g:brand>\n")
	b.WriteString("<g:google_product_category>" + EscapeXML(googleCategory) + "</g:google_product_category>\n")
	b.WriteString("<g:product_type>" + EscapeXML(product.Category.Name) + "</g:product_type>\n")
	b.WriteString("<g:identifier_exists>no</g:identifier_exists>\n")
	b.WriteString("<g:age_group>" + EscapeXML(merchant.AgeGroup) + "</g:age_group>\n")
	b.WriteString("<g:gender>" + EscapeXML(merchant.Gender) + "</g:gender>\n")
	b.WriteString("<g:color>" + EscapeXML(merchant.DefaultColor) + "</g:color>\n")
	b.WriteString("<g:size>" + EscapeXML(merchant.DefaultSize) + "</g:size>\n")
	b.WriteString(shippingBlock + "\n")
	b.WriteString("</item>")
	return b.String()
}

type sitemapEntry struct {
	loc        string
	lastMod    time.Time
	changeFreq string
	priority   string
}

// BuildSitemapXML lists the static pages, one gallery URL per category
// and one product page per in-stock product.
func BuildSitemapXML(products []models.Product, categories []models.Category, baseURL string) string {
	now := time.Now()
	entries := []sitemapEntry{
		{loc: baseURL, lastMod: now, changeFreq: "daily", priority: "1.0"},
		{loc: baseURL + "/gallery", lastMod: now, changeFreq: "daily", priority: "0.9"},
	}

	for _, category := range categories {
		entries = append(entries, sitemapEntry{
			loc:        baseURL + "/gallery?category=" + url.QueryEscape(category.Slug),
			lastMod:    category.UpdatedAt,
			changeFreq: "weekly",
			priority:   "0.8",
		})
	}
	for _, product := range products {
		if !product.InStock {
			continue
		}
		entries = append(entries, sitemapEntry{
			loc:        baseURL + "/product/" + url.PathEscape(product.Slug),
			lastMod:    product.UpdatedAt,
			changeFreq: "weekly",
			priority:   "0.7",
		})
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, entry := range entries {
		b.WriteString("<url>")
		b.WriteString("<loc>" + EscapeXML(entry.loc) + "</loc>")
		b.WriteString("<lastmod>" + entry.lastMod.UTC().Format(time.RFC3339) + "</lastmod>")
		b.WriteString("<changefreq>" + entry.changeFreq + "</changefreq>")
		b.WriteString("<priority>" + entry.priority + "</priority>")
		b.WriteString("</url>\n")
	}
	b.WriteString("</urlset>\n")
	return b.String()
}
