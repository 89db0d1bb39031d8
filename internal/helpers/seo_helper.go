package helpers

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kalakritam/kalakritam-api/internal/models"
)

// Content types accepted by the SEO generator.
const (
	SEOTypeArtwork  = "artwork"
	SEOTypeArtist   = "artist"
	SEOTypeEvent    = "event"
	SEOTypeWorkshop = "workshop"
	SEOTypeBlog     = "blog"
	SEOTypeGeneral  = "general"
)

const (
	metaTitleMax       = 60
	metaDescriptionMax = 155
	ogDescriptionMax   = 200
	maxKeywords        = 10
)

// SEOInput carries the source fields SEO metadata is derived from.
type SEOInput struct {
	Title       string
	Description string
	Category    string
	Image       string
}

var titleSuffixes = map[string]string{
	SEOTypeArtwork:  "Original Artwork",
	SEOTypeArtist:   "Artist Profile",
	SEOTypeEvent:    "Art Event",
	SEOTypeWorkshop: "Art Workshop",
	SEOTypeBlog:     "Art Blog",
	SEOTypeGeneral:  "Art Gallery",
}

var baseKeywords = []string{"kalakritam", "art gallery", "indian art", "artworks"}

var typeKeywords = map[string][]string{
	SEOTypeArtwork:  {"original art", "buy art online"},
	SEOTypeArtist:   {"artists", "art portfolio"},
	SEOTypeEvent:    {"art events", "exhibitions"},
	SEOTypeWorkshop: {"art workshops", "art classes"},
	SEOTypeBlog:     {"art blog", "art articles"},
	SEOTypeGeneral:  {"art", "culture"},
}

// artTerms is the fixed vocabulary scanned for in the title+description text.
var artTerms = []string{
	"painting", "sculpture", "canvas", "acrylic", "watercolor",
	"oil painting", "sketch", "portrait", "abstract", "contemporary",
	"traditional", "madhubani", "warli", "tanjore", "mural",
}

var (
	slugStripPattern    = regexp.MustCompile(`[^a-z0-9\s-]+`)
	slugCollapsePattern = regexp.MustCompile(`[\s-]+`)
)

// GenerateSlug derives a URL-safe identifier from a title: lowercase, strip
// punctuation, collapse whitespace and hyphen runs to a single hyphen, trim
// leading and trailing hyphens. Idempotent.
func GenerateSlug(s string) string {
	s = strings.ToLower(s)
	s = slugStripPattern.ReplaceAllString(s, "")
	s = slugCollapsePattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// truncateWithEllipsis limits s to max characters. Counting runes, not
// bytes, so multi-byte titles are never cut mid-character.
func truncateWithEllipsis(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}

func titleSuffix(contentType string) string {
	if suffix, ok := titleSuffixes[contentType]; ok {
		return suffix
	}
	return titleSuffixes[SEOTypeGeneral]
}

func GenerateMetaTitle(contentType, title string) string {
	full := fmt.Sprintf("%s - %s | Kalakritam", title, titleSuffix(contentType))
	return truncateWithEllipsis(full, metaTitleMax)
}

func GenerateOGTitle(contentType, title string) string {
	return GenerateMetaTitle(contentType, title)
}

func descriptionTemplate(contentType, title, description string) string {
	switch contentType {
	case SEOTypeArtwork:
		return fmt.Sprintf("Discover %s, an original artwork at Kalakritam. %s", title, description)
	case SEOTypeArtist:
		return fmt.Sprintf("Meet %s, a featured artist at Kalakritam. %s", title, description)
	case SEOTypeEvent:
		return fmt.Sprintf("Join us for %s at Kalakritam. %s", title, description)
	case SEOTypeWorkshop:
		return fmt.Sprintf("Learn at %s, an art workshop by Kalakritam. %s", title, description)
	case SEOTypeBlog:
		return fmt.Sprintf("%s - read more on the Kalakritam art blog. %s", title, description)
	default:
		return fmt.Sprintf("%s at Kalakritam. %s", title, description)
	}
}

func GenerateMetaDescription(contentType, title, description string) string {
	return truncateWithEllipsis(descriptionTemplate(contentType, title, description), metaDescriptionMax)
}

func GenerateOGDescription(contentType, title, description string) string {
	return truncateWithEllipsis(descriptionTemplate(contentType, title, description), ogDescriptionMax)
}

// GenerateMetaKeywords unions the base set, the type-specific set, the
// category and any art-vocabulary terms found in the title+description text,
// deduplicated in that order and capped at ten terms.
func GenerateMetaKeywords(contentType string, input SEOInput) string {
	text := strings.ToLower(input.Title + " " + input.Description)

	candidates := make([]string, 0, maxKeywords)
	candidates = append(candidates, baseKeywords...)
	candidates = append(candidates, typeKeywords[contentType]...)
	if input.Category != "" {
		candidates = append(candidates, strings.ToLower(input.Category))
	}
	for _, term := range artTerms {
		if strings.Contains(text, term) {
			candidates = append(candidates, term)
		}
	}

	seen := make(map[string]bool, len(candidates))
	keywords := make([]string, 0, maxKeywords)
	for _, kw := range candidates {
		if seen[kw] {
			continue
		}
		seen[kw] = true
		keywords = append(keywords, kw)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return strings.Join(keywords, ", ")
}

// GenerateSEOFields produces the full metadata set for a content type from a
// title/description pair. Used by admin handlers when a payload omits them.
func GenerateSEOFields(contentType string, input SEOInput) models.SEOFields {
	return models.SEOFields{
		MetaTitle:       GenerateMetaTitle(contentType, input.Title),
		MetaDescription: GenerateMetaDescription(contentType, input.Title, input.Description),
		MetaKeywords:    GenerateMetaKeywords(contentType, input),
		Slug:            GenerateSlug(input.Title),
		OGTitle:         GenerateOGTitle(contentType, input.Title),
		OGDescription:   GenerateOGDescription(contentType, input.Title, input.Description),
		OGImage:         input.Image,
	}
}
