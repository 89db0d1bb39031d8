package helpers

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Madhubani Dreams":              "madhubani-dreams",
		"  Sunset   over  Hampi  ":      "sunset-over-hampi",
		"Warli: The Living Art!":        "warli-the-living-art",
		"already-a-slug":                "already-a-slug",
		"--- leading & trailing ---":    "leading-trailing",
		"Ékphrasis (mixed) 2024 Show??": "kphrasis-mixed-2024-show",
		"!!!":                           "",
	}
	for input, want := range cases {
		assert.Equal(t, want, GenerateSlug(input), "input %q", input)
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	inputs := []string{
		"Madhubani Dreams", "A   B   C", "Art & Soul: Pichwai!", "", "   ",
	}
	for _, input := range inputs {
		once := GenerateSlug(input)
		assert.Equal(t, once, GenerateSlug(once), "input %q", input)
		if once != "" {
			assert.Regexp(t, slugPattern, once)
		}
	}
}

func TestGenerateMetaTitleLength(t *testing.T) {
	short := GenerateMetaTitle(SEOTypeArtwork, "Lotus")
	assert.LessOrEqual(t, len(short), 60)
	assert.False(t, strings.HasSuffix(short, "..."))
	assert.Contains(t, short, "| Kalakritam")

	long := GenerateMetaTitle(SEOTypeArtwork, strings.Repeat("Very Long Artwork Title ", 5))
	assert.Len(t, long, 60)
	assert.True(t, strings.HasSuffix(long, "..."))

	assert.Equal(t, GenerateMetaTitle(SEOTypeEvent, "Lotus"), GenerateOGTitle(SEOTypeEvent, "Lotus"))
}

func TestGenerateMetaTitleMultiByte(t *testing.T) {
	title := "a" + strings.Repeat("म", 40)

	metaTitle := GenerateMetaTitle(SEOTypeArtwork, title)
	assert.True(t, utf8.ValidString(metaTitle), "meta title must be valid UTF-8")
	assert.LessOrEqual(t, utf8.RuneCountInString(metaTitle), 60)
	assert.True(t, strings.HasSuffix(metaTitle, "..."))

	description := strings.Repeat("कलाकृतम् में मधुबनी कला ", 20)
	metaDescription := GenerateMetaDescription(SEOTypeArtwork, title, description)
	assert.True(t, utf8.ValidString(metaDescription), "meta description must be valid UTF-8")
	assert.LessOrEqual(t, utf8.RuneCountInString(metaDescription), 155)
}

func TestGenerateDescriptionLengths(t *testing.T) {
	longDescription := strings.Repeat("An exploration of color and memory. ", 20)

	meta := GenerateMetaDescription(SEOTypeBlog, "On Pigments", longDescription)
	assert.LessOrEqual(t, len(meta), 155)
	assert.True(t, strings.HasSuffix(meta, "..."))

	og := GenerateOGDescription(SEOTypeBlog, "On Pigments", longDescription)
	assert.LessOrEqual(t, len(og), 200)
	assert.True(t, strings.HasSuffix(og, "..."))

	shortMeta := GenerateMetaDescription(SEOTypeArtwork, "Lotus", "Oil on canvas.")
	assert.False(t, strings.HasSuffix(shortMeta, "..."))
	assert.Contains(t, shortMeta, "Lotus")
}

func TestGenerateMetaKeywords(t *testing.T) {
	input := SEOInput{
		Title:       "Abstract Watercolor Study",
		Description: "A contemporary painting exploring madhubani motifs on canvas.",
		Category:    "Painting",
	}
	keywords := GenerateMetaKeywords(SEOTypeArtwork, input)
	parts := strings.Split(keywords, ", ")

	assert.LessOrEqual(t, len(parts), 10)
	assert.Contains(t, parts, "kalakritam")
	assert.Contains(t, parts, "painting")

	seen := map[string]bool{}
	for _, part := range parts {
		assert.False(t, seen[part], "duplicate keyword %q", part)
		seen[part] = true
	}
}

func TestGenerateMetaKeywordsCapped(t *testing.T) {
	input := SEOInput{
		Title:       "painting sculpture canvas acrylic watercolor sketch",
		Description: "portrait abstract contemporary traditional madhubani warli tanjore mural oil painting",
		Category:    "mixed media",
	}
	keywords := GenerateMetaKeywords(SEOTypeGeneral, input)
	assert.Len(t, strings.Split(keywords, ", "), 10)
}

func TestGenerateSEOFields(t *testing.T) {
	fields := GenerateSEOFields(SEOTypeWorkshop, SEOInput{
		Title:       "Warli Painting Basics",
		Description: "A weekend introduction to Warli painting.",
		Image:       "/uploads/workshops/warli.jpg",
	})

	require.NotEmpty(t, fields.MetaTitle)
	assert.Equal(t, "warli-painting-basics", fields.Slug)
	assert.Equal(t, fields.MetaTitle, fields.OGTitle)
	assert.Equal(t, "/uploads/workshops/warli.jpg", fields.OGImage)
	assert.LessOrEqual(t, len(fields.MetaDescription), 155)
	assert.LessOrEqual(t, len(fields.OGDescription), 200)
}
