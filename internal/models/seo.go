package models

// SEOFields is embedded in every publicly listed content entity. Fields left
// empty on create/update are filled in server-side by the SEO generator.
type SEOFields struct {
	MetaTitle       string `gorm:"size:70" json:"meta_title"`
	MetaDescription string `gorm:"size:160" json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords"`
	Slug            string `gorm:"index" json:"slug"`
	OGTitle         string `gorm:"size:70" json:"og_title"`
	OGDescription   string `gorm:"size:210" json:"og_description"`
	OGImage         string `json:"og_image"`
}
