package entity

import "time"

// Article is a published content item. Slug is derived from the title at
// creation and unique across all articles. Image holds the public path of
// an uploaded file (may be empty).
type Article struct {
	ID         string
	Title      string
	Slug       string
	Content    string
	CategoryID string
	Image      string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Category is populated on reads that join the category row; nil when
	// the article was loaded without it.
	Category *Category
}
