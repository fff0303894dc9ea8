package entity

import (
	"time"

	"github.com/google/uuid"
)

// Blog is a post summary; the body lives at ContentPath.
type Blog struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	Date        string    `json:"date"`
	ReadTime    string    `json:"readTime"`
	Featured    bool      `json:"featured"`
	ContentPath string    `json:"contentPath"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
