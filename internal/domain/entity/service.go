package entity

import (
	"time"

	"github.com/google/uuid"
)

// Service defaults
const (
	DefaultServiceColor = "blue"
)

// CatalogService is an offered service card. The name avoids clashing with the domain/service package.
type CatalogService struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Features    []string  `json:"features"`
	Price       string    `json:"price"`
	Color       string    `json:"color"`
	Popular     bool      `json:"popular"`
	Order       int       `json:"order"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
