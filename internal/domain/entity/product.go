// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/google/uuid"
)

// MaxProductImages caps the image set of a single product.
const MaxProductImages = 5

// Product is a catalog item with an ordered set of remotely hosted images.
type Product struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	Images        []string  `json:"images"`
	Badge         string    `json:"badge"`
	InStock       bool      `json:"inStock"`
	Specs         []string  `json:"specs"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// PrimaryImage returns the first image URL, or "" when the product has none.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0]
}

// AvailableImageSlots reports how many more images the product can take.
func (p *Product) AvailableImageSlots() int {
	return max(MaxProductImages-len(p.Images), 0)
}

// HasImage reports whether url is currently attached.
func (p *Product) HasImage(url string) bool {
	return slices.Contains(p.Images, url)
}

// MarshalJSON adds the derived "image" field and renders nil lists as [].
func (p Product) MarshalJSON() ([]byte, error) {
	type alias Product

	out := struct {
		alias
		Image string `json:"image"`
	}{
		alias: alias(p),
		Image: p.PrimaryImage(),
	}
	if out.Images == nil {
		out.Images = []string{}
	}
	if out.Specs == nil {
		out.Specs = []string{}
	}

	return json.Marshal(out)
}

// RetainAttached keeps the entries of candidates that are attached to the product,
// preserving candidate order and dropping duplicates.
func (p *Product) RetainAttached(candidates []string) []string {
	kept := make([]string, 0, len(candidates))
	for _, url := range candidates {
		if p.HasImage(url) && !slices.Contains(kept, url) {
			kept = append(kept, url)
		}
	}

	return kept
}

// MergeImages places existing first, then incoming, truncated to MaxProductImages.
func MergeImages(existing, incoming []string) []string {
	merged := make([]string, 0, min(len(existing)+len(incoming), MaxProductImages))
	merged = append(merged, existing...)
	merged = append(merged, incoming...)
	if len(merged) > MaxProductImages {
		merged = merged[:MaxProductImages]
	}

	return merged
}

// DroppedImages returns the entries of before that are absent from after.
func DroppedImages(before, after []string) []string {
	var dropped []string
	for _, url := range before {
		if !slices.Contains(after, url) {
			dropped = append(dropped, url)
		}
	}

	return dropped
}

// RemoveImageAt removes the image at index and returns its URL.
// ok is false when index is out of range; the product is left untouched then.
func (p *Product) RemoveImageAt(index int) (removed string, ok bool) {
	if index < 0 || index >= len(p.Images) {
		return "", false
	}

	removed = p.Images[index]
	p.Images = slices.Delete(slices.Clone(p.Images), index, index+1)

	return removed, true
}
