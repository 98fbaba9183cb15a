package domain

import "strings"

// Item is a catalog entry (a game) with everything needed to render it.
type Item struct {
	Meta
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	ReleaseDate     string   `json:"release_date,omitempty"`
	PublisherID     string   `json:"publisher_id,omitempty"`
	CoverURL        string   `json:"cover_url,omitempty"`
	Screenshots     []string `json:"screenshots,omitempty"`
	Platforms       []string `json:"platforms,omitempty"`
	MinRequirements string   `json:"min_requirements,omitempty"`
	TagNames        []string `json:"tag_names,omitempty"`
}

// Validate checks required fields and normalizes tag names in place.
func (i *Item) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return InvalidArgument("title is required")
	}
	if i.Price < 0 {
		return InvalidArgument("price must not be negative, got %.2f", i.Price)
	}
	if i.PublisherID != "" {
		if err := ValidateID(i.PublisherID); err != nil {
			return err
		}
	}
	i.TagNames = NormalizeTags(i.TagNames)
	return nil
}

// ItemPatch is a partial item update. Nil fields are left unchanged.
type ItemPatch struct {
	Title           *string   `json:"title,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Price           *float64  `json:"price,omitempty"`
	ReleaseDate     *string   `json:"release_date,omitempty"`
	PublisherID     *string   `json:"publisher_id,omitempty"`
	CoverURL        *string   `json:"cover_url,omitempty"`
	Screenshots     *[]string `json:"screenshots,omitempty"`
	Platforms       *[]string `json:"platforms,omitempty"`
	MinRequirements *string   `json:"min_requirements,omitempty"`
	TagNames        *[]string `json:"tag_names,omitempty"`
}

// Validate checks the fields present in the patch.
func (p *ItemPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return InvalidArgument("title must not be empty")
	}
	if p.Price != nil && *p.Price < 0 {
		return InvalidArgument("price must not be negative, got %.2f", *p.Price)
	}
	if p.PublisherID != nil && *p.PublisherID != "" {
		if err := ValidateID(*p.PublisherID); err != nil {
			return err
		}
	}
	if p.TagNames != nil {
		tags := NormalizeTags(*p.TagNames)
		if tags == nil {
			tags = []string{}
		}
		p.TagNames = &tags
	}
	return nil
}
