package domain

import "strings"

// Publisher is a studio or label that releases items.
type Publisher struct {
	Meta
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	FoundedYear *int   `json:"founded_year,omitempty"`
	Country     string `json:"country,omitempty"`
}

// Validate checks required fields.
func (p *Publisher) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return InvalidArgument("name is required")
	}
	return validateFoundedYear(p.FoundedYear)
}

// PublisherPatch is a partial publisher update.
type PublisherPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
	FoundedYear *int    `json:"founded_year,omitempty"`
	Country     *string `json:"country,omitempty"`
}

// Validate checks the fields present in the patch.
func (p *PublisherPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return InvalidArgument("name must not be empty")
	}
	return validateFoundedYear(p.FoundedYear)
}

func validateFoundedYear(y *int) error {
	if y != nil && (*y < 1800 || *y > 3000) {
		return InvalidArgument("founded year out of range: %d", *y)
	}
	return nil
}
