package domain

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is one person's opinion of one item.
type Review struct {
	Meta
	PersonID    string   `json:"person_id"`
	ItemID      string   `json:"item_id"`
	Rating      int      `json:"rating"`
	Text        string   `json:"text,omitempty"`
	Recommended bool     `json:"recommended"`
	HoursPlayed *float64 `json:"hours_played,omitempty"`
}

// Validate checks references and ranges.
func (r *Review) Validate() error {
	if err := ValidateID(r.PersonID); err != nil {
		return err
	}
	if err := ValidateID(r.ItemID); err != nil {
		return err
	}
	if err := validateRating(r.Rating); err != nil {
		return err
	}
	return validateHours(r.HoursPlayed)
}

// ReviewPatch is a partial review update. References are immutable.
type ReviewPatch struct {
	Rating      *int     `json:"rating,omitempty"`
	Text        *string  `json:"text,omitempty"`
	Recommended *bool    `json:"recommended,omitempty"`
	HoursPlayed *float64 `json:"hours_played,omitempty"`
}

// Validate checks the fields present in the patch.
func (p *ReviewPatch) Validate() error {
	if p.Rating != nil {
		if err := validateRating(*p.Rating); err != nil {
			return err
		}
	}
	return validateHours(p.HoursPlayed)
}

func validateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return InvalidArgument("rating must be between %d and %d, got %d", MinRating, MaxRating, rating)
	}
	return nil
}

func validateHours(h *float64) error {
	if h != nil && *h < 0 {
		return InvalidArgument("hours played must not be negative")
	}
	return nil
}
