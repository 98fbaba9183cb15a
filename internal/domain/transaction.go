package domain

// Transaction records one purchase. It is immutable once written.
type Transaction struct {
	Meta
	PersonID   string  `json:"person_id"`
	ItemID     string  `json:"item_id"`
	AmountPaid float64 `json:"amount_paid"`
}

// NoPatch is the patch type of collections that are never updated in place.
type NoPatch struct{}

// Receipt is the outcome of a purchase.
type Receipt struct {
	Transaction Transaction `json:"transaction"`
	NewBalance  float64     `json:"new_balance"`
	Warnings    Warnings    `json:"warnings,omitempty"`
}

// PurchaseRequest asks to buy one item for one person.
// A nil AmountPaid charges the item's list price.
type PurchaseRequest struct {
	PersonID   string   `json:"person_id"`
	ItemID     string   `json:"item_id"`
	AmountPaid *float64 `json:"amount_paid,omitempty"`
}

// Validate checks identifiers and the amount.
func (r *PurchaseRequest) Validate() error {
	if err := ValidateID(r.PersonID); err != nil {
		return err
	}
	if err := ValidateID(r.ItemID); err != nil {
		return err
	}
	if r.AmountPaid != nil && *r.AmountPaid < 0 {
		return InvalidArgument("amount paid must not be negative, got %.2f", *r.AmountPaid)
	}
	return nil
}
