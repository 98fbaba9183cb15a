package domain

import "strings"

// Address is an optional postal address on a person profile.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Person is a user profile with a wallet.
type Person struct {
	Meta
	Handle      string   `json:"handle"`
	Email       string   `json:"email"`
	DisplayName string   `json:"display_name,omitempty"`
	Balance     float64  `json:"balance"`
	AvatarURL   string   `json:"avatar_url,omitempty"`
	Address     *Address `json:"address,omitempty"`
}

// Name returns the name shown to other people: display name, else handle.
func (p *Person) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	if p.Handle != "" {
		return p.Handle
	}
	return "?"
}

// Validate checks required fields.
func (p *Person) Validate() error {
	if strings.TrimSpace(p.Handle) == "" {
		return InvalidArgument("handle is required")
	}
	if strings.TrimSpace(p.Email) == "" {
		return InvalidArgument("email is required")
	}
	if p.Balance < 0 {
		return InvalidArgument("balance must not be negative, got %.2f", p.Balance)
	}
	return nil
}

// PersonPatch is a partial person update. Nil fields are left unchanged.
type PersonPatch struct {
	Handle      *string  `json:"handle,omitempty"`
	Email       *string  `json:"email,omitempty"`
	DisplayName *string  `json:"display_name,omitempty"`
	Balance     *float64 `json:"balance,omitempty"`
	AvatarURL   *string  `json:"avatar_url,omitempty"`
	Address     *Address `json:"address,omitempty"`
}

// Validate checks the fields present in the patch.
func (p *PersonPatch) Validate() error {
	if p.Handle != nil && strings.TrimSpace(*p.Handle) == "" {
		return InvalidArgument("handle must not be empty")
	}
	if p.Email != nil && strings.TrimSpace(*p.Email) == "" {
		return InvalidArgument("email must not be empty")
	}
	if p.Balance != nil && *p.Balance < 0 {
		return InvalidArgument("balance must not be negative, got %.2f", *p.Balance)
	}
	return nil
}
