// Package validate holds the form checks run before anything is submitted to
// the REST collaborator.
package validate

import (
	"errors"
	"strings"
	"unicode"

	"github.com/Hasna17806/ZYRA-sub000/internal/models"
)

var ErrValidation = errors.New("validation failed")

type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Field + ": " + e.Message }

func (e *Error) Is(target error) bool { return target == ErrValidation }

func fail(field, msg string) error { return &Error{Field: field, Message: msg} }

func Required(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return fail(field, "is required")
	}
	return nil
}

const MinPasswordLen = 8

// Password enforces the complexity rule of the registration and change
// password forms.
func Password(pw string) error {
	if len(pw) < MinPasswordLen {
		return fail("password", "must be at least 8 characters")
	}
	var upper, lower, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return fail("password", "must contain an upper case letter, a lower case letter and a digit")
	}
	return nil
}

func Email(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fail("email", "is required")
	}
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || strings.Count(email, "@") != 1 {
		return fail("email", "is not a valid address")
	}
	return nil
}

// Product checks the fields the admin product form requires.
func Product(p models.Product) error {
	if strings.TrimSpace(p.DisplayTitle()) == "" {
		return fail("title", "is required")
	}
	if err := Required("category", p.Category); err != nil {
		return err
	}
	if err := Required("image", p.Image); err != nil {
		return err
	}
	if p.Price <= 0 {
		return fail("price", "must be greater than 0")
	}
	if p.Stock != nil && *p.Stock < 0 {
		return fail("stock", "must not be negative")
	}
	if p.Discount != nil && (*p.Discount < 0 || *p.Discount > 100) {
		return fail("discount", "must be between 0 and 100")
	}
	return nil
}

// Shipping checks the checkout address form.
func Shipping(s models.ShippingInfo) error {
	if err := Required("fullName", s.FullName); err != nil {
		return err
	}
	if err := Required("address", s.Address); err != nil {
		return err
	}
	return Required("city", s.City)
}

func PaymentMethod(m string) error {
	return Required("paymentMethod", m)
}
