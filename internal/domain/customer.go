package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrCustomerNameTooLong  = errors.New("customer name is too long")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidPhone         = errors.New("invalid phone number")
)

// Customer identity of the person placing the booking
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Country string `json:"country,omitempty"`
}

// Validate checks the contact fields required to place a booking
func (c Customer) Validate() error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return ErrCustomerNameRequired
	}
	if utf8.RuneCountInString(name) > MaxCustomerNameLength {
		return fmt.Errorf("%w: max %d characters", ErrCustomerNameTooLong, MaxCustomerNameLength)
	}

	if err := validateEmail(c.Email); err != nil {
		return err
	}

	return validatePhone(c.Phone)
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: empty", ErrInvalidEmail)
	}

	// Bare address only, no display name
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@"):], ".") {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	return nil
}

func validatePhone(phone string) error {
	digits := 0
	for _, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' || r == '-' || r == ' ' || r == '(' || r == ')':
		default:
			return fmt.Errorf("%w: unexpected character %q", ErrInvalidPhone, r)
		}
	}

	if digits < MinPhoneDigits {
		return fmt.Errorf("%w: at least %d digits required", ErrInvalidPhone, MinPhoneDigits)
	}

	return nil
}
