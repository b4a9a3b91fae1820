package reservation

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	MaxPhoneLength = 32
	MaxNameLength  = 120
)

var (
	ErrPhoneTooLong = errors.New("phone is too long")
	ErrNameTooLong  = errors.New("participant name is too long")
)

// Phone is free text; the form does not enforce a format
type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxPhoneLength {
		return Phone{}, ErrPhoneTooLong
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string {
	return p.value
}

func (p Phone) IsEmpty() bool {
	return p.value == ""
}

func validateName(name string) error {
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
