package validator

import (
	"net/mail"
	"unicode/utf8"
)

func Email(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func Name(name string) bool {
	return utf8.RuneCountInString(name) >= 1 && utf8.RuneCountInString(name) <= 50
}
