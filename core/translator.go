package core

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
)

// NewTranslator returns the english translator used for validation messages.
func NewTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
