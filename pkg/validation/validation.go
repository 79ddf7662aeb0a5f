package validation

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into echo's Validator slot
// so request structs are checked right after binding.
type RequestValidator struct{ v *validator.Validate }

func New() *RequestValidator { return &RequestValidator{v: validator.New()} }

func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.v.Struct(i)
}
