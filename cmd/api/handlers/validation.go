package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"list-authors/authorlist"
)

// 정렬 옵션은 에디터 컨트롤과 같은 목록으로 검증한다.
var customValidations = map[string]validator.Func{
	"sort_field": func(fl validator.FieldLevel) bool {
		return authorlist.IsSortField(fl.Field().String())
	},
	"sort_direction": func(fl validator.FieldLevel) bool {
		return authorlist.IsSortDirection(fl.Field().String())
	},
}

// RegisterValidations adds the sort_field and sort_direction binding tags
// to gin's validator.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator %T", binding.Validator.Engine())
	}
	for tag, fn := range customValidations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validation: %w", tag, err)
		}
	}
	return nil
}
