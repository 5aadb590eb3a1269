package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// NotBlank 校验字段去掉空白后非空（"required" 放过纯空格）
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
