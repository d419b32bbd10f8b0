package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// 错误里的字段名使用 json 名称，和消息体保持一致
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// FieldError 单个字段的校验错误
type FieldError struct {
	Attr string `json:"attr"`
	Msg  string `json:"msg"`
}

// ValidationErrors 收集到的全部校验错误，不会在第一个错误处中断
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Attr, fe.Msg))
	}
	return "参数校验失败: " + strings.Join(parts, "; ")
}

// Attrs 出错的字段
func (v ValidationErrors) Attrs() []string {
	attrs := make([]string, 0, len(v))
	for _, fe := range v {
		attrs = append(attrs, fe.Attr)
	}
	return attrs
}

func validateStruct(s any) ValidationErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return ValidationErrors{{Msg: err.Error()}}
	}
	res := make(ValidationErrors, 0, len(ves))
	for _, fe := range ves {
		res = append(res, FieldError{
			Attr: fieldPath(fe.Namespace()),
			Msg:  fieldMessage(fe),
		})
	}
	return res
}

// fieldPath 去掉最外层的结构体名，MailMessage.ToAddresses[0] => ToAddresses[0]
func fieldPath(namespace string) string {
	if idx := strings.IndexByte(namespace, '.'); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "不能为空"
	case "min":
		return fmt.Sprintf("至少需要 %s 个元素", fe.Param())
	case "email":
		return fmt.Sprintf("%v 不是合法的邮箱地址", fe.Value())
	case "e164":
		return fmt.Sprintf("%v 不是合法的手机号", fe.Value())
	default:
		return fmt.Sprintf("不满足 %s 约束", fe.Tag())
	}
}
