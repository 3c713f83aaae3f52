package fiber_handle

import (
	"errors"

	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/result"

	"github.com/gofiber/fiber/v2"
)

// ErrHandler 把错误统一渲染为 {code, message}，HTTP 状态码取自错误码
func ErrHandler(ctx *fiber.Ctx, err error) error {
	var e *fiber.Error
	if errors.As(err, &e) {
		return result.Fail(ctx, fromFiberStatus(e.Code), e.Message)
	}

	cError := errorc.ParseError(err)
	return result.Fail(ctx, cError.ErrorCode, cError.Msg)
}

func fromFiberStatus(status int) *errorc.ErrorCode {
	switch status {
	case fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge, fiber.StatusUnprocessableEntity:
		return &errorc.ErrorCode{Code: errorc.CodeDataInput, Status: status, Name: errorc.ErrorCodeValid.Name}
	case fiber.StatusUnauthorized:
		return errorc.ErrorCodeNoAuth
	case fiber.StatusForbidden:
		return errorc.ErrorCodeForbidden
	case fiber.StatusNotFound:
		return errorc.ErrorCodeNotFound
	case fiber.StatusMethodNotAllowed:
		return &errorc.ErrorCode{Code: errorc.CodeDataInput, Status: status, Name: "METHOD_NOT_ALLOWED"}
	}
	return &errorc.ErrorCode{Code: errorc.CodeUnknown, Status: status, Name: errorc.ErrorCodeUnknown.Name}
}
