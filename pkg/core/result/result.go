package result

import (
	errorc "shortgate/pkg/core/err"

	"github.com/gofiber/fiber/v2"
)

const successMessage = "success"

// internalMessage 5xx 错误统一对外文案，细节只进日志
const internalMessage = "服务器内部错误"

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func OK(c *fiber.Ctx, v interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Response{Code: errorc.CodeSuccess, Message: successMessage, Data: v})
}

// Fail 按错误码输出失败响应
func Fail(c *fiber.Ctx, code *errorc.ErrorCode, message string) error {
	if code == nil {
		code = errorc.ErrorCodeUnknown
	}
	if code.IsInternal() || message == "" {
		message = publicMessage(code)
	}
	return c.Status(code.Status).JSON(Response{Code: code.Code, Message: message})
}

func publicMessage(code *errorc.ErrorCode) string {
	if code.IsInternal() {
		return internalMessage
	}
	return code.Name
}

func Once(c *fiber.Ctx, v interface{}, err error) error {
	if err != nil {
		return err
	}
	return OK(c, v)
}

// PageData 分页数据
type PageData struct {
	Total   int64       `json:"total"`
	Content interface{} `json:"content"`
}
