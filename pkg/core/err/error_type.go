package errorc

import (
	"fmt"
)

type Error struct {
	*ErrorCode
	Msg      string
	Cause    error
	Stack    string `json:"-"`
	TraceID  string
	Entry    string `json:"-"`
	FileName string `json:"-"`
	Line     int    `json:"-"`
	FuncName string `json:"-"`
}

// Unwrap 让 errors.Is / errors.As 能穿透到 Cause
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// ErrorCode 业务码 + HTTP 状态码
type ErrorCode struct {
	Code   int
	Status int
	Name   string
}

func (c *ErrorCode) String() string {
	return fmt.Sprintf("%d(%d): %s", c.Code, c.Status, c.Name)
}

// IsInternal 5xx 类错误，对外只返回通用提示
func (c *ErrorCode) IsInternal() bool {
	return c.Status >= 500
}

const (
	CodeSuccess          = 0
	CodeDataInput        = -1
	CodeUnauthorized     = -2
	CodeShortURLNotFound = -3
	CodeLinkExpired      = -4
	CodeLinkLimitReached = -5
	CodeUnknown          = -999
)

var (
	ErrorCodeUnknown          *ErrorCode = &ErrorCode{CodeUnknown, 500, "UNKNOWN_ERROR"}
	ErrorCodeDB               *ErrorCode = &ErrorCode{CodeUnknown, 500, "DB"}
	ErrorCodeThird            *ErrorCode = &ErrorCode{CodeUnknown, 500, "Third"}
	ErrorCodeInternal         *ErrorCode = &ErrorCode{CodeUnknown, 500, "InternalError"}
	ErrorCodeUnavailable      *ErrorCode = &ErrorCode{CodeUnknown, 503, "Unavailable"}
	ErrorCodeValid            *ErrorCode = &ErrorCode{CodeDataInput, 400, "DATA_INPUT_ERROR"}
	ErrorCodeNoAuth           *ErrorCode = &ErrorCode{CodeUnauthorized, 401, "UNAUTHORIZED"}
	ErrorCodeForbidden        *ErrorCode = &ErrorCode{CodeUnauthorized, 403, "FORBIDDEN"}
	ErrorCodeNotFound         *ErrorCode = &ErrorCode{CodeShortURLNotFound, 404, "SHORTURL_NOT_FOUND"}
	ErrorCodeLinkExpired      *ErrorCode = &ErrorCode{CodeLinkExpired, 410, "LINK_EXPIRED"}
	ErrorCodeLinkLimitReached *ErrorCode = &ErrorCode{CodeLinkLimitReached, 429, "LINK_LIMIT_REACHED"}
)
