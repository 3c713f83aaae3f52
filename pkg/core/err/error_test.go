package errorc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNew_ClassifiesRecordNotFound(t *testing.T) {
	err := New("查询失败", gorm.ErrRecordNotFound).DB()

	assert.Equal(t, ErrorCodeNotFound, err.ErrorCode)
	assert.True(t, IsNotFound(err))
}

func TestNew_InheritsCodeFromWrappedError(t *testing.T) {
	inner := NewErrorBuilder("LinkDao").New("短链接已过期", nil).LinkExpired()
	outer := New("解析失败", fmt.Errorf("wrap: %w", inner))

	assert.Equal(t, ErrorCodeLinkExpired, outer.ErrorCode)
	assert.Equal(t, ErrorCodeLinkExpired, CodeOf(outer))
}

func TestCodeOf_UnknownForPlainErrors(t *testing.T) {
	code := CodeOf(errors.New("boom"))

	assert.Equal(t, CodeUnknown, code.Code)
	assert.Equal(t, 500, code.Status)
	assert.True(t, code.IsInternal())
}

func TestTaxonomy(t *testing.T) {
	cases := []struct {
		code   *ErrorCode
		biz    int
		status int
	}{
		{ErrorCodeValid, -1, 400},
		{ErrorCodeNoAuth, -2, 401},
		{ErrorCodeNotFound, -3, 404},
		{ErrorCodeLinkExpired, -4, 410},
		{ErrorCodeLinkLimitReached, -5, 429},
		{ErrorCodeUnknown, -999, 500},
		{ErrorCodeDB, -999, 500},
	}
	for _, c := range cases {
		assert.Equal(t, c.biz, c.code.Code, c.code.Name)
		assert.Equal(t, c.status, c.code.Status, c.code.Name)
	}
}

func TestRootCause_PointsAtInnermostWrapper(t *testing.T) {
	root := New("读取对象失败", errors.New("connection reset"))
	outer := New("加载资源失败", root)

	assert.Contains(t, outer.RootCause(), "读取对象失败: connection reset")
	assert.Contains(t, outer.Error(), "Root Cause")
}
