package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleReq struct {
	Code   string `json:"code" validate:"omitempty,shortcode" comment:"短码"`
	Domain string `json:"domain" validate:"required" comment:"域名"`
}

func TestValidate_TranslatesToChinese(t *testing.T) {
	msg, err := Validate(&sampleReq{})
	assert.Error(t, err)
	assert.Contains(t, msg, "域名")
}

func TestValidate_ShortCode(t *testing.T) {
	_, err := Validate(&sampleReq{Code: "abc_-9", Domain: "s.example.com"})
	assert.NoError(t, err)

	msg, err := Validate(&sampleReq{Code: "bad code!", Domain: "s.example.com"})
	assert.Error(t, err)
	assert.Contains(t, msg, "短码")
}

func TestIsShortCode(t *testing.T) {
	assert.True(t, IsShortCode("a"))
	assert.False(t, IsShortCode(""))
	assert.False(t, IsShortCode("with/slash"))
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, IsShortCode(string(long)))
	assert.True(t, IsShortCode(string(long[:100])))
}
