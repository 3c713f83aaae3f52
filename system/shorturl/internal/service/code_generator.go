package service

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	base62Chars       = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	defaultCodeLength = 6
)

// GenerateShortCode 生成指定长度的随机短码，字符集为 base62
func GenerateShortCode(length int) (string, error) {
	if length <= 0 {
		length = defaultCodeLength
	}
	return gonanoid.Generate(base62Chars, length)
}
