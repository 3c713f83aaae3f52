package service

import (
	"net/url"
	"strings"

	"shortgate/system/shorturl/internal/model"
)

// 能在页面上下文中执行脚本的协议
var blockedSchemes = map[string]bool{
	"javascript": true,
	"data":       true,
	"vbscript":   true,
}

// CheckTarget 校验跳转目标；URL 类型与备用地址只允许 http(s)，URL Scheme 拒绝脚本类协议
func (s *LinkService) CheckTarget(targetType model.TargetType, target, backupURL string) error {
	if targetType == model.TargetTypeURL {
		if !isHTTPURL(target) {
			return s.err.New("跳转地址必须是 http 或 https 链接", nil).ValidWithCtx()
		}
	} else {
		scheme, ok := schemeOf(target)
		if !ok || blockedSchemes[scheme] {
			return s.err.New("不支持的 URL Scheme", nil).ValidWithCtx()
		}
	}

	if backupURL != "" && !isHTTPURL(backupURL) {
		return s.err.New("备用地址必须是 http 或 https 链接", nil).ValidWithCtx()
	}
	return nil
}

func schemeOf(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return "", false
	}
	return strings.ToLower(u.Scheme), true
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}
