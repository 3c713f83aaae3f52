package app

import (
	"strings"

	"shortgate/system/shorturl/internal/service"
	"shortgate/utils"
)

// RouteKey 短链请求的两段式路由键
type RouteKey struct {
	Host string
	Code string
}

// ParseRouteKey 从 Host 头与请求路径解析路由键；Code 始终保留请求的原始短码，ok 为 false 表示格式非法
func ParseRouteKey(host, path string) (key RouteKey, ok bool) {
	key.Host = service.NormalizeHost(strings.Clone(host))
	key.Code = strings.Clone(strings.TrimPrefix(path, "/"))
	if key.Host == "" || !utils.IsShortCode(key.Code) {
		return key, false
	}
	return key, true
}
