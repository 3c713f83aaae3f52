package consts

const (
	// TraceKey 同时用作 context key 与 fiber Locals key
	TraceKey = "traceId"
	// TraceHeaderName 上游透传的追踪头
	TraceHeaderName = "X-Trace-Context"
)

const (
	// AuthHeader 鉴权请求头
	AuthHeader = "Authorization"
	// BearerPrefix 令牌前缀
	BearerPrefix = "Bearer "
)
