package dto

// Kind 页面种类，决定选用哪一类模板
type Kind string

const (
	KindNotFound         Kind = "not-found"
	KindExpired          Kind = "expired"
	KindLimitReached     Kind = "limit-reached"
	KindPasswordRequired Kind = "password-required"
	KindInterstitial     Kind = "interstitial"
)

// Bindings 域名上绑定的模板，nil 表示使用系统默认模板
type Bindings struct {
	ErrorTemplateID        *int64
	PasswordTemplateID     *int64
	InterstitialTemplateID *int64
}

// PageVars 渲染页面时可用的占位符取值
type PageVars struct {
	Code      string
	Host      string
	Reason    string
	Message   string
	Status    int
	URL       string
	BackupURL string
	Action    string
	Error     string
	// ErrorCode 错误页的错误码名称，如 LINK_EXPIRED
	ErrorCode string
}

// Page 渲染结果
type Page struct {
	TemplateID int64
	Body       []byte
}
