package config

// ShortURLConfig 短链服务相关配置
type ShortURLConfig struct {
	// WebLocation 管理后台 SPA 挂载路径，如 "admin"
	WebLocation string `yaml:"web-location"`
	// WebDir 管理后台打包产物目录，空则不挂载
	WebDir string `yaml:"web-dir"`
	// AssetCacheControl 模板资源响应的 Cache-Control
	AssetCacheControl string `yaml:"asset-cache-control"`
	// SeedDefaultTemplates 启动时缺少系统模板则写入内置模板
	SeedDefaultTemplates bool `yaml:"seed-default-templates"`
	// LinkCacheTTL / DomainCacheTTL 单位秒
	LinkCacheTTL   int `yaml:"link-cache-ttl"`
	DomainCacheTTL int `yaml:"domain-cache-ttl"`
	// CodeLength 自动生成短码长度
	CodeLength int `yaml:"code-length"`
	// BootstrapAdmin 用户表为空时创建的管理员账号
	BootstrapAdmin BootstrapAdmin `yaml:"bootstrap-admin"`
}

type BootstrapAdmin struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

const DefaultAssetCacheControl = "public, max-age=86400"

// WithDefaults 补全未配置的字段
func (c ShortURLConfig) WithDefaults() ShortURLConfig {
	if c.WebLocation == "" {
		c.WebLocation = "admin"
	}
	if c.AssetCacheControl == "" {
		c.AssetCacheControl = DefaultAssetCacheControl
	}
	if c.LinkCacheTTL <= 0 {
		c.LinkCacheTTL = 300
	}
	if c.DomainCacheTTL <= 0 {
		c.DomainCacheTTL = 600
	}
	if c.CodeLength <= 0 {
		c.CodeLength = 6
	}
	if c.BootstrapAdmin.Username == "" {
		c.BootstrapAdmin.Username = "admin"
	}
	if c.BootstrapAdmin.Password == "" {
		c.BootstrapAdmin.Password = "admin"
	}
	return c
}
