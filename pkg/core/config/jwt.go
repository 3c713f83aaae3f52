package config

type JwtConfig struct {
	Secret string `yaml:"secret" json:"secret,omitempty"`
	// ExpireTime 令牌有效期（小时）
	ExpireTime int `yaml:"expire-time" json:"expire-time,omitempty"`
}
