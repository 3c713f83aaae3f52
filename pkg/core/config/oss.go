package config

// OssConfig OSS配置结构体
type OssConfig struct {
	AccessKeyID     string `yaml:"access-key"`
	AccessKeySecret string `yaml:"access-secret"`
	Bucket          string `yaml:"bucket-name"`
	Domain          string `yaml:"domain"` //绑定的自定义域名
	Region          string `yaml:"region,omitempty"`
}

// Enabled 未配置 bucket 时外部存储的资源一律按不存在处理
func (o OssConfig) Enabled() bool {
	return o.Bucket != ""
}
