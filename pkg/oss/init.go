package oss

import (
	"context"

	"shortgate/pkg/core/config"
	"shortgate/pkg/core/logger"
)

// InitAliyunOSS 初始化阿里云OSS服务；未配置 bucket 时返回 nil，外部资源一律按不存在处理
func InitAliyunOSS(ctx context.Context, cfg *config.OssConfig) (*AliyunService, error) {
	log := logger.GetLogger().WithEntryName("AliyunOSSService")
	if !cfg.Enabled() {
		log.Info("未配置 OSS bucket，外部存储资源不可用")
		return nil, nil
	}

	ossProvider, err := NewAliyunService(cfg)
	if err != nil {
		return nil, err
	}

	log.WithField("bucket", cfg.Bucket).Info("阿里云OSS服务初始化完成")
	return ossProvider, nil
}
