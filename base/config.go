package base

import (
	"shortgate/pkg/core/logger"
	"shortgate/pkg/core/security"
	"shortgate/pkg/core/start"
	"shortgate/pkg/oss"

	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var (
	Configures *start.Configures
	Logger     *logger.Log
	ENV        string
	Auth       *security.Auth
	DB         *gorm.DB
	RDB        *redis.Client
	Cache      *cache.Cache
	OSS        *oss.AliyunService
)
