package config

import (
	"context"
	"net"
	"strings"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	// Mode single / sentinel
	Mode     string `yaml:"mode"`
	Host     string `yaml:"host"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Enabled 未配置 host 时只使用进程内缓存
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

func InitRDB(redisConfig RedisConfig, proxyConfig ProxyConfig) *redis.Client {
	var dialer func(ctx context.Context, network, addr string) (net.Conn, error)
	if proxyConfig.Enabled {
		dialer = proxyConfig.GetContextDialer()
	}

	if redisConfig.Mode == "" || redisConfig.Mode == "single" {
		return redis.NewClient(&redis.Options{
			Addr:     redisConfig.Host,
			Password: redisConfig.Password,
			DB:       redisConfig.DB,
			Dialer:   dialer,
		})
	}

	return redis.NewFailoverClient(&redis.FailoverOptions{
		MasterName:       "mymaster",
		SentinelAddrs:    strings.Split(redisConfig.Host, ","),
		Password:         redisConfig.Password,
		SentinelPassword: redisConfig.Password,
		DB:               redisConfig.DB,
		Dialer:           dialer,
	})
}
