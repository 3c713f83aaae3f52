package config

import (
	"context"
	"fmt"
	"net"
	"time"

	"golang.org/x/net/proxy"
)

// ProxyConfig SOCKS代理配置结构体
type ProxyConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
}

func defaultDialer() *net.Dialer {
	return &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}
}

// GetDialer 获取配置好的SOCKS5 dialer
// 如果代理未启用，返回默认的net.Dialer
func (p ProxyConfig) GetDialer() proxy.Dialer {
	if !p.Enabled {
		return defaultDialer()
	}

	address := fmt.Sprintf("%s:%d", p.Host, p.Port)

	var auth *proxy.Auth
	if p.Username != "" && p.Password != "" {
		auth = &proxy.Auth{
			User:     p.Username,
			Password: p.Password,
		}
	}

	dialer, err := proxy.SOCKS5("tcp", address, auth, proxy.Direct)
	if err != nil {
		return defaultDialer()
	}

	return dialer
}

// GetContextDialer 获取支持context的dialer函数
func (p ProxyConfig) GetContextDialer() func(ctx context.Context, network, address string) (net.Conn, error) {
	dialer := p.GetDialer()

	return func(ctx context.Context, network, address string) (net.Conn, error) {
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			return cd.DialContext(ctx, network, address)
		}
		return dialer.Dial(network, address)
	}
}
