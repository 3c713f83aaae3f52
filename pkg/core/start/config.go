package start

import (
	"fmt"
	"net"
	"time"

	"shortgate/pkg/core/config"
	"shortgate/pkg/core/logger"
	"shortgate/pkg/core/security"

	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type Config struct {
	AppName  string                `yaml:"app-name"`
	Env      string                `yaml:"env"`
	Host     string                `yaml:"host"`
	Port     int                   `yaml:"port"`
	Jwt      config.JwtConfig      `yaml:"jwt"`
	Redis    config.RedisConfig    `yaml:"redis"`
	Database config.Database       `yaml:"db"`
	Oss      config.OssConfig      `yaml:"oss"`
	Proxy    config.ProxyConfig    `yaml:"proxy"`
	Log      config.LogConfig      `yaml:"log"`
	Zipkin   config.ZipkinConfig   `yaml:"zipkin"`
	ShortURL config.ShortURLConfig `yaml:"shorturl"`
}

type Configures struct {
	Config Config
	Logger *logger.Log
	Auth   *security.Auth
}

// ParseConfig 解析 YAML 配置并补全默认值
func ParseConfig(file []byte, env string) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return cfg, err
	}
	if env != "" {
		cfg.Env = env
	}
	if cfg.AppName == "" {
		cfg.AppName = "shortgate"
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	cfg.ShortURL = cfg.ShortURL.WithDefaults()
	return cfg, nil
}

func NewConfigures(file []byte, env string) *Configures {
	cfg, err := ParseConfig(file, env)
	if err != nil {
		panic(fmt.Sprintf("读取文件信息失败，因为%v", err))
	}
	if cfg.Jwt.Secret == "" {
		panic("jwt.secret 未配置")
	}

	cfg.Host, _ = getLocalIP()

	c := &Configures{
		Config: cfg,
		Logger: logger.InitLogger(cfg.Log.Level),
	}
	if cfg.Log.Sls {
		c.Logger.Send2Cloud(cfg.AppName, cfg.Host, cfg.Log)
	}

	c.Auth = c.EnableAuth()

	return c
}

// getLocalIP 获取本机IP地址（优先获取内网IP）
func getLocalIP() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}

	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil && ipnet.IP.IsPrivate() {
				return ipnet.IP.String(), nil
			}
		}
	}

	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String(), nil
			}
		}
	}

	return "127.0.0.1", nil
}

func (c *Configures) EnableAuth() *security.Auth {
	return security.NewAuth([]byte(c.Config.Jwt.Secret), time.Duration(c.Config.Jwt.ExpireTime)*time.Hour)
}

// EnableRedis 未配置 host 时返回 nil，缓存只走进程内
func (c *Configures) EnableRedis() *redis.Client {
	if !c.Config.Redis.Enabled() {
		c.Logger.Info("未配置 redis，仅使用本地缓存")
		return nil
	}
	return config.InitRDB(c.Config.Redis, c.Config.Proxy)
}

// EnableCache rdb 可以为 nil
func (c *Configures) EnableCache(rdb *redis.Client) *cache.Cache {
	return NewCache(rdb)
}

func NewCache(rdb *redis.Client) *cache.Cache {
	opt := &cache.Options{
		LocalCache: cache.NewTinyLFU(1000, time.Minute),
	}
	if rdb != nil {
		opt.Redis = rdb
	}
	return cache.New(opt)
}

func (c *Configures) EnableDatabase() *gorm.DB {
	db, err := config.Open(c.Config.Database, c.Config.Proxy)
	if err != nil {
		c.Logger.WithField("database", c.Config.Database.Host).WithField("err", err).Panic("failed connect database")
	}
	c.Logger.WithField("driver", c.Config.Database.Driver).Info("connect database success")
	return db
}
