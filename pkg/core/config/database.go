package config

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	DriverMysql    = "mysql"
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

type Database struct {
	Driver   string `yaml:"driver" json:"driver,omitempty"`
	Host     string `yaml:"host" json:"host,omitempty"`
	Port     int64  `yaml:"port" json:"port,omitempty"`
	User     string `yaml:"user" json:"user,omitempty"`
	Password string `yaml:"password" json:"password,omitempty"`
	DbName   string `yaml:"db-name" json:"db-name,omitempty"`
	// Path sqlite 文件路径，":memory:" 为内存库
	Path string `yaml:"path" json:"path,omitempty"`
}

// Open 按 driver 打开数据库，默认 mysql
func Open(database Database, proxyConfig ProxyConfig) (*gorm.DB, error) {
	switch database.Driver {
	case DriverPostgres:
		return InitPg(database, proxyConfig)
	case DriverSqlite:
		return InitSqlite(database)
	case "", DriverMysql:
		return InitMysql(database, proxyConfig)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", database.Driver)
	}
}

func InitPg(database Database, proxyConfig ProxyConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=disable password=%s",
		database.Host, database.Port, database.User, database.DbName, database.Password)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// pgx 驱动不支持自定义 dialer，代理需在网络层配置
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func InitMysql(database Database, proxyConfig ProxyConfig) (*gorm.DB, error) {
	network := "tcp"

	if proxyConfig.Enabled {
		// 注册自定义dialer到MySQL驱动
		network = fmt.Sprintf("proxy_%d", time.Now().UnixNano())
		dialer := proxyConfig.GetDialer()

		mysqldriver.RegisterDialContext(network, func(ctx context.Context, addr string) (net.Conn, error) {
			return dialer.Dial("tcp", addr)
		})
	}

	dsn := fmt.Sprintf("%s:%s@%s(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		database.User, database.Password, network, database.Host, database.Port, database.DbName)

	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

// InitSqlite 本地开发用，单连接避免内存库在多连接间不可见
func InitSqlite(database Database) (*gorm.DB, error) {
	path := database.Path
	if path == "" {
		path = "shortgate.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
