package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"shortgate/app"
	"shortgate/base"
	"shortgate/pkg/core/config"
	"shortgate/pkg/core/start"
	"shortgate/pkg/core/tracer"
	"shortgate/pkg/db"
	"shortgate/pkg/oss"
	"shortgate/router"
)

func main() {
	env, filename := getBaseInfo()

	file, err := os.ReadFile(filename)
	if err != nil {
		panic(fmt.Sprintf("读取配置文件失败,因为：%v", err))
	}

	configures := start.NewConfigures(file, env)
	base.Configures = configures
	base.Logger = configures.Logger
	base.ENV = env
	base.Auth = configures.Auth

	base.DB = configures.EnableDatabase()

	// 执行数据库迁移
	if err := db.AutoMigrate(base.DB); err != nil {
		configures.Logger.Panic(fmt.Sprintf("数据库迁移失败: %v", err))
	}

	base.RDB = configures.EnableRedis()
	base.Cache = configures.EnableCache(base.RDB)

	base.OSS, err = oss.InitAliyunOSS(context.Background(), &configures.Config.Oss)
	if err != nil {
		configures.Logger.Panic(err)
	}

	// 创建应用组合根
	appRoot := app.NewApp()

	// 缺少系统默认模板时拒绝启动
	if err := appRoot.Bootstrap(context.Background()); err != nil {
		configures.Logger.Panic(fmt.Sprintf("启动初始化失败: %v", err))
	}

	// 创建 Fiber 应用
	fiberApp := app.GetApp(base.Logger)

	// 注册路由
	router.Register(appRoot, fiberApp, newTracer(configures))

	log.Fatal(fiberApp.Listen(fmt.Sprintf(":%d", base.Configures.Config.Port)))
}

// newTracer 配置了 zipkin 时使用 zipkin，否则使用本地追踪
func newTracer(c *start.Configures) tracer.Tracer {
	zipkinTracer, err := config.InitZipkin(c.Config.Zipkin, c.Config.AppName, c.Config.Host)
	if err != nil {
		c.Logger.WithErr(err).Warn("初始化 zipkin 失败，使用本地追踪")
		return tracer.NewSimpleTracer()
	}
	if zipkinTracer == nil {
		return tracer.NewSimpleTracer()
	}
	return tracer.NewZipkinTracer(zipkinTracer, c.Config.AppName)
}

func getBaseInfo() (string, string) {
	// 定义命令行参数
	env := flag.String("env", "dev", "环境配置 (dev, prod, test等)")
	configFile := flag.String("config", "", "配置文件路径，默认为 ./resources/{env}.yaml")

	// 解析命令行参数
	flag.Parse()

	// 如果没有指定配置文件路径，则使用默认路径
	var filename string
	if *configFile == "" {
		getwd, err := os.Getwd()
		if err != nil {
			panic(fmt.Sprintf("获取当前文件位置失败,因为：%v", err))
		}
		filename = getwd + "/resources/" + *env + ".yaml"
	} else {
		filename = *configFile
	}
	return *env, filename
}
