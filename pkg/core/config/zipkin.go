package config

import (
	"github.com/openzipkin/zipkin-go"
	"github.com/openzipkin/zipkin-go/reporter/http"
)

type ZipkinConfig struct {
	Url string `yaml:"url"`
}

// InitZipkin 未配置 url 时返回 nil，调用方退回到简单追踪
func InitZipkin(zipkinConfig ZipkinConfig, appName, host string) (*zipkin.Tracer, error) {
	if zipkinConfig.Url == "" {
		return nil, nil
	}

	reporter := http.NewReporter(zipkinConfig.Url)
	endpoint, err := zipkin.NewEndpoint(appName, host)
	if err != nil {
		return nil, err
	}
	sampler := zipkin.NewModuloSampler(1)

	return zipkin.NewTracer(
		reporter,
		zipkin.WithLocalEndpoint(endpoint),
		zipkin.WithSampler(sampler),
	)
}
