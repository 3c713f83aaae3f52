package oss

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"shortgate/pkg/core/config"
	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/logger"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

// ErrObjectNotFound 对象不存在，调用方按 NotFound 处理且不重试
var ErrObjectNotFound = errors.New("object not found")

// Object 读取到的对象及其元数据，Body 由调用方关闭
type Object struct {
	Body               io.ReadCloser
	ContentLength      int64
	ContentType        string
	ETag               string
	LastModified       *time.Time
	ContentEncoding    string
	ContentDisposition string
	ContentLanguage    string
}

// AliyunService 阿里云OSS服务实现
type AliyunService struct {
	config *config.OssConfig
	client *oss.Client
	log    *logger.Log
	err    *errorc.ErrorBuilder
}

// NewAliyunService 创建阿里云OSS服务实例
func NewAliyunService(config *config.OssConfig) (*AliyunService, error) {
	log := logger.GetLogger().WithEntryName("AliyunOSSService")
	errBuilder := errorc.NewErrorBuilder("AliyunOSSService")

	if config.AccessKeyID == "" || config.AccessKeySecret == "" || config.Bucket == "" {
		return nil, errBuilder.New("阿里云配置不完整", nil).ValidWithCtx().ToLog(log.Entry)
	}

	provider := credentials.NewStaticCredentialsProvider(config.AccessKeyID, config.AccessKeySecret, "")
	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(provider).
		WithRegion(config.Region)

	if config.Domain != "" {
		cfg = cfg.WithEndpoint(config.Domain).WithUseCName(true)
	}

	return &AliyunService{
		config: config,
		client: oss.NewClient(cfg),
		log:    log,
		err:    errBuilder,
	}, nil
}

// GetObject 读取对象内容与元数据；对象不存在时返回包装了 ErrObjectNotFound 的 NotFound 错误
func (s *AliyunService) GetObject(ctx context.Context, objectKey string) (*Object, error) {
	objectKey = strings.TrimPrefix(objectKey, "/")

	request := &oss.GetObjectRequest{
		Bucket: oss.Ptr(s.config.Bucket),
		Key:    oss.Ptr(objectKey),
	}

	result, err := s.client.GetObject(ctx, request)
	if err != nil {
		if isNoSuchKey(err) {
			return nil, s.err.New("对象不存在", ErrObjectNotFound).NotFound()
		}
		return nil, s.err.New("读取阿里云对象失败", err).Third().WithTraceID(ctx)
	}

	return objectFromResult(result), nil
}

func objectFromResult(result *oss.GetObjectResult) *Object {
	obj := &Object{
		Body:          result.Body,
		ContentLength: result.ContentLength,
		ContentType:   oss.ToString(result.ContentType),
		ETag:          oss.ToString(result.ETag),
		LastModified:  result.LastModified,
	}
	// 以下元数据 SDK 未单独建模，只能从响应头读取
	if result.Headers != nil {
		obj.ContentEncoding = result.Headers.Get("Content-Encoding")
		obj.ContentDisposition = result.Headers.Get("Content-Disposition")
		obj.ContentLanguage = result.Headers.Get("Content-Language")
	}
	return obj
}

func isNoSuchKey(err error) bool {
	var serr *oss.ServiceError
	if errors.As(err, &serr) {
		return serr.StatusCode == http.StatusNotFound || serr.Code == "NoSuchKey"
	}
	return false
}
