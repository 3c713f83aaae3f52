package service

import (
	"context"
	"io"
	"path"
	"strings"
	"time"

	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/logger"
	"shortgate/pkg/oss"
	"shortgate/system/template/internal/dao"
	"shortgate/system/template/internal/model"

	"github.com/cenkalti/backoff/v5"
)

const (
	defaultContentType = "application/octet-stream"
	objectRetryDelay   = 50 * time.Millisecond
	objectMaxTries     = 2
)

var mimeTypes = map[string]string{
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".webp":  "image/webp",
	".svg":   "image/svg+xml",
	".ico":   "image/x-icon",
	".css":   "text/css; charset=utf-8",
	".js":    "application/javascript; charset=utf-8",
	".mjs":   "application/javascript; charset=utf-8",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
	".eot":   "application/vnd.ms-fontobject",
	".json":  "application/json; charset=utf-8",
	".xml":   "application/xml; charset=utf-8",
	".txt":   "text/plain; charset=utf-8",
	".html":  "text/html; charset=utf-8",
	".pdf":   "application/pdf",
}

// ContentTypeByName 按扩展名推断内容类型
func ContentTypeByName(filename string) string {
	if ct, ok := mimeTypes[strings.ToLower(path.Ext(filename))]; ok {
		return ct
	}
	return defaultContentType
}

// ObjectStore 外部对象存储
type ObjectStore interface {
	GetObject(ctx context.Context, key string) (*oss.Object, error)
}

// ResolvedAsset 可直接写回响应的资源；Inline 为 true 时读 Content，否则读 Body 并由调用方关闭
type ResolvedAsset struct {
	Inline             bool
	Content            []byte
	Body               io.ReadCloser
	ContentLength      int64
	ContentType        string
	CacheControl       string
	ETag               string
	LastModified       *time.Time
	ContentEncoding    string
	ContentDisposition string
	ContentLanguage    string
}

// AssetService 模板资源读取
type AssetService struct {
	Dao          *dao.AssetDao
	store        ObjectStore
	cacheControl string
	log          *logger.Log
	err          *errorc.ErrorBuilder
}

// NewAssetService store 为 nil 表示未配置对象存储
func NewAssetService(daoInstance *dao.AssetDao, store ObjectStore, cacheControl string, log *logger.Log) *AssetService {
	return &AssetService{
		Dao:          daoInstance,
		store:        store,
		cacheControl: cacheControl,
		log:          log.WithEntryName("AssetService"),
		err:          errorc.NewErrorBuilder("AssetService"),
	}
}

// Resolve 按前缀与文件名读取公开资源
func (s *AssetService) Resolve(ctx context.Context, prefix, filename string) (*ResolvedAsset, error) {
	if prefix == "" || filename == "" {
		return nil, s.err.New("资源路径不完整", nil).NotFound()
	}

	asset, err := s.Dao.FindPublic(ctx, prefix, model.LookupFilename(filename))
	if err != nil {
		return nil, err
	}

	contentType := ContentTypeByName(asset.Filename)
	if asset.ContentType != nil && *asset.ContentType != "" {
		contentType = *asset.ContentType
	}

	payload, err := asset.Payload()
	if err != nil {
		s.err.New("资源存储字段不一致", err).WithTraceID(ctx).ToLog(s.log.WithField("assetId", asset.ID).Entry)
		return nil, s.err.New("资源不存在", nil).NotFound()
	}

	switch p := payload.(type) {
	case model.InlinePayload:
		return &ResolvedAsset{
			Inline:        true,
			Content:       p.Content,
			ContentLength: int64(len(p.Content)),
			ContentType:   contentType,
			CacheControl:  s.cacheControl,
		}, nil
	case model.ObjectPayload:
		return s.resolveObject(ctx, p.Key, contentType)
	}
	return nil, s.err.New("资源不存在", nil).NotFound()
}

func (s *AssetService) resolveObject(ctx context.Context, key, contentType string) (*ResolvedAsset, error) {
	if s.store == nil {
		return nil, s.err.New("未配置对象存储", nil).NotFound()
	}

	obj, err := backoff.Retry(ctx, func() (*oss.Object, error) {
		obj, err := s.store.GetObject(ctx, key)
		if err != nil {
			if errorc.IsNotFound(err) {
				return nil, backoff.Permanent(err)
			}
			s.log.WithTrace(ctx).WithErr(err).WithField("objectKey", key).Warn("读取对象失败")
			return nil, err
		}
		return obj, nil
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(objectRetryDelay)),
		backoff.WithMaxTries(objectMaxTries),
	)
	if err != nil {
		if errorc.IsNotFound(err) {
			return nil, s.err.New("对象不存在", err).NotFound()
		}
		return nil, s.err.New("读取对象存储失败", err).Third().WithTraceID(ctx)
	}

	return &ResolvedAsset{
		Body:               obj.Body,
		ContentLength:      obj.ContentLength,
		ContentType:        contentType,
		CacheControl:       s.cacheControl,
		ETag:               obj.ETag,
		LastModified:       obj.LastModified,
		ContentEncoding:    obj.ContentEncoding,
		ContentDisposition: obj.ContentDisposition,
		ContentLanguage:    obj.ContentLanguage,
	}, nil
}
