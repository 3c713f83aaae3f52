package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/logger"
	"shortgate/pkg/oss"
	"shortgate/system/template/internal/dao"
	"shortgate/system/template/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeStore struct {
	objects  map[string]string
	failures int32
	calls    int32
}

func (f *fakeStore) GetObject(ctx context.Context, key string) (*oss.Object, error) {
	atomic.AddInt32(&f.calls, 1)
	if atomic.AddInt32(&f.failures, -1) >= 0 {
		return nil, errorc.New("读取阿里云对象失败", errors.New("connection reset")).Third()
	}
	body, ok := f.objects[key]
	if !ok {
		return nil, errorc.New("对象不存在", oss.ErrObjectNotFound).NotFound()
	}
	modified := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	return &oss.Object{
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: int64(len(body)),
		ContentType:   "binary/octet-stream",
		ETag:          `"abc"`,
		LastModified:  &modified,
	}, nil
}

func newAssetService(db *gorm.DB, store ObjectStore) *AssetService {
	log := logger.GetLogger()
	return NewAssetService(dao.NewAssetDao(db, log), store, "public, max-age=86400", log)
}

func TestResolve_InlineRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := newAssetService(db, nil)
	ctx := context.Background()

	content := []byte{0x89, 'P', 'N', 'G', 0, 1, 2}
	require.NoError(t, db.Create(model.NewInlineAsset("brand", "logo.png", content, "", true)).Error)

	first, err := svc.Resolve(ctx, "brand", "logo.png")
	require.NoError(t, err)
	assert.True(t, first.Inline)
	assert.Equal(t, content, first.Content)
	assert.Equal(t, int64(len(content)), first.ContentLength)
	assert.Equal(t, "image/png", first.ContentType)
	assert.Equal(t, "public, max-age=86400", first.CacheControl)

	second, err := svc.Resolve(ctx, "brand", "logo.png")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolve_NotFoundCases(t *testing.T) {
	db := newTestDB(t)
	svc := newAssetService(db, nil)
	ctx := context.Background()

	require.NoError(t, db.Create(model.NewInlineAsset("brand", "private.css", []byte("x"), "", false)).Error)
	require.NoError(t, db.Create(model.NewObjectAsset("brand", "bg.jpg", "k/bg.jpg", 10, "", true)).Error)
	corrupt := model.NewInlineAsset("brand", "broken.js", []byte("x"), "", true)
	corrupt.ObjectKey = "k/broken.js"
	require.NoError(t, db.Create(corrupt).Error)
	empty := model.NewInlineAsset("brand", "empty.css", []byte("x"), "", true)
	require.NoError(t, db.Create(empty).Error)
	require.NoError(t, db.Model(empty).UpdateColumn("content", nil).Error)
	require.NoError(t, db.Create(model.NewInlineAsset("brand", "nested/x.css", []byte("x"), "", true)).Error)

	for _, c := range []struct{ prefix, file string }{
		{"", "logo.png"},
		{"brand", ""},
		{"brand", "missing.png"},
		{"brand", "private.css"},
		{"brand", "bg.jpg"},
		{"brand", "broken.js"},
		{"brand", "empty.css"},
		{"brand", "/nested/x.css"},
	} {
		_, err := svc.Resolve(ctx, c.prefix, c.file)
		assert.True(t, errorc.IsNotFound(err), "%s/%s", c.prefix, c.file)
	}
}

func TestResolve_NestedPathLookup(t *testing.T) {
	db := newTestDB(t)
	svc := newAssetService(db, nil)
	ctx := context.Background()

	require.NoError(t, db.Create(model.NewInlineAsset("brand", "css/site.css", []byte("body{}"), "", true)).Error)
	require.NoError(t, db.Create(model.NewInlineAsset("brand", "/x.css", []byte("x"), "", true)).Error)

	asset, err := svc.Resolve(ctx, "brand", "css/site.css")
	require.NoError(t, err)
	assert.Equal(t, []byte("body{}"), asset.Content)

	// 多余的斜杠不会被折叠
	_, err = svc.Resolve(ctx, "brand", "/x.css")
	assert.True(t, errorc.IsNotFound(err))
	_, err = svc.Resolve(ctx, "brand", "x.css")
	require.NoError(t, err)
}

func TestResolve_ContentTypePrecedence(t *testing.T) {
	db := newTestDB(t)
	svc := newAssetService(db, nil)
	ctx := context.Background()

	require.NoError(t, db.Create(model.NewInlineAsset("brand", "data.bin", []byte("x"), "", true)).Error)
	require.NoError(t, db.Create(model.NewInlineAsset("brand", "font.woff2", []byte("x"), "", true)).Error)
	require.NoError(t, db.Create(model.NewInlineAsset("brand", "app.js", []byte("x"), "text/x-custom", true)).Error)

	got, err := svc.Resolve(ctx, "brand", "data.bin")
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", got.ContentType)

	got, err = svc.Resolve(ctx, "brand", "font.woff2")
	require.NoError(t, err)
	assert.Equal(t, "font/woff2", got.ContentType)

	got, err = svc.Resolve(ctx, "brand", "app.js")
	require.NoError(t, err)
	assert.Equal(t, "text/x-custom", got.ContentType)
}

func TestResolve_ObjectStore(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.Create(model.NewObjectAsset("brand", "bg.jpg", "k/bg.jpg", 5, "", true)).Error)
	require.NoError(t, db.Create(model.NewObjectAsset("brand", "gone.jpg", "k/gone.jpg", 5, "", true)).Error)

	t.Run("读取成功并复制元数据", func(t *testing.T) {
		store := &fakeStore{objects: map[string]string{"k/bg.jpg": "hello"}}
		got, err := newAssetService(db, store).Resolve(ctx, "brand", "bg.jpg")
		require.NoError(t, err)
		defer got.Body.Close()

		body, err := io.ReadAll(got.Body)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(body))
		assert.False(t, got.Inline)
		assert.Equal(t, "image/jpeg", got.ContentType)
		assert.Equal(t, `"abc"`, got.ETag)
		assert.NotNil(t, got.LastModified)
	})

	t.Run("对象缺失返回不存在且不重试", func(t *testing.T) {
		store := &fakeStore{objects: map[string]string{}}
		_, err := newAssetService(db, store).Resolve(ctx, "brand", "gone.jpg")
		assert.True(t, errorc.IsNotFound(err))
		assert.Equal(t, int32(1), atomic.LoadInt32(&store.calls))
	})

	t.Run("瞬时失败重试一次", func(t *testing.T) {
		store := &fakeStore{objects: map[string]string{"k/bg.jpg": "hello"}, failures: 1}
		got, err := newAssetService(db, store).Resolve(ctx, "brand", "bg.jpg")
		require.NoError(t, err)
		got.Body.Close()
		assert.Equal(t, int32(2), atomic.LoadInt32(&store.calls))
	})

	t.Run("连续失败返回内部错误", func(t *testing.T) {
		store := &fakeStore{objects: map[string]string{"k/bg.jpg": "hello"}, failures: 5}
		_, err := newAssetService(db, store).Resolve(ctx, "brand", "bg.jpg")
		require.Error(t, err)
		assert.True(t, errorc.CodeOf(err).IsInternal())
		assert.Equal(t, int32(2), atomic.LoadInt32(&store.calls))
	})
}

func TestContentTypeByName(t *testing.T) {
	assert.Equal(t, "image/svg+xml", ContentTypeByName("/a/B.SVG"))
	assert.Equal(t, "application/pdf", ContentTypeByName("doc.pdf"))
	assert.Equal(t, "application/octet-stream", ContentTypeByName("noext"))
}
