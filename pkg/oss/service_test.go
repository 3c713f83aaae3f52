package oss

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"shortgate/pkg/core/config"
	errorc "shortgate/pkg/core/err"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAliyunOSS_DisabledWithoutBucket(t *testing.T) {
	svc, err := InitAliyunOSS(context.Background(), &config.OssConfig{})
	require.NoError(t, err)
	assert.Nil(t, svc)
}

func TestNewAliyunService_IncompleteConfig(t *testing.T) {
	_, err := NewAliyunService(&config.OssConfig{Bucket: "b"})
	require.Error(t, err)
	assert.Equal(t, errorc.ErrorCodeValid, errorc.CodeOf(err))
}

func TestIsNoSuchKey(t *testing.T) {
	assert.True(t, isNoSuchKey(&oss.ServiceError{StatusCode: 404, Code: "NoSuchKey"}))
	assert.True(t, isNoSuchKey(&oss.ServiceError{StatusCode: 404}))
	assert.False(t, isNoSuchKey(&oss.ServiceError{StatusCode: 503, Code: "ServiceUnavailable"}))
	assert.False(t, isNoSuchKey(errors.New("connection reset")))
}

func TestObjectFromResult_ReadsHeaderMetadata(t *testing.T) {
	result := &oss.GetObjectResult{
		Body:          io.NopCloser(strings.NewReader("body")),
		ContentLength: 4,
		ContentType:   oss.Ptr("text/css"),
		ETag:          oss.Ptr(`"etag"`),
		ResultCommon: oss.ResultCommon{Headers: http.Header{
			"Content-Encoding":    []string{"gzip"},
			"Content-Disposition": []string{"inline"},
			"Content-Language":    []string{"zh-CN"},
		}},
	}

	obj := objectFromResult(result)
	assert.Equal(t, int64(4), obj.ContentLength)
	assert.Equal(t, "text/css", obj.ContentType)
	assert.Equal(t, `"etag"`, obj.ETag)
	assert.Equal(t, "gzip", obj.ContentEncoding)
	assert.Equal(t, "inline", obj.ContentDisposition)
	assert.Equal(t, "zh-CN", obj.ContentLanguage)

	bare := objectFromResult(&oss.GetObjectResult{})
	assert.Empty(t, bare.ContentEncoding)
	assert.Empty(t, bare.ContentType)
}
