package fiber_handle

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/result"
	"shortgate/pkg/core/tracer"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, app *fiber.App, path string) (*http.Response, result.Response) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var r result.Response
	require.NoError(t, json.Unmarshal(body, &r), string(body))
	return resp, r
}

func TestErrHandler_MapsTaxonomy(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrHandler})
	app.Get("/expired", func(c *fiber.Ctx) error {
		return errorc.New("短链接已过期", nil).LinkExpired()
	})
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return errorc.New("参数错误", nil).ValidWithCtx()
	})

	resp, body := doRequest(t, app, "/expired")
	assert.Equal(t, http.StatusGone, resp.StatusCode)
	assert.Equal(t, errorc.CodeLinkExpired, body.Code)
	assert.Equal(t, "短链接已过期", body.Message)

	resp, body = doRequest(t, app, "/invalid")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, errorc.CodeDataInput, body.Code)
}

func TestErrHandler_HidesInternalDetails(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrHandler})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errorc.New("dial tcp 10.0.0.3:3306: connection refused", errors.New("secret")).DB()
	})

	resp, body := doRequest(t, app, "/boom")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, errorc.CodeUnknown, body.Code)
	assert.NotContains(t, body.Message, "10.0.0.3")
}

func TestErrHandler_FiberNotFound(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrHandler})

	resp, body := doRequest(t, app, "/nowhere/at/all")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, errorc.CodeShortURLNotFound, body.Code)
}

func TestApiTracer_SetsTraceLocal(t *testing.T) {
	app := fiber.New()
	app.Use(NewApiTracer(TracerConfig{Tracer: tracer.NewSimpleTracer(), AppName: "shortgate"}))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("traceId").(string))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Trace-Context", "upstream-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "upstream-1", string(body))
}

func TestHealthCheck(t *testing.T) {
	app := fiber.New()
	app.Use(HealthCheck(HealthCheckConfig{Path: "/health"}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
