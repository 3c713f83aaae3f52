package app

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	errorc "shortgate/pkg/core/err"
	"shortgate/system/shorturl/internal/model"
	tdto "shortgate/system/template/api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, a *App, host, path string, password *string) *Outcome {
	t.Helper()
	out, err := a.Resolve(context.Background(), ResolveRequest{Host: host, Path: path, Password: password})
	require.NoError(t, err)
	return out
}

func TestResolve_Redirect(t *testing.T) {
	a, db := newTestApp(t)
	d := createDomain(t, db, "s.example.com", true)
	l := createLink(t, db, d.ID, "abc", "https://example.org/landing")

	out := resolve(t, a, "S.Example.com:443", "/abc", nil)

	assert.Equal(t, StateRedirect, out.State)
	assert.Equal(t, http.StatusFound, out.Status)
	assert.Equal(t, "https://example.org/landing", out.Location)
	assert.Equal(t, int64(1), visitCount(t, db, l.ID))
}

func TestResolve_LimitReachedKeepsCount(t *testing.T) {
	a, db := newTestApp(t)
	d := createDomain(t, db, "s.example.com", true)
	l := createLink(t, db, d.ID, "capped", "https://example.org", withMaxVisits(3), withVisitCount(3))

	out := resolve(t, a, "s.example.com", "/capped", nil)

	assert.Equal(t, StateErrorPage, out.State)
	assert.Equal(t, tdto.KindLimitReached, out.Kind)
	assert.Equal(t, http.StatusTooManyRequests, out.Status)
	assert.Equal(t, errorc.ErrorCodeLinkLimitReached, out.Code)
	assert.Contains(t, string(out.Body), "capped")
	assert.Contains(t, string(out.Body), "LINK_LIMIT_REACHED")
	assert.Equal(t, int64(3), visitCount(t, db, l.ID))
}

func TestResolve_LastAllowedVisitThenLimit(t *testing.T) {
	a, db := newTestApp(t)
	d := createDomain(t, db, "s.example.com", true)
	l := createLink(t, db, d.ID, "one", "https://example.org", withMaxVisits(1))

	first := resolve(t, a, "s.example.com", "/one", nil)
	assert.Equal(t, http.StatusFound, first.Status)

	// 缓存中的访问次数已过时，以条件更新为准
	second := resolve(t, a, "s.example.com", "/one", nil)
	assert.Equal(t, http.StatusTooManyRequests, second.Status)
	assert.Equal(t, int64(1), visitCount(t, db, l.ID))
}

func TestResolve_ExpiredIsAlwaysExpired(t *testing.T) {
	a, db := newTestApp(t)
	d := createDomain(t, db, "s.example.com", true)
	l := createLink(t, db, d.ID, "old", "https://example.org",
		withExpiresAt(time.Now().Add(-time.Minute)),
		withPassword(t, "secret"),
	)

	for i := 0; i < 3; i++ {
		out := resolve(t, a, "s.example.com", "/old", strPtr("secret"))
		assert.Equal(t, http.StatusGone, out.Status)
		assert.Equal(t, tdto.KindExpired, out.Kind)
		assert.Equal(t, errorc.ErrorCodeLinkExpired, out.Code)
		assert.Contains(t, string(out.Body), "LINK_EXPIRED")
	}
	assert.Equal(t, int64(0), visitCount(t, db, l.ID))
}

func TestResolve_PasswordGateWithDefaultTemplate(t *testing.T) {
	a, db := newTestApp(t)
	d := createDomain(t, db, "s.example.com", true)
	l := createLink(t, db, d.ID, "locked", "https://example.org/private", withPassword(t, "open-sesame"))

	gate := resolve(t, a, "s.example.com", "/locked", nil)
	assert.Equal(t, StatePasswordGate, gate.State)
	assert.Nil(t, gate.Code)
	assert.Equal(t, http.StatusOK, gate.Status)
	assert.Contains(t, string(gate.Body), `name="password"`)
	assert.Contains(t, string(gate.Body), `action="/locked"`)
	assert.NotContains(t, string(gate.Body), wrongPasswordMessage)

	wrong := resolve(t, a, "s.example.com", "/locked", strPtr("nope"))
	assert.Equal(t, StatePasswordGate, wrong.State)
	assert.Contains(t, string(wrong.Body), wrongPasswordMessage)
	assert.Equal(t, int64(0), visitCount(t, db, l.ID))

	ok := resolve(t, a, "s.example.com", "/locked", strPtr("open-sesame"))
	assert.Equal(t, StateRedirect, ok.State)
	assert.Equal(t, "https://example.org/private", ok.Location)
	assert.Equal(t, int64(1), visitCount(t, db, l.ID))
}

func TestResolve_PasswordGateWithBoundTemplate(t *testing.T) {
	a, db := newTestApp(t)
	tplID := createTemplate(t, db, "password", `<form action="{{action}}">{{host}} {{error}}</form>`)
	d := createDomain(t, db, "brand.example.com", true)
	require.NoError(t, db.Model(d).UpdateColumn("password_template_id", tplID).Error)
	createLink(t, db, d.ID, "vip", "https://example.org", withPassword(t, "pw"))

	gate := resolve(t, a, "brand.example.com", "/vip", nil)
	assert.Equal(t, `<form action="/vip">brand.example.com </form>`, string(gate.Body))

	wrong := resolve(t, a, "brand.example.com", "/vip", strPtr("bad"))
	assert.Equal(t, `<form action="/vip">brand.example.com `+wrongPasswordMessage+`</form>`, string(wrong.Body))
}

func TestResolve_BoundErrorTemplateForExpired(t *testing.T) {
	a, db := newTestApp(t)
	tplID := createTemplate(t, db, "error", `<p>{{status}} {{host}}/{{code}}</p>`)
	d := createDomain(t, db, "brand.example.com", true)
	require.NoError(t, db.Model(d).UpdateColumn("error_template_id", tplID).Error)
	createLink(t, db, d.ID, "gone", "https://example.org", withExpiresAt(time.Now().Add(-time.Hour)))

	out := resolve(t, a, "brand.example.com", "/gone", nil)
	assert.Equal(t, "<p>410 brand.example.com/gone</p>", string(out.Body))

	// 不存在页面不使用域名绑定的模板
	missing := resolve(t, a, "brand.example.com", "/nothing", nil)
	assert.Equal(t, http.StatusNotFound, missing.Status)
	assert.NotContains(t, string(missing.Body), "brand.example.com")
}

func TestResolve_NotFoundBodiesAreIdentical(t *testing.T) {
	a, db := newTestApp(t)
	active := createDomain(t, db, "s.example.com", true)
	inactive := createDomain(t, db, "off.example.com", false)
	createLink(t, db, inactive.ID, "abc", "https://example.org")
	createLink(t, db, active.ID, "disabled", "https://example.org", disabled())

	unknownCode := resolve(t, a, "s.example.com", "/abc", nil)
	unknownHost := resolve(t, a, "nowhere.example.com", "/abc", nil)
	inactiveHost := resolve(t, a, "off.example.com", "/abc", nil)

	for _, out := range []*Outcome{unknownCode, unknownHost, inactiveHost} {
		assert.Equal(t, StateErrorPage, out.State)
		assert.Equal(t, tdto.KindNotFound, out.Kind)
		assert.Equal(t, http.StatusNotFound, out.Status)
		assert.Equal(t, errorc.ErrorCodeNotFound, out.Code)
	}
	assert.Equal(t, unknownCode.Body, unknownHost.Body)
	assert.Equal(t, unknownCode.Body, inactiveHost.Body)

	disabledLink := resolve(t, a, "s.example.com", "/disabled", nil)
	assert.Equal(t, http.StatusNotFound, disabledLink.Status)
}

func TestResolve_InvalidCodeIsNotFound(t *testing.T) {
	a, db := newTestApp(t)
	createDomain(t, db, "s.example.com", true)

	out := resolve(t, a, "s.example.com", "/bad.code", nil)
	assert.Equal(t, http.StatusNotFound, out.Status)
}

func TestResolve_URLSchemeRendersInterstitial(t *testing.T) {
	a, db := newTestApp(t)
	d := createDomain(t, db, "s.example.com", true)
	l := createLink(t, db, d.ID, "app", "weixin://dl/business?t=1&x=2", withTargetType(model.TargetTypeURLScheme))
	require.NoError(t, db.Model(l).UpdateColumn("backup_url", "https://example.org/download").Error)

	out := resolve(t, a, "s.example.com", "/app", nil)

	assert.Equal(t, StateInterstitial, out.State)
	assert.Equal(t, http.StatusOK, out.Status)
	assert.Contains(t, string(out.Body), `href="weixin://dl/business?t=1&amp;x=2"`)
	assert.Contains(t, string(out.Body), `data-backup="https://example.org/download"`)
	assert.Equal(t, int64(1), visitCount(t, db, l.ID))
}

func TestResolve_ConcurrentVisitsRespectLimit(t *testing.T) {
	a, db := newTestApp(t)
	d := createDomain(t, db, "s.example.com", true)
	const limit = 10
	l := createLink(t, db, d.ID, "race", "https://example.org", withMaxVisits(limit))

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		redirects int
		limited   int
	)
	for i := 0; i < limit+1; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := a.Resolve(context.Background(), ResolveRequest{Host: "s.example.com", Path: "/race"})
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			switch out.Status {
			case http.StatusFound:
				redirects++
			case http.StatusTooManyRequests:
				limited++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, limit, redirects)
	assert.Equal(t, 1, limited)
	assert.Equal(t, int64(limit), visitCount(t, db, l.ID))
}
