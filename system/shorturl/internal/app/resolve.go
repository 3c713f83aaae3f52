package app

import (
	"context"
	"net/http"
	"time"

	errorc "shortgate/pkg/core/err"
	"shortgate/system/shorturl/internal/model"
	tdto "shortgate/system/template/api/dto"
)

// State 解析结束时的状态
type State string

const (
	StateRedirect     State = "REDIRECT"
	StateInterstitial State = "INTERSTITIAL"
	StatePasswordGate State = "PASSWORD_GATE"
	StateErrorPage    State = "ERROR_PAGE"
)

const (
	notFoundMessage      = "您访问的链接不存在"
	expiredMessage       = "该链接已过期"
	limitReachedMessage  = "该链接的访问次数已达上限"
	wrongPasswordMessage = "密码错误，请重新输入"
)

// ResolveRequest 一次短链访问
type ResolveRequest struct {
	Host string
	Path string
	// Password 访问者提交的密码；nil 表示未提交
	Password *string
}

// Outcome 解析结果，Location 与 Body 二选一；错误页携带 Code，Status 取自 Code
type Outcome struct {
	State    State
	Kind     tdto.Kind
	Code     *errorc.ErrorCode
	Status   int
	Location string
	Body     []byte
}

// Resolve 按 host → 域名 → 短链接 → 策略检查 的顺序解析一次访问
func (a *App) Resolve(ctx context.Context, req ResolveRequest) (*Outcome, error) {
	key, ok := ParseRouteKey(req.Host, req.Path)
	if !ok {
		return a.notFound(ctx, key.Code)
	}

	domain, err := a.lookupDomain(ctx, key.Host)
	if err != nil {
		if errorc.IsNotFound(err) {
			return a.notFound(ctx, key.Code)
		}
		return nil, err
	}
	if !domain.Enabled {
		return a.notFound(ctx, key.Code)
	}

	link, err := a.lookupLink(ctx, domain.ID, key.Code)
	if err != nil {
		if errorc.IsNotFound(err) {
			return a.notFound(ctx, key.Code)
		}
		return nil, err
	}
	if !link.Enabled {
		return a.notFound(ctx, key.Code)
	}

	if link.IsExpired(time.Now()) {
		return a.errorPage(ctx, domain, key.Code, tdto.KindExpired)
	}
	if link.IsVisitLimitReached() {
		return a.errorPage(ctx, domain, key.Code, tdto.KindLimitReached)
	}
	if link.HasPassword() {
		if req.Password == nil {
			return a.passwordGate(ctx, domain, key.Code, "")
		}
		if !a.LinkService.VerifyPassword(*req.Password, link.PasswordHash) {
			return a.passwordGate(ctx, domain, key.Code, wrongPasswordMessage)
		}
	}

	counted, err := a.LinkService.Dao.IncrementIfAllowed(ctx, link.ID)
	if err != nil {
		return nil, err
	}
	if !counted {
		return a.rejected(ctx, domain, link)
	}

	if link.TargetType.NeedsLandingPage() {
		return a.interstitial(ctx, domain, link)
	}
	return &Outcome{
		State:    StateRedirect,
		Status:   http.StatusFound,
		Location: link.URL,
	}, nil
}

// rejected 条件更新未命中时重新读取短链接，判断被拒绝的原因
func (a *App) rejected(ctx context.Context, domain *model.ShortDomain, cached *model.ShortLink) (*Outcome, error) {
	a.invalidateLinkCache(ctx, domain.ID, cached.Code)

	link, err := a.LinkService.Dao.FindById(ctx, cached.ID)
	if err != nil {
		if errorc.IsNotFound(err) {
			return a.notFound(ctx, cached.Code)
		}
		return nil, err
	}

	switch {
	case !link.Enabled:
		return a.notFound(ctx, link.Code)
	case link.IsExpired(time.Now()):
		return a.errorPage(ctx, domain, link.Code, tdto.KindExpired)
	default:
		return a.errorPage(ctx, domain, link.Code, tdto.KindLimitReached)
	}
}

// notFound 不存在页面只使用系统默认模板与固定文案，不区分域名未知、域名禁用与短码未知
func (a *App) notFound(ctx context.Context, code string) (*Outcome, error) {
	errCode := errorc.ErrorCodeNotFound
	out, err := a.render(ctx, tdto.Bindings{}, StateErrorPage, tdto.KindNotFound, errCode.Status, tdto.PageVars{
		Code:      code,
		Status:    errCode.Status,
		Reason:    http.StatusText(errCode.Status),
		Message:   notFoundMessage,
		ErrorCode: errCode.Name,
	})
	if err != nil {
		return nil, err
	}
	out.Code = errCode
	return out, nil
}

func (a *App) errorPage(ctx context.Context, domain *model.ShortDomain, code string, kind tdto.Kind) (*Outcome, error) {
	errCode, message := errorc.ErrorCodeLinkExpired, expiredMessage
	if kind == tdto.KindLimitReached {
		errCode, message = errorc.ErrorCodeLinkLimitReached, limitReachedMessage
	}
	out, err := a.render(ctx, bindingsOf(domain), StateErrorPage, kind, errCode.Status, tdto.PageVars{
		Code:      code,
		Host:      domain.Host,
		Status:    errCode.Status,
		Reason:    http.StatusText(errCode.Status),
		Message:   message,
		ErrorCode: errCode.Name,
	})
	if err != nil {
		return nil, err
	}
	out.Code = errCode
	return out, nil
}

func (a *App) passwordGate(ctx context.Context, domain *model.ShortDomain, code, errMsg string) (*Outcome, error) {
	return a.render(ctx, bindingsOf(domain), StatePasswordGate, tdto.KindPasswordRequired, http.StatusOK, tdto.PageVars{
		Code:   code,
		Host:   domain.Host,
		Status: http.StatusOK,
		Action: "/" + code,
		Error:  errMsg,
	})
}

func (a *App) interstitial(ctx context.Context, domain *model.ShortDomain, link *model.ShortLink) (*Outcome, error) {
	return a.render(ctx, bindingsOf(domain), StateInterstitial, tdto.KindInterstitial, http.StatusOK, tdto.PageVars{
		Code:      link.Code,
		Host:      domain.Host,
		Status:    http.StatusOK,
		URL:       link.URL,
		BackupURL: link.BackupURL,
	})
}

func (a *App) render(ctx context.Context, bindings tdto.Bindings, state State, kind tdto.Kind, status int, vars tdto.PageVars) (*Outcome, error) {
	page, err := a.pages.RenderPage(ctx, bindings, kind, vars)
	if err != nil {
		return nil, a.err.New("渲染页面失败", err).WithCode(errorc.ErrorCodeInternal)
	}
	return &Outcome{
		State:  state,
		Kind:   kind,
		Status: status,
		Body:   page.Body,
	}, nil
}

func bindingsOf(domain *model.ShortDomain) tdto.Bindings {
	return tdto.Bindings{
		ErrorTemplateID:        domain.ErrorTemplateID,
		PasswordTemplateID:     domain.PasswordTemplateID,
		InterstitialTemplateID: domain.InterstitialTemplateID,
	}
}
