package app

import (
	"context"

	"shortgate/pkg/core/mvc"
	"shortgate/system/shorturl/api/dto"
	"shortgate/system/shorturl/internal/model"
	"shortgate/system/shorturl/internal/service"
)

// ListDomains 分页查询短域名
func (a *App) ListDomains(ctx context.Context, page *mvc.Page) ([]*dto.DomainDTO, int64, error) {
	domains, total, err := a.DomainService.Dao.ListWithPage(ctx, page)
	if err != nil {
		return nil, 0, err
	}
	content := make([]*dto.DomainDTO, 0, len(domains))
	for _, d := range domains {
		content = append(content, toDomainDTO(d))
	}
	return content, total, nil
}

// GetDomainDetail 查询短域名详情及其短链接数量
func (a *App) GetDomainDetail(ctx context.Context, id int64) (*dto.DomainDetailDTO, error) {
	domain, err := a.DomainService.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := a.LinkService.Dao.CountByDomain(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.DomainDetailDTO{DomainDTO: *toDomainDTO(domain), LinkCount: count}, nil
}

// CreateDomain 创建短域名
func (a *App) CreateDomain(ctx context.Context, req *dto.CreateDomainReq) (*dto.DomainDTO, error) {
	domain := &model.ShortDomain{
		Host:                   service.NormalizeHost(req.Host),
		Enabled:                true,
		IsDefault:              req.IsDefault,
		Comment:                req.Comment,
		ErrorTemplateID:        positiveOrNil(req.ErrorTemplateID),
		PasswordTemplateID:     positiveOrNil(req.PasswordTemplateID),
		InterstitialTemplateID: positiveOrNil(req.InterstitialTemplateID),
	}
	if req.Enabled != nil {
		domain.Enabled = *req.Enabled
	}
	if domain.Host == "" {
		return nil, a.err.New("域名不能为空", nil).ValidWithCtx()
	}

	if err := a.DomainService.Save(ctx, domain); err != nil {
		return nil, err
	}

	a.invalidateDomainCache(ctx, domain.Host)
	return toDomainDTO(domain), nil
}

// UpdateDomain 更新短域名
func (a *App) UpdateDomain(ctx context.Context, id int64, req *dto.UpdateDomainReq) (*dto.DomainDTO, error) {
	domain, err := a.DomainService.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	oldHost := domain.Host

	if req.Host != nil {
		domain.Host = service.NormalizeHost(*req.Host)
		if domain.Host == "" {
			return nil, a.err.New("域名不能为空", nil).ValidWithCtx()
		}
	}
	if req.Enabled != nil {
		domain.Enabled = *req.Enabled
	}
	if req.IsDefault != nil {
		domain.IsDefault = *req.IsDefault
	}
	if req.Comment != nil {
		domain.Comment = *req.Comment
	}
	if req.ErrorTemplateID != nil {
		domain.ErrorTemplateID = positiveOrNil(req.ErrorTemplateID)
	}
	if req.PasswordTemplateID != nil {
		domain.PasswordTemplateID = positiveOrNil(req.PasswordTemplateID)
	}
	if req.InterstitialTemplateID != nil {
		domain.InterstitialTemplateID = positiveOrNil(req.InterstitialTemplateID)
	}

	if err := a.DomainService.Save(ctx, domain); err != nil {
		return nil, err
	}

	a.invalidateDomainCache(ctx, oldHost, domain.Host)
	return toDomainDTO(domain), nil
}

// DeleteDomain 删除短域名，域名下仍有短链接时拒绝删除
func (a *App) DeleteDomain(ctx context.Context, id int64) error {
	domain, err := a.DomainService.FindById(ctx, id)
	if err != nil {
		return err
	}
	count, err := a.LinkService.Dao.CountByDomain(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return a.err.New("域名下仍有短链接，无法删除", nil).ValidWithCtx()
	}

	if err := a.DomainService.DeleteById(ctx, id); err != nil {
		return err
	}

	a.invalidateDomainCache(ctx, domain.Host)
	return nil
}

func positiveOrNil(id *int64) *int64 {
	if id == nil || *id <= 0 {
		return nil
	}
	v := *id
	return &v
}

func toDomainDTO(d *model.ShortDomain) *dto.DomainDTO {
	return &dto.DomainDTO{
		ID:                     d.ID,
		Host:                   d.Host,
		Enabled:                d.Enabled,
		IsDefault:              d.IsDefault,
		Comment:                d.Comment,
		ErrorTemplateID:        d.ErrorTemplateID,
		PasswordTemplateID:     d.PasswordTemplateID,
		InterstitialTemplateID: d.InterstitialTemplateID,
		CreatedAt:              d.CreatedAt,
		UpdatedAt:              d.UpdatedAt,
	}
}
