package app

import (
	"context"

	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/mvc"
	"shortgate/system/shorturl/api/dto"
	"shortgate/system/shorturl/internal/model"
	"shortgate/utils"
)

// ListLinks 分页查询短链接，domainID 为 0 时不按域名过滤
func (a *App) ListLinks(ctx context.Context, domainID int64, page *mvc.Page) ([]*dto.LinkDTO, int64, error) {
	links, total, err := a.LinkService.Dao.ListByDomainWithPage(ctx, domainID, page)
	if err != nil {
		return nil, 0, err
	}
	content := make([]*dto.LinkDTO, 0, len(links))
	for _, l := range links {
		content = append(content, toLinkDTO(l))
	}
	return content, total, nil
}

// GetLink 查询短链接详情
func (a *App) GetLink(ctx context.Context, id int64) (*dto.LinkDTO, error) {
	link, err := a.LinkService.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	return toLinkDTO(link), nil
}

// CreateShortLink 创建短链接
func (a *App) CreateShortLink(ctx context.Context, req *dto.CreateLinkReq) (*dto.LinkDTO, error) {
	targetType := model.TargetType(req.TargetType)
	if !targetType.IsValid() {
		return nil, a.err.New("无效的目标类型", nil).ValidWithCtx()
	}

	if err := a.LinkService.CheckTarget(targetType, req.URL, req.BackupURL); err != nil {
		return nil, err
	}

	domain, err := a.DomainService.FindById(ctx, req.DomainID)
	if err != nil {
		if errorc.IsNotFound(err) {
			return nil, a.err.New("域名不存在", err).ValidWithCtx()
		}
		return nil, err
	}

	var code string
	if req.CustomCode != "" {
		if !utils.IsShortCode(req.CustomCode) {
			return nil, a.err.New("短码格式不正确", nil).ValidWithCtx()
		}
		exists, err := a.LinkService.Dao.ExistsByDomainAndCode(ctx, domain.ID, req.CustomCode)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, a.err.New("短码已存在", nil).ValidWithCtx()
		}
		code = req.CustomCode
	} else {
		codeLength := req.CodeLength
		if codeLength <= 0 {
			codeLength = a.codeLength
		}
		code, err = a.LinkService.GenerateUniqueCode(ctx, domain.ID, codeLength, 0)
		if err != nil {
			return nil, err
		}
	}

	passwordHash, err := a.LinkService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	link := &model.ShortLink{
		DomainID:     domain.ID,
		Code:         code,
		TargetType:   targetType,
		URL:          req.URL,
		BackupURL:    req.BackupURL,
		ExpiresAt:    req.ExpiresAt,
		PasswordHash: passwordHash,
		MaxVisits:    positiveOrNil(req.MaxVisits),
		Enabled:      true,
		Comment:      req.Comment,
	}
	if err := a.LinkService.Create(ctx, link); err != nil {
		return nil, err
	}

	a.invalidateLinkCache(ctx, domain.ID, code)
	return toLinkDTO(link), nil
}

// UpdateShortLink 更新短链接
func (a *App) UpdateShortLink(ctx context.Context, id int64, req *dto.UpdateLinkReq) (*dto.LinkDTO, error) {
	link, err := a.LinkService.FindById(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TargetType != nil {
		targetType := model.TargetType(*req.TargetType)
		if !targetType.IsValid() {
			return nil, a.err.New("无效的目标类型", nil).ValidWithCtx()
		}
		link.TargetType = targetType
	}
	if req.URL != nil {
		link.URL = *req.URL
	}
	if req.BackupURL != nil {
		link.BackupURL = *req.BackupURL
	}
	if req.ClearExpiresAt {
		link.ExpiresAt = nil
	} else if req.ExpiresAt != nil {
		link.ExpiresAt = req.ExpiresAt
	}
	if err := a.LinkService.CheckTarget(link.TargetType, link.URL, link.BackupURL); err != nil {
		return nil, err
	}
	if req.MaxVisits != nil {
		maxVisits := positiveOrNil(req.MaxVisits)
		if maxVisits != nil && *maxVisits < link.VisitCount {
			return nil, a.err.New("最大访问次数不能小于已访问次数", nil).ValidWithCtx()
		}
		link.MaxVisits = maxVisits
	}
	if req.Password != nil {
		hash, err := a.LinkService.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		link.PasswordHash = hash
	}
	if req.Comment != nil {
		link.Comment = *req.Comment
	}

	// visit_count 只由访问路径修改，这里保存时排除
	if err := a.LinkService.Dao.DB.WithContext(ctx).Omit("visit_count").Save(link).Error; err != nil {
		return nil, a.err.New("更新短链接失败", err).DB()
	}

	a.invalidateLinkCache(ctx, link.DomainID, link.Code)
	return a.GetLink(ctx, id)
}

// UpdateShortLinkStatus 更新短链接启用状态
func (a *App) UpdateShortLinkStatus(ctx context.Context, id int64, enabled bool) error {
	link, err := a.LinkService.FindById(ctx, id)
	if err != nil {
		return err
	}
	if err := a.LinkService.Dao.UpdateEnabled(ctx, id, enabled); err != nil {
		return err
	}

	a.invalidateLinkCache(ctx, link.DomainID, link.Code)
	return nil
}

// DeleteShortLink 删除短链接
func (a *App) DeleteShortLink(ctx context.Context, id int64) error {
	link, err := a.LinkService.FindById(ctx, id)
	if err != nil {
		return err
	}
	if err := a.LinkService.DeleteById(ctx, id); err != nil {
		return err
	}

	a.invalidateLinkCache(ctx, link.DomainID, link.Code)
	return nil
}

func toLinkDTO(l *model.ShortLink) *dto.LinkDTO {
	return &dto.LinkDTO{
		ID:          l.ID,
		DomainID:    l.DomainID,
		Code:        l.Code,
		TargetType:  string(l.TargetType),
		URL:         l.URL,
		BackupURL:   l.BackupURL,
		ExpiresAt:   l.ExpiresAt,
		MaxVisits:   l.MaxVisits,
		VisitCount:  l.VisitCount,
		HasPassword: l.HasPassword(),
		Enabled:     l.Enabled,
		Comment:     l.Comment,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
