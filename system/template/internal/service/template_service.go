package service

import (
	"context"
	"embed"
	"fmt"
	"sync"
	"time"

	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/logger"
	"shortgate/pkg/core/mvc"
	"shortgate/system/template/api/dto"
	"shortgate/system/template/internal/dao"
	"shortgate/system/template/internal/model"

	"github.com/go-redis/cache/v9"
)

//go:embed defaults/*.html
var defaultBodies embed.FS

const templateCacheKey = "template:%d"

// TemplateService 模板选择
type TemplateService struct {
	mvc.IBaseService[model.Template]
	Dao   *dao.TemplateDao
	cache *cache.Cache
	ttl   time.Duration
	log   *logger.Log
	err   *errorc.ErrorBuilder

	mu       sync.RWMutex
	defaults map[model.TemplateType]*model.Template
}

// NewTemplateService 创建模板服务实例
func NewTemplateService(daoInstance *dao.TemplateDao, c *cache.Cache, ttl time.Duration, log *logger.Log) *TemplateService {
	return &TemplateService{
		IBaseService: mvc.NewBaseService[model.Template](daoInstance),
		Dao:          daoInstance,
		cache:        c,
		ttl:          ttl,
		log:          log.WithEntryName("TemplateService"),
		err:          errorc.NewErrorBuilder("TemplateService"),
		defaults:     make(map[model.TemplateType]*model.Template),
	}
}

// EnsureSystemTemplates 缺少系统默认模板的类型写入内置模板
func (s *TemplateService) EnsureSystemTemplates(ctx context.Context) error {
	for _, t := range model.AllTemplateTypes {
		_, err := s.Dao.FindSystemByType(ctx, t)
		if err == nil {
			continue
		}
		if !errorc.IsNotFound(err) {
			return err
		}

		body, err := defaultBodies.ReadFile(fmt.Sprintf("defaults/%s.html", t))
		if err != nil {
			return s.err.New("读取内置模板失败", err)
		}
		tpl := &model.Template{
			Type:     t,
			Name:     fmt.Sprintf("系统默认%s模板", t),
			Body:     string(body),
			IsSystem: true,
		}
		if err := s.Dao.Create(ctx, tpl); err != nil {
			return err
		}
		s.log.WithField("type", t).WithField("templateId", tpl.ID).Info("已写入内置系统模板")
	}
	return nil
}

// LoadDefaults 加载各类型的系统默认模板，任一类型缺失即返回错误
func (s *TemplateService) LoadDefaults(ctx context.Context) error {
	loaded := make(map[model.TemplateType]*model.Template, len(model.AllTemplateTypes))
	for _, t := range model.AllTemplateTypes {
		tpl, err := s.Dao.FindSystemByType(ctx, t)
		if err != nil {
			return s.err.New(fmt.Sprintf("缺少 %s 类型的系统默认模板", t), err)
		}
		loaded[t] = tpl
	}

	s.mu.Lock()
	s.defaults = loaded
	s.mu.Unlock()
	return nil
}

// Default 返回某类型的系统默认模板
func (s *TemplateService) Default(templateType model.TemplateType) (*model.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tpl, ok := s.defaults[templateType]
	if !ok {
		return nil, s.err.New(fmt.Sprintf("系统默认模板 %s 未加载", templateType), nil).WithCode(errorc.ErrorCodeInternal)
	}
	return tpl, nil
}

// Select 按域名绑定与页面种类选择模板；不存在页面一律使用系统默认错误模板
func (s *TemplateService) Select(ctx context.Context, bindings dto.Bindings, kind dto.Kind) (*model.Template, error) {
	templateType, ok := model.TypeOfKind(kind)
	if !ok {
		return nil, s.err.New(fmt.Sprintf("未知的页面种类 %s", kind), nil).WithCode(errorc.ErrorCodeInternal)
	}
	if kind == dto.KindNotFound {
		return s.Default(templateType)
	}

	var bound *int64
	switch templateType {
	case model.TemplateTypeError:
		bound = bindings.ErrorTemplateID
	case model.TemplateTypePassword:
		bound = bindings.PasswordTemplateID
	case model.TemplateTypeInterstitial:
		bound = bindings.InterstitialTemplateID
	}
	if bound == nil {
		return s.Default(templateType)
	}

	tpl, err := s.findCached(ctx, *bound)
	if err != nil {
		if !errorc.IsNotFound(err) {
			return nil, err
		}
		s.log.WithTrace(ctx).WithField("templateId", *bound).Warn("绑定的模板不存在，使用系统默认模板")
		return s.Default(templateType)
	}
	if tpl.Type != templateType {
		s.log.WithTrace(ctx).WithField("templateId", *bound).WithField("type", tpl.Type).Warn("绑定的模板类型不匹配，使用系统默认模板")
		return s.Default(templateType)
	}
	return tpl, nil
}

func (s *TemplateService) findCached(ctx context.Context, id int64) (*model.Template, error) {
	var tpl *model.Template
	err := s.cache.Once(&cache.Item{
		Ctx:   ctx,
		Key:   fmt.Sprintf(templateCacheKey, id),
		Value: &tpl,
		TTL:   s.ttl,
		Do: func(*cache.Item) (interface{}, error) {
			return s.Dao.FindById(ctx, id)
		},
	})
	if err != nil {
		return nil, err
	}
	return tpl, nil
}
