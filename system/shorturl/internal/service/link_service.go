package service

import (
	"context"

	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/logger"
	"shortgate/pkg/core/mvc"
	"shortgate/system/shorturl/internal/dao"
	"shortgate/system/shorturl/internal/model"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCodeRetries 生成短码时的最大冲突重试次数
	DefaultCodeRetries = 10
)

// LinkService 短链接业务逻辑层
type LinkService struct {
	mvc.IBaseService[model.ShortLink]
	Dao *dao.LinkDao
	log *logger.Log
	err *errorc.ErrorBuilder
}

// NewLinkService 创建短链接服务实例
func NewLinkService(daoInstance *dao.LinkDao, log *logger.Log) *LinkService {
	return &LinkService{
		IBaseService: mvc.NewBaseService[model.ShortLink](daoInstance),
		Dao:          daoInstance,
		log:          log.WithEntryName("LinkService"),
		err:          errorc.NewErrorBuilder("LinkService"),
	}
}

// GenerateUniqueCode 生成唯一短码（带冲突重试）
func (s *LinkService) GenerateUniqueCode(ctx context.Context, domainID int64, codeLength int, maxRetries int) (string, error) {
	if codeLength <= 0 {
		codeLength = 6
	}
	if maxRetries <= 0 {
		maxRetries = DefaultCodeRetries
	}

	for i := 0; i < maxRetries; i++ {
		code, err := GenerateShortCode(codeLength)
		if err != nil {
			return "", s.err.New("生成短码失败", err)
		}

		exists, err := s.Dao.ExistsByDomainAndCode(ctx, domainID, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}

	return "", s.err.New("生成唯一短码失败（超过重试次数）", nil)
}

// HashPassword 对访问密码做 bcrypt 散列，空密码表示不设密码
func (s *LinkService) HashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", s.err.New("密码散列失败", err)
	}
	return string(hash), nil
}

// VerifyPassword 校验访问密码
func (s *LinkService) VerifyPassword(password, passwordHash string) bool {
	if passwordHash == "" {
		return true
	}
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
