package security

import (
	"context"
	"strings"
	"time"

	"shortgate/pkg/core/consts"
	errorc "shortgate/pkg/core/err"

	"github.com/gofiber/fiber/v2"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type claimsKey struct{}

// EvictChallenge 401 时附带，前端据此清除本地令牌
const EvictChallenge = `Bearer error="invalid_token"`

type Auth struct {
	jwtClient *JwtClient
}

func NewAuth(secret []byte, expireTime time.Duration) *Auth {
	return &Auth{
		jwtClient: NewJwtClient(secret, expireTime),
	}
}

// IssueToken 登录成功后签发令牌
func (a *Auth) IssueToken(userID int64, username, role string) (string, time.Time, error) {
	return a.jwtClient.CreateToken(userID, username, role)
}

// Verify 解析 Authorization 头中的令牌
func (a *Auth) Verify(header string) (*VerifiedClaims, error) {
	if !strings.HasPrefix(header, consts.BearerPrefix) {
		return nil, errorc.New("authorization header is required", nil).NoAuth()
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, consts.BearerPrefix))
	if token == "" {
		return nil, errorc.New("authorization header is required", nil).NoAuth()
	}

	claims, err := a.jwtClient.Verify(token)
	if err != nil {
		return nil, errorc.New("invalid token", err).NoAuth()
	}
	return claims, nil
}

// RequireAuth 鉴权中间件；传入角色时要求命中其一，admin 角色不受限
func (a *Auth) RequireAuth(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := a.Verify(c.Get(consts.AuthHeader))
		if err != nil {
			c.Set(fiber.HeaderWWWAuthenticate, EvictChallenge)
			return err
		}

		SaveToContext(c, claims)

		if !hasRole(claims.Role, roles) {
			return errorc.New("permission denied", nil).Forbidden()
		}
		return c.Next()
	}
}

func hasRole(role string, required []string) bool {
	if len(required) == 0 || role == RoleAdmin {
		return true
	}
	for _, r := range required {
		if r == role {
			return true
		}
	}
	return false
}

// SaveToContext 把已校验的身份写入 Locals 与 UserContext
func SaveToContext(c *fiber.Ctx, claims *VerifiedClaims) {
	c.Locals("user_id", claims.UserID)
	c.Locals("role", claims.Role)
	c.SetUserContext(context.WithValue(c.UserContext(), claimsKey{}, claims))
}

func GetClaimsByCtx(ctx context.Context) (*VerifiedClaims, error) {
	claims, ok := ctx.Value(claimsKey{}).(*VerifiedClaims)
	if !ok || claims == nil {
		return nil, errorc.New("claims not found", nil).NoAuth()
	}
	return claims, nil
}

func GetUserIDByCtx(ctx context.Context) (int64, error) {
	claims, err := GetClaimsByCtx(ctx)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
