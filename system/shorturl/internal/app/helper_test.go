package app

import (
	"context"
	"testing"
	"time"

	"shortgate/pkg/core/logger"
	"shortgate/system/shorturl/internal/model"
	"shortgate/system/template"

	"github.com/glebarez/sqlite"
	"github.com/go-redis/cache/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	log := logger.GetLogger()
	require.NoError(t, db.AutoMigrate(&model.ShortDomain{}, &model.ShortLink{}))
	require.NoError(t, template.AutoMigrate(db, log))

	c := cache.New(&cache.Options{LocalCache: cache.NewTinyLFU(100, time.Minute)})
	tm := template.NewModuleWith(template.Deps{DB: db, Cache: c, TemplateTTL: time.Minute})
	require.NoError(t, tm.Bootstrap(context.Background(), true))

	a := NewAppWith(Deps{
		DB:         db,
		Cache:      c,
		Pages:      tm.Client,
		LinkTTL:    time.Minute,
		DomainTTL:  time.Minute,
		CodeLength: 6,
	})
	return a, db
}

func createDomain(t *testing.T, db *gorm.DB, host string, enabled bool) *model.ShortDomain {
	t.Helper()
	d := &model.ShortDomain{Host: host, Enabled: enabled}
	require.NoError(t, db.Create(d).Error)
	return d
}

type linkOption func(*model.ShortLink)

func withMaxVisits(n int64) linkOption {
	return func(l *model.ShortLink) { l.MaxVisits = &n }
}

func withVisitCount(n int64) linkOption {
	return func(l *model.ShortLink) { l.VisitCount = n }
}

func withExpiresAt(at time.Time) linkOption {
	return func(l *model.ShortLink) { l.ExpiresAt = &at }
}

func withPassword(t *testing.T, password string) linkOption {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return func(l *model.ShortLink) { l.PasswordHash = string(hash) }
}

func withTargetType(tt model.TargetType) linkOption {
	return func(l *model.ShortLink) { l.TargetType = tt }
}

func disabled() linkOption {
	return func(l *model.ShortLink) { l.Enabled = false }
}

func createLink(t *testing.T, db *gorm.DB, domainID int64, code, url string, opts ...linkOption) *model.ShortLink {
	t.Helper()
	l := &model.ShortLink{
		DomainID:   domainID,
		Code:       code,
		TargetType: model.TargetTypeURL,
		URL:        url,
		Enabled:    true,
	}
	for _, opt := range opts {
		opt(l)
	}
	require.NoError(t, db.Create(l).Error)
	return l
}

func visitCount(t *testing.T, db *gorm.DB, id int64) int64 {
	t.Helper()
	var l model.ShortLink
	require.NoError(t, db.First(&l, id).Error)
	return l.VisitCount
}

func createTemplate(t *testing.T, db *gorm.DB, templateType, body string) int64 {
	t.Helper()
	now := time.Now()
	require.NoError(t, db.Exec(
		"INSERT INTO templates (created_at, updated_at, type, name, body, asset_prefix, is_system) VALUES (?, ?, ?, ?, ?, ?, ?)",
		now, now, templateType, "custom "+templateType, body, "", false,
	).Error)
	var id int64
	require.NoError(t, db.Raw("SELECT id FROM templates WHERE name = ?", "custom "+templateType).Scan(&id).Error)
	return id
}

func strPtr(s string) *string { return &s }
