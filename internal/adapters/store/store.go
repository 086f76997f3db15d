// Package store implements the repository ports on top of GORM with a pure-Go
// SQLite driver. Every repository translates storage failures into domain
// sentinel errors so that services never see driver-specific errors.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/platform/config"
)

const (
	memoryPath         = ":memory:"
	slowQueryThreshold = 200 * time.Millisecond
)

// Open connects to the configured SQLite database. In-memory databases are
// limited to a single connection because each connection would otherwise
// see its own empty database.
func Open(cfg *config.DatabaseConfig, log *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.New(slog.NewLogLogger(log.Handler(), slog.LevelDebug), logger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  parseLogLevel(cfg.LogLevel),
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("opening database %q: %w", cfg.Path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing connection pool: %w", err)
	}
	maxOpen := cfg.MaxOpenConns
	if cfg.Path == memoryPath || maxOpen <= 0 {
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen)

	return db, nil
}

// Migrate creates or updates every table used by the repositories.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models()...); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "info":
		return logger.Info
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Silent
	}
}

// HealthChecker reports whether the database answers a ping.
type HealthChecker struct {
	db *gorm.DB
}

// NewHealthChecker returns a checker named "database".
func NewHealthChecker(db *gorm.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// Name implements ports.HealthChecker.
func (h *HealthChecker) Name() string { return "database" }

// HealthCheck implements ports.HealthChecker.
func (h *HealthChecker) HealthCheck(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// translate maps driver and GORM errors onto domain sentinels. what names
// the entity for the wrapped message.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey), strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return fmt.Errorf("%s already exists: %w", what, domain.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern returns a case-insensitive substring pattern with LIKE
// metacharacters escaped. Use with ESCAPE '\'.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}

// priorityRank orders priorities low to high for sorting.
const priorityRank = "CASE priority WHEN 'low' THEN 0 WHEN 'medium' THEN 1 WHEN 'high' THEN 2 WHEN 'critical' THEN 3 ELSE 4 END"

// orderBy applies a resolved sort with an id tie-break so that pagination is
// stable.
func orderBy(allowed query.SortFields, s query.Sort) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return applyOrder(tx, allowed, s)
	}
}

func applyOrder(tx *gorm.DB, allowed query.SortFields, s query.Sort) *gorm.DB {
	col := allowed.Column(s.By)
	if col == "" {
		col = "created_at"
	}
	if col == "priority" {
		col = priorityRank
	}
	dir := "DESC"
	if s.Order == query.OrderAsc {
		dir = "ASC"
	}
	return tx.Order(col + " " + dir).Order("id " + dir)
}

// page counts the filtered rows, then loads one ordered page into dst.
func page[M any](tx *gorm.DB, p query.Page, order func(*gorm.DB) *gorm.DB, dst *[]M) (int64, error) {
	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, err
	}
	if err := order(tx.Session(&gorm.Session{})).Offset(p.Offset()).Limit(p.Limit).Find(dst).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// groupCounts runs SELECT col, COUNT(*) ... GROUP BY col on tx.
func groupCounts(tx *gorm.DB, col string) (map[string]int64, error) {
	var rows []struct {
		Grp   string
		Total int64
	}
	if err := tx.Select(col + " AS grp, COUNT(*) AS total").Group(col).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Grp] = r.Total
	}
	return out, nil
}

func mapModels[M, D any](in []M, fn func(*M) D) []D {
	out := make([]D, len(in))
	for i := range in {
		out[i] = fn(&in[i])
	}
	return out
}

// groupColumn whitelists the columns entities may be grouped by.
func groupColumn(field string) (string, error) {
	switch field {
	case "status", "priority":
		return field, nil
	default:
		return "", fmt.Errorf("grouping by %q: %w", field, domain.ErrValidation)
	}
}

// strs converts named string values for IN clauses.
func strs[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}
