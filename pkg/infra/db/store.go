package db

import (
	"context"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/devmemory/pkg/domain/interfaces"
	"github.com/m-mizutani/devmemory/pkg/domain/model"
	"github.com/m-mizutani/devmemory/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// decisionRow is the relational shape of model.Decision.
type decisionRow struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	CommitHash   string    `gorm:"size:40;uniqueIndex;not null"`
	DecisionType string    `gorm:"size:50;index"`
	Title        string    `gorm:"size:200"`
	Summary      string    `gorm:"type:text"`
	Reasoning    string    `gorm:"type:text"`
	Author       string    `gorm:"size:100;index"`
	CreatedAt    time.Time `gorm:"index"`
	Tags         string    `gorm:"type:text"`
}

func (decisionRow) TableName() string { return "decisions" }

func toRow(d *model.Decision) *decisionRow {
	return &decisionRow{
		ID:           d.ID,
		CommitHash:   d.CommitHash,
		DecisionType: string(d.Type),
		Title:        d.Title,
		Summary:      d.Summary,
		Reasoning:    d.Reasoning,
		Author:       d.Author,
		CreatedAt:    d.CreatedAt.UTC(),
		Tags:         d.Tags,
	}
}

func (r *decisionRow) toModel() *model.Decision {
	return &model.Decision{
		ID:         r.ID,
		CommitHash: r.CommitHash,
		Type:       types.DecisionType(r.DecisionType),
		Title:      r.Title,
		Summary:    r.Summary,
		Reasoning:  r.Reasoning,
		Author:     r.Author,
		CreatedAt:  r.CreatedAt.UTC(),
		Tags:       r.Tags,
	}
}

type groupRow struct {
	Name  string
	Total int64
}

type store struct {
	db *gorm.DB
}

// New opens (creating if needed) the SQLite database at path and migrates the schema.
func New(ctx context.Context, path string) (interfaces.DecisionRepository, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database",
			goerr.V("path", path),
			goerr.T(types.ErrTagStore),
		)
	}

	if err := db.WithContext(ctx).AutoMigrate(&decisionRow{}); err != nil {
		return nil, goerr.Wrap(err, "failed to migrate database",
			goerr.V("path", path),
			goerr.T(types.ErrTagStore),
		)
	}

	ctxlog.From(ctx).Debug("Opened decision store", "path", path)

	return &store{db: db}, nil
}

// Save inserts d in its own transaction. See interfaces.DecisionRepository for force semantics.
func (s *store) Save(ctx context.Context, d *model.Decision, force bool) (bool, error) {
	row := toRow(d)
	saved := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing decisionRow
		res := tx.Where("commit_hash = ?", d.CommitHash).Limit(1).Find(&existing)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			if !force {
				return nil
			}
			row.ID = existing.ID
			if err := tx.Save(row).Error; err != nil {
				return err
			}
			saved = true
			return nil
		}

		row.ID = 0
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		saved = true
		return nil
	})
	if err != nil {
		return false, goerr.Wrap(err, "failed to save decision",
			goerr.V("commit_hash", d.CommitHash),
			goerr.T(types.ErrTagStore),
		)
	}

	if saved {
		d.ID = row.ID
	}
	return saved, nil
}

func (s *store) FindByHash(ctx context.Context, hash string) (*model.Decision, error) {
	return s.findOne(ctx, "commit_hash = ?", hash)
}

func (s *store) FindByID(ctx context.Context, id int64) (*model.Decision, error) {
	return s.findOne(ctx, "id = ?", id)
}

func (s *store) findOne(ctx context.Context, cond string, arg any) (*model.Decision, error) {
	var rows []decisionRow
	if err := s.db.WithContext(ctx).Where(cond, arg).Limit(1).Find(&rows).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to find decision",
			goerr.V("cond", cond),
			goerr.V("arg", arg),
			goerr.T(types.ErrTagStore),
		)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].toModel(), nil
}

// Find returns decisions matching filter. Query is a substring match over title, summary and tags,
// case-insensitive for ASCII letters.
func (s *store) Find(ctx context.Context, filter model.DecisionFilter) ([]*model.Decision, error) {
	q := s.db.WithContext(ctx).Model(&decisionRow{})

	if filter.Type != "" {
		q = q.Where("decision_type = ?", string(filter.Type))
	}
	if !filter.Since.IsZero() {
		q = q.Where("created_at >= ?", filter.Since.UTC())
	}
	if !filter.Until.IsZero() {
		q = q.Where("created_at <= ?", filter.Until.UTC())
	}
	if filter.Query != "" {
		like := "%" + escapeLike(filter.Query) + "%"
		q = q.Where(`(title LIKE ? ESCAPE '\' OR summary LIKE ? ESCAPE '\' OR tags LIKE ? ESCAPE '\')`,
			like, like, like)
	}

	switch filter.Order {
	case model.SortOldestFirst:
		q = q.Order("created_at ASC").Order("id ASC")
	default:
		q = q.Order("created_at DESC").Order("id DESC")
	}

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var rows []decisionRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to query decisions",
			goerr.V("filter", filter),
			goerr.T(types.ErrTagStore),
		)
	}

	decisions := make([]*model.Decision, 0, len(rows))
	for i := range rows {
		decisions = append(decisions, rows[i].toModel())
	}
	return decisions, nil
}

func (s *store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&decisionRow{}).Count(&n).Error; err != nil {
		return 0, goerr.Wrap(err, "failed to count decisions", goerr.T(types.ErrTagStore))
	}
	return n, nil
}

func (s *store) CountByType(ctx context.Context) ([]model.GroupCount, error) {
	return s.countBy(ctx, "decision_type")
}

func (s *store) CountByAuthor(ctx context.Context) ([]model.GroupCount, error) {
	return s.countBy(ctx, "author")
}

// countBy groups by column, ordered by count descending then name.
func (s *store) countBy(ctx context.Context, column string) ([]model.GroupCount, error) {
	var rows []groupRow
	err := s.db.WithContext(ctx).Model(&decisionRow{}).
		Select(column + " AS name, COUNT(*) AS total").
		Group(column).
		Order("total DESC").
		Order("name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, goerr.Wrap(err, "failed to aggregate decisions",
			goerr.V("column", column),
			goerr.T(types.ErrTagStore),
		)
	}

	counts := make([]model.GroupCount, 0, len(rows))
	for _, r := range rows {
		counts = append(counts, model.GroupCount{Key: r.Name, Count: r.Total})
	}
	return counts, nil
}

func (s *store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return goerr.Wrap(err, "failed to get database handle")
	}
	if err := sqlDB.Close(); err != nil {
		return goerr.Wrap(err, "failed to close database")
	}
	return nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
