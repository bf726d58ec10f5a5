package resource

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=store.go -destination=mock/store_mock.go -package=mock

// Repository is the generic resource-access contract shared by all three
// entities. Criteria are name -> value equality filters taken verbatim from
// query parameters; an empty map means "all records".
type Repository[E any] interface {
	WithTx(tx *sql.Tx) Repository[E]
	ExistsBy(ctx context.Context, criteria map[string]string) (bool, error)
	Find(ctx context.Context, criteria map[string]string) ([]E, error)
	FindByID(ctx context.Context, id uint) (*E, error)
	Create(ctx context.Context, e *E) error
	Update(ctx context.Context, e *E) error
	Delete(ctx context.Context, id uint) error
}

type store[E any] struct {
	db     *gorm.DB
	schema Schema
}

// NewStore builds the gorm-backed Repository for one entity schema. All three
// entity packages instantiate this instead of carrying their own copy of the
// CRUD plumbing.
func NewStore[E any](db *gorm.DB, schema Schema) Repository[E] {
	return &store[E]{db: db, schema: schema}
}

// WithTx rebinds the session onto the caller's transaction so repo calls and
// the outbox write commit or roll back together.
func (s *store[E]) WithTx(tx *sql.Tx) Repository[E] {
	session := s.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &store[E]{db: session, schema: s.schema}
}

func (s *store[E]) scoped(ctx context.Context, criteria map[string]string) (*gorm.DB, error) {
	clauses, err := s.schema.WhereClauses(criteria)
	if err != nil {
		return nil, err
	}
	q := s.db.WithContext(ctx).Table(s.schema.Table)
	for _, c := range clauses {
		q = q.Where(c.Column+" = ?", c.Value)
	}
	return q, nil
}

func (s *store[E]) ExistsBy(ctx context.Context, criteria map[string]string) (bool, error) {
	q, err := s.scoped(ctx, criteria)
	if err != nil {
		return false, err
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *store[E]) Find(ctx context.Context, criteria map[string]string) ([]E, error) {
	q, err := s.scoped(ctx, criteria)
	if err != nil {
		return nil, err
	}
	var rows []E
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *store[E]) FindByID(ctx context.Context, id uint) (*E, error) {
	var row E
	err := s.db.WithContext(ctx).Table(s.schema.Table).First(&row, "id = ?", id).Error
	return &row, err
}

func (s *store[E]) Create(ctx context.Context, e *E) error {
	return s.db.WithContext(ctx).Table(s.schema.Table).Create(e).Error
}

func (s *store[E]) Update(ctx context.Context, e *E) error {
	return s.db.WithContext(ctx).Table(s.schema.Table).Save(e).Error
}

func (s *store[E]) Delete(ctx context.Context, id uint) error {
	var zero E
	return s.db.WithContext(ctx).Table(s.schema.Table).Delete(&zero, "id = ?", id).Error
}
