package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrInvalidID = errors.New("invalid id format")
	ErrDuplicate = errors.New("duplicate key")
)

// Repository is the generic store contract the CRUD handler factory is built
// against. Each entity type gets one implementation, specialized only by the
// preloaded associations.
type Repository[T any] interface {
	FindByID(ctx context.Context, id string) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, entity *T) error
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id string) error
}

// GormRepository implements Repository on a gorm handle.
type GormRepository[T any] struct {
	db       *gorm.DB
	preloads []string
}

func NewGormRepository[T any](db *gorm.DB, preloads ...string) *GormRepository[T] {
	return &GormRepository[T]{db: db, preloads: preloads}
}

func (r *GormRepository[T]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

func (r *GormRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	if err := CheckID(id); err != nil {
		return nil, err
	}
	var entity T
	err := r.query(ctx).First(&entity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *GormRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	entities := make([]T, 0)
	if err := r.query(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *GormRepository[T]) Create(ctx context.Context, entity *T) error {
	err := r.db.WithContext(ctx).Create(entity).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// Save persists every field of an already-loaded entity. Partial updates go
// through FindByID, mutate, Save so validation always sees the full document.
func (r *GormRepository[T]) Save(ctx context.Context, entity *T) error {
	err := r.db.WithContext(ctx).Save(entity).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (r *GormRepository[T]) Delete(ctx context.Context, id string) error {
	if err := CheckID(id); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DB exposes the underlying handle for entity-specific queries.
func (r *GormRepository[T]) DB() *gorm.DB {
	return r.db
}

// CheckID rejects ids that are not well-formed UUIDs before they reach the
// database.
func CheckID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}
