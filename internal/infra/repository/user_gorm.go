package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/user"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) List(
	ctx context.Context,
	spec query.Spec,
) (query.Page[models.User], error) {
	return list[models.User](ctx, r.db, userRenderer, spec, "user", nil)
}

func (r *UserGormRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, dbErr(err, "user", "get")
	}
	return &u, nil
}

func (r *UserGormRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error; err != nil {
		return nil, dbErr(err, "user", "get by email")
	}
	return &u, nil
}

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	return dbErr(r.db.WithContext(ctx).Create(u).Error, "user", "create")
}

func (r *UserGormRepository) Update(ctx context.Context, u *models.User) error {
	return dbErr(r.db.WithContext(ctx).Save(u).Error, "user", "update")
}

func (r *UserGormRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, dbErr(err, "user", "email check")
	}
	return n > 0, nil
}

var _ domain.Repository = (*UserGormRepository)(nil)
