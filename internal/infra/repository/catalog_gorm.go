package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
	spec query.Spec,
) (query.Page[models.Service], error) {
	return list[models.Service](ctx, r.db, serviceRenderer, spec, "service", func(q *gorm.DB) *gorm.DB {
		return q.Preload("Category")
	})
}

func (r *CatalogGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).Preload("Category").First(&s, id).Error; err != nil {
		return nil, dbErr(err, "service", "get")
	}
	return &s, nil
}

func (r *CatalogGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	return dbErr(r.db.WithContext(ctx).Omit("Category").Create(s).Error, "service", "create")
}

func (r *CatalogGormRepository) UpdateService(ctx context.Context, s *models.Service) error {
	return dbErr(r.db.WithContext(ctx).Omit("Category").Save(s).Error, "service", "update")
}

func (r *CatalogGormRepository) DeleteService(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		return dbErr(res.Error, "service", "delete")
	}
	if res.RowsAffected == 0 {
		return dbErr(gorm.ErrRecordNotFound, "service", "delete")
	}
	return nil
}

func (r *CatalogGormRepository) CountServiceAppointments(ctx context.Context, id uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("service_id = ?", id).
		Count(&n).Error; err != nil {
		return 0, dbErr(err, "service", "count appointments")
	}
	return n, nil
}

func (r *CatalogGormRepository) CountServices(ctx context.Context, spec query.Spec) (int64, error) {
	return count[models.Service](ctx, r.db, serviceRenderer, spec, "service")
}

// --------------------------------------------------
// Categories
// --------------------------------------------------

func (r *CatalogGormRepository) ListCategories(
	ctx context.Context,
	spec query.Spec,
) ([]models.ServiceCategory, error) {

	page, err := list[models.ServiceCategory](ctx, r.db, categoryRenderer, spec, "service_category", nil)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (r *CatalogGormRepository) GetCategory(ctx context.Context, id uint) (*models.ServiceCategory, error) {
	var c models.ServiceCategory
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, dbErr(err, "service_category", "get")
	}
	return &c, nil
}

func (r *CatalogGormRepository) CreateCategory(ctx context.Context, c *models.ServiceCategory) error {
	return dbErr(r.db.WithContext(ctx).Omit("Services").Create(c).Error, "service_category", "create")
}

// --------------------------------------------------
// Catálogo público
// --------------------------------------------------

func (r *CatalogGormRepository) ActiveCatalog(
	ctx context.Context,
	segment *models.Segment,
) ([]models.ServiceCategory, error) {

	q := r.db.WithContext(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("services.name ASC")
		}).
		Where("EXISTS (SELECT 1 FROM services s WHERE s.service_category_id = service_categories.id AND s.is_active = ?)", true)

	if segment != nil {
		q = q.Where("segment = ?", string(*segment))
	}

	out := []models.ServiceCategory{}
	if err := q.Order("segment ASC, name ASC").Find(&out).Error; err != nil {
		return nil, dbErr(err, "service_category", "catalog")
	}
	return out, nil
}

var _ domain.Repository = (*CatalogGormRepository)(nil)
