package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/pet"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type PetGormRepository struct {
	db *gorm.DB
}

func NewPetGormRepository(db *gorm.DB) *PetGormRepository {
	return &PetGormRepository{db: db}
}

func (r *PetGormRepository) List(ctx context.Context, spec query.Spec) (query.Page[models.Pet], error) {
	return list[models.Pet](ctx, r.db, petRenderer, spec, "pet", func(q *gorm.DB) *gorm.DB {
		return q.Preload("Client")
	})
}

func (r *PetGormRepository) GetByID(ctx context.Context, id uint) (*models.Pet, error) {
	var p models.Pet
	if err := r.db.WithContext(ctx).Preload("Client").First(&p, id).Error; err != nil {
		return nil, dbErr(err, "pet", "get")
	}
	return &p, nil
}

func (r *PetGormRepository) Create(ctx context.Context, p *models.Pet) error {
	return dbErr(r.db.WithContext(ctx).Omit("Client").Create(p).Error, "pet", "create")
}

func (r *PetGormRepository) Update(ctx context.Context, p *models.Pet) error {
	return dbErr(r.db.WithContext(ctx).Omit("Client").Save(p).Error, "pet", "update")
}

// Delete remove as vacinas (dados do próprio pet) e o pet na mesma transação.
func (r *PetGormRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pet_id = ?", id).Delete(&models.Vaccination{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Pet{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return dbErr(err, "pet", "delete")
}

func (r *PetGormRepository) CountDependents(ctx context.Context, id uint) (domain.Dependents, error) {
	var d domain.Dependents
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Appointment{}).Where("pet_id = ?", id).Count(&d.Appointments).Error; err != nil {
		return d, dbErr(err, "pet", "count appointments")
	}
	if err := db.Model(&models.HotelStay{}).Where("pet_id = ?", id).Count(&d.HotelStays).Error; err != nil {
		return d, dbErr(err, "pet", "count hotel stays")
	}
	if err := db.Model(&models.MedicalRecord{}).Where("pet_id = ?", id).Count(&d.MedicalRecords).Error; err != nil {
		return d, dbErr(err, "pet", "count medical records")
	}
	return d, nil
}

func (r *PetGormRepository) Count(ctx context.Context, spec query.Spec) (int64, error) {
	return count[models.Pet](ctx, r.db, petRenderer, spec, "pet")
}

func (r *PetGormRepository) BreedStats(ctx context.Context) ([]domain.BreedCount, error) {
	out := []domain.BreedCount{}
	if err := r.db.WithContext(ctx).
		Model(&models.Pet{}).
		Select("LOWER(species) AS species, breed, COUNT(*) AS total").
		Group("LOWER(species), breed").
		Order("total DESC, species ASC").
		Scan(&out).Error; err != nil {
		return nil, dbErr(err, "pet", "breed stats")
	}
	return out, nil
}

var _ domain.Repository = (*PetGormRepository)(nil)
