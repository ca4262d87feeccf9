package catalog

import (
	"strings"

	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

// ======================================================
// SERVICE INPUT
// ======================================================

type ServiceInput struct {
	ServiceCategoryID uint    `json:"service_category_id" validate:"required"`
	Name              string  `json:"name" validate:"required,max=255"`
	Description       string  `json:"description"`
	Price             float64 `json:"price" validate:"gte=0"`
	IsActive          *bool   `json:"is_active"`
}

func ServiceInputOf(s *models.Service) ServiceInput {
	active := s.IsActive
	return ServiceInput{
		ServiceCategoryID: s.ServiceCategoryID,
		Name:              s.Name,
		Description:       s.Description,
		Price:             s.Price,
		IsActive:          &active,
	}
}

func (in ServiceInput) normalized() ServiceInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

func (in ServiceInput) apply(s *models.Service) {
	s.ServiceCategoryID = in.ServiceCategoryID
	s.Name = in.Name
	s.Description = in.Description
	s.Price = in.Price
	s.IsActive = in.IsActive == nil || *in.IsActive
}

// PriceInput é o único campo que manage_prices pode alterar.
type PriceInput struct {
	Price *float64 `json:"price" validate:"required,gte=0"`
}

// ======================================================
// CATEGORY INPUT
// ======================================================

type CategoryInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Segment     string `json:"segment" validate:"required,oneof=clinic hotel spa"`
	Description string `json:"description"`
}

func (in CategoryInput) normalized() CategoryInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Segment = strings.ToLower(strings.TrimSpace(in.Segment))
	in.Description = strings.TrimSpace(in.Description)
	return in
}

type ListFilter struct {
	Search     string
	CategoryID uint
	Segment    string
	Active     *bool
	Page       int
	PerPage    int
}
