package company

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/company"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/database"
)

type CompanyServiceImpl struct {
	db *database.DB
	company.CompanyRepository
}

func NewCompanyService(db *database.DB, companyRepo company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{
		db:                db,
		CompanyRepository: companyRepo,
	}
}

// List implements company.CompanyService.
func (c *CompanyServiceImpl) List(ctx context.Context) ([]company.CompanyResponse, error) {
	companies, err := c.CompanyRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, comp := range companies {
		responses = append(responses, toResponse(comp))
	}
	return responses, nil
}

// Create implements company.CompanyService.
func (c *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	created, err := c.CompanyRepository.Create(ctx, company.Company{
		ID:                  uuid.New().String(),
		Name:                req.Name,
		Email:               req.Email,
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
		AllowEntryOutRange:  req.AllowEntryOutRange,
		RegisterRangeMeters: req.RegisterRangeMeters,
	})
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to create company: %w", err)
	}
	return toResponse(created), nil
}

// GetByID implements company.CompanyService.
func (c *CompanyServiceImpl) GetByID(ctx context.Context, id string) (company.CompanyResponse, error) {
	comp, err := c.CompanyRepository.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return toResponse(comp), nil
}

// Update implements company.CompanyService.
func (c *CompanyServiceImpl) Update(ctx context.Context, id string, req company.UpdateCompanyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return c.CompanyRepository.Update(ctx, id, req)
}

// Delete implements company.CompanyService.
func (c *CompanyServiceImpl) Delete(ctx context.Context, id string) error {
	return c.CompanyRepository.Delete(ctx, id)
}

func toResponse(comp company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:                  comp.ID,
		Name:                comp.Name,
		Email:               comp.Email,
		Latitude:            comp.Latitude,
		Longitude:           comp.Longitude,
		AllowEntryOutRange:  comp.AllowEntryOutRange,
		RegisterRangeMeters: comp.RegisterRangeMeters,
		CreatedAt:           comp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:           comp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
