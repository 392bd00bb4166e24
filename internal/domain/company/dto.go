package company

import (
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/validator"
)

type CreateCompanyRequest struct {
	Name                string  `json:"name"`
	Email               *string `json:"email"`
	Latitude            *string `json:"latitude"`
	Longitude           *string `json:"longitude"`
	AllowEntryOutRange  bool    `json:"allow_entry_out_range"`
	RegisterRangeMeters *int    `json:"register_range_meters"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}
	if r.Latitude != nil {
		if _, ok := validator.ParseLatitude(*r.Latitude); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "latitude",
				Message: "latitude must be a decimal between -90 and 90",
			})
		}
	}
	if r.Longitude != nil {
		if _, ok := validator.ParseLongitude(*r.Longitude); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "longitude",
				Message: "longitude must be a decimal between -180 and 180",
			})
		}
	}
	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be provided together",
		})
	}
	if r.RegisterRangeMeters != nil && *r.RegisterRangeMeters <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "register_range_meters",
			Message: "register_range_meters must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCompanyRequest struct {
	Name                *string `json:"name"`
	Email               *string `json:"email"`
	Latitude            *string `json:"latitude"`
	Longitude           *string `json:"longitude"`
	AllowEntryOutRange  *bool   `json:"allow_entry_out_range"`
	RegisterRangeMeters *int    `json:"register_range_meters"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}
	if r.Latitude != nil && *r.Latitude != "" {
		if _, ok := validator.ParseLatitude(*r.Latitude); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "latitude",
				Message: "latitude must be a decimal between -90 and 90",
			})
		}
	}
	if r.Longitude != nil && *r.Longitude != "" {
		if _, ok := validator.ParseLongitude(*r.Longitude); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "longitude",
				Message: "longitude must be a decimal between -180 and 180",
			})
		}
	}
	if r.RegisterRangeMeters != nil && *r.RegisterRangeMeters <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "register_range_meters",
			Message: "register_range_meters must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CompanyResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Email               *string `json:"email,omitempty"`
	Latitude            *string `json:"latitude,omitempty"`
	Longitude           *string `json:"longitude,omitempty"`
	AllowEntryOutRange  bool    `json:"allow_entry_out_range"`
	RegisterRangeMeters *int    `json:"register_range_meters,omitempty"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}
