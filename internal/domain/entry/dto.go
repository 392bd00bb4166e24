package entry

import (
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/validator"
)

type RegisterEntryRequest struct {
	UserID    string  `json:"user_id"`
	CompanyID string  `json:"company_id"`
	Latitude  *string `json:"latitude"`
	Longitude *string `json:"longitude"`
}

func (r *RegisterEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	} else if !validator.IsValidUUID(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID",
		})
	}
	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	} else if !validator.IsValidUUID(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id must be a valid UUID",
		})
	}

	// Coordinates are optional, but when sent they must parse. A malformed
	// coordinate is rejected here, before any mutation happens.
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	WorkingDayID string  `json:"working_day_id"`
	EntryTime    string  `json:"entry_time"`
	Latitude     *string `json:"latitude,omitempty"`
	Longitude    *string `json:"longitude,omitempty"`
	IsApproved   bool    `json:"is_approved"`
}
