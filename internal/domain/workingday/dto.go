package workingday

import (
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/validator"
)

type ListWorkingDaysFilter struct {
	UserID    string
	StartDate *string
	EndDate   *string
}

func (f *ListWorkingDaysFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be formatted as YYYY-MM-DD",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be formatted as YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkingDayResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	CompanyID  string `json:"company_id"`
	WorkedDate string `json:"worked_date"`
	WorkedTime int    `json:"worked_time"`
	Finished   bool   `json:"finished"`
}
