package salary

import (
	"github.com/shopspring/decimal"

	"github.com/oijdod/hrms-backend-go/internal/pkg/validator"
)

// PayItemInput mirrors PayItem for requests; omitted fields default to zero.
type PayItemInput struct {
	Value        *decimal.Decimal `json:"value,omitempty"`
	IsPercentage *bool            `json:"isPercentage,omitempty"`
	Percentage   *decimal.Decimal `json:"percentage,omitempty"`
}

type SaveSalaryRequest struct {
	EmployeeID string                  `json:"employee_id"`
	BaseWage   decimal.Decimal         `json:"base_wage"`
	Components map[string]PayItemInput `json:"components,omitempty"`
	Deductions map[string]PayItemInput `json:"deductions,omitempty"`
}

func (r *SaveSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.BaseWage.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_wage",
			Message: "base_wage must not be negative",
		})
	}

	for name, item := range r.Components {
		if item.Percentage != nil && item.Percentage.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "components." + name,
				Message: "percentage must not be negative",
			})
		}
	}

	for name, item := range r.Deductions {
		if item.Percentage != nil && item.Percentage.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "deductions." + name,
				Message: "percentage must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SalaryResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  *string         `json:"employee_name,omitempty"`
	BaseWage      decimal.Decimal `json:"base_wage"`
	Components    PayItems        `json:"components"`
	Deductions    PayItems        `json:"deductions"`
	TotalSalary   decimal.Decimal `json:"total_salary"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
}

type PayrollRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *PayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PayrollResponse is computed on demand and never persisted.
type PayrollResponse struct {
	EmployeeID    string          `json:"employee_id"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	TotalDays     int             `json:"total_days"`
	PresentDays   int             `json:"present_days"`
	PayableRatio  decimal.Decimal `json:"payable_ratio"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	PayableSalary decimal.Decimal `json:"payable_salary"`
	Components    PayItems        `json:"components"`
	Deductions    PayItems        `json:"deductions"`
}
