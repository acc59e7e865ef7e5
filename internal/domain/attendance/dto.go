package attendance

import (
	"github.com/oijdod/hrms-backend-go/internal/pkg/validator"
)

// MyAttendanceFilter narrows an employee's own history; month and year go
// together.
type MyAttendanceFilter struct {
	Month *int
	Year  *int
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if (f.Month == nil) != (f.Year == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month and year must be provided together",
		})
	}

	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if f.Year != nil && *f.Year < 1 {
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

// AttendanceFilter narrows the admin listing.
type AttendanceFilter struct {
	EmployeeID *string
	Date       *string
	StartDate  *string
	EndDate    *string
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
	WorkHours    float64 `json:"work_hours"`
	ExtraHours   float64 `json:"extra_hours"`
	Status       string  `json:"status"`
}

// SummaryResponse aggregates one employee's month.
type SummaryResponse struct {
	EmployeeID      string  `json:"employee_id"`
	Month           int     `json:"month"`
	Year            int     `json:"year"`
	TotalDays       int     `json:"total_days"`
	PresentDays     int     `json:"present_days"`
	AbsentDays      int     `json:"absent_days"`
	LeaveDays       int     `json:"leave_days"`
	TotalWorkHours  float64 `json:"total_work_hours"`
	TotalExtraHours float64 `json:"total_extra_hours"`
}
