package leave

import (
	"github.com/oijdod/hrms-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	LeaveType     string  `json:"leave_type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Reason        string  `json:"reason"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.LeaveType, []string{string(LeaveTypePaid), string(LeaveTypeSick), string(LeaveTypeUnpaid)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of PaidLeave, SickLeave, UnpaidLeave",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewLeaveRequest struct {
	ID             string  `json:"-"`
	Status         string  `json:"status"`
	ReviewComments *string `json:"review_comments,omitempty"`
}

func (r *ReviewLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_request_id",
			Message: "leave_request_id is required",
		})
	}

	if !validator.IsInSlice(r.Status, []string{string(LeaveStatusApproved), string(LeaveStatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Approved or Rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveFilter struct {
	Status     *string
	EmployeeID *string
}

func (f *LeaveFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{
		string(LeaveStatusPending), string(LeaveStatusApproved), string(LeaveStatusRejected),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Pending, Approved, Rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	LeaveType      string  `json:"leave_type"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	NumberOfDays   int     `json:"number_of_days"`
	Reason         string  `json:"reason"`
	AttachmentURL  *string `json:"attachment_url,omitempty"`
	Status         string  `json:"status"`
	ReviewedBy     *string `json:"reviewed_by,omitempty"`
	ReviewerLogin  *string `json:"reviewer_login,omitempty"`
	ReviewedAt     *string `json:"reviewed_at,omitempty"`
	ReviewComments *string `json:"review_comments,omitempty"`
}
