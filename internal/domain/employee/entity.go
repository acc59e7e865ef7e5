package employee

import "time"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type Address struct {
	Street  *string `json:"street,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	ZipCode *string `json:"zip_code,omitempty"`
	Country *string `json:"country,omitempty"`
}

type BankDetails struct {
	AccountNumber *string `json:"account_number,omitempty"`
	BankName      *string `json:"bank_name,omitempty"`
	IFSCCode      *string `json:"ifsc_code,omitempty"`
	PAN           *string `json:"pan,omitempty"`
	UAN           *string `json:"uan,omitempty"`
}

// LeaveBalances tracks remaining leave days per leave type. Unpaid leave is
// unlimited; its counter exists only for display.
type LeaveBalances struct {
	PaidLeave   int `json:"paid_leave"`
	SickLeave   int `json:"sick_leave"`
	UnpaidLeave int `json:"unpaid_leave"`
}

// DefaultLeaveBalances are granted to every new employee.
func DefaultLeaveBalances() LeaveBalances {
	return LeaveBalances{
		PaidLeave:   20,
		SickLeave:   10,
		UnpaidLeave: 0,
	}
}

type Employee struct {
	ID          string
	FirstName   string
	LastName    string
	Initials    string
	Email       string
	Phone       *string
	DateOfBirth *time.Time
	Gender      *Gender
	Nationality *string

	Company       string
	Department    *string
	Position      *string
	ManagerID     *string
	DateOfJoining time.Time
	SerialNumber  int

	Address     Address
	BankDetails BankDetails

	ProfilePictureURL *string
	ResumeURL         *string

	LeaveBalances LeaveBalances

	// Employees are never deleted, only deactivated.
	IsActive bool

	UserID *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	ManagerName *string
}

// FullName returns the display name.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
