package salary

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// BasicComponent is the reference base for percentage deductions. Deductions
// are percentage-of-basic, not percentage-of-baseWage.
const BasicComponent = "basic"

// PayItem is a single salary component or deduction. Percentage items are
// resolved to a value on every save; fixed items keep the value as given.
type PayItem struct {
	Value        decimal.Decimal `json:"value"`
	IsPercentage bool            `json:"isPercentage"`
	Percentage   decimal.Decimal `json:"percentage"`
}

// PayItems is stored as JSONB.
type PayItems map[string]PayItem

// Value implements driver.Valuer for database storage
func (p PayItems) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner for database retrieval
func (p *PayItems) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan PayItems: invalid type")
	}

	return json.Unmarshal(bytes, p)
}

// SalaryStructure holds one employee's wage breakdown. BaseWage is annual.
// TotalSalary and MonthlySalary are derived in full on every save.
type SalaryStructure struct {
	ID            string
	EmployeeID    string
	BaseWage      decimal.Decimal
	Components    PayItems
	Deductions    PayItems
	TotalSalary   decimal.Decimal
	MonthlySalary decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined for responses
	EmployeeName *string
}

// DefaultComponents returns the component schema applied when a structure is
// first created: basic 40%, hra 20%, standardAllowance 10%, performanceBonus
// fixed 0, leaveTravelAllowance 5%, fixedAllowance fixed 0.
func DefaultComponents() PayItems {
	return PayItems{
		"basic":                {IsPercentage: true, Percentage: decimal.NewFromInt(40)},
		"hra":                  {IsPercentage: true, Percentage: decimal.NewFromInt(20)},
		"standardAllowance":    {IsPercentage: true, Percentage: decimal.NewFromInt(10)},
		"performanceBonus":     {IsPercentage: false},
		"leaveTravelAllowance": {IsPercentage: true, Percentage: decimal.NewFromInt(5)},
		"fixedAllowance":       {IsPercentage: false},
	}
}

// DefaultDeductions returns the deduction schema applied when a structure is
// first created: providentFund 12% of basic, professionalTax fixed 0.
func DefaultDeductions() PayItems {
	return PayItems{
		"providentFund":   {IsPercentage: true, Percentage: decimal.NewFromInt(12)},
		"professionalTax": {IsPercentage: false},
	}
}
