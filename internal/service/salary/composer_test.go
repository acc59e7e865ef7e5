package salary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/oijdod/hrms-backend-go/internal/domain/salary"
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal, name string) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "%s = %s, want %s", name, got, want)
}

func TestComposeDefaults(t *testing.T) {
	structure := salary.SalaryStructure{
		EmployeeID: "emp-1",
		BaseWage:   decimal.NewFromInt(120000),
		Components: salary.DefaultComponents(),
		Deductions: salary.DefaultDeductions(),
	}

	compose(&structure)

	assertDecimal(t, "48000", structure.Components["basic"].Value, "basic")
	assertDecimal(t, "24000", structure.Components["hra"].Value, "hra")
	assertDecimal(t, "12000", structure.Components["standardAllowance"].Value, "standardAllowance")
	assertDecimal(t, "6000", structure.Components["leaveTravelAllowance"].Value, "leaveTravelAllowance")
	assertDecimal(t, "0", structure.Components["performanceBonus"].Value, "performanceBonus")
	assertDecimal(t, "0", structure.Components["fixedAllowance"].Value, "fixedAllowance")

	// Provident fund is 12% of the basic component, not of the base wage.
	assertDecimal(t, "5760", structure.Deductions["providentFund"].Value, "providentFund")
	assertDecimal(t, "0", structure.Deductions["professionalTax"].Value, "professionalTax")

	assertDecimal(t, "84240", structure.TotalSalary, "TotalSalary")
	assertDecimal(t, "7020", structure.MonthlySalary, "MonthlySalary")
}

func TestComposeIsIdempotent(t *testing.T) {
	structure := salary.SalaryStructure{
		EmployeeID: "emp-1",
		BaseWage:   decimal.NewFromInt(120000),
		Components: salary.DefaultComponents(),
		Deductions: salary.DefaultDeductions(),
	}

	compose(&structure)
	first := structure

	compose(&structure)

	assert.True(t, structure.TotalSalary.Equal(first.TotalSalary))
	assert.True(t, structure.MonthlySalary.Equal(first.MonthlySalary))
	for name, item := range first.Components {
		assert.True(t, structure.Components[name].Value.Equal(item.Value), "component %s drifted", name)
	}
	for name, item := range first.Deductions {
		assert.True(t, structure.Deductions[name].Value.Equal(item.Value), "deduction %s drifted", name)
	}
}

func TestComposeKeepsFixedItems(t *testing.T) {
	structure := salary.SalaryStructure{
		EmployeeID: "emp-1",
		BaseWage:   decimal.NewFromInt(120000),
		Components: salary.PayItems{
			"basic":            {IsPercentage: true, Percentage: decimal.NewFromInt(50)},
			"performanceBonus": {Value: decimal.NewFromInt(9000)},
		},
		Deductions: salary.PayItems{
			"professionalTax": {Value: decimal.NewFromInt(2400)},
		},
	}

	compose(&structure)

	assertDecimal(t, "60000", structure.Components["basic"].Value, "basic")
	assertDecimal(t, "9000", structure.Components["performanceBonus"].Value, "performanceBonus")
	assertDecimal(t, "2400", structure.Deductions["professionalTax"].Value, "professionalTax")
	assertDecimal(t, "66600", structure.TotalSalary, "TotalSalary")
	assertDecimal(t, "5550", structure.MonthlySalary, "MonthlySalary")
}
