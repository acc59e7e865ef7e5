package salary

import (
	"github.com/shopspring/decimal"

	"github.com/oijdod/hrms-backend-go/internal/domain/salary"
)

var (
	hundred      = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
)

// compose resolves every percentage item to a value and recomputes the
// totals from scratch. Component percentages resolve against the base wage;
// deduction percentages resolve against the computed basic component value.
// Running compose twice over the same structure yields the same result.
func compose(s *salary.SalaryStructure) {
	components := make(salary.PayItems, len(s.Components))
	for name, item := range s.Components {
		if item.IsPercentage {
			item.Value = s.BaseWage.Mul(item.Percentage).Div(hundred).Round(2)
		}
		components[name] = item
	}

	basicValue := components[salary.BasicComponent].Value

	deductions := make(salary.PayItems, len(s.Deductions))
	for name, item := range s.Deductions {
		if item.IsPercentage {
			item.Value = basicValue.Mul(item.Percentage).Div(hundred).Round(2)
		}
		deductions[name] = item
	}

	total := decimal.Zero
	for _, item := range components {
		total = total.Add(item.Value)
	}
	for _, item := range deductions {
		total = total.Sub(item.Value)
	}

	s.Components = components
	s.Deductions = deductions
	s.TotalSalary = total.Round(2)
	s.MonthlySalary = total.Div(monthsInYear).Round(2)
}
