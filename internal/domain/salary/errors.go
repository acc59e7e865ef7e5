package salary

import "errors"

var (
	ErrSalaryNotConfigured = errors.New("salary structure not found")
)
