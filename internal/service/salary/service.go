package salary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oijdod/hrms-backend-go/internal/domain/attendance"
	"github.com/oijdod/hrms-backend-go/internal/domain/auth"
	"github.com/oijdod/hrms-backend-go/internal/domain/employee"
	"github.com/oijdod/hrms-backend-go/internal/domain/salary"
	"github.com/oijdod/hrms-backend-go/internal/pkg/jwt"
	"github.com/oijdod/hrms-backend-go/internal/pkg/payslip"
	"github.com/oijdod/hrms-backend-go/internal/service/file"
)

type SalaryServiceImpl struct {
	companyName string
	salary.SalaryRepository
	employee.EmployeeRepository
	attendance.AttendanceRepository
	fileService file.FileService
}

func NewSalaryService(
	companyName string,
	salaryRepo salary.SalaryRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	fileService file.FileService,
) salary.SalaryService {
	return &SalaryServiceImpl{
		companyName:          companyName,
		SalaryRepository:     salaryRepo,
		EmployeeRepository:   employeeRepo,
		AttendanceRepository: attendanceRepo,
		fileService:          fileService,
	}
}

func toResponse(s salary.SalaryStructure) salary.SalaryResponse {
	return salary.SalaryResponse{
		ID:            s.ID,
		EmployeeID:    s.EmployeeID,
		EmployeeName:  s.EmployeeName,
		BaseWage:      s.BaseWage,
		Components:    s.Components,
		Deductions:    s.Deductions,
		TotalSalary:   s.TotalSalary,
		MonthlySalary: s.MonthlySalary,
	}
}

func itemFromInput(in salary.PayItemInput) salary.PayItem {
	var item salary.PayItem
	if in.Value != nil {
		item.Value = *in.Value
	}
	if in.IsPercentage != nil {
		item.IsPercentage = *in.IsPercentage
	}
	if in.Percentage != nil {
		item.Percentage = *in.Percentage
	}
	return item
}

// mergeItems overlays the request items on the stored ones; items the request
// does not name keep their stored definition.
func mergeItems(existing salary.PayItems, inputs map[string]salary.PayItemInput) salary.PayItems {
	merged := make(salary.PayItems, len(existing)+len(inputs))
	for name, item := range existing {
		merged[name] = item
	}
	for name, in := range inputs {
		merged[name] = itemFromInput(in)
	}
	return merged
}

// Save implements salary.SalaryService.
func (s *SalaryServiceImpl) Save(ctx context.Context, req salary.SaveSalaryRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return salary.SalaryResponse{}, err
	}

	structure, err := s.SalaryRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if !errors.Is(err, salary.ErrSalaryNotConfigured) {
			return salary.SalaryResponse{}, err
		}
		structure = salary.SalaryStructure{
			EmployeeID: req.EmployeeID,
			Components: salary.DefaultComponents(),
			Deductions: salary.DefaultDeductions(),
		}
	}

	structure.BaseWage = req.BaseWage
	structure.Components = mergeItems(structure.Components, req.Components)
	structure.Deductions = mergeItems(structure.Deductions, req.Deductions)

	compose(&structure)

	saved, err := s.SalaryRepository.Upsert(ctx, structure)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	return toResponse(saved), nil
}

// Get implements salary.SalaryService. Employees may only read their own
// structure; Admin and HR may read anyone's.
func (s *SalaryServiceImpl) Get(ctx context.Context, employeeID string) (salary.SalaryResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if !claims.CanAccessEmployee(employeeID) {
		return salary.SalaryResponse{}, auth.ErrForbidden
	}

	structure, err := s.SalaryRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	return toResponse(structure), nil
}

// List implements salary.SalaryService.
func (s *SalaryServiceImpl) List(ctx context.Context) ([]salary.SalaryResponse, error) {
	structures, err := s.SalaryRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary structures: %w", err)
	}

	responses := make([]salary.SalaryResponse, 0, len(structures))
	for _, structure := range structures {
		responses = append(responses, toResponse(structure))
	}

	return responses, nil
}

// Delete implements salary.SalaryService.
func (s *SalaryServiceImpl) Delete(ctx context.Context, employeeID string) error {
	return s.SalaryRepository.DeleteByEmployeeID(ctx, employeeID)
}

// CalculatePayroll implements salary.SalaryService.
func (s *SalaryServiceImpl) CalculatePayroll(ctx context.Context, req salary.PayrollRequest) (salary.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.PayrollResponse{}, err
	}

	structure, err := s.SalaryRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return salary.PayrollResponse{}, err
	}

	month := time.Month(req.Month)
	totalDays := daysInMonth(req.Year, month)

	presentDays, err := s.AttendanceRepository.CountPayableDays(ctx, req.EmployeeID, req.Year, month)
	if err != nil {
		return salary.PayrollResponse{}, fmt.Errorf("failed to count payable days: %w", err)
	}

	total := decimal.NewFromInt(int64(totalDays))
	present := decimal.NewFromInt(int64(presentDays))

	return salary.PayrollResponse{
		EmployeeID:    req.EmployeeID,
		Month:         req.Month,
		Year:          req.Year,
		TotalDays:     totalDays,
		PresentDays:   presentDays,
		PayableRatio:  present.Div(total).Round(4),
		BaseSalary:    structure.MonthlySalary,
		PayableSalary: structure.MonthlySalary.Mul(present).Div(total).Round(2),
		Components:    structure.Components,
		Deductions:    structure.Deductions,
	}, nil
}

// GeneratePayslip implements salary.SalaryService.
func (s *SalaryServiceImpl) GeneratePayslip(ctx context.Context, req salary.PayrollRequest) (string, error) {
	payroll, err := s.CalculatePayroll(ctx, req)
	if err != nil {
		return "", err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return "", err
	}

	doc := payslip.Payslip{
		CompanyName:   s.companyName,
		EmployeeName:  emp.FullName(),
		EmployeeEmail: emp.Email,
		Month:         time.Month(payroll.Month),
		Year:          payroll.Year,
		Components:    payslip.SortedItems(itemValues(payroll.Components)),
		Deductions:    payslip.SortedItems(itemValues(payroll.Deductions)),
		MonthlySalary: payroll.BaseSalary,
		PresentDays:   payroll.PresentDays,
		TotalDays:     payroll.TotalDays,
		PayableSalary: payroll.PayableSalary,
	}

	content, err := payslip.Render(doc)
	if err != nil {
		return "", err
	}

	path, err := s.fileService.UploadPayslip(ctx, req.EmployeeID, payroll.Year, time.Month(payroll.Month), content)
	if err != nil {
		return "", err
	}

	url, err := s.fileService.GetFileURL(ctx, path, 0)
	if err != nil {
		return "", fmt.Errorf("failed to build payslip URL: %w", err)
	}

	return url, nil
}

func itemValues(items salary.PayItems) map[string]decimal.Decimal {
	values := make(map[string]decimal.Decimal, len(items))
	for name, item := range items {
		values[name] = item.Value
	}
	return values
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
