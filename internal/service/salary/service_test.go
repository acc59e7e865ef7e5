package salary

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oijdod/hrms-backend-go/internal/domain/attendance"
	"github.com/oijdod/hrms-backend-go/internal/domain/auth"
	"github.com/oijdod/hrms-backend-go/internal/domain/employee"
	"github.com/oijdod/hrms-backend-go/internal/domain/salary"
)

func authedContext(t *testing.T, employeeID string, role string) context.Context {
	t.Helper()

	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	claims := map[string]interface{}{
		"user_id":  "user-" + employeeID,
		"login_id": "ACMEJD20240001",
		"role":     role,
		"type":     "access",
	}
	if employeeID != "" {
		claims["employee_id"] = employeeID
	}
	token, _, err := tokenAuth.Encode(claims)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeSalaryRepo struct {
	structures map[string]salary.SalaryStructure
}

func newFakeSalaryRepo() *fakeSalaryRepo {
	return &fakeSalaryRepo{structures: make(map[string]salary.SalaryStructure)}
}

func (f *fakeSalaryRepo) Upsert(ctx context.Context, s salary.SalaryStructure) (salary.SalaryStructure, error) {
	s.ID = "salary-" + s.EmployeeID
	f.structures[s.EmployeeID] = s
	return s, nil
}

func (f *fakeSalaryRepo) GetByEmployeeID(ctx context.Context, employeeID string) (salary.SalaryStructure, error) {
	s, ok := f.structures[employeeID]
	if !ok {
		return salary.SalaryStructure{}, salary.ErrSalaryNotConfigured
	}
	return s, nil
}

func (f *fakeSalaryRepo) List(ctx context.Context) ([]salary.SalaryStructure, error) {
	var out []salary.SalaryStructure
	for _, s := range f.structures {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSalaryRepo) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	if _, ok := f.structures[employeeID]; !ok {
		return salary.ErrSalaryNotConfigured
	}
	delete(f.structures, employeeID)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error { return nil }

func (f *fakeEmployeeRepo) NextSerialNumber(ctx context.Context) (int, error) { return 1, nil }

func (f *fakeEmployeeRepo) GetLeaveBalances(ctx context.Context, id string) (employee.LeaveBalances, error) {
	return employee.LeaveBalances{}, nil
}

func (f *fakeEmployeeRepo) DebitLeaveBalance(ctx context.Context, id string, leaveType string, days int) error {
	return nil
}

func (f *fakeEmployeeRepo) SetProfilePictureURL(ctx context.Context, id string, url string) error {
	return nil
}

func (f *fakeEmployeeRepo) SetResumeURL(ctx context.Context, id string, url string) error {
	return nil
}

func (f *fakeEmployeeRepo) SetUserID(ctx context.Context, id string, userID string) error {
	return nil
}

type fakeAttendanceRepo struct {
	payableDays int
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	return nil
}

func (f *fakeAttendanceRepo) MarkOnLeave(ctx context.Context, employeeID string, date time.Time) error {
	return nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListForMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) CountPayableDays(ctx context.Context, employeeID string, year int, month time.Month) (int, error) {
	return f.payableDays, nil
}

func TestSaveAppliesDefaults(t *testing.T) {
	salaryRepo := newFakeSalaryRepo()
	employeeRepo := newFakeEmployeeRepo()
	employeeRepo.employees["emp-1"] = employee.Employee{ID: "emp-1"}
	svc := NewSalaryService("Acme", salaryRepo, employeeRepo, &fakeAttendanceRepo{}, nil)

	resp, err := svc.Save(context.Background(), salary.SaveSalaryRequest{
		EmployeeID: "emp-1",
		BaseWage:   decimal.NewFromInt(120000),
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalSalary.Equal(decimal.NewFromInt(84240)), "TotalSalary = %s", resp.TotalSalary)
	assert.True(t, resp.MonthlySalary.Equal(decimal.NewFromInt(7020)), "MonthlySalary = %s", resp.MonthlySalary)

	got, err := svc.Get(authedContext(t, "", "Admin"), "emp-1")
	require.NoError(t, err)
	assert.True(t, got.MonthlySalary.Equal(resp.MonthlySalary))
}

func TestSavePartialUpdateKeepsExistingItems(t *testing.T) {
	salaryRepo := newFakeSalaryRepo()
	employeeRepo := newFakeEmployeeRepo()
	employeeRepo.employees["emp-1"] = employee.Employee{ID: "emp-1"}
	svc := NewSalaryService("Acme", salaryRepo, employeeRepo, &fakeAttendanceRepo{}, nil)

	_, err := svc.Save(context.Background(), salary.SaveSalaryRequest{
		EmployeeID: "emp-1",
		BaseWage:   decimal.NewFromInt(120000),
	})
	require.NoError(t, err)

	// Naming only hra must not drop the other stored items.
	isPct := true
	pct := decimal.NewFromInt(25)
	resp, err := svc.Save(context.Background(), salary.SaveSalaryRequest{
		EmployeeID: "emp-1",
		BaseWage:   decimal.NewFromInt(120000),
		Components: map[string]salary.PayItemInput{
			"hra": {IsPercentage: &isPct, Percentage: &pct},
		},
	})
	require.NoError(t, err)

	basic := resp.Components[salary.BasicComponent]
	assert.True(t, basic.Value.Equal(decimal.NewFromInt(48000)), "basic = %s", basic.Value)

	hra := resp.Components["hra"]
	assert.True(t, hra.Value.Equal(decimal.NewFromInt(30000)), "hra = %s", hra.Value)

	pf := resp.Deductions["providentFund"]
	assert.True(t, pf.Value.Equal(decimal.NewFromInt(5760)), "providentFund = %s", pf.Value)

	assert.True(t, resp.TotalSalary.Equal(decimal.NewFromInt(90240)), "TotalSalary = %s", resp.TotalSalary)
	assert.True(t, resp.MonthlySalary.Equal(decimal.NewFromInt(7520)), "MonthlySalary = %s", resp.MonthlySalary)
}

func TestGetOwnStructureOnly(t *testing.T) {
	salaryRepo := newFakeSalaryRepo()
	employeeRepo := newFakeEmployeeRepo()
	employeeRepo.employees["emp-1"] = employee.Employee{ID: "emp-1"}
	svc := NewSalaryService("Acme", salaryRepo, employeeRepo, &fakeAttendanceRepo{}, nil)

	_, err := svc.Save(context.Background(), salary.SaveSalaryRequest{
		EmployeeID: "emp-1",
		BaseWage:   decimal.NewFromInt(120000),
	})
	require.NoError(t, err)

	_, err = svc.Get(authedContext(t, "emp-1", "Employee"), "emp-1")
	assert.NoError(t, err)

	_, err = svc.Get(authedContext(t, "emp-2", "Employee"), "emp-1")
	assert.ErrorIs(t, err, auth.ErrForbidden)

	_, err = svc.Get(authedContext(t, "emp-2", "HR"), "emp-1")
	assert.NoError(t, err)
}

func TestSaveUnknownEmployee(t *testing.T) {
	svc := NewSalaryService("Acme", newFakeSalaryRepo(), newFakeEmployeeRepo(), &fakeAttendanceRepo{}, nil)

	_, err := svc.Save(context.Background(), salary.SaveSalaryRequest{
		EmployeeID: "ghost",
		BaseWage:   decimal.NewFromInt(120000),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetNotConfigured(t *testing.T) {
	svc := NewSalaryService("Acme", newFakeSalaryRepo(), newFakeEmployeeRepo(), &fakeAttendanceRepo{}, nil)

	_, err := svc.Get(authedContext(t, "", "Admin"), "emp-1")
	assert.ErrorIs(t, err, salary.ErrSalaryNotConfigured)
}

func TestCalculatePayroll(t *testing.T) {
	salaryRepo := newFakeSalaryRepo()
	employeeRepo := newFakeEmployeeRepo()
	employeeRepo.employees["emp-1"] = employee.Employee{ID: "emp-1"}
	attendanceRepo := &fakeAttendanceRepo{payableDays: 25}
	svc := NewSalaryService("Acme", salaryRepo, employeeRepo, attendanceRepo, nil)

	_, err := svc.Save(context.Background(), salary.SaveSalaryRequest{
		EmployeeID: "emp-1",
		BaseWage:   decimal.NewFromInt(120000),
	})
	require.NoError(t, err)

	// April has 30 calendar days.
	payroll, err := svc.CalculatePayroll(context.Background(), salary.PayrollRequest{
		EmployeeID: "emp-1",
		Month:      4,
		Year:       2026,
	})
	require.NoError(t, err)

	assert.Equal(t, 30, payroll.TotalDays)
	assert.Equal(t, 25, payroll.PresentDays)
	assert.True(t, payroll.BaseSalary.Equal(decimal.NewFromInt(7020)), "BaseSalary = %s", payroll.BaseSalary)
	assert.True(t, payroll.PayableSalary.Equal(decimal.NewFromInt(5850)), "PayableSalary = %s", payroll.PayableSalary)
}

func TestCalculatePayrollNotConfigured(t *testing.T) {
	svc := NewSalaryService("Acme", newFakeSalaryRepo(), newFakeEmployeeRepo(), &fakeAttendanceRepo{}, nil)

	_, err := svc.CalculatePayroll(context.Background(), salary.PayrollRequest{
		EmployeeID: "emp-1",
		Month:      4,
		Year:       2026,
	})
	assert.ErrorIs(t, err, salary.ErrSalaryNotConfigured)
}

func TestDelete(t *testing.T) {
	salaryRepo := newFakeSalaryRepo()
	employeeRepo := newFakeEmployeeRepo()
	employeeRepo.employees["emp-1"] = employee.Employee{ID: "emp-1"}
	svc := NewSalaryService("Acme", salaryRepo, employeeRepo, &fakeAttendanceRepo{}, nil)

	_, err := svc.Save(context.Background(), salary.SaveSalaryRequest{
		EmployeeID: "emp-1",
		BaseWage:   decimal.NewFromInt(120000),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "emp-1"))

	_, err = svc.Get(authedContext(t, "", "Admin"), "emp-1")
	assert.ErrorIs(t, err, salary.ErrSalaryNotConfigured)
}
