package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oijdod/hrms-backend-go/internal/domain/attendance"
	"github.com/oijdod/hrms-backend-go/internal/domain/employee"
	"github.com/oijdod/hrms-backend-go/internal/domain/leave"
)

type fakeLeaveRepo struct {
	requests map[string]*leave.LeaveRequest
	nextID   int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]*leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	req.ID = fmt.Sprintf("leave-%d", f.nextID)
	stored := req
	f.requests[req.ID] = &stored
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	if req, ok := f.requests[id]; ok {
		return *req, nil
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if req.EmployeeID == employeeID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		out = append(out, *req)
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateReview(ctx context.Context, id string, status leave.LeaveStatus, reviewedBy string, reviewedAt time.Time, comments *string) error {
	req, ok := f.requests[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	req.Status = status
	req.ReviewedBy = &reviewedBy
	req.ReviewedAt = &reviewedAt
	req.ReviewComments = comments
	return nil
}

func (f *fakeLeaveRepo) HasApprovedLeaveOn(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	for _, req := range f.requests {
		if req.EmployeeID == employeeID && req.Status == leave.LeaveStatusApproved &&
			!date.Before(req.StartDate) && !date.After(req.EndDate) {
			return true, nil
		}
	}
	return false, nil
}

type fakeEmployeeRepo struct {
	balances map[string]employee.LeaveBalances
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{balances: make(map[string]employee.LeaveBalances)}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	return nil
}

func (f *fakeEmployeeRepo) NextSerialNumber(ctx context.Context) (int, error) {
	return 1, nil
}

func (f *fakeEmployeeRepo) GetLeaveBalances(ctx context.Context, id string) (employee.LeaveBalances, error) {
	balances, ok := f.balances[id]
	if !ok {
		return employee.LeaveBalances{}, employee.ErrEmployeeNotFound
	}
	return balances, nil
}

func (f *fakeEmployeeRepo) DebitLeaveBalance(ctx context.Context, id string, leaveType string, days int) error {
	balances, ok := f.balances[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	debit := func(balance int) int {
		if balance-days < 0 {
			return 0
		}
		return balance - days
	}
	switch leaveType {
	case "PaidLeave":
		balances.PaidLeave = debit(balances.PaidLeave)
	case "SickLeave":
		balances.SickLeave = debit(balances.SickLeave)
	case "UnpaidLeave":
		balances.UnpaidLeave = debit(balances.UnpaidLeave)
	}
	f.balances[id] = balances
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
	onLeave map[string]bool
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{onLeave: make(map[string]bool)}
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
	f.onLeave[employeeID+"|"+date.Format("2006-01-02")] = true
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
	return 0, nil
}

func newTestService(leaveRepo *fakeLeaveRepo, employeeRepo *fakeEmployeeRepo, attendanceRepo *fakeAttendanceRepo) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepo,
		EmployeeRepository:     employeeRepo,
		AttendanceRepository:   attendanceRepo,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

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

func TestApply(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	employeeRepo := newFakeEmployeeRepo()
	employeeRepo.balances["emp-1"] = employee.DefaultLeaveBalances()
	svc := newTestService(leaveRepo, employeeRepo, newFakeAttendanceRepo())
	ctx := authedContext(t, "emp-1", "Employee")

	resp, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
		LeaveType: "PaidLeave",
		StartDate: "2026-04-06",
		EndDate:   "2026-04-08",
		Reason:    "family event",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.NumberOfDays)
	assert.Equal(t, string(leave.LeaveStatusPending), resp.Status)

	// Applying does not touch the balance.
	balances, err := employeeRepo.GetLeaveBalances(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 20, balances.PaidLeave)
}

func TestApplyInsufficientBalance(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	employeeRepo := newFakeEmployeeRepo()
	employeeRepo.balances["emp-1"] = employee.LeaveBalances{PaidLeave: 2, SickLeave: 10}
	svc := newTestService(leaveRepo, employeeRepo, newFakeAttendanceRepo())
	ctx := authedContext(t, "emp-1", "Employee")

	_, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
		LeaveType: "PaidLeave",
		StartDate: "2026-04-06",
		EndDate:   "2026-04-08",
		Reason:    "family event",
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
}

func TestApplyUnpaidLeaveSkipsBalanceCheck(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	employeeRepo := newFakeEmployeeRepo()
	employeeRepo.balances["emp-1"] = employee.LeaveBalances{}
	svc := newTestService(leaveRepo, employeeRepo, newFakeAttendanceRepo())
	ctx := authedContext(t, "emp-1", "Employee")

	resp, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
		LeaveType: "UnpaidLeave",
		StartDate: "2026-04-01",
		EndDate:   "2026-04-30",
		Reason:    "sabbatical",
	})
	require.NoError(t, err)
	assert.Equal(t, 30, resp.NumberOfDays)
}

func TestApplyInvalidDateRange(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	employeeRepo := newFakeEmployeeRepo()
	employeeRepo.balances["emp-1"] = employee.DefaultLeaveBalances()
	svc := newTestService(leaveRepo, employeeRepo, newFakeAttendanceRepo())
	ctx := authedContext(t, "emp-1", "Employee")

	_, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
		LeaveType: "PaidLeave",
		StartDate: "2026-04-08",
		EndDate:   "2026-04-06",
		Reason:    "family event",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestReviewApprove(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	employeeRepo := newFakeEmployeeRepo()
	employeeRepo.balances["emp-1"] = employee.DefaultLeaveBalances()
	attendanceRepo := newFakeAttendanceRepo()
	svc := newTestService(leaveRepo, employeeRepo, attendanceRepo)

	_, err := svc.Apply(authedContext(t, "emp-1", "Employee"), leave.ApplyLeaveRequest{
		LeaveType: "PaidLeave",
		StartDate: "2026-04-06",
		EndDate:   "2026-04-08",
		Reason:    "family event",
	})
	require.NoError(t, err)

	resp, err := svc.Review(authedContext(t, "", "HR"), leave.ReviewLeaveRequest{
		ID:     "leave-1",
		Status: string(leave.LeaveStatusApproved),
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveStatusApproved), resp.Status)

	balances, err := employeeRepo.GetLeaveBalances(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 17, balances.PaidLeave)

	for _, date := range []string{"2026-04-06", "2026-04-07", "2026-04-08"} {
		assert.True(t, attendanceRepo.onLeave["emp-1|"+date], "expected %s marked on leave", date)
	}
	assert.False(t, attendanceRepo.onLeave["emp-1|2026-04-09"])
}

func TestReviewReject(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	employeeRepo := newFakeEmployeeRepo()
	employeeRepo.balances["emp-1"] = employee.DefaultLeaveBalances()
	attendanceRepo := newFakeAttendanceRepo()
	svc := newTestService(leaveRepo, employeeRepo, attendanceRepo)

	_, err := svc.Apply(authedContext(t, "emp-1", "Employee"), leave.ApplyLeaveRequest{
		LeaveType: "SickLeave",
		StartDate: "2026-04-06",
		EndDate:   "2026-04-06",
		Reason:    "flu",
	})
	require.NoError(t, err)

	comments := "need a medical certificate"
	resp, err := svc.Review(authedContext(t, "", "HR"), leave.ReviewLeaveRequest{
		ID:             "leave-1",
		Status:         string(leave.LeaveStatusRejected),
		ReviewComments: &comments,
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveStatusRejected), resp.Status)

	// Rejection leaves the balance and attendance untouched.
	balances, err := employeeRepo.GetLeaveBalances(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 10, balances.SickLeave)
	assert.Empty(t, attendanceRepo.onLeave)
}

func TestReviewAlreadyReviewed(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	employeeRepo := newFakeEmployeeRepo()
	employeeRepo.balances["emp-1"] = employee.DefaultLeaveBalances()
	svc := newTestService(leaveRepo, employeeRepo, newFakeAttendanceRepo())

	_, err := svc.Apply(authedContext(t, "emp-1", "Employee"), leave.ApplyLeaveRequest{
		LeaveType: "PaidLeave",
		StartDate: "2026-04-06",
		EndDate:   "2026-04-06",
		Reason:    "errand",
	})
	require.NoError(t, err)

	review := leave.ReviewLeaveRequest{ID: "leave-1", Status: string(leave.LeaveStatusApproved)}
	_, err = svc.Review(authedContext(t, "", "HR"), review)
	require.NoError(t, err)

	_, err = svc.Review(authedContext(t, "", "HR"), review)
	assert.ErrorIs(t, err, leave.ErrAlreadyReviewed)
}

func TestReviewNotFound(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo(), newFakeEmployeeRepo(), newFakeAttendanceRepo())

	_, err := svc.Review(authedContext(t, "", "HR"), leave.ReviewLeaveRequest{
		ID:     "leave-404",
		Status: string(leave.LeaveStatusApproved),
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestBalance(t *testing.T) {
	employeeRepo := newFakeEmployeeRepo()
	employeeRepo.balances["emp-1"] = employee.LeaveBalances{PaidLeave: 12, SickLeave: 7}
	svc := newTestService(newFakeLeaveRepo(), employeeRepo, newFakeAttendanceRepo())

	balances, err := svc.Balance(authedContext(t, "emp-1", "Employee"))
	require.NoError(t, err)
	assert.Equal(t, 12, balances.PaidLeave)
	assert.Equal(t, 7, balances.SickLeave)
	assert.Equal(t, 0, balances.UnpaidLeave)
}
