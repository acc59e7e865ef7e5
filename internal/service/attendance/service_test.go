package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oijdod/hrms-backend-go/internal/domain/attendance"
)

type fakeAttendanceRepo struct {
	records map[string]*attendance.Attendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	key := recordKey(att.EmployeeID, att.Date)
	if _, exists := f.records[key]; exists {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	f.nextID++
	att.ID = recordKey(att.EmployeeID, att.Date)
	stored := att
	f.records[key] = &stored
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	if att, ok := f.records[recordKey(employeeID, date)]; ok {
		copied := *att
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	for key, stored := range f.records {
		if stored.ID == att.ID {
			updated := att
			f.records[key] = &updated
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) MarkOnLeave(ctx context.Context, employeeID string, date time.Time) error {
	key := recordKey(employeeID, date)
	if att, ok := f.records[key]; ok {
		att.Status = attendance.StatusOnLeave
		return nil
	}
	f.records[key] = &attendance.Attendance{
		ID:         key,
		EmployeeID: employeeID,
		Date:       date,
		Status:     attendance.StatusOnLeave,
	}
	return nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.EmployeeID == employeeID {
			out = append(out, *att)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		out = append(out, *att)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListForMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.EmployeeID == employeeID && att.Date.Year() == year && att.Date.Month() == month {
			out = append(out, *att)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) CountPayableDays(ctx context.Context, employeeID string, year int, month time.Month) (int, error) {
	count := 0
	for _, att := range f.records {
		if att.EmployeeID != employeeID || att.Date.Year() != year || att.Date.Month() != month {
			continue
		}
		if att.Status == attendance.StatusPresent || att.Status == attendance.StatusOnLeave {
			count++
		}
	}
	return count, nil
}

func authedContext(t *testing.T, employeeID string) context.Context {
	t.Helper()

	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id":     "user-1",
		"login_id":    "ACMEJD20240001",
		"employee_id": employeeID,
		"role":        "Employee",
		"type":        "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func timeAt(hour, minute int) *time.Time {
	t := time.Date(2026, time.March, 2, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestApplyDerivedFields(t *testing.T) {
	tests := []struct {
		name           string
		checkIn        *time.Time
		checkOut       *time.Time
		wantWorkHours  float64
		wantExtraHours float64
		wantStatus     attendance.Status
	}{
		{
			name:           "nine hour day splits into work and extra",
			checkIn:        timeAt(9, 0),
			checkOut:       timeAt(18, 0),
			wantWorkHours:  8.0,
			wantExtraHours: 1.0,
			wantStatus:     attendance.StatusPresent,
		},
		{
			name:           "short day stays under the cap",
			checkIn:        timeAt(9, 0),
			checkOut:       timeAt(13, 30),
			wantWorkHours:  4.5,
			wantExtraHours: 0,
			wantStatus:     attendance.StatusPresent,
		},
		{
			name:           "exactly eight hours has no extra",
			checkIn:        timeAt(9, 0),
			checkOut:       timeAt(17, 0),
			wantWorkHours:  8.0,
			wantExtraHours: 0,
			wantStatus:     attendance.StatusPresent,
		},
		{
			name:           "check-out before check-in clamps to zero",
			checkIn:        timeAt(18, 0),
			checkOut:       timeAt(9, 0),
			wantWorkHours:  0,
			wantExtraHours: 0,
			wantStatus:     attendance.StatusPresent,
		},
		{
			name:           "checked in without check-out",
			checkIn:        timeAt(9, 0),
			checkOut:       nil,
			wantWorkHours:  0,
			wantExtraHours: 0,
			wantStatus:     attendance.StatusPresent,
		},
		{
			name:           "no clock times means absent",
			checkIn:        nil,
			checkOut:       nil,
			wantWorkHours:  0,
			wantExtraHours: 0,
			wantStatus:     attendance.StatusAbsent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			att := attendance.Attendance{
				CheckInTime:  tt.checkIn,
				CheckOutTime: tt.checkOut,
			}

			applyDerivedFields(&att)

			assert.Equal(t, tt.wantWorkHours, att.WorkHours)
			assert.Equal(t, tt.wantExtraHours, att.ExtraHours)
			assert.Equal(t, tt.wantStatus, att.Status)
		})
	}
}

func TestCheckIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(nil, repo)
	ctx := authedContext(t, "emp-1")

	resp, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.NotNil(t, resp.CheckInTime)
	assert.Nil(t, resp.CheckOutTime)

	_, err = svc.CheckIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInAfterLeaveApproval(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(nil, repo)
	ctx := authedContext(t, "emp-1")

	date := time.Now().UTC().Truncate(24 * time.Hour)
	require.NoError(t, repo.MarkOnLeave(context.Background(), "emp-1", date))

	resp, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.NotNil(t, resp.CheckInTime)
}

func TestCheckOut(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(nil, repo)
	ctx := authedContext(t, "emp-1")

	_, err := svc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)

	_, err = svc.CheckIn(ctx)
	require.NoError(t, err)

	resp, err := svc.CheckOut(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.NotNil(t, resp.CheckOutTime)

	_, err = svc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestSummary(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(nil, repo)

	march := func(day int) time.Time {
		return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
	}

	for day := 2; day <= 6; day++ {
		in := time.Date(2026, time.March, day, 9, 0, 0, 0, time.UTC)
		out := time.Date(2026, time.March, day, 18, 0, 0, 0, time.UTC)
		att := attendance.Attendance{
			EmployeeID:   "emp-1",
			Date:         march(day),
			CheckInTime:  &in,
			CheckOutTime: &out,
		}
		applyDerivedFields(&att)
		_, err := repo.Create(context.Background(), att)
		require.NoError(t, err)
	}
	require.NoError(t, repo.MarkOnLeave(context.Background(), "emp-1", march(9)))
	require.NoError(t, repo.MarkOnLeave(context.Background(), "emp-1", march(10)))

	summary, err := svc.Summary(context.Background(), "emp-1", time.March, 2026)
	require.NoError(t, err)

	assert.Equal(t, 31, summary.TotalDays)
	assert.Equal(t, 5, summary.PresentDays)
	assert.Equal(t, 2, summary.LeaveDays)
	assert.Equal(t, 24, summary.AbsentDays)
	assert.InDelta(t, 40.0, summary.TotalWorkHours, 0.001)
	assert.InDelta(t, 5.0, summary.TotalExtraHours, 0.001)
}
