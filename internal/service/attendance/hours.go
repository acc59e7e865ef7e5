package attendance

import (
	"math"

	"github.com/oijdod/hrms-backend-go/internal/domain/attendance"
)

// standardWorkDayHours caps work hours per day; anything beyond counts as
// extra hours.
const standardWorkDayHours = 8.0

// applyDerivedFields recomputes work hours, extra hours and status from the
// record's clock times. The derived fields are never trusted from storage or
// input; every check-in and check-out runs through here.
func applyDerivedFields(att *attendance.Attendance) {
	att.WorkHours = 0
	att.ExtraHours = 0

	if att.CheckInTime == nil {
		att.Status = attendance.StatusAbsent
		return
	}

	att.Status = attendance.StatusPresent

	if att.CheckOutTime == nil {
		return
	}

	raw := att.CheckOutTime.Sub(*att.CheckInTime).Hours()
	if raw < 0 {
		// A check-out recorded before the check-in yields zero hours rather
		// than a negative duration.
		raw = 0
	}

	att.WorkHours = roundHours(math.Min(raw, standardWorkDayHours))
	att.ExtraHours = roundHours(math.Max(0, raw-standardWorkDayHours))
}

func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
