package attendance

import (
	"context"
	"fmt"
	"time"

	"Backend-VentureHR/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service orchestrates check-in/check-out requests and the daily
// reconciliation sweep. All writes go through the RecordStore's
// insert-if-absent and conditional-update primitives, so concurrent
// requests and the sweep serialize on the (employeeId, date) key.
type Service struct {
	records   RecordStore
	employees EmployeeDirectory
	clock     Clock
}

func NewService(records RecordStore, employees EmployeeDirectory, clock Clock) *Service {
	return &Service{records: records, employees: employees, clock: clock}
}

var defaultService *Service

// Init wires the default service against MongoDB. Call after ConnectMongoDB.
func Init() {
	defaultService = NewService(NewMongoStore(), NewMongoDirectory(), NewSystemClock())
}

// Default returns the service wired in Init.
func Default() *Service { return defaultService }

// Now exposes the service clock, used by the sweep job to pick its date.
func (s *Service) Now() time.Time { return s.clock.Now() }

// CheckIn creates today's record for the employee with status PENDING.
// The final status is decided at checkout or by the nightly sweep.
func (s *Service) CheckIn(ctx context.Context, email string) (models.Attendance, error) {
	emp, err := s.employees.FindByEmail(ctx, email)
	if err != nil {
		return models.Attendance{}, err
	}

	now := s.clock.Now()
	rec := models.Attendance{
		EmployeeID:   emp.ID,
		EmployeeCode: emp.Code,
		Date:         now.Format(models.AttendanceDateLayout),
		CheckInTime:  &now,
		Status:       models.StatusPending,
	}

	created, err := s.records.Insert(ctx, rec)
	if err == ErrDuplicateRecord {
		return models.Attendance{}, ErrAlreadyCheckedIn
	}
	if err != nil {
		return models.Attendance{}, err
	}
	return created, nil
}

// CheckOut stamps the checkout time and derives the final status for today.
func (s *Service) CheckOut(ctx context.Context, email string) (models.Attendance, error) {
	emp, err := s.employees.FindByEmail(ctx, email)
	if err != nil {
		return models.Attendance{}, err
	}

	now := s.clock.Now()
	date := now.Format(models.AttendanceDateLayout)

	rec, err := s.records.FindByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return models.Attendance{}, err
	}
	if rec == nil || rec.CheckInTime == nil {
		return models.Attendance{}, ErrNoCheckInRecord
	}
	if rec.CheckOutTime != nil {
		return models.Attendance{}, ErrAlreadyCheckedOut
	}

	status := Derive(rec.CheckInTime, &now)
	ok, err := s.records.CompleteCheckout(ctx, emp.ID, date, now, status)
	if err != nil {
		return models.Attendance{}, err
	}
	if !ok {
		// lost the race against another checkout
		return models.Attendance{}, ErrAlreadyCheckedOut
	}

	rec.CheckOutTime = &now
	rec.Status = status
	return *rec, nil
}

// ListForEmployee returns all records for an employee code, in date order.
func (s *Service) ListForEmployee(ctx context.Context, code string) ([]models.Attendance, error) {
	emp, err := s.employees.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.records.FindByEmployee(ctx, emp.ID)
}

// ListForEmployeeInMonth returns an employee's records in a given month.
func (s *Service) ListForEmployeeInMonth(ctx context.Context, code string, year, month int) ([]models.Attendance, error) {
	emp, err := s.employees.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.records.FindByEmployeeAndMonth(ctx, emp.ID, year, month)
}

// MonthlySummary counts an employee's statuses over a month. Weekend records
// are excluded and all five status buckets are always present.
func (s *Service) MonthlySummary(ctx context.Context, code string, year, month int) (models.MonthlySummary, error) {
	records, err := s.ListForEmployeeInMonth(ctx, code, year, month)
	if err != nil {
		return models.MonthlySummary{}, err
	}

	summary := models.NewMonthlySummary(code, year, month)
	for _, rec := range records {
		if rec.IsWeekend() {
			continue
		}
		summary.Counts[rec.Status]++
	}
	return summary, nil
}

// MonthlySummaryAll builds the monthly summary for every known employee.
func (s *Service) MonthlySummaryAll(ctx context.Context, year, month int) ([]models.MonthlySummary, error) {
	employees, err := s.employees.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.records.FindByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]models.MonthlySummary, len(employees))
	for _, emp := range employees {
		byCode[emp.Code] = models.NewMonthlySummary(emp.Code, year, month)
	}
	for _, rec := range records {
		summary, ok := byCode[rec.EmployeeCode]
		if !ok || rec.IsWeekend() {
			continue
		}
		summary.Counts[rec.Status]++
	}

	summaries := make([]models.MonthlySummary, 0, len(employees))
	for _, emp := range employees {
		summaries = append(summaries, byCode[emp.Code])
	}
	return summaries, nil
}

// ListAll returns every attendance record.
func (s *Service) ListAll(ctx context.Context) ([]models.Attendance, error) {
	return s.records.FindAll(ctx)
}

// ListAllByMonth returns every record in a given month.
func (s *Service) ListAllByMonth(ctx context.Context, year, month int) ([]models.Attendance, error) {
	return s.records.FindByMonth(ctx, year, month)
}

// Edit is the HR correction path. It overwrites status, times and reason
// directly, bypassing the check-in/check-out state machine. Only the enum
// and the checkout-requires-checkin invariant are enforced.
func (s *Service) Edit(ctx context.Context, id primitive.ObjectID, edit models.AttendanceEdit) (models.Attendance, error) {
	if !edit.Status.IsValid() {
		return models.Attendance{}, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, edit.Status)
	}
	if edit.CheckOutTime != nil && edit.CheckInTime == nil {
		return models.Attendance{}, fmt.Errorf("%w: checkout time without check-in time", ErrInvalidTransition)
	}

	rec, err := s.records.FindByID(ctx, id)
	if err != nil {
		return models.Attendance{}, err
	}
	if rec == nil {
		return models.Attendance{}, ErrRecordNotFound
	}

	rec.Status = edit.Status
	rec.CheckInTime = edit.CheckInTime
	rec.CheckOutTime = edit.CheckOutTime
	rec.Reason = edit.Reason

	if err := s.records.Update(ctx, *rec); err != nil {
		return models.Attendance{}, err
	}
	return *rec, nil
}

// Delete removes a record by id.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.records.DeleteByID(ctx, id)
}

// SweepResult reports what one reconciliation run did.
type SweepResult struct {
	Date          string         `json:"date"`
	Weekend       bool           `json:"weekend"`
	MarkedAbsent  int            `json:"markedAbsent"`
	ClosedHalfDay int            `json:"closedHalfDay"`
	Unchanged     int            `json:"unchanged"`
	Failures      []SweepFailure `json:"failures,omitempty"`
}

// Sweep closes out the given date: employees with no record are marked
// ABSENT, PENDING records without a checkout become HALF_DAY. Weekends are
// a no-op. Running the sweep twice for the same date is a no-op the second
// time: the absent insert hits the uniqueness constraint and the pending
// close's guard no longer matches.
func (s *Service) Sweep(ctx context.Context, date time.Time) (SweepResult, error) {
	result := SweepResult{Date: date.Format(models.AttendanceDateLayout)}
	if IsWeekend(date.Weekday()) {
		result.Weekend = true
		return result, nil
	}

	employees, err := s.employees.ListAll(ctx)
	if err != nil {
		return result, err
	}

	for _, emp := range employees {
		rec, err := s.records.FindByEmployeeAndDate(ctx, emp.ID, result.Date)
		if err != nil {
			result.Failures = append(result.Failures, SweepFailure{EmployeeCode: emp.Code, Reason: err.Error()})
			continue
		}

		switch {
		case rec == nil:
			// never checked in
			absent := models.Attendance{
				EmployeeID:   emp.ID,
				EmployeeCode: emp.Code,
				Date:         result.Date,
				Status:       models.StatusAbsent,
			}
			_, err := s.records.Insert(ctx, absent)
			if err == ErrDuplicateRecord {
				// a check-in slipped in between the read and the insert
				result.Unchanged++
			} else if err != nil {
				result.Failures = append(result.Failures, SweepFailure{EmployeeCode: emp.Code, Reason: err.Error()})
			} else {
				result.MarkedAbsent++
			}

		case rec.Status == models.StatusPending && rec.CheckOutTime == nil:
			// checked in but never checked out; checkOutTime stays null
			ok, err := s.records.ClosePending(ctx, emp.ID, result.Date, models.StatusHalfDay)
			if err != nil {
				result.Failures = append(result.Failures, SweepFailure{EmployeeCode: emp.Code, Reason: err.Error()})
			} else if ok {
				result.ClosedHalfDay++
			} else {
				result.Unchanged++
			}

		default:
			result.Unchanged++
		}
	}

	if len(result.Failures) > 0 {
		return result, &PartialSweepError{Date: result.Date, Failures: result.Failures}
	}
	return result, nil
}
