package attendance

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"Backend-VentureHR/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory RecordStore honoring the same (employeeId, date)
// uniqueness and conditional-update guards as the Mongo implementation.
type fakeStore struct {
	mu      sync.Mutex
	records map[string]*models.Attendance

	// failFor makes every operation for the given employee fail
	failFor map[primitive.ObjectID]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		records: make(map[string]*models.Attendance),
		failFor: make(map[primitive.ObjectID]bool),
	}
}

func key(employeeID primitive.ObjectID, date string) string {
	return employeeID.Hex() + "|" + date
}

func (f *fakeStore) Insert(_ context.Context, rec models.Attendance) (models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[rec.EmployeeID] {
		return models.Attendance{}, fmt.Errorf("store unavailable")
	}
	k := key(rec.EmployeeID, rec.Date)
	if _, exists := f.records[k]; exists {
		return models.Attendance{}, ErrDuplicateRecord
	}
	rec.ID = primitive.NewObjectID()
	f.records[k] = &rec
	return rec, nil
}

func (f *fakeStore) FindByEmployeeAndDate(_ context.Context, employeeID primitive.ObjectID, date string) (*models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[employeeID] {
		return nil, fmt.Errorf("store unavailable")
	}
	rec, ok := f.records[key(employeeID, date)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeStore) CompleteCheckout(_ context.Context, employeeID primitive.ObjectID, date string, checkOut time.Time, status models.AttendanceStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[key(employeeID, date)]
	if !ok || rec.CheckOutTime != nil {
		return false, nil
	}
	rec.CheckOutTime = &checkOut
	rec.Status = status
	return true, nil
}

func (f *fakeStore) ClosePending(_ context.Context, employeeID primitive.ObjectID, date string, status models.AttendanceStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[key(employeeID, date)]
	if !ok || rec.Status != models.StatusPending || rec.CheckOutTime != nil {
		return false, nil
	}
	rec.Status = status
	return true, nil
}

func (f *fakeStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.records {
		if rec.ID == id {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindByEmployee(_ context.Context, employeeID primitive.ObjectID) ([]models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeStore) FindByEmployeeAndMonth(_ context.Context, employeeID primitive.ObjectID, year, month int) ([]models.Attendance, error) {
	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && len(rec.Date) >= len(prefix) && rec.Date[:len(prefix)] == prefix {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeStore) FindByMonth(_ context.Context, year, month int) ([]models.Attendance, error) {
	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Attendance
	for _, rec := range f.records {
		if len(rec.Date) >= len(prefix) && rec.Date[:len(prefix)] == prefix {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeStore) FindAll(_ context.Context) ([]models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Attendance
	for _, rec := range f.records {
		out = append(out, *rec)
	}
	return out, nil
}

func (f *fakeStore) Update(_ context.Context, rec models.Attendance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, existing := range f.records {
		if existing.ID == rec.ID {
			cp := rec
			f.records[k] = &cp
			return nil
		}
	}
	return ErrRecordNotFound
}

func (f *fakeStore) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, rec := range f.records {
		if rec.ID == id {
			delete(f.records, k)
			return nil
		}
	}
	return ErrRecordNotFound
}

// snapshot copies the store state for idempotence comparisons.
func (f *fakeStore) snapshot() map[string]models.Attendance {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]models.Attendance, len(f.records))
	for k, rec := range f.records {
		out[k] = *rec
	}
	return out
}

type fakeDirectory struct {
	employees []models.Employee
}

func (d *fakeDirectory) FindByCode(_ context.Context, code string) (*models.Employee, error) {
	for i := range d.employees {
		if d.employees[i].Code == code {
			return &d.employees[i], nil
		}
	}
	return nil, ErrEmployeeNotFound
}

func (d *fakeDirectory) FindByEmail(_ context.Context, email string) (*models.Employee, error) {
	for i := range d.employees {
		if d.employees[i].UserEmail == email {
			return &d.employees[i], nil
		}
	}
	return nil, ErrEmployeeNotFound
}

func (d *fakeDirectory) ListAll(_ context.Context) ([]models.Employee, error) {
	return d.employees, nil
}

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time { return c.t }

func newEmployee(code, email string) models.Employee {
	return models.Employee{
		ID:        primitive.NewObjectID(),
		Code:      code,
		Name:      "Employee " + code,
		Status:    models.EmployeeActive,
		UserEmail: email,
	}
}

// monday is a fixed weekday at 08:00.
var monday = time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

func newTestService(emps ...models.Employee) (*Service, *fakeStore, *fakeDirectory, *fixedClock) {
	store := newFakeStore()
	dir := &fakeDirectory{employees: emps}
	clock := &fixedClock{t: monday}
	return NewService(store, dir, clock), store, dir, clock
}

func TestCheckInCreatesPendingRecord(t *testing.T) {
	emp := newEmployee("EMP001", "a@venturehr.io")
	svc, _, _, clock := newTestService(emp)
	clock.t = monday.Add(1*time.Hour + 45*time.Minute) // 09:45

	rec, err := svc.CheckIn(context.Background(), emp.UserEmail)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, rec.Status)
	assert.Equal(t, "2025-06-02", rec.Date)
	require.NotNil(t, rec.CheckInTime)
	assert.Nil(t, rec.CheckOutTime)
	assert.Equal(t, emp.Code, rec.EmployeeCode)
}

func TestDuplicateCheckInRejected(t *testing.T) {
	emp := newEmployee("EMP001", "a@venturehr.io")
	svc, store, _, _ := newTestService(emp)

	_, err := svc.CheckIn(context.Background(), emp.UserEmail)
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), emp.UserEmail)
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)

	records, err := store.FindByEmployee(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Len(t, records, 1, "exactly one record after the rejected retry")
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	emp := newEmployee("EMP001", "a@venturehr.io")
	svc, _, _, _ := newTestService(emp)

	_, err := svc.CheckOut(context.Background(), emp.UserEmail)
	assert.ErrorIs(t, err, ErrNoCheckInRecord)
}

func TestCheckOutTwiceRejected(t *testing.T) {
	emp := newEmployee("EMP001", "a@venturehr.io")
	svc, _, _, clock := newTestService(emp)

	_, err := svc.CheckIn(context.Background(), emp.UserEmail)
	require.NoError(t, err)

	clock.t = monday.Add(10 * time.Hour) // 18:00
	_, err = svc.CheckOut(context.Background(), emp.UserEmail)
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), emp.UserEmail)
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
}

func TestCheckOutAgainstSweeperAbsentRecord(t *testing.T) {
	// the sweeper's ABSENT record has no check-in; checkout must not resolve it
	emp := newEmployee("EMP001", "a@venturehr.io")
	svc, store, _, clock := newTestService(emp)

	_, err := store.Insert(context.Background(), models.Attendance{
		EmployeeID:   emp.ID,
		EmployeeCode: emp.Code,
		Date:         "2025-06-02",
		Status:       models.StatusAbsent,
	})
	require.NoError(t, err)

	clock.t = monday.Add(10 * time.Hour)
	_, err = svc.CheckOut(context.Background(), emp.UserEmail)
	assert.ErrorIs(t, err, ErrNoCheckInRecord)
}

func TestFullDayScenario(t *testing.T) {
	// check-in 09:45, check-out 18:30 → PRESENT, summary PRESENT=1
	emp := newEmployee("EMP001", "a@venturehr.io")
	svc, _, _, clock := newTestService(emp)

	clock.t = monday.Add(1*time.Hour + 45*time.Minute) // 09:45
	_, err := svc.CheckIn(context.Background(), emp.UserEmail)
	require.NoError(t, err)

	clock.t = monday.Add(10*time.Hour + 30*time.Minute) // 18:30
	rec, err := svc.CheckOut(context.Background(), emp.UserEmail)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPresent, rec.Status)

	summary, err := svc.MonthlySummary(context.Background(), emp.Code, 2025, 6)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Counts[models.StatusPresent])
}

func TestEarlyDepartureDominatesLateWindow(t *testing.T) {
	// check-in 10:30, check-out 17:00 → HALF_DAY, not LATE
	emp := newEmployee("EMP001", "a@venturehr.io")
	svc, _, _, clock := newTestService(emp)

	clock.t = monday.Add(2*time.Hour + 30*time.Minute) // 10:30
	_, err := svc.CheckIn(context.Background(), emp.UserEmail)
	require.NoError(t, err)

	clock.t = monday.Add(9 * time.Hour) // 17:00
	rec, err := svc.CheckOut(context.Background(), emp.UserEmail)
	require.NoError(t, err)
	assert.Equal(t, models.StatusHalfDay, rec.Status)
}

func TestSweepMarksMissingEmployeesAbsent(t *testing.T) {
	empA := newEmployee("EMP001", "a@venturehr.io")
	empB := newEmployee("EMP002", "b@venturehr.io")
	svc, store, _, _ := newTestService(empA, empB)

	_, err := svc.CheckIn(context.Background(), empA.UserEmail)
	require.NoError(t, err)

	result, err := svc.Sweep(context.Background(), monday)
	require.NoError(t, err)
	assert.Equal(t, 1, result.MarkedAbsent)

	rec, err := store.FindByEmployeeAndDate(context.Background(), empB.ID, "2025-06-02")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, models.StatusAbsent, rec.Status)
	assert.Nil(t, rec.CheckInTime)
	assert.Nil(t, rec.CheckOutTime)
}

func TestSweepClosesPendingAsHalfDay(t *testing.T) {
	// checked in 09:00, never checked out → HALF_DAY, checkout stays null
	emp := newEmployee("EMP001", "a@venturehr.io")
	svc, store, _, clock := newTestService(emp)

	clock.t = monday.Add(1 * time.Hour) // 09:00
	_, err := svc.CheckIn(context.Background(), emp.UserEmail)
	require.NoError(t, err)

	result, err := svc.Sweep(context.Background(), monday)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ClosedHalfDay)

	rec, err := store.FindByEmployeeAndDate(context.Background(), emp.ID, "2025-06-02")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, models.StatusHalfDay, rec.Status)
	assert.Nil(t, rec.CheckOutTime)
	assert.NotNil(t, rec.CheckInTime)
}

func TestSweepLeavesResolvedRecordsAlone(t *testing.T) {
	emp := newEmployee("EMP001", "a@venturehr.io")
	svc, store, _, clock := newTestService(emp)

	clock.t = monday.Add(1 * time.Hour)
	_, err := svc.CheckIn(context.Background(), emp.UserEmail)
	require.NoError(t, err)
	clock.t = monday.Add(10 * time.Hour)
	_, err = svc.CheckOut(context.Background(), emp.UserEmail)
	require.NoError(t, err)

	result, err := svc.Sweep(context.Background(), monday)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Unchanged)

	rec, err := store.FindByEmployeeAndDate(context.Background(), emp.ID, "2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPresent, rec.Status)
}

func TestSweepIsIdempotent(t *testing.T) {
	empA := newEmployee("EMP001", "a@venturehr.io")
	empB := newEmployee("EMP002", "b@venturehr.io")
	svc, store, _, clock := newTestService(empA, empB)

	clock.t = monday.Add(1 * time.Hour)
	_, err := svc.CheckIn(context.Background(), empA.UserEmail)
	require.NoError(t, err)

	_, err = svc.Sweep(context.Background(), monday)
	require.NoError(t, err)
	first := store.snapshot()

	result, err := svc.Sweep(context.Background(), monday)
	require.NoError(t, err)
	assert.Equal(t, 0, result.MarkedAbsent)
	assert.Equal(t, 0, result.ClosedHalfDay)
	assert.Equal(t, first, store.snapshot(), "second sweep must not change the store")
}

func TestSweepSkipsWeekends(t *testing.T) {
	emp := newEmployee("EMP001", "a@venturehr.io")
	svc, store, _, _ := newTestService(emp)

	saturday := time.Date(2025, 6, 7, 8, 0, 0, 0, time.UTC)
	result, err := svc.Sweep(context.Background(), saturday)
	require.NoError(t, err)
	assert.True(t, result.Weekend)

	rec, err := store.FindByEmployeeAndDate(context.Background(), emp.ID, "2025-06-07")
	require.NoError(t, err)
	assert.Nil(t, rec, "no ABSENT default may be created on a weekend")
}

func TestSweepContinuesPastFailures(t *testing.T) {
	empA := newEmployee("EMP001", "a@venturehr.io")
	empB := newEmployee("EMP002", "b@venturehr.io")
	empC := newEmployee("EMP003", "c@venturehr.io")
	svc, store, _, _ := newTestService(empA, empB, empC)

	store.failFor[empB.ID] = true

	result, err := svc.Sweep(context.Background(), monday)

	var partial *PartialSweepError
	require.ErrorAs(t, err, &partial)
	assert.Len(t, partial.Failures, 1)
	assert.Equal(t, "EMP002", partial.Failures[0].EmployeeCode)
	assert.Equal(t, 2, result.MarkedAbsent, "the other employees are still processed")
}

func TestMonthlySummaryZeroFilledAndWeekendExcluded(t *testing.T) {
	emp := newEmployee("EMP001", "a@venturehr.io")
	svc, store, _, _ := newTestService(emp)

	// weekday PRESENT + weekend record that must be ignored
	in := monday.Add(1 * time.Hour)
	out := monday.Add(10 * time.Hour)
	_, err := store.Insert(context.Background(), models.Attendance{
		EmployeeID: emp.ID, EmployeeCode: emp.Code, Date: "2025-06-02",
		CheckInTime: &in, CheckOutTime: &out, Status: models.StatusPresent,
	})
	require.NoError(t, err)
	_, err = store.Insert(context.Background(), models.Attendance{
		EmployeeID: emp.ID, EmployeeCode: emp.Code, Date: "2025-06-07", // Saturday
		Status: models.StatusPresent,
	})
	require.NoError(t, err)

	summary, err := svc.MonthlySummary(context.Background(), emp.Code, 2025, 6)
	require.NoError(t, err)

	assert.Len(t, summary.Counts, 5, "all five status keys present")
	for _, s := range models.AllAttendanceStatuses {
		assert.Contains(t, summary.Counts, s)
	}
	assert.Equal(t, 1, summary.Counts[models.StatusPresent], "weekend record excluded")

	total := 0
	for _, n := range summary.Counts {
		total += n
	}
	assert.Equal(t, 1, total)
}

func TestEditRejectsMalformedValues(t *testing.T) {
	emp := newEmployee("EMP001", "a@venturehr.io")
	svc, _, _, _ := newTestService(emp)

	_, err := svc.Edit(context.Background(), primitive.NewObjectID(), models.AttendanceEdit{Status: "SOMETIMES"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	out := monday.Add(10 * time.Hour)
	_, err = svc.Edit(context.Background(), primitive.NewObjectID(), models.AttendanceEdit{
		Status:       models.StatusPresent,
		CheckOutTime: &out,
	})
	assert.ErrorIs(t, err, ErrInvalidTransition, "checkout without check-in")
}

func TestEditOverwritesWithoutTransitionGuard(t *testing.T) {
	emp := newEmployee("EMP001", "a@venturehr.io")
	svc, store, _, clock := newTestService(emp)

	clock.t = monday.Add(1 * time.Hour)
	rec, err := svc.CheckIn(context.Background(), emp.UserEmail)
	require.NoError(t, err)

	in := monday.Add(2 * time.Hour)
	out := monday.Add(11 * time.Hour)
	edited, err := svc.Edit(context.Background(), rec.ID, models.AttendanceEdit{
		Status:       models.StatusAbsent,
		CheckInTime:  &in,
		CheckOutTime: &out,
		Reason:       "site visit, corrected by HR",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAbsent, edited.Status)
	assert.Equal(t, "site visit, corrected by HR", edited.Reason)

	stored, err := store.FindByID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAbsent, stored.Status)
}

func TestDeleteRecord(t *testing.T) {
	emp := newEmployee("EMP001", "a@venturehr.io")
	svc, store, _, _ := newTestService(emp)

	rec, err := svc.CheckIn(context.Background(), emp.UserEmail)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), rec.ID))

	got, err := store.FindByEmployeeAndDate(context.Background(), emp.ID, rec.Date)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, svc.Delete(context.Background(), rec.ID), ErrRecordNotFound)
}

func TestMonthlySummaryAllCoversEveryEmployee(t *testing.T) {
	empA := newEmployee("EMP001", "a@venturehr.io")
	empB := newEmployee("EMP002", "b@venturehr.io")
	svc, _, _, clock := newTestService(empA, empB)

	clock.t = monday.Add(1 * time.Hour)
	_, err := svc.CheckIn(context.Background(), empA.UserEmail)
	require.NoError(t, err)

	summaries, err := svc.MonthlySummaryAll(context.Background(), 2025, 6)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byCode := map[string]int{}
	for _, s := range summaries {
		byCode[s.EmployeeCode] = s.Counts[models.StatusPending]
	}
	assert.Equal(t, 1, byCode["EMP001"])
	assert.Equal(t, 0, byCode["EMP002"])
}
