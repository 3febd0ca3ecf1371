package attendance

import (
	"context"
	"os"
	"time"

	"Backend-VentureHR/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Clock supplies the current time. Injected so tests can pin it.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the configured timezone.
type SystemClock struct {
	loc *time.Location
}

func NewSystemClock() SystemClock {
	tz := os.Getenv("APP_TIMEZONE")
	if tz == "" {
		return SystemClock{loc: time.Local}
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return SystemClock{loc: time.Local}
	}
	return SystemClock{loc: loc}
}

func (c SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// RecordStore is the attendance persistence surface. The (employeeId, date)
// pair is the unit of mutual exclusion: Insert must fail with
// ErrDuplicateRecord on a duplicate key, and the conditional updates must be
// atomic read-modify-writes on that key.
type RecordStore interface {
	// Insert creates a new record, failing with ErrDuplicateRecord if one
	// already exists for (employeeId, date).
	Insert(ctx context.Context, rec models.Attendance) (models.Attendance, error)

	// FindByEmployeeAndDate returns nil (no error) when no record exists.
	FindByEmployeeAndDate(ctx context.Context, employeeID primitive.ObjectID, date string) (*models.Attendance, error)

	// CompleteCheckout sets checkOutTime and status only if the record still
	// has no checkout. Returns false when the guard did not match.
	CompleteCheckout(ctx context.Context, employeeID primitive.ObjectID, date string, checkOut time.Time, status models.AttendanceStatus) (bool, error)

	// ClosePending moves a PENDING record without checkout to the given
	// terminal status. Returns false when the guard did not match.
	ClosePending(ctx context.Context, employeeID primitive.ObjectID, date string, status models.AttendanceStatus) (bool, error)

	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Attendance, error)
	FindByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]models.Attendance, error)
	FindByEmployeeAndMonth(ctx context.Context, employeeID primitive.ObjectID, year, month int) ([]models.Attendance, error)
	FindByMonth(ctx context.Context, year, month int) ([]models.Attendance, error)
	FindAll(ctx context.Context) ([]models.Attendance, error)
	Update(ctx context.Context, rec models.Attendance) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// EmployeeDirectory is the read-only employee lookup the core needs.
type EmployeeDirectory interface {
	FindByCode(ctx context.Context, code string) (*models.Employee, error)
	FindByEmail(ctx context.Context, email string) (*models.Employee, error)
	ListAll(ctx context.Context) ([]models.Employee, error)
}
