package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceStatus สถานะการมาทำงานของวันนั้น
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusLate    AttendanceStatus = "LATE"
	StatusHalfDay AttendanceStatus = "HALF_DAY"
	StatusAbsent  AttendanceStatus = "ABSENT"
	StatusPending AttendanceStatus = "PENDING"
)

// AllAttendanceStatuses ลำดับที่ใช้แสดงผลใน summary
var AllAttendanceStatuses = []AttendanceStatus{
	StatusPresent,
	StatusLate,
	StatusHalfDay,
	StatusAbsent,
	StatusPending,
}

func (s AttendanceStatus) IsValid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusHalfDay, StatusAbsent, StatusPending:
		return true
	}
	return false
}

// IsTerminal reports whether the status is final. PENDING is the only
// non-terminal status; the nightly sweep resolves it.
func (s AttendanceStatus) IsTerminal() bool {
	return s.IsValid() && s != StatusPending
}

// AttendanceDateLayout วันที่เก็บเป็น string เพื่อให้ unique index
// (employeeId, date) ใช้งานได้ตรง ๆ
const AttendanceDateLayout = "2006-01-02"

// Attendance บันทึกเวลาเข้า-ออกงานของพนักงาน 1 คนต่อ 1 วัน
// The time pointers must stay omitempty: the checkout and sweep guards
// match on the field being absent, not null.
type Attendance struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeID   primitive.ObjectID `bson:"employeeId" json:"employeeId"`
	EmployeeCode string             `bson:"employeeCode" json:"employeeCode"`
	Date         string             `bson:"date" json:"date"` // YYYY-MM-DD
	CheckInTime  *time.Time         `bson:"checkInTime,omitempty" json:"checkInTime,omitempty"`
	CheckOutTime *time.Time         `bson:"checkOutTime,omitempty" json:"checkOutTime,omitempty"`
	Status       AttendanceStatus   `bson:"status" json:"status"`
	Reason       string             `bson:"reason,omitempty" json:"reason,omitempty"`
}

// Weekday derives the day of week from the stored date string.
func (a Attendance) Weekday() time.Weekday {
	t, err := time.Parse(AttendanceDateLayout, a.Date)
	if err != nil {
		return time.Monday
	}
	return t.Weekday()
}

func (a Attendance) IsWeekend() bool {
	d := a.Weekday()
	return d == time.Saturday || d == time.Sunday
}

// AttendanceEdit ค่าที่ HR แก้ไขได้ในหน้าจัดการ attendance
type AttendanceEdit struct {
	Status       AttendanceStatus `json:"status" validate:"required"`
	CheckInTime  *time.Time       `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time       `json:"checkOutTime,omitempty"`
	Reason       string           `json:"reason,omitempty"`
}

// MonthlySummary จำนวนวันแยกตามสถานะของเดือนนั้น ครบทั้ง 5 สถานะเสมอ
type MonthlySummary struct {
	EmployeeCode string                   `json:"employeeCode"`
	Year         int                      `json:"year"`
	Month        int                      `json:"month"`
	Counts       map[AttendanceStatus]int `json:"counts"`
}

// NewMonthlySummary zero-fills every status bucket.
func NewMonthlySummary(code string, year, month int) MonthlySummary {
	counts := make(map[AttendanceStatus]int, len(AllAttendanceStatuses))
	for _, s := range AllAttendanceStatuses {
		counts[s] = 0
	}
	return MonthlySummary{EmployeeCode: code, Year: year, Month: month, Counts: counts}
}
