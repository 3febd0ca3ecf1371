package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SalaryStatus string

const (
	SalaryCurrent SalaryStatus = "CURRENT" // เงินเดือนรอบปัจจุบัน
	SalaryPending SalaryStatus = "PENDING" // ครบรอบแล้ว รอจ่าย
	SalaryPaid    SalaryStatus = "PAID"
)

// Salary สลิปเงินเดือนของพนักงานหนึ่งคนในหนึ่งเดือน
type Salary struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PayslipRef   string             `bson:"payslipRef" json:"payslipRef"`
	EmployeeID   primitive.ObjectID `bson:"employeeId" json:"employeeId"`
	EmployeeCode string             `bson:"employeeCode" json:"employeeCode"`
	BasicPay     float64            `bson:"basicPay" json:"basicPay" validate:"gte=0"`
	HRA          float64            `bson:"hra" json:"hra" validate:"gte=0"`
	Allowances   float64            `bson:"allowances" json:"allowances" validate:"gte=0"`
	Deductions   float64            `bson:"deductions" json:"deductions" validate:"gte=0"`
	NetPay       float64            `bson:"netPay" json:"netPay"`
	Month        int                `bson:"month" json:"month" validate:"min=1,max=12"`
	Year         int                `bson:"year" json:"year" validate:"min=2000"`
	PayslipDate  time.Time          `bson:"payslipDate" json:"payslipDate"`
	PaidDate     *time.Time         `bson:"paidDate,omitempty" json:"paidDate,omitempty"`
	Status       SalaryStatus       `bson:"status" json:"status"`
	BankName     string             `bson:"bankName" json:"bankName"`
	AccountNo    string             `bson:"accountNumber" json:"accountNumber"`
}

// CalculateNetPay คำนวณยอดสุทธิจากองค์ประกอบเงินเดือน
func (s *Salary) CalculateNetPay() {
	s.NetPay = s.BasicPay + s.HRA + s.Allowances - s.Deductions
}
