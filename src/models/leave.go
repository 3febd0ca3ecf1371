package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LeaveType string

const (
	LeaveSick   LeaveType = "SICK"
	LeaveCasual LeaveType = "CASUAL"
)

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

// MaxLeaveDays เพดานจำนวนวันลาต่อหนึ่งคำขอ
const MaxLeaveDays = 3

// LeaveRequest คำขอลาของพนักงาน แก้ไข/ลบได้เฉพาะตอนยังเป็น PENDING
type LeaveRequest struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeID   primitive.ObjectID `bson:"employeeId" json:"employeeId"`
	EmployeeCode string             `bson:"employeeCode" json:"employeeCode"`
	LeaveType    LeaveType          `bson:"leaveType" json:"leaveType" validate:"required,oneof=SICK CASUAL"`
	StartDate    string             `bson:"startDate" json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate      string             `bson:"endDate" json:"endDate" validate:"required,datetime=2006-01-02"`
	Days         int                `bson:"days" json:"days"`
	Status       LeaveStatus        `bson:"status" json:"status"`
	Reason       string             `bson:"reason,omitempty" json:"reason,omitempty" validate:"max=500"`
	AppliedOn    time.Time          `bson:"appliedOn" json:"appliedOn"`
	ApprovedBy   string             `bson:"approvedBy,omitempty" json:"approvedBy,omitempty"`
	ApprovedOn   *time.Time         `bson:"approvedOn,omitempty" json:"approvedOn,omitempty"`
}
