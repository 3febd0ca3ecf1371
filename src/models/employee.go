package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmployeeStatus สถานะการจ้างงาน
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "ACTIVE"
	EmployeeInactive EmployeeStatus = "INACTIVE"
)

// Employee ข้อมูลพนักงาน ผูกกับ User ผ่าน email
type Employee struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code       string             `bson:"code" json:"code" validate:"required"` // เช่น EMP001
	Name       string             `bson:"name" json:"name" validate:"required"`
	Department string             `bson:"department" json:"department"`
	DeptRole   string             `bson:"deptRole" json:"deptRole"`
	Status     EmployeeStatus     `bson:"status" json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
	UserEmail  string             `bson:"userEmail" json:"userEmail" validate:"required,email"`
}
