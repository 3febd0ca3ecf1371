package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role ของผู้ใช้ในระบบ
type Role string

const (
	RoleHR       Role = "HR"
	RoleEmployee Role = "EMPLOYEE"
)

func (r Role) IsValid() bool {
	return r == RoleHR || r == RoleEmployee
}

// User บัญชีสำหรับ login (1 user : 1 employee)
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email" validate:"required,email"`
	Password string             `bson:"password" json:"-" validate:"required,min=6"`
	Role     Role               `bson:"role" json:"role" validate:"required,oneof=HR EMPLOYEE"`
}
