package services

import (
	"context"
	"errors"
	"strings"

	"Backend-VentureHR/src/database"
	"Backend-VentureHR/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already exists")
	ErrAccountInactive    = errors.New("account is not active, please contact HR")
)

// RegisterUser สมัครบัญชีใหม่ email ต้องไม่ซ้ำ
func RegisterUser(user *models.User) error {
	ctx := context.Background()
	user.Email = strings.ToLower(user.Email)

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	_, err = database.UserCollection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrEmailTaken
	}
	return err
}

// LookupUser หา user และ employee ที่ผูกกันจาก email (ไม่ตรวจ password)
func LookupUser(email string) (*models.User, *models.Employee, error) {
	ctx := context.Background()

	var dbUser models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if dbUser.Role != models.RoleEmployee {
		return &dbUser, nil, nil
	}

	var emp models.Employee
	if err := database.EmployeeCollection.FindOne(ctx, bson.M{"userEmail": dbUser.Email}).Decode(&emp); err != nil {
		return &dbUser, nil, nil
	}
	return &dbUser, &emp, nil
}

// AuthenticateUser ตรวจสอบ email/password และสถานะพนักงาน
// สำหรับ role EMPLOYEE จะคืน employee ที่ผูกกับบัญชีด้วย
func AuthenticateUser(email, password string) (*models.User, *models.Employee, error) {
	ctx := context.Background()

	var dbUser models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	// ตรวจสอบ password
	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if dbUser.Role != models.RoleEmployee {
		return &dbUser, nil, nil
	}

	var emp models.Employee
	err = database.EmployeeCollection.FindOne(ctx, bson.M{"userEmail": dbUser.Email}).Decode(&emp)
	if err != nil {
		return nil, nil, errors.New("employee profile not found")
	}
	if emp.Status != models.EmployeeActive {
		return nil, nil, ErrAccountInactive
	}

	return &dbUser, &emp, nil
}
