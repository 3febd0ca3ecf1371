package employees

import (
	"context"
	"errors"
	"strings"

	"Backend-VentureHR/src/database"
	"Backend-VentureHR/src/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

var (
	ErrNotFound      = errors.New("employee not found")
	ErrDuplicateCode = errors.New("employee code already exists")
	ErrUserNotFound  = errors.New("user account not found for this email")
)

// GetAll ดึงพนักงานทั้งหมด เรียงตามรหัส
func GetAll() ([]models.Employee, error) {
	ctx := context.Background()
	opts := options.Find().SetSort(bson.D{{Key: "code", Value: 1}})
	cursor, err := database.EmployeeCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []models.Employee
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Create เพิ่มพนักงานใหม่ ต้องมีบัญชี user อยู่ก่อนแล้ว
func Create(emp *models.Employee) error {
	if err := validate.Struct(emp); err != nil {
		return err
	}
	ctx := context.Background()
	emp.UserEmail = strings.ToLower(emp.UserEmail)

	// บัญชีต้องมีอยู่จริงก่อนผูกพนักงาน
	count, err := database.UserCollection.CountDocuments(ctx, bson.M{"email": emp.UserEmail})
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrUserNotFound
	}

	if emp.Status == "" {
		emp.Status = models.EmployeeActive
	}

	_, err = database.EmployeeCollection.InsertOne(ctx, emp)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateCode
	}
	return err
}

// Update แก้ไขข้อมูลพนักงานตาม id
func Update(id string, updated *models.Employee) (*models.Employee, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := validate.Struct(updated); err != nil {
		return nil, err
	}

	ctx := context.Background()
	update := bson.M{"$set": bson.M{
		"code":       updated.Code,
		"name":       updated.Name,
		"department": updated.Department,
		"deptRole":   updated.DeptRole,
		"status":     updated.Status,
		"userEmail":  strings.ToLower(updated.UserEmail),
	}}

	res, err := database.EmployeeCollection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateCode
	}
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	updated.ID = objID
	return updated, nil
}

// Delete ลบพนักงานตาม id
func Delete(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := database.EmployeeCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByEmail หาพนักงานจาก email ของบัญชีผู้ใช้
func GetByEmail(email string) (*models.Employee, error) {
	var emp models.Employee
	err := database.EmployeeCollection.FindOne(context.Background(),
		bson.M{"userEmail": strings.ToLower(email)}).Decode(&emp)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// UpdateProfile ให้พนักงานแก้ไขข้อมูลของตัวเองบางส่วน
func UpdateProfile(email string, department, deptRole string) (*models.Employee, error) {
	emp, err := GetByEmail(email)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{"department": department, "deptRole": deptRole}}
	_, err = database.EmployeeCollection.UpdateOne(context.Background(), bson.M{"_id": emp.ID}, update)
	if err != nil {
		return nil, err
	}
	emp.Department = department
	emp.DeptRole = deptRole
	return emp, nil
}
