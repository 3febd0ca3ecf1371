package salaries

import (
	"context"
	"errors"
	"log"
	"time"

	"Backend-VentureHR/src/database"
	"Backend-VentureHR/src/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

var (
	ErrNotFound         = errors.New("salary record not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrAlreadyGenerated = errors.New("salary already generated for this month")
)

func findEmployeeByCode(ctx context.Context, code string) (*models.Employee, error) {
	var emp models.Employee
	err := database.EmployeeCollection.FindOne(ctx, bson.M{"code": code}).Decode(&emp)
	if err == mongo.ErrNoDocuments {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// Generate สร้างสลิปเงินเดือนประจำเดือนให้พนักงาน เดือนละหนึ่งใบ
func Generate(salary *models.Salary) error {
	if err := validate.Struct(salary); err != nil {
		return err
	}
	ctx := context.Background()

	emp, err := findEmployeeByCode(ctx, salary.EmployeeCode)
	if err != nil {
		return err
	}

	count, err := database.SalaryCollection.CountDocuments(ctx, bson.M{
		"employeeId": emp.ID,
		"month":      salary.Month,
		"year":       salary.Year,
	})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyGenerated
	}

	salary.EmployeeID = emp.ID
	salary.PayslipRef = uuid.NewString()
	salary.PayslipDate = time.Now()
	salary.Status = models.SalaryCurrent
	salary.PaidDate = nil
	salary.CalculateNetPay()

	res, err := database.SalaryCollection.InsertOne(ctx, salary)
	if err != nil {
		return err
	}
	salary.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ApplyHike สร้างสลิปใหม่ด้วยฐานเงินเดือนที่ปรับแล้ว
// ต่างจาก Generate ตรงที่ไม่บล็อคเดือนที่มีสลิปอยู่แล้ว
func ApplyHike(salary *models.Salary) error {
	if err := validate.Struct(salary); err != nil {
		return err
	}
	ctx := context.Background()

	emp, err := findEmployeeByCode(ctx, salary.EmployeeCode)
	if err != nil {
		return err
	}

	salary.EmployeeID = emp.ID
	salary.PayslipRef = uuid.NewString()
	salary.PayslipDate = time.Now()
	salary.Status = models.SalaryCurrent
	salary.PaidDate = nil
	salary.CalculateNetPay()

	res, err := database.SalaryCollection.InsertOne(ctx, salary)
	if err != nil {
		return err
	}
	salary.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// MarkPaid เปลี่ยนสถานะเป็น PAID พร้อมประทับวันที่จ่าย
func MarkPaid(id string) (*models.Salary, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	ctx := context.Background()

	now := time.Now()
	var salary models.Salary
	err = database.SalaryCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": models.SalaryPaid, "paidDate": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&salary)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &salary, nil
}

// MySalaries สลิปทั้งหมดของพนักงานคนเดียว ใหม่สุดก่อน
func MySalaries(code string) ([]models.Salary, error) {
	ctx := context.Background()
	emp, err := findEmployeeByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return find(ctx, bson.M{"employeeId": emp.ID})
}

// AllByMonth สลิปของทุกคนในเดือนที่กำหนด
func AllByMonth(year, month int) ([]models.Salary, error) {
	return find(context.Background(), bson.M{"year": year, "month": month})
}

func find(ctx context.Context, filter bson.M) ([]models.Salary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "year", Value: -1}, {Key: "month", Value: -1}})
	cursor, err := database.SalaryCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []models.Salary
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// RolloverMonthly ปิดรอบเงินเดือน เดือนก่อนหน้า CURRENT → PENDING
// เรียกจาก job ประจำเดือน รันซ้ำได้เพราะ filter เจาะจงสถานะ
func RolloverMonthly(now time.Time) (int64, error) {
	prev := now.AddDate(0, -1, 0)
	res, err := database.SalaryCollection.UpdateMany(context.Background(),
		bson.M{"year": prev.Year(), "month": int(prev.Month()), "status": models.SalaryCurrent},
		bson.M{"$set": bson.M{"status": models.SalaryPending}},
	)
	if err != nil {
		return 0, err
	}
	log.Printf("✅ Salary rollover: %d record(s) moved to PENDING for %04d-%02d",
		res.ModifiedCount, prev.Year(), int(prev.Month()))
	return res.ModifiedCount, nil
}
