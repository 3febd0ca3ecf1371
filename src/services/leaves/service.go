package leaves

import (
	"context"
	"errors"
	"fmt"
	"time"

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
	ErrNotFound      = errors.New("leave request not found")
	ErrNotOwner      = errors.New("you can only modify your own leave")
	ErrNotPending    = errors.New("only pending leaves can be modified")
	ErrTooManyDays   = fmt.Errorf("leave cannot be more than %d days", models.MaxLeaveDays)
	ErrInvalidPeriod = errors.New("end date is before start date")
)

// countDays นับจำนวนวันลาแบบรวมวันแรกและวันสุดท้าย
func countDays(start, end string) (int, error) {
	s, err := time.Parse(models.AttendanceDateLayout, start)
	if err != nil {
		return 0, err
	}
	e, err := time.Parse(models.AttendanceDateLayout, end)
	if err != nil {
		return 0, err
	}
	days := int(e.Sub(s).Hours()/24) + 1
	if days < 1 {
		return 0, ErrInvalidPeriod
	}
	return days, nil
}

// Apply ยื่นคำขอลา ไม่เกิน 3 วันต่อคำขอ
func Apply(emp *models.Employee, req *models.LeaveRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	days, err := countDays(req.StartDate, req.EndDate)
	if err != nil {
		return err
	}
	if days > models.MaxLeaveDays {
		return ErrTooManyDays
	}

	req.EmployeeID = emp.ID
	req.EmployeeCode = emp.Code
	req.Days = days
	req.Status = models.LeavePending
	req.AppliedOn = time.Now()
	req.ApprovedBy = ""
	req.ApprovedOn = nil

	res, err := database.LeaveCollection.InsertOne(context.Background(), req)
	if err != nil {
		return err
	}
	req.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// MyLeaves ดึงคำขอลาของพนักงานคนเดียว ล่าสุดก่อน
func MyLeaves(employeeID primitive.ObjectID) ([]models.LeaveRequest, error) {
	return find(bson.M{"employeeId": employeeID})
}

// All ดึงคำขอลาทั้งหมดสำหรับ HR
func All() ([]models.LeaveRequest, error) {
	return find(bson.M{})
}

func find(filter bson.M) ([]models.LeaveRequest, error) {
	ctx := context.Background()
	opts := options.Find().SetSort(bson.D{{Key: "appliedOn", Value: -1}})
	cursor, err := database.LeaveCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []models.LeaveRequest
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func getByID(id string) (*models.LeaveRequest, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var leave models.LeaveRequest
	err = database.LeaveCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&leave)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

// Edit แก้ไขคำขอของตัวเอง ทำได้เฉพาะตอนยังเป็น PENDING
func Edit(id string, employeeID primitive.ObjectID, updated *models.LeaveRequest) (*models.LeaveRequest, error) {
	leave, err := getByID(id)
	if err != nil {
		return nil, err
	}
	if leave.EmployeeID != employeeID {
		return nil, ErrNotOwner
	}
	if leave.Status != models.LeavePending {
		return nil, ErrNotPending
	}
	if err := validate.Struct(updated); err != nil {
		return nil, err
	}

	days, err := countDays(updated.StartDate, updated.EndDate)
	if err != nil {
		return nil, err
	}
	if days > models.MaxLeaveDays {
		return nil, ErrTooManyDays
	}

	update := bson.M{"$set": bson.M{
		"leaveType": updated.LeaveType,
		"startDate": updated.StartDate,
		"endDate":   updated.EndDate,
		"days":      days,
		"reason":    updated.Reason,
	}}
	_, err = database.LeaveCollection.UpdateOne(context.Background(), bson.M{"_id": leave.ID}, update)
	if err != nil {
		return nil, err
	}

	leave.LeaveType = updated.LeaveType
	leave.StartDate = updated.StartDate
	leave.EndDate = updated.EndDate
	leave.Days = days
	leave.Reason = updated.Reason
	return leave, nil
}

// Delete ลบคำขอของตัวเอง ทำได้เฉพาะตอนยังเป็น PENDING
func Delete(id string, employeeID primitive.ObjectID) error {
	leave, err := getByID(id)
	if err != nil {
		return err
	}
	if leave.EmployeeID != employeeID {
		return ErrNotOwner
	}
	if leave.Status != models.LeavePending {
		return ErrNotPending
	}

	_, err = database.LeaveCollection.DeleteOne(context.Background(), bson.M{"_id": leave.ID})
	return err
}

// UpdateStatus สำหรับ HR อนุมัติหรือปฏิเสธคำขอที่ยังเป็น PENDING
func UpdateStatus(id string, status models.LeaveStatus, hrEmail string) (*models.LeaveRequest, error) {
	if status != models.LeaveApproved && status != models.LeaveRejected {
		return nil, fmt.Errorf("invalid leave status %q", status)
	}

	leave, err := getByID(id)
	if err != nil {
		return nil, err
	}
	if leave.Status != models.LeavePending {
		return nil, ErrNotPending
	}

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"status":     status,
		"approvedBy": hrEmail,
		"approvedOn": now,
	}}
	_, err = database.LeaveCollection.UpdateOne(context.Background(), bson.M{"_id": leave.ID}, update)
	if err != nil {
		return nil, err
	}

	leave.Status = status
	leave.ApprovedBy = hrEmail
	leave.ApprovedOn = &now
	return leave, nil
}
