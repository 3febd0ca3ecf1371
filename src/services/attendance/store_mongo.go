package attendance

import (
	"context"
	"fmt"
	"time"

	DB "Backend-VentureHR/src/database"
	"Backend-VentureHR/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists attendance records in the attendances collection.
// Duplicate-record detection rides on the uniq_employee_date index created
// by database.EnsureIndexes.
type MongoStore struct{}

func NewMongoStore() MongoStore { return MongoStore{} }

func (MongoStore) Insert(ctx context.Context, rec models.Attendance) (models.Attendance, error) {
	res, err := DB.AttendanceCollection.InsertOne(ctx, rec)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Attendance{}, ErrDuplicateRecord
		}
		return models.Attendance{}, err
	}
	rec.ID = res.InsertedID.(primitive.ObjectID)
	return rec, nil
}

func (MongoStore) FindByEmployeeAndDate(ctx context.Context, employeeID primitive.ObjectID, date string) (*models.Attendance, error) {
	var rec models.Attendance
	err := DB.AttendanceCollection.FindOne(ctx, bson.M{"employeeId": employeeID, "date": date}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (MongoStore) CompleteCheckout(ctx context.Context, employeeID primitive.ObjectID, date string, checkOut time.Time, status models.AttendanceStatus) (bool, error) {
	res, err := DB.AttendanceCollection.UpdateOne(ctx,
		bson.M{"employeeId": employeeID, "date": date, "checkOutTime": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"checkOutTime": checkOut, "status": status}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (MongoStore) ClosePending(ctx context.Context, employeeID primitive.ObjectID, date string, status models.AttendanceStatus) (bool, error) {
	res, err := DB.AttendanceCollection.UpdateOne(ctx,
		bson.M{
			"employeeId":   employeeID,
			"date":         date,
			"status":       models.StatusPending,
			"checkOutTime": bson.M{"$exists": false},
		},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (MongoStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Attendance, error) {
	var rec models.Attendance
	err := DB.AttendanceCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (MongoStore) FindByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]models.Attendance, error) {
	return findRecords(ctx, bson.M{"employeeId": employeeID})
}

func (MongoStore) FindByEmployeeAndMonth(ctx context.Context, employeeID primitive.ObjectID, year, month int) ([]models.Attendance, error) {
	from, to := monthRange(year, month)
	return findRecords(ctx, bson.M{
		"employeeId": employeeID,
		"date":       bson.M{"$gte": from, "$lt": to},
	})
}

func (MongoStore) FindByMonth(ctx context.Context, year, month int) ([]models.Attendance, error) {
	from, to := monthRange(year, month)
	return findRecords(ctx, bson.M{"date": bson.M{"$gte": from, "$lt": to}})
}

func (MongoStore) FindAll(ctx context.Context) ([]models.Attendance, error) {
	return findRecords(ctx, bson.M{})
}

func (MongoStore) Update(ctx context.Context, rec models.Attendance) error {
	res, err := DB.AttendanceCollection.ReplaceOne(ctx, bson.M{"_id": rec.ID}, rec)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (MongoStore) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := DB.AttendanceCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func findRecords(ctx context.Context, filter bson.M) ([]models.Attendance, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := DB.AttendanceCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.Attendance
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// monthRange returns [first day of month, first day of next month) as date
// strings, matching the indexed date key format.
func monthRange(year, month int) (string, string) {
	from := fmt.Sprintf("%04d-%02d-01", year, month)
	ny, nm := year, month+1
	if nm > 12 {
		ny, nm = year+1, 1
	}
	return from, fmt.Sprintf("%04d-%02d-01", ny, nm)
}

// MongoDirectory resolves employees from the employees collection.
type MongoDirectory struct{}

func NewMongoDirectory() MongoDirectory { return MongoDirectory{} }

func (MongoDirectory) FindByCode(ctx context.Context, code string) (*models.Employee, error) {
	return findEmployee(ctx, bson.M{"code": code})
}

func (MongoDirectory) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	return findEmployee(ctx, bson.M{"userEmail": email})
}

func (MongoDirectory) ListAll(ctx context.Context) ([]models.Employee, error) {
	cursor, err := DB.EmployeeCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func findEmployee(ctx context.Context, filter bson.M) (*models.Employee, error) {
	var emp models.Employee
	err := DB.EmployeeCollection.FindOne(ctx, filter).Decode(&emp)
	if err == mongo.ErrNoDocuments {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}
