package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DBName = "VentureHrDB"

var (
	client     *mongo.Client
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	UserCollection         *mongo.Collection
	EmployeeCollection     *mongo.Collection
	AttendanceCollection   *mongo.Collection
	LeaveCollection        *mongo.Collection
	SalaryCollection       *mongo.Collection
	AnnouncementCollection *mongo.Collection
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB() error {

	// โหลดค่า Environment Variables จากไฟล์ .env
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() { // ✅ Run only once
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		db := client.Database(DBName)
		UserCollection = db.Collection("users")
		EmployeeCollection = db.Collection("employees")
		AttendanceCollection = db.Collection("attendances")
		LeaveCollection = db.Collection("leaves")
		SalaryCollection = db.Collection("salaries")
		AnnouncementCollection = db.Collection("announcements")

		connectErr = EnsureIndexes(context.TODO())
		if connectErr != nil {
			log.Fatal("❌ Failed to create indexes:", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// EnsureIndexes สร้าง unique index ที่ระบบพึ่งพา
// การกันเช็คอินซ้ำในวันเดียวกันอาศัย unique index (employeeId, date)
// ไม่ใช่ lock ในแอป สอง request พร้อมกันจะ insert สำเร็จได้แค่ตัวเดียว
func EnsureIndexes(ctx context.Context) error {
	_, err := AttendanceCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "employeeId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_employee_date"),
	})
	if err != nil {
		return err
	}

	_, err = UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_user_email"),
	})
	if err != nil {
		return err
	}

	_, err = EmployeeCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_employee_code"),
	})
	return err
}
