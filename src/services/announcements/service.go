package announcements

import (
	"context"
	"errors"
	"time"

	"Backend-VentureHR/src/database"
	"Backend-VentureHR/src/models"
	"Backend-VentureHR/src/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

var ErrNotFound = errors.New("announcement not found")

const cacheKey = "announcements:all"
const cacheTTL = 5 * time.Minute

// Create สร้างประกาศใหม่โดย HR
func Create(a *models.Announcement, hrEmail string) error {
	if err := validate.Struct(a); err != nil {
		return err
	}

	a.CreatedBy = hrEmail
	a.CreatedAt = time.Now()

	res, err := database.AnnouncementCollection.InsertOne(context.Background(), a)
	if err != nil {
		return err
	}
	a.ID = res.InsertedID.(primitive.ObjectID)

	utils.CacheDelete(cacheKey)
	return nil
}

// All ดึงประกาศทั้งหมด ใหม่สุดก่อน มี cache ใน Redis
func All() ([]models.Announcement, error) {
	var cached []models.Announcement
	if ok, _ := utils.CacheGet(cacheKey, &cached); ok {
		return cached, nil
	}

	ctx := context.Background()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := database.AnnouncementCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []models.Announcement
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	_ = utils.CacheSet(cacheKey, result, cacheTTL)
	return result, nil
}

// Delete ลบประกาศตาม id
func Delete(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := database.AnnouncementCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	utils.CacheDelete(cacheKey)
	return nil
}
