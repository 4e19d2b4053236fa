package members

import (
	DB "Backend-Verdancy/src/database"
	"Backend-Verdancy/src/models"
	"Backend-Verdancy/src/services/uploads"
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var validate = validator.New()

// ErrMemberNotFound ไม่พบสมาชิกตาม id ที่ระบุ
var ErrMemberNotFound = errors.New("member not found")

// ชั้นเข้าถึง store แยกเป็นตัวแปรเพื่อสลับใน test ได้ (แบบเดียวกับ roster)
var (
	findMembers = func(ctx context.Context, filter bson.M) ([]models.Member, error) {
		cursor, err := DB.MemberCollection.Find(ctx, filter)
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		members := []models.Member{}
		if err := cursor.All(ctx, &members); err != nil {
			return nil, err
		}
		return members, nil
	}
	insertMember = func(ctx context.Context, m models.Member) error {
		_, err := DB.MemberCollection.InsertOne(ctx, m)
		return err
	}
	removeMember = func(ctx context.Context, id primitive.ObjectID) (int64, error) {
		result, err := DB.MemberCollection.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return 0, err
		}
		return result.DeletedCount, nil
	}
)

// GetAllMembers - ดึงข้อมูลสมาชิกทั้งหมดเป็น Array
func GetAllMembers() ([]models.Member, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return findMembers(ctx, bson.M{})
}

// GetMemberByID - ดึงข้อมูลสมาชิกตาม ID
func GetMemberByID(id string) (*models.Member, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid member ID")
	}

	var member models.Member
	err = DB.MemberCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&member)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	return &member, nil
}

// CreateMember - สร้างสมาชิกใหม่ พร้อม encode รูปโปรไฟล์ (ไม่มีรูปใช้ placeholder)
// ไฟล์ดิบไม่ถูกเก็บลง store เก็บเฉพาะ encoding เท่านั้น
func CreateMember(req *models.CreateMemberRequest, file []byte) (*models.Member, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	picture, err := uploads.EncodeThumbnailOrPlaceholder(file)
	if err != nil {
		return nil, err
	}

	schedule := req.Schedule
	if schedule == nil {
		schedule = []string{}
	}

	member := models.Member{
		ID:             primitive.NewObjectID(),
		Username:       req.Username,
		Email:          req.Email,
		ProfilePicture: picture,
		Schedule:       schedule,
		Present:        0,
		CheckinDates:   []string{},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := insertMember(ctx, member); err != nil {
		return nil, err
	}

	log.Println("✅ Member created:", member.ID.Hex())
	return &member, nil
}

// UpdateMember - แก้ไขข้อมูลสมาชิกเฉพาะ field ที่ส่งมา
// ถ้าส่งรูปใหม่มาจะ encode ทับ profile_picture เดิม
func UpdateMember(id string, req *models.UpdateMemberRequest, file []byte) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid member ID")
	}

	if err := validate.Struct(req); err != nil {
		return err
	}

	set := bson.M{}
	if req.Username != nil {
		set["username"] = *req.Username
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Schedule != nil {
		set["schedule"] = req.Schedule
	}
	if len(file) > 0 {
		picture, err := uploads.EncodeThumbnail(file)
		if err != nil {
			return err
		}
		set["profile_picture"] = picture
	}
	if len(set) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.MemberCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrMemberNotFound
	}

	log.Println("✅ Member updated:", id)
	return nil
}

// DeleteMember - ลบสมาชิกถาวร ไม่มี soft-delete
func DeleteMember(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid member ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	deleted, err := removeMember(ctx, objID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrMemberNotFound
	}

	log.Println("✅ Member deleted:", id)
	return nil
}

// GetMembersBySchedule - ดึงสมาชิกที่มีวัน day อยู่ใน schedule
func GetMembersBySchedule(day string) ([]models.Member, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return findMembers(ctx, bson.M{"schedule": day})
}

// FilterBySchedule คัดสมาชิกที่มีวัน day อยู่ใน schedule จาก slice ที่มีอยู่แล้ว
func FilterBySchedule(members []models.Member, day string) []models.Member {
	out := []models.Member{}
	for _, m := range members {
		for _, d := range m.Schedule {
			if d == day {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// RankByUsername ค้นหาแบบสองชั้น: ชื่อตรงทั้งคำ (ไม่สนตัวพิมพ์) มาก่อน
// ตามด้วยชื่อที่มีคำค้นเป็น substring ต่อท้ายเป็นลำดับเดียว
func RankByUsername(members []models.Member, query string) []models.Member {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return members
	}

	exact := []models.Member{}
	partial := []models.Member{}
	for _, m := range members {
		name := strings.ToLower(m.Username)
		switch {
		case name == q:
			exact = append(exact, m)
		case strings.Contains(name, q):
			partial = append(partial, m)
		}
	}

	return append(exact, partial...)
}
