package summary

import (
	DB "Backend-Verdancy/src/database"
	"Backend-Verdancy/src/models"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetSummary - ดึงแถวสรุปการเช็คชื่อแบบแบ่งหน้า ค้นหาจาก username/email ได้
func GetSummary(params models.PaginationParams, width int) (*models.SummaryResponse, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		regex := bson.M{"$regex": params.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"username": regex},
			bson.M{"email": regex},
		}
	}

	total, err := DB.MemberCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(params.GetSortOrder()).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit))

	cursor, err := DB.MemberCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var all []models.Member
	if err := cursor.All(ctx, &all); err != nil {
		return nil, 0, err
	}

	return BuildSummary(all, width), total, nil
}

// BuildSummary แปลงสมาชิกเป็นแถวสรุป และเลือกโหมดแสดงผลตามความกว้างจอ
func BuildSummary(all []models.Member, width int) *models.SummaryResponse {
	rows := make([]models.SummaryRow, 0, len(all))
	for _, m := range all {
		rows = append(rows, models.NewSummaryRow(m))
	}
	return &models.SummaryResponse{
		Mode: models.SummaryMode(width),
		Rows: rows,
	}
}
