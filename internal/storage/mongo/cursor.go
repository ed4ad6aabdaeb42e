package mongo

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pribylovaa/go-photo-feed/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// encodeCursor кодирует пару (createdAt, id) в непрозрачный токен для клиента.
func encodeCursor(t time.Time, id string) string {
	raw := strconv.FormatInt(t.UTC().UnixNano(), 10) + "|" + id

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodeCursor декодирует токен обратно в пару ключей.
func decodeCursor(token string) (time.Time, string, error) {
	res, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return time.Time{}, "", err
	}

	parts := strings.SplitN(string(res), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("bad parts")
	}

	nanos, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, "", err
	}

	return time.Unix(0, nanos).UTC(), parts[1], nil
}

// limitOrDefault приводит запрошенный размер страницы к [1, Max] с Default для 0.
func limitOrDefault(cfg *config.Config, pageSize int32) int64 {
	lim := pageSize
	if lim <= 0 {
		lim = cfg.Limits.Default
	}

	if lim > cfg.Limits.Max {
		lim = cfg.Limits.Max
	}

	return int64(lim)
}

// afterCursor дописывает в filter условие «строго после курсора»
// для сортировки (timeKey, idKey) по убыванию (desc) или возрастанию.
func afterCursor(filter bson.D, token, timeKey, idKey string, desc bool) (bson.D, error) {
	if strings.TrimSpace(token) == "" {
		return filter, nil
	}

	t, id, err := decodeCursor(token)
	if err != nil {
		return nil, err
	}

	cmp := "$gt"
	if desc {
		cmp = "$lt"
	}

	return append(filter, bson.E{Key: "$or", Value: bson.A{
		bson.D{{Key: timeKey, Value: bson.D{{Key: cmp, Value: t}}}},
		bson.D{
			{Key: timeKey, Value: t},
			{Key: idKey, Value: bson.D{{Key: cmp, Value: id}}},
		},
	}}), nil
}

// decodeAll вычитывает курсор целиком и возвращает next-токен,
// если страница заполнена (limit документов).
func decodeAll[T any](ctx context.Context, cur *mongodriver.Cursor, limit int64, key func(*T) (time.Time, string)) ([]T, string, error) {
	defer cur.Close(ctx)

	items := make([]T, 0, limit)
	for cur.Next(ctx) {
		var item T
		if err := cur.Decode(&item); err != nil {
			return nil, "", fmt.Errorf("decode: %w", err)
		}

		items = append(items, item)
	}

	if err := cur.Err(); err != nil {
		return nil, "", fmt.Errorf("cursor: %w", err)
	}

	var next string
	if n := len(items); n > 0 && int64(n) == limit {
		t, id := key(&items[n-1])
		next = encodeCursor(t, id)
	}

	return items, next, nil
}
