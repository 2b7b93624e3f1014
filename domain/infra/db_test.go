package infra

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/brian-dev01/WDD-Server/domain/model"
)

func newTestDataBase(t *testing.T) *DataBase {
	t.Helper()
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))

	db, err := NewDataBase()
	assert.NoError(t, err)
	return db
}

func TestDataBase_SaveInquiry(t *testing.T) {
	db := newTestDataBase(t)

	inquiry := &model.Inquiry{
		ID:        uuid.NewString(),
		Name:      "A",
		Email:     "a@x.com",
		Message:   "hi",
		EventDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UserID:    "user_1",
	}
	assert.NoError(t, db.SaveInquiry(inquiry))
	assert.False(t, inquiry.CreatedAt.IsZero())

	inquiries, err := db.GetInquiries()
	assert.NoError(t, err)
	assert.Len(t, inquiries, 1)
	assert.Equal(t, inquiry.ID, inquiries[0].ID)
	assert.Equal(t, "A", inquiries[0].Name)
	assert.Equal(t, "a@x.com", inquiries[0].Email)
	assert.Equal(t, "hi", inquiries[0].Message)
	assert.Equal(t, "user_1", inquiries[0].UserID)
	assert.True(t, inquiries[0].EventDate.Equal(inquiry.EventDate))
}

func TestDataBase_GetInquiries_NewestFirst(t *testing.T) {
	db := newTestDataBase(t)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		inquiry := &model.Inquiry{
			ID:        uuid.NewString(),
			Name:      "A",
			Email:     "a@x.com",
			Message:   "hi",
			EventDate: base,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		assert.NoError(t, db.SaveInquiry(inquiry))
		ids = append(ids, inquiry.ID)
	}

	inquiries, err := db.GetInquiries()
	assert.NoError(t, err)
	assert.Len(t, inquiries, 3)
	// 最後に作成したものが先頭
	assert.Equal(t, ids[2], inquiries[0].ID)
	assert.Equal(t, ids[1], inquiries[1].ID)
	assert.Equal(t, ids[0], inquiries[2].ID)
}

func TestDataBase_DeleteInquiry(t *testing.T) {
	db := newTestDataBase(t)

	keep := &model.Inquiry{ID: uuid.NewString(), Name: "A", Email: "a@x.com", Message: "keep", EventDate: time.Now()}
	target := &model.Inquiry{ID: uuid.NewString(), Name: "B", Email: "b@x.com", Message: "target", EventDate: time.Now()}
	assert.NoError(t, db.SaveInquiry(keep))
	assert.NoError(t, db.SaveInquiry(target))

	assert.NoError(t, db.DeleteInquiry(target.ID))

	inquiries, err := db.GetInquiries()
	assert.NoError(t, err)
	assert.Len(t, inquiries, 1)
	assert.Equal(t, keep.ID, inquiries[0].ID)
}

func TestDataBase_DeleteInquiry_NotFound(t *testing.T) {
	db := newTestDataBase(t)

	keep := &model.Inquiry{ID: uuid.NewString(), Name: "A", Email: "a@x.com", Message: "keep", EventDate: time.Now()}
	assert.NoError(t, db.SaveInquiry(keep))

	assert.Error(t, db.DeleteInquiry(uuid.NewString()))

	// 他のレコードは影響を受けない
	inquiries, err := db.GetInquiries()
	assert.NoError(t, err)
	assert.Len(t, inquiries, 1)
}
