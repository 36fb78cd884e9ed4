package memory

import (
	"context"
	"testing"
	"time"

	"medical-appointment-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRepository_FindByUserEmailNewestFirst(t *testing.T) {
	repo := NewRecordRepository()
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &entity.Record{UserEmail: "u@example.com", FileName: "old.pdf", FileType: "application/pdf", UploadedAt: base}))
	require.NoError(t, repo.Create(ctx, &entity.Record{UserEmail: "u@example.com", FileName: "new.pdf", FileType: "application/pdf", UploadedAt: base.AddDate(0, 1, 0)}))
	require.NoError(t, repo.Create(ctx, &entity.Record{UserEmail: "x@example.com", FileName: "other.pdf", FileType: "application/pdf"}))

	records, err := repo.FindByUserEmail(ctx, "u@example.com")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "new.pdf", records[0].FileName)
	assert.Equal(t, "old.pdf", records[1].FileName)
}

func TestRecordRepository_CreateDefaultsUploadedAt(t *testing.T) {
	repo := NewRecordRepository()
	rec := &entity.Record{UserEmail: "u@example.com", FileName: "scan.png", FileType: "image/png"}

	require.NoError(t, repo.Create(context.Background(), rec))
	assert.False(t, rec.UploadedAt.IsZero())
}
