package usecase

import (
	"context"
	"testing"
	"time"

	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordUsecase_ListRecords(t *testing.T) {
	repo := memory.NewRecordRepository()
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &entity.Record{UserEmail: "ana@example.com", FileName: "old.pdf", FileType: "pdf", UploadedAt: base}))
	require.NoError(t, repo.Create(ctx, &entity.Record{UserEmail: "ana@example.com", FileName: "new.png", FileType: "png", UploadedAt: base.Add(time.Hour)}))

	uc := NewRecordUsecase(quietLogger(), repo)

	records, err := uc.ListRecords(ctx, "ana@example.com")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "new.png", records[0].FileName)

	none, err := uc.ListRecords(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = uc.ListRecords(ctx, "")
	assert.ErrorIs(t, err, ErrUserEmailRequired)
}
