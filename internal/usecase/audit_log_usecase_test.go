package usecase

import (
	"context"
	"testing"

	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/repository/memory"
	"medical-appointment-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogUsecase_ListActivityOnlyOwnEntries(t *testing.T) {
	repo := memory.NewAuditLogRepository()
	audit := service.NewAuditService(quietLogger(), repo)
	ctx := context.Background()

	audit.Record(ctx, "ana@example.com", entity.AuditActionUserSignup, nil)
	audit.Record(ctx, "bob@example.com", entity.AuditActionUserSignup, nil)
	audit.Record(ctx, "ana@example.com", entity.AuditActionUserLogin, entity.JSON{"token_issued": true})

	uc := NewAuditLogUsecase(quietLogger(), repo)
	result, err := uc.ListActivity(ctx, "ana@example.com")
	require.NoError(t, err)
	require.Equal(t, 2, result.Total)
	assert.Equal(t, entity.AuditActionUserLogin, result.Logs[0].Action)
	assert.Equal(t, entity.AuditActionUserSignup, result.Logs[1].Action)

	_, err = uc.ListActivity(ctx, "")
	assert.ErrorIs(t, err, ErrUserEmailRequired)
}
