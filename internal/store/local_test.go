package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"college-portal-client/internal/model"
)

func newTestLocal(t *testing.T) *Local {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.RequestRecord{}, &model.StatusLog{}))
	return NewLocal(db)
}

func TestLocal_CreateAssignsIDStatusAndTimestamp(t *testing.T) {
	local := newTestLocal(t)
	ctx := context.Background()

	created, err := local.Create(ctx, &model.OutingPayload{
		StudentID:        42,
		OutingDate:       "2024-06-10",
		ReturnDate:       "2024-06-12",
		Reason:           "home visit",
		EmergencyContact: "+911111111111",
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "pending", created.Status)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, model.KindOuting, created.Kind)
	assert.Equal(t, "home visit", created.Reason)
	assert.Equal(t, "2024-06-10", created.OutingDate.Format("2006-01-02"))
}

func TestLocal_CreateLogsInitialStatus(t *testing.T) {
	local := newTestLocal(t)
	ctx := context.Background()

	created, err := local.Create(ctx, &model.CCDPayload{
		StudentID: 42, Category: "coffee", Item: "latte", Quantity: 1, Size: "regular", ContactNumber: "+91",
	})
	require.NoError(t, err)

	history, err := local.StatusHistory(ctx, model.KindCCD, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "pending", history[0].Status)
	assert.Equal(t, "CCD Order submitted", history[0].Notes)
}

func TestLocal_ListIsScopedAndNewestFirst(t *testing.T) {
	local := newTestLocal(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := local.Create(ctx, &model.MessPayload{
			StudentID: 42, MealType: "lunch", MealDate: "2024-06-12", Quantity: 1,
		})
		require.NoError(t, err)
	}
	_, err := local.Create(ctx, &model.MessPayload{
		StudentID: 99, MealType: "dinner", MealDate: "2024-06-12", Quantity: 1,
	})
	require.NoError(t, err)

	mine, err := local.List(ctx, model.KindMess, 42)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	for i := 0; i < len(mine)-1; i++ {
		assert.False(t, mine[i].CreatedAt.Before(mine[i+1].CreatedAt.Time))
	}

	// Kind scoping: no outings were created.
	outings, err := local.List(ctx, model.KindOuting, 42)
	require.NoError(t, err)
	assert.Empty(t, outings)
}

func TestLocal_StatsCountsPendingPerKind(t *testing.T) {
	local := newTestLocal(t)
	ctx := context.Background()

	_, err := local.Create(ctx, &model.XeroxPayload{
		StudentID: 42, ServiceType: "printout", Pages: 3, DeliveryLocation: "hostel", ContactNumber: "+91",
	})
	require.NoError(t, err)
	approved, err := local.Create(ctx, &model.XeroxPayload{
		StudentID: 42, ServiceType: "binding", Pages: 50, DeliveryLocation: "hostel", ContactNumber: "+91",
	})
	require.NoError(t, err)
	require.NoError(t, local.UpdateStatus(ctx, model.KindXerox, approved.ID, "completed", "shop", ""))

	stats, err := local.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.PendingXerox)
	assert.Equal(t, int64(0), stats.PendingOutings)
}

func TestLocal_UpdateStatusAppendsToHistory(t *testing.T) {
	local := newTestLocal(t)
	ctx := context.Background()

	created, err := local.Create(ctx, &model.StationaryPayload{
		StudentID: 42, Category: "notebooks", Item: "A4 ruled", Quantity: 2, DeliveryOption: "pickup", ContactNumber: "+91",
	})
	require.NoError(t, err)

	require.NoError(t, local.UpdateStatus(ctx, model.KindStationary, created.ID, "ready", "shop", "ready for pickup"))

	history, err := local.StatusHistory(ctx, model.KindStationary, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "ready", history[0].Status)

	listed, err := local.List(ctx, model.KindStationary, 42)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "ready", listed[0].Status)

	// Unknown request ids are an error, not a silent no-op.
	assert.Error(t, local.UpdateStatus(ctx, model.KindStationary, 999, "ready", "", ""))
}
