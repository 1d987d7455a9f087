package audit_test

import (
	"testing"
	"time"

	"dronedispatch/internal/core/domain/model/audit"
	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBatteryAudit(t *testing.T) {
	t.Run("should create snapshot with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		droneID := kernel.NewUUID()

		a, err := audit.NewBatteryAudit(id, droneID, "DRN-001", 42)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.True(t, a.DroneID().IsEqual(droneID))
		assert.Equal(t, "DRN-001", a.SerialNumber())
		assert.Equal(t, 42, a.BatteryCapacity())
		assert.WithinDuration(t, time.Now().UTC(), a.CreatedAt(), time.Second)
	})

	t.Run("should accept the percentage boundaries", func(t *testing.T) {
		for _, battery := range []int{0, 100} {
			a, err := audit.NewBatteryAudit(kernel.NewUUID(), kernel.NewUUID(), "DRN-001", battery)

			require.NoError(t, err)
			assert.Equal(t, battery, a.BatteryCapacity())
		}
	})

	t.Run("should reject battery outside percentage range", func(t *testing.T) {
		for _, battery := range []int{-1, 101} {
			a, err := audit.NewBatteryAudit(kernel.NewUUID(), kernel.NewUUID(), "DRN-001", battery)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Nil(t, a)
		}
	})

	t.Run("should reject empty serial number", func(t *testing.T) {
		a, err := audit.NewBatteryAudit(kernel.NewUUID(), kernel.NewUUID(), "", 50)

		require.Error(t, err)
		assert.Nil(t, a)
	})
}

func TestRestoreBatteryAudit(t *testing.T) {
	t.Run("should preserve the persisted timestamp", func(t *testing.T) {
		createdAt := time.Now().UTC().Add(-time.Hour)

		a, err := audit.RestoreBatteryAudit(kernel.NewUUID(), kernel.NewUUID(), "DRN-001", 42, createdAt)

		require.NoError(t, err)
		assert.Equal(t, createdAt, a.CreatedAt())
	})
}
