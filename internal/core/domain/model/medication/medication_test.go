package medication_test

import (
	"testing"

	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/core/domain/model/medication"
	"dronedispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreMedication(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should restore medication with valid parameters", func(t *testing.T) {
		m, err := medication.RestoreMedication(validID, "Paracetamol_500", 50, "PARA_500")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.ID().IsEqual(validID))
		assert.Equal(t, "Paracetamol_500", m.Name())
		assert.InDelta(t, 50.0, m.Weight(), 0.001)
		assert.Equal(t, "PARA_500", m.Code())
	})

	t.Run("should reject invalid name characters", func(t *testing.T) {
		testCases := []string{"Para cetamol", "Para#500", "Para!"}

		for _, name := range testCases {
			m, err := medication.RestoreMedication(validID, name, 50, "PARA_500")

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Nil(t, m)
		}
	})

	t.Run("should accept hyphen and underscore in name", func(t *testing.T) {
		m, err := medication.RestoreMedication(validID, "Insulin-Kit_2", 120, "INS_KIT_2")

		require.NoError(t, err)
		assert.Equal(t, "Insulin-Kit_2", m.Name())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		m, err := medication.RestoreMedication(validID, "", 50, "PARA_500")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, m)
	})

	t.Run("should reject invalid code characters", func(t *testing.T) {
		testCases := []string{"para_500", "PARA-500", "PARA 500"}

		for _, code := range testCases {
			m, err := medication.RestoreMedication(validID, "Paracetamol", 50, code)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Nil(t, m)
		}
	})

	t.Run("should reject non-positive weight", func(t *testing.T) {
		for _, weight := range []float64{0, -5} {
			m, err := medication.RestoreMedication(validID, "Paracetamol", weight, "PARA_500")

			require.Error(t, err)
			assert.Nil(t, m)
		}
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		m, err := medication.RestoreMedication(invalidID, "Paracetamol", 50, "PARA_500")

		require.Error(t, err)
		assert.Nil(t, m)
	})
}
