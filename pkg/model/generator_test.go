package model

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func generateInput(professors, rooms, subjects int) ModelInput {
	return GenerateModelInput(rand.New(rand.NewPCG(1, uint64(subjects))), professors, rooms, subjects)
}

func TestGenerateModelInput(t *testing.T) {
	t.Run("Same seed yields the same snapshot", func(t *testing.T) {
		assert.Equal(t, generateInput(5, 5, 20), generateInput(5, 5, 20))
	})

	t.Run("Shape", func(t *testing.T) {
		//** Act
		input := generateInput(7, 4, 50)

		//** Assert
		assert.Len(t, input.Professors, 7)
		assert.Len(t, input.Rooms, 4)
		assert.Len(t, input.Subjects, 50)
		assert.Empty(t, input.Previous)
		for _, professor := range input.Professors {
			assert.Less(t, int(professor.OfficeStart), int(professor.OfficeEnd))
			assert.NotEmpty(t, GenerateAvailability(professor))
		}
	})

	t.Run("Without professors every subject is orphaned", func(t *testing.T) {
		input := generateInput(0, 2, 10)
		for _, subject := range input.Subjects {
			assert.Equal(t, "PX", subject.Professor)
		}
	})
}
