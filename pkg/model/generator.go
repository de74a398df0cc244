package model

import (
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"
)

var generatedFormats = []string{"Lecture", "Seminar", "Lab", ""}

// GenerateModelInput builds a synthetic snapshot. The same random source state always yields the same snapshot.
// About one subject in twenty references a professor that does not exist.
func GenerateModelInput(random *rand.Rand, professors, rooms, subjects int) ModelInput {
	modelInput := ModelInput{
		Professors: lo.Times(professors, func(i int) Professor {
			start := NewClockTime(7+random.IntN(6), 30*random.IntN(2))
			end := start + ClockTime(SlotLength*(1+random.IntN(5)))
			return Professor{
				Id:          fmt.Sprintf("P%03d", i+1),
				Name:        fmt.Sprintf("Professor %d", i+1),
				OfficeStart: start,
				OfficeEnd:   end,
			}
		}),
		Rooms: lo.Times(rooms, func(i int) Room {
			return Room{
				Number:   fmt.Sprintf("R%03d", i+1),
				Capacity: 10 * (1 + random.IntN(12)),
				Format:   generatedFormats[random.IntN(len(generatedFormats))],
			}
		}),
	}

	modelInput.Subjects = lo.Times(subjects, func(i int) Subject {
		professor := "PX"
		if professors > 0 && random.Float32() >= 0.05 {
			professor = modelInput.Professors[random.IntN(professors)].Id
		}
		return Subject{
			Code:      fmt.Sprintf("SBJ%03d", i+1),
			Name:      fmt.Sprintf("Subject %d", i+1),
			Semester:  1 + random.IntN(8),
			Format:    generatedFormats[random.IntN(len(generatedFormats))],
			Capacity:  5 * (1 + random.IntN(20)),
			Professor: professor,
		}
	})

	return modelInput
}
