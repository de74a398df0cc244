package model

import (
	"github.com/samber/lo"
)

// booking marks a professor or a room as busy at a slot
type booking struct {
	owner string
	slot  Slot
}

// resolveSlot keeps the previous slot when the professor still offers it and has not used it in this run,
// otherwise it falls back to the first unused slot of the professor's ordered availability
func resolveSlot(professor string, previous Slot, slots []Slot, lookup map[Slot]bool, used map[booking]bool) (Slot, bool) {
	if previous.Day != "" && previous.Time != "" && lookup[previous] && !used[booking{owner: professor, slot: previous}] {
		return previous, true
	}
	return lo.Find(slots, func(slot Slot) bool {
		return !used[booking{owner: professor, slot: slot}]
	})
}

// selectRoom picks a room for the subject at the slot, trying in order:
//  1. the previous room, if it is still indexed and free
//  2. for the subject's format first and then every other format in index order: the smallest free room
//     that meets the required capacity, or else the smallest free room of that format
//  3. the first free room of the whole index
//
// The chosen room is marked as used at the slot.
func selectRoom(subject Subject, slot Slot, previousRoom string, index RoomIndex, used map[booking]bool) (string, bool) {
	free := func(room Room) bool {
		return !used[booking{owner: room.Number, slot: slot}]
	}
	reserve := func(number string) (string, bool) {
		used[booking{owner: number, slot: slot}] = true
		return number, true
	}

	if previousRoom != "" && index.Contains(previousRoom) && !used[booking{owner: previousRoom, slot: slot}] {
		return reserve(previousRoom)
	}

	for _, format := range candidateFormats(subject.Format, index.Types()) {
		rooms := index.Rooms(format)
		if room, ok := lo.Find(rooms, func(room Room) bool { return room.Capacity >= subject.Capacity && free(room) }); ok {
			return reserve(room.Number)
		}
		if room, ok := lo.Find(rooms, free); ok {
			return reserve(room.Number)
		}
	}

	if room, ok := lo.Find(index.All(), free); ok {
		return reserve(room.Number)
	}
	return "", false
}

// candidateFormats puts the preferred format (when given) ahead of the indexed ones, keeping their order
func candidateFormats(preferred string, formats []string) []string {
	if preferred == "" {
		return formats
	}
	return append([]string{preferred}, lo.Without(formats, preferred)...)
}

func verify(assignments []Assignment, modelInput ModelInput) bool {
	//** Index snapshot
	professors := lo.KeyBy(modelInput.Professors, func(professor Professor) string { return professor.Id })
	subjects := lo.KeyBy(modelInput.Subjects, func(subject Subject) string { return subject.Code })
	rooms := lo.KeyBy(modelInput.Rooms, func(room Room) string { return room.Number })

	availability := make(map[string]map[Slot]bool)
	available := func(professor Professor, slot Slot) bool {
		if _, ok := availability[professor.Id]; !ok {
			availability[professor.Id] = lo.SliceToMap(GenerateAvailability(professor), func(slot Slot) (Slot, bool) { return slot, true })
		}
		return availability[professor.Id][slot]
	}

	professorAssistance := make(map[booking]bool)
	roomAssistance := make(map[booking]bool)
	identifiers := make(map[string]bool)
	scheduled := make(map[string]bool)

	for _, assignment := range assignments {
		slot := Slot{Day: assignment.Day, Time: assignment.Time}
		subject, subjectFound := subjects[assignment.Subject]
		professor, professorFound := professors[assignment.Professor]
		_, roomFound := rooms[assignment.Room]

		// Check that:
		// - Subject, professor and room exist
		// - Professor is the one linked to the subject
		// - Professor is available at the slot
		// - Identifier and subject appear only once
		// - Professor is not already teaching at the slot
		// - Room is not already taken at the slot
		if !subjectFound || !professorFound || !roomFound ||
			subject.Professor != professor.Id ||
			!available(professor, slot) ||
			identifiers[assignment.Id] ||
			scheduled[assignment.Subject] ||
			professorAssistance[booking{owner: professor.Id, slot: slot}] ||
			roomAssistance[booking{owner: assignment.Room, slot: slot}] {
			return false
		}

		identifiers[assignment.Id] = true
		scheduled[assignment.Subject] = true
		professorAssistance[booking{owner: professor.Id, slot: slot}] = true
		roomAssistance[booking{owner: assignment.Room, slot: slot}] = true
	}

	return true
}
