package model

import (
	"cmp"
	"slices"
)

// UnspecifiedFormat is the group key of rooms without a format tag
const UnspecifiedFormat = "Unspecified"

// RoomIndex groups rooms by format type so that candidate search is deterministic
type RoomIndex interface {
	// Returns the format types in insertion order
	Types() []string
	// Returns the rooms of a format type ordered by ascending capacity and then room number. The returned slice must not be modified
	Rooms(format string) []Room
	// Returns every room, group after group in insertion order
	All() []Room
	// Checks whether a room with the given number is indexed
	Contains(number string) bool
}

func NewRoomIndex(rooms []Room) RoomIndex {
	sorted := slices.Clone(rooms)
	slices.SortStableFunc(sorted, func(a, b Room) int {
		return cmp.Or(
			cmp.Compare(a.Format, b.Format),
			compareRooms(a, b),
		)
	})

	index := &roomIndexImplementation{
		rooms:   make(map[string][]Room),
		numbers: make(map[string]bool, len(rooms)),
	}
	for _, room := range sorted {
		format := room.Format
		if format == "" {
			format = UnspecifiedFormat
		}
		if _, ok := index.rooms[format]; !ok {
			index.types = append(index.types, format)
		}
		index.rooms[format] = append(index.rooms[format], room)
		index.numbers[room.Number] = true
	}

	// Untagged rooms share their group with rooms explicitly tagged as unspecified, so the group has to be re-sorted
	if unspecified, ok := index.rooms[UnspecifiedFormat]; ok {
		slices.SortStableFunc(unspecified, compareRooms)
	}

	return index
}

func compareRooms(a, b Room) int {
	return cmp.Or(
		cmp.Compare(a.Capacity, b.Capacity),
		cmp.Compare(a.Number, b.Number),
	)
}
