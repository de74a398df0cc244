package model

type roomIndexImplementation struct {
	types   []string          // Format types in insertion order
	rooms   map[string][]Room // Rooms per format type
	numbers map[string]bool   // Indexed room numbers
}

func (index *roomIndexImplementation) Types() []string {
	return index.types
}

func (index *roomIndexImplementation) Rooms(format string) []Room {
	return index.rooms[format]
}

func (index *roomIndexImplementation) All() []Room {
	all := make([]Room, 0, len(index.numbers))
	for _, format := range index.types {
		all = append(all, index.rooms[format]...)
	}
	return all
}

func (index *roomIndexImplementation) Contains(number string) bool {
	return index.numbers[number]
}
