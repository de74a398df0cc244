package model

// SlotLength is the duration, in minutes, of every bookable block
const SlotLength = 60

// Bookable days in scheduling order
var weekdays = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Slot is a bookable one-hour block identified by its day and start time ("HH:MM")
type Slot struct {
	Day  string
	Time string
}

// GenerateAvailability returns the professor's bookable slots in day-major, time-ascending order.
// Blocks are half-open [t, t+1h) and must end no later than the office-hours end, so windows
// shorter than an hour (or reversed ones) yield no slots.
func GenerateAvailability(professor Professor) []Slot {
	start, end := professor.OfficeStart, professor.OfficeEnd
	if start >= end {
		return []Slot{}
	}

	blocksPerDay := int(end-start) / SlotLength
	slots := make([]Slot, 0, blocksPerDay*len(weekdays))
	for _, day := range weekdays {
		for current := start; current+SlotLength <= end; current += SlotLength {
			slots = append(slots, Slot{Day: day, Time: current.String()})
		}
	}
	return slots
}
