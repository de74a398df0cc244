package model

import (
	"fmt"
	"strings"
)

// SkipReason tells why a subject is absent from the assignment list
type SkipReason string

const (
	NoProfessor     SkipReason = "NO_PROFESSOR"
	NoAvailableSlot SkipReason = "NO_AVAILABLE_SLOT"
	NoAvailableRoom SkipReason = "NO_AVAILABLE_ROOM"
)

// SkipReport collects the codes of the subjects that could not be placed, one bucket per reason
type SkipReport struct {
	NoProfessor     []string `json:"no_professor"`
	NoAvailableSlot []string `json:"no_available_slot"`
	NoAvailableRoom []string `json:"no_available_room"`
}

type Result struct {
	Assignments []Assignment `json:"assignments"` // Sorted by identifier
	Skipped     SkipReport   `json:"skipped"`
}

func newSkipReport() SkipReport {
	return SkipReport{
		NoProfessor:     []string{},
		NoAvailableSlot: []string{},
		NoAvailableRoom: []string{},
	}
}

func (report *SkipReport) add(reason SkipReason, subject string) {
	switch reason {
	case NoProfessor:
		report.NoProfessor = append(report.NoProfessor, subject)
	case NoAvailableSlot:
		report.NoAvailableSlot = append(report.NoAvailableSlot, subject)
	case NoAvailableRoom:
		report.NoAvailableRoom = append(report.NoAvailableRoom, subject)
	}
}

// Total returns the number of skipped subjects
func (report SkipReport) Total() int {
	return len(report.NoProfessor) + len(report.NoAvailableSlot) + len(report.NoAvailableRoom)
}

// Summary describes the run in one line, e.g. "Scheduled 3 subject(s); Skipped: 1 without professor."
func (result Result) Summary() string {
	parts := []string{fmt.Sprintf("Scheduled %d subject(s)", len(result.Assignments))}

	skipped := make([]string, 0, 3)
	if count := len(result.Skipped.NoProfessor); count > 0 {
		skipped = append(skipped, fmt.Sprintf("%d without professor", count))
	}
	if count := len(result.Skipped.NoAvailableSlot); count > 0 {
		skipped = append(skipped, fmt.Sprintf("%d outside working hours", count))
	}
	if count := len(result.Skipped.NoAvailableRoom); count > 0 {
		skipped = append(skipped, fmt.Sprintf("%d without available room", count))
	}
	if len(skipped) > 0 {
		parts = append(parts, "Skipped: "+strings.Join(skipped, ", "))
	}

	return strings.Join(parts, "; ") + "."
}
