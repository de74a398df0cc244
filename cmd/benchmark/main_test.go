package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/limaJavier/timetable-engine/pkg/model"
)

func TestGetTests(t *testing.T) {
	tests := getTests(2)

	assert.Len(t, tests, 2*len(sizes))
	assert.Equal(t, TestMetadata{Name: "p5-r5-s25#1", Seed: 1, Professors: 5, Rooms: 5, Subjects: 25}, tests[0])
	assert.Equal(t, TestMetadata{Name: "p5-r5-s25#2", Seed: 2, Professors: 5, Rooms: 5, Subjects: 25}, tests[1])
}

func TestMeasure(t *testing.T) {
	//** Arrange
	test := getTests(1)[1]

	//** Act
	result := measure(test)

	//** Assert
	assert.Equal(t, assigned, result.Result)
	assert.Positive(t, result.Assigned)
	assert.Equal(t, test.Subjects, result.Assigned+result.Skipped.Total())
}

func TestToRecord(t *testing.T) {
	result := BenchmarkResult{
		Test:     TestMetadata{Name: "p5-r5-s25#1", Seed: 1, Professors: 5, Rooms: 5, Subjects: 25},
		Duration: 1500 * time.Microsecond,
		Memory:   2.5,
		Assigned: 20,
		Skipped: model.SkipReport{
			NoProfessor:     []string{"SBJ001"},
			NoAvailableSlot: []string{"SBJ002", "SBJ003"},
			NoAvailableRoom: []string{"SBJ004", "SBJ005"},
		},
		Result: assigned,
	}

	assert.Equal(t, []string{"p5-r5-s25#1", "1", "5", "5", "25", "20", "1", "2", "2", "1.500", "2.5", "assigned"}, toRecord(result))
}
