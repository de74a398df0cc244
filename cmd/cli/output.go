package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/limaJavier/timetable-engine/pkg/config"
	"github.com/limaJavier/timetable-engine/pkg/model"
)

var csvHeader = []string{"SCHEDULE_ID", "SUBJECT_CODE", "PROF_ID", "ROOM_NUMBER", "DAY", "TIME"}

func encode(result model.Result, format string) ([]byte, error) {
	switch format {
	case config.OutputJson:
		output, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(output, '\n'), nil
	case config.OutputCsv:
		return encodeCsv(result.Assignments)
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// encodeCsv writes one row per assignment, skipped subjects are only reported in the logs
func encodeCsv(assignments []model.Assignment) ([]byte, error) {
	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, assignment := range assignments {
		record := []string{
			assignment.Id,
			assignment.Subject,
			assignment.Professor,
			assignment.Room,
			assignment.Day,
			assignment.Time,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
