package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type RawProfessor struct {
	Id          string `mapstructure:"id" validate:"required"`
	Name        string `mapstructure:"name" validate:"required"`
	OfficeStart string `mapstructure:"officeStart"`
	OfficeEnd   string `mapstructure:"officeEnd"`
	OfficeHours string `mapstructure:"officeHours"` // Legacy "start - end" text, used only when both boundaries are missing
}

type RawRoom struct {
	Number   string `mapstructure:"number" validate:"required"`
	Capacity int    `mapstructure:"capacity" validate:"gte=0"`
	Format   string `mapstructure:"format"`
}

type RawSubject struct {
	Code      string `mapstructure:"code" validate:"required"`
	Name      string `mapstructure:"name"`
	Type      string `mapstructure:"type"`
	Semester  int    `mapstructure:"semester"`
	Format    string `mapstructure:"format"`
	Capacity  int    `mapstructure:"capacity" validate:"gte=0"`
	Professor string `mapstructure:"professor"`
}

type RawAssignment struct {
	Id        string `mapstructure:"id"`
	Subject   string `mapstructure:"subject"`
	Professor string `mapstructure:"professor"`
	Room      string `mapstructure:"room"`
	Day       string `mapstructure:"day"`
	Time      string `mapstructure:"time"`
}

type RawModelInput struct {
	Professors []RawProfessor  `mapstructure:"professors" validate:"unique=Id,dive"`
	Rooms      []RawRoom       `mapstructure:"rooms" validate:"unique=Number,dive"`
	Subjects   []RawSubject    `mapstructure:"subjects" validate:"unique=Code,dive"`
	Schedule   []RawAssignment `mapstructure:"schedule"`
}

type Professor struct {
	Id          string
	Name        string
	OfficeStart ClockTime
	OfficeEnd   ClockTime
}

type Room struct {
	Number   string
	Capacity int
	Format   string // Opaque grouping tag, conventionally "Lecture" or "Seminar"
}

type Subject struct {
	Code      string
	Name      string
	Type      string
	Semester  int
	Format    string // Required room format
	Capacity  int    // Required room capacity
	Professor string
}

// Assignment places one subject, taught by its professor, in a room at a given slot
type Assignment struct {
	Id        string `json:"id"`
	Subject   string `json:"subject"`
	Professor string `json:"professor"`
	Room      string `json:"room"`
	Day       string `json:"day"`
	Time      string `json:"time"`
}

type ModelInput struct {
	Professors []Professor
	Rooms      []Room
	Subjects   []Subject
	Previous   []Assignment // Assignment list produced by the previous run, if any
}

var validate = validator.New()

// InputFromFile reads a JSON or YAML (by extension) snapshot and normalizes it into a ModelInput
func InputFromFile(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, fmt.Errorf("cannot read input file: %w", err)
	}

	var inputMap map[string]any
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &inputMap)
	default:
		err = json.Unmarshal(bytes, &inputMap)
	}
	if err != nil {
		return ModelInput{}, fmt.Errorf("cannot parse input file: %w", err)
	}

	var rawInput RawModelInput
	// Weak typing lets CSV-origin values such as "30" or unquoted room numbers through
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &rawInput,
	})
	if err != nil {
		return ModelInput{}, err
	}
	if err := decoder.Decode(inputMap); err != nil {
		return ModelInput{}, fmt.Errorf("cannot decode input file: %w", err)
	}
	return ProcessRawInput(rawInput)
}

// ProcessRawInput trims every field, uppercases identifiers, validates records and parses office hours.
// Professor ids, room numbers and subject codes must be unique once normalized.
func ProcessRawInput(rawInput RawModelInput) (ModelInput, error) {
	rawInput = normalizeRawInput(rawInput)
	if err := validate.Struct(rawInput); err != nil {
		return ModelInput{}, fmt.Errorf("invalid input: %w", err)
	}

	input := ModelInput{
		Professors: lo.Map(rawInput.Professors, func(raw RawProfessor, _ int) Professor {
			start, end := raw.OfficeStart, raw.OfficeEnd
			if start == "" && end == "" {
				start, end = SplitOfficeHours(raw.OfficeHours)
			}
			officeStart, officeEnd := NormalizeOfficeHours(
				parseClockTimeOr(start, DefaultOfficeStart),
				parseClockTimeOr(end, DefaultOfficeEnd),
			)
			return Professor{
				Id:          raw.Id,
				Name:        raw.Name,
				OfficeStart: officeStart,
				OfficeEnd:   officeEnd,
			}
		}),
		Rooms: lo.Map(rawInput.Rooms, func(raw RawRoom, _ int) Room {
			return Room(raw)
		}),
		Subjects: lo.Map(rawInput.Subjects, func(raw RawSubject, _ int) Subject {
			return Subject(raw)
		}),
		Previous: lo.Map(rawInput.Schedule, func(raw RawAssignment, _ int) Assignment {
			return Assignment(raw)
		}),
	}
	return input, nil
}

func normalizeRawInput(rawInput RawModelInput) RawModelInput {
	identifier := func(value string) string {
		return strings.ToUpper(strings.TrimSpace(value))
	}

	return RawModelInput{
		Professors: lo.Map(rawInput.Professors, func(raw RawProfessor, _ int) RawProfessor {
			return RawProfessor{
				Id:          identifier(raw.Id),
				Name:        strings.TrimSpace(raw.Name),
				OfficeStart: strings.TrimSpace(raw.OfficeStart),
				OfficeEnd:   strings.TrimSpace(raw.OfficeEnd),
				OfficeHours: strings.TrimSpace(raw.OfficeHours),
			}
		}),
		Rooms: lo.Map(rawInput.Rooms, func(raw RawRoom, _ int) RawRoom {
			return RawRoom{
				Number:   identifier(raw.Number),
				Capacity: raw.Capacity,
				Format:   strings.TrimSpace(raw.Format),
			}
		}),
		Subjects: lo.Map(rawInput.Subjects, func(raw RawSubject, _ int) RawSubject {
			return RawSubject{
				Code:      identifier(raw.Code),
				Name:      strings.TrimSpace(raw.Name),
				Type:      strings.TrimSpace(raw.Type),
				Semester:  raw.Semester,
				Format:    strings.TrimSpace(raw.Format),
				Capacity:  raw.Capacity,
				Professor: identifier(raw.Professor),
			}
		}),
		Schedule: lo.Map(rawInput.Schedule, func(raw RawAssignment, _ int) RawAssignment {
			return RawAssignment{
				Id:        identifier(raw.Id),
				Subject:   identifier(raw.Subject),
				Professor: identifier(raw.Professor),
				Room:      identifier(raw.Room),
				Day:       strings.TrimSpace(raw.Day),
				Time:      strings.TrimSpace(raw.Time),
			}
		}),
	}
}
