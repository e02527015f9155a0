// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metadata parses loosely structured metadata text into fields.
// Input is either a JSON object or a sequence of "key: value" lines.
package metadata

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/researchlib/pkg/types"
)

// Mode records which parse stage produced a Result.
type Mode int

const (
	// ModeStructured means the text decoded as a JSON object.
	ModeStructured Mode = iota + 1

	// ModeLines means JSON decoding failed and the text was read as
	// "key: value" lines.
	ModeLines
)

func (m Mode) String() string {
	switch m {
	case ModeStructured:
		return "structured"
	case ModeLines:
		return "lines"
	}
	return "unknown"
}

// Result is the outcome of Parse. Fields holds decoded JSON values in
// structured mode and trimmed strings in line mode.
type Result struct {
	Mode   Mode
	Fields map[string]any
}

// Record converts the parsed fields into a Record.
func (r Result) Record() (types.Record, error) {
	rec, err := types.RecordFromMap(r.Fields)
	if err != nil {
		return types.Record{}, fmt.Errorf("converting %s metadata: %w", r.Mode, err)
	}
	return rec, nil
}

// Parse decodes text as a JSON object, falling back to line mode when that
// fails. The two modes never mix. In line mode each line containing a colon
// is split on its first colon; other lines are skipped. Empty text is an
// error.
func Parse(text string) (Result, error) {
	if text == "" {
		return Result{}, types.NewInputError("metadata", "metadata text is empty")
	}

	if fields, ok := parseStructured(text); ok {
		return Result{Mode: ModeStructured, Fields: fields}, nil
	}
	return Result{Mode: ModeLines, Fields: parseLines(text)}, nil
}

// ParseRecord parses text and converts the result into a Record.
func ParseRecord(text string) (types.Record, Mode, error) {
	res, err := Parse(text)
	if err != nil {
		return types.Record{}, 0, err
	}
	rec, err := res.Record()
	if err != nil {
		return types.Record{}, res.Mode, err
	}
	return rec, res.Mode, nil
}

// parseStructured accepts only a JSON object. Arrays and scalars count as
// a failed structured attempt.
func parseStructured(text string) (map[string]any, bool) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(text), &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

func parseLines(text string) map[string]any {
	fields := make(map[string]any)
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	for sc.Scan() {
		key, value, found := strings.Cut(sc.Text(), ":")
		if !found {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return fields
}
