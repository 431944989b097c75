// Package truthtable loads logic.TruthTable values from CSV files.
package truthtable

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/DM-3/sequential-logic-solver/logic"
)

// ReadCSV parses filename into a logic.TruthTable. The first line is a
// header and is always skipped. Each remaining non-empty line holds 1 to 3
// comma-separated unsigned decimal fields — inputBits, outputBits,
// dontCareBits, in that order — with any trailing fields left off the line
// defaulting to zero.
//
// An unopenable file is not itself fatal to a caller that only wants a
// TruthTable to hand to logic.Solve: ReadCSV returns a zero-value (empty)
// TruthTable alongside the error, so `table, _ := ReadCSV(path)` still
// yields something Solve can run against trivially (and satisfy with its
// first candidate, since no row constrains any output bit).
func ReadCSV(filename string) (logic.TruthTable, error) {
	log := zap.L().Sugar()

	f, err := os.Open(filename)
	if err != nil {
		log.Warnw("truth table file could not be opened", "path", filename, "error", err)
		return logic.TruthTable{}, fmt.Errorf("truthtable: open %s: %w", filename, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil && err != io.EOF {
		return logic.TruthTable{}, fmt.Errorf("truthtable: reading header of %s: %w", filename, err)
	}

	var table logic.TruthTable
	lineNo := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		lineNo++
		if err != nil {
			log.Warnw("malformed CSV row, skipping", "path", filename, "line", lineNo, "error", err)
			continue
		}
		if len(record) == 0 || (len(record) == 1 && strings.TrimSpace(record[0]) == "") {
			continue
		}

		entry, err := parseEntry(record)
		if err != nil {
			log.Warnw("malformed truth table row, skipping", "path", filename, "line", lineNo, "error", err)
			continue
		}
		table.Entries = append(table.Entries, entry)
	}

	return table, nil
}

func parseEntry(record []string) (logic.TruthTableEntry, error) {
	var entry logic.TruthTableEntry

	fields := [3]*uint64{&entry.InputBits, &entry.OutputBits, &entry.DontCareBits}
	for i := 0; i < len(record) && i < 3; i++ {
		v, err := strconv.ParseUint(strings.TrimSpace(record[i]), 10, 64)
		if err != nil {
			return logic.TruthTableEntry{}, fmt.Errorf("field %d: %w", i, err)
		}
		*fields[i] = v
	}

	return entry, nil
}
