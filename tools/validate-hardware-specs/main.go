// Package main checks a GPU hardware spec CSV before it is embedded.
//
// Every data row must parse, build a valid System, and support at least one
// workload. Process nodes and memory classes missing from the fabrication
// tables are reported because they silently contribute zero embodied carbon.
//
// Usage:
//
//	go run ./tools/validate-hardware-specs [--file PATH] [--min-rows N] [--strict]
//
// Flags:
//
//	--file      CSV to check (default: ./internal/carbon/data/hardware_specs.csv)
//	--min-rows  Minimum number of parts expected (default: 5)
//	--strict    Treat unknown process nodes and memory classes as errors
package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rshade/carbon-breakeven/internal/carbon"
)

const (
	// defaultMinRows is the smallest table worth shipping.
	defaultMinRows = 5

	// expectedColumns is the number of columns in the spec CSV header.
	expectedColumns = 13
)

var errValidation = errors.New("hardware specs validation failed")

func main() {
	path := flag.String("file", "./internal/carbon/data/hardware_specs.csv", "Hardware spec CSV to validate")
	minRows := flag.Int("min-rows", defaultMinRows, "Minimum number of valid parts")
	strict := flag.Bool("strict", false, "Fail on unknown process nodes or memory classes")
	flag.Parse()

	data, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *path, err)
		os.Exit(1)
	}

	if err := validate(data, *minRows, *strict, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Validation error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Validation passed")
}

// validate checks the CSV and writes a short report to w.
func validate(data []byte, minRows int, strict bool, w io.Writer) error {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) < expectedColumns {
		return fmt.Errorf("CSV has %d columns, expected at least %d", len(header), expectedColumns)
	}

	totalRows := 0
	for {
		_, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		totalRows++
	}

	table, err := carbon.ParseHardwareSpecs(bytes.NewReader(data))
	if err != nil {
		return err
	}

	problems := 0
	if skipped := totalRows - len(table); skipped > 0 {
		fmt.Fprintf(w, "%d rows were skipped or duplicated\n", skipped)
		problems++
	}

	for _, spec := range table.List() {
		if _, err := carbon.SystemFromSpec(spec, carbon.WorkloadFP32); err != nil {
			fmt.Fprintf(w, "%s: %v\n", spec.Name, err)
			problems++
		}
		if len(carbon.SupportedWorkloads(spec)) == 0 {
			fmt.Fprintf(w, "%s: no supported workloads\n", spec.Name)
			problems++
		}

		var unknown []string
		if carbon.GetEnergyPerArea(spec.ProcessNodeNM) == 0 {
			unknown = append(unknown, fmt.Sprintf("process node %dnm", spec.ProcessNodeNM))
		}
		if carbon.GetVRAMEmbodiedPerGB(spec.Memory) == 0 {
			unknown = append(unknown, fmt.Sprintf("memory %q", spec.Memory))
		}
		for _, u := range unknown {
			fmt.Fprintf(w, "%s: unknown %s contributes no embodied carbon\n", spec.Name, u)
			if strict {
				problems++
			}
		}
	}

	fmt.Fprintf(w, "CSV stats: %d rows, %d valid parts, %d problems\n", totalRows, len(table), problems)

	if len(table) < minRows {
		return fmt.Errorf("%w: only %d valid parts, expected at least %d", errValidation, len(table), minRows)
	}
	if problems > 0 {
		return fmt.Errorf("%w: %d problems", errValidation, problems)
	}
	return nil
}
