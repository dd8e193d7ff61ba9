// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRunID  = "run_id"
	FieldDumpID = "dump_id"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"
	FieldSignal    = "signal"

	// Generator fields
	FieldSetting   = "setting"
	FieldGenerator = "generator"
	FieldEligible  = "eligible"
	FieldSkipped   = "skipped"

	// Path fields
	FieldPath      = "path"
	FieldInputPath = "input_path"
	FieldOutputDir = "output_dir"
)
