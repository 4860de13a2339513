// Package output renders minecorg command results for people and for
// scripts.
//
// Every command goes through a Printer. With --json the printer emits one
// JSON document per result; otherwise it writes styled text that degrades
// to plain text when piped or when --color never is set:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, useColor(cmd))
//	printer.Success(map[string]any{"message": "Created entity myns:wolf"})
//	printer.Step(output.StepOK, "manifests", "wrote 2 manifests")
//
// Errors carry exit codes:
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: bad name, no project, unparseable model
//	output.ExitSystemError // 2: I/O or git failure
//	output.ExitConflict    // 3: entity already exists
//
// In JSON mode an error is written as {"error": "...", "code": N} with an
// optional "hint".
package output
