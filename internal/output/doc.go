// Package output provides structured output and error handling for the
// hookkit CLI.
//
// # Printer
//
// Every command writes through a Printer, which switches between styled
// text and JSON based on the --json flag:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "Installed pre-commit hook"})
//	printer.Error(err)
//
// # Error kinds
//
// Library packages never terminate the process. They return *ExitError
// values and the command layer turns them into exit codes:
//
//	output.NewUserError(...)             // 1: bad input, target outside project
//	output.NewSystemErrorWithCause(...)  // 2: I/O failure
//	output.NewConflictError(...)         // 3: copy target already exists
//	output.NewFatalErrorWithCause(...)   // 2: unreadable copy source, stops the run
//	output.NewAbortError(...)            // 0: no git repository, warn and stop
//
// IsFatal and IsAbort search wrapped and joined errors, so a batch that
// collected several conflicts before hitting a fatal error is still
// reported as fatal.
package output
