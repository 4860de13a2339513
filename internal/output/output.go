package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StepStatus is the outcome glyph shown by Printer.Step.
type StepStatus string

// Step statuses. They match the status strings scaffold and doctor report.
const (
	StepOK      StepStatus = "ok"
	StepSkipped StepStatus = "skipped"
	StepFailed  StepStatus = "failed"
	StepDryRun  StepStatus = "dry_run"
	StepWarn    StepStatus = "warn"
)

// Printer handles formatted output to a writer.
// It supports both JSON and human-readable output modes.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	isTTY  bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
	Dim     lipgloss.Style
	Title   lipgloss.Style
	Key     lipgloss.Style
	Border  lipgloss.Color
	Accent  lipgloss.Style
}

func newStyles(color bool) *Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &Styles{
			Error: plain, Success: plain, Warning: plain, Bold: plain,
			Dim: plain, Title: plain, Key: plain, Accent: plain,
		}
	}
	return &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5D9C3B")), // grass
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Border:  lipgloss.Color("8"),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5A2B")), // dirt
	}
}

// NewPrinter creates a new Printer.
// If jsonMode is true, output will be JSON formatted.
// If isTTY is true, colors will be enabled for human output.
func NewPrinter(writer io.Writer, jsonMode bool, isTTY bool) *Printer {
	return &Printer{
		w:      writer,
		errW:   writer,
		json:   jsonMode,
		isTTY:  isTTY,
		styles: newStyles(isTTY),
	}
}

// WithStderr sets a separate writer for errors, warnings and hints in human
// mode. JSON errors still go to the main writer.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON returns true if the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

// IsTTY returns true if the printer renders colors.
func (p *Printer) IsTTY() bool {
	return p.isTTY
}

// Success outputs a success result.
// For JSON mode, outputs the data as JSON.
// For human mode, prints the "message" key if present, otherwise every key
// in sorted order.
func (p *Printer) Success(data map[string]any) error {
	if p.json {
		return p.writeJSON(data)
	}

	if msg, ok := data["message"].(string); ok {
		mustWrite(fmt.Fprintln(p.w, p.styles.Success.Render(msg)))
		return nil
	}

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		mustWrite(fmt.Fprintf(p.w, "%s: %v\n", p.styles.Bold.Render(key), data[key]))
	}
	return nil
}

// Error outputs an error.
// For JSON mode, outputs {"error": "...", "code": N} to the main writer.
// For human mode, outputs a styled message and any hint to the error writer.
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{Code: ExitUserError, Message: err.Error()}
	}

	if p.json {
		mustWrite(p.w.Write(ErrorJSON(exitErr)))
		mustWrite(fmt.Fprintln(p.w))
		return
	}

	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Message))
	if exitErr.Hint != "" {
		mustWrite(fmt.Fprintf(p.errW, "%s\n", p.styles.Dim.Render("hint: "+exitErr.Hint)))
	}
}

// Warn outputs a warning message.
// For JSON mode, outputs {"warning": "..."} to the main writer.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.json {
		_ = p.writeJSON(map[string]any{"warning": msg})
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// Stderr writes a message to the error writer. No-op in JSON mode.
func (p *Printer) Stderr(format string, args ...any) {
	if p.json {
		return
	}
	mustWrite(fmt.Fprintf(p.errW, format, args...))
}

// Print formats and writes to the output without a newline.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format, args...))
}

// Println writes a line to the output.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

func (p *Printer) writeJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// WriteJSON encodes any data as JSON and writes it.
func (p *Printer) WriteJSON(data any) error {
	return p.writeJSON(data)
}

// ErrorJSON returns JSON-formatted error bytes.
// Format: {"error": "message", "code": N, "hint": "..."}; hint is omitted
// when empty.
func ErrorJSON(exitErr *ExitError) []byte {
	data := map[string]any{
		"error": exitErr.Message,
		"code":  exitErr.Code,
	}
	if exitErr.Hint != "" {
		data["hint"] = exitErr.Hint
	}
	result, _ := json.Marshal(data)
	return result
}

// mustWrite panics if a write to stdout, stderr or a buffer fails.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}

// Step renders one progress line: a status glyph, the step name and an
// optional message. Human mode only.
func (p *Printer) Step(status StepStatus, name, message string) {
	var glyph string
	switch status {
	case StepOK:
		glyph = p.styles.Success.Render("✓")
	case StepSkipped:
		glyph = p.styles.Dim.Render("-")
	case StepDryRun:
		glyph = p.styles.Accent.Render("~")
	case StepWarn:
		glyph = p.styles.Warning.Render("!")
	default:
		glyph = p.styles.Error.Render("✗")
	}
	line := fmt.Sprintf("  %s %s", glyph, p.styles.Bold.Render(name))
	if message != "" {
		line += " " + p.styles.Dim.Render(message)
	}
	mustWrite(fmt.Fprintln(p.w, line))
}

// Numbered renders a 1-based list: "#1 label [ detail ]". Empty details
// are left off.
func (p *Printer) Numbered(labels, details []string) {
	for i, label := range labels {
		line := fmt.Sprintf("%s %s", p.styles.Accent.Render(fmt.Sprintf("#%d", i+1)), label)
		if i < len(details) && details[i] != "" {
			line += " " + p.styles.Dim.Render("[ "+details[i]+" ]")
		}
		mustWrite(fmt.Fprintln(p.w, line))
	}
}

// Table renders a simple table with column alignment.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	p.tableRow(headers, widths, p.styles.Bold)
	for _, row := range rows {
		p.tableRow(row, widths, lipgloss.NewStyle())
	}
}

func (p *Printer) tableRow(cells []string, widths []int, style lipgloss.Style) {
	parts := make([]string, 0, len(widths))
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		parts = append(parts, style.Render(padRight(cell, widths[i])))
	}
	mustWrite(fmt.Fprintln(p.w, strings.TrimRight(strings.Join(parts, "  "), " ")))
}

// Box renders content in a rounded border with an optional title.
// Without colors it prints the title and content as plain text.
func (p *Printer) Box(title string, content string) {
	if !p.isTTY {
		if title != "" {
			mustWrite(fmt.Fprintln(p.w, title))
			mustWrite(fmt.Fprintln(p.w))
		}
		mustWrite(fmt.Fprintln(p.w, content))
		return
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.styles.Border).
		Padding(0, 1)

	boxContent := content
	if title != "" {
		boxContent = p.styles.Title.Render(title) + "\n\n" + content
	}
	mustWrite(fmt.Fprintln(p.w, style.Render(boxContent)))
}

// Section renders a section header with underline, preceded by a blank line.
func (p *Printer) Section(title string) {
	mustWrite(fmt.Fprintln(p.w))
	mustWrite(fmt.Fprintln(p.w, p.styles.Title.Render(title)))
	mustWrite(fmt.Fprintln(p.w, p.styles.Dim.Render(strings.Repeat("─", len(title)))))
}

// KeyValue renders "key: value".
func (p *Printer) KeyValue(key string, value string) {
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", p.styles.Key.Render(key+":"), value))
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
