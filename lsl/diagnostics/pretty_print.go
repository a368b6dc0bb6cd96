package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// prettyPrint renders an error, including the offending portion of the
// source code, for human-friendly reading.
func prettyPrint(w io.Writer, fileName, text string, span Span, description string) error {
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	if span.Start > len(text) {
		span.Start = len(text)
	}
	if span.End > len(text) {
		span.End = len(text)
	}

	startLineNumber := strings.Count(text[:span.Start], "\n")
	endLineNumber := strings.Count(text[:span.End], "\n")
	fileLines := strings.Split(text, "\n")

	bytesInLineBefore := 0
	for i := 0; i < startLineNumber; i++ {
		bytesInLineBefore += len(fileLines[i]) + 1 // +1 for newline
	}

	line := fileLines[startLineNumber]
	startInLine := span.Start - bytesInLineBefore
	endInLine := startInLine + (span.End - span.Start)
	if endInLine > len(line) {
		endInLine = len(line)
	}

	prefix := line[:startInLine]
	offending := line[startInLine:endInLine]
	suffix := line[endInLine:]

	errorTitle := color.New(color.FgRed, color.Bold)
	errorDesc := color.New(color.Bold)
	arrowColor := color.New(color.FgCyan, color.Bold)
	filePathColor := color.New(color.Underline)
	lineNumColor := color.New(color.FgCyan, color.Bold)
	offendingColor := color.New(color.FgRed, color.Bold)

	errorTitle.Fprintf(w, "error")
	fmt.Fprintf(w, ": ")
	errorDesc.Fprintf(w, "%s\n", description)

	arrowColor.Fprintf(w, "  --> ")
	filePathColor.Fprintf(w, "%s:%d\n", fileName, startLineNumber+1)

	lineNumColor.Fprintf(w, "   | \n")

	if startLineNumber > 0 {
		lineNumColor.Fprintf(w, "%2d | ", startLineNumber)
		fmt.Fprintf(w, "%s\n", fileLines[startLineNumber-1])
	}

	lineNumColor.Fprintf(w, "%2d | ", startLineNumber+1)
	fmt.Fprintf(w, "%s", prefix)
	offendingColor.Fprintf(w, "%s", offending)
	fmt.Fprintf(w, "%s\n", suffix)

	if len(offending) == 0 {
		lineNumColor.Fprintf(w, "   | ")
		fmt.Fprintf(w, "%s", strings.Repeat(" ", startInLine))
		offendingColor.Fprintf(w, "^\n")
	} else {
		lineNumColor.Fprintf(w, "   | ")
		fmt.Fprintf(w, "%s", strings.Repeat(" ", startInLine))
		offendingColor.Fprintf(w, "%s\n", strings.Repeat("^", len(offending)))
	}

	for lineNumber := startLineNumber + 1; lineNumber <= endLineNumber && lineNumber < len(fileLines); lineNumber++ {
		lineNumColor.Fprintf(w, "%2d | ", lineNumber+1)
		fmt.Fprintf(w, "%s\n", fileLines[lineNumber])
	}

	lineNumColor.Fprintf(w, "   | \n")

	return nil
}
