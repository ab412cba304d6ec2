package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"vidmatch/internal/matching"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

const (
	msgEmptyInput   = "Please enter a YouTube video URL."
	msgInvalidInput = "Invalid YouTube URL format. Please try again."
	msgMatching     = "Matching video... (Simulating API call)"
	msgMatchFound   = "Match Found!"
	msgNoMatch      = "No Match Found."
	msgNoMatchHint  = "The entered video URL does not match any known assets in our simulated database."
)

const fieldIndent = "  "

func colorText(value, color string, colorize bool) string {
	if !colorize || color == "" {
		return value
	}
	return color + value + ansiReset
}

// matchLines renders a match outcome as the lines shown to the user.
func matchLines(res matching.Result, colorize bool) []string {
	switch res.Status {
	case matching.StatusEmptyInput:
		return []string{colorText(msgEmptyInput, ansiRed, colorize)}
	case matching.StatusInvalidInput:
		return []string{colorText(msgInvalidInput, ansiRed, colorize)}
	case matching.StatusMatched:
		if res.Record == nil {
			break
		}
		return []string{
			colorText(msgMatchFound, ansiGreen, colorize),
			fmt.Sprintf("%sAsset Title: %s", fieldIndent, res.Record.Title),
			fmt.Sprintf("%sSimulated Content ID: %s", fieldIndent, res.Record.RegistryCode),
			fmt.Sprintf("%sAssociated URL: %s", fieldIndent, res.Record.SourceURL),
		}
	}
	return []string{
		colorText(msgNoMatch, ansiRed, colorize),
		fieldIndent + msgNoMatchHint,
	}
}

func printLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

// matchingNotifier prints the progress line while the simulated call runs.
func matchingNotifier(w io.Writer, colorize bool) matching.Option {
	return matching.WithWaitNotifier(func(string) {
		fmt.Fprintln(w, colorText(msgMatching, ansiYellow, colorize))
	})
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

// writeJSON prints v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
