package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	sectionColor = color.New(color.FgCyan)
	keyColor     = color.New(color.FgCyan)
)

// Success logs a success message with a checkmark
func Success(args ...interface{}) {
	defaultLogger.log(InfoLevel, successColor.Sprint("✓ ")+fmt.Sprint(args...))
}

// Successf logs a formatted success message
func Successf(format string, args ...interface{}) {
	Success(fmt.Sprintf(format, args...))
}

// Progress logs a progress message for a long-running step
func Progress(args ...interface{}) {
	defaultLogger.log(InfoLevel, "→ "+fmt.Sprint(args...))
}

// Progressf logs a formatted progress message
func Progressf(format string, args ...interface{}) {
	Progress(fmt.Sprintf(format, args...))
}

// Section prints a visual section separator with a title
func Section(title string) {
	line := strings.Repeat("=", 41)
	fmt.Println(sectionColor.Sprint(line))
	fmt.Println(sectionColor.Sprint("  " + title))
	fmt.Println(sectionColor.Sprint(line))
}

// List prints a titled list of items with bullets
func List(title string, items []string) {
	Info(title)
	for _, item := range items {
		fmt.Printf("  • %s\n", item)
	}
}

// KeyValue prints a key-value pair with the key highlighted
func KeyValue(key string, value interface{}) {
	fmt.Printf("%s %v\n", keyColor.Sprintf("%s:", key), value)
}
