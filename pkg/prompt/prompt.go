// Package prompt implements the interactive configuration wizard. Every
// question carries the documented default, so accepting all prompts yields
// exactly the default configuration.
package prompt

import (
	"fmt"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"
)

// Interactive reports whether prompting is possible and wanted: stdin must
// be a terminal and GOATGEN_NO_PROMPT must be unset
func Interactive() bool {
	if os.Getenv("GOATGEN_NO_PROMPT") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func askString(message, def string) (string, error) {
	prompt := &survey.Input{
		Message: message,
		Default: def,
	}
	var result string
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func askStringWithHelp(message, def, help string) (string, error) {
	prompt := &survey.Input{
		Message: message,
		Default: def,
		Help:    help,
	}
	var result string
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func askInt(message string, def int) (int, error) {
	prompt := &survey.Input{
		Message: message,
		Default: strconv.Itoa(def),
	}
	var result string
	if err := survey.AskOne(prompt, &result, survey.WithValidator(func(val interface{}) error {
		if _, err := strconv.Atoi(val.(string)); err != nil {
			return fmt.Errorf("please enter an integer")
		}
		return nil
	})); err != nil {
		return 0, err
	}
	return strconv.Atoi(result)
}

func askFloat(message string, def float64) (float64, error) {
	prompt := &survey.Input{
		Message: message,
		Default: strconv.FormatFloat(def, 'g', -1, 64),
	}
	var result string
	if err := survey.AskOne(prompt, &result, survey.WithValidator(func(val interface{}) error {
		if _, err := strconv.ParseFloat(val.(string), 64); err != nil {
			return fmt.Errorf("please enter a number")
		}
		return nil
	})); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(result, 64)
}

func askBool(message string, def bool) (bool, error) {
	prompt := &survey.Confirm{
		Message: message,
		Default: def,
	}
	var result bool
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

func askSelect(message string, options []string, def string) (string, error) {
	prompt := &survey.Select{
		Message: message,
		Options: options,
		Default: def,
	}
	var result string
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}
