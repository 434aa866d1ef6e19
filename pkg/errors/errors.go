// Package errors defines the failures the agent can report during startup.
//
// Every failure is a distinct type with a constructor and an Is* predicate so
// callers never compare error strings:
//
//	┌────────────────────────────────┬──────────────────────────────────────────┐
//	│ Type                           │ Raised when                              │
//	├────────────────────────────────┼──────────────────────────────────────────┤
//	│ BadCommandLineArgumentError    │ argv has an unknown flag or a bad value  │
//	│ ConfigFileNotFoundError        │ the configuration file cannot be opened  │
//	│ BadConfigFileSyntaxError       │ the configuration file cannot be parsed  │
//	│ MissingRequiredOptionError     │ a required option resolved to empty      │
//	└────────────────────────────────┴──────────────────────────────────────────┘
//
// The Error() text of each type is the exact message printed after the
// "ERROR: " prefix.
package errors

import (
	"errors"
	"fmt"
)

type BadCommandLineArgumentError struct {
	err error
}

func NewBadCommandLineArgumentError(err error) *BadCommandLineArgumentError {
	return &BadCommandLineArgumentError{err: err}
}

func (e *BadCommandLineArgumentError) Error() string {
	return fmt.Sprintf("Bad parameter: %v", e.err)
}

func (e *BadCommandLineArgumentError) Unwrap() error {
	return e.err
}

type ConfigFileNotFoundError struct {
	Path string
	err  error
}

func NewConfigFileNotFoundError(path string, err error) *ConfigFileNotFoundError {
	return &ConfigFileNotFoundError{Path: path, err: err}
}

func (e *ConfigFileNotFoundError) Error() string {
	return fmt.Sprintf("Unable to open configuration file %s", e.Path)
}

func (e *ConfigFileNotFoundError) Unwrap() error {
	return e.err
}

type BadConfigFileSyntaxError struct {
	Path string
	err  error
}

func NewBadConfigFileSyntaxError(path string, err error) *BadConfigFileSyntaxError {
	return &BadConfigFileSyntaxError{Path: path, err: err}
}

func (e *BadConfigFileSyntaxError) Error() string {
	return fmt.Sprintf("Bad parameter in configuration file %s: %v", e.Path, e.err)
}

func (e *BadConfigFileSyntaxError) Unwrap() error {
	return e.err
}

type MissingRequiredOptionError struct {
	Option string
}

func NewMissingRequiredOptionError(option string) *MissingRequiredOptionError {
	return &MissingRequiredOptionError{Option: option}
}

func (e *MissingRequiredOptionError) Error() string {
	return fmt.Sprintf("Missing required option %s", e.Option)
}

func IsBadCommandLineArgumentError(err error) bool {
	var e *BadCommandLineArgumentError
	return errors.As(err, &e)
}

func IsConfigFileNotFoundError(err error) bool {
	var e *ConfigFileNotFoundError
	return errors.As(err, &e)
}

func IsBadConfigFileSyntaxError(err error) bool {
	var e *BadConfigFileSyntaxError
	return errors.As(err, &e)
}

func IsMissingRequiredOptionError(err error) bool {
	var e *MissingRequiredOptionError
	return errors.As(err, &e)
}
