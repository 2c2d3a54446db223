// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package model

import (
	"errors"
	"fmt"
	"sort"
)

type ErrorReason int

const (
	ErrorReasonMaintenance ErrorReason = iota
	ErrorReasonProcess
	ErrorReasonNotFound
	ErrorReasonUnavailable
)

// TranslationKey points to the user facing text of the reason.
func (r ErrorReason) TranslationKey() string {
	switch r {
	case ErrorReasonMaintenance:
		return "error.maintenance"
	case ErrorReasonNotFound:
		return "error.notFound"
	case ErrorReasonUnavailable:
		return "error.unavailable"
	default:
		return "error.process"
	}
}

// InputError collects validation failures by field. Messages are
// translation keys, e.g. "validation.required".
type InputError struct {
	fields map[string][]string
}

func NewInputError() *InputError {
	return &InputError{
		fields: make(map[string][]string),
	}
}

func IsInputError(err error) *InputError {
	if err == nil {
		return nil
	}

	var inputError *InputError

	if errors.As(err, &inputError) {
		return inputError
	}

	return nil
}

func (ie *InputError) Add(field, msg string) {
	ie.fields[field] = append(ie.fields[field], msg)
}

func (ie *InputError) Empty() bool {
	return len(ie.fields) == 0
}

// OrNil returns ie when at least one field failed.
func (ie *InputError) OrNil() error {
	if ie.Empty() {
		return nil
	}
	return ie
}

func (ie *InputError) Error() string {
	keys := make([]string, 0, len(ie.fields))
	for k := range ie.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msg := "invalid input:"
	for _, k := range keys {
		msg += fmt.Sprintf(" %s=%v", k, ie.fields[k])
	}
	return msg
}

func (ie *InputError) Fields() map[string][]string {
	return ie.fields
}

// First returns the first message of a field or an empty string.
func (ie *InputError) First(field string) string {
	if msgs := ie.fields[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}
