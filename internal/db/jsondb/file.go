// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package jsondb

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// saveToFile writes v as indented json. Callers hold the store lock.
func saveToFile(ctx context.Context, filename string, v any) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "SaveToFile", trace.WithAttributes(attribute.String("file", filename)))
	defer span.End()

	fileData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		span.RecordError(err)
		return err
	}

	tmp := filename + ".tmp"
	if err := os.WriteFile(tmp, fileData, 0644); err != nil {
		span.RecordError(err)
		return err
	}
	if err := os.Rename(tmp, filename); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// loadFromFile reads filename into v. It reports false when the file
// does not exist yet.
func loadFromFile(filename string, v any) (bool, error) {
	fileData, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(fileData, v)
}
