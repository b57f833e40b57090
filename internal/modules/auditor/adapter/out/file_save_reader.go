package out

import (
	"context"
	"fmt"
	"os"

	auditorout "fmtrack/internal/modules/auditor/port/out"
	apperrors "fmtrack/internal/platform/errors"
)

type FileSaveReader struct{}

func NewFileSaveReader() auditorout.SaveReader {
	return FileSaveReader{}
}

func (FileSaveReader) ReadSave(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("read save file: %w", err)
	}
	return data, nil
}
