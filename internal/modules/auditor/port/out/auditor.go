package out

import "context"

type SaveReader interface {
	ReadSave(ctx context.Context, path string) ([]byte, error)
}
