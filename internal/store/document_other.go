//go:build !(js && wasm)

package store

import (
	"github.com/pkg/errors"
)

// Document is only available in builds for GOOS=js GOARCH=wasm.
type Document struct{}

func NewDocument() (*Document, error) {
	return nil, errors.Wrap(ErrStoreAccess, "document store requires a js/wasm build")
}

func (d *Document) Read() (string, error) {
	return "", errors.Wrap(ErrStoreAccess, "document store requires a js/wasm build")
}

func (d *Document) Write(string) error {
	return errors.Wrap(ErrStoreAccess, "document store requires a js/wasm build")
}
