//go:build js && wasm

package store

import (
	"syscall/js"

	"github.com/pkg/errors"
)

// Document is the browser's document.cookie.
type Document struct {
	doc js.Value
}

// NewDocument binds the global document object.
func NewDocument() (*Document, error) {
	doc := js.Global().Get("document")
	if doc.IsUndefined() || doc.IsNull() {
		return nil, errors.Wrap(ErrStoreAccess, "document is not defined")
	}

	return &Document{doc: doc}, nil
}

func (d *Document) Read() (cookies string, err error) {
	defer recoverJS(&err, "document read")

	return d.doc.Get("cookie").String(), nil
}

func (d *Document) Write(fragment string) (err error) {
	defer recoverJS(&err, "document write")

	d.doc.Set("cookie", fragment)

	return nil
}

// recoverJS turns a thrown JavaScript exception, which syscall/js raises as
// a panic, into a store error.
func recoverJS(err *error, msg string) {
	r := recover()
	if r == nil {
		return
	}

	if jsErr, ok := r.(error); ok {
		*err = accessError(jsErr, msg)
		return
	}

	*err = accessError(errors.Errorf("%v", r), msg)
}
