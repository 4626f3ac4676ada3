package save

import (
	"errors"
	"fmt"

	"github.com/joshuapare/etsvibes/internal/logger"
	"github.com/joshuapare/etsvibes/pkg/sii"
)

// ErrNotLoaded is returned by Save and SaveEncrypted before a successful Load.
var ErrNotLoaded = errors.New("save: document not loaded")

// Editor is one load-edit-save session bound to a Sink.
//
// The zero value is not usable; create editors with NewEditor. Editors are
// not safe for concurrent use, and nothing prevents two editors from writing
// the same sink (last write wins).
type Editor struct {
	sink    Sink
	doc     *sii.Document
	variant sii.Variant
}

// NewEditor returns an empty editor for sink.
func NewEditor(sink Sink) *Editor {
	return &Editor{sink: sink}
}

// Load reads and decodes the sink. On failure the editor keeps its previous
// state and the codec error is returned.
func (e *Editor) Load() error {
	data, err := e.sink.Read()
	if err != nil {
		return err
	}
	text, variant, err := sii.Decode(data)
	if err != nil {
		return err
	}
	e.doc = sii.NewDocument(text)
	e.variant = variant
	logger.Debug("save loaded", "variant", variant.String(), "bytes", len(data))
	return nil
}

// Loaded reports whether Load has succeeded.
func (e *Editor) Loaded() bool {
	return e.doc != nil
}

// Document returns the loaded document. Calling it before Load is a
// programming error and panics.
func (e *Editor) Document() *sii.Document {
	if e.doc == nil {
		panic("save: Document called before Load")
	}
	return e.doc
}

// Variant returns the container variant the document was loaded from.
func (e *Editor) Variant() sii.Variant {
	return e.variant
}

// WasEncrypted reports whether the loaded save was an encrypted container.
func (e *Editor) WasEncrypted() bool {
	return e.variant == sii.VariantEncrypted
}

// Save writes the document back as plain UTF-8 text, whatever the original
// container was. The game reads plain text saves.
func (e *Editor) Save() error {
	if e.doc == nil {
		return ErrNotLoaded
	}
	return e.write([]byte(e.doc.Content()), "plain")
}

// SaveEncrypted writes the document re-encrypted when the original save was
// encrypted, and as plain text otherwise.
func (e *Editor) SaveEncrypted() error {
	if e.doc == nil {
		return ErrNotLoaded
	}
	if !e.WasEncrypted() {
		return e.write([]byte(e.doc.Content()), "plain")
	}
	data, err := sii.Encode(e.doc.Content())
	if err != nil {
		return err
	}
	return e.write(data, "encrypted")
}

func (e *Editor) write(data []byte, mode string) error {
	if err := e.sink.Write(data); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	logger.Debug("save written", "mode", mode, "bytes", len(data))
	return nil
}
