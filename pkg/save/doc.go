// Package save runs load-edit-save sessions against save slots.
//
// An Editor reads a Sink, decodes it with package sii, exposes the document
// for edits and writes it back either as plain text (Save) or re-encrypted
// when the original was encrypted (SaveEncrypted). FileSink backs up the
// original file to <name>.sii.backup before the first write and never
// overwrites that backup.
//
//	ed := save.NewEditor(save.NewFileSink(path))
//	if err := ed.Load(); err != nil {
//	    return err
//	}
//	ed.Document().Set(save.KeyMoney, "50000000")
//	return ed.Save()
package save
