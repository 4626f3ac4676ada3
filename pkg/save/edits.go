package save

import (
	"errors"
	"io/fs"
	"strconv"
)

// Well-known property keys.
const (
	KeyMoney     = "money_account"
	KeyXP        = "experience_points"
	KeyInfoMoney = "info_money_account"
)

// Edits lists the scalar changes to apply to a game.sii document. Nil fields
// are left alone.
type Edits struct {
	Money *int64
	XP    *int64
}

// Empty reports whether no edit is requested.
func (e Edits) Empty() bool {
	return e.Money == nil && e.XP == nil
}

// Change records one applied (or skipped) property edit.
type Change struct {
	Key     string `json:"key"`
	Old     string `json:"old"`     // empty when the key was missing
	New     string `json:"new"`
	Applied bool   `json:"applied"` // false when the key does not exist in the document
}

// Apply sets every requested property on the loaded document and reports what
// changed. It panics before Load, like Document.
func (e *Editor) Apply(edits Edits) []Change {
	doc := e.Document()
	var changes []Change
	set := func(key string, v *int64) {
		if v == nil {
			return
		}
		old, _ := doc.Get(key)
		applied := doc.SetInt(key, *v)
		changes = append(changes, Change{Key: key, Old: old, New: strconv.FormatInt(*v, 10), Applied: applied})
	}
	set(KeyMoney, edits.Money)
	set(KeyXP, edits.XP)
	return changes
}

// SyncInfoMoney mirrors a new money balance into a save's info.sii, which the
// game shows in the load menu. A missing info file or a file without the
// property is not an error; the boolean reports whether anything was written.
func SyncInfoMoney(sink Sink, money int64, encrypt bool) (bool, error) {
	ed := NewEditor(sink)
	if err := ed.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if !ed.Document().SetInt(KeyInfoMoney, money) {
		return false, nil
	}
	if encrypt {
		return true, ed.SaveEncrypted()
	}
	return true, ed.Save()
}
