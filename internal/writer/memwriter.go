package writer

// MemWriter captures save bytes in memory.
type MemWriter struct {
	Buf    []byte
	Writes int
}

// WriteSave stores a copy of buf.
func (w *MemWriter) WriteSave(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	w.Writes++
	return nil
}
