/*
Package sii decodes, edits and re-encodes the text documents stored in
Euro Truck Simulator 2 and American Truck Simulator save files.

# Containers

A save file (game.sii, info.sii, profile.sii) is one of:

  - an encrypted container starting with "ScsC" (AES-256-CBC around zlib)
  - a plain text document starting with "SiiN"
  - any other UTF-8 text
  - a binary document starting with "BSII", which is rejected

Decode detects the variant and returns the document text:

	text, variant, err := sii.Decode(data)
	if errors.Is(err, sii.ErrUnsupportedFormat) {
	    // set g_save_format 2 in config.cfg
	}

Encode produces a fresh encrypted container for a document.

# Documents

A Document is the decoded text treated as a flat list of lines. Properties
are single-line "key: value" assignments; Get and Set operate on the first
line whose key matches literally:

	doc := sii.NewDocument(text)
	old, ok := doc.Get("money_account")
	doc.Set("money_account", "50000000")

Nothing else in the document is touched.
*/
package sii
