// Package overlay writes the text layer file read by the broadcast software.
//
// The file is CSV (rows end in CRLF) with a PROGRAM,Body,Footer header and
// one row per slide.
// The row of the live slide is switched ON; every other row is OFF. An item
// without slides produces a single OFF row so the layer is blank.
package overlay

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/five82/openlplink/internal/openlp"
)

var header = []string{"PROGRAM", "Body", "Footer"}

// Key identifies what a written overlay shows. The overlay only needs
// rewriting when the key changes.
type Key struct {
	ItemID string
	Slide  int
}

// Writer rewrites the overlay file at Path.
type Writer struct {
	Path string
}

// Write replaces the file with the rows for item, with slide switched on.
// slide may be any value outside the item's range to switch every row off.
func (w Writer) Write(item openlp.Item, slide int) error {
	file, err := os.Create(w.Path)
	if err != nil {
		return fmt.Errorf("create overlay: %w", err)
	}
	if err := Encode(file, item, slide); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close overlay: %w", err)
	}
	return nil
}

// Encode writes the overlay rows for item to out. Rows end in CRLF while
// line breaks inside a quoted value are written as they are.
func Encode(out io.Writer, item openlp.Item, slide int) error {
	rows := make([][]string, 0, len(item.Slides)+1)
	rows = append(rows, header)
	if len(item.Slides) == 0 {
		rows = append(rows, []string{"OFF", "", ""})
	}
	for i, s := range item.Slides {
		switchState := "OFF"
		if i == slide {
			switchState = "ON"
		}
		rows = append(rows, []string{switchState, s.Text, item.Footer})
	}
	var row bytes.Buffer
	cw := csv.NewWriter(&row)
	for _, record := range rows {
		row.Reset()
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("encode overlay row: %w", err)
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return fmt.Errorf("encode overlay row: %w", err)
		}
		line := bytes.TrimSuffix(row.Bytes(), []byte("\n"))
		if _, err := out.Write(append(line, '\r', '\n')); err != nil {
			return fmt.Errorf("write overlay: %w", err)
		}
	}
	return nil
}
