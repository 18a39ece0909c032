package overlay

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/five82/openlplink/internal/openlp"
)

func TestEncode_MarksLiveSlide(t *testing.T) {
	item := openlp.Item{
		ID:     "song",
		Footer: "Amazing Grace",
		Slides: []openlp.Slide{{Text: "Amazing grace"}, {Text: "How sweet, the sound"}, {Text: "That saved"}},
	}
	var buf bytes.Buffer
	if err := Encode(&buf, item, 1); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	want := "PROGRAM,Body,Footer\r\n" +
		"OFF,Amazing grace,Amazing Grace\r\n" +
		"ON,\"How sweet, the sound\",Amazing Grace\r\n" +
		"OFF,That saved,Amazing Grace\r\n"
	if got := buf.String(); got != want {
		t.Fatalf("Encode output =\n%s\nwant\n%s", got, want)
	}
}

func TestEncode_NoSlideAllOff(t *testing.T) {
	item := openlp.Item{ID: "x", Slides: []openlp.Slide{{Text: "a"}, {Text: "b"}}}
	var buf bytes.Buffer
	if err := Encode(&buf, item, -1); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	want := "PROGRAM,Body,Footer\r\nOFF,a,\r\nOFF,b,\r\n"
	if got := buf.String(); got != want {
		t.Fatalf("Encode output = %q, want %q", got, want)
	}
}

func TestEncode_ZeroSlidesSingleOffRow(t *testing.T) {
	for _, slide := range []int{-1, 0, 3} {
		var buf bytes.Buffer
		if err := Encode(&buf, openlp.Item{ID: "media", Footer: "ignored"}, slide); err != nil {
			t.Fatalf("Encode returned error: %v", err)
		}
		want := "PROGRAM,Body,Footer\r\nOFF,,\r\n"
		if got := buf.String(); got != want {
			t.Fatalf("Encode(slide=%d) = %q, want %q", slide, got, want)
		}
	}
}

// Embedded newlines stay inside the quoted value.
func TestEncode_QuotesMultilineText(t *testing.T) {
	item := openlp.Item{ID: "x", Slides: []openlp.Slide{{Text: "line one\nline \"two\""}}}
	var buf bytes.Buffer
	if err := Encode(&buf, item, 0); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	want := "PROGRAM,Body,Footer\r\nON,\"line one\nline \"\"two\"\"\",\r\n"
	if got := buf.String(); got != want {
		t.Fatalf("Encode output = %q, want %q", got, want)
	}
}

func TestEncode_KeepsLineBreaksInsideValues(t *testing.T) {
	item := openlp.Item{ID: "x", Footer: "Verse\r\nOne", Slides: []openlp.Slide{{Text: "a\nb"}, {Text: "c\rd"}}}
	var buf bytes.Buffer
	if err := Encode(&buf, item, 0); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	want := "PROGRAM,Body,Footer\r\n" +
		"ON,\"a\nb\",\"Verse\r\nOne\"\r\n" +
		"OFF,\"c\rd\",\"Verse\r\nOne\"\r\n"
	if got := buf.String(); got != want {
		t.Fatalf("Encode output = %q, want %q", got, want)
	}
}

func TestWriter_ReplacesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Text Layer.csv")
	if err := os.WriteFile(path, []byte("stale content that is much longer than the new file\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w := Writer{Path: path}
	if err := w.Write(openlp.Item{}, -1); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "PROGRAM,Body,Footer\r\nOFF,,\r\n" {
		t.Fatalf("file = %q, want blank overlay", got)
	}
}

func TestWriter_MissingDirectoryFails(t *testing.T) {
	w := Writer{Path: filepath.Join(t.TempDir(), "missing", "layer.csv")}
	if err := w.Write(openlp.Item{}, -1); err == nil {
		t.Fatalf("Write returned nil error, want error")
	}
}
