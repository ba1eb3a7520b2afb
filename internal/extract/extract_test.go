package extract

import (
	"strings"
	"testing"
)

func TestTextPlain(t *testing.T) {
	got, err := Text("resume.txt", []byte("Jane Doe\nGo developer"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != "Jane Doe\nGo developer" {
		t.Errorf("text = %q", got)
	}
}

func TestTextMarkdown(t *testing.T) {
	got, err := Text("RESUME.MD", []byte("# Jane Doe"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != "# Jane Doe" {
		t.Errorf("text = %q", got)
	}
}

func TestTextEmptyFile(t *testing.T) {
	if _, err := Text("resume.pdf", nil); err == nil {
		t.Error("expected an error for an empty file")
	}
}

func TestTextUnsupportedType(t *testing.T) {
	_, err := Text("resume.xlsx", []byte("data"))
	if err == nil {
		t.Fatal("expected an error for an unsupported type")
	}
	if !strings.Contains(err.Error(), ".xlsx") {
		t.Errorf("error should name the extension, got: %s", err)
	}
}

func TestTextCorruptPDF(t *testing.T) {
	if _, err := Text("resume.pdf", []byte("not a pdf")); err == nil {
		t.Error("expected an error for corrupt pdf bytes")
	}
}

func TestTextCorruptDOCX(t *testing.T) {
	if _, err := Text("resume.docx", []byte("not a docx")); err == nil {
		t.Error("expected an error for corrupt docx bytes")
	}
}
