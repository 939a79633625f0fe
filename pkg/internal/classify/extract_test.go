package classify

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractTextPlain(t *testing.T) {
	file := &InputFile{
		Name:        "notes.txt",
		ContentType: "text/plain",
		Content:     []byte("meeting notes from monday"),
	}

	if got := ExtractText(file); got != "meeting notes from monday" {
		t.Fatalf("expected raw content, got %q", got)
	}
}

func TestExtractTextJSON(t *testing.T) {
	file := &InputFile{
		Name:        "data.json",
		ContentType: "application/json",
		Content:     []byte(`{"k":"v"}`),
	}

	if got := ExtractText(file); got != `{"k":"v"}` {
		t.Fatalf("expected raw content, got %q", got)
	}
}

func TestExtractTextPDFPlaceholder(t *testing.T) {
	file := &InputFile{
		Name:        "report.pdf",
		Size:        2048,
		ContentType: "application/pdf",
		Content:     []byte{0x25, 0x50, 0x44, 0x46},
	}

	got := ExtractText(file)

	if !strings.HasPrefix(got, "PDF Document: report.pdf") {
		t.Fatalf("expected PDF placeholder, got %q", got)
	}

	if !strings.Contains(got, "Size: 2048 bytes") {
		t.Fatalf("placeholder should carry the size, got %q", got)
	}
}

func TestExtractTextGenericPlaceholder(t *testing.T) {
	file := &InputFile{
		Name:        "archive.zip",
		Size:        512,
		ContentType: "application/zip",
	}

	got := ExtractText(file)

	if !strings.HasPrefix(got, "Document: archive.zip") {
		t.Fatalf("expected generic placeholder, got %q", got)
	}

	if !strings.Contains(got, "Type: application/zip") {
		t.Fatalf("placeholder should carry the content type, got %q", got)
	}
}

func TestDocumentMetadata(t *testing.T) {
	meta := documentMetadata("one two three")

	if meta.WordCount != 3 {
		t.Fatalf("expected 3 words, got %d", meta.WordCount)
	}

	if meta.PageCount != 1 {
		t.Fatalf("expected 1 page, got %d", meta.PageCount)
	}

	if meta.Language != "en" {
		t.Fatalf("expected language en, got %q", meta.Language)
	}
}

func TestDocumentMetadataPageRounding(t *testing.T) {
	words := make([]string, 251)
	for i := range words {
		words[i] = "word"
	}

	meta := documentMetadata(strings.Join(words, " "))

	if meta.WordCount != 251 {
		t.Fatalf("expected 251 words, got %d", meta.WordCount)
	}

	// 251 words at 250 per page rounds up to 2
	if meta.PageCount != 2 {
		t.Fatalf("expected 2 pages, got %d", meta.PageCount)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("short", 10); got != "short" {
		t.Fatalf("text under the cap should pass through, got %q", got)
	}

	if got := truncateText("abcdef", 4); got != "abcd" {
		t.Fatalf("expected byte cap on ASCII, got %q", got)
	}

	// "é" is two bytes; a cap landing mid-rune backs off to the boundary
	if got := truncateText("aé", 2); got != "a" {
		t.Fatalf("expected rune-boundary trim, got %q", got)
	}

	long := strings.Repeat("日本語", 100)
	for _, max := range []int{1, 2, 3, 4, 100, 299} {
		got := truncateText(long, max)

		if len(got) > max {
			t.Errorf("max %d: result is %d bytes", max, len(got))
		}

		if !utf8.ValidString(got) {
			t.Errorf("max %d: result %q is not valid UTF-8", max, got)
		}
	}
}

func TestInputFileKey(t *testing.T) {
	file := &InputFile{Name: "a.txt", Size: 10}

	key := file.Key()
	if !strings.HasPrefix(key, "a.txt-10-") {
		t.Fatalf("unexpected key %q", key)
	}
}

func TestInputFileIsImage(t *testing.T) {
	img := &InputFile{ContentType: "image/png"}
	if !img.IsImage() {
		t.Fatal("image/png should be an image")
	}

	doc := &InputFile{ContentType: "application/pdf"}
	if doc.IsImage() {
		t.Fatal("application/pdf should not be an image")
	}
}
