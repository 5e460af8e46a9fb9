package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Print layout, in OOXML units: margins and column gap in twips, font size
// in half-points, paragraph spacing in twentieths of a point.
const (
	pageWidth    = 11906 // A4
	pageHeight   = 16838
	pageMargin   = 720 // 1.27 cm
	columnCount  = 2
	columnSpace  = 284 // 0.5 cm
	fontName     = "Cambria"
	fontSizeHalf = 22 // 11 pt
	spacingAfter = 80 // 4 pt
	headerMargin = 708
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// Same shape the parser recognizes; the renderer needs it independently to
// split the number from the bold part of an entry line.
var entryLinePattern = regexp.MustCompile(`^(\d+)\.\s+(.+?)\s*\(([^)]+)\)\s*[–-]\s*(.+)$`)

// Render produces a .docx document from list text, one paragraph per line.
// Category headers and the headword part of entry lines are bold, entry
// numbers stay regular, and the page is set in two narrow-margin columns.
func Render(text string) ([]byte, error) {
	var doc bytes.Buffer
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	doc.WriteString("\n")
	doc.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	for _, line := range strings.Split(text, "\n") {
		writeParagraph(&doc, strings.TrimRight(line, "\r"))
	}

	fmt.Fprintf(&doc, `<w:sectPr><w:pgSz w:w="%d" w:h="%d"/>`, pageWidth, pageHeight)
	fmt.Fprintf(&doc, `<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="%d" w:footer="%d" w:gutter="0"/>`,
		pageMargin, pageMargin, pageMargin, pageMargin, headerMargin, headerMargin)
	fmt.Fprintf(&doc, `<w:cols w:num="%d" w:space="%d"/>`, columnCount, columnSpace)
	doc.WriteString(`</w:sectPr></w:body></w:document>`)

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{documentPath, doc.String()},
	}
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("docx: create %s: %w", p.name, err)
		}
		if _, err := w.Write([]byte(p.data)); err != nil {
			return nil, fmt.Errorf("docx: write %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("docx: close archive: %w", err)
	}
	return out.Bytes(), nil
}

func writeParagraph(buf *bytes.Buffer, line string) {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" {
		buf.WriteString(`<w:p><w:pPr><w:spacing w:after="0"/></w:pPr></w:p>`)
		return
	}

	fmt.Fprintf(buf, `<w:p><w:pPr><w:spacing w:after="%d"/></w:pPr>`, spacingAfter)

	switch {
	case isHeaderLine(trimmed):
		writeRun(buf, trimmed, true)
	default:
		if m := entryLinePattern.FindStringSubmatch(trimmed); m != nil {
			writeRun(buf, m[1]+". ", false)
			writeRun(buf, fmt.Sprintf("%s (%s) – %s", m[2], m[3], m[4]), true)
		} else {
			writeRun(buf, trimmed, false)
		}
	}

	buf.WriteString(`</w:p>`)
}

func writeRun(buf *bytes.Buffer, text string, bold bool) {
	buf.WriteString(`<w:r><w:rPr>`)
	fmt.Fprintf(buf, `<w:rFonts w:ascii="%s" w:hAnsi="%s" w:eastAsia="%s"/>`, fontName, fontName, fontName)
	fmt.Fprintf(buf, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, fontSizeHalf, fontSizeHalf)
	if bold {
		buf.WriteString(`<w:b/>`)
	}
	buf.WriteString(`</w:rPr><w:t xml:space="preserve">`)
	buf.WriteString(escapeXML(text))
	buf.WriteString(`</w:t></w:r>`)
}

// isHeaderLine mirrors the parser's category-header rule: no lowercase
// letters, at least one uppercase one, longer than two runes.
func isHeaderLine(s string) bool {
	if utf8.RuneCountInString(s) <= 2 {
		return false
	}
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

func escapeXML(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
