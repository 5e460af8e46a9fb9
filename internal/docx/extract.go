// Package docx reads and writes the Word documents the tool exchanges:
// paragraph extraction for parsing uploaded lists, and rendering of
// generated lists in the two-column print layout.
//
// Only the small slice of WordprocessingML this tool needs is implemented;
// no third-party docx library is used.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const documentPath = "word/document.xml"

// ExtractBlocks reads a .docx archive and returns its paragraphs as text
// blocks, in document order. Line breaks inside a paragraph (<w:br>, <w:cr>)
// become "\n", tabs become "\t", matching how the lists were produced.
// Empty paragraphs are preserved as empty blocks.
func ExtractBlocks(r io.ReaderAt, size int64) ([]string, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("docx: open archive: %w", err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == documentPath {
			doc = f
			break
		}
	}
	if doc == nil {
		return nil, errors.New("docx: word/document.xml missing, not a Word document")
	}

	rc, err := doc.Open()
	if err != nil {
		return nil, fmt.Errorf("docx: open %s: %w", documentPath, err)
	}
	defer rc.Close()

	blocks, err := readParagraphs(rc)
	if err != nil {
		return nil, fmt.Errorf("docx: parse %s: %w", documentPath, err)
	}
	return blocks, nil
}

// ExtractFile is ExtractBlocks for a file on disk.
func ExtractFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("docx: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("docx: stat %s: %w", path, err)
	}

	return ExtractBlocks(f, info.Size())
}

// readParagraphs streams document XML and collects one text block per
// <w:p> element.
func readParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		blocks []string
		para   strings.Builder
		inPara bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inPara = true
				para.Reset()
			case "br", "cr":
				if inPara {
					para.WriteByte('\n')
				}
			case "tab":
				if inPara {
					para.WriteByte('\t')
				}
			case "t":
				if inPara {
					var text string
					if err := dec.DecodeElement(&text, &t); err != nil {
						return nil, err
					}
					para.WriteString(text)
				}
			}
		case xml.EndElement:
			if t.Name.Local == "p" && inPara {
				blocks = append(blocks, para.String())
				inPara = false
			}
		}
	}

	return blocks, nil
}
