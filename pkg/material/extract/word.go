package extract

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strings"
)

// fromWord reads the main document part of a .docx archive and concatenates
// its text runs, one line per paragraph. Legacy binary .doc files are not zip
// archives and come back empty.
func fromWord(path string) string {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return ""
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return ""
		}
		defer rc.Close()
		return docxText(rc)
	}
	return ""
}

func docxText(r io.Reader) string {
	dec := xml.NewDecoder(r)
	var b strings.Builder
	inRun := false
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inRun {
				b.Write(t)
			}
		}
	}
	return strings.TrimSpace(b.String())
}
