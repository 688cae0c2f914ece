package service

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// TextExtractor is one PDF text-extraction provider. Providers are tried
// in a fixed priority order by the extraction service; the first one whose
// output is non-blank wins.
type TextExtractor interface {
	Name() string
	ExtractText(pdfData []byte) (string, error)
}

// pdfReaderExtractor is the primary provider. It walks embedded text row
// by row, which preserves line grouping better than plain page text.
type pdfReaderExtractor struct{}

func NewPDFReaderExtractor() TextExtractor {
	return &pdfReaderExtractor{}
}

func (e *pdfReaderExtractor) Name() string {
	return "pdfreader"
}

func (e *pdfReaderExtractor) ExtractText(pdfData []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", err
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		p := r.Page(pageIndex)
		if p.V.IsNull() {
			continue
		}

		rows, _ := p.GetTextByRow()
		for _, row := range rows {
			words := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				words = append(words, word.S)
			}
			textBuilder.WriteString(strings.Join(words, " "))
			textBuilder.WriteString("\n")
		}
	}
	return textBuilder.String(), nil
}

// contentStreamExtractor is the secondary provider. It extracts raw page
// content streams with pdfcpu and mines the text-show operators out of
// them. Cruder than the reader, but it copes with some documents the
// primary provider cannot open.
type contentStreamExtractor struct{}

func NewContentStreamExtractor() TextExtractor {
	return &contentStreamExtractor{}
}

func (e *contentStreamExtractor) Name() string {
	return "pdfcpu"
}

func (e *contentStreamExtractor) ExtractText(pdfData []byte) (string, error) {
	tempDir, err := os.MkdirTemp("", "pdf_content")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	tempFile, err := os.CreateTemp("", "doc-*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(pdfData); err != nil {
		tempFile.Close()
		return "", fmt.Errorf("failed to write pdf data: %w", err)
	}
	tempFile.Close()

	conf := model.NewDefaultConfiguration()
	if err := api.ExtractContentFile(tempFile.Name(), tempDir, nil, conf); err != nil {
		return "", fmt.Errorf("failed to extract content streams: %w", err)
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		return "", fmt.Errorf("failed to read temp dir: %w", err)
	}

	var textBuilder strings.Builder
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(tempDir, entry.Name()))
		if err != nil {
			continue
		}
		textBuilder.WriteString(mineContentText(string(content)))
	}
	return textBuilder.String(), nil
}

var (
	textShowRe      = regexp.MustCompile(`\(((?:\\.|[^\\()])*)\)\s*Tj`)
	textShowArrayRe = regexp.MustCompile(`\[((?:\\.|[^\]])*)\]\s*TJ`)
	literalStringRe = regexp.MustCompile(`\(((?:\\.|[^\\()])*)\)`)
)

var pdfStringUnescaper = strings.NewReplacer(
	`\n`, "\n",
	`\r`, "\r",
	`\t`, "\t",
	`\(`, "(",
	`\)`, ")",
	`\\`, `\`,
)

// mineContentText pulls the literal strings out of Tj and TJ text-show
// operators in a page content stream. One operator becomes one output
// line; exact layout is not recoverable at this level, which is fine for
// a fallback - the downstream parser is built for linearized text.
func mineContentText(content string) string {
	var b strings.Builder
	for _, m := range textShowRe.FindAllStringSubmatch(content, -1) {
		if s := pdfStringUnescaper.Replace(m[1]); strings.TrimSpace(s) != "" {
			b.WriteString(s)
			b.WriteString("\n")
		}
	}
	for _, m := range textShowArrayRe.FindAllStringSubmatch(content, -1) {
		var line strings.Builder
		for _, s := range literalStringRe.FindAllStringSubmatch(m[1], -1) {
			line.WriteString(pdfStringUnescaper.Replace(s[1]))
		}
		if strings.TrimSpace(line.String()) != "" {
			b.WriteString(line.String())
			b.WriteString("\n")
		}
	}
	return b.String()
}
