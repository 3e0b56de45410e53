package corpus

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/DrJoeShmo/bigdataclass2018/models"
	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// LoadHTML reads an HTML book edition and reduces it to author-tagged line
// records. go-readability extracts the main content; if it yields nothing
// (front matter, bare markup), the whole body text is taken via goquery.
func LoadHTML(path, author string) ([]models.LineRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus %s: %w", path, err)
	}

	fileURL := &url.URL{Scheme: "file", Path: path}

	text := ""
	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(string(data)), fileURL)
	if err == nil {
		text = article.TextContent
	}
	if strings.TrimSpace(text) == "" {
		text, err = bodyText(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
	}

	var records []models.LineRecord
	for _, line := range strings.Split(text, "\n") {
		records = append(records, models.LineRecord{Author: author, Raw: line})
	}
	return records, nil
}

// bodyText strips script/style nodes and returns the document's body text.
func bodyText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	doc.Find("script,style,noscript").Remove()
	return doc.Find("body").Text(), nil
}
