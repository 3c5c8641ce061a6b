package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadTSV reads a tab-separated table with a header row naming at least
// the article_id and text columns. Record order is preserved. A missing
// file or missing column is an error; callers treat it as fatal since
// no processing has started yet.
func ReadTSV(path string) ([]Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input file not found: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idCol, textCol := -1, -1
	for i, name := range header {
		switch name {
		case "article_id":
			idCol = i
		case "text":
			textCol = i
		}
	}
	if idCol < 0 || textCol < 0 {
		return nil, fmt.Errorf("input must have article_id and text columns, got %v", header)
	}

	var articles []Article
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		articles = append(articles, Article{
			ID:   record[idCol],
			Text: record[textCol],
		})
	}
	return articles, nil
}
