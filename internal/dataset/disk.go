package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
)

const datasetFile = "data.parquet"

// parquetRow is the on-disk schema: one row per article with the chunk
// and embedding columns as (nested) lists.
type parquetRow struct {
	ArticleID  string      `parquet:"article_id"`
	Chunks     []string    `parquet:"chunk,list"`
	Embeddings [][]float32 `parquet:"embedding,list"`
}

// DiskStore persists processed articles as a parquet dataset directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the output directory if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the dataset directory.
func (s *DiskStore) Dir() string {
	return s.dir
}

// SaveAll writes all articles to a single parquet file in one pass.
func (s *DiskStore) SaveAll(ctx context.Context, articles []ProcessedArticle) error {
	f, err := os.Create(filepath.Join(s.dir, datasetFile))
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}

	w := parquet.NewGenericWriter[parquetRow](f)
	rows := make([]parquetRow, 0, len(articles))
	for _, a := range articles {
		embs := make([][]float32, len(a.Embeddings))
		for i, v := range a.Embeddings {
			embs[i] = v
		}
		rows = append(rows, parquetRow{
			ArticleID:  a.ArticleID,
			Chunks:     a.Chunks,
			Embeddings: embs,
		})
	}
	if len(rows) > 0 {
		if _, err := w.Write(rows); err != nil {
			f.Close()
			return fmt.Errorf("failed to write dataset rows: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to finalize dataset: %w", err)
	}
	return f.Close()
}
