package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/pagescribe"
)

// Compile-time interface verification.
var _ pagescribe.Archive = (*ArchiveService)(nil)

// ArchiveService implements pagescribe.Archive using SQLite. One row
// per source URL; saving an already-archived URL replaces the row.
type ArchiveService struct {
	db *DB
}

// NewArchiveService creates a new ArchiveService.
func NewArchiveService(db *DB) *ArchiveService {
	return &ArchiveService{db: db}
}

// SaveDocument inserts or replaces the entry for the document's source URL.
func (s *ArchiveService) SaveDocument(ctx context.Context, doc *pagescribe.ContentDocument) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	sections, err := encodeSections(doc.Sections)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (source_url, title, description, sections, content_hash, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_url) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			sections = excluded.sections,
			content_hash = excluded.content_hash,
			extracted_at = excluded.extracted_at
	`, doc.Metadata.SourceURL, doc.Title, doc.Metadata.Description, sections,
		doc.Hash(), doc.Metadata.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByURL retrieves the archived document for a source URL.
func (s *ArchiveService) FindDocumentByURL(ctx context.Context, url string) (*pagescribe.ContentDocument, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT source_url, title, description, sections, extracted_at
		FROM documents
		WHERE source_url = ?
	`, url)

	doc, err := scanDocument(row.Scan)
	if err == sql.ErrNoRows {
		return nil, pagescribe.Errorf(pagescribe.ENOTFOUND, "document not archived")
	}
	return doc, err
}

// FindDocuments retrieves all archived documents ordered by source URL.
func (s *ArchiveService) FindDocuments(ctx context.Context) ([]*pagescribe.ContentDocument, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT source_url, title, description, sections, extracted_at
		FROM documents
		ORDER BY source_url ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*pagescribe.ContentDocument
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes an archived document.
func (s *ArchiveService) DeleteDocument(ctx context.Context, url string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE source_url = ?", url)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pagescribe.Errorf(pagescribe.ENOTFOUND, "document not archived")
	}

	return nil
}

// Close closes the underlying database.
func (s *ArchiveService) Close() error {
	return s.db.Close()
}

// scanDocument reads one archived row through the given Scan function.
func scanDocument(scan func(dest ...any) error) (*pagescribe.ContentDocument, error) {
	var doc pagescribe.ContentDocument
	var sections, extractedAt string

	if err := scan(&doc.Metadata.SourceURL, &doc.Title, &doc.Metadata.Description,
		&sections, &extractedAt); err != nil {
		return nil, err
	}

	var err error
	doc.Sections, err = decodeSections(sections)
	if err != nil {
		return nil, err
	}

	doc.Metadata.ExtractedAt, err = time.Parse(time.RFC3339, extractedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse extracted_at: %w", err)
	}

	return &doc, nil
}

// sectionRecord is the persisted form of a section. The type tag picks
// the concrete variant on decode.
type sectionRecord struct {
	Type    string   `json:"type"`
	Level   int      `json:"level,omitempty"`
	Text    string   `json:"text,omitempty"`
	Ordered bool     `json:"ordered,omitempty"`
	Items   []string `json:"items,omitempty"`
}

func encodeSections(sections []pagescribe.Section) (string, error) {
	records := make([]sectionRecord, 0, len(sections))
	for _, section := range sections {
		switch s := section.(type) {
		case pagescribe.Heading:
			records = append(records, sectionRecord{Type: "heading", Level: s.Level, Text: s.Text})
		case pagescribe.Paragraph:
			records = append(records, sectionRecord{Type: "paragraph", Text: s.Text})
		case pagescribe.List:
			records = append(records, sectionRecord{Type: "list", Ordered: s.Ordered, Items: s.Items})
		case pagescribe.Quote:
			records = append(records, sectionRecord{Type: "quote", Text: s.Text})
		default:
			return "", pagescribe.Errorf(pagescribe.EINTERNAL, "unknown section type %T", section)
		}
	}

	out, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func decodeSections(data string) ([]pagescribe.Section, error) {
	var records []sectionRecord
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, fmt.Errorf("failed to decode sections: %w", err)
	}

	var sections []pagescribe.Section
	for _, r := range records {
		switch r.Type {
		case "heading":
			sections = append(sections, pagescribe.Heading{Level: r.Level, Text: r.Text})
		case "paragraph":
			sections = append(sections, pagescribe.Paragraph{Text: r.Text})
		case "list":
			sections = append(sections, pagescribe.List{Ordered: r.Ordered, Items: r.Items})
		case "quote":
			sections = append(sections, pagescribe.Quote{Text: r.Text})
		default:
			return nil, pagescribe.Errorf(pagescribe.EINTERNAL, "unknown section type %q", r.Type)
		}
	}

	return sections, nil
}
