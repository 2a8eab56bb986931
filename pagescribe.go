// Package pagescribe turns web pages into analysis-ready documents.
// It fetches a page, strips boilerplate (navigation, scripts, forms,
// repeated chrome), extracts the structured content as typed sections
// (headings, paragraphs, lists, quotes), and renders the result as
// Markdown, plain text, or a paginated PDF.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// rod/, gofpdf/).
package pagescribe
