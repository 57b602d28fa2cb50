// Package pipeline turns Markdown text into layout blocks.
//
// It covers the stages that decide what the document contains:
//   - Sanitize normalizes glyphs and strips control characters per line
//   - FormatInline escapes HTML and converts **bold** and *italic*
//   - ToBlocks classifies lines into headings, paragraphs, list items,
//     spacers, code blocks and tables
//
// Page layout is handled separately by the render package and PDF output by
// the root mdreport package using headless Chrome (go-rod). This package
// never fails and never touches the file system.
package pipeline
