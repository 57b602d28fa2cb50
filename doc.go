// Package mdreport converts a small Markdown subset into paginated PDF reports.
//
// Conversion runs in three stages. Each source line is sanitized and
// classified into layout blocks (headings, paragraphs, bullets, fenced code,
// pipe tables). The blocks are laid out as styled HTML. Headless Chrome then
// prints that HTML to PDF.
//
// Basic usage:
//
//	conv, err := mdreport.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	if err := conv.RenderToFile(ctx, "# Report\n\nHello", "report.pdf"); err != nil {
//	    log.Fatal(err)
//	}
//
// The block stage never fails and can be used on its own:
//
//	for _, b := range mdreport.ToBlocks(source) {
//	    fmt.Println(b.Kind, b.Text)
//	}
//
// Use [ConverterPool] to convert many documents in parallel, each worker
// owning its own browser instance.
package mdreport
