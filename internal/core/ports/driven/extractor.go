package driven

// SectionBounds names the headings that delimit a section of a document.
// Content after Start and before End is part of the section.
type SectionBounds struct {
	Start string
	End   string
}

// SectionExtractor pulls paragraph text out of one section of an HTML page.
type SectionExtractor interface {
	// Paragraphs returns the text of every paragraph inside the section,
	// in document order, each followed by a newline.
	// A missing boundary heading yields domain.ErrSectionNotFound.
	Paragraphs(document string, bounds SectionBounds) (string, error)
}
