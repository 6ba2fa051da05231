// Package wikihtml implements driven.SectionExtractor for Wikipedia articles.
//
// Sections are located by the id of their heading rather than by matching
// raw markup, so both the legacy layout
//
//	<h2><span class="mw-headline" id="History">History</span></h2>
//
// and the current one
//
//	<div class="mw-heading mw-heading2"><h2 id="History">History</h2></div>
//
// are recognised. Only <p> elements between the start heading and the end
// heading contribute text; headings, captions, tables and lists do not.
//
// Paragraph text keeps entity references as written in the page, so a
// citation marker such as &#91;1&#93; reaches the sanitizer as punctuation
// and digits instead of a "[1]" glued to the preceding word.
package wikihtml
