package wordfreq

import "regexp"

// Pre-compiled regular expressions for sanitisation.
var (
	// punctuationRun matches a maximal run of stripped punctuation.
	punctuationRun = regexp.MustCompile(`[;:#&,()"“”]+`)

	// sentencePeriod matches a period followed by whitespace, including
	// vertical tab, NEL and the Unicode space separators such as NBSP.
	sentencePeriod = regexp.MustCompile(`\.[\s\v\x{85}\p{Z}]`)

	lineSeparator = regexp.MustCompile(`\r\n|\n|\r`)
)

// Sanitize reduces paragraph text to a single line of space separated words.
// Apostrophes and periods inside tokens (abbreviations, numbers) are kept.
func Sanitize(text string) string {
	text = StripPunctuation(text)
	text = sentencePeriod.ReplaceAllString(text, " ")
	return lineSeparator.ReplaceAllString(text, " ")
}

// StripPunctuation replaces every run of ; : # & , ( ) " “ ” with one space.
func StripPunctuation(text string) string {
	return punctuationRun.ReplaceAllString(text, " ")
}
