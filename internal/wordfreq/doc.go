// Package wordfreq turns extracted article text into ranked word counts.
//
// The package is pure: every function takes the previous stage's output
// and returns a new value. The stages are, in order:
//
//   - Sanitize: strip punctuation runs, sentence periods and line breaks
//   - Count: split on spaces and tally tokens containing a letter
//   - Rank: order words by descending count
//   - Top: drop excluded words and keep the first n rows
package wordfreq
