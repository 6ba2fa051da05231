package domain

// WordCount pairs a word with the number of times it occurred.
type WordCount struct {
	Word  string
	Count int
}

// FrequencyTable maps words to occurrence counts.
// Keys are case sensitive and compared verbatim. The table also remembers
// the order in which each word was first seen so that ranking can break
// ties deterministically.
type FrequencyTable struct {
	counts map[string]int
	order  []string
	total  int
}

// NewFrequencyTable creates an empty frequency table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{
		counts: make(map[string]int),
	}
}

// Add records one occurrence of word.
func (t *FrequencyTable) Add(word string) {
	if _, ok := t.counts[word]; !ok {
		t.order = append(t.order, word)
	}
	t.counts[word]++
	t.total++
}

// Count returns the occurrences of word, or 0 if it was never added.
func (t *FrequencyTable) Count(word string) int {
	return t.counts[word]
}

// Len returns the number of distinct words.
func (t *FrequencyTable) Len() int {
	return len(t.order)
}

// Total returns the sum of all counts.
func (t *FrequencyTable) Total() int {
	return t.total
}

// Words returns the distinct words in first-occurrence order.
func (t *FrequencyTable) Words() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Entries returns every word with its count in first-occurrence order.
func (t *FrequencyTable) Entries() []WordCount {
	out := make([]WordCount, 0, len(t.order))
	for _, w := range t.order {
		out = append(out, WordCount{Word: w, Count: t.counts[w]})
	}
	return out
}

// Exclusions is the ordered list of words a user wants left out of a report.
// Membership is an exact string match: no case folding and no trimming.
type Exclusions []string

// Contains reports whether word appears verbatim in the list.
func (e Exclusions) Contains(word string) bool {
	for _, x := range e {
		if x == word {
			return true
		}
	}
	return false
}
