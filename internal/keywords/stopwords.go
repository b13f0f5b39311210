package keywords

var stopwords = func() map[string]struct{} {
	words := []string{
		"a", "about", "above", "after", "again", "against", "all", "also", "am", "an",
		"and", "any", "are", "around", "as", "at", "be", "because", "been", "before",
		"being", "below", "between", "both", "but", "by", "can", "could", "did", "do",
		"does", "doing", "down", "during", "each", "either", "even", "ever", "every",
		"few", "for", "from", "further", "had", "has", "have", "having", "he", "her",
		"here", "hers", "herself", "him", "himself", "his", "how", "however", "i", "if",
		"in", "into", "is", "it", "it's", "its", "itself", "just", "last", "least",
		"less", "like", "made", "make", "many", "may", "me", "might", "more", "most",
		"much", "must", "my", "myself", "new", "no", "nor", "not", "now", "of", "off",
		"on", "once", "one", "only", "or", "other", "our", "ours", "ourselves", "out",
		"over", "own", "per", "rather", "said", "same", "says", "she", "should", "since",
		"so", "some", "still", "such", "than", "that", "that's", "the", "their", "theirs",
		"them", "themselves", "then", "there", "these", "they", "this", "those", "though",
		"through", "to", "too", "under", "until", "up", "upon", "us", "very", "via", "was",
		"we", "were", "what", "when", "where", "whether", "which", "while", "who", "whom",
		"whose", "why", "will", "with", "within", "without", "would", "yet", "you", "your",
		"yours", "yourself", "yourselves",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()

func isStopword(w string) bool {
	_, ok := stopwords[w]
	return ok
}
