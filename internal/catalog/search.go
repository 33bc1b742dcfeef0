package catalog

import "strings"

const (
	minQueryLen = 2
	maxResults  = 10
)

type SearchEntry struct {
	Title    string `json:"title"`
	Section  string `json:"section"`
	URL      string `json:"url"`
	Keywords string `json:"-"`
}

var searchIndex = []SearchEntry{
	{Title: "What is Artificial Intelligence?", Section: "foundations", URL: "/foundations#what-is-ai", Keywords: "ai definition intelligence turing history"},
	{Title: "Types of AI Systems", Section: "foundations", URL: "/foundations#types", Keywords: "narrow general superintelligence agi"},
	{Title: "Supervised Learning", Section: "learning", URL: "/learning#supervised", Keywords: "labels regression classification training data"},
	{Title: "Unsupervised Learning", Section: "learning", URL: "/learning#unsupervised", Keywords: "clustering dimensionality reduction patterns"},
	{Title: "Reinforcement Learning", Section: "learning", URL: "/learning#reinforcement", Keywords: "reward agent environment policy q-learning"},
	{Title: "The Perceptron", Section: "neural", URL: "/neural#perceptron", Keywords: "neuron weights bias activation"},
	{Title: "Backpropagation", Section: "neural", URL: "/neural#backprop", Keywords: "gradient descent chain rule training"},
	{Title: "Convolutional Networks", Section: "deep", URL: "/deep#cnn", Keywords: "cnn image vision filters pooling"},
	{Title: "Recurrent Networks", Section: "deep", URL: "/deep#rnn", Keywords: "rnn lstm sequence memory"},
	{Title: "Transformers and Attention", Section: "modern", URL: "/modern#transformers", Keywords: "attention gpt bert self-attention llm"},
	{Title: "Large Language Models", Section: "modern", URL: "/modern#llm", Keywords: "llm chatgpt generative pretraining tokens"},
	{Title: "Sequential Decision Flow", Section: "sequential", URL: "/sequential", Keywords: "pipeline steps workflow chain"},
	{Title: "Bias and Fairness", Section: "ethics", URL: "/ethics#bias", Keywords: "bias fairness discrimination datasets"},
	{Title: "AI Safety and Alignment", Section: "ethics", URL: "/ethics#safety", Keywords: "safety alignment risk control"},
	{Title: "AI Glossary", Section: "glossary", URL: "/glossary", Keywords: "terms definitions vocabulary"},
}

// Search does a case-insensitive substring match over the static index.
// Queries shorter than two characters match nothing.
func Search(query string) []SearchEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < minQueryLen {
		return []SearchEntry{}
	}
	results := make([]SearchEntry, 0, maxResults)
	for _, e := range searchIndex {
		if strings.Contains(strings.ToLower(e.Title), query) ||
			strings.Contains(strings.ToLower(e.Keywords), query) ||
			strings.Contains(strings.ToLower(e.Section), query) {
			results = append(results, e)
			if len(results) == maxResults {
				break
			}
		}
	}
	return results
}
