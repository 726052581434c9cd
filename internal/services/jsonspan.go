package services

import "strings"

// LLM completions are untrusted text that usually, but not always, contain
// the JSON we asked for — often wrapped in prose or markdown fences. The
// recovery policy is deliberately crude: take the widest span between the
// first opening and last closing bracket and let json.Unmarshal be the
// judge. No span means no data.

func firstJSONArray(text string) (string, bool) {
	return spanBetween(text, '[', ']')
}

func firstJSONObject(text string) (string, bool) {
	return spanBetween(text, '{', '}')
}

func spanBetween(text string, open, close byte) (string, bool) {
	start := strings.IndexByte(text, open)
	if start == -1 {
		return "", false
	}
	end := strings.LastIndexByte(text, close)
	if end <= start {
		return "", false
	}
	return text[start : end+1], true
}
