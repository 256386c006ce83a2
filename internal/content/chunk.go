package content

// Chunks splits text into fixed-width segments of at most maxLen runes.
// Telegram counts characters, not bytes, so slicing happens on runes.
// Concatenating the segments reproduces the input exactly.
func Chunks(text string, maxLen int) []string {
	if text == "" {
		return nil
	}
	if maxLen <= 0 {
		return []string{text}
	}
	runes := []rune(text)
	out := make([]string, 0, (len(runes)+maxLen-1)/maxLen)
	for i := 0; i < len(runes); i += maxLen {
		end := i + maxLen
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[i:end]))
	}
	return out
}
