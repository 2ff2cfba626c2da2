package condense

// Chunk splits text into contiguous windows of window characters. Each
// subsequent window starts overlap characters before the end of the previous
// one, so distributed facts survive window boundaries. The final window may
// be shorter. Precondition: 0 <= overlap < window (validated at startup via
// Config.Validate).
func Chunk(text string, window, overlap int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= window {
		return []string{text}
	}
	stride := window - overlap
	chunks := make([]string, 0, (len(text)+stride-1)/stride)
	for start := 0; start < len(text); start += stride {
		end := start + window
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			break
		}
		chunks = append(chunks, text[start:end])
	}
	return chunks
}
