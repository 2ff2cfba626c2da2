package condense

import (
	"fmt"
	"strings"
	"testing"
)

func TestChunkRoundTrip(t *testing.T) {
	cases := []struct {
		length  int
		window  int
		overlap int
	}{
		{0, 10, 2},
		{5, 10, 2},
		{10, 10, 2},
		{11, 10, 2},
		{100, 10, 2},
		{101, 10, 9},
		{2000, 64, 16},
		{2048, 64, 0},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("len=%d_w=%d_o=%d", tc.length, tc.window, tc.overlap), func(t *testing.T) {
			var b strings.Builder
			for i := 0; i < tc.length; i++ {
				b.WriteByte(byte('a' + i%26))
			}
			text := b.String()

			chunks := Chunk(text, tc.window, tc.overlap)

			// Stripping the overlap from all but the first chunk must
			// reconstruct the input exactly.
			var joined strings.Builder
			for i, chunk := range chunks {
				if i == 0 {
					joined.WriteString(chunk)
					continue
				}
				joined.WriteString(chunk[tc.overlap:])
			}
			if joined.String() != text {
				t.Fatalf("round-trip mismatch: got %d chars, want %d", joined.Len(), len(text))
			}
		})
	}
}

func TestChunkWindowSizes(t *testing.T) {
	text := strings.Repeat("x", 25)
	chunks := Chunk(text, 10, 2)
	for i, chunk := range chunks {
		if len(chunk) > 10 {
			t.Fatalf("chunk %d exceeds window: %d chars", i, len(chunk))
		}
	}
	if len(chunks) == 0 {
		t.Fatal("expected at least one chunk")
	}
	if last := chunks[len(chunks)-1]; len(last) == 0 {
		t.Fatal("last chunk must not be empty")
	}
}

func TestChunkShortTextIsSingleWindow(t *testing.T) {
	chunks := Chunk("short", 100, 10)
	if len(chunks) != 1 || chunks[0] != "short" {
		t.Fatalf("got %v", chunks)
	}
}

func TestValidateRejectsStallingOverlap(t *testing.T) {
	cfg := &Config{WindowChars: 100, OverlapChars: 100}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for overlap == window")
	}
	cfg = &Config{WindowChars: 100, OverlapChars: 10}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
