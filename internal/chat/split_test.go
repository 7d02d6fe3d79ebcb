package chat

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func checkChunks(t *testing.T, text string, limit int, chunks []string) {
	t.Helper()
	if got := strings.Join(chunks, ""); got != text {
		t.Fatalf("chunks do not rebuild the text")
	}
	for i, c := range chunks {
		if n := Length(c); n > limit || n == 0 {
			t.Fatalf("chunk %d has %d units, limit %d", i, n, limit)
		}
		if !utf8.ValidString(c) {
			t.Fatalf("chunk %d is not valid UTF-8", i)
		}
	}
}

func TestSplitShortText(t *testing.T) {
	for _, text := range []string{"", "Margarita", strings.Repeat("a", MaxMessageLength)} {
		got := Split(text, MaxMessageLength)
		if len(got) != 1 || got[0] != text {
			t.Fatalf("short text was split into %d chunks", len(got))
		}
	}
}

func TestSplitAtLineBreakNearMiddle(t *testing.T) {
	text := "Negroni\nMojito\nMartini"
	got := Split(text, 12)
	want := []string{"Negroni\n", "Mojito\n", "Martini"}
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
}

func TestSplitFallsBackToSpaces(t *testing.T) {
	text := "gin tonic with lime"
	got := Split(text, 10)
	checkChunks(t, text, 10, got)
	if got[0] != "gin tonic " {
		t.Fatalf("first chunk %q does not end at a space", got[0])
	}
}

func TestSplitHardCut(t *testing.T) {
	text := strings.Repeat("x", 25)
	checkChunks(t, text, 10, Split(text, 10))
}

func TestSplitKeepsRunesWhole(t *testing.T) {
	text := strings.Repeat("Коктейль ", 1200)
	chunks := Split(text, MaxMessageLength)
	if len(chunks) < 3 {
		t.Fatalf("expected at least 3 chunks, got %d", len(chunks))
	}
	checkChunks(t, text, MaxMessageLength, chunks)
}

func TestSplitLongList(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 3000; i++ {
		b.WriteString("Ingredient name\n")
	}
	text := b.String()
	chunks := Split(text, MaxMessageLength)
	checkChunks(t, text, MaxMessageLength, chunks)
	for i, c := range chunks[:len(chunks)-1] {
		if !strings.HasSuffix(c, "\n") {
			t.Fatalf("chunk %d does not end at a line break", i)
		}
	}
}

func TestSplitDefaultLimit(t *testing.T) {
	text := strings.Repeat("a ", MaxMessageLength)
	checkChunks(t, text, MaxMessageLength, Split(text, 0))
}

func TestLengthCountsUTF16Units(t *testing.T) {
	cases := map[string]int{
		"":         0,
		"Mojito":   6,
		"Коктейль": 8,
		"🍸":        2,
		"🍹 Punch":  8,
	}
	for text, want := range cases {
		if got := Length(text); got != want {
			t.Fatalf("Length(%q) = %d, want %d", text, got, want)
		}
	}
}

func TestSplitCountsEmojiTwice(t *testing.T) {
	text := strings.Repeat("🍋", 3000)
	if n := utf8.RuneCountInString(text); n > MaxMessageLength {
		t.Fatalf("fixture has %d runes, want it under the limit", n)
	}
	chunks := Split(text, MaxMessageLength)
	if len(chunks) < 2 {
		t.Fatalf("expected the text to be split, got %d chunk", len(chunks))
	}
	checkChunks(t, text, MaxMessageLength, chunks)
}

func TestSplitSingleWideRuneOverTinyLimit(t *testing.T) {
	if got := Split("🍋", 1); len(got) != 1 || got[0] != "🍋" {
		t.Fatalf("got %q", got)
	}
}
