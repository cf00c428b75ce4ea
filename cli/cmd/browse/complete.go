package browse

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/phparr/lang"
)

// isWordBoundary reports whether r delimits the word being completed.
// Dots and hyphens are part of a word so that whole key paths complete at
// once.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t',
		'(', ')', '[', ']',
		'+', '*', '/', '%',
		'<', '>', '=', '!',
		'&', '|', ',', '?', ':', ';':
		return true
	}

	return false
}

// wordBounds returns the word at the cursor position and its byte
// boundaries within input. The word is empty when the cursor sits on a
// boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// index maps every key path of v, containers included, to its value.
// Paths are returned in document order.
func index(v *lang.Value) (paths []string, values map[string]*lang.Value) {
	values = make(map[string]*lang.Value)

	var walk func(prefix string, v *lang.Value)

	walk = func(prefix string, v *lang.Value) {
		join := func(seg string) string {
			if prefix == "" {
				return seg
			}

			return prefix + "." + seg
		}

		visit := func(path string, child *lang.Value) {
			paths = append(paths, path)
			values[path] = child
			walk(path, child)
		}

		switch v.Kind {
		case lang.KindMap:
			for key, child := range v.Map.All() {
				visit(join(key.String()), child)
			}

		case lang.KindList:
			for i, child := range v.List {
				visit(join(strconv.Itoa(i)), child)
			}

		default:
		}
	}

	walk("", v)

	return paths, values
}

// findMatches returns the candidates matching word, best first. An empty
// word matches nothing.
func findMatches(word string, candidates []string) fuzzy.Matches {
	if word == "" {
		return nil
	}

	return fuzzy.Find(word, candidates)
}

// renderCandidateBar renders matches on one line, truncated with an
// ellipsis at width. The selected candidate is highlighted while tabbing.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)

		entryWidth := lipgloss.Width(rendered)
		if i > 0 {
			entryWidth += sepWidth
		}

		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle := suggestionStyle
	highlightStyle := matchStyle

	if selected {
		baseStyle = selectedStyle
		highlightStyle = selectedMatchStyle
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matchSet[i] {
			b.WriteString(highlightStyle.Render(string(r)))
		} else {
			b.WriteString(baseStyle.Render(string(r)))
		}
	}

	return b.String()
}
