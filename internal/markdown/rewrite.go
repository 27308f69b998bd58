package markdown

import (
	"path/filepath"
	"strings"
)

// RewriteContext describes the relocation a fragment undergoes: it was
// authored relative to SourceDir and will end up inside a document stored in
// OutputDir.
type RewriteContext struct {
	// SourceDir is the directory containing the markdown fragment.
	SourceDir string
	// OutputDir is the directory that will contain the assembled document.
	OutputDir string
}

// IsRelocationSensitive reports whether a link target resolves against the
// location of the file containing it. Scheme URLs, absolute paths, and
// in-document fragment references do not move when the document does.
func IsRelocationSensitive(target string) bool {
	if target == "" {
		return false
	}
	if strings.HasPrefix(target, "#") {
		return false
	}
	if strings.Contains(target, "://") {
		return false
	}
	// Protocol-relative URLs and mailto:-style schemes without slashes.
	if strings.HasPrefix(target, "//") {
		return false
	}
	if i := strings.Index(target, ":"); i > 0 && !strings.ContainsAny(target[:i], "/\\.") {
		return false
	}
	if filepath.IsAbs(target) || strings.HasPrefix(target, "/") {
		return false
	}
	return true
}

// RewritePaths adjusts relocation-sensitive targets of inline links and
// images so they resolve from OutputDir to the same files they resolved to
// from SourceDir.
//
// Only the target substrings change; alt text, brackets, optional titles,
// code blocks, and prose are preserved byte for byte. Malformed link syntax
// is left alone. RewritePaths never fails; the worst case is a target that
// does not resolve at render time.
func RewritePaths(source []byte, ctx RewriteContext) []byte {
	srcDir := filepath.Clean(ctx.SourceDir)
	outDir := filepath.Clean(ctx.OutputDir)
	if srcDir == outDir {
		// Nothing relocates; guarantee byte-identical output.
		return source
	}

	edits := collectTargetEdits(source, srcDir, outDir)
	if len(edits) == 0 {
		return source
	}

	out, err := ApplyEdits(source, edits)
	if err != nil {
		// Edits are generated non-overlapping and in-bounds; if that ever
		// breaks, passing the fragment through unchanged is the safe option.
		return source
	}
	return out
}

// collectTargetEdits scans line by line, skipping fenced and indented code
// blocks, and produces one edit per rewritable link target.
func collectTargetEdits(source []byte, srcDir, outDir string) []Edit {
	edits := make([]Edit, 0)

	inCodeBlock := false
	activeFence := ""

	offset := 0
	for _, line := range strings.SplitAfter(string(source), "\n") {
		lineStart := offset
		offset += len(line)
		line = strings.TrimRight(line, "\r\n")

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inCodeBlock, activeFence = toggleFencedBlock(inCodeBlock, activeFence, "```")
			continue
		}
		if strings.HasPrefix(trimmed, "~~~") {
			inCodeBlock, activeFence = toggleFencedBlock(inCodeBlock, activeFence, "~~~")
			continue
		}
		if inCodeBlock || strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
			continue
		}

		codeSpans := inlineCodeSpans(line)

		for i := 0; i+1 < len(line); i++ {
			if line[i] != ']' || line[i+1] != '(' {
				continue
			}
			if insideSpan(codeSpans, i) {
				continue
			}
			if findLinkTextStart(line, i) == -1 {
				// No opening bracket on this line; not link syntax.
				continue
			}

			end := findBalancedParenEnd(line, i+2)
			if end == -1 {
				continue
			}

			destStart, destEnd := destinationExtent(line, i+2, end)
			if destStart == destEnd {
				continue
			}

			dest := line[destStart:destEnd]
			rewritten, ok := rewriteTarget(dest, srcDir, outDir)
			if !ok || rewritten == dest {
				i = end
				continue
			}

			edits = append(edits, Edit{
				Start:       lineStart + destStart,
				End:         lineStart + destEnd,
				Replacement: []byte(rewritten),
			})
			i = end
		}
	}

	return edits
}

// rewriteTarget re-expresses a single target relative to outDir, preserving
// any #fragment suffix. ok is false when the target must not be touched.
func rewriteTarget(target, srcDir, outDir string) (string, bool) {
	path, fragment, hasFragment := strings.Cut(target, "#")
	if !IsRelocationSensitive(target) || path == "" {
		return "", false
	}

	abs := filepath.Join(srcDir, filepath.FromSlash(path))
	rel, err := filepath.Rel(outDir, abs)
	if err != nil {
		return "", false
	}

	rewritten := filepath.ToSlash(rel)
	if hasFragment {
		rewritten += "#" + fragment
	}
	return rewritten, true
}

func toggleFencedBlock(inCodeBlock bool, activeFence string, fence string) (bool, string) {
	if !inCodeBlock {
		return true, fence
	}
	if activeFence == fence {
		return false, ""
	}
	return inCodeBlock, activeFence
}

func findLinkTextStart(line string, closeBracketPos int) int {
	for j := closeBracketPos - 1; j >= 0; j-- {
		if line[j] == '[' {
			return j
		}
		if line[j] == ']' {
			return -1
		}
	}
	return -1
}

// findBalancedParenEnd returns the offset of the ')' closing the target that
// starts at startPos, honoring balanced inner parentheses. -1 if unclosed.
func findBalancedParenEnd(line string, startPos int) int {
	depth := 0
	for i := startPos; i < len(line); i++ {
		switch line[i] {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

// destinationExtent narrows a raw (…) span to the destination itself:
// leading whitespace is skipped, an optional <…> wrapper is entered, and an
// optional trailing "title" is excluded.
func destinationExtent(line string, start, end int) (int, int) {
	for start < end && (line[start] == ' ' || line[start] == '\t') {
		start++
	}
	if start < end && line[start] == '<' {
		if close := strings.IndexByte(line[start:end], '>'); close != -1 {
			return start + 1, start + close
		}
		return start, start
	}
	for i := start; i < end; i++ {
		if line[i] == ' ' || line[i] == '\t' {
			return start, i
		}
	}
	return start, end
}

type span struct{ start, end int }

// inlineCodeSpans returns the byte ranges of `code` spans so link syntax
// inside them is never rewritten.
func inlineCodeSpans(line string) []span {
	if !strings.Contains(line, "`") {
		return nil
	}

	spans := make([]span, 0, 2)
	for i := 0; i < len(line); {
		if line[i] != '`' {
			i++
			continue
		}

		run := 1
		for i+run < len(line) && line[i+run] == '`' {
			run++
		}

		marker := strings.Repeat("`", run)
		closeRel := strings.Index(line[i+run:], marker)
		if closeRel == -1 {
			// Unclosed code span; the backticks are literal text.
			i += run
			continue
		}

		spans = append(spans, span{start: i, end: i + run + closeRel + run})
		i = i + run + closeRel + run
	}
	return spans
}

func insideSpan(spans []span, pos int) bool {
	for _, s := range spans {
		if pos >= s.start && pos < s.end {
			return true
		}
	}
	return false
}
