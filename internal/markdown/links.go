// Package markdown contains the markdown analysis and rewriting primitives
// used by the slide assembly pipeline: goldmark-based link extraction and an
// offset-based path rewriter that leaves surrounding syntax untouched.
package markdown

import (
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type LinkKind string

const (
	LinkKindInline LinkKind = "inline"
	LinkKindImage  LinkKind = "image"
	LinkKindAuto   LinkKind = "auto"
)

type Link struct {
	Kind        LinkKind
	Destination string
}

// ExtractLinks parses a markdown body and extracts link-like constructs.
//
// This is an analysis API (used for image reference verification); rewriting
// never goes through the AST because goldmark does not expose destination
// byte offsets.
func ExtractLinks(body []byte) []Link {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	links := make([]Link, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *gmast.AutoLink:
			links = append(links, Link{Kind: LinkKindAuto, Destination: string(node.URL(body))})
		case *gmast.Image:
			links = append(links, Link{Kind: LinkKindImage, Destination: string(node.Destination)})
		case *gmast.Link:
			links = append(links, Link{Kind: LinkKindInline, Destination: string(node.Destination)})
		}
		return gmast.WalkContinue, nil
	})

	return links
}

// ExtractImageLinks returns only image destinations from a markdown body.
func ExtractImageLinks(body []byte) []string {
	out := make([]string, 0)
	for _, l := range ExtractLinks(body) {
		if l.Kind == LinkKindImage {
			out = append(out, l.Destination)
		}
	}
	return out
}

// LocalLinks filters a set of destinations down to the relocation-sensitive
// ones: relative paths that resolve against the file containing them.
func LocalLinks(destinations []string) []string {
	out := make([]string, 0)
	for _, d := range destinations {
		if IsRelocationSensitive(d) {
			out = append(out, d)
		}
	}
	return out
}
