// Package template implements the placeholder contract of the deck
// template: literal substitution of the title and slide-body tokens, and the
// atomic write of the final document.
package template

import (
	"log/slog"
	"os"
	"strings"

	"golang.org/x/net/html"

	deckerrors "git.home.luguber.info/inful/slidedeck/internal/errors"
)

// Placeholder tokens recognized in the template document. Substitution is
// literal; everything else in the template passes through untouched.
const (
	TokenTitle  = "{{ title }}"
	TokenSlides = "{{ slides }}"
)

// Load reads a template file and checks its placeholder contract.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", deckerrors.ReadError(path, err)
	}
	tmpl := string(data)
	if err := Validate(tmpl); err != nil {
		return "", err
	}
	return tmpl, nil
}

// Validate confirms both placeholder tokens are present. It also parses the
// template as HTML and reports (at debug level) tokens that sit outside text
// content, e.g. inside an attribute, since that usually means a typo in the
// template rather than an intentional placement.
func Validate(tmpl string) error {
	for _, token := range []string{TokenTitle, TokenSlides} {
		if !strings.Contains(tmpl, token) {
			return deckerrors.TemplateMissingPlaceholder(token)
		}
	}

	doc, err := html.Parse(strings.NewReader(tmpl))
	if err != nil {
		// html.Parse is extremely permissive; a parse failure means the
		// input is not text at all.
		return deckerrors.ValidationFailed("template_file", "template is not parseable HTML")
	}
	for _, token := range []string{TokenTitle, TokenSlides} {
		if !tokenInTextNode(doc, token) {
			slog.Debug("Template token is not in HTML text content", "token", token)
		}
	}
	return nil
}

func tokenInTextNode(n *html.Node, token string) bool {
	if n.Type == html.TextNode && strings.Contains(n.Data, token) {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if tokenInTextNode(c, token) {
			return true
		}
	}
	return false
}

// Inject substitutes the title and assembled slide body into the template.
func Inject(tmpl, title, body string) (string, error) {
	if err := Validate(tmpl); err != nil {
		return "", err
	}
	out := strings.ReplaceAll(tmpl, TokenTitle, title)
	out = strings.ReplaceAll(out, TokenSlides, body)
	return out, nil
}
