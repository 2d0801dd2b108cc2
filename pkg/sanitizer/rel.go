package sanitizer

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// forceLinkRel rewrites the rel attribute of every anchor in the already
// sanitized fragment. The rel value comes from the policy, never from
// input, so reinserting it is safe.
func forceLinkRel(fragment, rel string) string {
	if !strings.Contains(strings.ToLower(fragment), "<a") {
		return fragment
	}

	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return fragment
	}

	var b strings.Builder
	for _, n := range nodes {
		setLinkRel(n, rel)
		if err := html.Render(&b, n); err != nil {
			return fragment
		}
	}
	return b.String()
}

func setLinkRel(n *html.Node, rel string) {
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		replaced := false
		for i := range n.Attr {
			if n.Attr[i].Key == "rel" {
				n.Attr[i].Val = rel
				replaced = true
			}
		}
		if !replaced {
			n.Attr = append(n.Attr, html.Attribute{Key: "rel", Val: rel})
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		setLinkRel(c, rel)
	}
}
