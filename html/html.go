/*
Package html moves ordered maps between HTML and Go.

Maps are represented as HTML description lists:

	<dl>
	  <dt>key</dt><dd>value</dd>
	  …
	</dl>

MapFromHTML collects the terms and descriptions of an HTML fragment into a
map, RenderMap does the reverse. RenderTree renders the node structure of a
B+ tree as nested lists, which is handy for inspecting trees in a browser.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/omap"
	"github.com/npillmayer/omap/btree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'omap.html'
func tracer() tracing.Trace {
	return tracing.Select("omap.html")
}

// MapFromHTML creates a map from the description lists of an HTML fragment.
// Every <dt> term becomes a key, the text of the <dd> following it becomes its
// value. A term without description maps to the empty string. If a term occurs
// more than once, the last description wins.
func MapFromHTML(input io.Reader) (*omap.Map[string, string], error) {
	nodes, err := html.ParseFragment(input, &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, err
	}
	m := omap.NewOrdered[string, string]()
	for _, n := range nodes {
		if err := collectEntries(n, m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MapFromNode collects the entries of all description lists at and below
// n into a new map.
func MapFromNode(n *html.Node) (*omap.Map[string, string], error) {
	if n == nil {
		return nil, omap.ErrIllegalArguments
	}
	m := omap.NewOrdered[string, string]()
	return m, collectEntries(n, m)
}

func collectEntries(n *html.Node, m *omap.Map[string, string]) error {
	if n.Type == html.ElementNode && n.DataAtom == atom.Dl {
		return collectList(n, m)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectEntries(c, m); err != nil {
			return err
		}
	}
	return nil
}

func collectList(dl *html.Node, m *omap.Map[string, string]) error {
	var key string
	var pending bool // a term is waiting for its description
	for c := dl.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Dt:
			if pending {
				if _, _, err := m.Put(key, ""); err != nil {
					return err
				}
			}
			key, pending = innerText(c), true
		case atom.Dd:
			if !pending {
				tracer().Debugf("html: description without term skipped")
				continue
			}
			if _, _, err := m.Put(key, innerText(c)); err != nil {
				return err
			}
			pending = false
		}
	}
	if pending {
		_, _, err := m.Put(key, "")
		return err
	}
	return nil
}

// innerText returns the whitespace-trimmed text content of n and all its
// descendents.
func innerText(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return strings.TrimSpace(sb.String())
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// --- Rendering -------------------------------------------------------------

// RenderMap writes the entries of m as an HTML description list to w.
// Keys and values are formatted with fmt's %v verb.
func RenderMap[K, V any](w io.Writer, m *omap.Map[K, V]) error {
	if m == nil {
		return omap.ErrIllegalArguments
	}
	dl := element(atom.Dl, "omap")
	for k, v := range m.All() {
		dt := element(atom.Dt, "")
		dt.AppendChild(text(fmt.Sprint(k)))
		dd := element(atom.Dd, "")
		dd.AppendChild(text(fmt.Sprint(v)))
		dl.AppendChild(dt)
		dl.AppendChild(dd)
	}
	return html.Render(w, dl)
}

// RenderTree writes the node structure below root as nested HTML lists to w.
// Every list item carries the keys of one node, with class "inner" or
// "leaf".
func RenderTree[K any](w io.Writer, root *btree.NodeInfo[K]) error {
	ul := element(atom.Ul, "btree")
	if root != nil {
		ul.AppendChild(treeItem(root))
	}
	return html.Render(w, ul)
}

func treeItem[K any](node *btree.NodeInfo[K]) *html.Node {
	class := "inner"
	if node.Leaf {
		class = "leaf"
	}
	li := element(atom.Li, class)
	keys := make([]string, len(node.Keys))
	for i, k := range node.Keys {
		keys[i] = fmt.Sprint(k)
	}
	li.AppendChild(text(strings.Join(keys, " ")))
	if len(node.Children) > 0 {
		ul := element(atom.Ul, "")
		for _, child := range node.Children {
			ul.AppendChild(treeItem(child))
		}
		li.AppendChild(ul)
	}
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
