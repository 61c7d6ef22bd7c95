// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/MKhiriev/go-tab-keeper/models"
)

// htmlSource treats every link of a Netscape bookmark export as an open tab.
type htmlSource struct {
	path string
}

// NewHTMLSource returns a [TabSource] over the bookmark file at path.
func NewHTMLSource(path string) TabSource {
	return &htmlSource{path: path}
}

func (s *htmlSource) Tabs(ctx context.Context) ([]models.Tab, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingTabs, err)
	}
	defer f.Close()

	tabs, err := ParseBookmarkHTML(f)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrReadingTabs, s.path, err)
	}
	return tabs, nil
}

// Highlighted is always empty: bookmark files carry no selection.
func (s *htmlSource) Highlighted(context.Context) ([]models.Tab, error) {
	return []models.Tab{}, nil
}

// ParseBookmarkHTML returns one tab per <A HREF> in document order. A link
// without text uses its URL as title.
func ParseBookmarkHTML(r io.Reader) ([]models.Tab, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	tabs := make([]models.Tab, 0)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && strings.EqualFold(n.Data, "a") {
			href := getAttr(n, "href")
			if href == "" {
				return
			}

			title := getTextContent(n)
			if title == "" {
				title = href
			}

			tabs = append(tabs, models.Tab{
				ID:         len(tabs) + 1,
				Title:      title,
				URL:        href,
				FavIconURL: getAttr(n, "icon_uri"),
				Index:      len(tabs),
			})
			return
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return tabs, nil
}

func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val
		}
	}
	return ""
}
