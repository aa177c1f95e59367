package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/net/html"
	"golang.org/x/time/rate"
)

// ErrTableNotFound is returned when a screener page loads but the expected
// results table never appears. Callers skip that source for the cycle.
var ErrTableNotFound = errors.New("screener results table not found")

// ScreenerRow is one extracted data row. Price is zero when the price cell
// was absent or unparsable; the row is still usable as a candidate.
type ScreenerRow struct {
	Name   string
	Symbol string
	Price  decimal.Decimal
}

// ScreenerRepository fetches candidate rows from one screener page.
//
// The page contract is a striped results table with a header row followed by
// data rows of at least minRowCells cells laid out as
// [serial, name, symbol, links, change, price, ...]. Column indices are tied
// to the source layout and must be revisited if the source changes.
type ScreenerRepository interface {
	FetchRows(ctx context.Context, url string) ([]ScreenerRow, error)
}

const (
	minRowCells = 6
	nameCell    = 1
	symbolCell  = 2
	priceCell   = 5
)

func NewScreenerRepository(requestTimeout time.Duration, requestsPerSecond float64) ScreenerRepository {
	return &screenerRepositoryHandler{
		client:  &http.Client{},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		timeout: requestTimeout,
	}
}

type screenerRepositoryHandler struct {
	client  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
}

func (h *screenerRepositoryHandler) FetchRows(ctx context.Context, url string) ([]ScreenerRow, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait for %s: %w", url, err)
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build screener request for %s: %w", url, err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch screener page %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch screener page %s: unexpected status %d", url, resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse screener page %s: %w", url, err)
	}

	table := findResultsTable(doc)
	if table == nil {
		return nil, fmt.Errorf("%w on %s", ErrTableNotFound, url)
	}

	return extractRows(table), nil
}

// findResultsTable prefers the striped results table the screener renders;
// if no table carries that class, the first table on the page is used.
func findResultsTable(doc *html.Node) *html.Node {
	var first, striped *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if striped != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "table" {
			if first == nil {
				first = n
			}
			for _, attr := range n.Attr {
				if attr.Key == "class" && strings.Contains(attr.Val, "table-striped") {
					striped = n
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if striped != nil {
		return striped
	}
	return first
}

func extractRows(table *html.Node) []ScreenerRow {
	out := []ScreenerRow{}
	for _, tr := range findElements(table, "tr") {
		cells := findElements(tr, "td")
		// header rows use th and fall out here; malformed rows are
		// skipped, not fatal
		if len(cells) < minRowCells {
			continue
		}

		row := ScreenerRow{
			Name:   nodeText(cells[nameCell]),
			Symbol: nodeText(cells[symbolCell]),
		}
		if price, err := parsePrice(nodeText(cells[priceCell])); err == nil {
			row.Price = price
		}
		out = append(out, row)
	}
	return out
}

func parsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	raw = strings.TrimPrefix(raw, "$")
	if raw == "" {
		return decimal.Zero, fmt.Errorf("empty price cell")
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse price %q: %w", raw, err)
	}
	return price.Round(2), nil
}

func findElements(n *html.Node, tag string) []*html.Node {
	out := []*html.Node{}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return out
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
