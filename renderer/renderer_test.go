package renderer

import (
	"slices"
	"strings"
	"testing"

	"github.com/etnz/growth"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// tables parses markdown and returns every table as rows of cell texts, the
// header row first.
func tables(t *testing.T, markdown string) [][][]string {
	t.Helper()
	source := []byte(markdown)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(source))

	var res [][][]string
	var table [][]string
	var row []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n := n.(type) {
		case *east.Table:
			if entering {
				table = nil
			} else {
				res = append(res, table)
			}
		case *east.TableHeader, *east.TableRow:
			if entering {
				row = nil
			} else {
				table = append(table, row)
			}
		case *east.TableCell:
			if entering {
				row = append(row, strings.TrimSpace(cellText(n, source)))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return res
}

// cellText concatenates the text segments below n.
func cellText(n ast.Node, source []byte) string {
	var b strings.Builder
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// equalFold compares rows ignoring case, table headers may be capitalized.
func equalFold(a, b []string) bool {
	return slices.EqualFunc(a, b, strings.EqualFold)
}

// headings returns the text of every heading.
func headings(markdown string) []string {
	source := []byte(markdown)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	var res []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			res = append(res, cellText(h, source))
		}
		return ast.WalkContinue, nil
	})
	return res
}

func TestTrajectoryMarkdown(t *testing.T) {
	p := growth.Projection{Principal: 1000, Rate: 5, Years: 5, CompoundingPeriodDays: growth.Yearly}
	got := TrajectoryMarkdown(p, p.Trajectory(growth.Year))

	wantHeadings := []string{"Growth of 1000.00 at 5% over 5 years", "Trajectory", "Totals"}
	if h := headings(got); !slices.Equal(h, wantHeadings) {
		t.Errorf("headings = %q, want %q", h, wantHeadings)
	}

	tbls := tables(t, got)
	if len(tbls) != 1 {
		t.Fatalf("got %d tables, want 1:\n%s", len(tbls), got)
	}
	rows := tbls[0]
	if len(rows) != 7 {
		t.Fatalf("got %d rows, want a header and 6 years:\n%s", len(rows), got)
	}
	if want := []string{"Interval", "Years", "Simple", "Compound"}; !equalFold(rows[0], want) {
		t.Errorf("header = %q, want %q", rows[0], want)
	}
	if want := []string{"year 5", "5.00", "1250.00", "1276.28"}; !slices.Equal(rows[6], want) {
		t.Errorf("last row = %q, want %q", rows[6], want)
	}

	for _, want := range []string{"Compound interest: 1276.28", "Compounding advantage: 26.28", "Compounding every 365 days (1 times a year)."} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown does not contain %q:\n%s", want, got)
		}
	}
}

func TestTrajectoryMarkdownUndefined(t *testing.T) {
	p := growth.Projection{Principal: 100, Rate: -500, Years: 1, CompoundingPeriodDays: growth.Yearly}
	got := TrajectoryMarkdown(p, p.Trajectory(growth.Month))
	rows := tables(t, got)[0]
	if rows[2][3] != "-" {
		t.Errorf("undefined compound value rendered as %q, want -", rows[2][3])
	}
}

func TestPortfolioMarkdown(t *testing.T) {
	p := growth.NewPortfolio(growth.Parameters{Years: 2, CompoundingPeriodDays: growth.NoCompounding})
	p.Add("Bond", 300, 10)
	p.Add("Cash", 100, 0)

	got := PortfolioMarkdown(p.View(growth.Sorter{Field: growth.ByPrincipal}))

	wantHeadings := []string{"Portfolio over 2 years", "Assets", "Yearly Growth", "Distribution"}
	if h := headings(got); !slices.Equal(h, wantHeadings) {
		t.Errorf("headings = %q, want %q", h, wantHeadings)
	}

	tbls := tables(t, got)
	if len(tbls) != 3 {
		t.Fatalf("got %d tables, want 3:\n%s", len(tbls), got)
	}

	assets := tbls[0]
	want := [][]string{
		{"ID", "Asset", "Principal", "Rate", "Final Value"},
		{"2", "Cash", "100.00", "0%", "100.00"},
		{"1", "Bond", "300.00", "10%", "360.00"},
		{"", "Total", "400.00", "7.5%", "460.00"},
	}
	if !slices.EqualFunc(assets, want, equalFold) {
		t.Errorf("assets table = %q, want %q", assets, want)
	}

	yearly := tbls[1]
	if !equalFold(yearly[0], []string{"Year", "Bond", "Cash", "Total"}) {
		t.Errorf("yearly header = %q", yearly[0])
	}
	if !slices.Equal(yearly[3], []string{"2", "360.00", "100.00", "460.00"}) {
		t.Errorf("yearly last row = %q", yearly[3])
	}

	dist := tbls[2]
	if !slices.Equal(dist[1], []string{"Bond", "300.00", "75.00%", "360.00", "78.26%"}) {
		t.Errorf("distribution row = %q", dist[1])
	}
	if !strings.Contains(got, "Sorted by principal asc. Total gain: 60.00.") {
		t.Errorf("markdown misses the sort and gain line:\n%s", got)
	}
}
