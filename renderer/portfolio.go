package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/growth"
	md "github.com/nao1215/markdown"
)

// PortfolioMarkdown renders a portfolio view: its assets, the yearly growth
// and the initial and final distribution.
func PortfolioMarkdown(v growth.PortfolioView) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio over %s", years(v.Parameters.Years)))
	doc.PlainText(compounding(v.Parameters.CompoundingPeriodDays))

	doc.H2("Assets")
	assets := make([][]string, 0, len(v.Assets)+1)
	for _, a := range v.Assets {
		assets = append(assets, []string{
			strconv.Itoa(a.ID),
			a.Name,
			growth.A(a.Principal).String(),
			a.Rate.String(),
			a.FinalValue.String(),
		})
	}
	assets = append(assets, []string{"", "Total", v.TotalInvestment.String(), rate(v.WeightedRate), v.TotalFinalValue.String()})
	doc.Table(md.TableSet{
		Header: []string{"ID", "Asset", "Principal", "Rate", "Final Value"},
		Rows:   assets,
	})
	doc.PlainText(fmt.Sprintf("Sorted by %s. Total gain: %s.", v.Sort, v.Gain()))

	if len(v.Series) > 0 {
		doc.H2("Yearly Growth")
		header := []string{"Year"}
		for _, av := range v.Series[0].Values {
			header = append(header, av.Name)
		}
		header = append(header, "Total")
		rows := make([][]string, 0, len(v.Series))
		for _, pt := range v.Series {
			row := []string{strconv.Itoa(pt.Year)}
			for _, av := range pt.Values {
				row = append(row, av.Value.String())
			}
			rows = append(rows, append(row, pt.Total.String()))
		}
		doc.Table(md.TableSet{Header: header, Rows: rows})
	}

	doc.H2("Distribution")
	d := v.Distribution
	dist := make([][]string, 0, len(d.Initial)+1)
	for i := range d.Initial {
		initial, final := d.Initial[i], d.Final[i]
		dist = append(dist, []string{
			initial.Name,
			initial.Value.String(),
			initial.Share().String(),
			final.Value.String(),
			final.Share().String(),
		})
	}
	dist = append(dist, []string{"Total", d.InitialTotal.String(), "", d.FinalTotal.String(), ""})
	doc.Table(md.TableSet{
		Header: []string{"Asset", "Initial", "Initial Share", "Final", "Final Share"},
		Rows:   dist,
	})

	return doc.String()
}
