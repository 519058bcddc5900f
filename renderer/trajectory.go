package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/growth"
	md "github.com/nao1215/markdown"
)

// TrajectoryMarkdown renders a single asset trajectory.
func TrajectoryMarkdown(p growth.Projection, t growth.Trajectory) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Growth of %s at %s over %s", growth.A(p.Principal), p.Rate, years(p.Years)))
	doc.PlainText(compounding(p.CompoundingPeriodDays))

	rows := make([][]string, 0, len(t.Points))
	for _, pt := range t.Points {
		rows = append(rows, []string{
			t.Granularity.String()+" "+strconv.FormatFloat(pt.Index, 'f', -1, 64),
			strconv.FormatFloat(pt.ElapsedYears, 'f', 2, 64),
			pt.Simple.String(),
			pt.Compound.String(),
		})
	}
	doc.H2("Trajectory")
	doc.Table(md.TableSet{
		Header: []string{"Interval", "Years", "Simple", "Compound"},
		Rows:   rows,
	})

	doc.H2("Totals")
	doc.BulletList(
		"Simple interest: "+t.SimpleTotal.String(),
		"Compound interest: "+t.CompoundTotal.String(),
		"Compounding advantage: "+t.Interest().String(),
	)

	return doc.String()
}
