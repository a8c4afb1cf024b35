package roll

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/netrey95-hub/skills/internal/analysis"
	"github.com/netrey95-hub/skills/internal/core/distribution"
	"github.com/netrey95-hub/skills/internal/labels"
)

func writeList(out io.Writer, l *labels.Labels) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, p := range distribution.Policies() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Key, l.Policy(string(p.Key)), l.Cost(p.Cost))
	}
	tw.Flush()
	fmt.Fprintln(out)

	attrs := distribution.Attributes()
	tw = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, g := range distribution.Groups() {
		names := ""
		for i, idx := range g.Indices {
			if i > 0 {
				names += ", "
			}
			names += l.Attribute(attrs[idx].Key)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", g.Key, l.Group(g.Key), names)
	}
	tw.Flush()
}

func writeDistribution(out io.Writer, l *labels.Labels, dist distribution.Distribution) {
	for i, attr := range distribution.Attributes() {
		fmt.Fprintf(out, "%s %s: %s%%\n", l.Emoji(attr.Key), l.Attribute(attr.Key), labels.FormatUnits(dist[i]))
	}
	fmt.Fprintf(out, "%s\n", l.SumCheck(dist.Sum()))
}

func writeSummary(out io.Writer, l *labels.Labels, samples [][]int) error {
	attrs := distribution.Attributes()
	keys := make([]string, len(attrs))
	for i, attr := range attrs {
		keys[i] = attr.Key
	}

	summary, err := analysis.Summarize(keys, distribution.Total, samples)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "samples=%d off_total=%d\n", summary.Samples, summary.OffTotal)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\tmean%%\tstddev%%\tmin%%\tq25%%\tmedian%%\tq75%%\tmax%%\t\n")
	for _, attr := range summary.Attributes {
		fmt.Fprintf(tw, "%s\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t\n",
			l.Attribute(attr.Key),
			attr.Mean/10, attr.StdDev/10, attr.Min/10, attr.Q25/10, attr.Median/10, attr.Q75/10, attr.Max/10)
	}
	return tw.Flush()
}
