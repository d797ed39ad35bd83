package main

import (
	"fmt"
	"strings"

	"github.com/andareed/marketscope/derive"
	"github.com/andareed/marketscope/logging"
	"github.com/andareed/marketscope/registry"
)

const (
	barLabelWidth = 14
	barMaxWidth   = 24
)

func (m *model) rebuildSubplot() {
	dist, err := derive.FeatureDistribution(m.base, m.sess.SubFeature, m.sess.Selected, m.cfg.Bins)
	if err != nil {
		logging.Warnf("rebuildSubplot: %v", err)
		m.views.Replace(slotSubplot, registry.Rendered(wrapMessage(err.Error())))
		return
	}
	m.views.Replace(slotSubplot, registry.Rendered(renderDistribution(dist)))
}

// renderDistribution draws the All and Selected series as paired horizontal
// bars, one label per bin or category. Both bars share one scale so the
// selected series reads as a subset of the whole.
func renderDistribution(d *derive.Distribution) string {
	maxCount := 0.0
	for _, v := range d.All {
		if v > maxCount {
			maxCount = v
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	var b strings.Builder
	for i, label := range d.Labels {
		name := truncatePlain(label, barLabelWidth)
		pad := strings.Repeat(" ", barLabelWidth-runeWidth(name))
		all := barOfWidth(d.All[i], maxCount)
		sel := barOfWidth(d.Selected[i], maxCount)

		fmt.Fprintf(&b, "%s%s %s %g\n", name, pad,
			barAllStyle.Render(strings.Repeat("█", all)), d.All[i])
		fmt.Fprintf(&b, "%s %s %g\n", strings.Repeat(" ", barLabelWidth),
			barSelectedStyle.Render(strings.Repeat("▓", sel)), d.Selected[i])
	}

	title := fmt.Sprintf("Distribution · %s", d.Feature)
	legend := barAllStyle.Render("█ all") + "  " + barSelectedStyle.Render("▓ selected")
	return titleStyle.Render(title) + "\n" + plotStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n" + legend
}

func barOfWidth(count, max float64) int {
	if count <= 0 {
		return 0
	}
	w := int(count / max * barMaxWidth)
	if w < 1 {
		w = 1
	}
	return w
}
