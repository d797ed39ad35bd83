package main

import (
	"fmt"
	"strings"

	"github.com/andareed/marketscope/derive"
	"github.com/andareed/marketscope/logging"
	"github.com/andareed/marketscope/registry"
)

// rebuildDrill renders the per-city company breakdown. It reads the same
// masked table as the map, so companies under the lower bound disappear here
// too, and a year change re-titles and re-sorts the list.
func (m *model) rebuildDrill() {
	if m.sess.City == "" {
		m.views.Replace(slotDrill, registry.Rendered(
			dimStyle.Render("tap a city (enter) to list its companies")))
		return
	}

	comps, err := derive.CityCompanies(m.maskedForYear(), m.sess.City, m.sess.Year)
	if err != nil {
		logging.Warnf("rebuildDrill: %v", err)
		m.views.Replace(slotDrill, registry.Rendered(wrapMessage(err.Error())))
		return
	}

	title := titleStyle.Render(fmt.Sprintf("Companies in %s (%d)", m.sess.City, m.sess.Year))
	if len(comps) == 0 {
		m.views.Replace(slotDrill, registry.Rendered(
			title+"\n"+dimStyle.Render("no companies above the lower bound")))
		return
	}

	var lines []string
	lines = append(lines, dimStyle.Render(fmt.Sprintf("%-8s %12s %10s", "Symbol", "Market Cap", "Employees")))
	for _, c := range comps {
		lines = append(lines, fmt.Sprintf("%-8s %12.4g %10.0f", c.Symbol, c.MarketCap, c.Employees))
	}
	m.views.Replace(slotDrill, registry.Rendered(title+"\n"+plotStyle.Render(strings.Join(lines, "\n"))))
}
