package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/magicforest/forest"
	"github.com/katalvlaran/magicforest/frontier"
	"gopkg.in/yaml.v3"
)

// NoStableForests is printed when the search returns nothing.
const NoStableForests = "no stable forests found."

type forestView struct {
	Goats  int `json:"goats" yaml:"goats"`
	Wolves int `json:"wolves" yaml:"wolves"`
	Lions  int `json:"lions" yaml:"lions"`
}

type stableView struct {
	Goats  int      `json:"goats" yaml:"goats"`
	Wolves int      `json:"wolves" yaml:"wolves"`
	Lions  int      `json:"lions" yaml:"lions"`
	Path   []string `json:"path,omitempty" yaml:"path,omitempty"`
}

type report struct {
	Initial  forestView   `json:"initial" yaml:"initial"`
	Strategy string       `json:"strategy" yaml:"strategy"`
	StopRule string       `json:"stop_rule" yaml:"stop_rule"`
	Depth    int          `json:"depth" yaml:"depth"`
	Explored int          `json:"explored" yaml:"explored"`
	Stable   []stableView `json:"stable" yaml:"stable"`
}

// render writes res to w in the given format.
func render(w io.Writer, format string, res *frontier.Result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newReport(res))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newReport(res)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return renderText(w, res)
	}
}

func renderText(w io.Writer, res *frontier.Result) error {
	if len(res.Stable) == 0 {
		_, err := fmt.Fprintln(w, NoStableForests)
		return err
	}
	for _, f := range res.Stable {
		if _, err := fmt.Fprintln(w, f); err != nil {
			return err
		}
		path, err := res.PathTo(f)
		if err != nil {
			// untraced search
			continue
		}
		via := "(initial)"
		if len(path) > 0 {
			via = strings.Join(mealNames(path), " -> ")
		}
		if _, err := fmt.Fprintf(w, "  via %s\n", via); err != nil {
			return err
		}
	}

	return nil
}

func newReport(res *frontier.Result) report {
	r := report{
		Initial:  forestView{Goats: res.Initial.Goats, Wolves: res.Initial.Wolves, Lions: res.Initial.Lions},
		Strategy: res.Strategy.String(),
		StopRule: res.StopRule.String(),
		Depth:    res.Depth,
		Explored: res.Explored,
		Stable:   make([]stableView, 0, len(res.Stable)),
	}
	for _, f := range res.Stable {
		v := stableView{Goats: f.Goats, Wolves: f.Wolves, Lions: f.Lions}
		if path, err := res.PathTo(f); err == nil {
			v.Path = mealNames(path)
		}
		r.Stable = append(r.Stable, v)
	}

	return r
}

func mealNames(ms []forest.Meal) []string {
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.Name
	}

	return names
}
