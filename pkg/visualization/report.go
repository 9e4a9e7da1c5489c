// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package visualization

import (
	"fmt"
	"io"

	"github.com/intelsdi-x/scaling/pkg/measurement"
	"github.com/intelsdi-x/scaling/pkg/utils/errcollection"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
)

// Paths are locations of saved charts.
type Paths struct {
	Strong     string
	Weak       string
	Comparison string
}

// DefaultPaths returns chart locations set by flags.
func DefaultPaths() Paths {
	return Paths{
		Strong:     StrongPlotFlag.Value(),
		Weak:       WeakPlotFlag.Value(),
		Comparison: ComparisonPlotFlag.Value(),
	}
}

// Present saves charts of both datasets and then writes summary tables to w.
// Failure of one chart or table does not stop the others; all failures are returned together.
// Comparison is saved only when both charts could be drawn.
func Present(w io.Writer, strong, weak measurement.Dataset, paths Paths) error {
	var errs errcollection.ErrorCollection

	strongChart := saveChart(w, &errs, StrongScalingChart, strong, paths.Strong)
	weakChart := saveChart(w, &errs, WeakScalingChart, weak, paths.Weak)
	if strongChart != nil && weakChart != nil {
		if err := SaveComparison(paths.Comparison, strongChart, weakChart); err != nil {
			errs.Add(err)
		} else {
			fmt.Fprintf(w, "📈 Saved: %s\n", paths.Comparison)
		}
	}

	drawSummary(w, &errs, "Strong scaling", StrongScalingTable, strong)
	drawSummary(w, &errs, "Weak scaling", WeakScalingTable, weak)

	return errs.GetErrIfAny()
}

func saveChart(w io.Writer, errs *errcollection.ErrorCollection, drawChart func(measurement.Dataset) (*plot.Plot, error), dataset measurement.Dataset, path string) *plot.Plot {
	chart, err := drawChart(dataset)
	if err != nil {
		errs.Add(errors.Wrapf(err, "cannot draw %s chart", dataset.Name))
		return nil
	}
	if err := SaveChart(chart, path); err != nil {
		errs.Add(err)
		return nil
	}
	fmt.Fprintf(w, "📈 Saved: %s\n", path)
	return chart
}

func drawSummary(w io.Writer, errs *errcollection.ErrorCollection, title string, summarize func(measurement.Dataset) (*Table, error), dataset measurement.Dataset) {
	table, err := summarize(dataset)
	if err != nil {
		errs.Add(errors.Wrapf(err, "cannot summarize %s", dataset.Name))
		return
	}
	fmt.Fprintf(w, "\n%s\n", title)
	DrawTable(w, table)
}
