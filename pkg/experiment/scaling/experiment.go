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

package scaling

import (
	"fmt"
	"io"
	"io/ioutil"
	"time"

	"github.com/intelsdi-x/scaling/pkg/executor"
	"github.com/intelsdi-x/scaling/pkg/measurement"
	"github.com/intelsdi-x/scaling/pkg/workloads/parser"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/cheggaaa/pb.v1"
)

// MeasurementError describes the run which did not produce usable elapsed time.
// Any such run invalidates the whole experiment.
type MeasurementError struct {
	Run Run
	// Output is the captured standard output of the run.
	Output string
	Err    error
}

func (e *MeasurementError) Error() string {
	return fmt.Sprintf("failed to extract time from %s: %v", e.Run, e.Err)
}

// Cause returns underlying error, see github.com/pkg/errors.Cause.
func (e *MeasurementError) Cause() error {
	return e.Err
}

// Experiment runs plans one configuration after another.
type Experiment struct {
	factory LauncherFactory
	timeout time.Duration
	// ShowProgress replaces per run messages with a progress bar.
	ShowProgress bool
	// Out receives per run messages.
	Out io.Writer
}

// New returns Experiment creating launchers with factory.
func New(factory LauncherFactory, config Config) *Experiment {
	return &Experiment{
		factory: factory,
		timeout: config.RunTimeout,
		Out:     ioutil.Discard,
	}
}

// Execute runs every configuration of the plan in order and returns the finished dataset.
// It stops at the first run without usable elapsed time and returns *MeasurementError.
// No partial dataset is returned on failure.
func (e *Experiment) Execute(name string, plan []Run) (measurement.Dataset, error) {
	var bar *pb.ProgressBar
	if e.ShowProgress {
		bar = pb.StartNew(len(plan))
		bar.ShowCounters = false
		bar.ShowTimeLeft = true
		defer bar.Finish()
	}

	dataset := measurement.NewDataset(name)
	for _, run := range plan {
		if bar != nil {
			bar.Prefix(fmt.Sprintf("[%s %s %d] ", name, run.Kind.Label(), run.Parallelism))
		} else {
			fmt.Fprintf(e.Out, "→ %s\n", run)
		}

		record, err := e.measure(run)
		if err != nil {
			return measurement.Dataset{}, err
		}
		dataset.Add(record)

		if bar != nil {
			bar.Increment()
		} else {
			fmt.Fprintf(e.Out, "   Time: %.4fs\n", record.Time)
		}
	}

	return dataset, nil
}

func (e *Experiment) measure(run Run) (measurement.Record, error) {
	launcher, err := e.factory.Create(run)
	if err != nil {
		return measurement.Record{}, errors.Wrapf(err, "cannot prepare %s", run)
	}

	log.Debugf("Launching %s for %s", launcher.Name(), run)
	handle, err := launcher.Launch()
	if err != nil {
		return measurement.Record{}, errors.Wrapf(err, "cannot launch %s", launcher.Name())
	}

	output, err := executor.Collect(handle, e.timeout)
	if err != nil {
		return measurement.Record{}, &MeasurementError{Run: run, Output: output.Stdout, Err: err}
	}
	if output.ExitCode != 0 {
		log.Warnf("%s exited with code %d", launcher.Name(), output.ExitCode)
	}

	elapsed, err := parser.ElapsedTime(output.Stdout)
	if err != nil {
		return measurement.Record{}, &MeasurementError{Run: run, Output: output.Stdout, Err: err}
	}
	log.Debugf("%s took %fs", run, elapsed)

	return measurement.Record{
		Kind:        run.Kind,
		Parallelism: run.Parallelism,
		Size:        run.Size,
		Time:        elapsed,
	}, nil
}
