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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/intelsdi-x/scaling/pkg/build"
	"github.com/intelsdi-x/scaling/pkg/conf"
	"github.com/intelsdi-x/scaling/pkg/executor"
	"github.com/intelsdi-x/scaling/pkg/experiment"
	"github.com/intelsdi-x/scaling/pkg/experiment/logger"
	"github.com/intelsdi-x/scaling/pkg/experiment/scaling"
	"github.com/intelsdi-x/scaling/pkg/isolation"
	"github.com/intelsdi-x/scaling/pkg/measurement"
	"github.com/intelsdi-x/scaling/pkg/metadata"
	"github.com/intelsdi-x/scaling/pkg/utils/errutil"
	"github.com/intelsdi-x/scaling/pkg/visualization"
	"github.com/nu7hatch/gouuid"
	"github.com/sirupsen/logrus"
)

var (
	hostFlag      = conf.NewStringFlag("host", "Host running the benchmarked programs. Non local hosts are reached over SSH.", "local")
	cpusFlag      = conf.NewStringFlag("cpus", "CPU list benchmarked programs are pinned to (e.g. 0-3,8). Empty means no pinning.", "")
	skipBuildFlag = conf.NewBoolFlag("skip_build", "Do not rebuild benchmarked programs.", false)
	plotOnlyFlag  = conf.NewBoolFlag("plot_only", "Skip benchmarks and only present results stored in CSV files.", false)
)

func main() {
	experimentStart := time.Now()

	conf.SetAppName("scaling")
	conf.SetHelp(`Scaling experiment measures strong and weak scaling of sequential, OpenMP and MPI builds of the same program.
Each run reports its elapsed time on standard output. Results are saved as CSV files and presented as tables and charts.`)
	experiment.Configure()

	uid, err := uuid.NewV4()
	errutil.CheckWithContext(err, "Cannot generate experiment ID")
	experimentID := uid.String()
	logger.Initialize(conf.AppName(), experimentID)

	shell := newShell()
	records, err := metadata.NewDefault(experimentID)
	errutil.CheckWithContext(err, "Cannot connect to metadata database")
	errutil.CheckWithContext(metadata.RecordRuntimeEnv(records, experimentStart, shell), "Cannot save runtime environment")

	if !plotOnlyFlag.Value() {
		if !skipBuildFlag.Value() {
			logrus.Info("Building benchmarked programs")
			errutil.CheckWithContext(build.New(shell, build.DefaultConfig()).Build(), "Cannot build benchmarked programs")
		}
		benchmark(shell, records)
	}

	present()
	logrus.Infof("Ended experiment %s after %s", experimentID, time.Since(experimentStart))
}

func newShell() executor.Executor {
	var decorators []isolation.Decorator
	if cpusFlag.Value() != "" {
		cpus, err := isolation.ParseCPUList(cpusFlag.Value())
		errutil.CheckWithContext(err, "Invalid CPU list")
		decorators = append(decorators, isolation.Taskset{CPUs: cpus})
	}

	shell, err := executor.NewShell(hostFlag.Value(), decorators...)
	errutil.CheckWithContext(err, "Cannot create executor")
	logrus.Debugf("Benchmarks run with %s on %q", shell.Name(), hostFlag.Value())
	return shell
}

func benchmark(shell executor.Executor, records metadata.Metadata) {
	config, err := scaling.DefaultConfig()
	errutil.CheckWithContext(err, "Invalid scaling configuration")

	runner := scaling.New(scaling.NewWorkloadFactory(shell), config)
	runner.Out = os.Stdout
	runner.ShowProgress = conf.LogLevel() == logrus.ErrorLevel

	fmt.Println("📊 Running strong scaling benchmarks...")
	strong := execute(runner, scaling.StrongScaling, scaling.StrongScalingPlan(config))
	save(records, strong, scaling.StrongOutputFlag.Value())

	fmt.Println("📊 Running weak scaling benchmarks...")
	weak := execute(runner, scaling.WeakScaling, scaling.WeakScalingPlan(config))
	save(records, weak, scaling.WeakOutputFlag.Value())

	fmt.Println("\n✅ Benchmarking complete.")
	fmt.Printf("→ Strong scaling data saved to: %s\n", scaling.StrongOutputFlag.Value())
	fmt.Printf("→ Weak scaling data saved to:   %s\n", scaling.WeakOutputFlag.Value())
}

func execute(runner *scaling.Experiment, name string, plan []scaling.Run) measurement.Dataset {
	dataset, err := runner.Execute(name, plan)
	if measurementErr, ok := err.(*scaling.MeasurementError); ok {
		logrus.Debugf("%+v", measurementErr.Err)
		fmt.Printf("❌ Failed to extract time from %s:\n%s\n", measurementErr.Run, measurementErr.Output)
		os.Exit(1)
	}
	errutil.CheckWithContext(err, "Cannot run "+name)
	return dataset
}

func save(records metadata.Metadata, dataset measurement.Dataset, path string) {
	errutil.CheckWithContext(measurement.WriteCSV(path, dataset), "Cannot save "+dataset.Name)
	errutil.CheckWithContext(metadata.RecordDataset(records, dataset), "Cannot record "+dataset.Name+" in metadata")
}

func present() {
	strong, err := measurement.ReadCSV(scaling.StrongOutputFlag.Value(), scaling.StrongScaling)
	errutil.CheckWithContext(err, "Cannot load strong scaling results")
	weak, err := measurement.ReadCSV(scaling.WeakOutputFlag.Value(), scaling.WeakScaling)
	errutil.CheckWithContext(err, "Cannot load weak scaling results")

	errutil.CheckWithContext(visualization.Present(os.Stdout, strong, weak, visualization.DefaultPaths()), "Cannot present all results")
}
