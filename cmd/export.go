package cmd

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/noisesched/noisesched/sched"
)

var (
	exportOut  string // output file (single schedule) or directory (spec)
	exportSpec string // YAML spec listing named schedules
)

// exportCmd writes the per-step statistics as CSV, either for one schedule
// described by flags or for every named schedule in a YAML spec.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export schedule statistics as CSV",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		if exportSpec != "" {
			exportFromSpec(exportSpec, exportOut)
			return
		}

		records := sched.Generate(parseParams())
		w := os.Stdout
		if exportOut != "" {
			file, err := os.Create(exportOut)
			if err != nil {
				logrus.Fatalf("Failed to create output file: %v", err)
			}
			defer func() { _ = file.Close() }()
			w = file
		}
		if err := sched.WriteCSV(w, records); err != nil {
			logrus.Fatalf("CSV export failed: %v", err)
		}
	},
}

// exportFromSpec writes one CSV per named schedule into outDir.
func exportFromSpec(specPath, outDir string) {
	spec, err := sched.LoadSpec(specPath)
	if err != nil {
		logrus.Fatalf("Failed to load schedule spec: %v", err)
	}
	if err := spec.Validate(); err != nil {
		logrus.Fatalf("Invalid schedule spec: %v", err)
	}
	if outDir == "" {
		outDir = "."
	}

	for _, ns := range spec.Schedules {
		records := sched.Generate(ns.Params)
		path := filepath.Join(outDir, ns.Name+".csv")
		file, err := os.Create(path)
		if err != nil {
			logrus.Fatalf("Failed to create %s: %v", path, err)
		}
		if err := sched.WriteCSV(file, records); err != nil {
			_ = file.Close()
			logrus.Fatalf("CSV export for %s failed: %v", ns.Name, err)
		}
		if err := file.Close(); err != nil {
			logrus.Fatalf("Failed to close %s: %v", path, err)
		}
		logrus.Infof("Wrote %d records to %s", len(records), path)
	}
}

func init() {
	addScheduleFlags(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default stdout), or directory when --spec is used")
	exportCmd.Flags().StringVar(&exportSpec, "spec", "", "YAML spec of named schedules to export")

	rootCmd.AddCommand(exportCmd)
}
