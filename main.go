package main

import (
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"os"
	"path/filepath"
	"pkgkit/inspect"
	"pkgkit/listing"
	"pkgkit/models"
	"pkgkit/wheel"
	"strings"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pkgkit",
		Short: "Small utilities for inspecting packages and wheel archives",
	}
	rootCtx    = models.RootCtx{}
	inspectCtx = inspect.Inspector{}
	builderCtx = wheel.Builder{}
	listerCtx  = listing.Lister{}

	buildFirst bool
	wheelFile  string
)

func resolvePath(path string) string {
	resolved, err := homedir.Expand(path)
	if err != nil {
		log.Fatalf("Failed to resolve path with home dir: %s: %s", path, err)
	}
	absolute, err := filepath.Abs(resolved)
	if err != nil {
		log.Fatalf("Failed to resolve absolute path: %s: %s", absolute, err)
	}
	return absolute
}

func processRootConfig() models.RootCtx {
	b, err := humanize.ParseBytes(rootCtx.LargeEntryThreshold)
	if err != nil {
		log.Fatalf("Unable to parse threshold %s as a size", rootCtx.LargeEntryThreshold)
	}
	rootCtx.LargeEntryThresholdBytes = b

	switch strings.ToUpper(rootCtx.LogLevel) {
	case "TRACE":
		log.SetLevel(log.TraceLevel)
		rootCtx.LogLevel = "TRACE"
	case "DEBUG":
		log.SetLevel(log.DebugLevel)
		rootCtx.LogLevel = "DEBUG"
	case "INFO":
		log.SetLevel(log.InfoLevel)
		rootCtx.LogLevel = "INFO"
	default:
		log.Fatalf("Unknown log level: %s", rootCtx.LogLevel)
	}
	return rootCtx
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&rootCtx.LogLevel,
		"logging",
		"",
		"INFO",
		"The level of logging to use")
	rootCmd.PersistentFlags().StringVarP(&rootCtx.LargeEntryThreshold,
		"large-threshold",
		"",
		"1MB",
		"Highlight archive entries larger than this size")

	var inspectCmd = cobra.Command{
		Use:   "inspect [options] package",
		Short: "Categorizes a package's exported types, functions, and constants",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			inspectCtx.RootCtx = processRootConfig()
			if len(args) == 1 {
				inspectCtx.Pattern = args[0]
			}
			if inspectCtx.Dir != "" {
				inspectCtx.Dir = resolvePath(inspectCtx.Dir)
			}
			log.Infof("=== %s Package Methods and Attributes ===", inspectCtx.Pattern)
			report, err := inspectCtx.Analyze()
			if err != nil {
				log.Errorf("Error listing %s methods: %s", inspectCtx.Pattern, err)
				log.Error("The package may not be importable or may fail to type-check.")
				return
			}
			printModuleReport(report)
		},
	}
	inspectCmd.PersistentFlags().StringVarP(&inspectCtx.Pattern,
		"package",
		"",
		".",
		"Package pattern to inspect")
	inspectCmd.PersistentFlags().StringVarP(&inspectCtx.Dir,
		"dir",
		"",
		"",
		"Directory to load the package from")
	rootCmd.AddCommand(&inspectCmd)

	var buildCmd = cobra.Command{
		Use:   "build [options]",
		Short: "Builds a wheel file for the current project",
		Run: func(cmd *cobra.Command, args []string) {
			builderCtx.RootCtx = processRootConfig()
			path := builderCtx.Build()
			if path == "" {
				log.Error("Failed to build wheel file.")
				os.Exit(1)
			}
			log.Infof("Wheel file: %s", resolvePath(path))
		},
	}
	addBuildFlags(&buildCmd)
	rootCmd.AddCommand(&buildCmd)

	var listCmd = cobra.Command{
		Use:   "list [options]",
		Short: "Lists the files contained in a wheel archive",
		Run: func(cmd *cobra.Command, args []string) {
			builderCtx.RootCtx = processRootConfig()
			listerCtx.RootCtx = builderCtx.RootCtx
			if listerCtx.SavePath != "" {
				listerCtx.SavePath = resolvePath(listerCtx.SavePath)
			}

			var path string
			switch {
			case buildFirst:
				path = builderCtx.Build()
				if path == "" {
					log.Error("Failed to build wheel file.")
					os.Exit(1)
				}
			case wheelFile != "":
				path = resolvePath(wheelFile)
			default:
				wheels := wheel.FindWheels(builderCtx.OutputDir)
				if len(wheels) == 0 {
					log.Error("No wheel file found. Use --build to create one or --wheel to specify a path.")
					os.Exit(1)
				}
				path = wheels[0]
				log.Infof("Found existing wheel file: %s", path)
			}

			report := listerCtx.List(path)
			if len(report.Entries) == 0 {
				os.Exit(1)
			}
		},
	}
	addBuildFlags(&listCmd)
	listCmd.PersistentFlags().BoolVarP(&buildFirst,
		"build",
		"",
		false,
		"Build the wheel file before listing it")
	listCmd.PersistentFlags().StringVarP(&wheelFile,
		"wheel",
		"",
		"",
		"Path to an existing wheel file to examine")
	listCmd.PersistentFlags().BoolVarP(&listerCtx.Detailed,
		"detailed",
		"",
		false,
		"Show detailed file information (size, compression, etc.)")
	listCmd.PersistentFlags().StringVarP(&listerCtx.SavePath,
		"save",
		"",
		"",
		"Save the file list to the specified file")
	rootCmd.AddCommand(&listCmd)
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&builderCtx.OutputDir,
		"output-dir",
		"",
		"dist",
		"Directory for wheel output")
	cmd.PersistentFlags().StringVarP(&builderCtx.PythonCommand,
		"python",
		"",
		"python3",
		"Path to Python command")
}

func initConfig() {
}

func printModuleReport(report models.ModuleReport) {
	log.Infof("Total attributes found: %d", report.TotalAttributes)

	log.Info("")
	log.Infof("--- Classes (%d) ---", len(report.Classes))
	for _, name := range report.Classes {
		log.Infof("  %s", name)
	}

	log.Info("")
	log.Infof("--- Methods/Functions (%d) ---", len(report.Functions))
	for _, name := range report.Functions {
		log.Infof("  %s", name)
	}

	log.Info("")
	log.Infof("--- Constants/Variables (%d) ---", len(report.Constants))
	for _, name := range report.Constants {
		log.Infof("  %s", name)
	}

	log.Info("")
	log.Info("--- Detailed Class Information ---")
	for _, cls := range report.Details {
		log.Infof("%s: %d methods", cls.Name, len(cls.Methods))
		shown, extra := inspect.PreviewMethods(cls.Methods)
		for _, m := range shown {
			log.Infof("    - %s", m)
		}
		if extra > 0 {
			log.Infof("    ... and %d more", extra)
		}
	}
}

type LogFormatter struct {
}

func (*LogFormatter) Format(entry *log.Entry) ([]byte, error) {
	if entry.Level >= log.DebugLevel {
		return []byte(color.New(color.FgWhite).Sprintf("%s\n", entry.Message)), nil
	} else {
		return []byte(color.New(color.Reset).Sprintf("%s\n", entry.Message)), nil
	}
}

func main() {
	log.SetFormatter(&LogFormatter{})
	rootCmd.Execute()
}
