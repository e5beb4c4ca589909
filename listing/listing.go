package listing

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"

	"pkgkit/models"
)

type Lister struct {
	RootCtx  models.RootCtx
	Detailed bool
	SavePath string
}

// List opens the wheel, builds its report sorted by filename, prints it,
// and optionally persists it. Failures are logged and yield an empty
// report; callers treat an empty entry list as overall failure.
func (l *Lister) List(wheelPath string) models.WheelReport {
	if _, err := os.Stat(wheelPath); err != nil {
		log.Errorf("Wheel file not found: %s", wheelPath)
		return models.WheelReport{}
	}

	zr, err := zip.OpenReader(wheelPath)
	if err != nil {
		log.Errorf("Error: %s is not a valid zip/wheel file", wheelPath)
		return models.WheelReport{}
	}
	defer zr.Close()

	report := models.WheelReport{}
	for _, f := range zr.File {
		report.Entries = append(report.Entries, models.WheelEntry{
			Filename:       f.Name,
			Size:           f.UncompressedSize64,
			CompressedSize: f.CompressedSize64,
			Modified:       f.Modified,
		})
	}
	sort.Slice(report.Entries, func(a, b int) bool {
		return report.Entries[a].Filename < report.Entries[b].Filename
	})
	for _, e := range report.Entries {
		report.TotalSize += e.Size
		report.TotalCompressed += e.CompressedSize
	}

	l.print(wheelPath, report)
	if l.SavePath != "" {
		l.save(report)
	}
	return report
}

func (l *Lister) print(wheelPath string, report models.WheelReport) {
	log.Info("")
	log.Infof("Contents of wheel file: %s", filepath.Base(wheelPath))
	log.Info(strings.Repeat("=", 60))

	for _, e := range report.Entries {
		if l.Detailed {
			// Highlight any entry larger than the large entry threshold
			sizeColor := color.New(color.Reset)
			if e.Size > l.RootCtx.LargeEntryThresholdBytes {
				sizeColor = color.New(color.BgRed)
			}
			log.Infof("%-50s %s (%8d compressed, %5.1f%% saved)",
				e.Filename,
				sizeColor.Sprintf("%8d bytes", e.Size),
				e.CompressedSize,
				e.CompressionRatio())
		} else {
			log.Info(e.Filename)
		}
	}

	log.Info("")
	log.Infof("Total files: %d", len(report.Entries))
	if l.Detailed {
		log.Infof("Total size: %s bytes", humanize.Comma(int64(report.TotalSize)))
		log.Infof("Compressed size: %s bytes", humanize.Comma(int64(report.TotalCompressed)))
		log.Infof("Overall compression: %.1f%%", report.OverallRatio())
	}
}

// save writes the report to the configured path. Persistence is a
// best-effort side step: a write failure is logged and does not affect
// the outcome of the listing itself.
func (l *Lister) save(report models.WheelReport) {
	f, err := os.Create(l.SavePath)
	if err != nil {
		log.Errorf("Error saving to file: %s", err)
		return
	}
	defer f.Close()

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	fmt.Fprintf(f, "Wheel File Contents\n")
	fmt.Fprintf(f, "Generated on: %s\n", cwd)
	fmt.Fprintf(f, "%s\n\n", strings.Repeat("=", 60))

	if l.Detailed {
		fmt.Fprintf(f, "%-50s %-10s %-10s %-8s\n", "Filename", "Size", "Compressed", "Saved")
		fmt.Fprintln(f, strings.Repeat("-", 80))
		for _, e := range report.Entries {
			fmt.Fprintf(f, "%-50s %-10d %-10d %-8.1f%%\n",
				e.Filename,
				e.Size,
				e.CompressedSize,
				e.CompressionRatio())
		}
		fmt.Fprintf(f, "\n%s\n", strings.Repeat("-", 80))
		fmt.Fprintf(f, "Total files: %d\n", len(report.Entries))
		fmt.Fprintf(f, "Total size: %s bytes\n", humanize.Comma(int64(report.TotalSize)))
		fmt.Fprintf(f, "Compressed size: %s bytes\n", humanize.Comma(int64(report.TotalCompressed)))
		fmt.Fprintf(f, "Overall compression: %.1f%%\n", report.OverallRatio())
	} else {
		for _, e := range report.Entries {
			fmt.Fprintln(f, e.Filename)
		}
		fmt.Fprintf(f, "\nTotal files: %d\n", len(report.Entries))
	}

	abs, err := filepath.Abs(l.SavePath)
	if err != nil {
		abs = l.SavePath
	}
	log.Info("")
	log.Infof("File list saved to: %s", abs)
}
