package wheel

import (
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"

	"pkgkit/models"
)

type Builder struct {
	RootCtx       models.RootCtx
	OutputDir     string
	PythonCommand string
}

// Build produces a wheel for the project in the current directory and
// returns its path. An empty path signals failure; build errors are logged
// here and never propagate to the caller.
func (b *Builder) Build() string {
	log.Info("Building wheel file...")

	if err := os.MkdirAll(b.OutputDir, 0o755); err != nil {
		log.Errorf("Unable to create output directory %s: %s", b.OutputDir, err)
		return ""
	}

	// pip does the heavy lifting. --no-deps keeps dependency wheels out
	// of the output directory.
	cmd := exec.Command(b.PythonCommand,
		"-m",
		"pip",
		"wheel",
		".",
		"--wheel-dir",
		b.OutputDir,
		"--no-deps")
	out, err := cmd.CombinedOutput()
	if err != nil {
		log.Errorf("Error building wheel: %s", err)
		log.Errorf("Output: %s", string(out))
		return ""
	}

	log.Info("Wheel build completed successfully!")
	log.Debugf("Output: %s", string(out))

	wheels := FindWheels(b.OutputDir)
	if len(wheels) == 0 {
		log.Error("No wheel file found after build.")
		return ""
	}
	return wheels[0]
}

// FindWheels returns all wheel files in dir, sorted by name.
func FindWheels(dir string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, "*.whl"))
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}
