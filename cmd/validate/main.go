package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/plot-engine/pkg/beatsheet"
)

// validate checks custom beat sheet template files before deployment:
// YAML shape, percentage ordering, and file naming conventions.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <template.yaml> [template.yaml ...]\n", os.Args[0])
		os.Exit(1)
	}

	failed := false
	for _, filename := range os.Args[1:] {
		if err := validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", filename, err)
			failed = true
			continue
		}
		fmt.Printf("OK   %s\n", filename)
	}
	if failed {
		os.Exit(1)
	}
}

var validTemplateFilename = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func validateFile(filename string) error {
	baseName := filepath.Base(filename)
	ext := filepath.Ext(baseName)
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("template file must have .yaml or .yml extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ext)
	if !validTemplateFilename.MatchString(nameWithoutExt) {
		return fmt.Errorf("template filename %q must be lowercase snake_case (e.g. hero_journey.yaml)", baseName)
	}

	t, err := beatsheet.LoadTemplateFile(filename)
	if err != nil {
		return err
	}

	name := strings.ToLower(t.Name)
	if name == beatsheet.DefaultTemplateName {
		return fmt.Errorf("template name %q is reserved", t.Name)
	}
	for _, builtin := range beatsheet.NewRegistry().Names() {
		if name == builtin {
			return fmt.Errorf("template name %q shadows a built-in template", t.Name)
		}
	}

	fmt.Printf("     %q: %d beats, %.0f%% to %.0f%%\n",
		t.Name, len(t.Beats), t.Beats[0].Percentage, t.Beats[len(t.Beats)-1].Percentage)
	return nil
}
