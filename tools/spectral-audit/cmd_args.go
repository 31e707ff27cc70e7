package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// Capitalized struct items are accessed outside this file
type CommandArgs struct {
	logWriter     *LogWriter
	catalogDir    string
	inputDir      string
	VersionText   string
	ShowVersion   bool
	InvalidArgs   bool
	skipTestFiles bool
}

func ParseArgs(versionText string) *CommandArgs {
	versionPtr := flag.Bool("version", false, "the current version of this application")
	logfilePtr := flag.String("logfile", "", "file path to log into (default=stderr)")
	verbosePtr := flag.Int("V", 0, "verbosity level (default to 0)")
	catalogDirPtr := flag.String("catalog_dir", "", "directory where the assertion catalog will be written (default: the project dir)")
	skipTestFilesPtr := flag.Bool("skip_test_files", false, "Skip cataloging for '*_test.go' files (default to false)")
	flag.Parse()

	cmdArgs := CommandArgs{
		InvalidArgs: false,
		ShowVersion: *versionPtr,
	}

	if cmdArgs.ShowVersion {
		return &cmdArgs
	}

	cmdArgs.logWriter = NewLogWriter(*logfilePtr, *verbosePtr)
	cmdArgs.catalogDir = strings.TrimSpace(*catalogDirPtr)
	cmdArgs.VersionText = versionText
	cmdArgs.skipTestFiles = *skipTestFilesPtr

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "%s", strings.TrimSpace(versionText))
		fmt.Fprintf(os.Stderr, "\n\n")
		fmt.Fprintf(os.Stderr, "  $ spectral-audit [options] go_project_dir\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "  - The go_project_dir should contain a valid go.mod file\n")
		fmt.Fprintf(os.Stderr, "\n\n")
		fmt.Fprintf(os.Stderr, "The assertion catalog will be written to:\n")
		fmt.Fprintf(os.Stderr, "  <module-name>_spectral_catalog.md\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "  - Override the directory using '-catalog_dir path_to_directory'\n")
		fmt.Fprintf(os.Stderr, "\n\n")
		flag.Usage()
		cmdArgs.InvalidArgs = true
		return &cmdArgs
	}

	cmdArgs.inputDir = flag.Arg(0)

	if !IsGoAvailable() {
		fmt.Fprint(os.Stderr, "Go toolchain not available\n")
		cmdArgs.InvalidArgs = true
	}

	return &cmdArgs
}

func (ca *CommandArgs) ShowArguments() {
	ca.logWriter.Printf("inputDir: %q", ca.inputDir)
	if ca.catalogDir != "" {
		ca.logWriter.Printf("catalogDir: %q", ca.catalogDir)
	}

	// Intentional: no need to show anything if not skipping
	if ca.skipTestFiles {
		ca.logWriter.Printf("skipTestFiles: %t", ca.skipTestFiles)
	}
}

// CatalogPath composes the file path that will receive the catalog.
// Module names can contain "/" (and, less likely, "\"); both are
// replaced with "_V_" so the module name can serve as a file name.
func (ca *CommandArgs) CatalogPath(moduleName string) string {
	catalogDir := ca.catalogDir
	if catalogDir == "" {
		catalogDir = GetAbsoluteDirectory(ca.inputDir)
	}
	tempName := strings.ReplaceAll(moduleName, "/", "_V_")
	flattenedModuleName := strings.ReplaceAll(tempName, "\\", "_V_")
	return filepath.Join(catalogDir, flattenedModuleName+catalogSuffix)
}

func GetModuleName(inputDir string) (moduleName string, err error) {
	var moduleData []byte
	moduleName = ""
	var f *modfile.File = nil
	moduleFilenamePath := filepath.Join(inputDir, "go.mod")
	if moduleData, err = os.ReadFile(moduleFilenamePath); err != nil {
		return
	}

	if f, err = modfile.ParseLax("go.mod", moduleData, nil); err == nil {
		moduleName = f.Module.Mod.Path
	}
	return
}

func GetAbsoluteDirectory(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}

func IsGoAvailable() bool {
	cmd := exec.Command("go", "version")
	output, err := cmd.Output()
	if err != nil {
		return false
	}

	// go version is expected to output 1 line containing 4 space-delimited items
	// Typical output expected is:
	//
	//   go version go1.21.5 linux/amd64
	//
	// verify we get this 'shape' output
	parts := strings.Split(strings.TrimSpace(string(output)), " ")
	if len(parts) < 4 {
		return false
	}
	return (parts[0] == "go") && (parts[1] == "version") && strings.HasPrefix(parts[2], "go")
}
