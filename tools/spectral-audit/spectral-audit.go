// spectral-audit scans a Go module for spectral assertion call sites
// and writes a markdown catalog of every predicate found, with its
// family, enclosing function, file and line. This gives reviewers a
// single place to see which invariants a test suite actually checks.
//
// Usage:
//
//	$ spectral-audit [options] go_project_dir
package main

import (
	"fmt"
	"os"
)

const versionText = "spectral-audit v0.3.0"

func main() {
	cmdArgs := ParseArgs(versionText)
	if cmdArgs.ShowVersion {
		fmt.Println(versionText)
		os.Exit(0)
	}
	if cmdArgs.InvalidArgs {
		os.Exit(1)
	}

	logWriter := GetLogWriter()
	if logWriter.IsVerbose() {
		cmdArgs.ShowArguments()
	}

	projectDir := GetAbsoluteDirectory(cmdArgs.inputDir)
	moduleName, err := GetModuleName(projectDir)
	if err != nil {
		logWriter.Fatalf("unable to obtain go module name from %q: %v", projectDir, err)
	}

	// packages.Load resolves patterns relative to the working directory
	if err = os.Chdir(projectDir); err != nil {
		logWriter.Fatalf("unable to enter %q: %v", projectDir, err)
	}

	aScanner := NewAssertionScanner(moduleName)
	aScanner.ScanModule(cmdArgs.skipTestFiles)
	aScanner.SummarizeWork()

	if !aScanner.HasAssertionsDefined() {
		logWriter.Printf("No spectral assertions found in %s", moduleName)
		return
	}

	catalogPath := cmdArgs.CatalogPath(moduleName)
	if err = aScanner.WriteAssertionCatalog(versionText, catalogPath); err != nil {
		logWriter.Fatalf("unable to write assertion catalog: %v", err)
	}
}
