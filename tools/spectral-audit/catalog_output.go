package main

import (
	"os"
	"text/template"
	"time"
)

const catalogSuffix = "_spectral_catalog.md"

type GenInfo struct {
	logWriter   *LogWriter
	ModuleName  string
	VersionText string
	CreateDate  string
	Sites       []*AssertSite
}

const catalogTemplate = `# Assertion catalog for {{.ModuleName}}

Generated by {{.VersionText}} on {{.CreateDate}}. Do not edit.

| Assertion | Family | Constructor | Package | Function | File | Line |
|---|---|---|---|---|---|---|
{{- range .Sites}}
| {{.Assertion}} | {{.Family}} | {{.Constructor}} | {{.Classname}} | {{.Funcname}}{{if .Receiver}} ({{.Receiver}}){{end}} | {{.Filename}} | {{.Line}} |
{{- end}}
`

// WriteAssertionCatalog renders every cataloged call site into a
// markdown table at catalogPath. The file is created or truncated.
func (aScanner *AssertionScanner) WriteAssertionCatalog(versionText string, catalogPath string) error {
	now := time.Now()
	createDate := now.Format("Mon Jan 2 15:04:05 MST 2006")

	genInfo := GenInfo{
		ModuleName:  aScanner.moduleName,
		VersionText: versionText,
		CreateDate:  createDate,
		Sites:       aScanner.sites,
		logWriter:   aScanner.logWriter,
	}

	tmpl, err := template.New("catalog").Parse(catalogTemplate)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(catalogPath, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer file.Close()
	if err = file.Truncate(0); err != nil {
		return err
	}

	if err = tmpl.Execute(file, &genInfo); err != nil {
		return err
	}
	genInfo.logWriter.Printf("Assertion Catalog: %q", catalogPath)
	return nil
}
