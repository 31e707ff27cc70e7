package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"
)

// spectralPackageName is the import path that assertion chains must be
// rooted in for a call site to be cataloged.
const spectralPackageName = "github.com/spectral-go/spectral"

// PredicateInfo describes one predicate method of the spectral API.
type PredicateInfo struct {
	TargetFunc string
	Family     string
}

type PredicateHints map[string]*PredicateInfo

func SetupHintMap() PredicateHints {
	hintMap := make(PredicateHints)

	for _, name := range []string{
		"IsLessThan",
		"IsLessThanOrEqualTo",
		"IsGreaterThan",
		"IsGreaterThanOrEqualTo",
	} {
		hintMap[name] = &PredicateInfo{TargetFunc: name, Family: "ordering"}
	}
	for _, name := range []string{"IsEqualTo", "IsNotEqualTo"} {
		hintMap[name] = &PredicateInfo{TargetFunc: name, Family: "equality"}
	}
	for _, name := range []string{
		"Contains",
		"StartsWith",
		"EndsWith",
		"IsEmpty",
		"HasLength",
	} {
		hintMap[name] = &PredicateInfo{TargetFunc: name, Family: "string"}
	}
	for _, name := range []string{"IsTrue", "IsFalse"} {
		hintMap[name] = &PredicateInfo{TargetFunc: name, Family: "boolean"}
	}
	return hintMap
}

func (m PredicateHints) HintsForName(name string) *PredicateInfo {
	if v, ok := m[name]; ok {
		return v
	}
	return nil
}

// The entry points that can root an assertion chain.
var constructorNames = map[string]bool{
	"That":    true,
	"Ordered": true,
	"Str":     true,
	"Bool":    true,
}

// AssertSite is one predicate call found in the scanned source.
type AssertSite struct {
	*PredicateInfo
	Assertion   string
	Constructor string
	Classname   string
	Funcname    string
	Receiver    string
	Filename    string
	Line        int
}

// Capitalized struct items are accessed outside this file
type AssertionScanner struct {
	hintMap        PredicateHints
	fset           *token.FileSet
	logWriter      *LogWriter
	funcName       string
	receiver       string
	packageName    string
	moduleName     string
	sites          []*AssertSite
	imports        []string
	scanned        map[string]bool
	filesCataloged int
}

func NewAssertionScanner(moduleName string) *AssertionScanner {
	logWriter := GetLogWriter()
	if logWriter.VerboseLevel(2) {
		logWriter.Printf(">> Module: %s\n", moduleName)
	}

	aScanner := AssertionScanner{
		moduleName:     moduleName,
		fset:           token.NewFileSet(),
		imports:        []string{},
		sites:          []*AssertSite{},
		scanned:        map[string]bool{},
		funcName:       "",
		receiver:       "",
		packageName:    "",
		hintMap:        SetupHintMap(),
		filesCataloged: 0,
		logWriter:      logWriter,
	}
	return &aScanner
}

func (aScanner *AssertionScanner) ScanFile(file_path string) error {
	var file *ast.File
	var err error

	// Test packages revisit the files of the package under test
	if aScanner.scanned[file_path] {
		return nil
	}
	aScanner.scanned[file_path] = true

	aScanner.logWriter.Printf("Cataloging %s", file_path)
	aScanner.reset_for_file(file_path)
	if file, err = parser.ParseFile(aScanner.fset, file_path, nil, 0); err != nil {
		return err
	}

	ast.Inspect(file, aScanner.node_inspector)
	aScanner.filesCataloged++
	return nil
}

func (aScanner *AssertionScanner) Sites() []*AssertSite {
	return aScanner.sites
}

func (aScanner *AssertionScanner) HasAssertionsDefined() bool {
	return len(aScanner.sites) > 0
}

func (aScanner *AssertionScanner) SummarizeWork() {
	numCataloged := aScanner.filesCataloged
	aScanner.logWriter.Printf("%d '.go' %s cataloged", numCataloged, Pluralize(numCataloged, "file"))
}

func (aScanner *AssertionScanner) reset_for_file(file_path string) {
	if aScanner.logWriter.VerboseLevel(2) {
		aScanner.logWriter.Printf(">>     File: %s\n", file_path)
	}
	aScanner.imports = []string{}
	aScanner.funcName = ""
	aScanner.packageName = ""
	aScanner.receiver = ""
}

func (aScanner *AssertionScanner) node_inspector(x ast.Node) bool {
	var call_expr *ast.CallExpr
	var func_decl *ast.FuncDecl
	var package_file *ast.File
	var import_spec *ast.ImportSpec
	var ok bool
	var path_name string

	if aScanner.packageName == "" {
		if package_file, ok = x.(*ast.File); ok {
			aScanner.packageName = package_file.Name.Name
		}
	}

	if import_spec, ok = x.(*ast.ImportSpec); ok {
		path_name, _ = strconv.Unquote(import_spec.Path.Value)
		alias := ""
		if import_spec.Name != nil {
			alias = import_spec.Name.Name
		}
		if path_name == spectralPackageName {
			call_qualifier := path.Base(path_name)
			if alias != "" {
				call_qualifier = alias
			}
			aScanner.imports = append(aScanner.imports, call_qualifier)
		}

		return true // ast.Inspect() can deal with this
	}

	// Track current funcName and receiver (type)
	if func_decl, ok = x.(*ast.FuncDecl); ok {
		aScanner.funcName = NAME_NOT_AVAILABLE
		if func_ident := func_decl.Name; func_ident != nil {
			aScanner.funcName = func_ident.Name
		}
		aScanner.receiver = ""
		if recv := func_decl.Recv; recv != nil {
			if num_fields := recv.NumFields(); num_fields > 0 {
				if field_list := recv.List; field_list != nil {
					if recv_type := field_list[0].Type; recv_type != nil {
						aScanner.receiver = types.ExprString(recv_type)
					}
				}
			}
		}
		if aScanner.logWriter.VerboseLevel(2) {
			aScanner.logWriter.Printf(">>       Func: %s %s\n", aScanner.funcName, aScanner.receiver)
		}
	}

	if call_expr, ok = x.(*ast.CallExpr); ok {
		var sel_expr *ast.SelectorExpr
		if sel_expr, ok = call_expr.Fun.(*ast.SelectorExpr); ok {
			target_func := sel_expr.Sel.Name
			if hints := aScanner.hintMap.HintsForName(target_func); hints != nil {
				qualifier, constructor := chain_root(sel_expr.X)
				if aScanner.is_spectral_import(qualifier) && constructorNames[constructor] {
					full_position := aScanner.fset.Position(sel_expr.Sel.Pos())
					site := AssertSite{
						Assertion:     target_func,
						Constructor:   constructor,
						Classname:     aScanner.packageName,
						Funcname:      aScanner.funcName,
						Receiver:      aScanner.receiver,
						Filename:      full_position.Filename,
						Line:          full_position.Line,
						PredicateInfo: hints,
					}
					aScanner.sites = append(aScanner.sites, &site)
				}
			}
		}
	}
	return true
}

func (aScanner *AssertionScanner) is_spectral_import(qualifier string) bool {
	for _, import_name := range aScanner.imports {
		if import_name == qualifier {
			return true
		}
	}
	return false
}

// chain_root walks a predicate chain down to the call that created the
// container, returning the package qualifier and constructor name.
//
// For `spectral.Ordered(t, n).IsGreaterThan(0).IsLessThan(10)` every
// predicate's receiver expression eventually bottoms out at the
// SelectorExpr `spectral.Ordered`, which is what gets returned.
func chain_root(expr ast.Expr) (qualifier string, constructor string) {
	for {
		switch node := expr.(type) {
		case *ast.CallExpr:
			expr = node.Fun
		case *ast.SelectorExpr:
			if ident, ok := node.X.(*ast.Ident); ok {
				return ident.Name, node.Sel.Name
			}
			expr = node.X
		default:
			return "", ""
		}
	}
}

// package_list recursively gathers the package paths of moduleName that
// are reachable from the module root.
func package_list(module_name string, root string) []string {
	cfg := &packages.Config{
		Mode: packages.NeedModule | packages.NeedName | packages.NeedImports | packages.NeedDeps,
	}
	all_pkg_names := []string{}
	var all_pkgs []*packages.Package
	start_name := module_name
	if len(root) > 0 {
		start_name = root
	}
	module_prefix := module_name + "/"

	all_pkg_names = append(all_pkg_names, start_name)
	all_pkgs, _ = packages.Load(cfg, start_name)
	for _, pkg := range all_pkgs {
		for k, v := range pkg.Imports {
			if strings.HasPrefix(k, module_prefix) {
				all_pkg_names = append(all_pkg_names, package_list(module_name, v.PkgPath)...)
			}
		}
	}
	return all_pkg_names
}

// ScanModule loads every package of the module and catalogs the
// compiled go files of each one.
func (aScanner *AssertionScanner) ScanModule(skipTestFiles bool) {
	all_names := package_list(aScanner.moduleName, "")

	cfg := &packages.Config{
		Mode:  packages.NeedModule | packages.NeedCompiledGoFiles | packages.NeedName,
		Tests: !skipTestFiles,
	}

	all_pkgs, _ := packages.Load(cfg, all_names...)
	for _, pkg := range all_pkgs {
		if aScanner.logWriter.VerboseLevel(2) {
			aScanner.logWriter.Printf(">>   Package: %s (%s)\n", pkg.Name, pkg.PkgPath)
		}
		for _, file_path := range pkg.CompiledGoFiles {
			base_name := path.Base(file_path)
			if skipTestFiles && strings.HasSuffix(base_name, "_test.go") {
				continue
			}
			if !strings.HasSuffix(base_name, ".go") {
				continue
			}
			if err := aScanner.ScanFile(file_path); err != nil {
				aScanner.logWriter.Printf("Error cataloging %s: %v", file_path, err)
			}
		}
	}
}

const NAME_NOT_AVAILABLE = "anonymous"

func Pluralize(num int, text string) string {
	if num == 1 {
		return text
	}
	return text + "s"
}
