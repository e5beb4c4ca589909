package inspect

import (
	"fmt"
	"go/token"
	"go/types"
	"sort"

	"golang.org/x/tools/go/packages"

	"pkgkit/models"
)

// MethodPreviewLimit caps how many methods are shown per class in the
// detailed section of the report.
const MethodPreviewLimit = 5

type Inspector struct {
	RootCtx models.RootCtx
	Pattern string
	Dir     string
}

// Analyze loads the package named by the pattern and categorizes its
// exported names. Load and type-check errors are returned to the caller,
// which reports them without failing the process.
func (i *Inspector) Analyze() (models.ModuleReport, error) {
	pkg, err := i.load()
	if err != nil {
		return models.ModuleReport{}, err
	}
	return Categorize(pkg), nil
}

func (i *Inspector) load() (*types.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
		Dir:  i.Dir,
	}
	pkgs, err := packages.Load(cfg, i.Pattern)
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages matched %s", i.Pattern)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("%s", pkg.Errors[0])
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("no type information available for %s", i.Pattern)
	}
	return pkg.Types, nil
}

// Categorize partitions the package scope's exported names into classes
// (named types), methods (package-level functions), and constants (consts
// and vars). Every exported name lands in exactly one list. Unexported
// names still count toward TotalAttributes, matching what the scope holds.
func Categorize(pkg *types.Package) models.ModuleReport {
	scope := pkg.Scope()
	names := scope.Names()
	report := models.ModuleReport{TotalAttributes: len(names)}

	for _, name := range names {
		if !token.IsExported(name) {
			continue
		}
		switch obj := scope.Lookup(name).(type) {
		case *types.TypeName:
			report.Classes = append(report.Classes, name)
			report.Details = append(report.Details, classInfo(obj))
		case *types.Func:
			report.Functions = append(report.Functions, name)
		default:
			report.Constants = append(report.Constants, name)
		}
	}

	sort.Strings(report.Classes)
	sort.Strings(report.Functions)
	sort.Strings(report.Constants)
	return report
}

func classInfo(tn *types.TypeName) models.ClassInfo {
	info := models.ClassInfo{Name: tn.Name()}
	named, ok := tn.Type().(*types.Named)
	if !ok {
		// Aliases carry no method set of their own
		return info
	}
	for i := 0; i < named.NumMethods(); i++ {
		if m := named.Method(i); m.Exported() {
			info.Methods = append(info.Methods, m.Name())
		}
	}
	return info
}

// PreviewMethods trims a method list to the preview limit and reports how
// many entries were cut off.
func PreviewMethods(methods []string) ([]string, int) {
	if len(methods) <= MethodPreviewLimit {
		return methods, 0
	}
	return methods[:MethodPreviewLimit], len(methods) - MethodPreviewLimit
}
