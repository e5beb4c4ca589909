package inspect

import (
	"go/constant"
	"go/token"
	"go/types"
	"testing"
)

// demoPackage builds a synthetic package with one exported type A carrying
// six exported methods, one exported function B, one exported constant,
// one exported variable, and one unexported function.
func demoPackage() *types.Package {
	pkg := types.NewPackage("example.com/demo", "demo")
	scope := pkg.Scope()

	obj := types.NewTypeName(token.NoPos, pkg, "A", nil)
	named := types.NewNamed(obj, types.NewStruct(nil, nil), nil)
	for _, name := range []string{"F", "G", "H", "I", "J", "K"} {
		recv := types.NewVar(token.NoPos, pkg, "a", types.NewPointer(named))
		sig := types.NewSignatureType(recv, nil, nil, nil, nil, false)
		named.AddMethod(types.NewFunc(token.NoPos, pkg, name, sig))
	}
	recv := types.NewVar(token.NoPos, pkg, "a", named)
	named.AddMethod(types.NewFunc(token.NoPos, pkg, "hidden", types.NewSignatureType(recv, nil, nil, nil, nil, false)))
	scope.Insert(obj)

	plain := types.NewSignatureType(nil, nil, nil, nil, nil, false)
	scope.Insert(types.NewFunc(token.NoPos, pkg, "B", plain))
	scope.Insert(types.NewFunc(token.NoPos, pkg, "internal", plain))
	scope.Insert(types.NewConst(token.NoPos, pkg, "Version", types.Typ[types.String], constant.MakeString("1.0")))
	scope.Insert(types.NewVar(token.NoPos, pkg, "Debug", types.Typ[types.Bool]))
	return pkg
}

func TestCategorizePartitionsExportedNames(t *testing.T) {
	report := Categorize(demoPackage())

	if report.TotalAttributes != 5 {
		t.Fatalf("expected 5 scope names, got %d", report.TotalAttributes)
	}
	if len(report.Classes) != 1 || report.Classes[0] != "A" {
		t.Fatalf("expected classes [A], got %v", report.Classes)
	}
	if len(report.Functions) != 1 || report.Functions[0] != "B" {
		t.Fatalf("expected functions [B], got %v", report.Functions)
	}
	wantConsts := []string{"Debug", "Version"}
	if len(report.Constants) != len(wantConsts) {
		t.Fatalf("expected constants %v, got %v", wantConsts, report.Constants)
	}
	for i := range wantConsts {
		if report.Constants[i] != wantConsts[i] {
			t.Fatalf("expected constants %v, got %v", wantConsts, report.Constants)
		}
	}
}

func TestCategorizeCollectsExportedMethods(t *testing.T) {
	report := Categorize(demoPackage())

	if len(report.Details) != 1 {
		t.Fatalf("expected one class detail, got %d", len(report.Details))
	}
	cls := report.Details[0]
	if cls.Name != "A" {
		t.Fatalf("expected class A, got %s", cls.Name)
	}
	want := []string{"F", "G", "H", "I", "J", "K"}
	if len(cls.Methods) != len(want) {
		t.Fatalf("expected methods %v, got %v", want, cls.Methods)
	}
	for i := range want {
		if cls.Methods[i] != want[i] {
			t.Fatalf("expected methods %v, got %v", want, cls.Methods)
		}
	}
}

func TestPreviewMethodsTruncatesToFive(t *testing.T) {
	report := Categorize(demoPackage())
	shown, extra := PreviewMethods(report.Details[0].Methods)

	if len(shown) != 5 {
		t.Fatalf("expected 5 previewed methods, got %d", len(shown))
	}
	if extra != 1 {
		t.Fatalf("expected 1 hidden method, got %d", extra)
	}
}

func TestPreviewMethodsShortList(t *testing.T) {
	shown, extra := PreviewMethods([]string{"F", "G"})
	if len(shown) != 2 || extra != 0 {
		t.Fatalf("expected full short list with no remainder, got %v and %d", shown, extra)
	}

	shown, extra = PreviewMethods(nil)
	if len(shown) != 0 || extra != 0 {
		t.Fatalf("expected empty preview, got %v and %d", shown, extra)
	}
}
