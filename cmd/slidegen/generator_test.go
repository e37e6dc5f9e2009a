package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHandlerExpr(t *testing.T) {
	up := Directions[0]
	down := Directions[1]

	tests := []struct {
		name string
		d    Direction
		n    int
		want string
	}{
		{"UpIdentity", up, 0, "r"},
		{"UpWithin", up, 4, "slideWithinHalf[dirUp](r, 4)"},
		{"UpHalf", up, 16, "slideHalf[dirUp](r)"},
		{"UpAcross", up, 20, "slideAcrossHalf[dirUp](r, 20)"},
		{"UpAll", up, 32, "register{}"},
		{"DownWithin", down, 15, "slideWithinHalf[dirDown](r, 15)"},
		{"DownHalf", down, 16, "slideHalf[dirDown](r)"},
		{"DownAcross", down, 31, "slideAcrossHalf[dirDown](r, 31)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handlerExpr(tt.d, tt.n); got != tt.want {
				t.Errorf("handlerExpr(%s, %d) = %q, want %q", tt.d.Name, tt.n, got, tt.want)
			}
		})
	}
}

func TestGenerateParses(t *testing.T) {
	gen := &Generator{OutputDir: t.TempDir(), Package: "hwy", FileName: "zslide_table.go"}
	src, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, gen.Path(), src, 0)
	if err != nil {
		t.Fatalf("generated source does not parse: %v", err)
	}

	var funcs, tables int
	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.FuncDecl:
			funcs++
		case *ast.GenDecl:
			if decl.Tok == token.VAR {
				tables++
			}
		}
	}
	if want := len(Directions) * (vecBytes + 1); funcs != want {
		t.Errorf("generated %d handlers, want %d", funcs, want)
	}
	if tables != len(Directions) {
		t.Errorf("generated %d tables, want %d", tables, len(Directions))
	}
	if !strings.HasPrefix(string(src), "// Code generated by slidegen. DO NOT EDIT.") {
		t.Errorf("generated source is missing the generated-code header")
	}
}

func TestGenerateAVX2(t *testing.T) {
	gen := &Generator{OutputDir: t.TempDir(), Package: "hwy", AVX2FileName: "zslide_avx2.go"}
	src, err := gen.GenerateAVX2()
	if err != nil {
		t.Fatalf("GenerateAVX2() error = %v", err)
	}
	if !strings.HasPrefix(string(src), "//go:build "+avx2BuildTag+"\n") {
		t.Errorf("AVX2 source does not start with the build constraint")
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, gen.AVX2Path(), src, 0)
	if err != nil {
		t.Fatalf("generated source does not parse: %v", err)
	}

	var funcs int
	for _, decl := range file.Decls {
		if _, ok := decl.(*ast.FuncDecl); ok {
			funcs++
		}
	}
	if want := len(Directions) * (vecBytes + 1); funcs != want {
		t.Errorf("generated %d AVX2 handlers, want %d", funcs, want)
	}

	// Every handler is fixed to one case: no classification and only
	// literal immediates.
	ast.Inspect(file, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Ident:
			if n.Name == "classifySlide" || n.Name == "slideBytes" {
				t.Errorf("%s: AVX2 handler refers to %s", fset.Position(n.Pos()), n.Name)
			}
		case *ast.CallExpr:
			sel, ok := n.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			var imms int
			switch sel.Sel.Name {
			case "ConcatShiftBytesRight":
				imms = 1
			case "Select128FromPair":
				imms = 2
			}
			for _, arg := range n.Args[:imms] {
				if lit, ok := arg.(*ast.BasicLit); !ok || lit.Kind != token.INT {
					t.Errorf("%s: %s immediate is not an integer literal", fset.Position(arg.Pos()), sel.Sel.Name)
				}
			}
		}
		return true
	})
}

func TestAVX2Body(t *testing.T) {
	up := Directions[0]
	down := Directions[1]

	tests := []struct {
		name string
		d    Direction
		n    int
		want []string
	}{
		{"UpIdentity", up, 0, []string{"return v"}},
		{"UpHalf", up, 16, []string{"return v.Select128FromPair(2, 0, archsimd.Uint8x32{})"}},
		{"DownHalf", down, 16, []string{"return v.Select128FromPair(1, 2, archsimd.Uint8x32{})"}},
		{"UpAll", up, 32, []string{"return archsimd.Uint8x32{}"}},
		{"UpWithin", up, 3, []string{
			"t := v.Select128FromPair(2, 0, archsimd.Uint8x32{})",
			"lo := v.GetLo().ConcatShiftBytesRight(13, t.GetLo())",
			"hi := v.GetHi().ConcatShiftBytesRight(13, t.GetHi())",
			"return v.SetLo(lo).SetHi(hi)",
		}},
		{"DownWithin", down, 3, []string{
			"t := v.Select128FromPair(1, 2, archsimd.Uint8x32{})",
			"lo := t.GetLo().ConcatShiftBytesRight(3, v.GetLo())",
			"hi := t.GetHi().ConcatShiftBytesRight(3, v.GetHi())",
			"return v.SetLo(lo).SetHi(hi)",
		}},
		{"UpAcross", up, 20, []string{
			"t := v.Select128FromPair(2, 0, archsimd.Uint8x32{})",
			"return t.SetHi(t.GetHi().ConcatShiftBytesRight(12, archsimd.Uint8x16{}))",
		}},
		{"DownAcross", down, 20, []string{
			"t := v.Select128FromPair(1, 2, archsimd.Uint8x32{})",
			"return t.SetLo(archsimd.Uint8x16{}.ConcatShiftBytesRight(4, t.GetLo()))",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, avx2Body(tt.d, tt.n)); diff != "" {
				t.Errorf("avx2Body(%s, %d) mismatch (-want +got):\n%s", tt.d.Name, tt.n, diff)
			}
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		gen  Generator
	}{
		{"NoPackage", Generator{OutputDir: ".", FileName: "x.go", AVX2FileName: "y.go"}},
		{"NotGoFile", Generator{OutputDir: ".", Package: "hwy", FileName: "x.txt", AVX2FileName: "y.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.gen.Generate(); err == nil {
				t.Errorf("Generate() succeeded, want error")
			}
			if _, err := tt.gen.GenerateAVX2(); err == nil {
				t.Errorf("GenerateAVX2() succeeded, want error")
			}
		})
	}
}

func TestRunWritesFiles(t *testing.T) {
	gen := &Generator{
		OutputDir:    t.TempDir(),
		Package:      "hwy",
		FileName:     "zslide_table.go",
		AVX2FileName: "zslide_avx2.go",
	}
	if err := gen.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, path := range []string{gen.Path(), gen.AVX2Path()} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Run() did not write %s: %v", path, err)
		}
	}
}

func TestRunSkipsAVX2(t *testing.T) {
	gen := &Generator{OutputDir: t.TempDir(), Package: "hwy", FileName: "zslide_table.go"}
	if err := gen.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	entries, err := os.ReadDir(gen.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Run() wrote %d files, want 1", len(entries))
	}
}

// TestCheckedInTablesAreCurrent fails when a generated file under hwy/ was
// edited by hand or the generator changed without rerunning go generate.
func TestCheckedInTablesAreCurrent(t *testing.T) {
	gen := &Generator{
		OutputDir:    filepath.Join("..", "..", "hwy"),
		Package:      "hwy",
		FileName:     "zslide_table.go",
		AVX2FileName: "zslide_avx2.go",
	}

	tests := []struct {
		path     string
		generate func() ([]byte, error)
	}{
		{gen.Path(), gen.Generate},
		{gen.AVX2Path(), gen.GenerateAVX2},
	}

	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			want, err := tt.generate()
			if err != nil {
				t.Fatalf("generate error = %v", err)
			}
			got, err := os.ReadFile(tt.path)
			if err != nil {
				t.Fatalf("read checked-in file: %v", err)
			}
			if diff := cmp.Diff(string(want), string(got)); diff != "" {
				t.Errorf("%s is stale, run go generate ./hwy (-want +got):\n%s", tt.path, diff)
			}
		})
	}
}
