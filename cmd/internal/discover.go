package internal

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/tools/go/packages"
)

// ExpressionPath is the import path of the package declaring Predicate.
const ExpressionPath = "github.com/go-leo/specification/expression"

// SpecificationPath is the import path of the generated code's runtime.
const SpecificationPath = "github.com/go-leo/specification/specification"

// Param is an argument a member needs before it yields its predicate.
type Param struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// Member is an annotated declaration producing a predicate. Groups holds one
// parameter list per application, so a curried func(a A) func(b B) has two
// groups and a var holding a predicate has none.
type Member struct {
	Name   string    `json:"name" yaml:"name"`
	Func   bool      `json:"func" yaml:"func"`
	Entity string    `json:"entity" yaml:"entity"`
	Groups [][]Param `json:"groups" yaml:"groups"`
	Pos    string    `json:"pos" yaml:"pos"`
}

// Params returns the parameters of all groups in declaration order.
func (m *Member) Params() []Param {
	var params []Param
	for _, group := range m.Groups {
		params = append(params, group...)
	}
	return params
}

// Entity collects the members producing predicates over one type.
type Entity struct {
	Name    string    `json:"name" yaml:"name"`
	Members []*Member `json:"members" yaml:"members"`
}

// Package is what Discover found in a loaded package.
type Package struct {
	Name     string    `json:"name" yaml:"name"`
	Path     string    `json:"path" yaml:"path"`
	Dir      string    `json:"dir" yaml:"dir"`
	Entities []*Entity `json:"entities" yaml:"entities"`
	// Imports maps import paths used by parameter types to package names.
	Imports map[string]string `json:"imports,omitempty" yaml:"imports,omitempty"`
}

// Diagnostic reports a member that cannot be turned into a specification.
type Diagnostic struct {
	Pos     string `json:"pos" yaml:"pos"`
	Member  string `json:"member" yaml:"member"`
	Message string `json:"message" yaml:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos, d.Member, d.Message)
}

// Load loads the packages matching patterns with syntax and type information.
func Load(patterns ...string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
			packages.NeedImports | packages.NeedTypes | packages.NeedSyntax |
			packages.NeedTypesInfo | packages.NeedTypesSizes,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, err
	}
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found for %s", strings.Join(patterns, " "))
	}
	return pkgs, nil
}

// Discover collects the annotated members of pkg grouped by entity. Members
// of unsupported shape are reported as diagnostics and skipped.
func Discover(pkg *packages.Package) (*Package, []Diagnostic) {
	d := &discoverer{
		pkg:      pkg,
		result:   &Package{Name: pkg.Name, Path: pkg.PkgPath, Imports: map[string]string{}},
		entities: map[string]*Entity{},
	}
	if len(pkg.GoFiles) > 0 {
		d.result.Dir = filepath.Dir(pkg.GoFiles[0])
	}
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			switch decl := decl.(type) {
			case *ast.GenDecl:
				d.genDecl(decl)
			case *ast.FuncDecl:
				d.funcDecl(decl)
			}
		}
	}
	for _, entity := range d.entities {
		d.result.Entities = append(d.result.Entities, entity)
	}
	sort.Slice(d.result.Entities, func(i, j int) bool {
		return d.result.Entities[i].Name < d.result.Entities[j].Name
	})
	return d.result, d.diagnostics
}

type discoverer struct {
	pkg         *packages.Package
	result      *Package
	entities    map[string]*Entity
	diagnostics []Diagnostic
}

func (d *discoverer) genDecl(decl *ast.GenDecl) {
	if decl.Tok != token.VAR {
		// We only care about var declarations.
		return
	}
	for _, spec := range decl.Specs {
		valueSpec, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}
		doc := valueSpec.Doc
		if doc == nil && len(decl.Specs) == 1 {
			doc = decl.Doc
		}
		entity, ok := annotated(doc)
		if !ok {
			continue
		}
		for _, name := range valueSpec.Names {
			obj := d.pkg.TypesInfo.Defs[name]
			if obj == nil {
				continue
			}
			d.member(name.Name, false, entity, obj.Type(), name.Pos())
		}
	}
}

func (d *discoverer) funcDecl(decl *ast.FuncDecl) {
	if decl.Recv != nil {
		return
	}
	entity, ok := annotated(decl.Doc)
	if !ok {
		return
	}
	obj := d.pkg.TypesInfo.Defs[decl.Name]
	if obj == nil {
		return
	}
	d.member(decl.Name.Name, true, entity, obj.Type(), decl.Name.Pos())
}

func annotated(doc *ast.CommentGroup) (string, bool) {
	if doc == nil {
		return "", false
	}
	comments := make([]string, 0, len(doc.List))
	for _, comment := range doc.List {
		comments = append(comments, comment.Text)
	}
	return ParseAnnotation(comments)
}

func (d *discoverer) member(name string, isFunc bool, want string, typ types.Type, pos token.Pos) {
	position := d.pkg.Fset.Position(pos).String()
	report := func(format string, args ...any) {
		d.diagnostics = append(d.diagnostics, Diagnostic{Pos: position, Member: name, Message: fmt.Sprintf(format, args...)})
	}

	var groups [][]*types.Var
	t := typ
	for {
		if entity, ok := predicateEntity(t); ok {
			d.add(name, isFunc, want, entity, groups, report, position)
			return
		}
		sig, ok := t.Underlying().(*types.Signature)
		if !ok {
			if isBool(t) {
				report("returns bool instead of *expression.Predicate")
				return
			}
			report("type %s does not produce *expression.Predicate", types.TypeString(typ, d.relative))
			return
		}
		if sig.Variadic() {
			report("variadic parameters are not supported")
			return
		}
		if sig.Results().Len() != 1 {
			report("want exactly one result, got %d", sig.Results().Len())
			return
		}
		group := make([]*types.Var, 0, sig.Params().Len())
		for i := 0; i < sig.Params().Len(); i++ {
			group = append(group, sig.Params().At(i))
		}
		groups = append(groups, group)
		t = sig.Results().At(0).Type()
	}
}

func (d *discoverer) add(name string, isFunc bool, want string, entity types.Type, groups [][]*types.Var, report func(string, ...any), position string) {
	named, pointer := namedOf(entity)
	if named == nil || named.Obj().Pkg() != d.pkg.Types {
		report("entity %s is not a type declared in package %s", types.TypeString(entity, d.relative), d.pkg.Name)
		return
	}
	entityName := named.Obj().Name()
	if want != "" && strings.TrimPrefix(want, "*") != entityName {
		report("first parameter is not the entity type: predicate is over %s, annotation names %s", types.TypeString(entity, d.relative), want)
		return
	}
	entityType := entityName
	if pointer {
		entityType = "*" + entityName
	}

	member := &Member{Name: name, Func: isFunc, Entity: entityType, Pos: position}
	// names the generated constructor refers to
	used := map[string]bool{"specification": true, "expression": true, "spec": true, name: true, member.TypeName(): true}
	index := 0
	for _, group := range groups {
		params := make([]Param, 0, len(group))
		for _, v := range group {
			params = append(params, Param{Name: paramName(v.Name(), index, used), Type: types.TypeString(v.Type(), d.qualifier)})
			index++
		}
		member.Groups = append(member.Groups, params)
	}

	e, ok := d.entities[entityName]
	if !ok {
		e = &Entity{Name: entityName}
		d.entities[entityName] = e
	}
	e.Members = append(e.Members, member)
}

// qualifier names other packages by their package name and records them.
func (d *discoverer) qualifier(pkg *types.Package) string {
	if pkg == d.pkg.Types {
		return ""
	}
	d.result.Imports[pkg.Path()] = pkg.Name()
	return pkg.Name()
}

func (d *discoverer) relative(pkg *types.Package) string {
	if pkg == d.pkg.Types {
		return ""
	}
	return pkg.Name()
}

// predicateEntity reports the type argument of *expression.Predicate[E].
func predicateEntity(t types.Type) (types.Type, bool) {
	ptr, ok := types.Unalias(t).(*types.Pointer)
	if !ok {
		return nil, false
	}
	named, ok := types.Unalias(ptr.Elem()).(*types.Named)
	if !ok {
		return nil, false
	}
	obj := named.Obj()
	if obj.Name() != "Predicate" || obj.Pkg() == nil || obj.Pkg().Path() != ExpressionPath {
		return nil, false
	}
	if named.TypeArgs().Len() != 1 {
		return nil, false
	}
	return named.TypeArgs().At(0), true
}

func namedOf(t types.Type) (*types.Named, bool) {
	pointer := false
	if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
		pointer = true
		t = ptr.Elem()
	}
	named, _ := types.Unalias(t).(*types.Named)
	return named, pointer
}

func isBool(t types.Type) bool {
	basic, ok := t.Underlying().(*types.Basic)
	return ok && basic.Kind() == types.Bool
}

func paramName(name string, index int, used map[string]bool) string {
	if name == "" || name == "_" {
		name = "arg" + strconv.Itoa(index)
	}
	for used[name] {
		name = name + strconv.Itoa(index)
	}
	used[name] = true
	return name
}

// TypeName returns the name of the generated type.
func (m *Member) TypeName() string {
	return m.Name + "Specification"
}

// Constructor returns the name of the generated constructor, unexported for
// unexported members.
func (m *Member) Constructor() string {
	r := []rune(m.Name)
	if len(r) > 0 && unicode.IsUpper(r[0]) {
		return "New" + m.TypeName()
	}
	return "new" + string(unicode.ToUpper(r[0])) + string(r[1:]) + "Specification"
}
