package internal

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/go-leo/specification/internal/naming"
	"golang.org/x/tools/imports"
)

// Header starts every generated file.
const Header = "// Code generated by specgen. DO NOT EDIT."

//go:embed specification.go.template
var specificationContent string

var specificationTemplate = template.Must(template.New("specification").Parse(specificationContent))

// File is a generated source file.
type File struct {
	Entity   string
	Filename string
	Content  []byte
}

type fileData struct {
	Package string
	Imports []string
	Members []memberData
}

type memberData struct {
	Name        string
	TypeName    string
	Constructor string
	Entity      string
	Params      string
	Call        string
}

// Generate renders one file per entity. It only depends on the discovered
// facts, so the same input always gives the same output.
func Generate(pkg *Package, entities []*Entity) ([]*File, error) {
	var files []*File
	for _, entity := range entities {
		if len(entity.Members) == 0 {
			continue
		}
		data := fileData{Package: pkg.Name, Imports: importSpecs(pkg.Imports)}
		for _, member := range entity.Members {
			data.Members = append(data.Members, memberOf(member))
		}
		var buf bytes.Buffer
		if err := specificationTemplate.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("%s: %w", entity.Name, err)
		}
		filename := naming.SnakeCase(entity.Name) + "_specification.go"
		content, err := imports.Process(filepath.Join(pkg.Dir, filename), buf.Bytes(), nil)
		if err != nil {
			return nil, fmt.Errorf("%s: format: %w", entity.Name, err)
		}
		files = append(files, &File{Entity: entity.Name, Filename: filename, Content: content})
	}
	return files, nil
}

func memberOf(member *Member) memberData {
	var params, args []string
	for _, param := range member.Params() {
		params = append(params, param.Name+" "+param.Type)
	}
	call := member.Name
	for _, group := range member.Groups {
		args = args[:0]
		for _, param := range group {
			args = append(args, param.Name)
		}
		call += "(" + strings.Join(args, ", ") + ")"
	}
	return memberData{
		Name:        member.Name,
		TypeName:    member.TypeName(),
		Constructor: member.Constructor(),
		Entity:      member.Entity,
		Params:      strings.Join(params, ", "),
		Call:        call,
	}
}

func importSpecs(paths map[string]string) []string {
	specs := []string{strconv.Quote(SpecificationPath)}
	sorted := make([]string, 0, len(paths))
	for p := range paths {
		if p != SpecificationPath {
			sorted = append(sorted, p)
		}
	}
	sort.Strings(sorted)
	for _, p := range sorted {
		if name := paths[p]; name != path.Base(p) {
			specs = append(specs, name+" "+strconv.Quote(p))
			continue
		}
		specs = append(specs, strconv.Quote(p))
	}
	return specs
}

// Write stores the file in dir. An existing file is only replaced if it was
// generated.
func (f *File) Write(dir string) (string, error) {
	filename := filepath.Join(dir, f.Filename)
	existing, err := os.ReadFile(filename)
	if err == nil && !bytes.HasPrefix(existing, []byte(Header)) {
		return "", fmt.Errorf("file %s already exists and was not generated by specgen", filename)
	}
	if err != nil && !os.IsNotExist(err) {
		return "", err
	}
	return filename, os.WriteFile(filename, f.Content, 0o644)
}
