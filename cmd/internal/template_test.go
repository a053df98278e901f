package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-leo/gox/errorx"
	jsoniter "github.com/json-iterator/go"
	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestGenerate(t *testing.T) {
	pkg, _ := loadShapes(t)

	files, err := Generate(pkg, pkg.Entities)
	require.NoError(t, err)
	require.Len(t, files, 1)

	file := files[0]
	assert.Equal(t, "Order", file.Entity)
	assert.Equal(t, "order_specification.go", file.Filename)

	content := string(file.Content)
	assert.True(t, strings.HasPrefix(content, Header+"\n"))
	for _, want := range []string{
		"package shapes",
		`"time"`,
		`"github.com/go-leo/specification/specification"`,
		"type LargeSpecification struct {\n\t*specification.ExpressionSpecification[Order]\n}",
		"func NewLargeSpecification() *LargeSpecification {",
		"spec := &LargeSpecification{ExpressionSpecification: specification.NewExpression(Large)}\n\tspec.Bind(spec)\n\treturn spec",
		"func NewPlacedAtSpecification(t time.Time) *PlacedAtSpecification {",
		"specification.NewExpression(PlacedAt(t))",
		"*specification.ExpressionSpecification[*Order]",
		"func NewByCustomerSpecification(name string, minimum float64) *ByCustomerSpecification {",
		"specification.NewExpression(ByCustomer(name)(minimum))",
		"func newByIDSpecification(arg0 int, id int) *byIDSpecification {",
		"func NewAtLeastSpecification(total float64) *AtLeastSpecification {",
		"specification.NewExpression(AtLeast(total))",
		"func NewPlacedBySpecification(specification0 string, spec1 string) *PlacedBySpecification {",
		"specification.NewExpression(PlacedBy(specification0, spec1))",
	} {
		assert.Contains(t, content, want)
	}
	assert.NotContains(t, content, "IsBig")
	assert.NotContains(t, content, `"github.com/go-leo/specification/expression"`)

	again, err := Generate(pkg, pkg.Entities)
	require.NoError(t, err)
	assert.Equal(t, file.Content, again[0].Content)
}

func TestGenerateSkipsEmptyEntities(t *testing.T) {
	files, err := Generate(&Package{Name: "empty"}, []*Entity{{Name: "Nothing"}})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFileWrite(t *testing.T) {
	dir := t.TempDir()
	file := &File{Entity: "Order", Filename: "order_specification.go", Content: []byte(Header + "\n\npackage shapes\n")}

	filename, err := file.Write(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "order_specification.go"), filename)

	// generated files are replaced
	_, err = file.Write(dir)
	require.NoError(t, err)
	assert.Equal(t, file.Content, errorx.Ignore(os.ReadFile(filename)))

	// hand written files are not
	require.NoError(t, os.WriteFile(filename, []byte("package shapes\n"), 0o644))
	_, err = file.Write(dir)
	assert.ErrorContains(t, err, "already exists")
}

func TestManifest(t *testing.T) {
	manifest := &Manifest{
		Version: Version,
		Packages: []*Package{{
			Name: "person",
			Path: "example.com/person",
			Entities: []*Entity{{
				Name: "Person",
				Members: []*Member{{
					Name:   "IsOlderThan",
					Entity: "Person",
					Groups: [][]Param{{{Name: "n", Type: "int"}}},
					Pos:    "person.go:10:5",
				}},
			}},
		}},
	}

	data, err := manifest.Marshal()
	require.NoError(t, err)
	jsonassert.New(t).Assertf(string(data), `{
		"version": "%s",
		"packages": [{
			"name": "person",
			"path": "example.com/person",
			"dir": "",
			"entities": [{
				"name": "Person",
				"members": [{
					"name": "IsOlderThan",
					"func": false,
					"entity": "Person",
					"groups": [[{"name": "n", "type": "int"}]],
					"pos": "person.go:10:5"
				}]
			}]
		}],
		"diagnostics": []
	}`, Version)

	var decoded Manifest
	require.NoError(t, jsoniter.Unmarshal(data, &decoded))
	assert.Equal(t, manifest.Packages[0].Entities[0].Members[0].Params(), decoded.Packages[0].Entities[0].Members[0].Params())

	filename := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, manifest.Write(filename))
	assert.Equal(t, data, errorx.Ignore(os.ReadFile(filename)))

	out, err := manifest.YAML()
	require.NoError(t, err)
	var fromYAML Manifest
	require.NoError(t, yaml.Unmarshal(out, &fromYAML))
	assert.Equal(t, manifest.Packages[0].Entities[0].Members[0], fromYAML.Packages[0].Entities[0].Members[0])
	assert.Contains(t, string(out), "version: "+Version)

	filename = filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, manifest.Write(filename))
	assert.Equal(t, out, errorx.Ignore(os.ReadFile(filename)))
}
