package main

import (
	"bufio"
	"strings"

	"github.com/go-leo/specification/cmd/internal"
	"github.com/go-leo/specification/logger"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"
)

const (
	expressionPackage    = protogen.GoImportPath(internal.ExpressionPath)
	specificationPackage = protogen.GoImportPath(internal.SpecificationPath)
)

var scalarTypes = map[protoreflect.Kind]string{
	protoreflect.BoolKind:     "bool",
	protoreflect.Int32Kind:    "int32",
	protoreflect.Sint32Kind:   "int32",
	protoreflect.Sfixed32Kind: "int32",
	protoreflect.Uint32Kind:   "uint32",
	protoreflect.Fixed32Kind:  "uint32",
	protoreflect.Int64Kind:    "int64",
	protoreflect.Sint64Kind:   "int64",
	protoreflect.Sfixed64Kind: "int64",
	protoreflect.Uint64Kind:   "uint64",
	protoreflect.Fixed64Kind:  "uint64",
	protoreflect.FloatKind:    "float32",
	protoreflect.DoubleKind:   "float64",
	protoreflect.StringKind:   "string",
}

// generateFile writes <name>_specification.pb.go for the annotated messages
// of file. It returns nil when no message is annotated.
func generateFile(gen *protogen.Plugin, file *protogen.File, log logger.Logger) *protogen.GeneratedFile {
	messages := annotatedMessages(file.Messages)
	if len(messages) == 0 {
		return nil
	}
	g := gen.NewGeneratedFile(file.GeneratedFilenamePrefix+"_specification.pb.go", file.GoImportPath)
	g.P("// Code generated by protoc-gen-go-specification. DO NOT EDIT.")
	g.P("// source: ", file.Desc.Path())
	g.P()
	g.P("package ", file.GoPackageName)
	for _, message := range messages {
		for _, field := range message.Fields {
			goType, ok := fieldType(g, field)
			if !ok {
				log.Warn().
					Str("message", string(message.Desc.FullName())).
					Str("field", string(field.Desc.Name())).
					Msg("only singular scalar and enum fields get a specification")
				continue
			}
			generateFieldSpecification(g, message, field, goType)
		}
	}
	return g
}

func annotatedMessages(messages []*protogen.Message) []*protogen.Message {
	var result []*protogen.Message
	for _, message := range messages {
		if message.Desc.IsMapEntry() {
			continue
		}
		if _, ok := internal.ParseAnnotation(splitComment(message.Comments.Leading.String())); ok {
			result = append(result, message)
		}
		result = append(result, annotatedMessages(message.Messages)...)
	}
	return result
}

func fieldType(g *protogen.GeneratedFile, field *protogen.Field) (string, bool) {
	// fields with presence are generated as pointers
	if field.Desc.IsList() || field.Desc.IsMap() || field.Oneof != nil || field.Desc.HasPresence() {
		return "", false
	}
	if field.Desc.Kind() == protoreflect.EnumKind {
		return g.QualifiedGoIdent(field.Enum.GoIdent), true
	}
	goType, ok := scalarTypes[field.Desc.Kind()]
	return goType, ok
}

func generateFieldSpecification(g *protogen.GeneratedFile, message *protogen.Message, field *protogen.Field, goType string) {
	name := message.GoIdent.GoName + field.GoName + "Specification"
	g.P()
	g.P("// ", name, " matches ", message.GoIdent.GoName, " messages whose ", field.GoName, " equals a value.")
	g.P("type ", name, " struct {")
	g.P("*", g.QualifiedGoIdent(specificationPackage.Ident("ExpressionSpecification")), "[*", message.GoIdent.GoName, "]")
	g.P("}")
	g.P()
	g.P("func New", name, "(value ", goType, ") *", name, " {")
	g.P("predicate := ", expressionPackage.Ident("Must"), "(", expressionPackage.Ident("Where"), "[*", message.GoIdent.GoName, "](func(e *", expressionPackage.Ident("ParameterExpression"), ") ", expressionPackage.Ident("Expression"), " {")
	g.P("return ", expressionPackage.Ident("Equal"), "(", expressionPackage.Ident("Field"), "(e, \"", field.GoName, "\"), ", expressionPackage.Ident("Constant"), "(value))")
	g.P("}))")
	g.P("spec := &", name, "{ExpressionSpecification: ", specificationPackage.Ident("NewExpression"), "(predicate)}")
	g.P("spec.Bind(spec)")
	g.P("return spec")
	g.P("}")
}

func splitComment(leadingComment string) []string {
	var comments []string
	scanner := bufio.NewScanner(strings.NewReader(leadingComment))
	for scanner.Scan() {
		line := scanner.Text()
		comments = append(comments, line)
	}
	return comments
}
