// Command protoc-gen-go-specification is a protoc plugin that generates
// equality specifications for the singular scalar fields of messages whose
// leading comment carries @Specification.
package main

import (
	"flag"
	"fmt"

	"github.com/go-leo/specification/cmd/internal"
	"github.com/go-leo/specification/logger"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/types/pluginpb"
)

func main() {
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()
	if *showVersion {
		fmt.Printf("protoc-gen-go-specification %v\n", internal.Version)
		return
	}

	var flags flag.FlagSet
	logLevel := flags.String("log_level", logger.LogLevelWarn, "log level: debug, info, warn or error")
	protogen.Options{ParamFunc: flags.Set}.Run(func(gen *protogen.Plugin) error {
		log := logger.New(*logLevel, logger.ConsoleLoggingFormat).Component("protoc-gen-go-specification")
		gen.SupportedFeatures = uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)
		for _, f := range gen.Files {
			if !f.Generate {
				continue
			}
			generateFile(gen, f, log)
		}
		return nil
	})
}
