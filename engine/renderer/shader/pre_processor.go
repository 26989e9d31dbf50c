// pre_processor.go implements the WGSL include pass. Shader sources reference
// shared GPU struct definitions with a single-line comment annotation instead of
// repeating them, so every struct has one canonical WGSL text that lives next to
// the Go type it mirrors.
//
// Syntax: //@orrery:include <name>
package shader

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/orrery/engine/camera"
	"github.com/Carmen-Shannon/orrery/engine/light"
	"github.com/Carmen-Shannon/orrery/engine/renderer/material"
)

// annotationPrefix marks an include line within a WGSL comment.
const annotationPrefix = "@orrery:include"

// Registry keys of the struct sources known to every PreProcessor.
const (
	IncludeCamera   = "camera"
	IncludeLight    = "light"
	IncludeMaterial = "material"
)

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	// structRegistry maps include names to embedded WGSL struct sources.
	structRegistry map[string]string
}

// PreProcessor expands include annotations in WGSL source.
type PreProcessor interface {
	// Process replaces every include annotation in source with the registered
	// struct definition.
	//
	// Parameters:
	//   - source: raw WGSL source
	//
	// Returns:
	//   - string: the expanded WGSL source
	//   - error: an error if an annotation is malformed or names an unknown struct
	Process(source string) (string, error)
}

var _ PreProcessor = &preProcessor{}

// PreProcessorOption is a functional option used to configure a PreProcessor.
type PreProcessorOption func(*preProcessor)

// WithStruct registers an additional WGSL struct source under name, replacing
// any previous registration.
//
// Parameters:
//   - name: include key referenced by annotations
//   - source: WGSL struct definition
//
// Returns:
//   - PreProcessorOption: a function that registers the struct
func WithStruct(name, source string) PreProcessorOption {
	return func(p *preProcessor) {
		p.structRegistry[name] = source
	}
}

// NewPreProcessor creates a PreProcessor with the camera, light and material
// structs pre-registered.
//
// Parameters:
//   - options: functional options
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor
func NewPreProcessor(options ...PreProcessorOption) PreProcessor {
	p := &preProcessor{
		structRegistry: map[string]string{
			IncludeCamera:   camera.GPUCameraUniformSource,
			IncludeLight:    light.GPULightSource,
			IncludeMaterial: material.GPUMaterialSource,
		},
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *preProcessor) Process(source string) (string, error) {
	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		comment, ok := strings.CutPrefix(strings.TrimSpace(line), "//")
		if !ok {
			out = append(out, line)
			continue
		}
		args, ok := strings.CutPrefix(strings.TrimSpace(comment), annotationPrefix)
		if !ok {
			out = append(out, line)
			continue
		}

		fields := strings.Fields(args)
		if len(fields) != 1 {
			return "", fmt.Errorf("line %d: include takes exactly one argument, got %d", i+1, len(fields))
		}
		src, ok := p.structRegistry[fields[0]]
		if !ok {
			return "", fmt.Errorf("line %d: unknown include %q", i+1, fields[0])
		}
		out = append(out, strings.TrimRight(src, "\n"))
	}
	return strings.Join(out, "\n"), nil
}
