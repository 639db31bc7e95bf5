package domain

import "strings"

// OutputFile is one artifact produced by an emit.
type OutputFile struct {
	Name string
	Text string
}

// EmitOutput is the result of asking a compiler service to emit one file.
type EmitOutput struct {
	OutputFiles []OutputFile
	EmitSkipped bool
}

// JavaScript returns the first non source map artifact.
func (e EmitOutput) JavaScript() (OutputFile, bool) {
	for _, f := range e.OutputFiles {
		if !strings.HasSuffix(f.Name, ".map") {
			return f, true
		}
	}
	return OutputFile{}, false
}

// Map returns the first source map artifact.
func (e EmitOutput) Map() (OutputFile, bool) {
	for _, f := range e.OutputFiles {
		if strings.HasSuffix(f.Name, ".map") {
			return f, true
		}
	}
	return OutputFile{}, false
}

// SourceMap is a version 3 source map.
type SourceMap struct {
	Version        int       `json:"version"`
	File           string    `json:"file"`
	SourceRoot     string    `json:"sourceRoot,omitempty"`
	Sources        []string  `json:"sources"`
	SourcesContent []*string `json:"sourcesContent,omitempty"`
	Names          []string  `json:"names"`
	Mappings       string    `json:"mappings"`
}

// Rebase points the map at a single original file with the given content.
func (m *SourceMap) Rebase(path, content string) {
	m.File = path
	m.SourceRoot = ""
	m.Sources = []string{path}
	m.SourcesContent = []*string{&content}
}
