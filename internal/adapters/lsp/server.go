// Package lsp serves loader diagnostics to editors over the Language Server Protocol.
package lsp

import (
	"fmt"
	"net/url"
	"path/filepath"
	"slices"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/tsload/internal/engine/loader" //nolint:depguard // The server drives a loader instance

	_ "github.com/tliron/commonlog/simple"
)

// Name is the server name announced to clients.
const Name = "tsload"

// Source labels published diagnostics.
const Source = "tsload"

// Server publishes the syntactic and semantic diagnostics of open documents.
// Every document event updates the instance's file cache, so the editor's
// unsaved text is what gets checked.
type Server struct {
	registry *loader.Registry
	settings loader.Settings
	fs       ports.FileSystem
	logger   ports.Logger
	version  string

	handler protocol.Handler
	server  *server.Server

	mu   sync.Mutex
	inst *loader.Instance
	open map[string]struct{}
}

// New creates a Server. The build context defaults to the client's root
// folder when settings carry none.
func New(registry *loader.Registry, settings loader.Settings, fsys ports.FileSystem, logger ports.Logger, version string) *Server {
	s := &Server{
		registry: registry,
		settings: settings,
		fs:       fsys,
		logger:   logger,
		version:  version,
		open:     make(map[string]struct{}),
	}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.didOpen,
		TextDocumentDidChange: s.didChange,
		TextDocumentDidSave:   s.didSave,
		TextDocumentDidClose:  s.didClose,
	}
	s.server = server.NewServer(&s.handler, Name, false)
	return s
}

// Handler returns the protocol handler.
func (s *Server) Handler() *protocol.Handler {
	return &s.handler
}

// RunStdio serves on stdin and stdout until the client disconnects.
func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	settings := s.settings
	if settings.Context == "" {
		settings.Context = rootDir(params)
	}

	inst := s.registry.Instance(settings)
	for _, d := range inst.ConfigDiagnostics() {
		s.logger.Warn(d.Format())
	}

	s.mu.Lock()
	s.inst = inst
	s.mu.Unlock()

	capabilities := s.handler.CreateServerCapabilities()
	change := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    &change,
		Save:      &protocol.SaveOptions{IncludeText: boolPtr(true)},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    Name,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(*glsp.Context, *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(*glsp.Context) error {
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) didOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, ok := s.source(params.TextDocument.URI)
	if !ok {
		return nil
	}
	s.mu.Lock()
	s.open[path] = struct{}{}
	inst := s.inst
	s.mu.Unlock()

	inst.UpdateFile(path, params.TextDocument.Text)
	s.publish(ctx.Notify, path)
	return nil
}

func (s *Server) didChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, ok := s.source(params.TextDocument.URI)
	if !ok || len(params.ContentChanges) == 0 {
		return nil
	}

	change, ok := params.ContentChanges[len(params.ContentChanges)-1].(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		return nil
	}
	s.instance().UpdateFile(path, change.Text)
	s.publish(ctx.Notify, path)
	return nil
}

// didSave refreshes the saved file and republishes every open document,
// since a save can resolve imports of other files.
func (s *Server) didSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, ok := s.source(params.TextDocument.URI)
	if !ok {
		return nil
	}

	inst := s.instance()
	if params.Text != nil {
		inst.UpdateFile(path, *params.Text)
	} else if data, err := s.fs.ReadFile(path); err == nil {
		inst.UpdateFile(path, string(data))
	}

	for _, p := range s.openPaths() {
		s.publish(ctx.Notify, p)
	}
	return nil
}

func (s *Server) didClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, ok := s.source(params.TextDocument.URI)
	if !ok {
		return nil
	}
	s.mu.Lock()
	delete(s.open, path)
	s.mu.Unlock()

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (s *Server) publish(notify glsp.NotifyFunc, path string) {
	diags, err := s.instance().FileDiagnostics(path)
	if err != nil {
		s.logger.Error(err)
		return
	}
	notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         PathToURI(path),
		Diagnostics: Diagnostics(diags),
	})
}

// source returns the path of a TypeScript document. Definition files are
// included; other documents are ignored.
func (s *Server) source(uri protocol.DocumentUri) (string, bool) {
	if s.instance() == nil {
		return "", false
	}
	path, err := URIToPath(uri)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("ignoring document %s: %v", uri, err))
		return "", false
	}
	return path, domain.IsSource(path)
}

func (s *Server) instance() *loader.Instance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inst
}

func (s *Server) openPaths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	paths := make([]string, 0, len(s.open))
	for p := range s.open {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

func rootDir(params *protocol.InitializeParams) string {
	if params.RootURI != nil && *params.RootURI != "" {
		if path, err := URIToPath(*params.RootURI); err == nil {
			return path
		}
	}
	if params.RootPath != nil && *params.RootPath != "" {
		return *params.RootPath
	}
	return "."
}

func boolPtr(b bool) *bool {
	return &b
}

// URIToPath converts a file URI to a local path.
func URIToPath(uri protocol.DocumentUri) (string, error) {
	u, err := url.Parse(string(uri))
	if err != nil {
		return "", err
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	return filepath.FromSlash(u.Path), nil
}

// PathToURI converts a local path to a file URI.
func PathToURI(path string) protocol.DocumentUri {
	return protocol.DocumentUri((&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String())
}
