package bundler

import (
	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/tsload/internal/core/domain"
)

// Messages converts reports to esbuild messages. File-attached reports carry
// a location whose file is the report's module request.
func Messages(reports []domain.Report) []api.Message {
	if len(reports) == 0 {
		return nil
	}
	out := make([]api.Message, 0, len(reports))
	for _, r := range reports {
		msg := api.Message{PluginName: PluginName, Text: r.Message}
		if r.File != "" {
			msg.Location = &api.Location{
				File:   r.File,
				Line:   r.Diagnostic.Line + 1,
				Column: r.Diagnostic.Column,
				Length: r.Diagnostic.Length,
			}
		}
		out = append(out, msg)
	}
	return out
}

// Reports converts esbuild messages to reports.
func Reports(messages []api.Message) []domain.Report {
	if len(messages) == 0 {
		return nil
	}
	out := make([]domain.Report, 0, len(messages))
	for _, m := range messages {
		r := domain.Report{Message: m.Text}
		if loc := m.Location; loc != nil {
			r.File = loc.File
			r.Diagnostic = domain.Diagnostic{
				File:    loc.File,
				Line:    loc.Line - 1,
				Column:  loc.Column,
				Length:  loc.Length,
				Message: m.Text,
			}
		}
		out = append(out, r)
	}
	return out
}
