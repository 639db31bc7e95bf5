package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
	"go.trai.ch/tsload/internal/core/domain"
)

// Diagnostics converts loader diagnostics to protocol diagnostics.
// Syntactic problems are errors; the rest are warnings, as in a build.
func Diagnostics(diags []domain.Diagnostic) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(diags))
	for _, d := range diags {
		severity := protocol.DiagnosticSeverityWarning
		if d.Category == domain.Syntactic {
			severity = protocol.DiagnosticSeverityError
		}
		source := Source
		pd := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: protocol.UInteger(d.Line), Character: protocol.UInteger(d.Column)},
				End:   protocol.Position{Line: protocol.UInteger(d.Line), Character: protocol.UInteger(d.Column + d.Length)},
			},
			Severity: &severity,
			Source:   &source,
			Message:  d.Message,
		}
		if d.Code != 0 {
			pd.Code = &protocol.IntegerOrString{Value: protocol.Integer(d.Code)}
		}
		out = append(out, pd)
	}
	return out
}
