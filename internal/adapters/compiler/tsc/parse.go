package tsc

import (
	"bufio"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/tsload/internal/core/domain"
)

var (
	fileLine   = regexp.MustCompile(`^(.+?)\((\d+),(\d+)\): (error|warning|message) TS(\d+): (.*)$`)
	globalLine = regexp.MustCompile(`^(error|warning|message) TS(\d+): (.*)$`)
)

// parseOutput reads `--pretty false` checker output. Relative file names are
// resolved against dir. Indented lines continue the previous message.
func parseOutput(dir, output string) []domain.Diagnostic {
	var diags []domain.Diagnostic
	sc := bufio.NewScanner(strings.NewReader(output))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}

		if m := fileLine.FindStringSubmatch(line); m != nil {
			file := m[1]
			if !filepath.IsAbs(file) {
				file = filepath.Join(dir, filepath.FromSlash(file))
			}
			row, _ := strconv.Atoi(m[2])
			col, _ := strconv.Atoi(m[3])
			code, _ := strconv.Atoi(m[5])
			diags = append(diags, domain.Diagnostic{
				Category: categoryFor(code),
				File:     file,
				Line:     row - 1,
				Column:   col - 1,
				Message:  m[6],
				Code:     code,
			})
			continue
		}

		if m := globalLine.FindStringSubmatch(line); m != nil {
			code, _ := strconv.Atoi(m[2])
			diags = append(diags, domain.Diagnostic{
				Category: domain.Global,
				Message:  m[3],
				Code:     code,
			})
			continue
		}

		if len(diags) > 0 && (line[0] == ' ' || line[0] == '\t') {
			last := &diags[len(diags)-1]
			last.Message += "\n" + strings.TrimSpace(line)
		}
	}
	return diags
}

// categoryFor maps checker codes to categories. Codes below 2000 are parse errors.
func categoryFor(code int) domain.DiagnosticCategory {
	if code < 2000 {
		return domain.Syntactic
	}
	return domain.Semantic
}
