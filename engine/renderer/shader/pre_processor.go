// pre_processor.go implements the GLSL include pre-processor. It scans shader source for
// #include "file" directives and splices the named file in place, recursively, so
// shared declarations (transform uniforms, sampling helpers) live in one file.
//
// Include paths are resolved relative to the directory of the including file. Included
// files must not declare #version; only the top-level stage source does.
package shader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrInclude is returned for a malformed or unreadable #include directive.
	ErrInclude = errors.New("invalid include")

	// ErrIncludeCycle is returned when a file includes itself, directly or indirectly.
	ErrIncludeCycle = errors.New("include cycle")
)

// maxIncludeDepth bounds nesting independently of cycle detection.
const maxIncludeDepth = 16

const includeDirective = "#include"

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	// read loads an included file.
	read func(path string) ([]byte, error)

	// includes accumulates the cleaned paths of every file spliced in during a Process call.
	// Reset at the start of each Process invocation.
	includes []string
}

// PreProcessor expands #include directives in GLSL source.
type PreProcessor interface {
	// Process expands every #include directive in source. path is the file source was
	// read from and anchors relative include paths.
	//
	// The includes list is reset at the start of each call and can be retrieved via
	// Includes() after Process returns.
	//
	// Parameters:
	//   - source: the GLSL text
	//   - path: the path of the file source came from
	//
	// Returns:
	//   - string: the expanded source
	//   - error: ErrInclude or ErrIncludeCycle wrapped with the offending file and line
	Process(source, path string) (string, error)

	// Includes returns the files spliced in by the most recent Process call, in first-seen
	// order without duplicates. Returns nil if Process has not been called.
	//
	// Returns:
	//   - []string: the included file paths
	Includes() []string
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor that reads included files from disk.
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor instance
func NewPreProcessor() PreProcessor {
	return &preProcessor{read: os.ReadFile}
}

func (p *preProcessor) Process(source, path string) (string, error) {
	p.includes = p.includes[:0]
	stack := []string{filepath.Clean(path)}
	return p.expand(source, stack)
}

func (p *preProcessor) Includes() []string {
	return p.includes
}

// expand splices includes into source. stack holds the chain of files currently being
// expanded, the last entry being the file source came from.
func (p *preProcessor) expand(source string, stack []string) (string, error) {
	current := stack[len(stack)-1]
	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		name, ok, err := parseInclude(line)
		if err != nil {
			return "", fmt.Errorf("%w: %s:%d: %v", ErrInclude, current, i+1, err)
		}
		if !ok {
			if len(stack) > 1 && strings.HasPrefix(strings.TrimSpace(line), "#version") {
				return "", fmt.Errorf("%w: %s:%d: included files must not declare #version", ErrInclude, current, i+1)
			}
			out = append(out, line)
			continue
		}

		target := name
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(current), target)
		}
		target = filepath.Clean(target)

		for _, open := range stack {
			if open == target {
				return "", fmt.Errorf("%w: %s:%d: %s", ErrIncludeCycle, current, i+1, target)
			}
		}
		if len(stack) >= maxIncludeDepth {
			return "", fmt.Errorf("%w: %s:%d: nesting deeper than %d", ErrInclude, current, i+1, maxIncludeDepth)
		}

		data, err := p.read(target)
		if err != nil {
			return "", fmt.Errorf("%w: %s:%d: %w", ErrInclude, current, i+1, err)
		}
		p.record(target)

		expanded, err := p.expand(string(data), append(stack, target))
		if err != nil {
			return "", err
		}
		out = append(out, strings.TrimRight(expanded, "\n"))
	}
	return strings.Join(out, "\n"), nil
}

func (p *preProcessor) record(path string) {
	for _, seen := range p.includes {
		if seen == path {
			return
		}
	}
	p.includes = append(p.includes, path)
}

// parseInclude recognizes `#include "name"`. ok is false for any other line.
func parseInclude(line string) (name string, ok bool, err error) {
	rest, found := strings.CutPrefix(strings.TrimSpace(line), includeDirective)
	if !found {
		return "", false, nil
	}
	// "#includes" or similar is not the directive.
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' && rest[0] != '"' {
		return "", false, nil
	}
	rest = strings.TrimSpace(rest)
	if len(rest) < 2 || rest[0] != '"' {
		return "", true, fmt.Errorf("expected quoted file name after %s", includeDirective)
	}
	end := strings.IndexByte(rest[1:], '"')
	if end < 0 {
		return "", true, fmt.Errorf("unterminated file name")
	}
	name = rest[1 : end+1]
	if name == "" {
		return "", true, fmt.Errorf("empty file name")
	}
	if trailing := strings.TrimSpace(rest[end+2:]); trailing != "" && !strings.HasPrefix(trailing, "//") {
		return "", true, fmt.Errorf("unexpected %q after file name", trailing)
	}
	return name, true, nil
}
