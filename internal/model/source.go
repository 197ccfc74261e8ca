// Package model defines the data structures shared by the UnitGen pipeline.
package model

// Path represents a file system path.
type Path string

// FunctionKind describes how a function was introduced at module top level.
type FunctionKind string

const (
	// FunctionDeclared is a `function name() {}` declaration.
	FunctionDeclared FunctionKind = "declared"
	// FunctionExpression is a function expression bound to a variable.
	FunctionExpression FunctionKind = "expression"
	// FunctionArrow is an arrow function bound to a variable.
	FunctionArrow FunctionKind = "arrow"
)

// SourceRange is the 1-based line span of a node.
type SourceRange struct {
	StartLine int `json:"start" yaml:"start"`
	EndLine   int `json:"end" yaml:"end"`
}

// FunctionRecord describes one top-level function discovered in a source file.
// Records are created by the extractor and never mutated afterwards.
type FunctionRecord struct {
	Name            string       `json:"name" yaml:"name"`
	Kind            FunctionKind `json:"kind" yaml:"kind"`
	Params          []string     `json:"params" yaml:"params"`
	Range           SourceRange  `json:"range" yaml:"range"`
	BodyText        string       `json:"-" yaml:"-"`
	IsAsync         bool         `json:"async" yaml:"async"`
	IsExported      bool         `json:"exported" yaml:"exported"`
	IsDefaultExport bool         `json:"defaultExport,omitempty" yaml:"defaultExport,omitempty"`
}

// InputKind tells whether the user pointed at a single file or a folder.
type InputKind string

const (
	// InputFile is a single JavaScript file.
	InputFile InputKind = "file"
	// InputFolder is a project folder scanned recursively.
	InputFolder InputKind = "folder"
)

// MessageLevel is the severity of a user-facing message.
type MessageLevel string

// Available message levels.
const (
	LevelInfo  MessageLevel = "info"
	LevelWarn  MessageLevel = "warn"
	LevelError MessageLevel = "error"
)

// Message is a user-facing notice produced while resolving input.
type Message struct {
	Level MessageLevel
	Text  string
}

// InputSelection is the validated set of source files for a run.
type InputSelection struct {
	Kind     InputKind
	Root     Path
	Files    []Path
	Messages []Message
}
