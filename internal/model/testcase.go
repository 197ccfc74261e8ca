package model

// GeneratedTestCase is a raw, untrusted case returned by the generator.
type GeneratedTestCase struct {
	Title   string
	Arrange string
	Act     string
	Assert  string
}

// CanonicalTestCase is a case that passed sanitization. Act always holds
// exactly one `const result = ...;` statement.
type CanonicalTestCase struct {
	Title   string
	Arrange string
	Act     string
	Assert  string
}

// GenerationRequest is sent to the generative service.
type GenerationRequest struct {
	// Source is the file the prompt was built from. It scopes caching and is
	// not sent to the service.
	Source      Path
	Model       string
	Prompt      string
	Temperature float64
}

// GenerationResponse carries the raw generator text.
type GenerationResponse struct {
	Text string
}

// ArtifactStatus compares a written skeleton with the previous run.
type ArtifactStatus string

// Available artifact statuses.
const (
	ArtifactNew       ArtifactStatus = "new"
	ArtifactUpdated   ArtifactStatus = "updated"
	ArtifactUnchanged ArtifactStatus = "unchanged"
)

// Artifact describes one generated test file.
type Artifact struct {
	Function string
	Path     Path
	Status   ArtifactStatus
	// Cases is the number of generated cases spliced into the skeleton.
	Cases    int
	Rejected []SanitizationRejection
	// Err is the recoverable generation error, if any.
	Err error
}

// RunCounters aggregates run-level outcomes. It is the only state that
// crosses file boundaries.
type RunCounters struct {
	FilesProcessed   int `json:"filesProcessed"`
	FilesSkipped     int `json:"filesSkipped"`
	TestsGenerated   int `json:"testsGenerated"`
	CasesFilled      int `json:"casesFilled"`
	GenerationFailed int `json:"generationFailed"`
	EmptyOutputs     int `json:"emptyOutputs"`
}
