package model

// JestResult mirrors the subset of `jest --json` output UnitGen reads.
type JestResult struct {
	NumTotalTests       int               `json:"numTotalTests"`
	NumPassedTests      int               `json:"numPassedTests"`
	NumFailedTests      int               `json:"numFailedTests"`
	NumTotalTestSuites  int               `json:"numTotalTestSuites"`
	NumFailedTestSuites int               `json:"numFailedTestSuites"`
	TestResults         []JestSuiteResult `json:"testResults"`
}

// JestSuiteResult is the result of one test file.
type JestSuiteResult struct {
	Name             string                `json:"name"`
	TestFilePath     string                `json:"testFilePath,omitempty"`
	Status           string                `json:"status"`
	Message          string                `json:"message"`
	AssertionResults []JestAssertionResult `json:"assertionResults"`
}

// JestAssertionResult is the result of one test case.
type JestAssertionResult struct {
	Title           string   `json:"title"`
	FullName        string   `json:"fullName"`
	Status          string   `json:"status"`
	FailureMessages []string `json:"failureMessages"`
}

// TestRun is the outcome of one Jest invocation.
type TestRun struct {
	ExitCode   int
	Result     *JestResult
	Stdout     string
	Stderr     string
	OutputFile Path
}

// TestStatus is the status of one reported test.
type TestStatus string

// Available test statuses.
const (
	StatusPass TestStatus = "PASS"
	StatusFail TestStatus = "FAIL"
)

// TestDetail is one line of the console summary.
type TestDetail struct {
	Test   string
	Status TestStatus
	Error  string
}

// SuiteError is a test file that failed to load or run.
type SuiteError struct {
	File  string
	Error string
}

// TestSummary is the console view of a Jest run.
type TestSummary struct {
	TotalTests   int
	Passed       int
	Failed       int
	TotalSuites  int
	FailedSuites int
	Details      []TestDetail
	SuiteErrors  []SuiteError
	Note         string
}

// ReportSummary holds the headline numbers of the final report.
type ReportSummary struct {
	TotalTests  int `json:"totalTests"`
	PassedTests int `json:"passedTests"`
	FailedTests int `json:"failedTests"`
}

// FailedTest is one failing case (or suite) in the final report.
type FailedTest struct {
	TestFile     string `json:"testFile"`
	TestName     string `json:"testName"`
	ErrorMessage string `json:"errorMessage"`
}

// FinalReport is persisted to output/final-report.json.
type FinalReport struct {
	RunID       string        `json:"runId"`
	GeneratedAt string        `json:"generatedAt"`
	Summary     ReportSummary `json:"summary"`
	FailedTests []FailedTest  `json:"failedTests"`
	Generation  RunCounters   `json:"generation"`
}
