// Package policy holds the swappable, data-driven rules of the pipeline:
// module classification, canned stand-in behaviors and the deny-list for
// generated test content.
package policy

import (
	"strings"

	m "unitgen.dev/pkg/unitgen/internal/model"
)

// Classifier decides whether a module ships with the runtime.
type Classifier interface {
	Classify(module string) m.Classification
}

// nodePrefix is the scheme Node accepts in front of core module names.
const nodePrefix = "node:"

// nodeBuiltinModules matches require("module").builtinModules of Node 20.
var nodeBuiltinModules = []string{
	"_http_agent", "_http_client", "_http_common", "_http_incoming",
	"_http_outgoing", "_http_server", "_stream_duplex", "_stream_passthrough",
	"_stream_readable", "_stream_transform", "_stream_wrap", "_stream_writable",
	"_tls_common", "_tls_wrap",
	"assert", "assert/strict", "async_hooks", "buffer", "child_process",
	"cluster", "console", "constants", "crypto", "dgram",
	"diagnostics_channel", "dns", "dns/promises", "domain", "events", "fs",
	"fs/promises", "http", "http2", "https", "inspector",
	"inspector/promises", "module", "net", "os", "path", "path/posix",
	"path/win32", "perf_hooks", "process", "punycode", "querystring",
	"readline", "readline/promises", "repl", "stream", "stream/consumers",
	"stream/promises", "stream/web", "string_decoder", "sys", "timers",
	"timers/promises", "tls", "trace_events", "tty", "url", "util",
	"util/types", "v8", "vm", "wasi", "worker_threads", "zlib",
}

// nodePrefixOnlyModules are only resolvable with the node: scheme.
var nodePrefixOnlyModules = []string{"sea", "sqlite", "test", "test/reporters"}

// NodeBuiltins classifies modules against the Node.js core module list.
type NodeBuiltins struct {
	modules    map[string]struct{}
	prefixOnly map[string]struct{}
}

// NewNodeBuiltins returns the default Node.js classifier. Extra module names
// are treated as builtin too.
func NewNodeBuiltins(extra ...string) *NodeBuiltins {
	nb := &NodeBuiltins{
		modules:    make(map[string]struct{}, len(nodeBuiltinModules)+len(extra)),
		prefixOnly: make(map[string]struct{}, len(nodePrefixOnlyModules)),
	}

	for _, name := range nodeBuiltinModules {
		nb.modules[name] = struct{}{}
	}

	for _, name := range extra {
		nb.modules[NormalizeModule(name)] = struct{}{}
	}

	for _, name := range nodePrefixOnlyModules {
		nb.prefixOnly[name] = struct{}{}
	}

	return nb
}

// Classify returns ClassBuiltin for core modules, ClassExternal otherwise.
func (nb *NodeBuiltins) Classify(module string) m.Classification {
	normalized := NormalizeModule(module)

	if _, ok := nb.modules[normalized]; ok {
		return m.ClassBuiltin
	}

	if strings.HasPrefix(module, nodePrefix) {
		if _, ok := nb.prefixOnly[normalized]; ok {
			return m.ClassBuiltin
		}
	}

	return m.ClassExternal
}

// NormalizeModule strips the node: scheme from a module name.
func NormalizeModule(module string) string {
	return strings.TrimPrefix(module, nodePrefix)
}
