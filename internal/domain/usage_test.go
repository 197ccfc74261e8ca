package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

const siblingSource = `import fs from "fs";
import axios from "axios";

export function readConfig() {
  return fs.readFileSync("config.json", "utf8");
}

export const fetchRemote = async () => axios.get("/remote");

export function constant() {
  return 42;
}
`

func TestDetectUsage(t *testing.T) {
	root, src := parseSource(t, siblingSource)

	imports := BuildImportMap(root, src)
	functions := ExtractFunctions(root, src)

	usage := DetectUsage(root, src, imports, functions)

	t.Run("functions do not leak into each other", func(t *testing.T) {
		assert.Equal(t, []string{"fs"}, usage["readConfig"].UsedIdentifiers)
		assert.Equal(t, []m.MemberUsage{{Object: "fs", Member: "readFileSync"}}, usage["readConfig"].UsedMembers)

		assert.Equal(t, []string{"axios"}, usage["fetchRemote"].UsedIdentifiers)
		assert.Equal(t, []m.MemberUsage{{Object: "axios", Member: "get"}}, usage["fetchRemote"].UsedMembers)
	})

	t.Run("every target gets an entry", func(t *testing.T) {
		record, ok := usage["constant"]
		require.True(t, ok)
		assert.Empty(t, record.UsedIdentifiers)
		assert.Empty(t, record.UsedMembers)
	})

	t.Run("unknown targets get an empty entry", func(t *testing.T) {
		ghost := DetectUsage(root, src, imports, []m.FunctionRecord{{Name: "ghost"}})

		require.Contains(t, ghost, "ghost")
		assert.NotNil(t, ghost["ghost"].UsedIdentifiers)
		assert.Empty(t, ghost["ghost"].UsedIdentifiers)
	})
}

func TestDetectUsage_FirstSeenOrder(t *testing.T) {
	root, src := parseSource(t, string(readExample(t, "mocks", "loader.js")))

	imports := BuildImportMap(root, src)
	usage := DetectUsage(root, src, imports, ExportedFunctions(ExtractFunctions(root, src)))

	record := usage["loadConfig"]
	assert.Equal(t, []string{"path", "fs", "axios"}, record.UsedIdentifiers)
	assert.Equal(t, []string{"path.join", "fs.readFileSync", "axios.get"}, memberStrings(record.UsedMembers))
}

func TestUsageInDeclaration_CountsShorthandProperties(t *testing.T) {
	root, src := parseSource(t, "import config from \"./config.js\";\nfunction wrap() {\n  return { config };\n}\n")

	record := UsageInDeclaration(findFunction(t, root, src, "wrap"), src, BuildImportMap(root, src))

	assert.Equal(t, []string{"config"}, record.UsedIdentifiers)
	assert.Empty(t, record.UsedMembers)
}

func TestResolveDependencies(t *testing.T) {
	imports := m.ImportMap{
		"fs":        {Module: "fs", Kind: m.BindingDefault},
		"readFile":  {Module: "fs", Imported: "readFile", Kind: m.BindingNamed},
		"join":      {Module: "path", Imported: "join", Kind: m.BindingDestructured},
		"axiosHttp": {Module: "axios", Kind: m.BindingRequire},
	}

	usage := m.Usage{
		"load":  {UsedIdentifiers: []string{"fs", "local", "join", "readFile"}},
		"fetch": {UsedIdentifiers: []string{"axiosHttp"}},
		"pure":  {UsedIdentifiers: []string{}},
	}

	deps := ResolveDependencies(imports, usage)

	assert.Equal(t, []string{"fs", "path"}, deps["load"])
	assert.Equal(t, []string{"axios"}, deps["fetch"])
	assert.Empty(t, deps["pure"])
	assert.Len(t, deps, 3)
}

func memberStrings(members []m.MemberUsage) []string {
	out := make([]string, 0, len(members))
	for _, member := range members {
		out = append(out, member.String())
	}

	return out
}
