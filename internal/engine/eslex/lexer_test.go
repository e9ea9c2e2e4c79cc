package eslex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/serv/internal/core/domain"
	"go.trai.ch/serv/internal/engine/eslex"
)

func TestScan_StaticImports(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []eslex.Specifier
	}{
		{
			name:   "default import",
			source: `import foo from 'bar'`,
			want:   []eslex.Specifier{{Value: "bar", Start: 17, End: 20}},
		},
		{
			name:   "named import",
			source: `import { a, b } from './mod.js'`,
			want:   []eslex.Specifier{{Value: "./mod.js", Start: 22, End: 30}},
		},
		{
			name:   "side effect import",
			source: `import './setup.js';`,
			want:   []eslex.Specifier{{Value: "./setup.js", Start: 8, End: 18}},
		},
		{
			name:   "namespace import",
			source: `import * as ns from "lib"`,
			want:   []eslex.Specifier{{Value: "lib", Start: 21, End: 24}},
		},
		{
			name:   "multiline clause",
			source: "import {\n  a,\n  b,\n}\nfrom './wide'",
			want:   []eslex.Specifier{{Value: "./wide", Start: 27, End: 33}},
		},
		{
			name:   "multiple imports in order",
			source: "import a from 'x'\nimport b from './y'",
			want: []eslex.Specifier{
				{Value: "x", Start: 15, End: 16},
				{Value: "./y", Start: 33, End: 36},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eslex.Scan(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			for _, spec := range got {
				assert.Equal(t, spec.Value, tt.source[spec.Start:spec.End])
			}
		})
	}
}

func TestScan_Exports(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []eslex.Specifier
	}{
		{
			name:   "named re-export",
			source: `export { a } from './shared.js'`,
			want:   []eslex.Specifier{{Value: "./shared.js", Start: 19, End: 30}},
		},
		{
			name:   "star re-export",
			source: `export * from 'pkg'`,
			want:   []eslex.Specifier{{Value: "pkg", Start: 15, End: 18}},
		},
		{
			name:   "plain export list",
			source: `export { a, b }`,
			want:   nil,
		},
		{
			name:   "export declaration",
			source: `export const x = 1`,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eslex.Scan(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScan_DynamicImports(t *testing.T) {
	t.Run("literal argument", func(t *testing.T) {
		source := `const mod = await import('./lazy.js')`
		got, err := eslex.Scan(source)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].Dynamic)
		assert.Equal(t, "./lazy.js", got[0].Value)
		assert.Equal(t, "./lazy.js", source[got[0].Start:got[0].End])
	})

	t.Run("non-literal argument yields nothing", func(t *testing.T) {
		got, err := eslex.Scan(`import(someVariable)`)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("recognized inside function bodies", func(t *testing.T) {
		got, err := eslex.Scan("function load() {\n  return import('./inner.js')\n}")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].Dynamic)
		assert.Equal(t, "./inner.js", got[0].Value)
	})

	t.Run("recognized inside template interpolations", func(t *testing.T) {
		source := "const p = `loading ${import('./lazy.js')} done`"
		got, err := eslex.Scan(source)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].Dynamic)
		assert.Equal(t, "./lazy.js", got[0].Value)
		assert.Equal(t, "./lazy.js", source[got[0].Start:got[0].End])
	})
}

func TestScan_SkipsNonModuleSyntax(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "line comment", source: "// import fake from 'x'"},
		{name: "block comment", source: "/* import fake from 'x' */"},
		{name: "string literal", source: `const s = "import nothing from 'x'"`},
		{name: "template literal", source: "const s = `import nothing from 'x'`"},
		{name: "template text around interpolation", source: "const s = `a ${fn({k: 1})} import nothing`"},
		{name: "nested template in interpolation", source: "const s = `${`import fake from 'x'`}`"},
		{name: "import.meta", source: "const url = import.meta.url"},
		{name: "identifier suffix", source: "myimport('x')"},
		{name: "property access", source: "obj.import('x')"},
		{name: "import key in object", source: "const o = { import: 'x' }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eslex.Scan(tt.source)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestScan_Errors(t *testing.T) {
	t.Run("unterminated specifier", func(t *testing.T) {
		_, err := eslex.Scan(`import './broken`)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnterminatedString)
	})

	t.Run("clause without from", func(t *testing.T) {
		_, err := eslex.Scan(`import { a };`)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMalformedImport)
	})

	t.Run("truncated clause", func(t *testing.T) {
		_, err := eslex.Scan(`import { a }`)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMalformedImport)
	})
}

func TestScan_EscapedQuotes(t *testing.T) {
	got, err := eslex.Scan(`const s = 'has \' quote'; import x from './real.js'`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "./real.js", got[0].Value)
}
