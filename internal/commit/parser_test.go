package commit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_Headers(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		message  string
		expected Commit
	}{
		"plain type": {
			message: "fix: null pointer",
			expected: Commit{
				Type:        "fix",
				Description: "null pointer",
			},
		},
		"type with scope": {
			message: "feat(auth): add login",
			expected: Commit{
				Type:        "feat",
				Scope:       "auth",
				Description: "add login",
			},
		},
		"path-like scope": {
			message: "refactor(core/api/v2): flatten handlers",
			expected: Commit{
				Type:        "refactor",
				Scope:       "core/api/v2",
				Description: "flatten handlers",
			},
		},
		"breaking marker on header": {
			message: "feat(core)!: rework API",
			expected: Commit{
				Type:        "feat",
				Scope:       "core",
				Description: "rework API",
				Breaking:    true,
			},
		},
		"breaking marker without scope": {
			message: "chore!: drop legacy flags",
			expected: Commit{
				Type:        "chore",
				Description: "drop legacy flags",
				Breaking:    true,
			},
		},
		"unknown type passes through verbatim": {
			message: "wip(parser): half-done thing",
			expected: Commit{
				Type:        "wip",
				Scope:       "parser",
				Description: "half-done thing",
			},
		},
		"no colon degrades to other": {
			message: "update stuff",
			expected: Commit{
				Type:        TypeOther,
				Description: "update stuff",
			},
		},
		"merge commit degrades to other": {
			message: "Merge branch 'main' into feature",
			expected: Commit{
				Type:        TypeOther,
				Description: "Merge branch 'main' into feature",
			},
		},
		"colon without type degrades to other": {
			message: ": dangling description",
			expected: Commit{
				Type:        TypeOther,
				Description: ": dangling description",
			},
		},
		"empty message": {
			message: "",
			expected: Commit{
				Type:        TypeOther,
				Description: "",
			},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := Parse(Raw{Message: tt.message})
			assert.Equal(t, tt.expected.Type, got.Type)
			assert.Equal(t, tt.expected.Scope, got.Scope)
			assert.Equal(t, tt.expected.Description, got.Description)
			assert.Equal(t, tt.expected.Breaking, got.Breaking)
		})
	}
}

func TestParse_Body(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		message      string
		wantBody     string
		wantBreaking bool
	}{
		"body preserved": {
			message:  "fix: patch thing\n\nlonger explanation\nover two lines",
			wantBody: "longer explanation\nover two lines",
		},
		"breaking change marker in body": {
			message:      "fix: patch thing\n\nBREAKING CHANGE: removes endpoint",
			wantBody:     "BREAKING CHANGE: removes endpoint",
			wantBreaking: true,
		},
		"marker upgrades but never downgrades": {
			message:      "feat!: new api\n\nno marker here",
			wantBody:     "no marker here",
			wantBreaking: true,
		},
		"marker on non-conventional header": {
			message:      "rewrote everything\n\nBREAKING CHANGE: all of it",
			wantBody:     "BREAKING CHANGE: all of it",
			wantBreaking: true,
		},
		"no body": {
			message:  "docs: fix typo",
			wantBody: "",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := Parse(Raw{Message: tt.message})
			assert.Equal(t, tt.wantBody, got.Body)
			assert.Equal(t, tt.wantBreaking, got.Breaking)
		})
	}
}

func TestParse_HashAndAuthor(t *testing.T) {
	t.Parallel()

	got := Parse(Raw{
		Hash:       "0123456789abcdef0123456789abcdef01234567",
		Message:    "feat: thing",
		AuthorName: "Dev One",
	})
	assert.Equal(t, "0123456", got.Hash)
	assert.Equal(t, "Dev One", got.Author)
}

func TestShortHash(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		hash string
		want string
	}{
		"full sha truncated":    {hash: "0123456789abcdef0123456789abcdef01234567", want: "0123456"},
		"exactly seven kept":    {hash: "abcdef0", want: "abcdef0"},
		"shorter passes as-is":  {hash: "abc", want: "abc"},
		"empty stays empty":     {hash: "", want: ""},
		"eight chars truncated": {hash: "abcdef01", want: "abcdef0"},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ShortHash(tt.hash))
		})
	}
}

func TestParseAll_PreservesOrder(t *testing.T) {
	t.Parallel()

	raws := []Raw{
		{Hash: "aaaaaaaa", Message: "feat: first"},
		{Hash: "bbbbbbbb", Message: "fix: second"},
		{Hash: "cccccccc", Message: "not conventional"},
	}

	commits := ParseAll(raws)
	assert.Len(t, commits, 3)
	assert.Equal(t, "first", commits[0].Description)
	assert.Equal(t, "second", commits[1].Description)
	assert.Equal(t, TypeOther, commits[2].Type)
}

func TestIsKnownType(t *testing.T) {
	t.Parallel()

	for _, known := range []string{"feat", "fix", "perf", "docs", "build", "ci", "test", "refactor", "style", "chore"} {
		assert.True(t, IsKnownType(known), known)
	}
	assert.False(t, IsKnownType("wip"))
	assert.False(t, IsKnownType(""))
	assert.False(t, IsKnownType("FEAT"))
}
