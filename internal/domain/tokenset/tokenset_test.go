package tokenset_test

import (
	"testing"

	"github.com/bnema/shortcutctl/internal/domain/tokenset"
	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	assert.Nil(t, tokenset.Split(""))
	assert.Empty(t, tokenset.Split(":::"))
	assert.Equal(t, []string{"a/A", "b/B"}, tokenset.Split(":a/A::b/B:"))
}

func TestContains_ExactTokenOnly(t *testing.T) {
	value := "pkg/FooBar:other/Svc"

	assert.True(t, tokenset.Contains(value, "other/Svc"))
	assert.False(t, tokenset.Contains(value, "pkg/Foo"))
	assert.False(t, tokenset.Contains(value, "Bar"))
	assert.False(t, tokenset.Contains("", "pkg/Foo"))
	assert.False(t, tokenset.Contains(value, ""))
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		token    string
		expected string
		changed  bool
	}{
		{"empty", "", "a/A", "a/A", true},
		{"append", "a/A", "b/B", "a/A:b/B", true},
		{"already present", "a/A:b/B", "a/A", "a/A:b/B", false},
		{"prefix is not presence", "a/AB", "a/A", "a/AB:a/A", true},
		{"drops stray separators", ":a/A:", "b/B", "a/A:b/B", true},
		{"empty token", "a/A", "", "a/A", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := tokenset.Add(tt.value, tt.token)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		token    string
		expected string
		changed  bool
	}{
		{"empty", "", "a/A", "", false},
		{"only token", "a/A", "a/A", "", true},
		{"keeps order", "a/A:b/B:c/C", "b/B", "a/A:c/C", true},
		{"prefix untouched", "pkg/Foo:pkg/FooBar", "pkg/Foo", "pkg/FooBar", true},
		{"absent", "a/A:b/B", "c/C", "a/A:b/B", false},
		{"duplicates removed", "a/A:b/B:a/A", "a/A", "b/B", true},
		{"cleans empties", "a/A::b/B", "c/C", "a/A:b/B", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := tokenset.Remove(tt.value, tt.token)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestAddRemove_Idempotent(t *testing.T) {
	once, _ := tokenset.Add("x/X", "a/A")
	twice, changed := tokenset.Add(once, "a/A")
	assert.Equal(t, once, twice)
	assert.False(t, changed)

	once, _ = tokenset.Remove(twice, "a/A")
	twice, changed = tokenset.Remove(once, "a/A")
	assert.Equal(t, once, twice)
	assert.False(t, changed)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a/A:b/B", tokenset.Normalize("::a/A:b/B:a/A:"))
	assert.Equal(t, "", tokenset.Normalize(""))
}
