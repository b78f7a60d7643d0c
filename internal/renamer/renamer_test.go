package renamer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/difftrim/internal/config"
	"github.com/aleister1102/difftrim/internal/errorwrapper"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenamer(t *testing.T, cfg config.RenamerConfig) *Renamer {
	t.Helper()
	r, err := NewRenamerBuilder().
		WithConfig(cfg).
		WithLogger(zerolog.Nop()).
		Build()
	require.NoError(t, err)
	return r
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "spaces become hyphens and lowercase",
			in:   "My Great File.txt",
			want: "my-great-file.txt",
		},
		{
			name: "special characters dropped",
			in:   "notes (final)!.md",
			want: "notes-final.md",
		},
		{
			name: "hyphen runs collapse",
			in:   "a -- b.txt",
			want: "a-b.txt",
		},
		{
			name: "bracketed segment keeps case and hyphens",
			in:   "Report [AbC-123] final.pdf",
			want: "report-[AbC-123]final.pdf",
		},
		{
			name: "already clean",
			in:   "clean-name.go",
			want: "clean-name.go",
		},
		{
			name: "leading and trailing hyphens stripped",
			in:   "-wrapped-.txt",
			want: "wrapped-.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestTransform_MoveTimestamp(t *testing.T) {
	r := newRenamer(t, config.RenamerConfig{MoveTimestamp: true})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "standard timestamp",
			in:   "meeting-notes-2025-10-09-21-15-39-PM.md",
			want: "2025-10-09-21-15-39-PM-meeting-notes.md",
		},
		{
			name: "underscore timestamp without meridiem",
			in:   "capture-2025-05-29_-_19-29-55.png",
			want: "2025-05-29_-_19-29-55-capture.png",
		},
		{
			name: "underscore timestamp with meridiem",
			in:   "shot-2025-05-29_-_19-29-55-AM.png",
			want: "2025-05-29_-_19-29-55-AM-shot.png",
		},
		{
			name: "no timestamp is untouched",
			in:   "plain-file.txt",
			want: "plain-file.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Transform(tt.in))
		})
	}
}

func TestRenamerBuilder_RejectsAllDisabled(t *testing.T) {
	_, err := NewRenamerBuilder().
		WithConfig(config.RenamerConfig{}).
		Build()

	assert.Error(t, err)
}

func TestPlan_FindsOnlyChangingFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "My File.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "already-clean.txt"), []byte("x"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "Another One.md"), []byte("x"), 0644))

	r := newRenamer(t, config.RenamerConfig{SanitizeNames: true})

	plan, err := r.Plan(root)

	require.NoError(t, err)
	require.Len(t, plan, 2)
	names := map[string]string{}
	for _, rename := range plan {
		names[filepath.Base(rename.Path)] = rename.NewName
	}
	assert.Equal(t, "my-file.txt", names["My File.txt"])
	assert.Equal(t, "another-one.md", names["Another One.md"])
}

func TestPlan_MissingRoot(t *testing.T) {
	r := newRenamer(t, config.NewDefaultRenamerConfig())

	_, err := r.Plan(filepath.Join(t.TempDir(), "nope"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, errorwrapper.ErrNotFound))
}

func TestApply_RenamesFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "My File.txt"), []byte("content"), 0644))

	r := newRenamer(t, config.RenamerConfig{SanitizeNames: true})
	plan, err := r.Plan(root)
	require.NoError(t, err)
	require.Len(t, plan, 1)

	result := r.Apply(plan)

	assert.Equal(t, 1, result.Renamed)
	assert.Equal(t, 0, result.Failed)
	assert.FileExists(t, filepath.Join(root, "my-file.txt"))
	assert.NoFileExists(t, filepath.Join(root, "My File.txt"))
}

func TestApply_SkipsClobbering(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "My File.txt"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "my-file.txt"), []byte("b"), 0644))

	r := newRenamer(t, config.RenamerConfig{SanitizeNames: true})
	plan, err := r.Plan(root)
	require.NoError(t, err)

	result := r.Apply(plan)

	assert.Equal(t, 0, result.Renamed)
	assert.Equal(t, 1, result.Failed)

	// The existing destination is untouched
	got, err := os.ReadFile(filepath.Join(root, "my-file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "b", string(got))
}
