package sanipath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test names only use characters that are legal on POSIX, where the tests
// run; that is exactly the situation the renamer exists for.
func TestPlanRenames(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "report:v2.txt"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "nul"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "clean.txt"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "bad?dir"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "bad?dir", "inner|file"), nil, 0644))

	plan, err := PlanRenames(root, PolicyConfig{})
	require.NoError(t, err)

	// root + 4 entries + 1 nested file
	assert.Equal(t, 6, plan.Scanned)

	got := map[string]string{}
	for _, r := range plan.Renames {
		rel, err := filepath.Rel(root, r.OldPath)
		require.NoError(t, err)
		newRel, err := filepath.Rel(root, r.NewPath)
		require.NoError(t, err)
		got[rel] = newRel
	}

	assert.Equal(t, map[string]string{
		"report:v2.txt":      "report_v2.txt",
		"nul":                "_nul_",
		"bad?dir":            "bad_dir",
		"bad?dir/inner|file": "bad?dir/inner_file",
	}, got)
}

func TestRenamePlanApply(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, os.Mkdir(filepath.Join(root, "d:1"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "d:1", "c:2"), nil, 0644))

	plan, err := PlanRenames(root, PolicyConfig{})
	require.NoError(t, err)
	require.Len(t, plan.Renames, 2)

	applied, err := plan.Apply()
	require.NoError(t, err)
	assert.Equal(t, 2, applied)

	// Children must be renamed before their parent directories.
	_, err = os.Stat(filepath.Join(root, "d_1", "c_2"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "d:1"))
	assert.True(t, os.IsNotExist(err))
}

func TestRenamePlanApply_SkipsExistingTarget(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "a:b"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a_b"), nil, 0644))

	plan, err := PlanRenames(root, PolicyConfig{})
	require.NoError(t, err)
	require.Len(t, plan.Renames, 1)

	applied, err := plan.Apply()
	require.NoError(t, err)
	assert.Equal(t, 0, applied)

	// The original must still be there untouched.
	_, err = os.Stat(filepath.Join(root, "a:b"))
	assert.NoError(t, err)
}

func TestPlanRenames_CleanTree(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "fine.txt"), nil, 0644))

	plan, err := PlanRenames(root, PolicyConfig{})
	require.NoError(t, err)
	assert.Empty(t, plan.Renames)
	assert.Equal(t, 2, plan.Scanned)
}
