package main_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/helpview"
	main "github.com/fwojciec/helpview/cmd/helpview"
	"github.com/fwojciec/helpview/fs"
	"github.com/fwojciec/helpview/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists manuals with status", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		current := filepath.Join(dir, "current.xml")
		changed := filepath.Join(dir, "changed.xml")
		require.NoError(t, os.WriteFile(current, []byte("<configuration/>"), 0644))
		require.NoError(t, os.WriteFile(changed, []byte("<configuration><title>New</title></configuration>"), 0644))

		deps, stdout, _ := testDeps(t)
		deps.Manuals = &mock.ManualService{
			FindManualsFn: func(_ context.Context, _ helpview.ManualFilter) ([]*helpview.Manual, error) {
				return []*helpview.Manual{
					{ID: "m-1", Name: "editor", ConfigPath: current, Checksum: fs.Checksum([]byte("<configuration/>")), Position: 0},
					{ID: "m-2", Name: "printer", ConfigPath: changed, Checksum: "old", Position: 1},
					{ID: "m-3", Name: "scanner", ConfigPath: filepath.Join(dir, "gone.xml"), Position: 2},
				}, nil
			},
		}

		require.NoError(t, (&main.ListCmd{}).Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "0  m-1  editor  "+current+"  ok")
		assert.Contains(t, output, "1  m-2  printer  "+changed+"  stale")
		assert.Contains(t, output, "2  m-3  scanner")
		assert.Contains(t, output, "missing")
	})

	t.Run("shows helpful message when no manuals exist", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)

		require.NoError(t, (&main.ListCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "No manuals registered")
	})

	t.Run("returns error when FindManuals fails", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(t)
		deps.Manuals = &mock.ManualService{
			FindManualsFn: func(_ context.Context, _ helpview.ManualFilter) ([]*helpview.Manual, error) {
				return nil, errors.New("database connection failed")
			},
		}

		err := (&main.ListCmd{}).Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "database connection failed")
	})
}

func TestRemoveCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("removes manual by name", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)
		require.NoError(t, (&main.AddCmd{Paths: []string{writeManual(t)}, Name: "printer"}).Run(deps))

		require.NoError(t, (&main.RemoveCmd{Name: "printer"}).Run(deps))

		assert.Contains(t, stdout.String(), `Removed manual "printer"`)
		manuals, err := deps.Manuals.FindManuals(context.Background(), helpview.ManualFilter{})
		require.NoError(t, err)
		assert.Empty(t, manuals)
	})

	t.Run("returns not found for unknown manual", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(t)

		err := (&main.RemoveCmd{Name: "nope"}).Run(deps)
		require.Error(t, err)
		assert.Equal(t, helpview.ENOTFOUND, helpview.ErrorCode(err))
		assert.Contains(t, stderr.String(), "helpview list")
	})
}
