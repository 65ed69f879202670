package result

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharanetra/dhara/internal/router"
	"github.com/dharanetra/dhara/internal/screen"
	"github.com/dharanetra/dhara/internal/soil"
	"github.com/dharanetra/dhara/internal/store"
)

type recordingRepo struct {
	appended []store.Record
	err      error
}

func (r *recordingRepo) Append(ctx context.Context, rec *store.Record) error {
	if r.err != nil {
		return r.err
	}
	rec.ID = "rec-1"
	r.appended = append(r.appended, *rec)
	return nil
}

func (r *recordingRepo) Get(ctx context.Context, id string) (*store.Record, error) {
	return nil, store.ErrNotFound
}

func (r *recordingRepo) List(ctx context.Context, opts store.QueryOpts) ([]store.Record, error) {
	return nil, nil
}

func (r *recordingRepo) Clear(ctx context.Context) (int64, error) {
	return 0, nil
}

func fineResult(t *testing.T) (soil.Sample, *soil.Result) {
	t.Helper()
	s := soil.Sample{soil.LiquidLimit: 40, soil.PlasticLimit: 20}
	r, err := soil.ClassifyFine(s)
	require.NoError(t, err)
	return s, r
}

func press(s *Screen, key rune) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: key, Text: string(key)})
	return cmd
}

func TestSave(t *testing.T) {
	repo := &recordingRepo{}
	sample, r := fineResult(t)
	s := New(screen.Env{History: repo, Project: "bridge"}, sample, r)
	assert.Equal(t, "unsaved", s.Status())

	cmd := press(s, 's')
	require.NotNil(t, cmd)
	s.Update(cmd())

	require.Len(t, repo.appended, 1)
	assert.Equal(t, "bridge", repo.appended[0].Project)
	assert.Equal(t, "CI", repo.appended[0].Result.Code)
	assert.Equal(t, "saved", s.Status())
	assert.Nil(t, press(s, 's'), "already saved")
}

func TestSave_Error(t *testing.T) {
	sample, r := fineResult(t)
	s := New(screen.Env{History: &recordingRepo{err: errors.New("locked")}}, sample, r)

	s.Update(press(s, 's')())
	assert.Equal(t, "unsaved", s.Status())
	assert.Contains(t, s.View(140, 40), "Save failed: locked")
}

func TestSave_NoStore(t *testing.T) {
	sample, r := fineResult(t)
	s := New(screen.Env{}, sample, r)

	assert.Nil(t, press(s, 's'))
	assert.Empty(t, s.Status())
	for _, h := range s.KeyHints() {
		assert.NotEqual(t, "s", h.Key)
	}
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	sample, r := fineResult(t)
	s := New(screen.Env{ReportDir: dir}, sample, r)

	msg, ok := press(s, 'w')().(reportWrittenMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.True(t, strings.HasPrefix(msg.Path, dir))
	assert.Contains(t, msg.Path, "dhara-report-CI-")

	text, err := os.ReadFile(msg.Path)
	require.NoError(t, err)
	assert.Contains(t, string(text), "SOIL CLASSIFICATION REPORT")
}

func TestHome(t *testing.T) {
	sample, r := fineResult(t)
	s := New(screen.Env{}, sample, r)

	_, ok := press(s, 'h')().(router.PopToRootMsg)
	assert.True(t, ok)
}

func TestFromRecord(t *testing.T) {
	sample, r := fineResult(t)
	s := FromRecord(screen.Env{History: &recordingRepo{}}, store.Record{ID: "abc", Sample: sample, Result: r})

	assert.Equal(t, "Result CI", s.Title())
	assert.Equal(t, "saved", s.Status())
	assert.Contains(t, s.View(140, 40), "Plasticity chart")
}
