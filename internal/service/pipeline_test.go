package service_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charfreq/internal/counter"
	"charfreq/internal/domain"
	"charfreq/internal/logging"
	"charfreq/internal/service"
)

type recordingRenderer struct {
	table  domain.FrequencyTable
	novels []string
	calls  int
}

func (r *recordingRenderer) Render(table domain.FrequencyTable, novels []string) error {
	r.table = table
	r.novels = novels
	r.calls++
	return nil
}

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newPipeline(r domain.Renderer, topN int) *service.Pipeline {
	return service.NewPipeline(counter.NewFrequencyCounter(nil), r, logging.NewNop(), topN)
}

func TestBuildTwoNovelTable(t *testing.T) {
	dir := t.TempDir()
	vocab := write(t, dir, "characters", "harry\nron\n")
	novels := []service.Novel{
		{Path: write(t, dir, "n1.txt", "Harry ran. Harry's wand glowed."), Title: "novel1"},
		{Path: write(t, dir, "n2.txt", "Ron and Harry talked."), Title: "novel2"},
	}

	res, err := newPipeline(nil, 10).Build(context.Background(), vocab, novels)
	require.NoError(t, err)
	assert.Equal(t, []string{"harry", "ron"}, res.Vocabulary)
	assert.Equal(t, domain.FrequencyTable{
		{Novel: "novel1", Character: "Harry", Frequency: domain.Present(2)},
		{Novel: "novel1", Character: "Ron", Frequency: domain.Absent()},
		{Novel: "novel2", Character: "Harry", Frequency: domain.Present(1)},
		{Novel: "novel2", Character: "Ron", Frequency: domain.Present(1)},
	}, res.Table)

	// Harry peaks at 2, Ron at 1.
	assert.Equal(t, domain.FrequencyTable{
		{Novel: "novel1", Character: "Harry", Frequency: domain.Present(2)},
		{Novel: "novel2", Character: "Harry", Frequency: domain.Present(1)},
		{Novel: "novel1", Character: "Ron", Frequency: domain.Absent()},
		{Novel: "novel2", Character: "Ron", Frequency: domain.Present(1)},
	}, res.Ordered)
}

func TestBuildContinuesPastMissingNovel(t *testing.T) {
	dir := t.TempDir()
	vocab := write(t, dir, "characters", "Harry\nHermione\n")
	novels := []service.Novel{
		{Path: write(t, dir, "n1.txt", "Hermione and Harry. Harry!"), Title: "One"},
		{Path: filepath.Join(dir, "missing.txt"), Title: "Two"},
		{Path: write(t, dir, "n3.txt", "Hermione."), Title: "Three"},
	}

	res, err := newPipeline(nil, 10).Build(context.Background(), vocab, novels)
	require.NoError(t, err)
	require.Len(t, res.Table, 6)
	for _, rec := range res.Table[2:4] {
		assert.Equal(t, "Two", rec.Novel)
		assert.False(t, rec.Frequency.Valid)
	}
	assert.Equal(t, domain.Present(1), res.Table[5].Frequency)

	counts, err := newPipeline(nil, 10).CountNovels(context.Background(), novels, []string{"harry"})
	require.NoError(t, err)
	assert.Nil(t, counts[1])
	assert.Equal(t, map[string]int{"harry": 2}, counts[0])
}

func TestBuildFailsOnMissingVocabulary(t *testing.T) {
	_, err := newPipeline(nil, 10).Build(context.Background(), filepath.Join(t.TempDir(), "characters"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestRunRendersOrderedSelection(t *testing.T) {
	dir := t.TempDir()
	vocab := write(t, dir, "characters", "harry\nron\nneville\n")
	novels := []service.Novel{
		{Path: write(t, dir, "n1.txt", "Harry. Ron. Neville. Neville."), Title: "One"},
		{Path: write(t, dir, "n2.txt", "Harry Harry Harry Harry Harry. Ron Ron. Neville Neville Neville."), Title: "Two"},
	}
	r := &recordingRenderer{}

	// spreads: harry 4, ron 1, neville 1 -> harry and ron (ties keep vocabulary order)
	res, err := newPipeline(r, 2).Run(context.Background(), vocab, novels)
	require.NoError(t, err)
	assert.Equal(t, 1, r.calls)
	assert.Equal(t, []string{"One", "Two"}, r.novels)
	assert.Equal(t, res.Ordered, r.table)
	chars := []string{r.table[0].Character, r.table[1].Character, r.table[2].Character, r.table[3].Character}
	assert.Equal(t, []string{"Harry", "Harry", "Ron", "Ron"}, chars)
}

func TestCountNovelsHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newPipeline(nil, 1).CountNovels(ctx, []service.Novel{{Path: "x", Title: "X"}}, []string{"harry"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResultBrowseAccessors(t *testing.T) {
	res := &service.Result{
		Table: domain.FrequencyTable{
			{Novel: "One", Character: "Ron", Frequency: domain.Present(3)},
			{Novel: "One", Character: "Harry", Frequency: domain.Present(9)},
			{Novel: "Two", Character: "Ron", Frequency: domain.Absent()},
			{Novel: "Two", Character: "Harry", Frequency: domain.Present(4)},
		},
		Ordered: domain.FrequencyTable{
			{Novel: "One", Character: "Harry", Frequency: domain.Present(9)},
			{Novel: "Two", Character: "Harry", Frequency: domain.Present(4)},
		},
	}
	assert.Equal(t, []string{"Harry", "Ron"}, res.Characters())
	assert.Len(t, res.Records("Ron"), 2)
	assert.True(t, res.Selected("Harry"))
	assert.False(t, res.Selected("Ron"))
}
