package logic

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pbaille/meetbook/internal/command"
	"github.com/pbaille/meetbook/internal/domain"
	"github.com/pbaille/meetbook/internal/model"
	"github.com/pbaille/meetbook/internal/parser"
	"github.com/pbaille/meetbook/internal/store"
)

type failingStorage struct{ store.Storage }

func (failingStorage) Save(*model.AddressBook) error { return errors.New("disk full") }
func (failingStorage) Path() string                  { return "/nowhere" }

type nopClipboard struct{}

func (nopClipboard) WriteAll(string) error { return nil }

// gatedPages blocks every lookup until release is closed.
type gatedPages struct {
	entered chan struct{}
	release chan struct{}
}

func (g gatedPages) Title(context.Context, string) (string, error) {
	g.entered <- struct{}{}
	<-g.release
	return "Zoom", nil
}

func newLogic(t *testing.T) (*Logic, store.Storage) {
	t.Helper()
	s := store.NewJSON(filepath.Join(t.TempDir(), "addressbook.json"))
	m := model.New(model.SampleAddressBook(), model.WithClipboard(nopClipboard{}))
	return New(m, s, zaptest.NewLogger(t)), s
}

func TestExecuteSavesAfterCommand(t *testing.T) {
	l, s := newLogic(t)

	res, err := l.Execute("add n/Amy Bee p/11111111 e/amy@example.com a/Block 312")
	require.NoError(t, err)
	assert.Contains(t, res.Feedback, "New person added: Amy Bee")

	saved, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, saved.Persons(), 7)
}

func TestExecuteReturnsParseErrorsVerbatim(t *testing.T) {
	l, s := newLogic(t)

	_, err := l.Execute("edit 1")
	require.Error(t, err)
	assert.True(t, parser.IsParseError(err))
	assert.Equal(t, command.MessageNotEdited, err.Error())

	_, err = l.Execute("frobnicate")
	assert.EqualError(t, err, command.MessageUnknownCommand)

	_, err = s.Load()
	assert.ErrorIs(t, err, store.ErrNoData, "rejected input is not saved")
}

func TestExecuteSwitchesMode(t *testing.T) {
	l, _ := newLogic(t)
	assert.Equal(t, command.ModePersons, l.Mode())

	_, err := l.Execute("meetings")
	require.NoError(t, err)
	assert.Equal(t, command.ModeMeetings, l.Mode())

	res, err := l.Execute("find cs2103 lecture")
	require.NoError(t, err)
	assert.Equal(t, "1 meetings listed!", res.Feedback)
	require.Len(t, l.Meetings(), 1)
	assert.Equal(t, domain.Title("CS2103 Lecture"), l.Meetings()[0].Title)

	// persons keep their own view
	assert.Len(t, l.FilteredPersons(), 6)

	_, err = l.ExecuteIn(command.ModePersons, "find alex")
	require.NoError(t, err)
	assert.Equal(t, command.ModePersons, l.Mode())
	assert.Len(t, l.FilteredPersons(), 1)
}

func TestExecuteReportsSaveFailure(t *testing.T) {
	m := model.New(model.SampleAddressBook())
	l := New(m, failingStorage{}, nil)

	_, err := l.Execute("list")
	require.Error(t, err)
	assert.Equal(t, "Could not save data to file: disk full", err.Error())
}

func TestSearchMeetingsDoesNotChangeView(t *testing.T) {
	l, _ := newLogic(t)
	_, err := l.ExecuteIn(command.ModeMeetings, "find sync")
	require.NoError(t, err)

	got := l.SearchMeetings("cs2103 tutorial")
	require.Len(t, got, 2)
	assert.Equal(t, domain.Title("CS2101 Tutorial"), got[0].Title, "ties on matchness fall back to start time")
	assert.Equal(t, domain.Title("CS2103 Lecture"), got[1].Title)

	all := l.SearchMeetings("  ")
	require.Len(t, all, 3)
	assert.Equal(t, domain.Title("Project Sync"), all[0].Title)

	assert.Len(t, l.Meetings(), 1)
}

func TestExecuteIsSafeForConcurrentUse(t *testing.T) {
	l, _ := newLogic(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = l.Execute("list")
			_ = l.FilteredPersons()
		}()
	}
	wg.Wait()
	assert.Equal(t, command.ModePersons, l.Mode())
}

func TestPeekFetchesWithoutBlockingReaders(t *testing.T) {
	pages := gatedPages{entered: make(chan struct{}), release: make(chan struct{})}
	s := store.NewJSON(filepath.Join(t.TempDir(), "addressbook.json"))
	m := model.New(model.SampleAddressBook(), model.WithClipboard(nopClipboard{}), model.WithPageFetcher(pages))
	l := New(m, s, zaptest.NewLogger(t))

	type outcome struct {
		res command.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := l.ExecuteIn(command.ModeMeetings, "peek 1")
		done <- outcome{res, err}
	}()
	<-pages.entered

	read := make(chan int, 1)
	go func() { read <- len(l.Meetings()) + len(l.FilteredPersons()) }()
	select {
	case n := <-read:
		assert.Equal(t, 9, n)
	case <-time.After(2 * time.Second):
		close(pages.release)
		t.Fatal("readers blocked while the link was being fetched")
	}
	assert.Equal(t, command.ModeMeetings, l.Mode())

	close(pages.release)
	got := <-done
	require.NoError(t, got.err)
	assert.Equal(t, "Link of Project Sync points to: Zoom", got.res.Feedback)

	_, err := s.Load()
	assert.ErrorIs(t, err, store.ErrNoData, "peek does not change the book")
}

func TestPeekWithBadIndexFailsFast(t *testing.T) {
	l, _ := newLogic(t)
	_, err := l.ExecuteIn(command.ModeMeetings, "peek 9")
	assert.EqualError(t, err, command.MessageInvalidMeetingIndex)
}
