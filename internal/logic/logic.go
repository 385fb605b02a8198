// Package logic runs command lines against the model and persists the result.
package logic

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/pbaille/meetbook/internal/command"
	"github.com/pbaille/meetbook/internal/domain"
	"github.com/pbaille/meetbook/internal/model"
	"github.com/pbaille/meetbook/internal/parser"
	"github.com/pbaille/meetbook/internal/store"
)

const MessageSaveFailed = "Could not save data to file: %w"

// Logic owns the model and the active mode. It is safe for concurrent use so
// the HTTP API and the terminal UI can share one instance.
type Logic struct {
	mu      sync.Mutex
	model   *model.Model
	storage store.Storage
	mode    command.Mode
	log     *zap.Logger
}

// New returns a Logic in persons mode.
func New(m *model.Model, s store.Storage, log *zap.Logger) *Logic {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logic{model: m, storage: s, mode: command.ModePersons, log: log}
}

// Execute runs line in the active mode.
func (l *Logic) Execute(line string) (command.Result, error) {
	l.mu.Lock()
	res, slow, err := l.execute(l.mode, line)
	l.mu.Unlock()
	return l.finish(res, slow, err)
}

// ExecuteIn activates mode and runs line in it.
func (l *Logic) ExecuteIn(mode command.Mode, line string) (command.Result, error) {
	l.mu.Lock()
	l.mode = mode
	res, slow, err := l.execute(mode, line)
	l.mu.Unlock()
	return l.finish(res, slow, err)
}

// execute runs with l.mu held. For staged commands it returns the slow step
// instead of a result.
func (l *Logic) execute(mode command.Mode, line string) (command.Result, func() (command.Result, error), error) {
	l.log.Info("command entered", zap.String("input", line), zap.Stringer("mode", mode))

	c, err := parser.Parse(mode, line)
	if err != nil {
		l.log.Debug("command rejected", zap.Error(err))
		return command.Result{}, nil, err
	}

	if s, ok := c.(command.Staged); ok {
		slow, err := s.Stage(l.model)
		if err != nil {
			l.logFailure(err)
			return command.Result{}, nil, err
		}
		return command.Result{}, slow, nil
	}

	res, err := c.Execute(l.model)
	if err != nil {
		l.logFailure(err)
		return command.Result{}, nil, err
	}
	if res.SwitchTo != 0 {
		l.mode = res.SwitchTo
	}

	if err := l.storage.Save(l.model.AddressBook()); err != nil {
		l.log.Error("save failed", zap.String("path", l.storage.Path()), zap.Error(err))
		return command.Result{}, nil, fmt.Errorf(MessageSaveFailed, err)
	}
	return res, nil, nil
}

// finish runs the slow step of a staged command, without l.mu held.
func (l *Logic) finish(res command.Result, slow func() (command.Result, error), err error) (command.Result, error) {
	if err != nil || slow == nil {
		return res, err
	}
	res, err = slow()
	if err != nil {
		l.logFailure(err)
	}
	return res, err
}

func (l *Logic) logFailure(err error) {
	if command.IsUserError(err) {
		l.log.Debug("command failed", zap.Error(err))
		return
	}
	l.log.Error("command failed", zap.Error(err))
}

// Mode returns the active mode.
func (l *Logic) Mode() command.Mode {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mode
}

// FilteredPersons returns the person list as currently displayed.
func (l *Logic) FilteredPersons() []domain.Person {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.model.FilteredPersons()
}

// Meetings returns the meeting list as currently displayed.
func (l *Logic) Meetings() []domain.Meeting {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.model.SortedFilteredMeetings()
}

// SearchMeetings applies the find ordering to all meetings without touching
// the displayed list.
func (l *Logic) SearchMeetings(query string) []domain.Meeting {
	keywords := strings.Fields(query)
	l.mu.Lock()
	all := l.model.AddressBook().Meetings()
	l.mu.Unlock()

	if len(keywords) == 0 {
		slices.SortStableFunc(all, domain.ByStartTime)
		return all
	}
	pred := domain.MeetingContainsKeywords{Keywords: keywords}
	out := slices.DeleteFunc(all, func(m domain.Meeting) bool { return !pred.Test(m) })
	slices.SortStableFunc(out, domain.KeywordMatchness(keywords).ThenBy(domain.ByStartTime))
	return out
}

// StoragePath is where the address book is saved.
func (l *Logic) StoragePath() string { return l.storage.Path() }
