package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"subject-quiz/internal/quiz"
)

// SubjectLister is the read side of a question bank the menu is built from.
type SubjectLister interface {
	Subjects() []string
	QuestionCount(subject string) int
}

type App struct {
	controller *quiz.Controller
	subjects   SubjectLister
	log        logrus.FieldLogger

	mu         sync.Mutex
	out        io.Writer
	lastStatus quiz.Status
	warned     bool
}

func NewApp(controller *quiz.Controller, subjects SubjectLister, out io.Writer, log logrus.FieldLogger) *App {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &App{
		controller: controller,
		subjects:   subjects,
		log:        log,
		out:        out,
		lastStatus: controller.State().Status,
	}
}

// Run drives one quiz session from line-oriented input until quit, EOF or
// ctx cancellation.
func Run(ctx context.Context, in io.Reader, out io.Writer, controller *quiz.Controller, subjects SubjectLister, log logrus.FieldLogger) error {
	return NewApp(controller, subjects, out, log).Run(ctx, in)
}

func (a *App) Run(ctx context.Context, in io.Reader) error {
	unsubscribe := a.controller.Subscribe(a.onStateChange)
	defer unsubscribe()

	a.printf("Subject quiz. %d seconds per run. Type 'help' for commands.\n", a.controller.Budget())
	a.render(a.controller.State())

	var scanErr error
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr = scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return scanErr
			}
			if quit := a.handle(strings.TrimSpace(line)); quit {
				a.printf("Bye.\n")
				return nil
			}
		}
	}
}

// handle executes one input line and reports whether the user asked to quit.
func (a *App) handle(line string) bool {
	if line == "" {
		return false
	}

	fields := strings.Fields(line)
	command := strings.ToLower(fields[0])
	argument := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
	state := a.controller.State()

	if len(fields) == 1 && state.Status == quiz.StatusActive {
		if current, ok := state.Current(); ok {
			if _, ok := quiz.LetterIndex(command, len(current.Options)); ok {
				a.dispatch(state, quiz.SelectLetter(command))
				return false
			}
		}
	}

	a.log.WithField("command", command).Debug("cli command")

	switch command {
	case "quit", "exit", "q":
		return true
	case "help", "h", "?":
		a.printHelp()
	case "subjects", "s":
		a.printSubjects()
	case "status":
		a.render(state)
	case "subject":
		if argument == "" {
			a.printf("Usage: subject <name>\n")
			return false
		}
		a.dispatch(state, quiz.ChooseSubject(a.resolveSubject(argument)))
	case "start":
		a.dispatch(state, quiz.Start())
	case "next", "n":
		a.dispatch(state, quiz.Next())
	case "prev", "p":
		a.dispatch(state, quiz.Prev())
	case "finish", "f":
		a.dispatch(state, quiz.Finish())
	case "restart", "r":
		a.dispatch(state, quiz.Restart())
	default:
		if subject, ok := a.knownSubject(line); ok {
			a.dispatch(state, quiz.ChooseSubject(subject))
			return false
		}
		if state.Status == quiz.StatusActive && quiz.NormalizeLetter(command) != "" {
			a.printf("No option %s for this question.\n", strings.ToUpper(command))
			return false
		}
		a.printf("Unknown command %q. Type 'help' for commands.\n", line)
	}
	return false
}

// dispatch applies action and renders the result. Entering finished is
// rendered by onStateChange so timer and user finishes look the same.
func (a *App) dispatch(prev quiz.State, action quiz.Action) {
	state := a.controller.Dispatch(action)
	if state.Status == quiz.StatusFinished && prev.Status != quiz.StatusFinished {
		return
	}
	a.render(state)
}

func (a *App) onStateChange(state quiz.State) {
	a.mu.Lock()
	prev := a.lastStatus
	a.lastStatus = state.Status
	warn := state.LowTime() && !a.warned
	a.warned = state.LowTime()
	a.mu.Unlock()

	if warn {
		a.printf("Hurry up: %d seconds left!\n", state.TimeLeft)
	}
	if state.Status == quiz.StatusFinished && prev != quiz.StatusFinished {
		if state.TimeLeft == 0 {
			a.printf("\nTime's up!\n")
		}
		a.render(state)
	}
}

func (a *App) resolveSubject(name string) string {
	if subject, ok := a.knownSubject(name); ok {
		return subject
	}
	return name
}

func (a *App) knownSubject(name string) (string, bool) {
	for _, subject := range a.subjects.Subjects() {
		if strings.EqualFold(subject, strings.TrimSpace(name)) {
			return subject, true
		}
	}
	return "", false
}

func (a *App) printf(format string, args ...any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) printSubjects() {
	var b strings.Builder
	b.WriteString("Subjects:\n")
	for _, subject := range a.subjects.Subjects() {
		fmt.Fprintf(&b, "  %s (%d questions)\n", subject, a.subjects.QuestionCount(subject))
	}
	a.printf("%s", b.String())
}

func (a *App) printHelp() {
	a.printf(`Commands:
  subjects            list subjects
  subject <name>      choose a subject (or just type its name)
  start               start the countdown
  A, B, C, ...        select an option for the current question
  next, n / prev, p   move between questions
  finish, f           finish early
  restart, r          go back to the subject's start screen
  status              show the current screen
  quit                exit
`)
}
