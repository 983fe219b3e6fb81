package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tiwariParth/tasklist/internal/app"
	"github.com/tiwariParth/tasklist/internal/models"
	"github.com/tiwariParth/tasklist/internal/task"
)

var errQuit = errors.New("quit")

// Shell is a line-oriented front end for the task manager.
type Shell struct {
	app    *app.TodoApp
	in     *bufio.Reader
	out    io.Writer
	colors palette

	unsubscribe func()
	// set by ask when reading the answer fails
	readErr error
}

// ShellOptions controls shell behavior.
type ShellOptions struct {
	Color         bool
	ConfirmDelete bool
}

// NewShell wires a shell reading commands from in and writing to out.
func NewShell(manager *task.Manager, in io.Reader, out io.Writer, opts ShellOptions) *Shell {
	s := &Shell{
		in:     bufio.NewReader(in),
		out:    out,
		colors: newPalette(opts.Color),
	}

	var confirm app.Confirmer = app.AlwaysConfirm
	if opts.ConfirmDelete {
		confirm = app.ConfirmFunc(s.ask)
	}
	s.app = app.NewTodoApp(manager, confirm)
	s.unsubscribe = manager.Subscribe(s.onChange)
	return s
}

// Close stops the shell from reacting to manager changes.
func (s *Shell) Close() {
	s.unsubscribe()
}

// onChange redraws the list whenever the manager's tasks change.
func (s *Shell) onChange(e task.Event) {
	switch e.Kind {
	case task.PriorityChanged:
		fmt.Fprintf(s.out, "Priority set to %s\n", s.colors.Priority(e.Priority))
	case task.TaskAdded:
		fmt.Fprintf(s.out, "Added task: %s (ID: %d, %s)\n", s.colors.Bold(e.Task.Text), e.Task.ID, s.colors.Priority(e.Task.Priority))
		s.render()
	case task.TaskToggled:
		fmt.Fprintf(s.out, "Task %d marked %s.\n", e.Task.ID, e.Task.Status())
		s.render()
	case task.TaskDeleted:
		fmt.Fprintf(s.out, "Task %d deleted.\n", e.Task.ID)
		s.render()
	default:
		s.render()
	}
}

// Run reads commands until exit or end of input.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, s.colors.Bold("Welcome to the task list!")+" Type 'help' for commands.")
	s.render()

	for {
		fmt.Fprint(s.out, "> ")
		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if cmdErr := s.Exec(line); cmdErr != nil {
			if errors.Is(cmdErr, errQuit) {
				fmt.Fprintln(s.out, "Goodbye!")
				return nil
			}
			fmt.Fprintf(s.out, "Error: %v\n", cmdErr)
		}

		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
	}
}

// Exec runs a single command line.
func (s *Shell) Exec(line string) error {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "add":
		// keep the text as typed; the manager trims the ends
		text := strings.TrimPrefix(line, fields[0])
		if _, err := s.app.AddTask(text); err != nil {
			var verr *task.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintln(s.out, s.colors.Red(verr.Message))
				return nil
			}
			return fmt.Errorf("failed to add task: %w", err)
		}

	case "toggle", "done", "complete":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		if _, ok := s.app.Manager().Get(id); !ok {
			fmt.Fprintf(s.out, "Task with ID %d not found.\n", id)
			return nil
		}
		s.app.ToggleTask(id)

	case "delete", "rm":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		if _, ok := s.app.Manager().Get(id); !ok {
			fmt.Fprintf(s.out, "Task with ID %d not found.\n", id)
			return nil
		}
		if !s.app.RequestDelete(id) {
			if err := s.readErr; err != nil {
				s.readErr = nil
				return fmt.Errorf("failed to read confirmation: %w", err)
			}
			fmt.Fprintln(s.out, "Delete cancelled.")
		}

	case "priority", "p":
		if len(args) == 0 {
			fmt.Fprintf(s.out, "Current priority: %s\n", s.colors.Priority(s.app.View().CurrentPriority))
			return nil
		}
		p, err := models.ParsePriority(args[0])
		if err != nil {
			return err
		}
		return s.app.SetPriority(p)

	case "list", "ls":
		s.render()

	case "stats":
		s.renderStats(s.app.View().Stats)

	case "help", "?":
		s.help()

	case "exit", "quit", "q":
		return errQuit

	default:
		return fmt.Errorf("unknown command: %s (type 'help' for commands)", fields[0])
	}

	return nil
}

func (s *Shell) ask(prompt string) bool {
	fmt.Fprintf(s.out, "%s [y/N]: ", prompt)
	answer, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		s.readErr = err
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (s *Shell) render() {
	v := s.app.View()
	if v.Empty {
		fmt.Fprintln(s.out, s.colors.Faint("No tasks yet. Use 'add <task>' to create one."))
	}
	for _, t := range v.Tasks {
		s.renderTask(t)
	}
	s.renderStats(v.Stats)
}

func (s *Shell) renderTask(t models.Task) {
	check := "[ ]"
	text := s.colors.Bold(t.Text)
	if t.Completed {
		check = s.colors.Green("[x]")
		text = s.colors.Faint(t.Text)
	}
	fmt.Fprintf(s.out, "%s %3d. %s %s %s\n", check, t.ID, text, s.colors.Priority(t.Priority), s.colors.Faint(t.CreatedAt))
}

func (s *Shell) renderStats(st task.Stats) {
	fmt.Fprintf(s.out, "Total: %d  Completed: %s  Pending: %s\n",
		st.Total, s.colors.Green(strconv.Itoa(st.Completed)), s.colors.Red(strconv.Itoa(st.Pending)))
}

func (s *Shell) help() {
	fmt.Fprintln(s.out, `Commands:
  add <task>                   add a task with the current priority
  priority [low|medium|high]   show or set the priority for new tasks
  toggle <id>                  mark a task completed or pending
  delete <id>                  delete a task
  list                         show all tasks
  stats                        show task counts
  exit                         leave`)
}

func parseID(args []string) (int64, error) {
	if len(args) < 1 {
		return 0, errors.New("missing task ID")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task ID: %w", err)
	}
	return id, nil
}
