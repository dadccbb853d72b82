/*
Copyright © 2026 Daystack Labs
*/
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/daystacklabs/daystack/internal/config"
	"github.com/daystacklabs/daystack/internal/stack"
	"github.com/daystacklabs/daystack/internal/ui"
	"github.com/daystacklabs/daystack/models"
	"github.com/daystacklabs/daystack/store"
)

// stackCmd represents the stack command
var stackCmd = &cobra.Command{
	Use:   "stack",
	Short: "Build today's working set",
	Long: `Build the prioritized, capacity-bounded stack for today.

The pending sweep runs first so newly actionable tasks are eligible, then
the day's minute budget is resolved (same-day override, configured
default, or 120) and the stack is selected: your pinned tasks first,
then the best-scoring suggestions that fit the remaining budget.

Examples:
  daystack stack
  daystack stack --minutes 45        # one-off budget for today
  daystack stack --watch             # rebuild whenever data changes
  daystack stack --interactive       # toggle pins before building`,
	RunE: runStack,
}

var (
	stackDomain      string
	stackMinutes     int
	stackMax         int
	stackWatch       bool
	stackInteractive bool
)

func init() {
	rootCmd.AddCommand(stackCmd)

	stackCmd.Flags().StringVar(&stackDomain, "domain", "life", "domain to build for (life or work)")
	stackCmd.Flags().IntVar(&stackMinutes, "minutes", 0, "available minutes for today (overrides config)")
	stackCmd.Flags().IntVar(&stackMax, "max", 0, "maximum stack size")
	stackCmd.Flags().BoolVar(&stackWatch, "watch", false, "keep running and rebuild when the data file changes")
	stackCmd.Flags().BoolVar(&stackInteractive, "interactive", false, "toggle pins interactively before building")
}

func runStack(cmd *cobra.Command, args []string) error {
	domain, err := parseDomain(stackDomain)
	if err != nil {
		return err
	}

	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	now := time.Now()
	if swept, err := taskStore.SweepDuePending(now); err != nil {
		return fmt.Errorf("pending sweep failed: %w", err)
	} else if swept > 0 && isVerbose() {
		fmt.Fprintf(os.Stderr, "Swept %d pending task(s) back to backlog\n", swept)
	}

	if stackInteractive {
		if err := triagePins(taskStore, domain, now); err != nil {
			return err
		}
	}

	if err := buildAndRender(cmd, taskStore, domain, now); err != nil {
		return err
	}

	if stackWatch {
		return watchAndRebuild(cmd, taskStore, domain)
	}
	return nil
}

// resolveMinutes resolves today's budget: an explicit --minutes flag wins,
// then the persisted same-day override, then config, then the engine's
// fallback.
func resolveMinutes(domain models.Domain) int {
	if stackMinutes > 0 {
		return stackMinutes
	}
	cfg := GetConfig()
	overrides := config.NewOverrideStore(filepath.Join(cfg.Project.RootDir, cfg.Project.DataDir))
	return stack.ResolveAvailableMinutes(cfg.Capacity, overrides.Find(domain), domain, today())
}

func maxStackSize() int {
	if stackMax > 0 {
		return stackMax
	}
	if cfg := GetConfig(); cfg.Stack.MaxTasks > 0 {
		return cfg.Stack.MaxTasks
	}
	return stack.DefaultMaxStackSize
}

func buildAndRender(cmd *cobra.Command, taskStore store.Store, domain models.Domain, now time.Time) error {
	tasks, err := taskStore.ListTasks(nil, nil)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}
	categories, err := taskStore.ListCategories()
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}

	minutes := resolveMinutes(domain)
	split := stack.BuildSplit(tasks, categories, domain, minutes, maxStackSize(), now)

	if isJSON() {
		return printJSON(split)
	}

	kinds := make(map[string]models.CategoryKind, len(categories))
	for _, c := range categories {
		kinds[c.ID] = c.Kind
	}
	cmd.Print(ui.RenderStack(split, kinds, minutes))

	waiting := stack.WaitingTasks(tasks, domain, now)
	if len(waiting) > 0 {
		cmd.Printf("\n%d task(s) waiting; see: daystack waiting\n", len(waiting))
	}
	return nil
}

// triagePins opens the interactive pin toggle over the actionable pool and
// applies the user's choices.
func triagePins(taskStore store.Store, domain models.Domain, now time.Time) error {
	tasks, err := taskStore.ListTasks(func(t models.Task) bool {
		return t.Domain == domain && stack.IsActionable(t, now)
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}
	kinds, err := categoryKinds(taskStore)
	if err != nil {
		return err
	}

	toggled, err := ui.RunTriage(tasks, kinds)
	if err != nil {
		return err
	}
	for _, id := range toggled {
		task, err := taskStore.GetTask(id)
		if err != nil {
			return err
		}
		if task.Status == models.StatusToday {
			_, err = taskStore.UnpinTask(id, now)
		} else {
			_, err = taskStore.PinTask(id, now)
		}
		if err != nil {
			return fmt.Errorf("failed to toggle pin on %s: %w", id, err)
		}
	}
	return nil
}

// watchAndRebuild re-renders the stack whenever the data file changes on
// disk. The engine has no caching; the host just re-invokes it.
func watchAndRebuild(cmd *cobra.Command, taskStore store.Store, domain models.Domain) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: snapshot saves are atomic renames, which
	// replace the file rather than write through it.
	dataFile := GetDataFilePath()
	if err := watcher.Add(filepath.Dir(dataFile)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(dataFile), err)
	}

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)

	fmt.Fprintln(os.Stderr, "Watching for changes. Ctrl-C to stop.")
	var debounce <-chan time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(dataFile) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Coalesce the write+rename burst a single save produces.
			debounce = time.After(150 * time.Millisecond)
		case <-debounce:
			debounce = nil
			if err := buildAndRender(cmd, taskStore, domain, time.Now()); err != nil {
				fmt.Fprintf(os.Stderr, "rebuild failed: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		case <-sigint:
			return nil
		}
	}
}
