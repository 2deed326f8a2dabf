package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/ecotrack/internal/backup"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable
	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
	}

	// Check 2: streak log parseable (warning only; corrupt logs are
	// treated as empty history at runtime)
	if err := checkStreakLog(ctx); err != nil {
		fmt.Printf("⚠ Streak log: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Streak log: OK\n")
	}

	// Check 3: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 4: concurrent processes (warning only; writes are
	// last-writer-wins with no locking)
	if err := checkConcurrentProcesses(); err != nil {
		fmt.Printf("⚠ Single process: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single process: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	if _, err := ctx.Store.GetSettings(); err != nil {
		return fmt.Errorf("settings unreadable: %w", err)
	}
	return nil
}

func checkStreakLog(ctx *Context) error {
	data, err := os.ReadFile(ctx.Log.Path())
	if os.IsNotExist(err) {
		return nil // no history yet, nothing to check
	}
	if err != nil {
		return fmt.Errorf("streak log unreadable: %w (treated as empty history)", err)
	}

	var f struct {
		LoggedDates []string `json:"logged_dates"`
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("streak log is not valid JSON (treated as empty history): %w", err)
	}

	if invalid := len(f.LoggedDates) - len(ctx.Log.Load()); invalid > 0 {
		return fmt.Errorf("streak log holds %d duplicate or malformed date(s), they are ignored", invalid)
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, run 'ecotrack backup create'")
	}
	return nil
}

// checkConcurrentProcesses warns when another ecotrack process is running.
// The store and streak log are read-modify-written without locking, so a
// second writer can silently drop an interleaved write.
func checkConcurrentProcesses() error {
	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to enumerate processes: %w", err)
	}

	self := os.Getpid()
	count := 0
	for _, p := range processes {
		if p.Pid() == self {
			continue
		}
		if strings.HasPrefix(p.Executable(), "ecotrack") {
			count++
		}
	}

	if count > 0 {
		return fmt.Errorf("%d other ecotrack process(es) running; concurrent writes race and the last writer wins", count)
	}
	return nil
}
