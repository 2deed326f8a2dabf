package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/ecotrack/internal/backup"
	"github.com/julianstephens/ecotrack/internal/storage"
	"github.com/julianstephens/ecotrack/internal/streaklog"
)

type Context struct {
	Store storage.Provider
	Log   *streaklog.Log
}

// PerformAutomaticBackup creates a backup of the store, warning instead of
// failing when it cannot.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}

func getCurrentDate() string {
	return time.Now().Format("2006-01-02")
}
