// Package app wires the storage, catalog, and review services together
// and runs the terminal UI.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sdey/revu/internal/catalog"
	"github.com/sdey/revu/internal/config"
	"github.com/sdey/revu/internal/explain"
	"github.com/sdey/revu/internal/llm"
	"github.com/sdey/revu/internal/progress"
	"github.com/sdey/revu/internal/review"
	"github.com/sdey/revu/internal/store"
)

// snapshotKeep bounds how many snapshots Prune leaves per learner.
const snapshotKeep = 5

// App holds the wired services for one learner.
type App struct {
	Cfg     config.Config
	Store   *store.Store
	Catalog *catalog.Catalog
	Prog    *progress.Service
	State   *review.State
	Review  *review.Service
	Explain *explain.Service // nil when no LLM provider is configured
}

// New opens the database, loads course packs, and restores the
// learner's state from the latest snapshot plus newer events.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	dbPath := cfg.DB
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	cat, err := loadCatalog(cfg.CoursesDir)
	if err != nil {
		st.Close()
		return nil, err
	}

	app := &App{
		Cfg:     cfg,
		Store:   st,
		Catalog: cat,
	}
	if err := app.restore(ctx); err != nil {
		st.Close()
		return nil, err
	}

	app.Explain = buildExplainService(ctx, cfg, st)
	return app, nil
}

func loadCatalog(coursesDir string) (*catalog.Catalog, error) {
	courses, err := catalog.LoadBuiltin()
	if err != nil {
		return nil, err
	}
	if coursesDir != "" {
		extra, err := catalog.LoadDir(coursesDir)
		if err != nil {
			return nil, err
		}
		courses = append(courses, extra...)
	}
	return catalog.New(courses)
}

// restore rebuilds derived state: latest snapshot first, then every
// event logged after the snapshot's sequence.
func (a *App) restore(ctx context.Context) error {
	events := a.Store.EventRepo()
	learner := a.Cfg.Learner

	snap, err := a.Store.SnapshotRepo().Latest(ctx, learner)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	var snapData *store.SnapshotData
	var after int64
	if snap != nil {
		snapData = &snap.Data
		after = snap.Sequence
	}

	a.Prog = progress.NewService(learner, snapData, events)
	moduleEvents, err := events.ModuleEventsAfter(ctx, learner, after)
	if err != nil {
		return fmt.Errorf("replay module events: %w", err)
	}
	a.Prog.Replay(moduleEvents)

	a.State = review.NewState()
	a.State.Restore(learner, snapData)
	reviewEvents, err := events.ReviewEventsAfter(ctx, learner, after)
	if err != nil {
		return fmt.Errorf("replay review events: %w", err)
	}
	a.State.Replay(learner, reviewEvents)

	a.Review = review.NewService(a.Catalog, a.Prog, a.State, events, review.PolicyByName(a.Cfg.Policy))
	return nil
}

func buildExplainService(ctx context.Context, cfg config.Config, st *store.Store) *explain.Service {
	if !cfg.Explain.Enabled {
		return nil
	}
	llmCfg, ok := llm.DiscoverConfig()
	if !ok {
		return nil
	}
	provider, err := llm.NewProvider(ctx, llmCfg, st.EventRepo())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: explanations disabled: %v\n", err)
		return nil
	}
	return explain.NewService(provider, explain.DefaultConfig())
}

// SaveSnapshot captures the current derived state at the log's head
// sequence and prunes old snapshots.
func (a *App) SaveSnapshot(ctx context.Context) error {
	seq, err := a.Store.Sequence(ctx)
	if err != nil {
		return fmt.Errorf("read sequence: %w", err)
	}

	data := store.SnapshotData{Version: 1}
	a.Prog.SnapshotData(&data)
	a.State.SnapshotData(a.Cfg.Learner, &data)

	snap := &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now(),
		LearnerID: a.Cfg.Learner,
		Data:      data,
	}
	repo := a.Store.SnapshotRepo()
	if err := repo.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return repo.Prune(ctx, a.Cfg.Learner, snapshotKeep)
}

// Close releases the database.
func (a *App) Close() error {
	return a.Store.Close()
}

// Run starts the terminal UI and snapshots state on exit.
func Run(cfg config.Config) error {
	ctx := context.Background()

	a, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	p := tea.NewProgram(newAppModel(a))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}

	if err := a.SaveSnapshot(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: snapshot not saved: %v\n", err)
	}
	return nil
}
