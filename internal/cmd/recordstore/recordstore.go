// Package recordstore wires configuration and the dispatch walkthrough for
// the recordstore binary.
package recordstore

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/louisbranch/recordstore/internal/platform/config"
	"github.com/louisbranch/recordstore/internal/store"
	"github.com/louisbranch/recordstore/internal/user"
	"github.com/louisbranch/recordstore/internal/user/storage/sqlite"
)

// Config holds recordstore command configuration.
type Config struct {
	Backend string
	DBPath  string
}

type envConfig struct {
	Backend string `env:"RECORDSTORE_BACKEND" envDefault:"hash"`
	DBPath  string `env:"RECORDSTORE_DB_PATH"`
}

// ParseConfig parses environment variables and flags into a Config. Flags
// win over the environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := config.ParseEnv(&envCfg); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Backend: envCfg.Backend,
		DBPath:  envCfg.DBPath,
	}
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "storage backend for the run-time-bound repository (hash or ordered)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "optional SQLite path to snapshot repository contents")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewBackend creates the backend named by kind.
func NewBackend(kind string) (user.Backend, error) {
	switch kind {
	case "hash":
		return store.NewHash[uint64, user.User](), nil
	case "ordered":
		return store.NewOrdered[uint64, user.User](), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want hash or ordered)", kind)
	}
}

// Run walks both repository front-ends over both backends. When a database
// path is configured the run-time-bound repository hydrates from the SQLite
// snapshot at that path and writes its final contents back.
func Run(ctx context.Context, cfg Config) error {
	// Build-time bound: the backend type is fixed in the program text.
	hashRepo := user.NewRepository(store.NewHash[uint64, user.User]())

	alice, err := user.New(1, "alice@example.com")
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	if err := hashRepo.Add(alice); err != nil {
		return fmt.Errorf("add user: %w", err)
	}
	logUser("generic/hash added", alice)

	if got, ok := hashRepo.Get(1); ok {
		logUser("generic/hash retrieved", got)
	}
	alice.Activate()
	if err := hashRepo.Update(alice); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	removed, err := hashRepo.Remove(1)
	if err != nil {
		return fmt.Errorf("remove user: %w", err)
	}
	logUser("generic/hash removed", removed)

	orderedRepo := user.NewRepository(store.NewOrdered[uint64, user.User]())
	bob, err := user.New(2, "bob@example.com")
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	if err := orderedRepo.Add(bob); err != nil {
		return fmt.Errorf("add user: %w", err)
	}
	logUser("generic/ordered added", bob)

	// Run-time bound: the backend is chosen by configuration.
	backend, err := NewBackend(cfg.Backend)
	if err != nil {
		return err
	}

	var dynRepo *user.DynRepository
	var st *sqlite.Store
	if cfg.DBPath != "" {
		st, err = sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open snapshot store: %w", err)
		}
		defer st.Close()

		dynRepo, err = user.LoadDyn(ctx, st, backend)
		if err != nil {
			return fmt.Errorf("hydrate repository: %w", err)
		}
		log.Printf("dyn/%s hydrated %d records from %s", cfg.Backend, dynRepo.Len(), cfg.DBPath)
	} else {
		dynRepo = user.NewDynRepository(backend)
	}

	charlie, err := user.New(3, "charlie@example.com")
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	if _, ok := dynRepo.Get(3); !ok {
		if err := dynRepo.Add(charlie); err != nil {
			return fmt.Errorf("add user: %w", err)
		}
		logUser(fmt.Sprintf("dyn/%s added", cfg.Backend), charlie)
	}

	// Repositories over different backends sharing one collection is the
	// capability only the run-time-bound front-end has.
	fleet := []*user.DynRepository{
		dynRepo,
		user.NewDynRepository(store.NewOrdered[uint64, user.User]()),
		user.NewDynRepository(store.Guard[uint64, user.User](store.NewHash[uint64, user.User]())),
	}
	for _, r := range fleet {
		if _, ok := r.Get(3); !ok {
			if err := r.Add(charlie); err != nil {
				return fmt.Errorf("add user to fleet: %w", err)
			}
		}
	}
	log.Printf("fleet holds %d repositories over 3 backend types", len(fleet))

	if st == nil {
		return nil
	}

	if err := dynRepo.SaveAll(ctx, st); err != nil {
		return fmt.Errorf("snapshot repository: %w", err)
	}
	stored, err := st.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("list snapshot: %w", err)
	}
	log.Printf("snapshot at %s holds %d records", cfg.DBPath, len(stored))
	return nil
}

func logUser(action string, u user.User) {
	data, err := json.Marshal(u)
	if err != nil {
		log.Printf("%s: user %d", action, u.ID)
		return
	}
	log.Printf("%s: %s", action, data)
}
