package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aussiebroadwan/oidcreg/internal/registration/domain"
	"github.com/aussiebroadwan/oidcreg/internal/registration/store"
	"github.com/aussiebroadwan/oidcreg/internal/registration/store/drivers/sqlite"
	"github.com/aussiebroadwan/oidcreg/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "registration-service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

var testServerScopes = []string{"openid", "profile", "email"}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestService(t *testing.T, st store.Store) *RegistrationService {
	t.Helper()

	ids, err := cryptox.NewRandomStringGenerator(cryptox.TokenSize128)
	require.NoError(t, err)
	secrets, err := cryptox.NewRandomStringGenerator(cryptox.TokenSize256)
	require.NoError(t, err)

	return &RegistrationService{
		Store:         st,
		Scopes:        StaticScopePolicy(testServerScopes),
		Reconciler:    NewClaimReconciler(nil),
		ClientIDs:     ids,
		ClientSecrets: secrets,
	}
}

// failingStore rejects every transaction and records that one was attempted.
type failingStore struct {
	store.Store

	mu    sync.Mutex
	calls int
}

func (f *failingStore) WithTx(context.Context, func(store.Tx) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return errors.New("database is locked: SQLITE_BUSY")
}

func (f *failingStore) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type failingReconciler struct{}

func (failingReconciler) Reconcile(context.Context, *domain.RegisteredClient) error {
	return errors.New("attribute repository unavailable")
}

// fixedGenerator always returns the same value.
type fixedGenerator string

func (g fixedGenerator) Next() (string, error) { return string(g), nil }

type brokenGenerator struct{}

func (brokenGenerator) Next() (string, error) { return "", errors.New("entropy source closed") }
