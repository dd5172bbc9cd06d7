package league

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Wozus/Fc-tournament/internal/models"
	"github.com/Wozus/Fc-tournament/internal/store/memstore"
)

func newTestService() (*Service, *memstore.Store) {
	ms := memstore.New()
	return NewService(ms, slog.New(slog.NewTextHandler(io.Discard, nil))), ms
}

func addUser(t *testing.T, ms *memstore.Store, name string) models.User {
	t.Helper()
	u, err := ms.CreateUser(context.Background(), name, "salt", "hash")
	if err != nil {
		t.Fatalf("CreateUser(%q): %v", name, err)
	}
	return u
}
