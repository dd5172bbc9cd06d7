package league

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/Wozus/Fc-tournament/internal/apperr"
	"github.com/Wozus/Fc-tournament/internal/models"
)

func TestCreateTournament(t *testing.T) {
	svc, ms := newTestService()
	owner := addUser(t, ms, "ala")

	got, err := svc.CreateTournament(context.Background(), owner, TournamentInput{
		Name:    "  Friday Cup ",
		Players: []string{" Ala", "Bob ", "", "  "},
	})
	if err != nil {
		t.Fatalf("CreateTournament: %v", err)
	}
	if got.Name != "Friday Cup" || got.OwnerUsername != "ala" || got.Scoring != models.ScoringDerived {
		t.Errorf("tournament = %+v", got)
	}
	if fmt.Sprint(got.Players) != "[Ala Bob]" {
		t.Errorf("players = %v", got.Players)
	}
	if fmt.Sprint(ms.StoredRoster(got.ID)) != "[Ala Bob]" {
		t.Errorf("stored roster = %v", ms.StoredRoster(got.ID))
	}
}

func TestCreateTournamentValidation(t *testing.T) {
	tests := []struct {
		name string
		in   TournamentInput
	}{
		{"empty name", TournamentInput{Name: "  ", Players: []string{"A", "B"}}},
		{"one player", TournamentInput{Name: "Cup", Players: []string{"A", " "}}},
		{"duplicate player", TournamentInput{Name: "Cup", Players: []string{"A", "B", " A "}}},
		{"unknown scoring", TournamentInput{Name: "Cup", Players: []string{"A", "B"}, Scoring: "elo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ms := newTestService()
			_, err := svc.CreateTournament(context.Background(), addUser(t, ms, "ala"), tt.in)
			if !apperr.Is(err, apperr.Validation) {
				t.Fatalf("err = %v, want Validation", err)
			}
			if ms.TournamentCount() != 0 {
				t.Error("nothing should be written")
			}
		})
	}
}

func TestCreateTournamentRollsBackOnRosterFailure(t *testing.T) {
	svc, ms := newTestService()
	ms.RosterErr = errors.New("insert roster: connection reset")

	_, err := svc.CreateTournament(context.Background(), addUser(t, ms, "ala"), TournamentInput{
		Name: "Cup", Players: []string{"A", "B"},
	})
	if err == nil {
		t.Fatal("expected roster error")
	}
	if apperr.KindOf(err) != apperr.Upstream {
		t.Errorf("kind = %v, want Upstream", apperr.KindOf(err))
	}
	if ms.TournamentCount() != 0 {
		t.Errorf("orphan tournament left behind: %d rows", ms.TournamentCount())
	}
}

func TestCreateTournamentRollbackSurvivesCancel(t *testing.T) {
	svc, ms := newTestService()
	owner := addUser(t, ms, "ala")
	ms.RosterErr = context.Canceled

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.CreateTournament(ctx, owner, TournamentInput{Name: "Cup", Players: []string{"A", "B"}}); err == nil {
		t.Fatal("expected roster error")
	}
	if ms.TournamentCount() != 0 {
		t.Errorf("orphan tournament left behind: %d rows", ms.TournamentCount())
	}
}

func TestTournamentLookup(t *testing.T) {
	svc, ms := newTestService()
	ctx := context.Background()
	created := mustTournament(t, svc, addUser(t, ms, "ala"), models.ScoringDerived, "Zenon", "Ala", "Bob")

	got, err := svc.Tournament(ctx, created.ID)
	if err != nil {
		t.Fatalf("Tournament: %v", err)
	}
	if fmt.Sprint(got.Players) != "[Ala Bob Zenon]" {
		t.Errorf("roster = %v, want ascending", got.Players)
	}
	if got.OwnerUsername != "ala" {
		t.Errorf("owner = %q", got.OwnerUsername)
	}

	for _, id := range []string{"not-a-uuid", uuid.NewString()} {
		if _, err := svc.Tournament(ctx, id); !apperr.Is(err, apperr.NotFound) {
			t.Errorf("Tournament(%q) err = %v, want NotFound", id, err)
		}
	}
}

func TestDeleteTournament(t *testing.T) {
	svc, ms := newTestService()
	ctx := context.Background()
	owner := addUser(t, ms, "ala")
	other := addUser(t, ms, "bob")
	tr := mustTournament(t, svc, owner, models.ScoringDerived, "A", "B")
	if _, err := svc.CreateMatch(ctx, owner, tr.ID, hostedMatch("A", "B")); err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}

	if err := svc.DeleteTournament(ctx, other, tr.ID); !apperr.Is(err, apperr.Authorization) {
		t.Fatalf("non-owner err = %v, want Authorization", err)
	}
	if err := svc.DeleteTournament(ctx, owner, tr.ID); err != nil {
		t.Fatalf("DeleteTournament: %v", err)
	}
	if ms.TournamentCount() != 0 || ms.MatchCount() != 0 {
		t.Error("tournament and matches should be gone")
	}
	if err := svc.DeleteTournament(ctx, owner, tr.ID); !apperr.Is(err, apperr.NotFound) {
		t.Errorf("second delete err = %v, want NotFound", err)
	}
}

func TestListTournaments(t *testing.T) {
	svc, ms := newTestService()
	ctx := context.Background()
	ala := addUser(t, ms, "ala")
	bob := addUser(t, ms, "bob")
	for i := 0; i < 3; i++ {
		mustTournament(t, svc, ala, models.ScoringDerived, "A", "B")
	}
	mustTournamentNamed(t, svc, bob, "Spring Cup")

	page, err := svc.ListTournaments(ctx, ListQuery{})
	if err != nil {
		t.Fatalf("ListTournaments: %v", err)
	}
	if page.Page != 1 || page.PageSize != DefaultPageSize || page.Total != 4 || len(page.Items) != 4 {
		t.Errorf("page = %+v", page)
	}
	if page.Items[0].Name != "Spring Cup" {
		t.Errorf("first item = %q, want newest", page.Items[0].Name)
	}

	page, _ = svc.ListTournaments(ctx, ListQuery{Page: 2, PageSize: 3})
	if len(page.Items) != 1 || page.Total != 4 {
		t.Errorf("second page = %+v", page)
	}

	page, _ = svc.ListTournaments(ctx, ListQuery{Q: " BOB "})
	if page.Total != 1 || page.Items[0].OwnerUsername != "bob" {
		t.Errorf("search = %+v", page)
	}

	page, _ = svc.ListTournaments(ctx, ListQuery{PageSize: 500})
	if page.PageSize != MaxPageSize {
		t.Errorf("pageSize = %d, want %d", page.PageSize, MaxPageSize)
	}

	page, err = svc.ListTournaments(ctx, ListQuery{Page: 1 << 62, PageSize: 12})
	if err != nil {
		t.Fatalf("huge page: %v", err)
	}
	if page.Page != MaxPage || len(page.Items) != 0 || page.Total != 4 {
		t.Errorf("huge page = %+v", page)
	}
}

func mustTournament(t *testing.T, svc *Service, owner models.User, variant models.Scoring, players ...string) models.Tournament {
	t.Helper()
	tr, err := svc.CreateTournament(context.Background(), owner, TournamentInput{
		Name: "Cup", Players: players, Scoring: variant,
	})
	if err != nil {
		t.Fatalf("CreateTournament: %v", err)
	}
	return tr
}

func mustTournamentNamed(t *testing.T, svc *Service, owner models.User, name string) models.Tournament {
	t.Helper()
	tr, err := svc.CreateTournament(context.Background(), owner, TournamentInput{
		Name: name, Players: []string{"A", "B"},
	})
	if err != nil {
		t.Fatalf("CreateTournament: %v", err)
	}
	return tr
}
