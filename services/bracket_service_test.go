package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kuniyuki/beybattle-server/brackets"
	"github.com/kuniyuki/beybattle-server/models"
)

func newBracketService(fx *scoreFixture) BracketService {
	return NewBracketService(fx.events, fx.entries, fx.users, fx.winners)
}

func TestBracketViewFourEntries(t *testing.T) {
	fx := newScoreFixture(t, models.BattleOneBey, 4)
	svc := newBracketService(fx)

	view, err := svc.View(context.Background(), fx.eventID)
	require.NoError(t, err)
	require.Equal(t, 4, view.EntryCount)
	require.Len(t, view.Rounds, 3)
	require.Equal(t, "準決勝", view.Rounds[0].Title)
	require.Equal(t, "3位決定戦", view.Rounds[1].Title)
	require.Equal(t, "決勝", view.Rounds[2].Title)
	require.Nil(t, view.Champion)

	require.NotNil(t, view.CurrentKey)
	require.Equal(t, "r1-m0", *view.CurrentKey)

	// First-round slots carry the member labels; downstream slots are
	// still empty.
	for _, pv := range view.Rounds[0].Pairs {
		require.NotNil(t, pv.A)
		require.NotNil(t, pv.B)
		require.Equal(t, fx.entryLabel[pv.A.EntryID], pv.A.Label)
		require.Nil(t, pv.Winner)
	}
	require.Nil(t, view.Rounds[2].Pairs[0].A)
}

func TestBracketViewPropagatesWinners(t *testing.T) {
	fx := newScoreFixture(t, models.BattleOneBey, 4)
	svc := newBracketService(fx)
	ctx := context.Background()

	require.NoError(t, fx.winners.Upsert(ctx, nil, &models.WinnerRecord{
		EventID: fx.eventID, SlotKey: "r1-m0", Winner: models.SideA,
	}))
	require.NoError(t, fx.winners.Upsert(ctx, nil, &models.WinnerRecord{
		EventID: fx.eventID, SlotKey: "r1-m1", Winner: models.SideB,
	}))

	view, err := svc.View(ctx, fx.eventID)
	require.NoError(t, err)

	semi := view.Rounds[0]
	require.NotNil(t, semi.Pairs[0].Winner)
	require.Equal(t, models.SideA, *semi.Pairs[0].Winner)

	final := view.Rounds[2].Pairs[0]
	require.NotNil(t, final.A)
	require.NotNil(t, final.B)
	require.Equal(t, semi.Pairs[0].A.EntryID, final.A.EntryID)
	require.Equal(t, semi.Pairs[1].B.EntryID, final.B.EntryID)

	third := view.Rounds[1].Pairs[0]
	require.NotNil(t, third.A)
	require.Equal(t, semi.Pairs[0].B.EntryID, third.A.EntryID)

	require.NotNil(t, view.CurrentKey)
	require.Equal(t, brackets.ThirdPlaceKey, *view.CurrentKey)
}

func TestBracketViewChampion(t *testing.T) {
	fx := newScoreFixture(t, models.BattleOneBey, 2)
	svc := newBracketService(fx)
	ctx := context.Background()

	require.NoError(t, fx.winners.Upsert(ctx, nil, &models.WinnerRecord{
		EventID: fx.eventID, SlotKey: "r1-m0", Winner: models.SideB,
	}))

	view, err := svc.View(ctx, fx.eventID)
	require.NoError(t, err)
	require.Nil(t, view.CurrentKey)
	require.NotNil(t, view.Champion)
	require.Equal(t, view.Rounds[0].Pairs[0].B.Label, *view.Champion)
}

func TestBracketViewStreakHasNoRounds(t *testing.T) {
	fx := newScoreFixture(t, models.BattleStreak, 3)
	svc := newBracketService(fx)

	view, err := svc.View(context.Background(), fx.eventID)
	require.NoError(t, err)
	require.Equal(t, 3, view.EntryCount)
	require.Empty(t, view.Rounds)
	require.Nil(t, view.CurrentKey)
}

func TestBracketViewTeamLabels(t *testing.T) {
	fx := newScoreFixture(t, models.BattleTeam, 2)
	svc := newBracketService(fx)
	ctx := context.Background()

	// Stamp a declared team name onto the first entry; the other keeps the
	// member-name label.
	name := "チームシャーク"
	entry, err := fx.entries.GetByID(ctx, fx.entryList[0].ID)
	require.NoError(t, err)
	entry.TeamName = &name
	require.NoError(t, fx.entries.Update(ctx, entry))

	view, err := svc.View(ctx, fx.eventID)
	require.NoError(t, err)

	labels := map[int]string{}
	pair := view.Rounds[0].Pairs[0]
	labels[pair.A.EntryID] = pair.A.Label
	labels[pair.B.EntryID] = pair.B.Label
	require.Equal(t, name, labels[fx.entryList[0].ID])
	require.Equal(t, fx.entryLabel[fx.entryList[1].ID], labels[fx.entryList[1].ID])
}

func TestBracketViewUnknownEvent(t *testing.T) {
	fx := newScoreFixture(t, models.BattleOneBey, 2)
	svc := newBracketService(fx)

	_, err := svc.View(context.Background(), 999)
	require.ErrorIs(t, err, ErrEventNotFound)
}
