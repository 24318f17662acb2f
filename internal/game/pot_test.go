package game

import (
	"reflect"
	"testing"
)

func testPlayer(seat int, name string, stack, wager Chips) *Player {
	return &Player{Seat: seat, Name: name, Stack: stack, Wager: wager}
}

// settlementHand builds a hand mid-settlement from explicit player and pot
// state, with the starting total derived so the conservation audit holds.
func settlementHand(pots []Pot, players ...*Player) *HandState {
	h := &HandState{
		Players: players,
		Pots:    pots,
		Betting: NewBettingRound(len(players), 2),
	}
	for _, p := range players {
		h.startingTotal += p.Stack + p.Wager
		if !p.Folded {
			h.livePlayers++
		}
	}
	for _, pot := range pots {
		h.startingTotal += pot.Value
	}
	return h
}

func contestantNames(pot Pot) []string {
	names := make([]string, len(pot.Contestants))
	for i, c := range pot.Contestants {
		names[i] = c.Name
	}
	return names
}

func TestSettlePotsLayersSidePots(t *testing.T) {
	t.Parallel()

	// Stacks 100/50/20, everyone all-in preflop. The 50 nobody could call
	// goes straight back to alice; the rest layers into two side pots.
	alice := testPlayer(0, "alice", 0, 100)
	bob := testPlayer(1, "bob", 0, 50)
	carol := testPlayer(2, "carol", 0, 20)
	for _, p := range []*Player{alice, bob, carol} {
		p.AllIn = true
	}

	h := settlementHand(nil, alice, bob, carol)
	h.settlePots()

	if alice.Stack != 50 {
		t.Errorf("alice stack = %v, want uncalled 50 returned", alice.Stack)
	}
	if len(h.Pots) != 2 {
		t.Fatalf("got %d pots, want 2: %+v", len(h.Pots), h.Pots)
	}
	if h.Pots[0].Value != 60 {
		t.Errorf("main pot = %v, want 60", h.Pots[0].Value)
	}
	if want := []string{"carol", "bob", "alice"}; !reflect.DeepEqual(contestantNames(h.Pots[0]), want) {
		t.Errorf("main pot contestants = %v, want %v", contestantNames(h.Pots[0]), want)
	}
	if h.Pots[1].Value != 60 {
		t.Errorf("side pot = %v, want 60", h.Pots[1].Value)
	}
	if want := []string{"bob", "alice"}; !reflect.DeepEqual(contestantNames(h.Pots[1]), want) {
		t.Errorf("side pot contestants = %v, want %v", contestantNames(h.Pots[1]), want)
	}
	if h.PotTotal() != 120 {
		t.Errorf("pot total = %v, want 120", h.PotTotal())
	}
}

func TestSettlePotsCarriesFoldedChips(t *testing.T) {
	t.Parallel()

	// dave folded holding 18 in the round. His chips feed the pot values
	// level by level but he never contests anything; the 3 left over below
	// bob's level carries into the side pot.
	alice := testPlayer(0, "alice", 0, 15)
	bob := testPlayer(1, "bob", 30, 20)
	carol := testPlayer(2, "carol", 30, 20)
	dave := testPlayer(3, "dave", 32, 18)
	alice.AllIn = true
	dave.Folded = true

	h := settlementHand(nil, alice, bob, carol, dave)
	h.settlePots()

	if len(h.Pots) != 2 {
		t.Fatalf("got %d pots, want 2: %+v", len(h.Pots), h.Pots)
	}
	if h.Pots[0].Value != 60 {
		t.Errorf("main pot = %v, want 60 (4 x 15)", h.Pots[0].Value)
	}
	if want := []string{"alice", "bob", "carol"}; !reflect.DeepEqual(contestantNames(h.Pots[0]), want) {
		t.Errorf("main pot contestants = %v, want %v", contestantNames(h.Pots[0]), want)
	}
	if h.Pots[1].Value != 13 {
		t.Errorf("side pot = %v, want 13 (2 x 5 plus dave's stranded 3)", h.Pots[1].Value)
	}
	if want := []string{"bob", "carol"}; !reflect.DeepEqual(contestantNames(h.Pots[1]), want) {
		t.Errorf("side pot contestants = %v, want %v", contestantNames(h.Pots[1]), want)
	}
}

func TestSettlePotsMergesFirstLayerIntoOpenPot(t *testing.T) {
	t.Parallel()

	// A 90-chip pot is still open from the previous round. The first new
	// layer merges into it, and carol, folded since, drops out of its
	// contestants.
	alice := testPlayer(0, "alice", 80, 20)
	bob := testPlayer(1, "bob", 80, 20)
	carol := testPlayer(2, "carol", 95, 5)
	carol.Folded = true

	open := Pot{Value: 90, Contestants: []*Player{alice, bob, carol}}
	h := settlementHand([]Pot{open}, alice, bob, carol)
	h.settlePots()

	if len(h.Pots) != 1 {
		t.Fatalf("got %d pots, want 1: %+v", len(h.Pots), h.Pots)
	}
	if h.Pots[0].Value != 135 {
		t.Errorf("pot = %v, want 135 (90 + 40 + carol's 5)", h.Pots[0].Value)
	}
	if want := []string{"alice", "bob"}; !reflect.DeepEqual(contestantNames(h.Pots[0]), want) {
		t.Errorf("contestants = %v, want %v", contestantNames(h.Pots[0]), want)
	}
}

func TestSettlePotsNoWagersLeavesPotsUntouched(t *testing.T) {
	t.Parallel()

	alice := testPlayer(0, "alice", 100, 0)
	bob := testPlayer(1, "bob", 100, 0)
	open := Pot{Value: 40, Contestants: []*Player{alice, bob}}

	h := settlementHand([]Pot{open}, alice, bob)
	h.settlePots()

	if len(h.Pots) != 1 || h.Pots[0].Value != 40 {
		t.Fatalf("pots = %+v, want single untouched pot of 40", h.Pots)
	}
}

func TestSettleFoldOutReturnsWinnersWager(t *testing.T) {
	t.Parallel()

	// bob raised to 6, everyone folded. His 6 was never called at its
	// level so it all comes back; only the dead blinds form a pot.
	alice := testPlayer(0, "alice", 199, 1)
	bob := testPlayer(1, "bob", 194, 6)
	carol := testPlayer(2, "carol", 198, 2)
	alice.Folded = true
	carol.Folded = true

	h := settlementHand(nil, alice, bob, carol)
	h.settleFoldOut(bob)

	if bob.Stack != 200 {
		t.Errorf("bob stack = %v, want full wager returned for 200", bob.Stack)
	}
	if len(h.Pots) != 1 || h.Pots[0].Value != 3 {
		t.Fatalf("pots = %+v, want single pot of 3", h.Pots)
	}
	if want := []string{"bob"}; !reflect.DeepEqual(contestantNames(h.Pots[0]), want) {
		t.Errorf("contestants = %v, want %v", contestantNames(h.Pots[0]), want)
	}
}

func TestSettleFoldOutMergesIntoOpenPot(t *testing.T) {
	t.Parallel()

	alice := testPlayer(0, "alice", 170, 10)
	bob := testPlayer(1, "bob", 150, 30)
	alice.Folded = true

	open := Pot{Value: 20, Contestants: []*Player{alice, bob}}
	h := settlementHand([]Pot{open}, alice, bob)
	h.settleFoldOut(bob)

	if bob.Stack != 180 {
		t.Errorf("bob stack = %v, want 180", bob.Stack)
	}
	if len(h.Pots) != 1 || h.Pots[0].Value != 30 {
		t.Fatalf("pots = %+v, want single pot of 30", h.Pots)
	}
	if want := []string{"bob"}; !reflect.DeepEqual(contestantNames(h.Pots[0]), want) {
		t.Errorf("contestants = %v, want %v", contestantNames(h.Pots[0]), want)
	}
}

func TestAuditPanicsOnConservationBreak(t *testing.T) {
	t.Parallel()

	alice := testPlayer(0, "alice", 100, 0)
	bob := testPlayer(1, "bob", 100, 0)
	h := settlementHand(nil, alice, bob)
	alice.Stack += 7 // chips from nowhere

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("audit did not panic on broken conservation")
		}
		if _, ok := r.(*InvariantError); !ok {
			t.Fatalf("panic value = %T, want *InvariantError", r)
		}
	}()
	h.audit()
}
