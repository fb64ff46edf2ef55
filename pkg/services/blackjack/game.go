package blackjack

import (
	"context"
	"errors"
	"fmt"

	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/fadedpez/blackjacksim/internal/logging"
	"github.com/fadedpez/blackjacksim/internal/types"
	"github.com/fadedpez/blackjacksim/pkg/entities"
	"github.com/fadedpez/blackjacksim/pkg/strategy"
)

var (
	ErrGameComplete = errors.New("session is complete")
	ErrInvalidPhase = errors.New("invalid action for current game state")
)

// Config controls a session
type Config struct {
	MaxRounds          int
	ReshuffleThreshold int
	// Reshuffle false ends the session once the deck drops below the threshold
	Reshuffle bool
}

// DefaultConfig returns 50 rounds with a reshuffle below 13 cards
func DefaultConfig() Config {
	return Config{
		MaxRounds:          DefaultMaxRounds,
		ReshuffleThreshold: DefaultReshuffleThreshold,
		Reshuffle:          true,
	}
}

// Validate checks the round cap and the reshuffle threshold
func (c Config) Validate() error {
	if c.MaxRounds < 1 {
		return types.Errorf(types.ErrInvalidArgument, "max rounds must be positive, got %d", c.MaxRounds)
	}
	if c.ReshuffleThreshold < minDealSize || c.ReshuffleThreshold > entities.FullDeckSize {
		return types.Errorf(types.ErrInvalidArgument, "reshuffle threshold must be between %d and %d, got %d",
			minDealSize, entities.FullDeckSize, c.ReshuffleThreshold)
	}
	return nil
}

// decision is the last action taken on a hand, held until its outcome is known
type decision struct {
	state  strategy.State
	action strategy.Action
}

// Game runs rounds of one player against the dealer
type Game struct {
	ID       string
	State    entities.GameState
	Deck     *entities.Deck
	Dealer   *Dealer
	Player   *Player
	Round    int
	shuffled bool // Set when the deck has been replaced during the session

	config   Config
	shuffler entities.Shuffler
	clock    quartz.Clock
	log      *logging.Logger
	stats    entities.SessionStatistics
	pending  map[int]*decision // hand index -> decision awaiting feedback
}

// Option customises a Game
type Option func(*Game)

// WithLogger sets the session logger
func WithLogger(l *logging.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithClock sets the clock used for session timestamps
func WithClock(c quartz.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithDeck starts the session from the given deck instead of a shuffled one
func WithDeck(d *entities.Deck) Option {
	return func(g *Game) { g.Deck = d }
}

// WithID sets the session id
func WithID(id string) Option {
	return func(g *Game) { g.ID = id }
}

// WithShuffler sets the randomness used for every shuffle
func WithShuffler(s entities.Shuffler) Option {
	return func(g *Game) { g.shuffler = s }
}

// NewGame creates a session for player. Without WithShuffler the deck order is seeded from the time.
func NewGame(player *Player, config Config, opts ...Option) (*Game, error) {
	if player == nil || player.Strategy == nil {
		return nil, types.NewGameError(types.ErrInvalidArgument, "player with a strategy is required")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		State:   entities.StateWaiting,
		Dealer:  NewDealer(),
		Player:  player,
		config:  config,
		pending: make(map[int]*decision),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.shuffler == nil {
		g.shuffler = entities.NewShuffler(0)
	}
	if g.clock == nil {
		g.clock = quartz.NewReal()
	}
	if g.log == nil {
		g.log = logging.Default
	}
	g.log = g.log.With("session", g.ID)
	if g.Deck == nil {
		g.Deck = NewShuffledDeck(g.shuffler)
	}

	g.stats = entities.SessionStatistics{
		SessionID: g.ID,
		Strategy:  strategy.NameOf(player.Strategy),
	}
	return g, nil
}

// Config returns the session configuration
func (g *Game) Config() Config {
	return g.config
}

// WasShuffled returns true if the deck was replaced during the session
func (g *Game) WasShuffled() bool {
	return g.shuffled
}

// Statistics returns a copy of the session counters so far
func (g *Game) Statistics() entities.SessionStatistics {
	stats := g.stats
	stats.Record = g.Player.Record
	return stats
}

// IsComplete reports whether the round cap has been reached
func (g *Game) IsComplete() bool {
	return g.Round >= g.config.MaxRounds
}

func (g *Game) reshuffle() {
	g.Deck = NewShuffledDeck(g.shuffler)
	g.shuffled = true
	g.stats.Reshuffles++
	g.log.Info("Reshuffled deck before round %d", g.Round+1)
}

// Deal starts a new round: reshuffle when the deck is low, then two cards to the
// dealer and two to a fresh player hand. It returns false when the deck cannot
// support another round.
func (g *Game) Deal() (bool, error) {
	if g.IsComplete() {
		return false, ErrGameComplete
	}
	g.State = entities.StateDealing

	if ShouldReshuffle(g.Deck, g.config.ReshuffleThreshold) {
		if !g.config.Reshuffle {
			g.log.Info("Deck below threshold with %d cards, ending session", g.Deck.Remaining())
			return false, nil
		}
		g.reshuffle()
	}
	if g.Deck.Remaining() < minDealSize {
		g.log.Warn("Deck has %d cards, cannot deal", g.Deck.Remaining())
		return false, nil
	}

	dealerCards := []*entities.Card{g.Deck.Draw(), g.Deck.Draw()}
	playerCards := []*entities.Card{g.Deck.Draw(), g.Deck.Draw()}

	g.Dealer.Reset(dealerCards...)
	g.Player.ResetHands(playerCards...)
	g.pending = make(map[int]*decision)
	if err := g.Player.RefreshState(g.upcard()); err != nil {
		return false, err
	}

	g.Round++
	g.stats.Rounds++
	g.log.Debug("Round %d dealt: player [%s], dealer shows %s", g.Round, g.Player.Hands[0], g.Dealer.Upcard())
	return true, nil
}

// phaseError reports a step attempted out of order. It matches ErrInvalidPhase.
func (g *Game) phaseError(step string) error {
	return types.WrapError(types.ErrInvalidState, fmt.Sprintf("cannot %s in state %s", step, g.State), ErrInvalidPhase)
}

func (g *Game) upcard() strategy.Upcard {
	return strategy.CardUpcard(g.Dealer.Upcard())
}

// PlayPlayerTurn plays every player hand in order, including hands created by splits
func (g *Game) PlayPlayerTurn(ctx context.Context) error {
	if g.State != entities.StateDealing {
		return g.phaseError("play the player turn")
	}
	g.State = entities.StatePlayerTurn

	// Splits append hands, so the bound is re-read every iteration
	for i := 0; i < len(g.Player.Hands); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.Player.SetCurrentHand(i); err != nil {
			return err
		}
		if err := g.Player.RefreshState(g.upcard()); err != nil {
			return err
		}
		if err := g.playHand(ctx); err != nil {
			return err
		}
	}
	return nil
}

// playHand runs the decision loop for the current hand until it stands, busts,
// doubles down or the deck runs out
func (g *Game) playHand(ctx context.Context) error {
	p := g.Player
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		hand, err := p.CurrentHand()
		if err != nil {
			return err
		}
		if hand.IsBust() {
			return nil
		}

		state, err := p.State()
		if err != nil {
			return err
		}
		action, err := p.DecideAction()
		if err != nil {
			return err
		}
		g.observe(p.HandIndex, state, action)
		g.log.Debug("Hand %d at %d: %s", p.HandIndex, state.Total, action)

		switch action {
		case strategy.Hit:
			if drew, err := g.hit(); err != nil || !drew {
				return err
			}

		case strategy.DoubleDown:
			doubled, err := p.DoubleDown(g.Deck)
			if err != nil {
				return err
			}
			if doubled {
				g.stats.DoubleDowns++
				return p.RefreshState(g.upcard())
			}
			if drew, err := g.hit(); err != nil || !drew {
				return err
			}

		case strategy.Split:
			split, err := p.Split()
			if err != nil {
				return err
			}
			if split {
				if err := g.dealSplit(); err != nil {
					return err
				}
				continue
			}
			if drew, err := g.hit(); err != nil || !drew {
				return err
			}

		default:
			// Stand, and anything unrecognised
			return nil
		}
	}
}

// hit draws one card into the current hand. It reports false when the deck is empty.
func (g *Game) hit() (bool, error) {
	card, err := g.Player.DrawOne(g.Deck)
	if err != nil {
		return false, err
	}
	if card == nil {
		g.log.Warn("Deck is empty, hand %d stops drawing", g.Player.HandIndex)
		return false, nil
	}
	return true, g.Player.RefreshState(g.upcard())
}

// dealSplit gives one card to each half of a fresh split
func (g *Game) dealSplit() error {
	p := g.Player
	g.stats.Splits++

	current := p.HandIndex
	added := len(p.Hands) - 1

	for _, idx := range []int{current, added} {
		card := g.Deck.Draw()
		if card == nil {
			g.log.Warn("Deck is empty while dealing split hand %d", idx)
			break
		}
		if err := p.Hands[idx].AddCard(card); err != nil {
			return err
		}
	}
	return p.RefreshState(g.upcard())
}

// observe hands the previous decision on the hand to a learner as a non-terminal
// transition and remembers the new one
func (g *Game) observe(handIdx int, state strategy.State, action strategy.Action) {
	learner, ok := g.Player.Strategy.(strategy.Learner)
	if !ok || !action.Valid() {
		return
	}
	if prev := g.pending[handIdx]; prev != nil {
		next := state
		learner.RecordOutcome(prev.state, prev.action, 0, &next)
	}
	g.pending[handIdx] = &decision{state: state, action: action}
}

// PlayDealer reveals the hole card and draws under the house rule
func (g *Game) PlayDealer() error {
	if g.State != entities.StatePlayerTurn {
		return g.phaseError("play the dealer")
	}
	g.State = entities.StateDealerTurn

	drawn := g.Dealer.Play(g.Deck)
	g.log.Debug("Dealer drew %d cards to %d", drawn, g.Dealer.Total())
	return nil
}

// Resolve settles every player hand against the dealer, updates the record and
// sends terminal rewards to a learning strategy
func (g *Game) Resolve() ([]entities.Result, error) {
	if g.State != entities.StateDealerTurn {
		return nil, g.phaseError("resolve the round")
	}
	g.State = entities.StateResolution

	if g.Dealer.Hand.IsBust() {
		g.stats.DealerBusts++
	}

	learner, learning := g.Player.Strategy.(strategy.Learner)
	results := make([]entities.Result, len(g.Player.Hands))
	for i, hand := range g.Player.Hands {
		result := DetermineWinner(hand.Cards, g.Dealer.Hand.Cards).Result()
		results[i] = result
		g.Player.RecordResult(result)

		g.stats.HandsPlayed++
		if hand.IsBust() {
			g.stats.Busts++
		}
		if hand.IsBlackjack() && result == entities.ResultWin {
			g.stats.Blackjacks++
		}

		if prev := g.pending[i]; learning && prev != nil {
			learner.RecordOutcome(prev.state, prev.action, result.Reward(), nil)
		}
		g.log.Debug("Round %d hand %d: %d vs dealer %d, %s", g.Round, i, hand.Value(), g.Dealer.Total(), result)
	}
	g.pending = make(map[int]*decision)

	g.State = entities.StateComplete
	return results, nil
}

// PlayRound runs deal, player turn, dealer turn and resolution. ok is false when
// no round could be dealt.
func (g *Game) PlayRound(ctx context.Context) (results []entities.Result, ok bool, err error) {
	ok, err = g.Deal()
	if err != nil || !ok {
		return nil, false, err
	}
	if err := g.PlayPlayerTurn(ctx); err != nil {
		return nil, false, err
	}
	if err := g.PlayDealer(); err != nil {
		return nil, false, err
	}
	results, err = g.Resolve()
	if err != nil {
		return nil, false, err
	}
	return results, true, nil
}

// Run plays rounds until the cap is reached, the deck is exhausted or ctx is
// cancelled. The statistics are returned in every case.
func (g *Game) Run(ctx context.Context) (entities.SessionStatistics, error) {
	g.stats.StartedAt = g.clock.Now()
	g.log.Info("Starting session with %s for %d rounds", g.stats.Strategy, g.config.MaxRounds)

	var runErr error
	for !g.IsComplete() {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		_, ok, err := g.PlayRound(ctx)
		if err != nil {
			runErr = err
			break
		}
		if !ok {
			break
		}
	}

	g.stats.FinishedAt = g.clock.Now()
	stats := g.Statistics()
	if runErr != nil {
		g.log.LogError(runErr)
		return stats, runErr
	}

	g.log.Info("Session finished after %d rounds: %d wins, %d losses, %d draws",
		stats.Rounds, stats.Record.Wins, stats.Record.Losses, stats.Record.Draws)
	return stats, nil
}

// RunSession plays up to maxRounds rounds with s and returns the final record
func RunSession(ctx context.Context, s strategy.Strategy, maxRounds, reshuffleThreshold int, opts ...Option) (entities.Record, error) {
	config := DefaultConfig()
	config.MaxRounds = maxRounds
	config.ReshuffleThreshold = reshuffleThreshold

	game, err := NewGame(NewPlayer(s), config, opts...)
	if err != nil {
		return entities.Record{}, err
	}

	stats, err := game.Run(ctx)
	return stats.Record, err
}
