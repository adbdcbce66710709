package game

import "fmt"

type CommandKind string

const (
	CommandStart    CommandKind = "start"
	CommandReset    CommandKind = "reset"
	CommandDeal     CommandKind = "deal"
	CommandDrop     CommandKind = "drop"
	CommandEvaluate CommandKind = "evaluate"
	CommandState    CommandKind = "state"
)

// Command is one input event from a renderer. A drop with an empty
// TerrainID sends the courier back to the claimed player's bench.
type Command struct {
	Kind      CommandKind `json:"action"`
	CourierID string      `json:"courier_id,omitempty"`
	TerrainID string      `json:"terrain_id,omitempty"`
	Player    Player      `json:"player,omitempty"`
}

type Result struct {
	Kind       CommandKind `json:"action"`
	Message    string      `json:"message,omitempty"`
	Deal       *DealResult `json:"deal,omitempty"`
	Assignment *Assignment `json:"assignment,omitempty"`
	Outcome    *Outcome    `json:"outcome,omitempty"`
	// Mutated tells the owner whether observers need a fresh snapshot.
	Mutated bool `json:"-"`
}

// Apply is the single entry point for input events. A failed command
// leaves the game untouched.
func (g *Game) Apply(cmd Command) (Result, error) {
	res := Result{Kind: cmd.Kind}

	switch cmd.Kind {
	case CommandStart, CommandReset:
		g.Start()
		res.Mutated = true
		res.Message = "Click \"Deal Round\" to reveal couriers for both players."

	case CommandDeal:
		deal, err := g.DealNextRound()
		if err != nil {
			return res, err
		}
		res.Deal = &deal
		res.Message = deal.String()
		res.Mutated = true

	case CommandDrop:
		if cmd.TerrainID == "" {
			if err := g.dropOnBench(cmd.CourierID, cmd.Player); err != nil {
				return res, err
			}
			res.Mutated = true
			return res, nil
		}

		a, err := g.Assign(cmd.CourierID, cmd.TerrainID, cmd.Player)
		if err != nil {
			return res, err
		}
		res.Assignment = &a
		res.Mutated = true

	case CommandEvaluate:
		if !g.started {
			return res, ErrNotStarted
		}
		out := g.Evaluate()
		res.Outcome = &out
		res.Message = out.Headline()

	case CommandState:

	default:
		return res, fmt.Errorf("%q: %w", cmd.Kind, ErrUnknownCommand)
	}

	return res, nil
}

func (g *Game) dropOnBench(courierID string, player Player) error {
	if !g.started {
		return ErrNotStarted
	}
	c, ok := g.couriers[courierID]
	if !ok {
		return fmt.Errorf("courier %q: %w", courierID, ErrUnknownEntity)
	}
	if c.Player != player {
		return fmt.Errorf("courier %q cannot go to %s's bench: %w", courierID, player, ErrInvalidAssignment)
	}
	return g.Unassign(courierID)
}
