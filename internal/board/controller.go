package board

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// DefaultActivationDistance — смещение указателя в пикселях, после которого
// нажатие считается перетаскиванием, а не кликом.
const DefaultActivationDistance = 10

// State — состояние жеста перетаскивания.
type State int

// Нажатая, но ещё не сдвинутая за порог задача остаётся в StateIdle.
const (
	StateIdle State = iota
	StateDragging
	StateDropped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateDropped:
		return "dropped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome — результат завершения жеста.
type Outcome int

const (
	// OutcomeIgnored — событие не относится ни к одному активному жесту.
	OutcomeIgnored Outcome = iota
	// OutcomeClick — указатель отпущен до порога активации, открывается карточка задачи.
	OutcomeClick
	// OutcomeCancelled — задачу отпустили вне колонок.
	OutcomeCancelled
	// OutcomeNoop — задачу отпустили в её же колонку.
	OutcomeNoop
	// OutcomeMoved — статус задачи изменён.
	OutcomeMoved
)

// ErrUnknownIssue возвращается при нажатии на задачу, которой нет на доске.
var ErrUnknownIssue = errors.New("issue is not on the board")

// Mover сохраняет новый статус задачи. Реализуется клиентом API.
type Mover interface {
	MoveIssue(ctx context.Context, issueID, teamID, status string) error
}

type point struct{ x, y float64 }

type gesture struct {
	state  State
	origin point
}

// Controller ведёт жесты перетаскивания задач доски одной команды.
// На каждую задачу допускается один жест; жесты разных задач независимы.
type Controller struct {
	mu         sync.Mutex
	mover      Mover
	teamID     string
	activation float64
	statuses   map[string]string
	gestures   map[string]*gesture
}

// NewController создаёт контроллер для доски команды.
// activation <= 0 заменяется на DefaultActivationDistance.
func NewController(mover Mover, teamID string, activation float64) *Controller {
	if activation <= 0 {
		activation = DefaultActivationDistance
	}
	return &Controller{
		mover:      mover,
		teamID:     teamID,
		activation: activation,
		statuses:   make(map[string]string),
		gestures:   make(map[string]*gesture),
	}
}

// Load запоминает текущие статусы задач доски. Активные жесты сбрасываются.
func (c *Controller) Load(b Board) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.statuses = make(map[string]string, len(b.Issues))
	for _, issue := range b.Issues {
		c.statuses[issue.ID] = issue.Status
	}
	c.gestures = make(map[string]*gesture)
}

// Status возвращает известный контроллеру статус задачи.
func (c *Controller) Status(issueID string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	st, ok := c.statuses[issueID]
	return st, ok
}

// State возвращает состояние жеста задачи.
func (c *Controller) State(issueID string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if g, ok := c.gestures[issueID]; ok {
		return g.state
	}
	return StateIdle
}

// Press начинает жест. Повторное нажатие на задачу с активным жестом игнорируется
// и возвращает false.
func (c *Controller) Press(issueID string, x, y float64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.statuses[issueID]; !ok {
		return false, ErrUnknownIssue
	}
	if _, busy := c.gestures[issueID]; busy {
		return false, nil
	}
	c.gestures[issueID] = &gesture{state: StateIdle, origin: point{x, y}}
	return true, nil
}

// Move обрабатывает движение указателя. Жест переходит в dragging, как только
// смещение от точки нажатия превышает порог активации.
func (c *Controller) Move(issueID string, x, y float64) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	g, ok := c.gestures[issueID]
	if !ok {
		return StateIdle
	}
	if g.state == StateIdle {
		dx, dy := x-g.origin.x, y-g.origin.y
		if dx*dx+dy*dy > c.activation*c.activation {
			g.state = StateDragging
		}
	}
	return g.state
}

// Cancel прерывает жест без изменений.
func (c *Controller) Cancel(issueID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.gestures, issueID)
}

// Release завершает жест над колонкой target (пустая строка — вне колонок).
// При сбросе в другую колонку выполняется ровно одна мутация через Mover,
// после её успеха статус задачи обновляется локально.
func (c *Controller) Release(ctx context.Context, issueID, target string) (Outcome, error) {
	c.mu.Lock()
	g, ok := c.gestures[issueID]
	if !ok {
		c.mu.Unlock()
		return OutcomeIgnored, nil
	}
	if g.state != StateDragging {
		delete(c.gestures, issueID)
		c.mu.Unlock()
		return OutcomeClick, nil
	}
	g.state = StateDropped
	current := c.statuses[issueID]
	c.mu.Unlock()

	// Жест остаётся в dropped, пока мутация не завершится: новое нажатие на задачу игнорируется.
	defer func() {
		c.mu.Lock()
		delete(c.gestures, issueID)
		c.mu.Unlock()
	}()

	if target == "" {
		return OutcomeCancelled, nil
	}
	if !NeedsMove(current, target) {
		return OutcomeNoop, nil
	}

	if err := c.mover.MoveIssue(ctx, issueID, c.teamID, target); err != nil {
		return OutcomeCancelled, fmt.Errorf("move issue %s: %w", issueID, err)
	}

	c.mu.Lock()
	c.statuses[issueID] = target
	c.mu.Unlock()
	return OutcomeMoved, nil
}
