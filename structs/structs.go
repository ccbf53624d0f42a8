package structs

// Cell 描述迷宫中的一个格子坐标 (列, 行)。
type Cell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Direction 移动方向。
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions 按枚举顺序排列，LegalMoves 和追逐/逃跑的平局判定都依赖这个顺序。
var Directions = []Direction{Left, Right, Up, Down}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Delta 返回该方向上的列/行偏移。
func (d Direction) Delta() (int, int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	}
	return 0, 0
}

// Step 返回从 c 出发沿 d 走一格后的位置，不做边界检查。
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{Col: c.Col + dx, Row: c.Row + dy}
}

// Move 是一个合法移动：方向和目标格子。
type Move struct {
	Direction Direction `json:"direction"`
	To        Cell      `json:"to"`
}

// Color 是实体的 RGB 颜色，效果通过改颜色来提示玩家。
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Kind 是实体的变体标签。
type Kind int

const (
	KindPlayer Kind = iota
	KindAdversary
	KindPickup
	KindPowerUp
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindAdversary:
		return "adversary"
	case KindPickup:
		return "pickup"
	case KindPowerUp:
		return "powerup"
	default:
		return "unknown"
	}
}

// Consumable 为 true 的实体在碰撞后会从世界中移除。
func (k Kind) Consumable() bool {
	return k == KindPickup || k == KindPowerUp
}

// StrategyKind 幽灵的移动策略。
type StrategyKind int

const (
	StrategyRandom StrategyKind = iota
	StrategyChase
	StrategyFlee
)

func (s StrategyKind) String() string {
	switch s {
	case StrategyRandom:
		return "random"
	case StrategyChase:
		return "chase"
	case StrategyFlee:
		return "flee"
	default:
		return "unknown"
	}
}

// Status 游戏状态。
type Status int

const (
	Running Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// HUD 描述信息面板需要的数值。
type HUD struct {
	RunID  string `json:"run_id"` // 本局游戏标识
	Lives  int    `json:"lives"`  // 剩余生命
	Coins  int    `json:"coins"`  // 已收集的金币
	Total  int    `json:"total"`  // 开局时放置的金币总数
	Status Status `json:"status"` // 当前状态
}

// CellSize 是每个格子的像素边长，实体总是位于格子中心。
const CellSize = 40

// Center 把格子坐标映射到像素空间的格子中心。
func (c Cell) Center() (int, int) {
	return c.Col*CellSize + CellSize/2, c.Row*CellSize + CellSize/2
}

// CellAt 是 Center 的逆映射。
func CellAt(x, y int) Cell {
	return Cell{Col: (x - CellSize/2) / CellSize, Row: (y - CellSize/2) / CellSize}
}
