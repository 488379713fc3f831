package component

// Phase — экран, в котором находится игра
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseCountdown
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	}
	return "menu"
}

// GameStat — монотонные счетчики одной сессии
type GameStat struct {
	KillCount     int `json:"kills"`
	FireKillCount int `json:"fire_kills"`
	DamageTaken   int `json:"damage_taken"`
	DamageGiven   int `json:"damage_given"`
	HealsUsed     int `json:"heals_used"`
	BuffsTaken    int `json:"buffs_taken"`
	TotalScore    int `json:"score"`
}
