package component

// EnemyAI — данные блуждания и стрельбы врага
type EnemyAI struct {
	TargetX, TargetY float64 // текущая точка блуждания
	NextWander       float64 // время сессии следующего выбора точки
	MoveSpeed        float64
	SpawnTime        float64
	WarmUp           float64 // задержка перед первым выстрелом
}

// Armed сообщает, прошла ли задержка перед стрельбой
func (ai *EnemyAI) Armed(now float64) bool {
	return now-ai.SpawnTime > ai.WarmUp
}
