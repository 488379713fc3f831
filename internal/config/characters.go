package config

import (
	"errors"
	"fmt"
)

// Character — выбираемый профиль игрока
type Character struct {
	Key       string
	Name      string
	Sprite    string
	MoveSpeed float64
	Health    int
}

var Characters = []Character{
	{Key: "default", Name: "Molandak", Sprite: "player/default", MoveSpeed: 2.0, Health: 5},
	{Key: "runner", Name: "Runner", Sprite: "player/runner", MoveSpeed: 2.5, Health: 4},
	{Key: "tank", Name: "Bulwark", Sprite: "player/tank", MoveSpeed: 1.8, Health: 8},
	{Key: "sprinter", Name: "Sprinter", Sprite: "player/sprinter", MoveSpeed: 5, Health: 3},
}

var ErrUnknownCharacter = errors.New("unknown character")

// CharacterByKey ищет персонажа по ключу
func CharacterByKey(key string) (Character, error) {
	for _, c := range Characters {
		if c.Key == key {
			return c, nil
		}
	}
	return Character{}, fmt.Errorf("%w: %q", ErrUnknownCharacter, key)
}
