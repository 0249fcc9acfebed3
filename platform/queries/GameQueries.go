package queries

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/DedS3t/monopoly-banker/app/models"
	"github.com/DedS3t/monopoly-banker/platform/cache"
	"github.com/gomodule/redigo/redis"
)

// The serialized Game aggregate lives under one key per match. The session
// store is the Go stand-in for the browser tab's sessionStorage: one writer,
// TTL-bounded, nothing survives past the session.

const defaultSessionTTL = 86400 // seconds

func gameKey(gameId string) string {
	return fmt.Sprintf("game.%s", gameId)
}

func sessionTTL() int {
	if val := os.Getenv("SESSION_TTL"); val != "" {
		if ttl, err := strconv.Atoi(val); err == nil && ttl > 0 {
			return ttl
		}
	}
	return defaultSessionTTL
}

func SaveGame(game *models.Game, conn *redis.Conn) error {
	blob, err := json.Marshal(game)
	if err != nil {
		return err
	}
	return cache.SetEx(gameKey(game.GameId), blob, sessionTTL(), conn)
}

func GetGame(gameId string, conn *redis.Conn) (*models.Game, error) {
	blob, err := cache.Get(gameKey(gameId), conn)
	if err != nil {
		return nil, err
	}
	game := new(models.Game)
	if err := json.Unmarshal([]byte(blob), game); err != nil {
		return nil, err
	}
	return game, nil
}

func VerifyGame(gameId string, conn *redis.Conn) bool {
	exists, err := cache.Exists(gameKey(gameId), conn)
	if err != nil {
		return false
	}
	return exists
}

func DeleteGame(gameId string, conn *redis.Conn) error {
	return cache.Del(gameKey(gameId), conn)
}
