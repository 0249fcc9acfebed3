package cache

import (
	"github.com/gomodule/redigo/redis"
)

func Get(key string, conn *redis.Conn) (string, error) {
	data, err := redis.String((*conn).Do("GET", key))
	if err != nil {
		return "", err
	}
	return data, nil
}

func Del(key string, conn *redis.Conn) error {
	_, err := (*conn).Do("DEL", key)
	return err
}

// SetEx writes a value with a TTL in seconds. Session blobs always carry a
// TTL so an abandoned game evaporates on its own.
func SetEx(key string, value interface{}, ttl int, conn *redis.Conn) error {
	reply, err := redis.String((*conn).Do("SET", key, value, "EX", ttl))
	if err != nil {
		return err
	}
	if reply != "OK" {
		return redis.Error(reply)
	}
	return nil
}

func Exists(key string, conn *redis.Conn) (bool, error) {
	n, err := redis.Int((*conn).Do("EXISTS", key))
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
