package cache

import (
	"github.com/gomodule/redigo/redis"
)

func Get(key string, conn redis.Conn) ([]byte, error) {
	data, err := redis.Bytes(conn.Do("GET", key))
	if err == redis.ErrNil {
		return nil, ErrNotFound
	}
	return data, err
}

func Del(conn redis.Conn, keys ...string) error {
	_, err := conn.Do("DEL", redis.Args{}.AddFlat(keys)...)
	return err
}

func HGETALL(key string, conn redis.Conn) (map[string]int, error) {
	return redis.IntMap(conn.Do("HGETALL", key))
}
