package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gomodule/redigo/redis"
	"github.com/saimerit/monopoly-game/app/models"
	"github.com/sirupsen/logrus"
)

// RedisStore keeps each game as one JSON document and mirrors player balances
// into a hash that is only ever moved by HINCRBY deltas.
type RedisStore struct {
	pool    *redis.Pool
	retries int
	log     *logrus.Entry
}

func NewRedisStore(pool *redis.Pool, retries int) *RedisStore {
	if retries <= 0 {
		retries = DefaultRetries
	}
	return &RedisStore{pool: pool, retries: retries, log: logrus.WithField("component", "redis-store")}
}

func gameKey(id string) string    { return fmt.Sprintf("game:%s", id) }
func balanceKey(id string) string { return fmt.Sprintf("game:%s:balances", id) }

func (s *RedisStore) conn(ctx context.Context) (redis.Conn, error) {
	return s.pool.GetContext(ctx)
}

func (s *RedisStore) Create(ctx context.Context, g *models.Game) error {
	conn, err := s.conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	payload, err := json.Marshal(g)
	if err != nil {
		return err
	}
	key := gameKey(g.Id)
	if _, err := conn.Do("WATCH", key); err != nil {
		return err
	}
	exists, err := redis.Bool(conn.Do("EXISTS", key))
	if err != nil || exists {
		conn.Do("UNWATCH")
		if err != nil {
			return err
		}
		return ErrExists
	}

	b := &batch{conn: conn}
	b.send("MULTI")
	b.send("SET", key, payload)
	b.send("DEL", balanceKey(g.Id))
	for id, p := range g.Players {
		b.send("HSET", balanceKey(g.Id), id, p.Money)
	}
	if b.err != nil {
		conn.Do("DISCARD")
		return b.err
	}
	_, err = redis.Values(conn.Do("EXEC"))
	if err == redis.ErrNil {
		return ErrExists
	}
	return err
}

func (s *RedisStore) Load(ctx context.Context, id string) (*models.Game, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	data, err := Get(gameKey(id), conn)
	if err != nil {
		return nil, err
	}
	var g models.Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// Update runs fn inside WATCH/MULTI/EXEC and retries when another writer
// touched the game between the read and the commit.
func (s *RedisStore) Update(ctx context.Context, id string, fn UpdateFunc) (*models.Game, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	key := gameKey(id)
	for attempt := 0; attempt < s.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := conn.Do("WATCH", key); err != nil {
			return nil, err
		}
		data, err := Get(key, conn)
		if err != nil {
			conn.Do("UNWATCH")
			return nil, err
		}
		var cur models.Game
		if err := json.Unmarshal(data, &cur); err != nil {
			conn.Do("UNWATCH")
			return nil, err
		}
		base, before := cur.Version, balances(&cur)
		next, err := fn(&cur)
		if err != nil {
			conn.Do("UNWATCH")
			return nil, err
		}
		next.Version = base + 1
		payload, err := json.Marshal(next)
		if err != nil {
			conn.Do("UNWATCH")
			return nil, err
		}

		if err := queueUpdate(conn, id, payload, before, next); err != nil {
			conn.Do("DISCARD")
			return nil, err
		}
		_, err = redis.Values(conn.Do("EXEC"))
		if err == redis.ErrNil {
			s.log.WithFields(logrus.Fields{"game_id": id, "attempt": attempt + 1}).Debug("write conflict, retrying")
			continue
		}
		if err != nil {
			return nil, err
		}
		return next, nil
	}
	return nil, ErrConflict
}

// batch queues pipelined commands and keeps the first write error.
type batch struct {
	conn redis.Conn
	err  error
}

func (b *batch) send(cmd string, args ...interface{}) {
	if b.err == nil {
		b.err = b.conn.Send(cmd, args...)
	}
}

func queueUpdate(conn redis.Conn, id string, payload []byte, before map[string]int, next *models.Game) error {
	b := &batch{conn: conn}
	b.send("MULTI")
	b.send("SET", gameKey(id), payload)
	for field, delta := range balanceDeltas(before, next) {
		b.send("HINCRBY", balanceKey(id), field, delta)
	}
	for field := range before {
		if _, ok := next.Players[field]; !ok {
			b.send("HDEL", balanceKey(id), field)
		}
	}
	return b.err
}

// balances snapshots money per player. It must be taken before fn runs
// because fn may mutate and return the game it was handed.
func balances(g *models.Game) map[string]int {
	out := make(map[string]int, len(g.Players))
	for id, p := range g.Players {
		out[id] = p.Money
	}
	return out
}

// balanceDeltas lists the money change of every player still seated.
func balanceDeltas(before map[string]int, next *models.Game) map[string]int {
	deltas := make(map[string]int)
	for id, p := range next.Players {
		if d := p.Money - before[id]; d != 0 {
			deltas[id] = d
		}
	}
	return deltas
}

// Balances returns the mirrored balances of a game.
func (s *RedisStore) Balances(ctx context.Context, id string) (map[string]int, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	return HGETALL(balanceKey(id), conn)
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	conn, err := s.conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	return Del(conn, gameKey(id), balanceKey(id))
}
