package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisKey     = "taller:console:token"
	redisTimeout = 2 * time.Second
)

// RedisStore almacén de token respaldado en Redis: la sesión sobrevive al
// reinicio del proceso. Al arrancar, el token recuperado debe revalidarse
// contra GET /auth/me antes de darlo por bueno (lo hace el caso de uso de
// auth); aquí solo se persiste.
//
// Si Redis no responde, el almacén degrada a "sin token": la consola sigue
// usable y el usuario vuelve a iniciar sesión.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore construye el almacén persistido. ttl cero significa sin expiración.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// Token devuelve el token persistido, si hay.
func (s *RedisStore) Token() (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	val, err := s.rdb.Get(ctx, redisKey).Result()
	if err != nil {
		// redis.Nil = sin sesión; cualquier otro error (Redis caído) degrada igual.
		return "", false
	}
	return val, val != ""
}

// SetToken persiste el token.
func (s *RedisStore) SetToken(token string) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	_ = s.rdb.Set(ctx, redisKey, token, s.ttl).Err()
}

// Clear elimina el token persistido.
func (s *RedisStore) Clear() {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	_ = s.rdb.Del(ctx, redisKey).Err()
}

// HasToken indica si hay token persistido.
func (s *RedisStore) HasToken() bool {
	_, ok := s.Token()
	return ok
}
