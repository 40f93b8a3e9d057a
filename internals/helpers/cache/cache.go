// helpers/cache/cache.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss dikembalikan GetJSON kalau key tidak ada (atau cache nonaktif).
var ErrCacheMiss = errors.New("cache: miss")

// Cache adalah wrapper tipis di atas go-redis untuk response caching.
// Instance nil aman dipakai: semua operasi jadi no-op / miss.
type Cache struct {
	client *redis.Client
}

// New membuat Cache dari alamat redis. Kembalikan nil kalau addr kosong
// (cache dimatikan lewat konfigurasi).
func New(addr, password string) *Cache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("⚠️ Redis tidak terjangkau (%v), cache nonaktif", err)
		return nil
	}
	log.Println("✅ Redis cache terkoneksi.")
	return &Cache{client: client}
}

// GetJSON membaca key dan unmarshal ke dest.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) error {
	if c == nil || c.client == nil {
		return ErrCacheMiss
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

// SetJSON menyimpan value sebagai JSON dengan TTL. Kegagalan hanya dilog;
// cache tidak boleh menggagalkan request.
func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("[WARN] cache marshal %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("[WARN] cache set %s: %v", key, err)
	}
}

// Delete menghapus satu atau lebih key (best effort).
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[WARN] cache del: %v", err)
	}
}
