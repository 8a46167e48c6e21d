package branding

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Pastormerlo/pilates-sistema/internal/config"
	"github.com/Pastormerlo/pilates-sistema/internal/models"
)

// Branding es lo que la página pública necesita del estudio.
type Branding struct {
	StudioID uint   `json:"studio_id"`
	Name     string `json:"name"`
	LogoURL  string `json:"logo_url"`
}

const cacheTTL = 10 * time.Minute

// NewRedisClient conecta a Redis si hay dirección configurada.
// Devuelve nil si no hay Redis o el ping falla: el cache es opcional
// y todo sigue funcionando contra la base.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, branding cache disabled: %v", err)
		return nil
	}

	return rdb
}

type Cache struct {
	rdb *redis.Client
	db  *gorm.DB
}

func NewCache(rdb *redis.Client, db *gorm.DB) *Cache {
	return &Cache{rdb: rdb, db: db}
}

func cacheKey(slug string) string {
	return fmt.Sprintf("branding:%s", slug)
}

// GetBySlug busca el branding primero en Redis y cae a la base en
// cualquier otro caso. El set del cache es best-effort.
func (c *Cache) GetBySlug(ctx context.Context, slug string) (*Branding, error) {
	if c.rdb != nil {
		raw, err := c.rdb.Get(ctx, cacheKey(slug)).Result()
		if err == nil {
			var b Branding
			if jsonErr := json.Unmarshal([]byte(raw), &b); jsonErr == nil {
				return &b, nil
			}
		} else if err != redis.Nil {
			log.Printf("branding cache read failed: %v", err)
		}
	}

	var studio models.Studio
	if err := c.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&studio).Error; err != nil {
		return nil, err
	}

	b := &Branding{
		StudioID: studio.ID,
		Name:     studio.Name,
		LogoURL:  studio.LogoURL,
	}

	if c.rdb != nil {
		if raw, err := json.Marshal(b); err == nil {
			if err := c.rdb.Set(ctx, cacheKey(slug), raw, cacheTTL).Err(); err != nil {
				log.Printf("branding cache write failed: %v", err)
			}
		}
	}

	return b, nil
}

// Invalidate borra la entrada cacheada después de editar el estudio
// o subir un logo nuevo. Best-effort.
func (c *Cache) Invalidate(ctx context.Context, slug string) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, cacheKey(slug)).Err(); err != nil {
		log.Printf("branding cache invalidate failed: %v", err)
	}
}
