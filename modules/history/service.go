package history

import (
	"context"
	"encoding/json"
	"log"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"napkin-studio-server/modules/common/database"
	"napkin-studio-server/modules/common/redis"
	"napkin-studio-server/modules/feed"
)

// 최근 프롬프트 캐시 한도 (LTRIM)
const recentCacheSize = 50

// Entry - 최근 프롬프트 1건 (Redis 캐시 직렬화 형태)
type Entry struct {
	Prompt    string    `json:"prompt"`
	Theme     string    `json:"theme"`
	CreatedAt time.Time `json:"createdAt"`
}

// Service - append-only 프롬프트 로그
// Supabase가 원본, Redis 리스트가 최근 N개 캐시
type Service struct {
	db  *database.Client
	rdb *goredis.Client
	hub *feed.Hub
}

func NewService(db *database.Client, rdb *goredis.Client, hub *feed.Hub) *Service {
	return &Service{
		db:  db,
		rdb: rdb,
		hub: hub,
	}
}

// Save - 프롬프트 추가 (Supabase insert + Redis LPUSH + 피드 브로드캐스트)
// 캐시/피드 실패는 로그만 남긴다. 원본 insert 실패만 에러.
func (s *Service) Save(ctx context.Context, prompt, themeKey, userID string) error {
	if s.db != nil {
		if err := s.db.SavePrompt(ctx, prompt, themeKey, userID); err != nil {
			return err
		}
	}

	// Redis 최근 캐시 갱신
	if s.rdb != nil {
		entry := Entry{
			Prompt:    prompt,
			Theme:     themeKey,
			CreatedAt: time.Now().UTC(),
		}
		data, err := json.Marshal(entry)
		if err == nil {
			pipe := s.rdb.Pipeline()
			pipe.LPush(ctx, redis.RecentPromptsKey, data)
			pipe.LTrim(ctx, redis.RecentPromptsKey, 0, recentCacheSize-1)
			if _, err := pipe.Exec(ctx); err != nil {
				log.Printf("⚠️  Failed to update recent prompt cache: %v", err)
			}
		}
	}

	// 라이브 피드
	if s.hub != nil {
		s.hub.BroadcastPrompt(prompt, themeKey)
	}

	return nil
}

// Recent - 최근 프롬프트 N개 (Redis 우선, 실패 시 Supabase)
func (s *Service) Recent(ctx context.Context, limit int) ([]Entry, error) {
	limit = ClampLimit(limit)

	// 1차: Redis 캐시
	if s.rdb != nil {
		raw, err := s.rdb.LRange(ctx, redis.RecentPromptsKey, 0, int64(limit-1)).Result()
		if err == nil && len(raw) > 0 {
			entries := make([]Entry, 0, len(raw))
			for _, item := range raw {
				var e Entry
				if err := json.Unmarshal([]byte(item), &e); err != nil {
					continue
				}
				entries = append(entries, e)
			}
			if len(entries) > 0 {
				return entries, nil
			}
		}
		if err != nil {
			log.Printf("⚠️  Recent prompt cache read failed, falling back to DB: %v", err)
		}
	}

	// 2차: Supabase
	if s.db == nil {
		return []Entry{}, nil
	}
	rows, err := s.db.FetchRecentPrompts(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{
			Prompt:    row.Prompt,
			Theme:     row.ThemeKey,
			CreatedAt: row.CreatedAt,
		})
	}
	return entries, nil
}

// ClampLimit - limit 정규화 (0 이하는 기본값 5, 상한은 캐시 크기)
func ClampLimit(limit int) int {
	if limit <= 0 {
		return 5
	}
	if limit > recentCacheSize {
		return recentCacheSize
	}
	return limit
}
