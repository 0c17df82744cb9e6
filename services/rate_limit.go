package services

import (
	goContext "context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/kelimeapp/vocab_api/dto"
	"github.com/kelimeapp/vocab_api/shared"
	log "github.com/sirupsen/logrus"
)

// RateLimitService is the system's sole admission control: fixed-window
// counters in redis, per endpoint type, with a block period once a window
// overflows. Redis trouble fails open so the limiter can never take the API
// down with it.
type RateLimitService struct {
	context.DefaultService

	configs map[string]*RateLimitConfig
	mutex   sync.RWMutex

	redisSvc *RedisService
}

type RateLimitConfig struct {
	EndpointType string
	MaxRequests  int
	WindowSize   time.Duration
	BlockTime    time.Duration
	Description  string
	IsActive     bool
}

const RATE_LIMIT_SVC = "rate_limit_svc"

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *context.Context) error {
	svc.configs = make(map[string]*RateLimitConfig)
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.initDefaultConfigs()
	return nil
}

func (svc *RateLimitService) initDefaultConfigs() {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	svc.configs = map[string]*RateLimitConfig{
		// Visitor provisioning - prevent id farming
		"visitor_init": {
			EndpointType: "visitor_init",
			MaxRequests:  10,
			WindowSize:   15 * time.Minute,
			BlockTime:    30 * time.Minute,
			Description:  "Visitor init rate limit",
			IsActive:     true,
		},
		"favorite_toggle": {
			EndpointType: "favorite_toggle",
			MaxRequests:  120,
			WindowSize:   time.Hour,
			BlockTime:    time.Hour,
			Description:  "Favorite toggle rate limit",
			IsActive:     true,
		},
		"translate": {
			EndpointType: "translate",
			MaxRequests:  60,
			WindowSize:   time.Hour,
			BlockTime:    2 * time.Hour,
			Description:  "Translation proxy rate limit",
			IsActive:     true,
		},
		"api_general": {
			EndpointType: "api_general",
			MaxRequests:  1000,
			WindowSize:   time.Hour,
			BlockTime:    time.Hour,
			Description:  "General API rate limit per IP",
			IsActive:     true,
		},
	}
}

// ==================== CORE RATE LIMITING LOGIC ====================

func (svc *RateLimitService) IsAllowed(identifier, endpointType string) (bool, *dto.RateLimitInfo, error) {
	svc.mutex.RLock()
	config, exists := svc.configs[endpointType]
	svc.mutex.RUnlock()

	if !exists || !config.IsActive {
		return true, &dto.RateLimitInfo{
			Allowed:   true,
			Remaining: -1,
		}, nil
	}

	ctx := goContext.Background()
	now := time.Now()

	blockKey := fmt.Sprintf("ratelimit:block:%s:%s", endpointType, identifier)
	blocked, err := svc.redisSvc.Exists(ctx, blockKey)
	if err != nil {
		return false, nil, err
	}
	if blocked {
		ttl, _ := svc.redisSvc.TTL(ctx, blockKey)
		blockedUntil := now.Add(ttl)
		return false, &dto.RateLimitInfo{
			Allowed:      false,
			Remaining:    0,
			ResetTime:    &blockedUntil,
			BlockedUntil: &blockedUntil,
		}, nil
	}

	countKey := fmt.Sprintf("ratelimit:%s:%s", endpointType, identifier)
	count, err := svc.redisSvc.Increment(ctx, countKey)
	if err != nil {
		return false, nil, err
	}
	if count == 1 {
		if err := svc.redisSvc.Expire(ctx, countKey, config.WindowSize); err != nil {
			return false, nil, err
		}
	}

	if count > int64(config.MaxRequests) {
		if err := svc.redisSvc.Set(ctx, blockKey, "1", config.BlockTime); err != nil {
			return false, nil, err
		}

		blockedUntil := now.Add(config.BlockTime)
		return false, &dto.RateLimitInfo{
			Allowed:      false,
			Remaining:    0,
			ResetTime:    &blockedUntil,
			BlockedUntil: &blockedUntil,
		}, nil
	}

	ttl, err := svc.redisSvc.TTL(ctx, countKey)
	if err != nil || ttl < 0 {
		ttl = config.WindowSize
	}
	resetTime := now.Add(ttl)
	return true, &dto.RateLimitInfo{
		Allowed:   true,
		Remaining: config.MaxRequests - int(count),
		ResetTime: &resetTime,
	}, nil
}

// ==================== MIDDLEWARE FUNCTIONS ====================

// RateLimit creates a rate limiting middleware for a specific endpoint type.
func (svc *RateLimitService) RateLimit(endpointType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identifier := svc.getIdentifier(c, endpointType)

		allowed, info, err := svc.IsAllowed(identifier, endpointType)
		if err != nil {
			log.WithError(err).WithField("endpoint_type", endpointType).Warn("Rate limit check failed, allowing request")
			// Continue on error to avoid blocking users due to system issues
			return c.Next()
		}

		svc.addRateLimitHeaders(c, info)

		if !allowed {
			return svc.handleRateLimitExceeded(c, info)
		}

		return c.Next()
	}
}

// IPRateLimit applies general rate limiting by IP address.
func (svc *RateLimitService) IPRateLimit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := getClientIP(c)

		allowed, info, err := svc.IsAllowed(ip, "api_general")
		if err != nil {
			log.WithError(err).WithField("ip", ip).Warn("IP rate limit check failed, allowing request")
			return c.Next()
		}

		svc.addRateLimitHeaders(c, info)

		if !allowed {
			return svc.handleRateLimitExceeded(c, info)
		}

		return c.Next()
	}
}

// ==================== HELPER FUNCTIONS ====================

func (svc *RateLimitService) getIdentifier(c *fiber.Ctx, endpointType string) string {
	switch endpointType {
	case "visitor_init":
		// Visitor ids are server-issued, so first contact keys on IP.
		return getClientIP(c)

	case "favorite_toggle":
		visitorID := getVisitorIDFromRequest(c)
		if visitorID != "" {
			return visitorID
		}
		return getClientIP(c)

	default:
		return getClientIP(c)
	}
}

func getVisitorIDFromRequest(c *fiber.Ctx) string {
	var reqBody map[string]interface{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&reqBody); err == nil {
			if visitorID, exists := reqBody[shared.VisitorID]; exists {
				if visitorIDStr, ok := visitorID.(string); ok {
					return visitorIDStr
				}
			}
		}
	}
	return c.Query(shared.VisitorID)
}

func getClientIP(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}

func (svc *RateLimitService) addRateLimitHeaders(c *fiber.Ctx, info *dto.RateLimitInfo) {
	if info == nil {
		return
	}
	if info.Remaining >= 0 {
		c.Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	}
	if info.ResetTime != nil {
		c.Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

func (svc *RateLimitService) handleRateLimitExceeded(c *fiber.Ctx, info *dto.RateLimitInfo) error {
	if info != nil && info.BlockedUntil != nil {
		retryAfter := int(time.Until(*info.BlockedUntil).Seconds())
		if retryAfter > 0 {
			c.Set("Retry-After", strconv.Itoa(retryAfter))
		}
	}
	return shared.NewRateLimitError("Too many requests")
}
