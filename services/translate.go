package services

import (
	"bytes"
	goContext "context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/kelimeapp/vocab_api/dto"
	"github.com/kelimeapp/vocab_api/shared"
	log "github.com/sirupsen/logrus"
)

// TranslateService proxies free-text translation to an external API. The
// upstream contract is fixed; failures surface as a uniform internal error
// with the cause logged, never echoed.
type TranslateService struct {
	appContext.DefaultService

	httpClient *http.Client
	apiURL     string
	apiKey     string

	redisSvc    *RedisService
	cacheExpiry time.Duration
}

const TRANSLATE_SVC = "translate_svc"

func (svc TranslateService) Id() string {
	return TRANSLATE_SVC
}

func (svc *TranslateService) Configure(ctx *appContext.Context) error {
	svc.httpClient = &http.Client{
		Timeout: 10 * time.Second,
	}
	svc.apiURL = os.Getenv("TRANSLATE_API_URL")
	if svc.apiURL == "" {
		svc.apiURL = "https://libretranslate.com/translate"
	}
	svc.apiKey = os.Getenv("TRANSLATE_API_KEY")
	svc.cacheExpiry = 24 * time.Hour
	return svc.DefaultService.Configure(ctx)
}

func (svc *TranslateService) Start() error {
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	return nil
}

func (svc *TranslateService) Translate(req dto.TranslateRequest) (*dto.TranslateResponse, error) {
	ctx := goContext.Background()
	cacheKey := translateCacheKey(req)

	if svc.redisSvc != nil {
		cachedText, err := svc.redisSvc.Get(ctx, cacheKey)
		if err == nil && cachedText != "" {
			log.WithField("source", req.SourceLanguage).WithField("target", req.TargetLanguage).Debug("Translation cache hit")
			return &dto.TranslateResponse{TranslatedText: cachedText}, nil
		}
	}

	payload := map[string]string{
		"q":      req.Text,
		"source": req.SourceLanguage,
		"target": req.TargetLanguage,
		"format": "text",
	}
	if svc.apiKey != "" {
		payload["api_key"] = svc.apiKey
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, shared.NewInternalError(err, "Translation failed")
	}

	resp, err := svc.httpClient.Post(svc.apiURL, "application/json", bytes.NewReader(body))
	if err != nil {
		log.WithError(err).Error("Translation request failed")
		return nil, shared.NewInternalError(err, "Translation failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithField("status", resp.StatusCode).Error("Translation API returned non-200 status")
		return nil, shared.NewInternalError(fmt.Errorf("translation api status %d", resp.StatusCode), "Translation failed")
	}

	var result struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.WithError(err).Error("Failed to decode translation response")
		return nil, shared.NewInternalError(err, "Translation failed")
	}

	if svc.redisSvc != nil {
		if err := svc.redisSvc.Set(ctx, cacheKey, result.TranslatedText, svc.cacheExpiry); err != nil {
			log.WithError(err).Debug("Translation cache write failed")
		}
	}

	return &dto.TranslateResponse{TranslatedText: result.TranslatedText}, nil
}

func translateCacheKey(req dto.TranslateRequest) string {
	sum := sha1.Sum([]byte(req.Text))
	return fmt.Sprintf("translate:%s:%s:%x", req.SourceLanguage, req.TargetLanguage, sum)
}
