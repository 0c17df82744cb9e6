package main

import (
	"github.com/kelimeapp/vocab_api/services"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	ctx, err := context.NewCtx(
		&services.PostgresService{},
		&services.RedisService{},
		&services.RateLimitService{},

		&services.VisitorService{},
		&services.WordService{},
		&services.FavoriteService{},
		&services.TranslateService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal(err)
		return
	}
}
