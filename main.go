package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/crf-go/config"
	"github.com/linskybing/crf-go/db"
	"github.com/linskybing/crf-go/middleware"
	"github.com/linskybing/crf-go/routes"
	"github.com/linskybing/crf-go/storage"
)

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	store, err := storage.NewMinioStorage()
	if err != nil {
		log.Fatal("Failed to init storage:", err)
	}

	r := gin.Default()
	routes.RegisterRoutes(r, store)
	r.Run(":" + config.ServerPort)
}
