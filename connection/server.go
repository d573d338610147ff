package connection

import (
	"context"
	"log"

	"comphq/controller/attachments"
	"comphq/services/attachment"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	router := gin.Default()

	DB, err := DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	store, err := StorageConnection(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}
	fsClient, err := FirestoreConnection(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	svc := attachment.NewService(
		attachment.NewGormRepository(DB),
		store,
		attachment.NewFirestoreInvalidator(fsClient),
	)

	attachments.AttachmentsController(router, svc)

	router.Run()
}
