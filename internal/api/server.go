package api

import (
	"fmt"

	"backend/internal/app/config"
	"backend/internal/app/dsn"
	"backend/internal/app/handler"
	"backend/internal/app/middleware"
	"backend/internal/app/repository"
	"backend/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func StartServer() {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal("ошибка чтения конфигурации: ", err)
	}

	// Хранилище. Если БД недоступна, сервер все равно поднимается:
	// /test покажет состояние, остальные эндпоинты вернут ошибку
	var repo *repository.Repository
	repo, err = repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Error("ошибка инициализации репозитория: ", err)
		repo = nil
	}

	// MinIO для аватаров (необязателен)
	var minioClient *storage.MinIOClient
	if cfg.Minio.Endpoint != "" {
		minioClient, err = storage.NewMinIOClient(
			cfg.Minio.Endpoint,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.Bucket,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			logrus.Warn("MinIO недоступен, загрузка аватаров отключена: ", err)
			minioClient = nil
		}
	}

	h := handler.NewHandler(repo, minioClient)

	// Неизвестные поля в JSON отклоняются на уровне биндинга
	gin.EnableJsonDecoderDisallowUnknownFields()

	r := gin.Default()
	r.Use(middleware.Cors())
	h.RegisterRoutes(r)

	serverAddress := fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort)
	logrus.Infof("Starting server on %s", serverAddress)

	if err := r.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}

	if repo != nil {
		if err := repo.Close(); err != nil {
			logrus.Error("ошибка закрытия подключения к БД: ", err)
		}
	}

	logrus.Info("Server down")
}
