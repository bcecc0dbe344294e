package config

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
)

var (
	MongoClient *mongo.Client
	StoreDB     *mongo.Database

	CmsDB   *pgxpool.Pool
	CmsGorm *gorm.DB
)

// ConnectMongo opens the storefront document store
func ConnectMongo(cfg AppConfig) {
	ctx, cancel := WithTimeout()
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		log.Fatalf("❌ Unable to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("❌ MongoDB ping failed: %v", err)
	}

	MongoClient = client
	StoreDB = client.Database(cfg.MongoDatabase)
	log.Printf("✅ MongoDB connected (db=%s)", cfg.MongoDatabase)
}

// InitCmsDB opens the CMS Postgres database through pgx (health checks) and GORM (admin data)
func InitCmsDB(cfg AppConfig) {
	var err error
	CmsDB, err = pgxpool.New(context.Background(), cfg.CmsDBURL)
	if err != nil {
		log.Fatalf("❌ Unable to connect to CMS database: %v", err)
	}
	if err = CmsDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ CMS database ping failed: %v", err)
	}
	log.Println("✅ CMS database connected (pgx)")

	gormLogger := logger.Default.LogMode(logger.Warn)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	CmsGorm, err = gorm.Open(postgres.Open(cfg.CmsDBURL), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to CMS database with GORM: %v", err)
	}
	if sqlDB, err := CmsGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ CMS database connected (GORM)")
}

// MigrateCMS creates or updates the CMS tables this service owns or reads
func MigrateCMS(db *gorm.DB) error {
	return db.AutoMigrate(&models.Admin{}, &models.AdminSession{}, &models.ActivityLog{})
}

func CloseDB() {
	if MongoClient != nil {
		ctx, cancel := WithTimeout()
		defer cancel()
		if err := MongoClient.Disconnect(ctx); err == nil {
			log.Println("✅ MongoDB connection closed")
		}
	}
	if CmsDB != nil {
		CmsDB.Close()
		log.Println("✅ CMS database connection closed (pgx)")
	}
	if CmsGorm != nil {
		sqlDB, _ := CmsGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ CMS database connection closed (GORM)")
		}
	}
	if RedisClient != nil {
		RedisClient.Close()
	}
}
