package db

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/OpenCampus/Campus_BContentstore/settings"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var settingsData = settings.GetSettings()

var Ctx = context.TODO()

type MongoConnection struct {
	once   sync.Once
	client *mongo.Client
}

var DbConnect = &MongoConnection{}

func newClient() *mongo.Client {
	uri := fmt.Sprintf(
		"%s://%s:%s@%s",
		settingsData.MONGO_CONNECTION,
		settingsData.MONGO_ROOT_USERNAME,
		settingsData.MONGO_ROOT_PASSWORD,
		settingsData.MONGO_HOST,
	)
	client, err := mongo.Connect(Ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Error connecting db: %v", err)
	}

	ctx, cancel := context.WithTimeout(Ctx, time.Second*10)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Error ping db: %v", err)
	}
	return client
}

// GetCollection connects on the first use
func (m *MongoConnection) GetCollection(collectionName string) *mongo.Collection {
	m.once.Do(func() {
		m.client = newClient()
	})
	return m.client.Database(settingsData.MONGO_DB).Collection(collectionName)
}
