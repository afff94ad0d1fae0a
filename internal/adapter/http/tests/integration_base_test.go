//go:build integration
// +build integration

package tests

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	dbadapter "github.com/40min/flocus-sub000/internal/adapter/db"
	"github.com/40min/flocus-sub000/pkg/translator"
)

type IntegrationSuiteBase struct {
	suite.Suite

	client     *mongo.Client
	DB         *mongo.Database
	testDBName string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  filepath.Join(projectRoot(s.T()), "pkg", "translator", "translation"),
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	uri := envOrDefault("MONGO_URI", "mongodb://127.0.0.1:27017")
	database := envOrDefault("MONGO_TEST_DATABASE", envOrDefault("MONGO_DATABASE", "flocus")+"_test")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err == nil {
		err = client.Ping(ctx, nil)
	}
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mongo: %v", err)
	}

	s.client = client
	s.DB = client.Database(database)
	s.testDBName = database
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	ctx := context.Background()

	// Drop test database to keep local environment clean after integration runs.
	if s.DB != nil && strings.HasSuffix(s.testDBName, "_test") {
		s.Require().NoError(s.DB.Drop(ctx))
	}
	if s.client != nil {
		s.Require().NoError(s.client.Disconnect(ctx))
	}
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	ctx := context.Background()
	s.Require().NoError(s.DB.Drop(ctx))
	s.Require().NoError(dbadapter.EnsureIndexes(ctx, s.DB))
}

func projectRoot(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("could not resolve caller")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", ".."))
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
